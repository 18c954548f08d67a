// Package config provides Viper-based configuration loading for Pytzee.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/samdwyer/pytzee/internal/game"
)

// Front ends selectable with game.frontend.
const (
	FrontendConsole = "console"
	FrontendTUI     = "tui"
)

// GameConfig holds the settings for a single game.
type GameConfig struct {
	// Rounds is the number of rounds to play.
	Rounds int `mapstructure:"rounds"`
	// Seed feeds the dice. Any value, 0 included, replays the same game.
	// Nil picks a time-based seed.
	Seed *int64 `mapstructure:"seed"`
	// Frontend is "console" or "tui".
	Frontend string `mapstructure:"frontend"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap output path such as "stderr" or a file name.
	Output string `mapstructure:"output"`
}

// TelemetryConfig holds OpenTelemetry export settings.
type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
	Dataset  string `mapstructure:"dataset"`
}

// Config is the top-level application configuration.
type Config struct {
	Game      GameConfig      `mapstructure:"game"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GameSettings converts the game section to the controller's Config. When no
// seed is configured one is taken from clockSeed.
func (c Config) GameSettings(clockSeed func() int64) game.Config {
	cfg := game.Config{Rounds: c.Game.Rounds}
	if c.Game.Seed != nil {
		cfg.Seed = *c.Game.Seed
	} else {
		cfg.Seed = clockSeed()
	}
	return cfg
}

// Validate checks all configuration invariants. Every violation is reported
// in one error wrapping game.ErrInvalidConfiguration.
func (c Config) Validate() error {
	var errs []string

	if err := (game.Config{Rounds: c.Game.Rounds}).Validate(); err != nil {
		errs = append(errs, "game.rounds must be a positive integer")
	}
	validFrontends := map[string]bool{FrontendConsole: true, FrontendTUI: true}
	if !validFrontends[c.Game.Frontend] {
		errs = append(errs, fmt.Sprintf("game.frontend must be one of [console, tui], got %q", c.Game.Frontend))
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		errs = append(errs, "telemetry.endpoint must not be empty when telemetry is enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", game.ErrInvalidConfiguration, strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if l.Output == "" {
		errs = append(errs, "logging.output must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// ParseRounds parses a round count typed by the player or given on the
// command line.
func ParseRounds(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: rounds %q is not a number", game.ErrInvalidConfiguration, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: rounds must be a positive integer, got %d", game.ErrInvalidConfiguration, n)
	}
	return n, nil
}

// Load reads configuration from the optional YAML file at path, applies
// PYTZEE_* environment variable overrides, and validates the result. An empty
// path uses defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with PYTZEE_ prefix
	v.SetEnvPrefix("PYTZEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: unmarshalling config: %v", game.ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.rounds", game.DefaultRounds)
	// No default: an unset seed must stay nil.
	_ = v.BindEnv("game.seed")
	v.SetDefault("game.frontend", FrontendConsole)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "https://api.honeycomb.io")
	v.SetDefault("telemetry.api_key", "")
	v.SetDefault("telemetry.dataset", "pytzee")
}
