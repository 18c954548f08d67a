// Package main is the entry point for Pytzee.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/pytzee/internal/config"
	"github.com/samdwyer/pytzee/internal/dice"
	"github.com/samdwyer/pytzee/internal/game"
	"github.com/samdwyer/pytzee/internal/gamedata"
	"github.com/samdwyer/pytzee/internal/observability"
	"github.com/samdwyer/pytzee/internal/telemetry"
	"github.com/samdwyer/pytzee/internal/ui"
)

// frontend is what both the console and the terminal UI provide.
type frontend interface {
	game.ChoiceSource
	game.Display
	ShowWelcome(seed int64, rounds int)
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a YAML config file")
	rounds := flag.String("rounds", "", "number of rounds to play")
	seed := flag.Int64("seed", 0, "dice seed; omit for one from the clock")
	frontendName := flag.String("frontend", "", "front end: console or tui")
	hints := flag.Bool("hints", true, "show the score each open category would get")
	flag.Parse()

	// Load .env file for local development. Not fatal: env vars might be set directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pytzee: %v\n", err)
		return 1
	}
	if err := applyFlags(&cfg, *rounds, *seed, *frontendName); err != nil {
		fmt.Fprintf(os.Stderr, "pytzee: %v\n", err)
		return 1
	}

	// The terminal UI owns the screen, so logs must not go to it.
	if cfg.Game.Frontend == config.FrontendTUI && (cfg.Logging.Output == "stderr" || cfg.Logging.Output == "stdout") {
		cfg.Logging.Output = "pytzee.log"
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pytzee: creating logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		telemetry.ConfigureEnv(cfg.Telemetry.Endpoint, cfg.Telemetry.APIKey, cfg.Telemetry.Dataset)
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry; the game still works.
			logger.Warn("telemetry setup failed", zap.Error(err))
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("shutting down telemetry", zap.Error(err))
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	settings := cfg.GameSettings(dice.ClockSeed)

	categories, err := gamedata.LoadCategoryRegistry()
	if err != nil {
		logger.Error("loading categories", zap.Error(err))
		return 1
	}

	fe, closeFrontend, err := newFrontend(cfg.Game.Frontend, categories, *hints)
	if err != nil {
		logger.Error("starting front end", zap.String("frontend", cfg.Game.Frontend), zap.Error(err))
		fmt.Fprintf(os.Stderr, "pytzee: %v\n", err)
		return 1
	}
	defer closeFrontend()

	g, err := game.New(settings, game.Deps{
		Roller:     dice.NewRoller(settings.Seed, logger),
		Input:      fe,
		Display:    fe,
		Categories: categories,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("creating game", zap.Error(err))
		return 1
	}

	fe.ShowWelcome(settings.Seed, settings.Rounds)
	if _, err := g.Run(ctx); err != nil {
		if errors.Is(err, ui.ErrQuit) || errors.Is(err, io.EOF) {
			logger.Info("player left before the game ended", zap.Int("round", g.Round()))
			return 0
		}
		logger.Error("game error", zap.Error(err))
		return 1
	}
	return 0
}

// applyFlags overrides file and environment settings with command-line flags
// that were given explicitly.
func applyFlags(cfg *config.Config, rounds string, seed int64, frontendName string) error {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["rounds"] {
		n, err := config.ParseRounds(rounds)
		if err != nil {
			return err
		}
		cfg.Game.Rounds = n
	}
	if set["seed"] {
		cfg.Game.Seed = &seed
	}
	if frontendName != "" {
		cfg.Game.Frontend = frontendName
	}
	return cfg.Validate()
}

func newFrontend(name string, categories *gamedata.CategoryRegistry, hints bool) (frontend, func(), error) {
	switch name {
	case config.FrontendTUI:
		theme, err := gamedata.LoadTheme()
		if err != nil {
			return nil, nil, fmt.Errorf("loading theme: %w", err)
		}
		screen, err := ui.NewScreen()
		if err != nil {
			return nil, nil, fmt.Errorf("creating screen: %w", err)
		}
		term := ui.NewTerminal(screen, categories, theme)
		return term, term.Close, nil
	default:
		return ui.NewConsole(os.Stdin, os.Stdout, hints), func() {}, nil
	}
}
