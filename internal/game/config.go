package game

import (
	"errors"
	"fmt"
)

// DefaultRounds is one round per scorecard category.
const DefaultRounds = 13

// ErrInvalidConfiguration is returned when a game cannot be started with the
// supplied settings.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config holds game configuration options.
type Config struct {
	// Rounds is the number of rounds to play. Must be positive.
	Rounds int

	// Seed for random number generation, recorded with the game so it can be
	// replayed. A seed of 0 means a random seed will be generated.
	Seed int64
}

// Validate checks that the configuration can start a game.
func (c Config) Validate() error {
	if c.Rounds <= 0 {
		return fmt.Errorf("%w: rounds must be a positive integer, got %d", ErrInvalidConfiguration, c.Rounds)
	}
	return nil
}
