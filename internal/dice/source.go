package dice

import (
	"math/rand"
	"time"
)

// Source is the randomness provider for dice rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// NewSeededSource returns a deterministic Source. Two sources built from the
// same seed produce the same sequence.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// ClockSeed returns a seed taken from the current time, for games started
// without one.
func ClockSeed() int64 {
	return time.Now().UnixNano()
}
