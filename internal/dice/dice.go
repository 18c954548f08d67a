// Package dice provides the five-die roll type and the randomness behind it.
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Count is the number of dice in every roll.
	Count = 5
	// Sides is the number of faces on each die.
	Sides = 6
)

// ErrInvalidRoll is returned when a roll holds a value outside [1, Sides].
var ErrInvalidRoll = errors.New("invalid roll")

// Roll is one throw of all five dice. It is an array so copies never alias.
type Roll [Count]int

// Validate reports whether every die is in [1, Sides].
func (r Roll) Validate() error {
	for i, v := range r {
		if v < 1 || v > Sides {
			return fmt.Errorf("%w: die %d is %d", ErrInvalidRoll, i+1, v)
		}
	}
	return nil
}

// Counts returns how many dice show each face. Index 0 is unused.
func (r Roll) Counts() [Sides + 1]int {
	var counts [Sides + 1]int
	for _, v := range r {
		if v >= 1 && v <= Sides {
			counts[v]++
		}
	}
	return counts
}

// Sum returns the total of all five dice.
func (r Roll) Sum() int {
	total := 0
	for _, v := range r {
		total += v
	}
	return total
}

// Slice returns the dice as a fresh slice, for logging and span attributes.
func (r Roll) Slice() []int {
	out := make([]int, Count)
	copy(out, r[:])
	return out
}

// String formats the roll the way the console shows it, e.g. "[1, 1, 1, 2, 2]".
func (r Roll) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, d := range r {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(d))
	}
	b.WriteByte(']')
	return b.String()
}
