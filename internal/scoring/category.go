// Package scoring maps a category choice and a five-die roll to points.
package scoring

import (
	"errors"
	"fmt"
)

// ErrInvalidCategory is returned for a category outside the 13 defined
// values, an unknown input token, or a category that is already used.
var ErrInvalidCategory = errors.New("invalid category")

// Category is one of the 13 scorecard boxes.
type Category int

const (
	// CountOne - ones, scored as the sum of every 1
	CountOne Category = iota
	// CountTwo - twos, scored as the sum of every 2
	CountTwo
	// CountThree - threes, scored as the sum of every 3
	CountThree
	// CountFour - fours, scored as the sum of every 4
	CountFour
	// CountFive - fives, scored as the sum of every 5
	CountFive
	// CountSix - sixes, scored as the sum of every 6
	CountSix
	// ThreeOfAKind - sum of all dice when some value shows at least three times
	ThreeOfAKind
	// FourOfAKind - sum of all dice when some value shows at least four times
	FourOfAKind
	// FullHouse - a three and a pair of different values
	FullHouse
	// SmallStraight - four consecutive values
	SmallStraight
	// LargeStraight - 1-2-3-4-5 or 2-3-4-5-6
	LargeStraight
	// FiveOfAKind - all five dice the same, the "pytzee"
	FiveOfAKind
	// Chance - sum of all dice, no condition
	Chance

	numCategories = int(Chance) + 1
)

var categoryIDs = [numCategories]string{
	"count_1", "count_2", "count_3", "count_4", "count_5", "count_6",
	"three_of_a_kind", "four_of_a_kind", "full_house",
	"small_straight", "large_straight", "five_of_a_kind", "chance",
}

var categoryTokens = [numCategories]string{
	"count 1", "count 2", "count 3", "count 4", "count 5", "count 6",
	"three of a kind", "four of a kind", "full house",
	"small straight", "large straight", "pytzee", "chance",
}

// All returns every category in scorecard order.
func All() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// CategoryByID returns the category whose ID is id.
func CategoryByID(id string) (Category, error) {
	for i, candidate := range categoryIDs {
		if candidate == id {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown id %q", ErrInvalidCategory, id)
}

// Valid reports whether c is one of the 13 categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < numCategories
}

// ID returns the stable identifier used in data files, e.g. "count_1".
func (c Category) ID() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryIDs[c]
}

// String returns the canonical input token, e.g. "count 1" or "pytzee".
func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryTokens[c]
}

// IsUpper reports whether c is one of the six count categories.
func (c Category) IsUpper() bool {
	return c >= CountOne && c <= CountSix
}

// Face returns N for "count N" categories and 0 for everything else.
func (c Category) Face() int {
	if !c.IsUpper() {
		return 0
	}
	return int(c-CountOne) + 1
}
