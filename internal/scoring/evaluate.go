package scoring

import (
	"fmt"
	"slices"

	"github.com/samdwyer/pytzee/internal/dice"
)

// Fixed awards for the shape categories.
const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	// FiveOfAKindScore is awarded while the five-of-a-kind box holds nothing or 0.
	FiveOfAKindScore = 50
	// FiveOfAKindRepeatScore is awarded once the box holds a nonzero score.
	FiveOfAKindRepeatScore = 100
)

// Evaluate returns the points roll earns in category.
//
// priorFiveOfAKind is the scorecard's current five-of-a-kind value, 0 when the
// box is unset. A five-of-a-kind roll earns FiveOfAKindScore while that value
// is 0 and FiveOfAKindRepeatScore once it is not. A shape that does not match
// scores 0, which is a valid outcome and not an error.
func Evaluate(category Category, roll dice.Roll, priorFiveOfAKind int) (int, error) {
	if !category.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCategory, int(category))
	}
	if err := roll.Validate(); err != nil {
		return 0, err
	}

	switch category {
	case CountOne, CountTwo, CountThree, CountFour, CountFive, CountSix:
		face := category.Face()
		return roll.Counts()[face] * face, nil
	case ThreeOfAKind:
		if HasThreeOfAKind(roll) {
			return roll.Sum(), nil
		}
	case FourOfAKind:
		if HasFourOfAKind(roll) {
			return roll.Sum(), nil
		}
	case FullHouse:
		if HasFullHouse(roll) {
			return FullHouseScore, nil
		}
	case SmallStraight:
		if HasSmallStraight(roll) {
			return SmallStraightScore, nil
		}
	case LargeStraight:
		if HasLargeStraight(roll) {
			return LargeStraightScore, nil
		}
	case FiveOfAKind:
		if HasFiveOfAKind(roll) {
			if priorFiveOfAKind == 0 {
				return FiveOfAKindScore, nil
			}
			return FiveOfAKindRepeatScore, nil
		}
	case Chance:
		return roll.Sum(), nil
	}
	return 0, nil
}

// maxOfAKind returns the largest number of dice sharing one face.
func maxOfAKind(roll dice.Roll) int {
	counts := roll.Counts()
	return slices.Max(counts[1:])
}

// HasThreeOfAKind reports whether some face appears at least three times.
func HasThreeOfAKind(roll dice.Roll) bool {
	return maxOfAKind(roll) >= 3
}

// HasFourOfAKind reports whether some face appears at least four times.
func HasFourOfAKind(roll dice.Roll) bool {
	return maxOfAKind(roll) >= 4
}

// HasFullHouse reports an exact three-and-two split of two distinct faces.
// Five of a kind is not a full house.
func HasFullHouse(roll dice.Roll) bool {
	counts := roll.Counts()
	distinct, three := 0, false
	for _, n := range counts[1:] {
		if n == 0 {
			continue
		}
		distinct++
		if n == 3 {
			three = true
		}
	}
	return distinct == 2 && three
}

// HasSmallStraight reports four consecutive distinct faces anywhere in the roll.
func HasSmallStraight(roll dice.Roll) bool {
	counts := roll.Counts()
	run := 0
	for face := 1; face <= dice.Sides; face++ {
		if counts[face] == 0 {
			run = 0
			continue
		}
		run++
		if run >= 4 {
			return true
		}
	}
	return false
}

// HasLargeStraight reports whether the sorted roll is exactly 1-5 or 2-6.
func HasLargeStraight(roll dice.Roll) bool {
	sorted := roll
	slices.Sort(sorted[:])
	return sorted == dice.Roll{1, 2, 3, 4, 5} || sorted == dice.Roll{2, 3, 4, 5, 6}
}

// HasFiveOfAKind reports whether all five dice show the same face.
func HasFiveOfAKind(roll dice.Roll) bool {
	return maxOfAKind(roll) == dice.Count
}
