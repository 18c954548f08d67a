package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/samdwyer/pytzee/internal/dice"
)

func genRoll() *rapid.Generator[dice.Roll] {
	return rapid.Custom(func(t *rapid.T) dice.Roll {
		var r dice.Roll
		for i := range r {
			r[i] = rapid.IntRange(1, dice.Sides).Draw(t, "die")
		}
		return r
	})
}

func mustEvaluate(t *testing.T, c Category, r dice.Roll, prior int) int {
	t.Helper()
	score, err := Evaluate(c, r, prior)
	require.NoError(t, err)
	return score
}

func TestEvaluateTable(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		roll     dice.Roll
		prior    int
		want     int
	}{
		{"count 1 three ones", CountOne, dice.Roll{1, 1, 1, 2, 2}, 0, 3},
		{"count 2 two twos", CountTwo, dice.Roll{1, 1, 1, 2, 2}, 0, 4},
		{"count 6 none", CountSix, dice.Roll{1, 2, 3, 4, 5}, 0, 0},
		{"three of a kind", ThreeOfAKind, dice.Roll{2, 2, 2, 3, 4}, 0, 13},
		{"three of a kind from four", ThreeOfAKind, dice.Roll{2, 2, 2, 2, 4}, 0, 12},
		{"three of a kind missing", ThreeOfAKind, dice.Roll{1, 2, 3, 2, 4}, 0, 0},
		{"four of a kind", FourOfAKind, dice.Roll{3, 3, 3, 3, 6}, 0, 18},
		{"four of a kind missing", FourOfAKind, dice.Roll{1, 2, 6, 1, 1}, 0, 0},
		{"four of a kind from five", FourOfAKind, dice.Roll{5, 5, 5, 5, 5}, 0, 25},
		{"full house", FullHouse, dice.Roll{2, 2, 2, 5, 5}, 0, 25},
		{"full house unordered", FullHouse, dice.Roll{5, 2, 5, 2, 2}, 0, 25},
		{"full house four and one", FullHouse, dice.Roll{2, 2, 2, 2, 5}, 0, 0},
		{"full house five of a kind", FullHouse, dice.Roll{4, 4, 4, 4, 4}, 0, 0},
		{"full house two pair", FullHouse, dice.Roll{1, 1, 2, 2, 5}, 0, 0},
		{"small straight low", SmallStraight, dice.Roll{1, 2, 3, 4, 6}, 0, 30},
		{"small straight with pair", SmallStraight, dice.Roll{3, 4, 4, 5, 6}, 0, 30},
		{"small straight from large", SmallStraight, dice.Roll{2, 3, 4, 5, 6}, 0, 30},
		{"small straight broken", SmallStraight, dice.Roll{3, 3, 1, 4, 5}, 0, 0},
		{"large straight low", LargeStraight, dice.Roll{1, 2, 3, 4, 5}, 0, 40},
		{"large straight high unordered", LargeStraight, dice.Roll{6, 2, 3, 4, 5}, 0, 40},
		{"large straight with pair", LargeStraight, dice.Roll{1, 2, 2, 4, 5}, 0, 0},
		{"large straight gap", LargeStraight, dice.Roll{1, 2, 3, 5, 6}, 0, 0},
		{"five of a kind first", FiveOfAKind, dice.Roll{4, 4, 4, 4, 4}, 0, 50},
		{"five of a kind repeat", FiveOfAKind, dice.Roll{4, 4, 4, 4, 4}, 50, 100},
		{"five of a kind after repeat", FiveOfAKind, dice.Roll{6, 6, 6, 6, 6}, 100, 100},
		{"five of a kind missing", FiveOfAKind, dice.Roll{4, 4, 4, 4, 3}, 50, 0},
		{"chance", Chance, dice.Roll{3, 2, 1, 4, 5}, 0, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustEvaluate(t, tt.category, tt.roll, tt.prior))
		})
	}
}

func TestEvaluateRejectsInvalidCategory(t *testing.T) {
	_, err := Evaluate(Category(13), dice.Roll{1, 1, 1, 1, 1}, 0)
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = Evaluate(Category(-1), dice.Roll{1, 1, 1, 1, 1}, 0)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestEvaluateRejectsInvalidRoll(t *testing.T) {
	_, err := Evaluate(Chance, dice.Roll{1, 2, 3, 4, 7}, 0)
	assert.ErrorIs(t, err, dice.ErrInvalidRoll)
}

func TestCountCategories_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		roll := genRoll().Draw(rt, "roll")
		n := rapid.IntRange(1, 6).Draw(rt, "n")
		category := CountOne + Category(n-1)

		occurrences := 0
		for _, v := range roll {
			if v == n {
				occurrences++
			}
		}

		score, err := Evaluate(category, roll, 0)
		require.NoError(rt, err)
		assert.Equal(rt, n*occurrences, score)
	})
}

func TestChanceIsSum_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		roll := genRoll().Draw(rt, "roll")
		score, err := Evaluate(Chance, roll, rapid.IntRange(0, 100).Draw(rt, "prior"))
		require.NoError(rt, err)
		assert.Equal(rt, roll[0]+roll[1]+roll[2]+roll[3]+roll[4], score)
	})
}

func TestShapeHierarchy_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		roll := genRoll().Draw(rt, "roll")
		if HasFiveOfAKind(roll) {
			assert.True(rt, HasFourOfAKind(roll))
			assert.False(rt, HasFullHouse(roll))
		}
		if HasFourOfAKind(roll) {
			assert.True(rt, HasThreeOfAKind(roll))
		}
		if HasFullHouse(roll) {
			assert.True(rt, HasThreeOfAKind(roll))
		}
		if HasLargeStraight(roll) {
			assert.True(rt, HasSmallStraight(roll))
		}
	})
}

func TestScoresNeverNegative_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		roll := genRoll().Draw(rt, "roll")
		category := Category(rapid.IntRange(0, len(All())-1).Draw(rt, "category"))
		score, err := Evaluate(category, roll, 0)
		require.NoError(rt, err)
		assert.GreaterOrEqual(rt, score, 0)
	})
}

func TestEvaluateDoesNotReorderRoll(t *testing.T) {
	roll := dice.Roll{6, 2, 3, 4, 5}
	mustEvaluate(t, LargeStraight, roll, 0)
	assert.Equal(t, dice.Roll{6, 2, 3, 4, 5}, roll)
}
