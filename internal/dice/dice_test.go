package dice_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/samdwyer/pytzee/internal/dice"
)

func TestRollValidate(t *testing.T) {
	assert.NoError(t, dice.Roll{1, 2, 3, 4, 6}.Validate())

	err := dice.Roll{1, 2, 0, 4, 5}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, dice.ErrInvalidRoll))
	assert.Contains(t, err.Error(), "die 3 is 0")

	assert.ErrorIs(t, dice.Roll{7, 1, 1, 1, 1}.Validate(), dice.ErrInvalidRoll)
}

func TestRollCountsAndSum(t *testing.T) {
	r := dice.Roll{3, 3, 3, 3, 6}
	counts := r.Counts()
	assert.Equal(t, 4, counts[3])
	assert.Equal(t, 1, counts[6])
	assert.Equal(t, 0, counts[1])
	assert.Equal(t, 18, r.Sum())
	assert.Equal(t, "[3, 3, 3, 3, 6]", r.String())
}

func TestRollSliceDoesNotAlias(t *testing.T) {
	r := dice.Roll{1, 2, 3, 4, 5}
	s := r.Slice()
	s[0] = 6
	assert.Equal(t, 1, r[0])
}

func TestRollerReproducibleWithSameSeed(t *testing.T) {
	r1 := dice.NewRoller(12345, nil)
	r2 := dice.NewRoller(12345, nil)
	for i := 0; i < 20; i++ {
		assert.Equal(t, r1.Roll(), r2.Roll(), "roll %d", i)
	}
}

func TestRollerReseed(t *testing.T) {
	r := dice.NewRoller(1, nil)
	first := []dice.Roll{r.Roll(), r.Roll(), r.Roll()}

	r.Seed(1)
	again := []dice.Roll{r.Roll(), r.Roll(), r.Roll()}
	assert.Equal(t, first, again)
}

func TestRollerLogsEachRoll(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewRoller(7, zap.New(core))

	roll := r.Roll()

	entries := logs.FilterMessage("dice roll").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, roll.Sum(), fields["total"])
}

func TestClockSeed(t *testing.T) {
	assert.NotZero(t, dice.ClockSeed())
}

func TestSeedZeroIsReproducible(t *testing.T) {
	r1 := dice.NewRoller(0, nil)
	r2 := dice.NewRoller(0, nil)
	for i := 0; i < 5; i++ {
		assert.Equal(t, r1.Roll(), r2.Roll(), "roll %d", i)
	}
}

func TestRollerValuesInRange_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		r := dice.NewRoller(seed, nil)
		for i := 0; i < 10; i++ {
			roll := r.Roll()
			if err := roll.Validate(); err != nil {
				rt.Fatalf("seed %d produced %v: %v", seed, roll, err)
			}
		}
	})
}
