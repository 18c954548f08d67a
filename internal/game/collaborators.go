package game

import (
	"context"

	"github.com/samdwyer/pytzee/internal/dice"
	"github.com/samdwyer/pytzee/internal/scorecard"
	"github.com/samdwyer/pytzee/internal/scoring"
)

// SkipToken is the literal a player enters to pass on a round.
const SkipToken = "skip"

// Roller produces a fresh five-die roll.
type Roller interface {
	Roll() dice.Roll
}

// Prompt carries everything a front end needs to ask for a category.
type Prompt struct {
	GameID  string
	Round   int
	Rounds  int
	Roll    dice.Roll
	Card    scorecard.Snapshot
	Hints   []scoring.Potential
	Attempt int // 0 on the first request of a round, incremented per rejection
}

// ChoiceSource supplies the player's raw category token or SkipToken.
// Validation is the controller's job, not the source's.
type ChoiceSource interface {
	RequestChoice(ctx context.Context, prompt Prompt) (string, error)
}

// Display receives progress updates as the game advances.
type Display interface {
	ShowRoll(round, rounds int, roll dice.Roll)
	ShowInvalidChoice(token string, err error)
	ShowSkip(round int)
	ShowScoreCard(card scorecard.Snapshot)
	ShowFinal(result scorecard.Result)
}
