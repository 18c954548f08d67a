// Package scorecard holds the authoritative per-game score state.
package scorecard

import (
	"errors"
	"fmt"

	"github.com/samdwyer/pytzee/internal/scoring"
)

const (
	// UpperBonusThreshold is the upper-section subtotal that earns the bonus.
	UpperBonusThreshold = 63
	// UpperBonus is added to the total when the threshold is reached.
	UpperBonus = 35
)

// ErrInvalidCommit is returned when a score is committed to a category that
// already holds one, to an invalid category, or to a finalized card.
var ErrInvalidCommit = errors.New("invalid commit")

// Entry is one scorecard row as shown to the player.
type Entry struct {
	Category scoring.Category
	Score    int
	Set      bool
}

// Result is the outcome of a finished game.
type Result struct {
	UpperTotal   int
	BonusApplied bool
	Bonus        int
	Total        int
}

// Snapshot is a read-only copy of a scorecard for display collaborators.
type Snapshot struct {
	Entries    []Entry
	UpperTotal int
	Filled     int
}

// ScoreCard maps every category to an optional, write-once score.
// The zero value is not usable; call New.
type ScoreCard struct {
	scores     map[scoring.Category]int
	upperTotal int
	final      *Result
}

// New returns an empty scorecard with every category available.
func New() *ScoreCard {
	return &ScoreCard{scores: make(map[scoring.Category]int)}
}

// IsAvailable reports whether no score has been committed for c.
func (s *ScoreCard) IsAvailable(c scoring.Category) bool {
	if !c.Valid() {
		return false
	}
	_, used := s.scores[c]
	return !used
}

// Commit stores score for c and adds it to the upper subtotal when c is a
// count category.
func (s *ScoreCard) Commit(c scoring.Category, score int) error {
	switch {
	case s.final != nil:
		return fmt.Errorf("%w: scorecard is finalized", ErrInvalidCommit)
	case !c.Valid():
		return fmt.Errorf("%w: unknown category %d", ErrInvalidCommit, int(c))
	case !s.IsAvailable(c):
		return fmt.Errorf("%w: %s already scored %d", ErrInvalidCommit, c, s.scores[c])
	}

	s.scores[c] = score
	if c.IsUpper() {
		s.upperTotal += score
	}
	return nil
}

// Score returns the committed score for c and whether one exists.
func (s *ScoreCard) Score(c scoring.Category) (int, bool) {
	score, ok := s.scores[c]
	return score, ok
}

// FiveOfAKindScore returns the committed five-of-a-kind score, 0 while unset.
func (s *ScoreCard) FiveOfAKindScore() int {
	return s.scores[scoring.FiveOfAKind]
}

// UpperTotal returns the sum of the six count categories.
func (s *ScoreCard) UpperTotal() int {
	return s.upperTotal
}

// Filled returns how many categories hold a score.
func (s *ScoreCard) Filled() int {
	return len(s.scores)
}

// Available returns the categories still open, in scorecard order.
func (s *ScoreCard) Available() []scoring.Category {
	var out []scoring.Category
	for _, c := range scoring.All() {
		if s.IsAvailable(c) {
			out = append(out, c)
		}
	}
	return out
}

// Entries returns one row per category in scorecard order.
func (s *ScoreCard) Entries() []Entry {
	all := scoring.All()
	out := make([]Entry, 0, len(all))
	for _, c := range all {
		score, ok := s.scores[c]
		out = append(out, Entry{Category: c, Score: score, Set: ok})
	}
	return out
}

// Snapshot copies the card's current contents.
func (s *ScoreCard) Snapshot() Snapshot {
	return Snapshot{
		Entries:    s.Entries(),
		UpperTotal: s.upperTotal,
		Filled:     len(s.scores),
	}
}

// Finalized reports whether Finalize has been called.
func (s *ScoreCard) Finalized() bool {
	return s.final != nil
}

// Finalize applies the upper bonus and totals the card. The first call fixes
// the result and makes the card read-only; later calls return the same value.
func (s *ScoreCard) Finalize() Result {
	if s.final != nil {
		return *s.final
	}

	result := Result{UpperTotal: s.upperTotal}
	for _, score := range s.scores {
		result.Total += score
	}
	if s.upperTotal >= UpperBonusThreshold {
		result.BonusApplied = true
		result.Bonus = UpperBonus
		result.Total += UpperBonus
	}

	s.final = &result
	return result
}
