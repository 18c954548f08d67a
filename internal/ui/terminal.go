package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pytzee/internal/dice"
	"github.com/samdwyer/pytzee/internal/game"
	"github.com/samdwyer/pytzee/internal/gamedata"
	"github.com/samdwyer/pytzee/internal/scorecard"
	"github.com/samdwyer/pytzee/internal/scoring"
)

// ErrQuit is returned when the player leaves the terminal UI mid-game.
var ErrQuit = errors.New("player quit")

// Terminal is the tcell front end. It is both the game's input and display.
type Terminal struct {
	screen   *Screen
	renderer *Renderer
	view     view
	best     string
}

// NewTerminal creates a terminal front end drawing on screen.
func NewTerminal(screen *Screen, categories *gamedata.CategoryRegistry, theme gamedata.Theme) *Terminal {
	return &Terminal{
		screen:   screen,
		renderer: NewRenderer(screen, categories, theme),
		view:     view{card: scorecard.New().Snapshot()},
	}
}

// ShowWelcome records the seed shown in the header.
func (t *Terminal) ShowWelcome(seed int64, rounds int) {
	t.view.seed = seed
	t.view.rounds = rounds
	t.view.message = "Welcome to Pytzee!"
	t.view.isError = false
	t.render()
}

// RequestChoice collects keystrokes until Enter and returns the typed text.
func (t *Terminal) RequestChoice(_ context.Context, p game.Prompt) (string, error) {
	t.view.round, t.view.rounds = p.Round, p.Rounds
	t.view.roll, t.view.rolled = p.Roll, true
	t.view.card = p.Card
	t.view.input = ""
	t.view.hints = make(map[scoring.Category]int, len(p.Hints))
	for _, h := range p.Hints {
		t.view.hints[h.Category] = h.Score
	}
	t.best = ""
	if best, ok := scoring.Best(p.Hints); ok {
		t.best = best.Category.String()
	}

	for {
		t.render()

		ev := t.screen.PollEvent()
		if ev == nil {
			return "", ErrQuit
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if done, err := t.handleKey(ev); done || err != nil {
				return t.view.input, err
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// handleKey edits the input line. It reports done on Enter.
func (t *Terminal) handleKey(ev *tcell.EventKey) (done bool, err error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.view.input = ""
		return false, ErrQuit
	case tcell.KeyEnter:
		return true, nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if runes := []rune(t.view.input); len(runes) > 0 {
			t.view.input = string(runes[:len(runes)-1])
		}
	case tcell.KeyTab:
		t.view.input = t.best
	case tcell.KeyRune:
		t.view.input += string(ev.Rune())
	}
	return false, nil
}

// ShowRoll draws the new dice.
func (t *Terminal) ShowRoll(round, rounds int, roll dice.Roll) {
	t.view.round, t.view.rounds = round, rounds
	t.view.roll, t.view.rolled = roll, true
	t.view.hints = nil
	t.view.message = fmt.Sprintf("Round %d of %d", round, rounds)
	t.view.isError = false
	t.render()
}

// ShowInvalidChoice flags the rejected input.
func (t *Terminal) ShowInvalidChoice(token string, _ error) {
	t.view.message = fmt.Sprintf("Oops! %q is an invalid choice or already used. Try again.", token)
	t.view.isError = true
	t.render()
}

// ShowSkip notes the skipped round.
func (t *Terminal) ShowSkip(round int) {
	t.view.message = fmt.Sprintf("Skipped round %d.", round)
	t.view.isError = false
	t.render()
}

// ShowScoreCard draws the updated card.
func (t *Terminal) ShowScoreCard(card scorecard.Snapshot) {
	t.view.card = card
	t.view.hints = nil
	t.view.input = ""
	t.render()
}

// ShowFinal draws the result and waits for a key press.
func (t *Terminal) ShowFinal(result scorecard.Result) {
	t.view.final = &result
	t.view.message = "Game over."
	t.view.isError = false
	t.render()

	for {
		switch t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			return
		case *tcell.EventResize:
			t.screen.Sync()
			t.render()
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Close()
}

func (t *Terminal) render() {
	t.renderer.Render(&t.view)
}
