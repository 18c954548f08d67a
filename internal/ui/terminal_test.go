package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/pytzee/internal/dice"
	"github.com/samdwyer/pytzee/internal/game"
	"github.com/samdwyer/pytzee/internal/gamedata"
	"github.com/samdwyer/pytzee/internal/scorecard"
	"github.com/samdwyer/pytzee/internal/scoring"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(100, 40)

	term := NewTerminal(screen, gamedata.MustLoadCategoryRegistry(), gamedata.MustLoadTheme())
	t.Cleanup(term.Close)
	return term, sim
}

// screenText returns the simulated screen as newline-separated rows.
func screenText(sim tcell.SimulationScreen) string {
	cells, width, height := sim.GetContents()
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := cells[y*width+x]
			if len(cell.Runes) > 0 {
				b.WriteRune(cell.Runes[0])
			} else {
				b.WriteRune(' ')
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func typeText(sim tcell.SimulationScreen, text string) {
	for _, r := range text {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
}

func prompt() game.Prompt {
	card := scorecard.New()
	return game.Prompt{
		Round:  2,
		Rounds: 13,
		Roll:   dice.Roll{3, 3, 3, 3, 6},
		Card:   card.Snapshot(),
		Hints: []scoring.Potential{
			{Category: scoring.FourOfAKind, Score: 18},
			{Category: scoring.Chance, Score: 18},
		},
	}
}

func TestTerminalRequestChoiceReturnsTypedText(t *testing.T) {
	term, sim := newSimTerminal(t)

	typeText(sim, "chance")
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	token, err := term.RequestChoice(context.Background(), prompt())
	require.NoError(t, err)
	assert.Equal(t, "chance", token)

	text := screenText(sim)
	assert.Contains(t, text, "Round 2 of 13")
	assert.Contains(t, text, "[3] [3] [3] [3] [6]")
	assert.Contains(t, text, "> chance")
}

func TestTerminalBackspace(t *testing.T) {
	term, sim := newSimTerminal(t)

	typeText(sim, "skix")
	sim.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	typeText(sim, "p")
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	token, err := term.RequestChoice(context.Background(), prompt())
	require.NoError(t, err)
	assert.Equal(t, "skip", token)
}

func TestTerminalTabPicksBestHint(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	token, err := term.RequestChoice(context.Background(), prompt())
	require.NoError(t, err)
	assert.Equal(t, "four of a kind", token)
}

func TestTerminalEscapeQuits(t *testing.T) {
	term, sim := newSimTerminal(t)

	typeText(sim, "ch")
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	_, err := term.RequestChoice(context.Background(), prompt())
	assert.ErrorIs(t, err, ErrQuit)
}

func TestTerminalRendersHintsAndScores(t *testing.T) {
	term, sim := newSimTerminal(t)

	card := scorecard.New()
	require.NoError(t, card.Commit(scoring.FullHouse, 25))
	term.ShowScoreCard(card.Snapshot())

	text := screenText(sim)
	assert.Contains(t, text, "Full House")
	assert.Contains(t, text, "full house")
	assert.Contains(t, text, "  25")
	assert.Contains(t, text, "Total so far: 25")

	p := prompt()
	p.Card = card.Snapshot()
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	_, err := term.RequestChoice(context.Background(), p)
	require.NoError(t, err)
	assert.Contains(t, screenText(sim), "(18)")
}

func TestTerminalInvalidChoiceMessage(t *testing.T) {
	term, sim := newSimTerminal(t)
	term.ShowInvalidChoice("bogus", scoring.ErrInvalidCategory)
	assert.Contains(t, screenText(sim), `Oops! "bogus" is an invalid choice`)

	term.ShowSkip(4)
	assert.Contains(t, screenText(sim), "Skipped round 4.")
}

func TestTerminalShowFinalWaitsForKey(t *testing.T) {
	term, sim := newSimTerminal(t)
	term.ShowWelcome(777, 13)
	assert.Contains(t, screenText(sim), "Seed 777")

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	term.ShowFinal(scorecard.Result{UpperTotal: 63, BonusApplied: true, Bonus: 35, Total: 140})

	text := screenText(sim)
	assert.Contains(t, text, "Bonus achieved! +35 points.")
	assert.Contains(t, text, "Final Score: 140")
}
