package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/pytzee/internal/dice"
	"github.com/samdwyer/pytzee/internal/game"
	"github.com/samdwyer/pytzee/internal/scorecard"
	"github.com/samdwyer/pytzee/internal/scoring"
)

// Console is the line-oriented front end: one prompt, one line of input.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	hints bool
}

// NewConsole creates a console front end. With hints enabled, each new roll
// is followed by the score every open category would earn.
func NewConsole(in io.Reader, out io.Writer, hints bool) *Console {
	return &Console{in: bufio.NewReader(in), out: out, hints: hints}
}

// ShowWelcome prints the seed so a game can be replayed.
func (c *Console) ShowWelcome(seed int64, rounds int) {
	fmt.Fprintf(c.out, "Pytzee: %d rounds, seed %d\n", rounds, seed)
}

// RequestChoice prompts for a category and returns the trimmed line. Lines of
// any length are read whole; a final line without a newline still counts.
func (c *Console) RequestChoice(_ context.Context, p game.Prompt) (string, error) {
	if c.hints && p.Attempt == 0 {
		c.printHints(p.Hints)
	}
	fmt.Fprint(c.out, "Enter category (or 'skip' to skip): ")
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) printHints(hints []scoring.Potential) {
	if len(hints) == 0 {
		return
	}
	fmt.Fprintln(c.out, "Open categories:")
	for _, h := range hints {
		fmt.Fprintf(c.out, "  %s: %d\n", padRight(h.Category.String(), 20), h.Score)
	}
}

// ShowRoll prints the round banner and the dice.
func (c *Console) ShowRoll(round, rounds int, roll dice.Roll) {
	fmt.Fprintf(c.out, "\nRound %d of %d\n", round, rounds)
	fmt.Fprintf(c.out, "Rolled: %v\n", roll)
}

// ShowInvalidChoice asks the player to try again.
func (c *Console) ShowInvalidChoice(_ string, _ error) {
	fmt.Fprintln(c.out, "Oops! Invalid choice or already used. Try again.")
}

// ShowSkip confirms a skipped round.
func (c *Console) ShowSkip(int) {
	fmt.Fprintln(c.out, "Skipped this round.")
}

// ShowScoreCard prints every category, "-" marking the ones still open.
func (c *Console) ShowScoreCard(card scorecard.Snapshot) {
	fmt.Fprintln(c.out, "\nScorecard:")
	for _, e := range card.Entries {
		score := "-"
		if e.Set {
			score = fmt.Sprint(e.Score)
		}
		fmt.Fprintf(c.out, "%s: %s\n", padRight(e.Category.String(), 20), score)
	}
	fmt.Fprintf(c.out, "%s: %d/%d\n", padRight("upper section", 20), card.UpperTotal, scorecard.UpperBonusThreshold)
}

// ShowFinal prints the bonus line, when earned, and the final score.
func (c *Console) ShowFinal(result scorecard.Result) {
	if result.BonusApplied {
		fmt.Fprintf(c.out, "Bonus achieved! +%d points.\n", result.Bonus)
	}
	fmt.Fprintf(c.out, "\nFinal Score: %d\n", result.Total)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
