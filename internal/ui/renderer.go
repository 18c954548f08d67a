package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pytzee/internal/dice"
	"github.com/samdwyer/pytzee/internal/gamedata"
	"github.com/samdwyer/pytzee/internal/scorecard"
	"github.com/samdwyer/pytzee/internal/scoring"
)

// view is everything the terminal front end draws in one frame.
type view struct {
	seed    int64
	round   int
	rounds  int
	roll    dice.Roll
	rolled  bool
	card    scorecard.Snapshot
	hints   map[scoring.Category]int
	message string
	isError bool
	input   string
	final   *scorecard.Result
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen     *Screen
	categories *gamedata.CategoryRegistry
	styles     styles
}

type styles struct {
	title, text, muted, dice, filled, hint, err, bonus tcell.Style
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, categories *gamedata.CategoryRegistry, theme gamedata.Theme) *Renderer {
	fg := func(hex string) tcell.Style {
		return tcell.StyleDefault.Foreground(theme.Color(hex))
	}
	return &Renderer{
		screen:     screen,
		categories: categories,
		styles: styles{
			title:  fg(theme.Title).Bold(true),
			text:   fg(theme.Text),
			muted:  fg(theme.Muted),
			dice:   fg(theme.Dice).Bold(true),
			filled: fg(theme.Filled),
			hint:   fg(theme.Hint),
			err:    fg(theme.Error),
			bonus:  fg(theme.Bonus).Bold(true),
		},
	}
}

// Render draws one full frame.
func (r *Renderer) Render(v *view) {
	r.screen.Clear()
	s := r.styles

	header := "PYTZEE"
	if v.rounds > 0 {
		header = fmt.Sprintf("PYTZEE  Round %d of %d  Seed %d", v.round, v.rounds, v.seed)
	}
	r.screen.DrawText(0, 0, header, s.title)

	y := 2
	x := r.screen.DrawText(0, y, "Dice: ", s.text)
	if v.rolled {
		for _, d := range v.roll {
			x = r.screen.DrawText(x, y, fmt.Sprintf("[%d] ", d), s.dice)
		}
	}

	y = 4
	total := 0
	for _, e := range v.card.Entries {
		r.drawEntry(y, e, v)
		if e.Set {
			total += e.Score
		}
		y++
	}

	y++
	r.screen.DrawText(0, y, fmt.Sprintf("Upper section: %d / %d (bonus +%d)",
		v.card.UpperTotal, scorecard.UpperBonusThreshold, scorecard.UpperBonus), s.muted)
	y++
	r.screen.DrawText(0, y, fmt.Sprintf("Total so far: %d", total), s.text)
	y += 2

	if v.message != "" {
		style := s.text
		if v.isError {
			style = s.err
		}
		r.screen.DrawText(0, y, v.message, style)
	}
	y++

	if v.final != nil {
		if v.final.BonusApplied {
			r.screen.DrawText(0, y, fmt.Sprintf("Bonus achieved! +%d points.", v.final.Bonus), s.bonus)
			y++
		}
		r.screen.DrawText(0, y, fmt.Sprintf("Final Score: %d", v.final.Total), s.title)
		r.screen.DrawText(0, y+1, "Press any key to exit.", s.muted)
		r.screen.Show()
		return
	}

	end := r.screen.DrawText(0, y, "> "+v.input, s.text)
	r.screen.ShowCursor(end, y)
	r.screen.DrawText(0, y+1, "Type a category and press Enter, Tab for the best pick, 'skip' to pass, Esc to quit.", s.muted)
	r.screen.Show()
}

// drawEntry draws one scorecard row: label, token to type, and the score or
// the hint for an open category.
func (r *Renderer) drawEntry(y int, e scorecard.Entry, v *view) {
	s := r.styles
	label := e.Category.String()
	if def := r.categories.GetByID(e.Category.ID()); def != nil {
		label = def.Label
	}

	style := s.text
	if e.Set {
		style = s.filled
	}
	r.screen.DrawText(2, y, padRight(label, 18), style)
	r.screen.DrawText(20, y, padRight(e.Category.String(), 18), s.muted)

	switch {
	case e.Set:
		r.screen.DrawText(38, y, fmt.Sprintf("%4d", e.Score), s.filled)
	case v.hints != nil:
		if score, ok := v.hints[e.Category]; ok {
			r.screen.DrawText(38, y, fmt.Sprintf("(%2d)", score), s.hint)
		}
	}
}
