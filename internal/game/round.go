package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/pytzee/internal/gamedata"
	"github.com/samdwyer/pytzee/internal/scoring"
	"github.com/samdwyer/pytzee/internal/telemetry"
)

// =============================================================================
// Phase handlers
// =============================================================================

// throw requests the round's roll and moves to PhaseAwaitingChoice.
func (g *Game) throw(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.roll")
	defer span.End()

	roll := g.roller.Roll()
	if err := roll.Validate(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("round %d: %w", g.round, err)
	}

	g.roll = roll
	g.attempt = 0
	g.phase = PhaseAwaitingChoice

	span.SetAttributes(
		attribute.Int("round", g.round),
		attribute.IntSlice("dice", roll.Slice()),
	)
	g.display.ShowRoll(g.round, g.config.Rounds, roll)
	return nil
}

// choose asks for a category. A skip ends the round, an unusable token is
// reported and asked again, a valid category moves to PhaseResolved.
func (g *Game) choose(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.choice")
	defer span.End()

	available := g.card.Available()
	token, err := g.input.RequestChoice(ctx, Prompt{
		GameID:  g.id,
		Round:   g.round,
		Rounds:  g.config.Rounds,
		Roll:    g.roll,
		Card:    g.card.Snapshot(),
		Hints:   scoring.Preview(g.roll, available, g.card.FiveOfAKindScore()),
		Attempt: g.attempt,
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("round %d: requesting choice: %w", g.round, err)
	}

	span.SetAttributes(
		attribute.Int("round", g.round),
		attribute.Int("attempt", g.attempt),
		attribute.String("token", token),
	)

	if gamedata.NormalizeToken(token) == SkipToken {
		span.SetAttributes(attribute.Bool("skipped", true))
		g.logger.Info("round skipped", zap.Int("round", g.round))
		g.display.ShowSkip(g.round)
		g.advance(ctx)
		return nil
	}

	category, err := g.parseChoice(token)
	if err != nil {
		g.attempt++
		span.SetAttributes(attribute.Bool("rejected", true))
		g.logger.Debug("choice rejected",
			zap.Int("round", g.round),
			zap.String("token", token),
			zap.Error(err),
		)
		g.display.ShowInvalidChoice(token, err)
		return nil
	}

	span.SetAttributes(attribute.String("category", category.ID()))
	g.choice = category
	g.phase = PhaseResolved
	return nil
}

// parseChoice maps a token to a category that is still open on the card.
func (g *Game) parseChoice(token string) (scoring.Category, error) {
	def := g.categories.Resolve(token)
	if def == nil {
		return 0, fmt.Errorf("%w: unknown category %q", scoring.ErrInvalidCategory, token)
	}
	category, err := scoring.CategoryByID(def.ID)
	if err != nil {
		return 0, err
	}
	if !g.card.IsAvailable(category) {
		return 0, fmt.Errorf("%w: %s already used", scoring.ErrInvalidCategory, category)
	}
	return category, nil
}

// resolve scores the chosen category and commits it. The category was checked
// for availability in choose, so a failed commit is a programming error.
func (g *Game) resolve(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.resolve")
	defer span.End()

	score, err := scoring.Evaluate(g.choice, g.roll, g.card.FiveOfAKindScore())
	if err != nil {
		panic(fmt.Sprintf("game: evaluating %s for %v: %v", g.choice, g.roll, err))
	}
	if err := g.card.Commit(g.choice, score); err != nil {
		panic(fmt.Sprintf("game: commit contract violated: %v", err))
	}

	span.SetAttributes(
		attribute.Int("round", g.round),
		attribute.String("category", g.choice.ID()),
		attribute.Int("score", score),
		attribute.Int("upper_total", g.card.UpperTotal()),
	)
	g.logger.Info("score committed",
		zap.Int("round", g.round),
		zap.String("category", g.choice.ID()),
		zap.Ints("dice", g.roll.Slice()),
		zap.Int("score", score),
	)

	g.display.ShowScoreCard(g.card.Snapshot())
	g.advance(ctx)
}

// advance starts the next round, or ends the game after the last one.
func (g *Game) advance(ctx context.Context) {
	if g.round >= g.config.Rounds {
		g.finish(ctx)
		return
	}
	g.round++
	g.phase = PhaseAwaitingRoll
}

// finish finalizes the card and reports the result.
func (g *Game) finish(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end")
	defer span.End()

	g.result = g.card.Finalize()
	g.phase = PhaseGameOver

	span.SetAttributes(
		attribute.Int("categories_filled", g.card.Filled()),
		attribute.Int("upper_total", g.result.UpperTotal),
		attribute.Bool("bonus_applied", g.result.BonusApplied),
		attribute.Int("total", g.result.Total),
	)
	g.logger.Info("game over",
		zap.Int("upper_total", g.result.UpperTotal),
		zap.Bool("bonus_applied", g.result.BonusApplied),
		zap.Int("total", g.result.Total),
	)

	g.display.ShowFinal(g.result)
}
