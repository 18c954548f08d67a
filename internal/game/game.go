package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/pytzee/internal/dice"
	"github.com/samdwyer/pytzee/internal/gamedata"
	"github.com/samdwyer/pytzee/internal/scorecard"
	"github.com/samdwyer/pytzee/internal/scoring"
	"github.com/samdwyer/pytzee/internal/telemetry"
)

// Deps are the collaborators a game is wired to.
type Deps struct {
	Roller     Roller
	Input      ChoiceSource
	Display    Display
	Categories *gamedata.CategoryRegistry // nil loads the embedded registry
	Logger     *zap.Logger                // nil disables logging
}

// Game owns the scorecard for one game and steps through its phases.
type Game struct {
	id     string
	config Config

	roller     Roller
	input      ChoiceSource
	display    Display
	categories *gamedata.CategoryRegistry
	logger     *zap.Logger

	card    *scorecard.ScoreCard
	phase   Phase
	round   int
	roll    dice.Roll
	choice  scoring.Category
	attempt int
	result  scorecard.Result
}

// New creates a game ready to play its first round.
func New(cfg Config, deps Deps) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Roller == nil || deps.Input == nil || deps.Display == nil {
		return nil, errors.New("game: roller, input and display are required")
	}

	categories := deps.Categories
	if categories == nil {
		var err error
		categories, err = gamedata.LoadCategoryRegistry()
		if err != nil {
			return nil, fmt.Errorf("loading categories: %w", err)
		}
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()

	return &Game{
		id:         id,
		config:     cfg,
		roller:     deps.Roller,
		input:      deps.Input,
		display:    deps.Display,
		categories: categories,
		logger:     logger.With(zap.String("game_id", id)),
		card:       scorecard.New(),
		phase:      PhaseAwaitingRoll,
		round:      1,
	}, nil
}

// ID returns the game's unique identifier.
func (g *Game) ID() string { return g.id }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Round returns the 1-based round in progress, or the last round once over.
func (g *Game) Round() int { return g.round }

// Rounds returns the configured round count.
func (g *Game) Rounds() int { return g.config.Rounds }

// CurrentRoll returns the roll of the round in progress.
func (g *Game) CurrentRoll() dice.Roll { return g.roll }

// Snapshot returns a copy of the scorecard.
func (g *Game) Snapshot() scorecard.Snapshot { return g.card.Snapshot() }

// Result returns the final result and whether the game is over.
func (g *Game) Result() (scorecard.Result, bool) {
	return g.result, g.phase == PhaseGameOver
}

// Run plays every remaining round and returns the final result.
func (g *Game) Run(ctx context.Context) (scorecard.Result, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	span.SetAttributes(
		attribute.String("game.id", g.id),
		attribute.Int("game.rounds", g.config.Rounds),
		attribute.Int64("game.seed", g.config.Seed),
	)
	g.logger.Info("game started",
		zap.Int("rounds", g.config.Rounds),
		zap.Int64("seed", g.config.Seed),
	)

	for g.phase != PhaseGameOver {
		if err := g.Step(ctx); err != nil {
			span.RecordError(err)
			g.logger.Warn("game aborted", zap.Int("round", g.round), zap.Error(err))
			return scorecard.Result{}, err
		}
	}
	return g.result, nil
}

// Step performs exactly one phase transition. Calling Step after the game is
// over does nothing.
func (g *Game) Step(ctx context.Context) error {
	switch g.phase {
	case PhaseAwaitingRoll:
		return g.throw(ctx)
	case PhaseAwaitingChoice:
		return g.choose(ctx)
	case PhaseResolved:
		g.resolve(ctx)
	case PhaseGameOver:
	}
	return nil
}
