package game

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeontower/internal/telemetry"
)

// Store holds the current state and applies actions to it one at a time.
type Store struct {
	mu     sync.Mutex
	engine *Engine
	state  State
	logger *slog.Logger
}

// NewStore creates a store starting from the initial state.
// A nil logger discards records.
func NewStore(engine *Engine, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Store{
		engine: engine,
		state:  InitialState(),
		logger: logger,
	}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces a against the current state, stores the result and
// returns it. Each call completes before the next one starts.
func (s *Store) Dispatch(ctx context.Context, a Action) (State, Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, span := telemetry.Tracer("game").Start(ctx, "game.dispatch")
	defer span.End()

	prev := s.state
	next, out := s.engine.Reduce(prev, a)
	s.state = next

	span.SetAttributes(
		attribute.String("action", a.Kind.String()),
		attribute.String("phase", next.Phase().String()),
		attribute.Int("turn", next.Turn),
		attribute.Int("dungeon.level", next.CurrentDungeonLevel),
		attribute.Bool("in_combat", next.InCombat),
		attribute.Bool("level_up", out.LevelUp != nil),
	)

	attrs := []any{
		slog.String("action", a.Kind.String()),
		slog.String("phase", next.Phase().String()),
		slog.Int("turn", next.Turn),
		slog.Int("log_lines", len(next.Log)-len(prev.Log)),
	}
	if out.LevelUp != nil {
		attrs = append(attrs,
			slog.Int("level", out.LevelUp.Level),
			slog.Int("offers", len(out.LevelUp.Offers)))
	}
	s.logger.InfoContext(ctx, "action dispatched", attrs...)

	return next, out
}
