package separate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/lines"
)

var tracer = otel.Tracer("github.com/katalvlaran/sepline/separate")

// Solver owns every structure of one instance: the connectivity store, the
// axis-sorted views and the candidate set. It solves once and is then done.
type Solver struct {
	opts   Options
	points []core.Point
	store  *core.Store
	views  *core.Views
	set    *lines.Set
	solved bool
}

// NewSolver validates points and builds the per-instance structures.
//
// Errors:
//   - core.ErrCapacityExceeded when len(points) exceeds the capacity.
//   - ErrDuplicatePoint when two points share both coordinates.
//   - core.ErrInvariantViolation when the connectivity relation is malformed.
func NewSolver(points []core.Point, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	store, err := core.NewStore(points, core.WithCapacity(o.Capacity))
	if err != nil {
		return nil, err
	}
	pts := store.Points()
	if err = checkDistinct(pts); err != nil {
		return nil, err
	}

	return &Solver{
		opts:   o,
		points: pts,
		store:  store,
		views:  core.NewViews(pts),
		set:    lines.NewSet(),
	}, nil
}

func checkDistinct(points []core.Point) error {
	seen := make(map[[2]int]int, len(points))
	for _, p := range points {
		key := [2]int{p.X, p.Y}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("points %d and %d at (%d,%d): %w", prev, p.ID, p.X, p.Y, ErrDuplicatePoint)
		}
		seen[key] = p.ID
	}

	return nil
}

// Points returns the solver's copy of the input points, IDs assigned.
func (s *Solver) Points() []core.Point {
	out := make([]core.Point, len(s.points))
	copy(out, s.points)

	return out
}

// Solve runs generation, commitment and optimization in that order.
//
// After commitment no connection may remain; if one does the error wraps
// core.ErrInvariantViolation. ctx only carries the trace; Solve does not stop
// early on cancellation.
func (s *Solver) Solve(ctx context.Context) (*Result, error) {
	if s.solved {
		return nil, ErrAlreadySolved
	}
	s.solved = true

	log := s.opts.Logger
	ctx, span := s.opts.Tracer.Start(ctx, "separate.Solve",
		trace.WithAttributes(
			attribute.Int("points", len(s.points)),
			attribute.String("optimize", s.opts.Mode.String()),
		),
	)
	defer span.End()

	res := &Result{}
	start := time.Now()

	fail := func(err error) (*Result, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("solve failed", slog.String("error", err.Error()))

		return nil, err
	}

	err := s.phase(ctx, PhaseGenerate, func(span trace.Span) error {
		for _, axis := range core.Axes {
			added := lines.Generate(s.set, s.views, axis)
			span.SetAttributes(attribute.Int("candidates."+axis.String(), added))
		}
		res.Candidates = s.set.Len()

		return nil
	})
	if err != nil {
		return fail(err)
	}
	log.Debug("candidates generated", slog.Int("points", len(s.points)), slog.Int("candidates", res.Candidates))

	err = s.phase(ctx, PhaseCommit, func(span trace.Span) error {
		stats, err := commitLockstep(s.store, s.views, s.set)
		if err != nil {
			return err
		}
		res.Commit = stats
		res.Committed = stats.Committed
		span.SetAttributes(
			attribute.Int("tested", stats.Tested),
			attribute.Int("committed", stats.Committed),
			attribute.Int("skipped", stats.Skipped),
		)
		if left := s.store.RemainingConnections(); left != 0 {
			return fmt.Errorf("%d connections remain after commitment: %w", left, core.ErrInvariantViolation)
		}

		return nil
	})
	if err != nil {
		return fail(err)
	}
	log.Debug("lines committed",
		slog.Int("tested", res.Commit.Tested),
		slog.Int("committed", res.Commit.Committed),
		slog.Int("skipped", res.Commit.Skipped),
	)

	err = s.phase(ctx, PhaseOptimize, func(span trace.Span) error {
		res.Optimize, res.RemovedLines = optimize(s.points, s.views, s.set, s.opts.Mode)
		res.Removed = res.Optimize.Removed
		span.SetAttributes(
			attribute.Int("examined", res.Optimize.Examined),
			attribute.Int("removed", res.Optimize.Removed),
			attribute.Int("rounds", res.Optimize.Rounds),
		)

		return nil
	})
	if err != nil {
		return fail(err)
	}

	res.Lines = s.set.Committed()
	s.opts.Metrics.observeResult(res)
	span.SetAttributes(attribute.Int("lines", len(res.Lines)))
	log.Info("instance solved",
		slog.Int("points", len(s.points)),
		slog.Int("committed", res.Committed),
		slog.Int("removed", res.Removed),
		slog.Int("lines", len(res.Lines)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

// phase runs fn inside a child span and records its duration.
func (s *Solver) phase(ctx context.Context, name string, fn func(span trace.Span) error) error {
	_, span := s.opts.Tracer.Start(ctx, "separate."+name)
	defer span.End()

	start := time.Now()
	err := fn(span)
	s.opts.Metrics.observePhase(name, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

// Solve is NewSolver followed by Solve.
func Solve(ctx context.Context, points []core.Point, opts ...Option) (*Result, error) {
	s, err := NewSolver(points, opts...)
	if err != nil {
		return nil, err
	}

	return s.Solve(ctx)
}
