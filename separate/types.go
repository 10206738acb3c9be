package separate

import (
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/lines"
)

// Sentinel errors.
var (
	// ErrUnseparated indicates two points that no final line separates.
	ErrUnseparated = errors.New("separate: points not separated")

	// ErrRemovalUnsound indicates a removed line whose strip lost separation.
	ErrRemovalUnsound = errors.New("separate: removed line was required")

	// ErrDuplicatePoint indicates two points with identical coordinates.
	ErrDuplicatePoint = errors.New("separate: duplicate point")

	// ErrUnknownOptimizeMode indicates an unrecognised optimize mode name.
	ErrUnknownOptimizeMode = errors.New("separate: unknown optimize mode")

	// ErrAlreadySolved is returned by a second Solve on the same Solver.
	ErrAlreadySolved = errors.New("separate: solver already used")
)

// OptimizeMode selects how redundancy elimination runs.
type OptimizeMode int

const (
	// SinglePass runs one X pass then one Y pass.
	SinglePass OptimizeMode = iota
	// FixedPoint repeats both passes until nothing is removed.
	FixedPoint
	// Off skips redundancy elimination.
	Off
)

// String returns the flag spelling of the mode.
func (m OptimizeMode) String() string {
	switch m {
	case SinglePass:
		return "single"
	case FixedPoint:
		return "fixed"
	case Off:
		return "off"
	default:
		return fmt.Sprintf("OptimizeMode(%d)", int(m))
	}
}

// ParseOptimizeMode maps "single", "fixed" and "off" to a mode. The empty
// string selects SinglePass.
func ParseOptimizeMode(s string) (OptimizeMode, error) {
	switch s {
	case "", "single":
		return SinglePass, nil
	case "fixed":
		return FixedPoint, nil
	case "off":
		return Off, nil
	}

	return SinglePass, fmt.Errorf("%q: %w", s, ErrUnknownOptimizeMode)
}

// Options configures a Solver.
type Options struct {
	Logger   *slog.Logger
	Capacity int
	Mode     OptimizeMode
	Metrics  *Metrics
	Tracer   trace.Tracer
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a discarding logger, core.DefaultCapacity, SinglePass
// optimization, no metrics and the package tracer.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.DiscardHandler),
		Capacity: core.DefaultCapacity,
		Mode:     SinglePass,
		Tracer:   tracer,
	}
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCapacity bounds the number of points; c <= 0 means unbounded.
func WithCapacity(c int) Option {
	return func(o *Options) { o.Capacity = c }
}

// WithOptimizeMode selects the redundancy elimination mode.
func WithOptimizeMode(m OptimizeMode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithoutOptimization is shorthand for WithOptimizeMode(Off).
func WithoutOptimization() Option {
	return WithOptimizeMode(Off)
}

// WithMetrics records solver counters and phase durations on m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithTracer replaces the package tracer; nil keeps it.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// CommitStats summarises the commitment phase.
type CommitStats struct {
	Tested    int // candidates whose split was checked for crossing pairs
	Committed int
	Skipped   int // degenerate splits: no point below, none above, or a point on the line
}

// OptimizeStats summarises redundancy elimination.
type OptimizeStats struct {
	Examined int
	Removed  int
	Rounds   int
}

// Result is the outcome of one solve.
type Result struct {
	// Lines holds the final committed lines in commit order.
	Lines []lines.Line

	// RemovedLines holds the lines dropped by the optimizer, in removal order.
	RemovedLines []lines.Line

	Candidates int // generated candidates over both axes
	Committed  int // lines committed before optimization
	Removed    int

	Commit   CommitStats
	Optimize OptimizeStats
}
