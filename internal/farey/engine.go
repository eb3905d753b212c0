package farey

import (
	"context"
	"math"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/fareycalc/internal/errors"
)

// maxExactTarget is 2^64 as a float64. Any target at or above it has an
// integer part that cannot be held in a uint64 bound.
const maxExactTarget = float64(math.MaxUint64)

// Result is the outcome of a successful search.
type Result struct {
	// Fraction is the best rational approximation found.
	Fraction Fraction
	// Iterations is the number of bisection steps performed.
	Iterations int
}

// Engine performs mediant bisection over the Stern-Brocot tree. An Engine is
// stateless between searches and safe to reuse; the bound pair lives entirely
// in the loop.
type Engine struct {
	maxIterations int
	observer      Observer
	logger        zerolog.Logger
	tracer        trace.Tracer
}

// EngineOption configures an Engine during construction.
type EngineOption func(*Engine)

// WithMaxIterations overrides the iteration ceiling. Values below one fall
// back to the default.
func WithMaxIterations(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxIterations = n
		}
	}
}

// WithObserver installs the per-iteration trace sink.
func WithObserver(o Observer) EngineOption {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithLogger installs a logger for per-step debug records. The default is
// zerolog.Nop().
func WithLogger(l zerolog.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an Engine with the default iteration ceiling, a
// NullObserver and no logging.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		maxIterations: DefaultMaxIterations,
		observer:      NullObserver{},
		logger:        zerolog.Nop(),
		tracer:        otel.Tracer("fareycalc/farey"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ValidateTarget rejects targets the search cannot represent: negative
// values, NaN, infinities, and values whose integer part exceeds the uint64
// range. The engine calls it eagerly so a bad target never reaches the
// bound-initialization step, where a raw float-to-uint conversion would
// produce undefined values.
//
// Parameters:
//   - target: The candidate search target.
//
// Returns:
//   - error: An apperrors.InputError describing the rejection, or nil.
func ValidateTarget(target float64) error {
	switch {
	case math.IsNaN(target):
		return apperrors.NewInputError("number", "must not be NaN")
	case math.IsInf(target, 0):
		return apperrors.NewInputError("number", "must be finite")
	case target < 0:
		return apperrors.NewInputError("number", "must not be negative (got %g)", target)
	case math.Ceil(target) >= maxExactTarget:
		return apperrors.NewInputError("number", "integer part of %g exceeds the uint64 range", target)
	}
	return nil
}

// Search approximates target by mediant bisection.
//
// The bounds start at floor(target)/1 and ceil(target)/1, so the target is
// bracketed from the first iteration. Each pass computes the mediant, reports
// it to the observer, tests convergence against Epsilon, and replaces the
// bound on the side the mediant fell. The bound pair is replaced wholesale,
// never mutated.
//
// Termination is not guaranteed by the mathematics (the tree is infinite), so
// the loop carries a hard iteration ceiling and the mediant arithmetic is
// overflow-checked; both failure modes surface as distinct errors rather than
// a corrupted or silently wrapped result.
//
// Parameters:
//   - ctx: Context checked for cancellation once per iteration.
//   - target: The non-negative finite value to approximate.
//
// Returns:
//   - Result: The approximating fraction and the step count.
//   - error: InputError, OverflowError, NonConvergenceError, or ctx.Err().
func (e *Engine) Search(ctx context.Context, target float64) (Result, error) {
	ctx, span := e.tracer.Start(ctx, "farey.Search",
		trace.WithAttributes(attribute.Float64("farey.target", target)))
	defer span.End()

	if err := ValidateTarget(target); err != nil {
		return Result{}, err
	}

	left, err := New(uint64(math.Floor(target)), 1)
	if err != nil {
		return Result{}, err
	}
	right, err := New(uint64(math.Ceil(target)), 1)
	if err != nil {
		return Result{}, err
	}

	for i := 0; i < e.maxIterations; i++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		m, err := left.Mediant(right)
		if err != nil {
			return Result{}, err
		}
		v := m.Value()

		e.observer.Observe(Step{Iteration: i, Left: left, Right: right, Mediant: m, Value: v})
		e.logger.Debug().
			Int("iteration", i).
			Str("left", left.String()).
			Str("right", right.String()).
			Str("mediant", m.String()).
			Float64("value", v).
			Msg("bisection step")

		if math.Abs(target-v) < Epsilon {
			span.SetAttributes(attribute.Int("farey.iterations", i+1))
			return Result{Fraction: m.reduce(), Iterations: i + 1}, nil
		}

		if v > target {
			right = m
		} else {
			left = m
		}
	}

	return Result{}, apperrors.NonConvergenceError{Iterations: e.maxIterations}
}
