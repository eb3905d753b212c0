//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks

package farey

// Step describes a single iteration of the mediant bisection: the bound pair
// entering the iteration and the candidate mediant computed from it.
type Step struct {
	// Iteration is the zero-based index of the bisection step.
	Iteration int
	// Left is the lower bound entering this iteration.
	Left Fraction
	// Right is the upper bound entering this iteration.
	Right Fraction
	// Mediant is the candidate computed from Left and Right.
	Mediant Fraction
	// Value is Mediant.Value(), computed once per iteration and shared with
	// the convergence test so observers see exactly what the engine compared.
	Value float64
}

// Observer receives one Step per bisection iteration, in iteration order.
// The engine calls it synchronously from the search loop; implementations
// decide whether to print, record, or discard the trace, which keeps the core
// algorithm testable without capturing console output.
type Observer interface {
	// Observe is invoked once per iteration before the convergence test.
	Observe(step Step)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Step)

// Observe calls the underlying function.
func (f ObserverFunc) Observe(step Step) { f(step) }

// NullObserver discards every step. Used for quiet mode and as the engine
// default.
type NullObserver struct{}

// Observe discards the step.
func (NullObserver) Observe(Step) {}

// Recorder is an Observer that retains every step in order. The TUI replays a
// recorded walk, and tests assert on the recorded bound narrowing.
type Recorder struct {
	// Steps holds the observed steps in iteration order.
	Steps []Step
}

// Observe appends the step to the record.
func (r *Recorder) Observe(step Step) {
	r.Steps = append(r.Steps, step)
}
