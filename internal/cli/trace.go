package cli

import (
	"fmt"
	"io"

	"github.com/agbru/fareycalc/internal/farey"
)

// TraceWriter is a farey.Observer that prints one trace line per bisection
// iteration in the shape
//
//	$ frac(1,3) <- 0.4 -> frac(1,2) $
//
// with the current bound pair around the candidate's decimal value.
type TraceWriter struct {
	w io.Writer
}

// Verify that TraceWriter implements farey.Observer.
var _ farey.Observer = (*TraceWriter)(nil)

// NewTraceWriter creates a TraceWriter emitting to w.
//
// Parameters:
//   - w: The destination writer.
//
// Returns:
//   - *TraceWriter: The trace sink.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{w: w}
}

// Observe prints the trace line for one step.
func (t *TraceWriter) Observe(step farey.Step) {
	fmt.Fprintln(t.w, FormatTraceLine(step))
}

// FormatTraceLine renders a single bisection step. The candidate value uses
// Go's default float64 formatting (shortest representation that round-trips).
//
// Parameters:
//   - step: The bisection step to render.
//
// Returns:
//   - string: The trace line without trailing newline.
func FormatTraceLine(step farey.Step) string {
	return fmt.Sprintf("$ frac(%d,%d) <- %v -> frac(%d,%d) $",
		step.Left.Numerator(), step.Left.Denominator(),
		step.Value,
		step.Right.Numerator(), step.Right.Denominator())
}
