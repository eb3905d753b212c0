// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayError].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatDiagram], [FormatValue], [FormatTraceLine].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/fareycalc/internal/farey"
	"github.com/agbru/fareycalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode reduces output to the bare fraction.
	Quiet bool
	// NoTrace suppresses the per-iteration trace lines.
	NoTrace bool
}

// FormatValue renders a decimal value to 15 fractional digits with trailing
// zeros stripped, then a trailing decimal point stripped. Whole numbers come
// out bare: FormatValue(4) == "4".
//
// Parameters:
//   - v: The value to format.
//
// Returns:
//   - string: The formatted value.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 15, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatDiagram renders a fraction as a stacked textual fraction beside its
// decimal value, for example:
//
//	              27450985
//	0.33333339 ≈ ----------
//	              82352941
//
//	$ 0.33333339 ≈ frac(27450985,82352941) $
//
// The separator is two dashes wider than the widest of the two integers, and
// both integers are right-aligned so their last digits share a column with
// the separator's right edge.
//
// Parameters:
//   - f: The fraction to render.
//
// Returns:
//   - string: The multi-line diagram, leading newline included, no trailing
//     newline.
func FormatDiagram(f farey.Fraction) string {
	value := FormatValue(f.Value())

	numStr := strconv.FormatUint(f.Numerator(), 10)
	denStr := strconv.FormatUint(f.Denominator(), 10)
	fracWidth := len(numStr)
	if len(denStr) > fracWidth {
		fracWidth = len(denStr)
	}
	sepWidth := fracWidth + 2
	// Right-align the integers to end at the same column as the separator.
	pad := len(value) + 3 + sepWidth

	var b strings.Builder
	fmt.Fprintf(&b, "\n%*s\n", pad, numStr)
	fmt.Fprintf(&b, "%s ≈ %s\n", value, strings.Repeat("-", sepWidth))
	fmt.Fprintf(&b, "%*s\n", pad, denStr)
	fmt.Fprintf(&b, "\n$ %s ≈ frac(%s,%s) $", value, numStr, denStr)
	return b.String()
}

// DisplayResult writes the final result to out. Quiet mode prints only
// "numerator/denominator" for scripting; otherwise the full diagram block is
// printed.
//
// Parameters:
//   - out: The output writer.
//   - result: The search result to display.
//   - config: Output configuration.
func DisplayResult(out io.Writer, result farey.Result, config OutputConfig) {
	if config.Quiet {
		fmt.Fprintln(out, result.Fraction)
		return
	}
	fmt.Fprintln(out, FormatDiagram(result.Fraction))
}

// DisplayError writes "Error: <message>" to out, colorized per the active
// theme.
//
// Parameters:
//   - out: The output writer (conventionally stderr).
//   - err: The error to report.
func DisplayError(out io.Writer, err error) {
	fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
}

// WriteResultToFile writes a search result to a file, preceded by a header
// describing the run.
//
// Parameters:
//   - result: The search result.
//   - target: The approximated value.
//   - config: Output configuration; config.OutputFile names the destination.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result farey.Result, target float64, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Farey Approximation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Target: %v\n", target)
	fmt.Fprintf(file, "# Iterations: %d\n", result.Iterations)
	fmt.Fprintf(file, "%s\n", FormatDiagram(result.Fraction))

	return nil
}
