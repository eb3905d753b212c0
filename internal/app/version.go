package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/agbru/fareycalc/internal/app.Version=...".
var Version = "1.0.0"

// HasVersionFlag reports whether args contains a version flag. It is checked
// before full flag parsing so that --version works regardless of other
// arguments.
//
// Parameters:
//   - args: The command-line arguments (without the program name).
//
// Returns:
//   - bool: true if a version flag is present.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-V", "-version", "--version":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
//
// Parameters:
//   - out: The destination writer.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "fareycalc version %s (%s, %s/%s)\n",
		Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
