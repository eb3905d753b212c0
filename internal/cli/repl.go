// Package cli provides the REPL (Read-Eval-Print Loop) functionality
// for interactive Farey approximations.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/fareycalc/internal/farey"
	"github.com/agbru/fareycalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// MaxIterations is the iteration ceiling applied to each search.
	MaxIterations int
	// Timeout is the maximum duration for each search.
	Timeout time.Duration
	// Trace enables per-iteration trace output.
	Trace bool
}

// REPL represents an interactive Farey approximation session.
type REPL struct {
	config REPLConfig
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance reading from stdin and writing to
// stdout by default.
//
// Parameters:
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(config REPLConfig) *REPL {
	if config.MaxIterations <= 0 {
		config.MaxIterations = farey.DefaultMaxIterations
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &REPL{
		config: config,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"farey> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sFarey Approximation - Interactive Mode%s               %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<number>%s      - Approximate the number as a fraction\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %strace on|off%s  - Toggle per-iteration trace output\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %smax <n>%s       - Set the iteration ceiling\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s        - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s   - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "trace":
		r.cmdTrace(args)
	case "max":
		r.cmdMax(args)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Try to interpret the input as a number to approximate
		if target, err := strconv.ParseFloat(cmd, 64); err == nil {
			r.approximate(target)
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

// cmdTrace handles the "trace" command.
func (r *REPL) cmdTrace(args []string) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		fmt.Fprintf(r.out, "%sUsage: trace on|off%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	r.config.Trace = args[0] == "on"
	fmt.Fprintf(r.out, "Trace output %s%s%s\n", ui.ColorCyan(), args[0], ui.ColorReset())
}

// cmdMax handles the "max" command.
func (r *REPL) cmdMax(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: max <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		fmt.Fprintf(r.out, "%sInvalid iteration ceiling: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	r.config.MaxIterations = n
	fmt.Fprintf(r.out, "Iteration ceiling set to %s%d%s\n", ui.ColorCyan(), n, ui.ColorReset())
}

// cmdStatus displays the current session configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Iteration ceiling: %d\n", r.config.MaxIterations)
	fmt.Fprintf(r.out, "  Timeout:           %s\n", r.config.Timeout)
	fmt.Fprintf(r.out, "  Trace:             %t\n", r.config.Trace)
}

// approximate runs a search for target and displays the result.
func (r *REPL) approximate(target float64) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	observer := farey.Observer(farey.NullObserver{})
	if r.config.Trace {
		observer = NewTraceWriter(r.out)
	}

	engine := farey.NewEngine(
		farey.WithMaxIterations(r.config.MaxIterations),
		farey.WithObserver(observer),
	)

	result, err := engine.Search(ctx, target)
	if err != nil {
		DisplayError(r.out, err)
		return
	}

	DisplayResult(r.out, result, OutputConfig{})
}
