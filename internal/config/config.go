// Package config handles command-line flag parsing, environment variable
// overrides, and configuration validation for the fareycalc application.
//
// Configuration priority (highest first):
//  1. CLI flags (--max-iterations, --timeout, ...)
//  2. Environment variables (FAREY_MAX_ITERATIONS, FAREY_TIMEOUT, ...)
//  3. Static defaults
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	apperrors "github.com/agbru/fareycalc/internal/errors"
	"github.com/agbru/fareycalc/internal/farey"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "FAREY_"

// DefaultTimeout bounds a single search when no --timeout is given.
const DefaultTimeout = 30 * time.Second

// AppConfig holds the complete application configuration resolved from
// flags, environment variables and defaults.
type AppConfig struct {
	// Target is the positional number to approximate. Valid only when
	// HasTarget is true; modes like --repl or --serve run without one.
	Target    float64
	HasTarget bool

	// MaxIterations is the bisection iteration ceiling.
	MaxIterations int
	// Timeout bounds the execution of a single search.
	Timeout time.Duration

	// Quiet reduces output to the bare fraction on stdout.
	Quiet bool
	// Verbose enables debug logging of each bisection step.
	Verbose bool
	// NoTrace suppresses the per-iteration trace lines.
	NoTrace bool
	// NoColor disables ANSI colors in the output.
	NoColor bool

	// OutputFile is an optional path to also write the result to.
	OutputFile string

	// REPL starts the interactive mode instead of a single search.
	REPL bool
	// Serve, when non-empty, is the listen address for the HTTP API.
	Serve string
	// TUI starts the step-through bisection visualizer.
	TUI bool
	// Completion, when non-empty, names the shell to emit a completion
	// script for ("bash", "zsh", "fish").
	Completion string
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags not set on the command line.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: The writer for usage and error output.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError otherwise.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		MaxIterations: farey.DefaultMaxIterations,
		Timeout:       DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.BoolVar(&cfg.Quiet, "quiet", false, "Quiet mode: print only the fraction")
	fs.BoolVar(&cfg.Quiet, "q", false, "Quiet mode (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Debug logging of each bisection step")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose mode (shorthand)")
	fs.BoolVar(&cfg.NoTrace, "no-trace", false, "Suppress per-iteration trace lines")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	fs.IntVar(&cfg.MaxIterations, "max-iterations", farey.DefaultMaxIterations, "Iteration ceiling for the bisection search")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum execution time for a single search")
	fs.StringVar(&cfg.OutputFile, "output", "", "Also write the result to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "Output file (shorthand)")
	fs.BoolVar(&cfg.REPL, "repl", false, "Start interactive mode")
	fs.StringVar(&cfg.Serve, "serve", "", "Serve the HTTP approximation API on this address (e.g. :8080)")
	fs.BoolVar(&cfg.TUI, "tui", false, "Start the step-through bisection visualizer")
	fs.StringVar(&cfg.Completion, "completion", "", "Generate a completion script for the given shell (bash, zsh, fish)")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options] NUMBER\n\n", programName)
		fmt.Fprintf(errWriter, "Approximate NUMBER as a fraction of two integers by mediant bisection.\n\n")
		fmt.Fprintf(errWriter, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nEnvironment variables (overridden by flags): %sMAX_ITERATIONS, %sTIMEOUT,\n", EnvPrefix, EnvPrefix)
		fmt.Fprintf(errWriter, "%sQUIET, %sVERBOSE, %sNO_TRACE, %sNO_COLOR, %sOUTPUT, %sSERVE.\n", EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, err
		}
		return cfg, apperrors.ConfigError{Message: err.Error()}
	}

	applyEnvOverrides(&cfg, fs)

	if err := parsePositional(&cfg, fs); err != nil {
		fmt.Fprintf(errWriter, "%s: %v\n", programName, err)
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errWriter, "%s: %v\n", programName, err)
		return cfg, err
	}

	return cfg, nil
}

// parsePositional consumes the single positional NUMBER argument.
func parsePositional(cfg *AppConfig, fs *flag.FlagSet) error {
	switch fs.NArg() {
	case 0:
		// Modes without a target are fine; the single-shot path checks later.
		return nil
	case 1:
		raw := fs.Arg(0)
		target, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return apperrors.NewInputError("NUMBER", "%q is not a number", raw)
		}
		cfg.Target = target
		cfg.HasTarget = true
		return nil
	default:
		return apperrors.ConfigError{Message: fmt.Sprintf("expected a single NUMBER argument, got %d", fs.NArg())}
	}
}

// Validate checks the configuration for consistency.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate() error {
	if c.MaxIterations <= 0 {
		return apperrors.ConfigError{Message: fmt.Sprintf("iteration ceiling must be positive, got %d", c.MaxIterations)}
	}
	if c.Timeout <= 0 {
		return apperrors.ConfigError{Message: fmt.Sprintf("timeout must be positive, got %s", c.Timeout)}
	}

	modes := 0
	for _, active := range []bool{c.REPL, c.Serve != "", c.TUI, c.Completion != ""} {
		if active {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.ConfigError{Message: "at most one of --repl, --serve, --tui, --completion may be used"}
	}

	needsTarget := modes == 0 || c.TUI
	if needsTarget && !c.HasTarget {
		return apperrors.ConfigError{Message: "missing required NUMBER argument"}
	}

	return nil
}
