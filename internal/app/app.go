// Package app wires configuration, engine, and presentation into the
// application entry point and dispatches between the execution modes.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/fareycalc/internal/cli"
	"github.com/agbru/fareycalc/internal/config"
	apperrors "github.com/agbru/fareycalc/internal/errors"
	"github.com/agbru/fareycalc/internal/farey"
	"github.com/agbru/fareycalc/internal/logging"
	"github.com/agbru/fareycalc/internal/server"
	"github.com/agbru/fareycalc/internal/tui"
	"github.com/agbru/fareycalc/internal/ui"
)

// Application represents the fareycalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "fareycalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	switch {
	case a.Config.REPL:
		return a.runREPL(out)
	case a.Config.Serve != "":
		return a.runServe(ctx)
	case a.Config.TUI:
		return a.runTUI(ctx)
	default:
		return a.runApproximate(ctx, out)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runApproximate performs a single search and prints the result.
func (a *Application) runApproximate(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	observer := farey.Observer(farey.NullObserver{})
	if !a.Config.Quiet && !a.Config.NoTrace {
		observer = cli.NewTraceWriter(out)
	}

	engineOpts := []farey.EngineOption{
		farey.WithMaxIterations(a.Config.MaxIterations),
		farey.WithObserver(observer),
	}
	if a.Config.Verbose {
		zl := zerolog.New(zerolog.ConsoleWriter{Out: a.ErrWriter}).With().Timestamp().Logger()
		engineOpts = append(engineOpts, farey.WithLogger(zl))
	}

	engine := farey.NewEngine(engineOpts...)

	result, err := engine.Search(ctx, a.Config.Target)
	if err != nil {
		cli.DisplayError(a.ErrWriter, err)
		return apperrors.ExitCodeFor(err)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		NoTrace:    a.Config.NoTrace,
	}
	cli.DisplayResult(out, result, outputCfg)

	if outputCfg.OutputFile != "" {
		if err := cli.WriteResultToFile(result, a.Config.Target, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
		}
	}

	return apperrors.ExitSuccess
}

// runREPL starts the interactive mode.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(cli.REPLConfig{
		MaxIterations: a.Config.MaxIterations,
		Timeout:       a.Config.Timeout,
		Trace:         !a.Config.NoTrace,
	})
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runServe starts the HTTP API and blocks until shutdown.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := logging.NewLogger(os.Stderr, "server")
	srv := server.New(server.Config{
		Addr:          a.Config.Serve,
		MaxIterations: a.Config.MaxIterations,
		SearchTimeout: a.Config.Timeout,
	}, logger)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server terminated", err)
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

// runTUI launches the step-through visualizer.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
