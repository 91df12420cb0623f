// Package app wires configuration, logging, metrics and the report composers
// into the runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/rlmsinclair/lhc/internal/config"
	apperrors "github.com/rlmsinclair/lhc/internal/errors"
	"github.com/rlmsinclair/lhc/internal/logging"
	"github.com/rlmsinclair/lhc/internal/metrics"
	"github.com/rlmsinclair/lhc/internal/tui"
	"github.com/rlmsinclair/lhc/internal/ui"
)

// Application represents the lhccalc application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	Metrics   *metrics.Collector
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithMetrics sets a custom metrics collector for the application.
func WithMetrics(c *metrics.Collector) AppOption {
	return func(a *Application) { a.Metrics = c }
}

// New creates a new Application instance by parsing command-line arguments.
// args includes the program name at index 0.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	var cmdArgs []string
	if len(args) > 0 {
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		if errWriter == os.Stderr {
			app.Logger = logging.NewDefaultLogger()
		} else {
			app.Logger = logging.NewLogger(errWriter, "app")
		}
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewCollector()
	}
	return app, nil
}

// Run executes the application based on the configured mode.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	a.Logger.Debug("configuration resolved", logging.String("config", a.Config.String()))

	var code int
	if a.Config.TUI {
		code = a.runTUI(ctx)
	} else {
		code = a.runReports(ctx, out)
	}

	if a.Config.ShowMetrics {
		if err := a.Metrics.Dump(a.ErrWriter); err != nil {
			a.Logger.Error("dumping metrics", err)
		}
	}
	return code
}

// runTUI launches the interactive terminal interface.
func (a *Application) runTUI(ctx context.Context) int {
	if err := tui.Run(ctx, a.Config, Version); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
