package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/blcheck/internal/blacklist"
	"github.com/agbru/blcheck/internal/config"
	apperrors "github.com/agbru/blcheck/internal/errors"
	"github.com/agbru/blcheck/internal/logging"
	"github.com/agbru/blcheck/internal/scan"
	"github.com/agbru/blcheck/internal/ui"
)

// Application represents the blcheck application instance.
type Application struct {
	Config    config.AppConfig
	Oracle    scan.Oracle
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithOracle replaces the blacklist registry built from the configuration.
func WithOracle(o scan.Oracle) AppOption {
	return func(a *Application) { a.Oracle = o }
}

// WithLogger sets the structured logger. By default the application logs JSON
// to its error writer.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "blcheck"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	if err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, apperrors.NewConfigError("invalid log level %q: %v", cfg.LogLevel, err)
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "blcheck")
	}
	if app.Oracle == nil {
		registry, err := newRegistry(cfg, app.Logger)
		if err != nil {
			return nil, err
		}
		app.Oracle = registry
	}
	return app, nil
}

// newRegistry builds the blacklist registry selected by the configuration:
// the seed file when one is given, the demonstration registry otherwise.
func newRegistry(cfg config.AppConfig, logger logging.Logger) (*blacklist.Registry, error) {
	if cfg.SeedFile != "" {
		r, err := blacklist.LoadSeedFile(cfg.SeedFile, blacklist.WithLogger(logger))
		if err != nil {
			return nil, apperrors.NewConfigError("loading seed file %s: %v", cfg.SeedFile, err)
		}
		return r, nil
	}
	r, err := blacklist.NewSizedDemoRegistry(cfg.ServerCount, blacklist.WithLogger(logger))
	if err != nil {
		return nil, apperrors.NewConfigError("building demo registry: %v", err)
	}
	return r, nil
}

// Run executes the configured command and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	checker, err := scan.NewChecker(a.Oracle, scan.Policy{AlarmCount: a.Config.AlarmCount}, scan.WithLogger(a.Logger))
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	switch a.Config.Command {
	case config.CommandCheck:
		return a.runCheck(ctx, checker, out)
	case config.CommandBench:
		return a.runBench(ctx, checker, out)
	default:
		return a.runServe(ctx, checker)
	}
}

// withLifecycle bounds ctx by the configured timeout and by SIGINT/SIGTERM.
func (a *Application) withLifecycle(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
