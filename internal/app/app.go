// Package app wires configuration and logging to the strand tools.
// Each command method reads its input, runs one operation and writes the
// result to the application's output.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/strand/internal/config"
	"github.com/dshills/strand/internal/config/loader"
	"github.com/dshills/strand/internal/engine/strand"
)

// Options configures New. Empty fields fall back to the loaded config or the
// process standard streams.
type Options struct {
	// ConfigPath is an explicit config file.
	ConfigPath string

	// LogLevel and Variant override the config when non-empty.
	LogLevel string
	Variant  string

	// Overrides are extra dotted-path settings, highest priority.
	Overrides map[string]any

	// Interactive selects text reports by default instead of JSON.
	Interactive bool

	// FS and SkipEnv are passed through to config.Load.
	FS      loader.FileSystem
	SkipEnv bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Application holds the resolved configuration and I/O for one invocation.
type Application struct {
	cfg         *config.Config
	variant     strand.Variant
	logger      *Logger
	interactive bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New loads configuration and creates the application.
func New(opts Options) (*Application, error) {
	overrides := make(map[string]any, len(opts.Overrides)+2)
	for k, v := range opts.Overrides {
		overrides[k] = v
	}
	if opts.LogLevel != "" {
		overrides["log.level"] = opts.LogLevel
	}
	if opts.Variant != "" {
		overrides["strand.variant"] = opts.Variant
	}

	cfg, err := config.Load(config.Options{
		Path:      opts.ConfigPath,
		FS:        opts.FS,
		SkipEnv:   opts.SkipEnv,
		Overrides: overrides,
	})
	if err != nil {
		return nil, NewOperationError("load config", opts.ConfigPath, err)
	}

	v, err := cfg.Variant()
	if err != nil {
		return nil, err
	}

	app := &Application{
		cfg:         cfg,
		variant:     v,
		interactive: opts.Interactive,
		stdin:       opts.Stdin,
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}

	logCfg := DefaultLoggerConfig()
	logCfg.Level = ParseLogLevel(cfg.Log.Level)
	logCfg.Output = app.stderr
	app.logger = NewLogger(logCfg)

	app.logger.Debug("config loaded: variant=%s", v)
	return app, nil
}

// Config returns the resolved configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return NullLogger
	}
	return app.logger
}

// Variant returns the configured strand variant.
func (app *Application) Variant() strand.Variant {
	return app.variant
}

// Stdout returns the writer command output goes to.
func (app *Application) Stdout() io.Writer {
	return app.stdout
}

// logComponentError logs an error with component context.
func (app *Application) logComponentError(component string, err error) {
	if err != nil {
		app.Logger().WithComponent(component).Error("error: %v", err)
	}
}

func (app *Application) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(app.stdout, format, args...)
}
