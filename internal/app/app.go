package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/hmlc/internal/compiler"
	"github.com/vk/hmlc/internal/config"
	"github.com/vk/hmlc/internal/ctxlog"
	"github.com/vk/hmlc/internal/diag"
	"github.com/vk/hmlc/internal/fsutil"
	"github.com/vk/hmlc/internal/session"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	model    *config.Model
	sess     *session.Session
	compiler *compiler.Compiler
	sink     *AggregateSink
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and session.
func NewApp(outW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := config.Load(ctx, appConfig.ProjectPath)
	if err != nil {
		// A failure to load the project file is a fatal startup error.
		panic(fmt.Errorf("failed to load project configuration: %w", err))
	}

	if appConfig.ModeOverride != "" {
		mode, err := config.ParseMode(appConfig.ModeOverride)
		if err != nil {
			panic(err)
		}
		model.Mode = mode
	}
	if appConfig.LogLevel != "" {
		model.LogLevel = appConfig.LogLevel
	}

	// Rebuild the logger now that the project file may have set the level.
	logger = newLogger(model.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Project configuration loaded.", "mode", model.Mode.String())

	fs := fsutil.OS{}
	sess := session.New(model, fs, minSeverity(model.LogLevel))
	sink := NewAggregateSink()

	return &App{
		outW:     outW,
		logger:   logger,
		model:    model,
		sess:     sess,
		compiler: compiler.New(sess, fs, sink),
		sink:     sink,
	}
}

// Session returns the application's build session. This is primarily for testing.
func (a *App) Session() *session.Session {
	return a.sess
}

// minSeverity maps the log level onto the diagnostic emission gate.
func minSeverity(level string) diag.Severity {
	switch level {
	case "warn":
		return diag.Warn
	case "error":
		return diag.Error
	default:
		return diag.Note
	}
}
