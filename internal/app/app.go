package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/stepadapter/internal/config"
	"github.com/specialistvlad/stepadapter/internal/ctxlog"
	"github.com/specialistvlad/stepadapter/internal/hcl_adapter"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	loader    config.Loader
	converter *hcl_adapter.Converter
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW, through a logger owned by this App.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		loader:    loader,
		converter: hcl_adapter.NewConverter(),
	}
}

// Context returns ctx carrying the App's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
