package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TolikMuradov/AstroCalendar/internal/pkg/logger"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	log := logger.New(name, cfg.Log)
	logger.SetDefault(log)

	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  log,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Log.Info("running astro calendar")

	deps, err := a.initDependencies(ctx)
	if err != nil {
		return fmt.Errorf("failed to init dependencies: %w", err)
	}

	if err := a.runServices(ctx, deps); err != nil {
		a.Log.Error("application error", "error", err)
		return err
	}

	return nil
}
