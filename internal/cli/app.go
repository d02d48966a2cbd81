// Package cli provides the dumber-mobile command line using cobra and Bubble Tea.
package cli

import (
	"context"

	"github.com/bnema/dumber-mobile/internal/cli/styles"
	"github.com/bnema/dumber-mobile/internal/domain/build"
	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Context with logger
	ctx context.Context
}

// NewApp loads configuration and builds the CLI logger.
// A config that fails to load falls back to the defaults so read-only
// commands keep working; the failure is logged.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	loadErr := mgr.Load()
	if loadErr == nil {
		cfg = mgr.Get()
	}

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("config load failed, using defaults")
	}

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		ctx:           logging.WithContext(context.Background(), logger),
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
