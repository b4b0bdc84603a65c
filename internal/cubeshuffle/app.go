// Package cubeshuffle wires the services commands and the TUI consume.
package cubeshuffle

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/cubeshuffle/internal/core/config"
	"github.com/colonyops/cubeshuffle/internal/core/host"
	"github.com/colonyops/cubeshuffle/internal/core/kv"
	"github.com/colonyops/cubeshuffle/internal/core/logging"
	"github.com/colonyops/cubeshuffle/internal/core/settings"
	"github.com/colonyops/cubeshuffle/internal/data/db"
	"github.com/colonyops/cubeshuffle/internal/data/stores"
)

// App is the central entry point for cubeshuffle operations.
// Commands and the TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Config   *config.Config
	Store    kv.Store
	Settings *settings.Manager

	// DetectDesktop resolves the host capability. Each review session calls
	// it exactly once.
	DetectDesktop func() bool
}

// NewApp constructs an App from explicit dependencies.
func NewApp(cfg *config.Config, store kv.Store, logger zerolog.Logger) *App {
	return &App{
		Config:        cfg,
		Store:         store,
		Settings:      settings.NewManager(store, logging.Sub(logger, "settings")),
		DetectDesktop: host.DetectProcess,
	}
}

// Open resolves the configured store backend and builds an App around it.
// backendOverride, when set, replaces the backend from the config file. The
// returned closer releases the store.
func Open(cfg *config.Config, backendOverride string, logger zerolog.Logger) (*App, func()) {
	backend := cfg.Store.Backend
	if backendOverride != "" {
		backend = config.StoreBackend(backendOverride)
	}

	dbOpts := db.OpenOptions{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		BusyTimeout:  cfg.Database.BusyTimeout,
	}

	store, closer := stores.Open(backend, cfg.DataDir, dbOpts, logging.Sub(logger, "store"))
	return NewApp(cfg, store, logger), closer
}
