package main

import (
	"os"

	"omar-backend/config"
	"omar-backend/internal/app"
	"omar-backend/internal/features"
	"omar-backend/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.Environment == config.ProductionEnv {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	logger.SetGlobalLogger(l)
	defer func() { _ = l.Sync() }()

	// Optional modules register themselves in this catalog.
	catalog := features.NewCatalog()

	a := app.New(cfg, l, catalog)

	l.Infof("Starting OMAR Industrial AI Backend on %s", cfg.Addr())
	l.Infof("Environment: %s, mode: %s", cfg.Environment, cfg.AppMode)

	if err := a.Run(); err != nil {
		l.Errorf("Server exited with error: %s", err)
		_ = l.Sync()
		os.Exit(1)
	}
}
