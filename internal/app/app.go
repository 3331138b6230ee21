package app

import (
	"time"

	"omar-backend/config"
	"omar-backend/internal/features"
	"omar-backend/internal/handler"
	"omar-backend/internal/ratelimit"
	"omar-backend/internal/redis"
	"omar-backend/internal/registry"
	"omar-backend/internal/server"
	"omar-backend/internal/services"
	"omar-backend/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

// App owns the process-wide state and hands it to handlers explicitly.
type App struct {
	Config      *config.Config
	Logger      *logger.Logger
	Sessions    *registry.SessionRegistry
	Validations *registry.PendingValidations
	Server      *server.Server

	// Features holds the outcome of every optional module attachment.
	Features []features.AttachResult

	redisClient *goredis.Client
}

// New wires the registries, services, handlers and routes. A nil catalog
// means no optional modules are compiled in.
func New(cfg *config.Config, l *logger.Logger, catalog *features.Catalog) *App {
	if l == nil {
		l = logger.NewNop()
	}
	if catalog == nil {
		catalog = features.NewCatalog()
	}

	a := &App{
		Config:      cfg,
		Logger:      l,
		Sessions:    registry.NewSessionRegistry(),
		Validations: registry.NewPendingValidations(),
	}

	sessionService := services.NewSessionService(a.Sessions, l)
	statusService := services.NewStatusService(cfg, a.Sessions, a.Validations)

	a.Server = server.New(cfg, l)
	a.Server.SetupRoutes(&server.Handlers{
		Health:  handler.NewHealthHandler(statusService, l),
		Session: handler.NewSessionHandler(sessionService),
	}, a.newLimiter())

	a.Features = a.Server.AttachFeatures(catalog, features.Dependencies{
		Config:   cfg,
		Logger:   l,
		Sessions: a.Sessions,
	}, cfg.FeatureModules)

	return a
}

// newLimiter returns nil unless RATE_LIMIT_ENABLED is set; the configured
// rate is still reported by /status either way.
func (a *App) newLimiter() ratelimit.Limiter {
	if !a.Config.RateLimitEnabled {
		return nil
	}
	if a.Config.RedisAddr == "" {
		return ratelimit.NewMemory(a.Config.RateLimitPerMinute, time.Minute)
	}
	a.redisClient = redis.NewClient(redis.Config{
		Addr:     a.Config.RedisAddr,
		Password: a.Config.RedisPassword,
		DB:       a.Config.RedisDB,
	})
	a.Logger.Infof("Using redis rate limiter at %s", a.Config.RedisAddr)
	return redis.NewRateLimiter(a.redisClient, a.Config.RateLimitPerMinute, time.Minute)
}

// Run blocks until the server stops, then releases external clients.
func (a *App) Run() error {
	defer a.close()
	return a.Server.Start()
}

func (a *App) close() {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.Logger.Errorf("Error closing redis client: %s", err)
		}
	}
}
