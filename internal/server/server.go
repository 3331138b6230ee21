package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"omar-backend/config"
	"omar-backend/internal/features"
	"omar-backend/internal/handler"
	"omar-backend/internal/middleware"
	"omar-backend/internal/ratelimit"
	"omar-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultShutdownTimeout = 5 * time.Second

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	api        *gin.RouterGroup
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Health  *handler.HealthHandler
	Session *handler.SessionHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	if l == nil {
		l = logger.NewNop()
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		l.Warn("invalid trusted proxies, trusting none", zap.Strings("trusted_proxies", cfg.TrustedProxies), zap.Error(err))
		_ = engine.SetTrustedProxies(nil)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.Addr(),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) SetupRoutes(handlers *Handlers, limiter ratelimit.Limiter) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))
	s.engine.Use(middleware.CORSMiddleware(s.config.CORSAllowedOrigins))
	s.engine.Use(middleware.BodyLimitMiddleware(s.config.MaxContentLength))

	// HandleMethodNotAllowed stays off, so a wrong method on a known path is a 404 too.
	s.engine.NoRoute(middleware.NotFound)

	s.engine.GET("/ping", handlers.Health.Ping)
	s.engine.GET("/status", handlers.Health.Status)

	s.api = s.engine.Group("/api", middleware.RateLimitMiddleware(limiter, s.logger))
	{
		s.api.POST("/session/create", handlers.Session.Create)
	}
}

// AttachFeatures mounts optional modules under /api. Failures are logged and
// never abort startup. SetupRoutes must run first.
func (s *Server) AttachFeatures(catalog *features.Catalog, deps features.Dependencies, names []string) []features.AttachResult {
	var router gin.IRouter = s.engine
	if s.api != nil {
		router = s.api
	}

	results := catalog.Attach(router, deps, names)
	for _, r := range results {
		if r.Attached() {
			s.logger.Info("feature routes registered", zap.String("feature", r.Name))
		} else {
			s.logger.Warn("could not register feature routes", zap.String("feature", r.Name), zap.Error(r.Err))
		}
	}
	return results
}

func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Starting the server on %s...", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorf("Error in starting the server: %s", err)
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	s.logger.Infof("Server is running on %s", s.httpServer.Addr)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	s.logger.Infof("Quitting signal received.. Shutting down")

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Error in the graceful shutdown of the server: %s", err)
		return err
	}

	s.logger.Infof("Server stopped gracefully")
	return nil
}
