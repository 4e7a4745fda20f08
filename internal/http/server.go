// Package http provides the HTTP server that exposes the constant catalog.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/constguard/internal/config"
	"github.com/allisson/constguard/internal/metrics"
	obfuscationHTTP "github.com/allisson/constguard/internal/obfuscation/http"
)

// ReadinessCheck reports whether the constant groups can be served.
type ReadinessCheck func(ctx context.Context) error

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *gin.Engine
	ready  ReadinessCheck
	logger *slog.Logger
}

// NewServer creates a new HTTP server. A nil ready check always reports not ready.
func NewServer(
	ready ReadinessCheck,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		ready:  ready,
		logger: logger,
		server: newHTTPServer(host, port, nil),
	}
}

// SetupRouter builds the Gin router with middleware and constant routes.
// metricsProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	constantHandler *obfuscationHTTP.ConstantHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	{
		v1.GET("/groups", constantHandler.ListGroupsHandler)
		v1.GET("/constants", constantHandler.ListHandler)
		v1.GET("/constants/:group/:name", constantHandler.GetHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether every constant group builds and resolves.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.ready == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"constants": "error"},
		})
		return
	}

	if err := s.ready(c.Request.Context()); err != nil {
		s.logger.Error("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"constants": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"constants": "ok"},
	})
}
