// Package http provides the API server, its middleware and the metrics server.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/allisson/seikyu/internal/config"
	invoiceHTTP "github.com/allisson/seikyu/internal/invoice/http"
	"github.com/allisson/seikyu/internal/metrics"
	profileHTTP "github.com/allisson/seikyu/internal/profile/http"
	"github.com/allisson/seikyu/internal/storage"
	taxHTTP "github.com/allisson/seikyu/internal/tax/http"
)

// readinessTimeout bounds the storage probe made by /ready.
const readinessTimeout = 2 * time.Second

// Server represents the HTTP API server.
type Server struct {
	server  *http.Server
	logger  *slog.Logger
	router  *gin.Engine
	adapter storage.Adapter
}

// NewServer creates a new HTTP server. The adapter is probed by the readiness endpoint.
func NewServer(
	adapter storage.Adapter,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		adapter: adapter,
		logger:  logger,
		server:  newHTTPServer(host, port, nil),
	}
}

// SetupRouter builds the gin engine with middleware, health endpoints and the /v1 API.
// A nil meterProvider disables HTTP metrics.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	profileHandler *profileHTTP.ProfileHandler,
	invoiceHandler *invoiceHTTP.InvoiceHandler,
	calculationHandler *taxHTTP.CalculationHandler,
	meterProvider metric.MeterProvider,
	metricsNamespace string,
) {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(meterProvider, metricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	profileHandler.RegisterRoutes(v1)
	invoiceHandler.RegisterRoutes(v1)
	calculationHandler.RegisterRoutes(v1)

	s.router = router
}

// GetHandler returns the configured router.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. SetupRouter must be called first.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router
	return serve(ctx, s.server, s.logger, "http server")
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return shutdown(ctx, s.server, s.logger, "http server")
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready once the storage backend answers a lookup.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.adapter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"storage": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if _, err := s.adapter.Exists(ctx, storage.KeyProfiles); err != nil {
		s.logger.Error("storage readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"storage": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"storage": "ok"},
	})
}
