package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/tokencrypt/internal/config"
	apperrors "github.com/allisson/tokencrypt/internal/errors"
	"github.com/allisson/tokencrypt/internal/httputil"
	"github.com/allisson/tokencrypt/internal/metrics"
	tokenHTTP "github.com/allisson/tokencrypt/internal/token/http"
	tokenUseCase "github.com/allisson/tokencrypt/internal/token/usecase"
)

const (
	readinessProbePlaintext = "readiness-probe"
	readinessProbeTimeout   = 2 * time.Second
)

// Server is the API server.
type Server struct {
	server      *http.Server
	router      *gin.Engine
	logger      *slog.Logger
	probe       tokenUseCase.TokenUseCase
	rateLimiter *ipRateLimiter
}

// NewServer creates the API server. probe is round-tripped by the readiness endpoint;
// a nil probe reports not ready.
func NewServer(
	probe tokenUseCase.TokenUseCase,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		probe:  probe,
		logger: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// SetupRouter registers middleware and routes. metricsProvider may be nil when
// metrics are disabled.
func (s *Server) SetupRouter(
	cfg *config.Config,
	tokenHandler *tokenHTTP.TokenHandler,
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
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsProvider.Namespace()))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	tokens := router.Group("/v1/tokens")
	if cfg.RateLimitEnabled {
		s.rateLimiter = newIPRateLimiter(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger)
		tokens.Use(s.rateLimiter.Middleware())
	}
	tokens.POST("/encode", tokenHandler.EncodeHandler)
	tokens.POST("/decode", tokenHandler.DecodeHandler)
	tokens.POST("/encode/batch", tokenHandler.EncodeBatchHandler)
	tokens.POST("/decode/batch", tokenHandler.DecodeBatchHandler)

	router.NoRoute(func(c *gin.Context) {
		httputil.HandleErrorGin(c, apperrors.ErrNotFound, s.logger)
	})

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured: call SetupRouter before Start")
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones and stops the rate limiter sweep.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")

	err := s.server.Shutdown(ctx)
	if s.rateLimiter != nil {
		s.rateLimiter.Close()
	}
	return err
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready once a probe plaintext survives a full round trip.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessProbeTimeout)
	defer cancel()

	if err := s.checkPipeline(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"pipeline": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"pipeline": "ok"},
	})
}

func (s *Server) checkPipeline(ctx context.Context) error {
	if s.probe == nil {
		return errors.New("token pipeline not configured")
	}

	token, err := s.probe.Encode(ctx, readinessProbePlaintext)
	if err != nil {
		return err
	}

	plaintext, err := s.probe.Decode(ctx, token)
	if err != nil {
		return err
	}
	if plaintext != readinessProbePlaintext {
		return errors.New("token pipeline round trip mismatch")
	}
	return nil
}
