// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/tokencrypt/internal/config"
	cryptoDomain "github.com/allisson/tokencrypt/internal/crypto/domain"
	"github.com/allisson/tokencrypt/internal/http"
	"github.com/allisson/tokencrypt/internal/metrics"
	tokenHTTP "github.com/allisson/tokencrypt/internal/token/http"
	tokenUseCase "github.com/allisson/tokencrypt/internal/token/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logWriter       io.Writer
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Use Cases
	tokenParams   cryptoDomain.Params
	tokenPipeline tokenUseCase.TokenUseCase
	tokenUseCase  tokenUseCase.TokenUseCase
	silentCodec  *tokenUseCase.SilentCodec

	// Handlers
	tokenHandler *tokenHTTP.TokenHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	tokenParamsInit     sync.Once
	tokenPipelineInit   sync.Once
	tokenUseCaseInit    sync.Once
	silentCodecInit     sync.Once
	tokenHandlerInit    sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// Option customizes a Container before any component is built.
type Option func(*Container)

// WithLogWriter sends log output to w instead of stdout. CLI commands use it to keep
// logs off the stream that carries their results.
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		c.logWriter = w
	}
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config, opts ...Option) *Container {
	c := &Container{
		config:     cfg,
		logWriter:  os.Stdout,
		initErrors: make(map[string]error),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. It is a no-op when metrics
// are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// TokenParams returns the validated pipeline parameters decoded from configuration.
func (c *Container) TokenParams() (cryptoDomain.Params, error) {
	var err error
	c.tokenParamsInit.Do(func() {
		c.tokenParams, err = c.config.TokenParams()
		if err != nil {
			c.initErrors["tokenParams"] = err
		}
	})
	if err != nil {
		return cryptoDomain.Params{}, err
	}
	if storedErr, exists := c.initErrors["tokenParams"]; exists {
		return cryptoDomain.Params{}, storedErr
	}
	return c.tokenParams.Clone(), nil
}

// TokenPipeline returns the uninstrumented token pipeline. Internal callers such as
// the readiness check use it so their traffic stays out of business metrics.
func (c *Container) TokenPipeline() (tokenUseCase.TokenUseCase, error) {
	var err error
	c.tokenPipelineInit.Do(func() {
		c.tokenPipeline, err = c.initTokenPipeline()
		if err != nil {
			c.initErrors["tokenPipeline"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenPipeline"]; exists {
		return nil, storedErr
	}
	return c.tokenPipeline, nil
}

// TokenUseCase returns the token pipeline, instrumented when metrics are enabled.
func (c *Container) TokenUseCase() (tokenUseCase.TokenUseCase, error) {
	var err error
	c.tokenUseCaseInit.Do(func() {
		c.tokenUseCase, err = c.initTokenUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// SilentCodec returns the pipeline wrapped in the empty-string-on-failure convention.
func (c *Container) SilentCodec() (*tokenUseCase.SilentCodec, error) {
	var err error
	c.silentCodecInit.Do(func() {
		c.silentCodec, err = c.initSilentCodec()
		if err != nil {
			c.initErrors["silentCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["silentCodec"]; exists {
		return nil, storedErr
	}
	return c.silentCodec, nil
}

// TokenHandler returns the HTTP handler for token endpoints.
func (c *Container) TokenHandler() (*tokenHTTP.TokenHandler, error) {
	var err error
	c.tokenHandlerInit.Do(func() {
		c.tokenHandler, err = c.initTokenHandler()
		if err != nil {
			c.initErrors["tokenHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenHandler, nil
}

// HTTPServer returns the API server with its router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(c.logWriter, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), provider.Namespace())
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

func (c *Container) initTokenPipeline() (tokenUseCase.TokenUseCase, error) {
	params, err := c.TokenParams()
	if err != nil {
		return nil, fmt.Errorf("failed to get token params for token pipeline: %w", err)
	}

	pipeline, err := tokenUseCase.NewDefaultTokenUseCase(params, c.config.TokenBatchConcurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to create token pipeline: %w", err)
	}
	return pipeline, nil
}

// initTokenUseCase wraps the pipeline with the metrics decorator when metrics are enabled.
func (c *Container) initTokenUseCase() (tokenUseCase.TokenUseCase, error) {
	useCase, err := c.TokenPipeline()
	if err != nil {
		return nil, fmt.Errorf("failed to get token pipeline for token use case: %w", err)
	}

	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
	}
	return tokenUseCase.NewTokenUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initSilentCodec() (*tokenUseCase.SilentCodec, error) {
	useCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for silent codec: %w", err)
	}
	return tokenUseCase.NewSilentCodec(useCase, c.Logger()), nil
}

func (c *Container) initTokenHandler() (*tokenHTTP.TokenHandler, error) {
	useCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for token handler: %w", err)
	}
	return tokenHTTP.NewTokenHandler(useCase, c.Logger()), nil
}

// initHTTPServer creates the API server and configures its router. The readiness
// probe runs on the uninstrumented pipeline.
func (c *Container) initHTTPServer() (*http.Server, error) {
	probe, err := c.TokenPipeline()
	if err != nil {
		return nil, fmt.Errorf("failed to get token pipeline for http server: %w", err)
	}

	tokenHandler, err := c.TokenHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get token handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(probe, c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(c.config, tokenHandler, provider)

	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
