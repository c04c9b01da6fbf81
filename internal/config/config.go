// Package config provides application configuration through environment variables.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	cryptoDomain "github.com/allisson/tokencrypt/internal/crypto/domain"
)

const (
	defaultTokenSaltHex = "28abbccddeef0033"
	defaultTokenIVHex   = "37363534333231302f2e2d2c2b2a2928"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ShutdownTimeout bounds how long graceful shutdown waits for in-flight requests.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// TokenPassphrase is the KDF passphrase. Empty by default.
	TokenPassphrase string
	// TokenSaltHex is the hex-encoded KDF salt.
	TokenSaltHex string
	// TokenIVHex is the hex-encoded cipher IV, reused for every message.
	TokenIVHex string
	// TokenKDFIterations is the PBKDF2 iteration count.
	TokenKDFIterations int
	// TokenKeyLength is the derived key length in bytes.
	TokenKeyLength int
	// TokenBatchConcurrency bounds how many batch items are processed at once.
	TokenBatchConcurrency int

	// RateLimitEnabled indicates whether per-IP rate limiting of the token endpoints is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size per client IP.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Token pipeline
		TokenPassphrase:       env.GetString("TOKEN_PASSPHRASE", ""),
		TokenSaltHex:          env.GetString("TOKEN_SALT_HEX", defaultTokenSaltHex),
		TokenIVHex:            env.GetString("TOKEN_IV_HEX", defaultTokenIVHex),
		TokenKDFIterations:    env.GetInt("TOKEN_KDF_ITERATIONS", cryptoDomain.DefaultIterations),
		TokenKeyLength:        env.GetInt("TOKEN_KEY_LENGTH", cryptoDomain.DefaultKeyLength),
		TokenBatchConcurrency: env.GetInt("TOKEN_BATCH_CONCURRENCY", 8),

		// Rate Limiting (IP-based, token endpoints)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "tokencrypt"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// TokenParams decodes the token settings into pipeline parameters and validates them.
func (c *Config) TokenParams() (cryptoDomain.Params, error) {
	salt, err := hex.DecodeString(c.TokenSaltHex)
	if err != nil {
		return cryptoDomain.Params{}, fmt.Errorf("invalid TOKEN_SALT_HEX: %w", err)
	}

	iv, err := hex.DecodeString(c.TokenIVHex)
	if err != nil {
		return cryptoDomain.Params{}, fmt.Errorf("invalid TOKEN_IV_HEX: %w", err)
	}

	params := cryptoDomain.Params{
		Passphrase: []byte(c.TokenPassphrase),
		Salt:       salt,
		IV:         iv,
		Iterations: c.TokenKDFIterations,
		KeyLength:  c.TokenKeyLength,
	}
	if err := params.Validate(); err != nil {
		return cryptoDomain.Params{}, fmt.Errorf("invalid token parameters: %w", err)
	}

	return params, nil
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv searches for a .env file from the current directory up to the root
// directory and loads the first one found.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
