// Package config loads the catalog service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = 8080
	DefaultCatalogFile     = "products.json"
	DefaultLogLevel        = "info"
	DefaultMetricsEnabled  = true
	DefaultShutdownTimeout = 10 * time.Second
)

const (
	EnvPort            = "PORT"
	EnvCatalogFile     = "CATALOG_FILE"
	EnvLogLevel        = "LOG_LEVEL"
	EnvMetricsEnabled  = "METRICS_ENABLED"
	EnvMetricsToken    = "METRICS_TOKEN" //nolint:gosec // env var name
	EnvRateLimitPerMin = "RATE_LIMIT_PER_MIN"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

type Config struct {
	Port            int
	CatalogFile     string
	LogLevel        string
	MetricsEnabled  bool
	MetricsToken    string
	RateLimitPerMin int
	ShutdownTimeout time.Duration
}

var (
	ErrInvalidPort            = errors.New("port must be between 1 and 65535")
	ErrInvalidLogLevel        = errors.New("log level must be one of: debug, info, warn, error")
	ErrEmptyCatalogFile       = errors.New("catalog file path must not be empty")
	ErrInvalidRateLimit       = errors.New("rate limit must not be negative")
	ErrInvalidShutdownTimeout = errors.New("shutdown timeout must be positive")
)

// Load reads dotenv files (missing ones are skipped), then the environment.
// Variables already set in the environment win over dotenv values.
func Load(dotenv ...string) (*Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, f := range dotenv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Port:            DefaultPort,
		CatalogFile:     DefaultCatalogFile,
		LogLevel:        DefaultLogLevel,
		MetricsEnabled:  DefaultMetricsEnabled,
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadEnv() error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvPort, err)
		}
		c.Port = port
	}

	if v, ok := os.LookupEnv(EnvCatalogFile); ok {
		c.CatalogFile = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	if v := os.Getenv(EnvMetricsEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvMetricsEnabled, err)
		}
		c.MetricsEnabled = enabled
	}

	c.MetricsToken = os.Getenv(EnvMetricsToken)

	if v := os.Getenv(EnvRateLimitPerMin); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvRateLimitPerMin, err)
		}
		c.RateLimitPerMin = n
	}

	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvShutdownTimeout, err)
		}
		c.ShutdownTimeout = d
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return ErrInvalidPort
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	if c.CatalogFile == "" {
		return ErrEmptyCatalogFile
	}
	if c.RateLimitPerMin < 0 {
		return ErrInvalidRateLimit
	}
	if c.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
