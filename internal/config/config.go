// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Catalog    CatalogConfig
	Validation ValidationConfig
	Results    ResultsConfig
	Elevation  ElevationConfig
	Security   SecurityConfig
	Logging    LoggingConfig
	Metrics    MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 60s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"60s"`

	// WriteTimeout is the maximum duration for writing response (default: 0, streamed results)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"0s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds the optional PostgreSQL connection used to validate
// query results. Without a URL, query validation is disabled.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// MaxConns is the maximum number of connections in the pool (default: 10)
	MaxConns int `env:"DB_MAX_CONNS" default:"10"`

	// MinConns is the minimum number of connections to keep open (default: 0)
	MinConns int `env:"DB_MIN_CONNS" default:"0"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// Enabled reports whether a database is configured.
func (c *DatabaseConfig) Enabled() bool { return c.URL != "" }

// CatalogConfig locates the reference data.
type CatalogConfig struct {
	// SubdivisionsPath is the municipality table, an id,nombre CSV (required)
	SubdivisionsPath string `env:"CATALOG_SUBDIVISIONS_PATH" envAlt:"MUNICIPIOS_PATH" required:"true"`

	// DictionariesPath is an optional YAML file of external dictionaries
	DictionariesPath string `env:"CATALOG_DICTIONARIES_PATH"`
}

// ValidationConfig holds batch validation settings.
type ValidationConfig struct {
	// MaxConcurrent is the maximum number of parallel batches (default: 4)
	MaxConcurrent int `env:"VALIDATION_MAX_CONCURRENT" default:"4"`

	// MaxWaitTime is how long to wait for a validation slot (default: 30s)
	MaxWaitTime time.Duration `env:"VALIDATION_MAX_WAIT_TIME" default:"30s"`

	// MaxBodySize is the maximum accepted request body in bytes (default: 100MB)
	MaxBodySize int64 `env:"VALIDATION_MAX_BODY_SIZE" default:"104857600"`

	// Timeout is the maximum duration of one validation (default: 5m)
	Timeout time.Duration `env:"VALIDATION_TIMEOUT" default:"5m"`

	// ChunkSize is the number of rows per chunk when streaming (default: 5000)
	ChunkSize int `env:"VALIDATION_CHUNK_SIZE" default:"5000"`
}

// ResultsConfig holds settings for stored validation results.
type ResultsConfig struct {
	// Capacity is how many results are kept for retrieval (default: 100)
	Capacity int `env:"RESULTS_CAPACITY" default:"100"`

	// MaxAge is how long a result is kept (default: 1h)
	MaxAge time.Duration `env:"RESULTS_MAX_AGE" default:"1h"`

	// CheckInterval is how often old results are pruned (default: 5m)
	CheckInterval time.Duration `env:"RESULTS_CHECK_INTERVAL" default:"5m"`
}

// ElevationConfig holds the elevation service settings.
type ElevationConfig struct {
	// URL is the Open-Elevation compatible lookup endpoint
	URL string `env:"ELEVATION_URL" default:"https://api.open-elevation.com/api/v1/lookup"`

	// BatchSize is the number of points per request (default: 50)
	BatchSize int `env:"ELEVATION_BATCH_SIZE" default:"50"`

	// Delay is the pause between two requests (default: 500ms)
	Delay time.Duration `env:"ELEVATION_DELAY" default:"500ms"`

	// Timeout is the per-request timeout (default: 30s)
	Timeout time.Duration `env:"ELEVATION_TIMEOUT" default:"30s"`

	// SourceCRS is the EPSG code of planar input points, reprojected to WGS84
	// before lookup (default: 9377, MAGNA-SIRGAS Origen-Nacional)
	SourceCRS int `env:"ELEVATION_SOURCE_CRS" default:"9377"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// RequireAPIKey enables API key authentication on /api routes (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" default:"false"`

	// APIKeys is a comma-separated list of accepted keys
	APIKeys []string `env:"API_KEYS"`

	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	// Enabled exposes /metrics (default: true)
	Enabled bool `env:"METRICS_ENABLED" default:"true"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
