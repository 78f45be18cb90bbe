package config

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/hillshade/dted/internal/cache"
	"github.com/hillshade/dted/internal/lookup"
	"github.com/hillshade/dted/internal/source"
	"github.com/hillshade/dted/pkg/http/client"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Environment string
	LogLevel    zerolog.Level
	HTTPTimeout time.Duration

	// Tile source selection. An S3 bucket takes precedence over a URL
	// template, which takes precedence over the local directory.
	TileDir         string
	TileURLTemplate string
	S3Bucket        string
	S3Prefix        string

	// Decoded-tile LRU settings. A size of 0 disables caching.
	TileLRUSize       int
	TileLRUTTLMinutes int
}

type Option func(*Config)

// WithEnvironment allows setting the environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithLogLevel allows setting the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		parsedLevel, err := zerolog.ParseLevel(level)
		if err != nil {
			parsedLevel = zerolog.InfoLevel
		}
		c.LogLevel = parsedLevel
	}
}

// WithHTTPTimeout allows setting the tile download timeout
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.HTTPTimeout = timeout
	}
}

// WithTileDir allows setting the local tile directory
func WithTileDir(dir string) Option {
	return func(c *Config) {
		c.TileDir = dir
	}
}

// WithTileURLTemplate allows setting the tile download URL template
func WithTileURLTemplate(template string) Option {
	return func(c *Config) {
		c.TileURLTemplate = template
	}
}

// WithS3 allows setting the tile bucket and key prefix
func WithS3(bucket, prefix string) Option {
	return func(c *Config) {
		c.S3Bucket = bucket
		c.S3Prefix = prefix
	}
}

// WithTileCache allows setting the decoded-tile LRU size and TTL
func WithTileCache(size, ttlMinutes int) Option {
	return func(c *Config) {
		c.TileLRUSize = size
		c.TileLRUTTLMinutes = ttlMinutes
	}
}

// New creates a new configuration with default values
func New(opts ...Option) *Config {
	cfg := &Config{
		Environment:       "production",
		LogLevel:          zerolog.InfoLevel,
		HTTPTimeout:       10 * time.Second,
		TileDir:           ".",
		TileLRUSize:       16,
		TileLRUTTLMinutes: 15,
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// InitializeLogging sets up logging based on the configuration
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(c.LogLevel)

	// Setup console logger for development environments
	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
}

// GetTileLRUTTL returns the tile cache TTL as a duration
func (c *Config) GetTileLRUTTL() time.Duration {
	return time.Duration(c.TileLRUTTLMinutes) * time.Minute
}

// BuildLoader assembles the tile loader described by the configuration:
// the selected source, wrapped in the decoded-tile cache when enabled.
func (c *Config) BuildLoader(ctx context.Context) (lookup.TileLoader, error) {
	var loader lookup.TileLoader
	switch {
	case c.S3Bucket != "":
		s3Loader, err := source.NewS3Loader(ctx, c.S3Bucket, c.S3Prefix)
		if err != nil {
			return nil, err
		}
		loader = s3Loader
	case c.TileURLTemplate != "":
		loader = source.NewHTTPLoader(client.New(client.Options{Timeout: c.HTTPTimeout}), c.TileURLTemplate)
	default:
		loader = source.NewFSLoader(c.TileDir)
	}

	if c.TileLRUSize > 0 {
		cached, err := cache.NewTileCache(loader, c.TileLRUSize, c.GetTileLRUTTL())
		if err != nil {
			return nil, err
		}
		loader = cached
	}

	return loader, nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	return New(
		WithEnvironment(getEnvOrDefault("ENV", "production")),
		WithLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		WithHTTPTimeout(getDurationEnvOrDefault("HTTP_TIMEOUT", 10*time.Second)),
		WithTileDir(getEnvOrDefault("DTED_DIR", ".")),
		WithTileURLTemplate(getEnvOrDefault("DTED_URL_TEMPLATE", "")),
		WithS3(getEnvOrDefault("DTED_S3_BUCKET", ""), getEnvOrDefault("DTED_S3_PREFIX", "")),
		WithTileCache(
			getEnvIntOrDefault("CACHE_TILE_LRU_SIZE", 16),
			getEnvIntOrDefault("CACHE_TILE_LRU_TTL_MINUTES", 15),
		),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Warn().Str("key", key).Msg("Invalid integer value in environment variable, using default")
	}
	return defaultValue
}
