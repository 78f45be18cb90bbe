package config

import (
	"context"
	"testing"
	"time"

	"github.com/hillshade/dted/internal/cache"
	"github.com/hillshade/dted/internal/source"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, ".", cfg.TileDir)
	assert.Equal(t, 16, cfg.TileLRUSize)
	assert.Equal(t, 15*time.Minute, cfg.GetTileLRUTTL())
}

func TestOptions(t *testing.T) {
	cfg := New(
		WithEnvironment("development"),
		WithLogLevel("debug"),
		WithHTTPTimeout(3*time.Second),
		WithTileDir("/var/tiles"),
		WithTileCache(8, 30),
	)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "/var/tiles", cfg.TileDir)
	assert.Equal(t, 8, cfg.TileLRUSize)
	assert.Equal(t, 30*time.Minute, cfg.GetTileLRUTTL())
}

func TestWithLogLevelInvalidFallsBack(t *testing.T) {
	cfg := New(WithLogLevel("shouting"))
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", "local")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("DTED_DIR", "/srv/dted")
	t.Setenv("CACHE_TILE_LRU_SIZE", "4")
	t.Setenv("CACHE_TILE_LRU_TTL_MINUTES", "5")

	cfg := LoadFromEnv()

	assert.Equal(t, "local", cfg.Environment)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "/srv/dted", cfg.TileDir)
	assert.Equal(t, 4, cfg.TileLRUSize)
	assert.Equal(t, 5*time.Minute, cfg.GetTileLRUTTL())
}

func TestLoadFromEnvInvalidInt(t *testing.T) {
	t.Setenv("CACHE_TILE_LRU_SIZE", "many")

	cfg := LoadFromEnv()
	assert.Equal(t, 16, cfg.TileLRUSize)
}

func TestBuildLoaderDefaultsToCachedFS(t *testing.T) {
	cfg := New()

	loader, err := cfg.BuildLoader(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &cache.TileCache{}, loader)
}

func TestBuildLoaderWithoutCache(t *testing.T) {
	cfg := New(WithTileCache(0, 0))

	loader, err := cfg.BuildLoader(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &source.FSLoader{}, loader)
}

func TestBuildLoaderHTTP(t *testing.T) {
	cfg := New(
		WithTileCache(0, 0),
		WithTileURLTemplate("https://tiles.example.com/dted/{name}"),
	)

	loader, err := cfg.BuildLoader(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &source.HTTPLoader{}, loader)
}
