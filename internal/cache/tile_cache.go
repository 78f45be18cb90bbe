package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hillshade/dted/internal/dted"
	"github.com/rs/zerolog/log"
)

// clock abstracts the time source so tests can control TTL expiry.
type clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// TileLoader matches the loader interface consumed by the lookup service.
type TileLoader interface {
	Load(ctx context.Context, name string) (*dted.Tile, error)
}

type entry struct {
	tile      *dted.Tile
	expiresAt time.Time
}

// TileCache decorates a TileLoader with an in-process LRU of decoded
// tiles. Decoded tiles are immutable, so handing the same *Tile to
// concurrent callers is safe.
type TileCache struct {
	next   TileLoader
	lru    *lru.Cache[string, *entry]
	ttl    time.Duration
	clock  clock
	hits   uint64
	misses uint64
}

func NewTileCache(next TileLoader, size int, ttl time.Duration) (*TileCache, error) {
	lruCache, err := lru.New[string, *entry](size)
	if err != nil {
		return nil, fmt.Errorf("creating LRU cache: %w", err)
	}

	return &TileCache{
		next:  next,
		lru:   lruCache,
		ttl:   ttl,
		clock: realClock{},
	}, nil
}

// Load returns the cached tile when present and fresh, otherwise loads
// through and caches the result. Load errors are never cached.
func (c *TileCache) Load(ctx context.Context, name string) (*dted.Tile, error) {
	if e, ok := c.lru.Get(name); ok {
		if c.clock.Now().Before(e.expiresAt) {
			c.hits++
			return e.tile, nil
		}
		// Entry expired, remove it
		c.lru.Remove(name)
	}
	c.misses++

	tile, err := c.next.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	c.lru.Add(name, &entry{
		tile:      tile,
		expiresAt: c.clock.Now().Add(c.ttl),
	})
	log.Debug().Str("tile", name).Msg("Cached decoded tile")

	return tile, nil
}

// Stats returns hit and miss counts since construction.
func (c *TileCache) Stats() map[string]uint64 {
	return map[string]uint64{
		"hits":   c.hits,
		"misses": c.misses,
	}
}

// Clear removes all entries from the cache.
func (c *TileCache) Clear() {
	c.lru.Purge()
}
