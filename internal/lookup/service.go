package lookup

import (
	"context"
	"fmt"

	"github.com/hillshade/dted/internal/dted"
	"github.com/hillshade/dted/internal/geo"
	"github.com/rs/zerolog/log"
)

// TileSuffix is the trailing part of every tile filename this service
// resolves.
const TileSuffix = "_SRTM_1_DEM.dt2"

// TileLoader resolves a tile filename to a fully decoded tile.
type TileLoader interface {
	Load(ctx context.Context, name string) (*dted.Tile, error)
}

// Service resolves coordinate pairs to elevations. It holds no state
// across calls; every Height call loads and discards its own tile unless
// the configured loader caches.
type Service struct {
	loader TileLoader
}

func NewService(loader TileLoader) *Service {
	return &Service{loader: loader}
}

// TileName composes the filename of the tile containing the coordinate
// pair: longitude fragment, latitude fragment, fixed suffix.
func TileName(lat, lon geo.Coord) string {
	return lon.TileFragment() + lat.TileFragment() + TileSuffix
}

// Height resolves two coordinate tokens, one latitude and one longitude
// in either order, to the elevation at the containing tile's grid post.
// An invalid elevation result means the tile has no data at that post; it
// is not an error.
func (s *Service) Height(ctx context.Context, tokenA, tokenB string) (dted.Elevation, error) {
	a, err := geo.Parse(tokenA)
	if err != nil {
		return dted.Elevation{}, err
	}
	b, err := geo.Parse(tokenB)
	if err != nil {
		return dted.Elevation{}, err
	}

	var lat, lon geo.Coord
	switch {
	case a.Axis() == geo.Latitude && b.Axis() == geo.Longitude:
		lat, lon = a, b
	case a.Axis() == geo.Longitude && b.Axis() == geo.Latitude:
		lat, lon = b, a
	default:
		return dted.Elevation{}, NewUsageError("need one latitude and one longitude")
	}

	name := TileName(lat, lon)
	log.Debug().
		Str("tile", name).
		Str("lat", lat.String()).
		Str("lon", lon.String()).
		Msg("Resolving elevation")

	tile, err := s.loader.Load(ctx, name)
	if err != nil {
		return dted.Elevation{}, fmt.Errorf("loading tile %s: %w", name, err)
	}

	return tile.At(lon.SubIndex(), lat.SubIndex())
}
