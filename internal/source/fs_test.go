package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hillshade/dted/internal/dted/dtedtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	name := "E0104500N471500_SRTM_1_DEM.dt2"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), dtedtest.New(dtedtest.Uniform(2, 3, 55)).Bytes(), 0o644))

	tile, err := NewFSLoader(dir).Load(context.Background(), name)
	require.NoError(t, err)
	assert.Equal(t, 2, tile.NumLongitudeLines)
	assert.Equal(t, 3, tile.NumLatitudePoints)

	elevation, err := tile.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(55), elevation.Meters)
}

func TestFSLoaderMissingTile(t *testing.T) {
	_, err := NewFSLoader(t.TempDir()).Load(context.Background(), "E0104500N471500_SRTM_1_DEM.dt2")

	// Open errors pass through untouched.
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFSLoaderDefaultsToCurrentDirectory(t *testing.T) {
	assert.Equal(t, ".", NewFSLoader("").Dir)
}
