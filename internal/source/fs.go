package source

import (
	"context"
	"path/filepath"

	"github.com/hillshade/dted/internal/dted"
)

// FSLoader loads tiles from a local directory. Open errors (missing tile,
// permissions) pass through unchanged from the os package.
type FSLoader struct {
	Dir string
}

func NewFSLoader(dir string) *FSLoader {
	if dir == "" {
		dir = "."
	}
	return &FSLoader{Dir: dir}
}

func (l *FSLoader) Load(_ context.Context, name string) (*dted.Tile, error) {
	return dted.Load(filepath.Join(l.Dir, name))
}
