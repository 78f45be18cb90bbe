package source

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/hillshade/dted/internal/dted"
	"github.com/hillshade/dted/pkg/http/client"
)

// HTTPLoader fetches tiles from a URL template and decodes them in
// memory. The template's "{name}" placeholder is replaced with the tile
// filename.
type HTTPLoader struct {
	Client   client.Interface
	Template string
}

func NewHTTPLoader(c client.Interface, template string) *HTTPLoader {
	return &HTTPLoader{Client: c, Template: template}
}

func (l *HTTPLoader) Load(ctx context.Context, name string) (*dted.Tile, error) {
	url := strings.ReplaceAll(l.Template, "{name}", name)

	resp, err := l.Client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		// Match the FSLoader's missing-tile shape so callers can test
		// with errors.Is regardless of the configured source.
		return nil, fmt.Errorf("tile %s: %w", name, os.ErrNotExist)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching tile %s: http %d", name, resp.StatusCode)
	}

	return dted.Decode(bytes.NewReader(resp.Body))
}
