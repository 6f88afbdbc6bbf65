package render

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"figcanvas/internal/geom"
)

// WriteGeoJSON encodes the canvas as a FeatureCollection.
func (c *Canvas) WriteGeoJSON(w io.Writer) error {
	return geom.WriteGeoJSON(w, c.Features())
}

// LoadPath adds the shapes stored in a .geojson, .json or .wkt file and
// returns how many were added.
func (c *Canvas) LoadPath(p string, fallback string) (int, error) {
	var (
		fs  []geom.Feature
		err error
	)
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".geojson", ".json":
		fs, err = geom.LoadGeoJSON(p)
	case ".wkt":
		fs, err = geom.LoadWKT(p)
	default:
		return 0, fmt.Errorf("render: unsupported file: %q", ext)
	}
	if err != nil {
		return 0, fmt.Errorf("render: load %s: %w", filepath.Base(p), err)
	}
	n := c.AddFeatures(fs, fallback)
	Logger().Info("loaded", slog.String("path", p), slog.Int("items", n), slog.Int("skipped", len(fs)-n))
	return n, nil
}
