package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	sf "github.com/peterstace/simplefeatures/geom"
)

// ErrNoGeometry is returned when a document holds nothing drawable.
var ErrNoGeometry = errors.New("no geometries found")

// Feature is one shape with its drawing attributes.
type Feature struct {
	Coords  []Point
	Outline string
	Width   float64
}

// WriteGeoJSON encodes features as a FeatureCollection. Lists with three or
// more vertices become closed Polygons, shorter ones LineStrings. Outline
// and width go into the feature properties.
func WriteGeoJSON(w io.Writer, fs []Feature) error {
	fc := make(sf.GeoJSONFeatureCollection, 0, len(fs))
	for i, f := range fs {
		if len(f.Coords) == 0 {
			continue
		}
		if err := CheckCoords(f.Coords); err != nil {
			return fmt.Errorf("geojson: feature %d: %w", i, err)
		}
		props := map[string]interface{}{}
		if f.Outline != "" {
			props["outline"] = f.Outline
		}
		if f.Width != 0 {
			props["width"] = f.Width
		}
		fc = append(fc, sf.GeoJSONFeature{Geometry: toGeometry(f.Coords), Properties: props})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("geojson: %w", err)
	}
	return nil
}

// featureCollection mirrors the GeoJSON envelope. Geometries are kept raw
// and decoded without validation, so collapsed outlines load back the same
// way they do from WKT.
type featureCollection struct {
	Type     string `json:"type"`
	Features []struct {
		Geometry   json.RawMessage        `json:"geometry"`
		Properties map[string]interface{} `json:"properties"`
	} `json:"features"`
}

// ReadGeoJSON decodes Polygon and LineString features. Polygon holes and
// the closing vertex of outer rings are dropped; other geometry types are
// skipped.
func ReadGeoJSON(r io.Reader) ([]Feature, error) {
	var fc featureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("geojson: want FeatureCollection, got %q", fc.Type)
	}
	var out []Feature
	for i, gf := range fc.Features {
		if len(gf.Geometry) == 0 || string(gf.Geometry) == "null" {
			continue
		}
		g, err := sf.UnmarshalGeoJSON(gf.Geometry, sf.NoValidate{})
		if err != nil {
			return nil, fmt.Errorf("geojson: feature %d: %w", i, err)
		}
		pts, err := fromGeometry(g)
		if err != nil || len(pts) == 0 {
			continue
		}
		f := Feature{Coords: pts}
		f.Outline, _ = gf.Properties["outline"].(string)
		f.Width, _ = gf.Properties["width"].(float64)
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, ErrNoGeometry
	}
	return out, nil
}

// LoadGeoJSON reads a FeatureCollection file written by WriteGeoJSON.
func LoadGeoJSON(path string) ([]Feature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGeoJSON(f)
}

// LoadWKT reads a file with one WKT geometry per line.
func LoadWKT(path string) ([]Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rings, err := ParseWKTLines(string(data))
	if err != nil {
		return nil, err
	}
	out := make([]Feature, 0, len(rings))
	for _, r := range rings {
		if len(r) == 0 {
			continue
		}
		out = append(out, Feature{Coords: r})
	}
	if len(out) == 0 {
		return nil, ErrNoGeometry
	}
	return out, nil
}
