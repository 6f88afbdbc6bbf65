package geom

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatWKT(t *testing.T) {
	t.Parallel()
	require.Equal(t, "POLYGON EMPTY", FormatWKT(nil))

	square := []Point{{50, 0}, {100, 50}, {50, 100}, {0, 50}}
	wkt := FormatWKT(square)
	require.True(t, strings.HasPrefix(wkt, "POLYGON"), wkt)
	back, err := ParseWKT(wkt)
	require.NoError(t, err)
	require.Equal(t, square, back, "closing vertex is added on write and dropped on read")

	arm := []Point{{100, 50}, {0, 50}}
	wkt = FormatWKT(arm)
	require.True(t, strings.HasPrefix(wkt, "LINESTRING"), wkt)
	back, err = ParseWKT(wkt)
	require.NoError(t, err)
	require.Equal(t, arm, back)

	closed := []Point{{0, 0}, {1, 0}, {0.5, 1.25}, {0, 0}}
	back, err = ParseWKT(FormatWKT(closed))
	require.NoError(t, err)
	require.Equal(t, closed[:3], back)
}

func TestParseWKT(t *testing.T) {
	t.Parallel()
	pts, err := ParseWKT("polygon ((50 0, 100 50, 50 100, 0 50, 50 0))")
	require.NoError(t, err)
	require.Equal(t, []Point{{50, 0}, {100, 50}, {50, 100}, {0, 50}}, pts)

	// spacing between ring parentheses is free-form
	pts, err = ParseWKT("POLYGON ( (0 0, 10 0, 10 10, 0 0) )")
	require.NoError(t, err)
	require.Equal(t, []Point{{0, 0}, {10, 0}, {10, 10}}, pts)

	pts, err = ParseWKT("LINESTRING(1.5 2, 3 4)")
	require.NoError(t, err)
	require.Equal(t, []Point{{1.5, 2}, {3, 4}}, pts)

	for _, empty := range []string{"POLYGON EMPTY", "LINESTRING EMPTY"} {
		pts, err = ParseWKT(empty)
		require.NoError(t, err, empty)
		require.Empty(t, pts, empty)
	}

	// collapsed shapes are not valid polygons but still load
	pts, err = ParseWKT("POLYGON ((5 5, 5 5, 5 5, 5 5))")
	require.NoError(t, err)
	require.Len(t, pts, 3)

	_, err = ParseWKT("  ")
	require.ErrorIs(t, err, ErrEmptyWKT)
	_, err = ParseWKT("POINT (1 2)")
	require.ErrorIs(t, err, ErrUnsupportedWKT)
	_, err = ParseWKT("POLYGON (1 2)")
	require.Error(t, err)
	_, err = ParseWKT("LINESTRING (1 x, 2 3)")
	require.Error(t, err)
}

func TestParseWKTLines(t *testing.T) {
	t.Parallel()
	text := FormatWKT(RegPolyCoords(box100, Polygon(3), 90, 360)) + "\n\n" +
		FormatWKT(RegPolyCoords(box100, Polygon(2), 0, 360)) + "\n"
	rings, err := ParseWKTLines(text)
	require.NoError(t, err)
	require.Len(t, rings, 2)
	require.Len(t, rings[0], 3)
	require.Len(t, rings[1], 2)

	_, err = ParseWKTLines("POLYGON ((0 0, 1 1, 1 0))\nCIRCLE (1)")
	require.ErrorContains(t, err, "line 2")
}

func TestGeoJSON(t *testing.T) {
	t.Parallel()
	square := RegPolyCoords(box100, Polygon(4), 90, 360)
	arm := RegPolyCoords(box100, Polygon(2), 0, 360)
	in := []Feature{
		{Coords: square, Outline: "#ED9DE9", Width: 3},
		{Coords: nil, Outline: "#000000"},
		{Coords: arm, Outline: "#80B3E7", Width: 1},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteGeoJSON(&buf, in))
	require.Contains(t, buf.String(), "Polygon")
	require.Contains(t, buf.String(), "LineString")
	require.Contains(t, buf.String(), "outline")

	out, err := ReadGeoJSON(&buf)
	require.NoError(t, err)
	require.Len(t, out, 2, "empty features are skipped")
	require.Equal(t, "#ED9DE9", out[0].Outline)
	require.Equal(t, 3.0, out[0].Width)
	require.Len(t, out[0].Coords, 4)
	require.Len(t, out[1].Coords, 2)
	for i := range square {
		requirePoint(t, square[i], out[0].Coords[i])
	}
}

// A full turn in a zero-size box is finite but has no area; it still has to
// survive a save and load.
func TestGeoJSONCollapsedPolygon(t *testing.T) {
	t.Parallel()
	dot := RegPolyCoords(Box{10, 10, 10, 10}, Polygon(4), 90, 360)
	require.NoError(t, CheckCoords(dot))

	var buf bytes.Buffer
	require.NoError(t, WriteGeoJSON(&buf, []Feature{{Coords: dot, Outline: "#FF6666"}}))
	out, err := ReadGeoJSON(&buf)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "#FF6666", out[0].Outline)
	require.Len(t, out[0].Coords, 3, "repeated vertices keep all but the closing one")
}

func TestGeoJSONErrors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	nan := RegPolyCoords(Box{10, 10, 10, 10}, Polygon(4), 90, 45)
	require.ErrorIs(t, WriteGeoJSON(&buf, []Feature{{Coords: nan}}), ErrDegenerateGeometry)

	_, err := ReadGeoJSON(bytes.NewBufferString(`{"type":"Feature"}`))
	require.Error(t, err)
	_, err = ReadGeoJSON(bytes.NewBufferString(`{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Polygon","coordinates":"x"}}]}`))
	require.ErrorContains(t, err, "feature 0")
	_, err = ReadGeoJSON(bytes.NewBufferString(`{"type":"FeatureCollection","features":[]}`))
	require.ErrorIs(t, err, ErrNoGeometry)
	_, err = ReadGeoJSON(bytes.NewBufferString(`{`))
	require.Error(t, err)
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	wktPath := filepath.Join(dir, "shapes.wkt")
	wkt := FormatWKT(RegPolyCoords(box100, Polygon(5), 90, 360)) + "\nPOLYGON EMPTY\n"
	require.NoError(t, os.WriteFile(wktPath, []byte(wkt), 0o644))
	fs, err := LoadWKT(wktPath)
	require.NoError(t, err)
	require.Len(t, fs, 1)
	require.Len(t, fs[0].Coords, 5)

	gjPath := filepath.Join(dir, "shapes.geojson")
	f, err := os.Create(gjPath)
	require.NoError(t, err)
	require.NoError(t, WriteGeoJSON(f, fs))
	require.NoError(t, f.Close())
	fs2, err := LoadGeoJSON(gjPath)
	require.NoError(t, err)
	require.Len(t, fs2, 1)

	_, err = LoadWKT(filepath.Join(dir, "missing.wkt"))
	require.Error(t, err)
}
