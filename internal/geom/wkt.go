package geom

import (
	"errors"
	"fmt"
	"strings"

	sf "github.com/peterstace/simplefeatures/geom"
)

var (
	ErrEmptyWKT       = errors.New("empty wkt")
	ErrUnsupportedWKT = errors.New("unsupported wkt type")
)

func toSequence(pts []Point) sf.Sequence {
	flat := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		flat = append(flat, p.X, p.Y)
	}
	return sf.NewSequence(flat, sf.DimXY)
}

func fromSequence(seq sf.Sequence) []Point {
	n := seq.Length()
	if n == 0 {
		return nil
	}
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		xy := seq.GetXY(i)
		out[i] = Point{xy.X, xy.Y}
	}
	return out
}

// toGeometry converts a vertex list to a closed Polygon. Two-point lists
// (the arms of a cross) have no area and become LineStrings.
func toGeometry(pts []Point) sf.Geometry {
	if len(pts) == 0 {
		return sf.Polygon{}.AsGeometry()
	}
	if len(pts) < 3 {
		return sf.NewLineString(toSequence(pts)).AsGeometry()
	}
	ring := sf.NewLineString(toSequence(closeRing(pts)))
	return sf.NewPolygon([]sf.LineString{ring}).AsGeometry()
}

// fromGeometry returns the outer ring of a Polygon (without its closing
// vertex) or the points of a LineString.
func fromGeometry(g sf.Geometry) ([]Point, error) {
	switch g.Type() {
	case sf.TypePolygon:
		pts := fromSequence(g.MustAsPolygon().ExteriorRing().Coordinates())
		if n := len(pts); n > 1 && pts[0] == pts[n-1] {
			pts = pts[:n-1]
		}
		return pts, nil
	case sf.TypeLineString:
		return fromSequence(g.MustAsLineString().Coordinates()), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedWKT, g.Type())
}

// FormatWKT writes a vertex list as WKT; see toGeometry.
func FormatWKT(pts []Point) string {
	return toGeometry(pts).AsText()
}

// ParseWKT reads a POLYGON outer ring or a LINESTRING. Geometry validation
// is skipped so that collapsed shapes written by FormatWKT load back.
func ParseWKT(wkt string) ([]Point, error) {
	if strings.TrimSpace(wkt) == "" {
		return nil, ErrEmptyWKT
	}
	g, err := sf.UnmarshalWKT(wkt, sf.NoValidate{})
	if err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	return fromGeometry(g)
}

// ParseWKTLines parses one geometry per non-blank line.
func ParseWKTLines(text string) ([][]Point, error) {
	var out [][]Point
	for n, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		pts, err := ParseWKT(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		out = append(out, pts)
	}
	if len(out) == 0 {
		return nil, ErrEmptyWKT
	}
	return out, nil
}

// closeRing returns pts with the first vertex repeated at the end.
func closeRing(pts []Point) []Point {
	ring := make([]Point, 0, len(pts)+1)
	ring = append(ring, pts...)
	if pts[0] != pts[len(pts)-1] {
		ring = append(ring, pts[0])
	}
	return ring
}
