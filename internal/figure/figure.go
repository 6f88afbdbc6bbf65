// Package figure builds the named shapes drawn on the canvas out of
// regular polygons.
package figure

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"figcanvas/internal/geom"
)

var (
	ErrUnknownKind = errors.New("figure: unknown kind")
	ErrBadSpec     = errors.New("figure: bad spec")
)

// Kind names a figure.
type Kind string

const (
	Square   Kind = "square"
	Triangle Kind = "triangle"
	Cross    Kind = "cross"
	Circle   Kind = "circle"
	// Ngon is a polygon with Figure.N sides, written "6gon".
	Ngon Kind = "ngon"
)

// Kinds lists the named figures.
var Kinds = []Kind{Square, Triangle, Cross, Circle}

// Outline colors per figure.
var outlines = map[Kind]string{
	Square:   "#ED9DE9",
	Triangle: "#40E2A0",
	Cross:    "#80B3E7",
	Circle:   "#FF6666",
	Ngon:     "#7C3AED",
}

// Figure is one named shape placed in a box.
type Figure struct {
	Kind   Kind
	N      int // sides, Ngon only
	Box    geom.Box
	Start  float64
	Extent float64
	Width  float64
}

// Shape is one outline ready for the canvas.
type Shape struct {
	Coords  []geom.Point
	Outline string
	Width   float64
}

// New returns a figure with the default start (90), extent (360) and
// outline width (1).
func New(k Kind, box geom.Box) Figure {
	p := geom.DefaultRegPoly(box)
	return Figure{Kind: k, Box: p.Box, Start: p.Start, Extent: p.Extent, Width: 1}
}

// OutlineOf returns the outline color drawn for k.
func OutlineOf(k Kind) string { return outlines[k] }

// Outline returns the figure's outline color.
func (f Figure) Outline() string { return OutlineOf(f.Kind) }

func (f Figure) poly(sides geom.Sides, start float64) Shape {
	return Shape{
		Coords:  geom.RegPoly{Box: f.Box, Sides: sides, Start: start, Extent: f.Extent}.Coords(),
		Outline: f.Outline(),
		Width:   f.Width,
	}
}

// Shapes returns the outlines that make up f. A cross is two 2-sided
// polygons a quarter turn apart.
func (f Figure) Shapes() ([]Shape, error) {
	switch f.Kind {
	case Square:
		return []Shape{f.poly(geom.Polygon(4), f.Start)}, nil
	case Triangle:
		return []Shape{f.poly(geom.Polygon(3), f.Start)}, nil
	case Cross:
		return []Shape{
			f.poly(geom.Polygon(2), f.Start),
			f.poly(geom.Polygon(2), f.Start+90),
		}, nil
	case Circle:
		return []Shape{f.poly(geom.Circle, f.Start)}, nil
	case Ngon:
		if f.N < minSides {
			return nil, fmt.Errorf("%w: ngon needs at least %d sides", ErrBadSpec, minSides)
		}
		return []Shape{f.poly(geom.Polygon(f.N), f.Start)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
}

// minSides is the smallest Ngon. A single side has no edge to end a
// partial extent on.
const minSides = 2

// ParseKind accepts the named kinds and "<N>gon" with N of at least 2.
func ParseKind(s string) (Kind, int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if s == string(k) {
			return k, 0, nil
		}
	}
	if num, ok := strings.CutSuffix(s, "gon"); ok {
		n, err := strconv.Atoi(num)
		if err != nil || n < minSides {
			return "", 0, fmt.Errorf("%w: %q", ErrBadSpec, s)
		}
		return Ngon, n, nil
	}
	return "", 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// DefaultBox is used when a spec gives no box.
var DefaultBox = geom.Box{X0: 0, Y0: 0, X1: 100, Y1: 100}

// Parse reads "kind[:x0,y0,x1,y1[:start[:extent]]]".
func Parse(spec string) (Figure, error) {
	parts := strings.Split(spec, ":")
	if len(parts) > 4 {
		return Figure{}, fmt.Errorf("%w: %q", ErrBadSpec, spec)
	}
	k, n, err := ParseKind(parts[0])
	if err != nil {
		return Figure{}, err
	}
	f := New(k, DefaultBox)
	f.N = n
	if len(parts) > 1 {
		vals := strings.Split(parts[1], ",")
		if len(vals) != 4 {
			return Figure{}, fmt.Errorf("%w: box needs four values: %q", ErrBadSpec, parts[1])
		}
		var c [4]float64
		for i, v := range vals {
			c[i], err = strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return Figure{}, fmt.Errorf("%w: box: %v", ErrBadSpec, err)
			}
		}
		f.Box = geom.Box{X0: c[0], Y0: c[1], X1: c[2], Y1: c[3]}
	}
	if len(parts) > 2 {
		if f.Start, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err != nil {
			return Figure{}, fmt.Errorf("%w: start: %v", ErrBadSpec, err)
		}
	}
	if len(parts) > 3 {
		if f.Extent, err = strconv.ParseFloat(strings.TrimSpace(parts[3]), 64); err != nil {
			return Figure{}, fmt.Errorf("%w: extent: %v", ErrBadSpec, err)
		}
	}
	return f, nil
}
