package geom

import (
	"errors"
	"math"
)

// DegToRad converts degrees to radians.
const DegToRad = math.Pi / 180

// integralEps is the tolerance under which a fractional step count is
// treated as landing exactly on a vertex.
const integralEps = 1e-9

// ErrDegenerateGeometry reports a vertex list holding NaN or Inf, which
// happens when the closing ray runs parallel to the last edge.
var ErrDegenerateGeometry = errors.New("geom: degenerate geometry")

// Sides selects either a regular polygon with a fixed side count or a
// circle approximation whose side count follows the box size.
type Sides struct {
	n int
}

// Circle approximates an ellipse; see RegPoly.SideCount.
var Circle = Sides{}

// Polygon returns a fixed side count. n < 1 yields Circle, matching the
// older integer encoding where zero sides meant a circle.
func Polygon(n int) Sides {
	if n < 1 {
		return Circle
	}
	return Sides{n: n}
}

// IsCircle reports whether s is the circle approximation.
func (s Sides) IsCircle() bool { return s.n == 0 }

// RegPoly describes a (possibly partial) regular polygon inscribed in the
// ellipse fit to Box, traced from Start through Extent degrees.
type RegPoly struct {
	Box    Box
	Sides  Sides
	Start  float64
	Extent float64
}

// DefaultRegPoly is a full circle approximation starting at the top.
func DefaultRegPoly(box Box) RegPoly {
	return RegPoly{Box: box, Sides: Circle, Start: 90, Extent: 360}
}

// SideCount returns the effective number of sides. Circles use the mean
// radius rounded half to even, with anything under 2 raised to 4.
func (p RegPoly) SideCount() int {
	if !p.Sides.IsCircle() {
		return p.Sides.n
	}
	rx, ry := p.Box.Radii()
	n := int(math.RoundToEven((rx + ry) * .5))
	if n < 2 {
		n = 4
	}
	return n
}

// Coords returns the polygon's vertices in tracing order.
func (p RegPoly) Coords() []Point {
	return RegPolyCoords(p.Box, p.Sides, p.Start, p.Extent)
}

// RegPolyCoords computes the vertices of a regular polygon inscribed in the
// ellipse fit to box. Angles are degrees and run clockwise on screen.
//
// A full turn yields one point per side. A zero extent yields no points.
// Extents beyond ±360 wrap, keeping their sign; an exact multiple of 360
// wraps to zero and also yields no points.
// When the extent does not end on a vertex, a final point is placed where
// the ray at start-extent meets the polygon edge. That point is NaN or Inf
// when the ray is parallel to the edge; see CheckCoords.
func RegPolyCoords(box Box, sides Sides, start, extent float64) []Point {
	if extent == 0 {
		return nil
	}
	dir := 1.
	if extent < 0 {
		dir = -1
	}
	if math.Abs(extent) > 360 {
		extent = dir * math.Mod(math.Abs(extent), 360)
		if extent == 0 {
			return nil
		}
	}

	xm, ym := box.Center()
	rx, ry := box.Radii()
	n := RegPoly{Box: box, Sides: sides}.SideCount()

	step := dir * 360 / float64(n)
	numsteps := 1 + extent/step
	count, exact := stepCount(numsteps)
	if exact && math.Abs(extent) == 360 {
		// a full turn ends on the first vertex again; renderers close rings
		count--
	}

	coords := make([]Point, 0, count+1)
	var x, y float64
	for i := 0; i < count; i++ {
		rad := (start - float64(i)*step) * DegToRad
		x = rx * math.Cos(rad)
		y = ry * math.Sin(rad)
		coords = append(coords, Point{xm + x, ym - y})
	}
	if exact {
		return coords
	}

	// V1 = (x, y) is the last vertex; V2 runs from it to the next regular
	// vertex; V3 is the unit ray the arc ends on. Solve V1 + k*V2 = j*V3.
	rad2 := (start - float64(count)*step) * DegToRad
	x2 := rx*math.Cos(rad2) - x
	y2 := ry*math.Sin(rad2) - y
	rad3 := (start - extent) * DegToRad
	x3 := math.Cos(rad3)
	y3 := math.Sin(rad3)
	j := (x*y2 - x2*y) / (x3*y2 - x2*y3)
	return append(coords, Point{xm + j*x3, ym - j*y3})
}

// stepCount returns how many regular vertices to emit and whether the
// extent ends exactly on the last of them.
func stepCount(numsteps float64) (int, bool) {
	r := math.Round(numsteps)
	if math.Abs(numsteps-r) < integralEps {
		return int(r), true
	}
	return int(math.Floor(numsteps)), false
}

// CheckCoords returns ErrDegenerateGeometry if any coordinate is not finite.
// It cannot catch a one-sided polygon with a partial extent: its edge
// vector is rounding noise, so the end point is finite but arbitrary.
// Callers wanting well-formed shapes use two or more sides.
func CheckCoords(pts []Point) error {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return ErrDegenerateGeometry
		}
	}
	return nil
}
