package geom

import "math"

// Point is a canvas coordinate; y grows downwards.
type Point struct {
	X float64
	Y float64
}

// Box is the rectangle a shape is inscribed in. Corners are taken as given:
// X1 < X0 or Y1 < Y0 flips the resulting shape, equal corners collapse it.
type Box struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Center returns the midpoint of the box.
func (b Box) Center() (xm, ym float64) {
	return (b.X0 + b.X1) / 2., (b.Y0 + b.Y1) / 2.
}

// Radii returns half the signed width and height.
func (b Box) Radii() (rx, ry float64) {
	xm, ym := b.Center()
	return xm - b.X0, ym - b.Y0
}

// BBox is a normalized extent (min <= max once non-empty).
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// EmptyBBox returns a box that any Extend call replaces.
func EmptyBBox() BBox {
	return BBox{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

// IsEmpty reports whether nothing was added to b.
func (b BBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Extend grows b to cover p.
func (b BBox) Extend(p Point) BBox {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

// Union returns the smallest box covering both.
func (b BBox) Union(o BBox) BBox {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	b = b.Extend(Point{o.MinX, o.MinY})
	return b.Extend(Point{o.MaxX, o.MaxY})
}

// Pad grows every side of a non-empty box by d.
func (b BBox) Pad(d float64) BBox {
	if b.IsEmpty() {
		return b
	}
	return BBox{MinX: b.MinX - d, MinY: b.MinY - d, MaxX: b.MaxX + d, MaxY: b.MaxY + d}
}

// Bounds returns the extent of pts, or an empty box for no points.
func Bounds(pts []Point) BBox {
	bb := EmptyBBox()
	for _, p := range pts {
		bb = bb.Extend(p)
	}
	return bb
}
