// Package render keeps generated vertex lists on a canvas and renders them
// as braille text, tables, WKT, GeoJSON and PNG.
package render

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"figcanvas/internal/geom"
)

// ErrEmptyItem is returned for a vertex list with no points.
var ErrEmptyItem = errors.New("render: empty vertex list")

// Item is a closed outline on the canvas.
type Item struct {
	ID      int
	Coords  []geom.Point
	Outline string
	Width   float64
}

// Bounds returns the vertex extent grown by half the outline width.
func (it Item) Bounds() geom.BBox {
	return geom.Bounds(it.Coords).Pad(it.Width / 2)
}

// Canvas collects items in drawing order. The zero value is ready to use.
type Canvas struct {
	items  []Item
	nextID int
	region geom.BBox
	hasReg bool
}

// CreatePolygon adds a closed outline and returns its id. Empty and
// non-finite vertex lists are rejected.
func (c *Canvas) CreatePolygon(coords []geom.Point, outline string, width float64) (int, error) {
	if len(coords) == 0 {
		Logger().Warn("polygon rejected", slog.String("reason", "empty"))
		return 0, ErrEmptyItem
	}
	if err := geom.CheckCoords(coords); err != nil {
		Logger().Warn("polygon rejected", slog.String("reason", err.Error()), slog.Int("vertices", len(coords)))
		return 0, fmt.Errorf("render: create polygon: %w", err)
	}
	if width < 0 {
		width = 0
	}
	c.nextID++
	it := Item{ID: c.nextID, Coords: coords, Outline: outline, Width: width}
	c.items = append(c.items, it)
	Logger().Debug("polygon created", slog.Int("id", it.ID), slog.Int("vertices", len(coords)), slog.String("outline", outline))
	return it.ID, nil
}

// Items returns the items in drawing order.
func (c *Canvas) Items() []Item { return c.items }

// Len returns the number of items.
func (c *Canvas) Len() int { return len(c.items) }

// BBox returns the union of all item bounds; ok is false for an empty canvas.
func (c *Canvas) BBox() (bb geom.BBox, ok bool) {
	bb = geom.EmptyBBox()
	for _, it := range c.items {
		bb = bb.Union(it.Bounds())
	}
	return bb, !bb.IsEmpty()
}

// UpdateScrollRegion sets the scroll region to the current BBox. An empty
// canvas keeps the previous region.
func (c *Canvas) UpdateScrollRegion() (geom.BBox, bool) {
	bb, ok := c.BBox()
	if ok {
		c.region, c.hasReg = bb, true
		Logger().Debug("scroll region updated", slog.String("region", FormatBBox(bb)))
	}
	return c.region, c.hasReg
}

// ScrollRegion returns the region set by the last UpdateScrollRegion.
func (c *Canvas) ScrollRegion() (geom.BBox, bool) {
	return c.region, c.hasReg
}

// FormatBBox writes a box the way the status line shows it.
func FormatBBox(bb geom.BBox) string {
	return fmt.Sprintf("[%.2f, %.2f, %.2f, %.2f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY)
}

// Features converts the items for export.
func (c *Canvas) Features() []geom.Feature {
	fs := make([]geom.Feature, 0, len(c.items))
	for _, it := range c.items {
		fs = append(fs, geom.Feature{Coords: it.Coords, Outline: it.Outline, Width: it.Width})
	}
	return fs
}

// AddFeatures adds previously exported shapes and returns how many were
// accepted. Features without an outline get fallback.
func (c *Canvas) AddFeatures(fs []geom.Feature, fallback string) int {
	added := 0
	for _, f := range fs {
		outline := f.Outline
		if outline == "" {
			outline = fallback
		}
		width := f.Width
		if width == 0 {
			width = 1
		}
		if _, err := c.CreatePolygon(f.Coords, outline, width); err == nil {
			added++
		}
	}
	return added
}

// WKT returns one geometry per line.
func (c *Canvas) WKT() string {
	lines := make([]string, 0, len(c.items))
	for _, it := range c.items {
		lines = append(lines, geom.FormatWKT(it.Coords))
	}
	return strings.Join(lines, "\n")
}
