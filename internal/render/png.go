package render

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"
)

// pngMargin is the blank border around the drawing, in pixels.
const pngMargin = 8

// Raster strokes every item onto a w x h white image, fitting the scroll
// region (or the live bounds) inside a small margin.
func (c *Canvas) Raster(w, h int) (*gg.Context, error) {
	if w <= 2*pngMargin || h <= 2*pngMargin {
		return nil, fmt.Errorf("render: image %dx%d too small", w, h)
	}
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.White)
	bb, ok := c.renderRegion()
	if !ok {
		return dc, nil
	}
	vp := newViewport(bb, w-2*pngMargin, h-2*pngMargin)
	dc.Translate(pngMargin, pngMargin)
	for _, it := range c.items {
		dc.SetHexColor(it.Outline)
		dc.SetLineWidth(max(1, it.Width*vp.scale))
		for i, p := range it.Coords {
			x := vp.ox + (p.X-bb.MinX)*vp.scale
			y := vp.oy + (p.Y-bb.MinY)*vp.scale
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("render: stroke item %d: %w", it.ID, err)
		}
	}
	return dc, nil
}

// Image returns the rasterized canvas.
func (c *Canvas) Image(w, h int) (image.Image, error) {
	dc, err := c.Raster(w, h)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// SavePNG writes the rasterized canvas to path.
func (c *Canvas) SavePNG(path string, w, h int) (err error) {
	dc, err := c.Raster(w, h)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, dc.Close())
	}()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save png: %w", err)
	}
	Logger().Debug("png saved", slog.String("path", path), slog.Int("width", w), slog.Int("height", h))
	return nil
}
