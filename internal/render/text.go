package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"figcanvas/internal/geom"
)

// viewport maps canvas coordinates onto a pixel grid with one uniform
// scale, centering the region.
type viewport struct {
	bb     geom.BBox
	scale  float64
	ox, oy float64
}

func newViewport(bb geom.BBox, w, h int) viewport {
	pw, ph := float64(w-1), float64(h-1)
	bw, bh := bb.Width(), bb.Height()
	var scale float64
	switch {
	case bw > 0 && bh > 0:
		scale = math.Min(pw/bw, ph/bh)
	case bw > 0:
		scale = pw / bw
	case bh > 0:
		scale = ph / bh
	default:
		scale = 1
	}
	return viewport{
		bb:    bb,
		scale: scale,
		ox:    (pw - bw*scale) / 2,
		oy:    (ph - bh*scale) / 2,
	}
}

func (v viewport) project(p geom.Point) (int, int) {
	x := v.ox + (p.X-v.bb.MinX)*v.scale
	y := v.oy + (p.Y-v.bb.MinY)*v.scale
	return int(math.Round(x)), int(math.Round(y))
}

// renderRegion picks the scroll region, falling back to the live bounds.
func (c *Canvas) renderRegion() (geom.BBox, bool) {
	if bb, ok := c.ScrollRegion(); ok {
		return bb, true
	}
	return c.BBox()
}

// Braille rasterizes the canvas into w x h terminal cells. Each cell takes
// the outline color of the last item drawn through it.
func (c *Canvas) Braille(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	br := newBrailleBuf(w, h)
	if bb, ok := c.renderRegion(); ok {
		vp := newViewport(bb, w*2, h*4)
		for idx, it := range c.items {
			ring := make([][2]int, len(it.Coords))
			for i, p := range it.Coords {
				mx, my := vp.project(p)
				ring[i] = [2]int{mx, my}
			}
			if len(ring) == 1 {
				br.setPixel(ring[0][0], ring[0][1], idx)
				continue
			}
			for i := range ring {
				a := ring[i]
				b := ring[(i+1)%len(ring)]
				br.drawLineMicro(a[0], a[1], b[0], b[1], idx)
			}
		}
	}

	styles := make([]lipgloss.Style, len(c.items))
	for i, it := range c.items {
		styles[i] = outlineStyle(it.Outline)
	}
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var row strings.Builder
		for x := 0; x < w; x++ {
			r, ok := br.cell(x, y)
			if !ok {
				row.WriteRune(r)
				continue
			}
			row.WriteString(styles[br.owner[y][x]].Render(string(r)))
		}
		lines[y] = row.String()
	}
	return strings.Join(lines, "\n")
}

// Header is the title and status line shown above text output.
func (c *Canvas) Header() string {
	status := fmt.Sprintf("items=%d", c.Len())
	if bb, ok := c.ScrollRegion(); ok {
		status += "  scrollregion=" + FormatBBox(bb)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(" figcanvas ─ regular polygons "),
		dimStyle.Render("  "+status))
}

// View frames the braille canvas under the header.
func (c *Canvas) View(w, h int) string {
	return lipgloss.JoinVertical(lipgloss.Left, c.Header(), boxStyle.Render(c.Braille(w, h)))
}
