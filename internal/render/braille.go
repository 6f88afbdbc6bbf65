package render

// brailleBuf is a 2x4 micro-pixel grid per terminal cell. Each cell keeps
// the index of the last item that drew into it, for coloring.
type brailleBuf struct {
	w, h  int       // in cells
	m     [][]uint8 // per-cell 8-bit mask
	owner [][]int
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	owner := make([][]int, h)
	for i := range m {
		m[i] = make([]uint8, w)
		owner[i] = make([]int, w)
	}
	return &brailleBuf{w: w, h: h, m: m, owner: owner}
}

var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my, item int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
	b.owner[cy][cx] = item
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1, item int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, item)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cell returns the glyph at a cell and whether anything was drawn there.
func (b *brailleBuf) cell(x, y int) (rune, bool) {
	mask := b.m[y][x]
	if mask == 0 {
		return ' ', false
	}
	return rune(0x2800 + int(mask)), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
