package core

// brailleBase is the code point of the empty braille pattern.
const brailleBase = 0x2800

// Canvas is a dot raster backed by braille characters: every screen cell
// holds a 2x4 block of dots, so a cols x rows area offers (2*cols) x (4*rows)
// addressable dots. Each cell keeps the color of the last dot set in it.
type Canvas struct {
	cols   int
	rows   int
	dots   []uint8
	colors []Color
}

// NewCanvas creates an empty canvas covering cols x rows screen cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the canvas for a new cell area, dropping all dots.
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	c.cols = cols
	c.rows = rows
	c.dots = make([]uint8, cols*rows)
	c.colors = make([]Color, cols*rows)
	c.Clear()
}

// Cols returns the canvas width in screen cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in screen cells.
func (c *Canvas) Rows() int { return c.rows }

// DotWidth returns the horizontal dot resolution.
func (c *Canvas) DotWidth() int { return c.cols * 2 }

// DotHeight returns the vertical dot resolution.
func (c *Canvas) DotHeight() int { return c.rows * 4 }

// dotBounds is the addressable dot area.
func (c *Canvas) dotBounds() Rect { return NewRect(0, 0, c.DotWidth(), c.DotHeight()) }

// Clear removes every dot.
func (c *Canvas) Clear() {
	for i := range c.dots {
		c.dots[i] = 0
		c.colors[i] = ColorDefault
	}
}

// dotBit returns the braille bit for a dot inside its 2x4 cell.
func dotBit(dx, dy int) uint8 {
	if dy == 3 {
		if dx == 0 {
			return 0x40
		}
		return 0x80
	}
	return uint8(1<<dy) << (dx * 3)
}

// Set lights the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int, col Color) {
	if !c.dotBounds().Contains(x, y) {
		return
	}
	i := (y/4)*c.cols + x/2
	c.dots[i] |= dotBit(x%2, y%4)
	c.colors[i] = col
}

// IsSet reports whether the dot at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if !c.dotBounds().Contains(x, y) {
		return false
	}
	return c.dots[(y/4)*c.cols+x/2]&dotBit(x%2, y%4) != 0
}

// DrawLine plots a segment between two dots using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col Color) {
	dx := Abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -Abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
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

// Blit copies the non-empty cells of the canvas onto dst with its top-left
// corner at (ox, oy).
func (c *Canvas) Blit(dst *Screen, ox, oy int) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			if c.dots[i] == 0 {
				continue
			}
			dst.SetColored(ox+col, oy+row, rune(brailleBase+int(c.dots[i])), c.colors[i])
		}
	}
}
