package desktop

import (
	"image/color"
	"math"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/walk"
)

// pixelSetter is the part of *ebiten.Image the line rasteriser writes to.
type pixelSetter interface {
	Set(x, y int, c color.Color)
}

// toPixel maps a walk position to image pixels of a w x h image.
// Walk Y points up, image Y points down.
func toPixel(p walk.Position, sz walk.Size, w, h int) (int, int) {
	x := int(math.Round(p.X / sz.W * float64(w)))
	y := int(math.Round((sz.H - p.Y) / sz.H * float64(h)))
	return x, y
}

// drawLine rasterises a line with Bresenham's algorithm, skipping pixels
// outside w x h.
func drawLine(dst pixelSetter, w, h, x0, y0, x1, y1 int, clr color.Color) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			dst.Set(x0, y0, clr)
		}
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
