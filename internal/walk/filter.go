package walk

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Segment is one drawable piece of the path.
type Segment struct {
	From, To Position
	Color    colorful.Color
}

// Palette holds the segment colors: Line for the plane and flat torus,
// and the two gradient ends for the curved torus.
type Palette struct {
	Line         colorful.Color
	GradientFrom colorful.Color // at y = 0
	GradientTo   colorful.Color // at y = height
}

// DefaultPalette draws white lines and a blue to red gradient.
func DefaultPalette() Palette {
	return Palette{
		Line:         colorful.Color{R: 1, G: 1, B: 1},
		GradientFrom: colorful.Color{R: 0, G: 0, B: 1},
		GradientTo:   colorful.Color{R: 1, G: 0, B: 0},
	}
}

// Filter decides whether the step prev -> curr should be drawn and with
// which color. Steps that crossed a wrap boundary look like long jumps on
// screen and are suppressed.
func (p Palette) Filter(mode Mode, geom Geometry, prev, curr Position, w, h float64) (Segment, bool) {
	dx := math.Abs(curr.X - prev.X)
	dy := math.Abs(curr.Y - prev.Y)
	seg := Segment{From: prev, To: curr}

	switch mode {
	case ModeCurvedTorus:
		if dx > w/2 || dy > h/2 {
			return seg, false
		}
		t := 0.0
		if h > 0 {
			t = math.Max(0, math.Min(1, prev.Y/h))
		}
		seg.Color = p.GradientFrom.BlendRgb(p.GradientTo, t)
	default:
		limit := 2 * geom.StepSize
		if dx > limit || dy > limit {
			return seg, false
		}
		seg.Color = p.Line
	}
	return seg, true
}
