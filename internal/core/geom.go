// Package core provides the shared primitives of the random walk frontends:
// character screens, a braille dot canvas, colors, input frames and the
// runtime config. It has no external dependencies so simulation code stays
// pure and testable.
package core

// Rect is a half-open block of cells or dots: columns [X, X+W) and rows
// [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the block with top-left corner (x, y) and size w x h.
// Negative sizes are treated as empty.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// Right is the first column past the block.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the block.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether (x, y) lies inside the block.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp limits val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}

// ClampF limits val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return min(max(val, lo), hi)
}

// Abs returns |x|.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
