package walk

import (
	"fmt"
	"math"
)

// DefaultCapacity is the number of positions a path holds by default.
const DefaultCapacity = 1_000_000

// Size is a width and height in screen units.
type Size struct {
	W, H float64
}

// Extent reports the current screen size. It is queried on every step and
// every filter pass, so it may change between ticks.
type Extent interface {
	Size() Size
}

// ExtentFunc adapts a function to Extent.
type ExtentFunc func() Size

// Size calls f.
func (f ExtentFunc) Size() Size { return f() }

// FixedExtent is an Extent that never changes.
type FixedExtent Size

// Size returns the fixed size.
func (e FixedExtent) Size() Size { return Size(e) }

// Config is the engine setup. Zero fields take their defaults.
type Config struct {
	Mode     Mode
	Geometry Geometry
	Capacity int
	Palette  Palette
	// Start overrides the seed position; nil means the extent's center.
	Start *Position
	// Angles overrides the initial angles; nil means theta = phi = π.
	Angles *AngularState
}

// Engine owns one walk: its mode, walker state and path. It is not safe
// for concurrent use; the frontend loop that owns it does all mutation.
type Engine struct {
	mode    Mode
	geom    Geometry
	palette Palette
	src     Source
	extent  Extent

	pos  Position
	ang  AngularState
	path *PathBuffer
}

// New creates an engine. The seed position is the center of the extent.
func New(cfg Config, src Source, extent Extent) *Engine {
	if src == nil {
		panic("walk: nil source")
	}
	if extent == nil {
		panic("walk: nil extent")
	}
	if !cfg.Mode.Valid() {
		panic(fmt.Sprintf("walk: unknown mode %d", int(cfg.Mode)))
	}
	if cfg.Geometry == (Geometry{}) {
		cfg.Geometry = DefaultGeometry()
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Palette == (Palette{}) {
		cfg.Palette = DefaultPalette()
	}

	sz := extent.Size()
	pos := Position{X: sz.W / 2, Y: sz.H / 2}
	if cfg.Start != nil {
		pos = *cfg.Start
	}
	ang := AngularState{Theta: math.Pi, Phi: math.Pi}
	if cfg.Angles != nil {
		ang = AngularState{Theta: wrapAngle(cfg.Angles.Theta), Phi: wrapAngle(cfg.Angles.Phi)}
	}

	return &Engine{
		mode:    cfg.Mode,
		geom:    cfg.Geometry,
		palette: cfg.Palette,
		src:     src,
		extent:  extent,
		pos:     pos,
		ang:     ang,
		path:    NewPathBuffer(cfg.Capacity, pos),
	}
}

// Step draws one sample and advances the walk. It reports false, without
// drawing from the source, once the path is full.
func (e *Engine) Step() bool {
	if e.path.Full() {
		return false
	}
	return e.StepWith(e.src.Intn(4))
}

// StepWith advances the walk with an explicit sample in [0,4). Any other
// sample panics.
func (e *Engine) StepWith(sample int) bool {
	if e.path.Full() {
		return false
	}
	dir := DirectionFromSample(sample)
	sz := e.extent.Size()

	var st State
	if e.mode == ModeCurvedTorus {
		st = Angular{e.ang}
	} else {
		st = Cartesian{e.pos}
	}
	next, pos := Advance(e.mode, dir, e.geom, st, sz.W, sz.H)
	if a, ok := next.(Angular); ok {
		e.ang = a.AngularState
	}
	e.pos = pos
	e.path.Append(pos)
	return true
}

// Run steps up to n times and returns how many steps were taken.
func (e *Engine) Run(n int) int {
	taken := 0
	for i := 0; i < n; i++ {
		if !e.Step() {
			break
		}
		taken++
	}
	return taken
}

// SetMode selects the mode used from the next step on. Position, angles
// and path are kept. Setting the current mode is a no-op.
func (e *Engine) SetMode(m Mode) {
	if !m.Valid() {
		panic(fmt.Sprintf("walk: unknown mode %d", int(m)))
	}
	e.mode = m
}

// Mode returns the active mode.
func (e *Engine) Mode() Mode { return e.mode }

// Steps returns the step count, which is the path length including the
// seed position.
func (e *Engine) Steps() int { return e.path.Len() }

// Capacity returns the path capacity.
func (e *Engine) Capacity() int { return e.path.Cap() }

// Full reports whether the walk has stopped at capacity.
func (e *Engine) Full() bool { return e.path.Full() }

// Position returns the current screen position.
func (e *Engine) Position() Position { return e.pos }

// Angles returns the current curved-torus angles.
func (e *Engine) Angles() AngularState { return e.ang }

// Len returns the number of stored positions.
func (e *Engine) Len() int { return e.path.Len() }

// At returns the i-th stored position.
func (e *Engine) At(i int) Position { return e.path.At(i) }

// Extent returns the current screen size.
func (e *Engine) Extent() Size { return e.extent.Size() }

// Segment filters the step from position i-1 to i under the active mode
// and the current extent. i must be in [1, Len()).
func (e *Engine) Segment(i int) (Segment, bool) {
	return e.segment(i, e.extent.Size())
}

func (e *Engine) segment(i int, sz Size) (Segment, bool) {
	return e.palette.Filter(e.mode, e.geom, e.path.At(i-1), e.path.At(i), sz.W, sz.H)
}

// Segments calls fn for every drawable segment starting at path index
// from, in path order. Returning false from fn stops the pass.
func (e *Engine) Segments(from int, fn func(i int, s Segment) bool) {
	if from < 1 {
		from = 1
	}
	sz := e.extent.Size()
	for i := from; i < e.path.Len(); i++ {
		s, ok := e.segment(i, sz)
		if !ok {
			continue
		}
		if !fn(i, s) {
			return
		}
	}
}

// Status returns the two status lines shown with every frame.
func (e *Engine) Status() (steps, mode string) {
	return StepsText(e.Steps()), ModeText(e.mode)
}

// StepsText formats the step counter line.
func StepsText(n int) string { return fmt.Sprintf("Steps: %d", n) }

// ModeText formats the mode line.
func ModeText(m Mode) string { return "Mode: " + m.Label() }
