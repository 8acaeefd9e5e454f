package walk

import (
	"fmt"
	"math"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/core"
)

const twoPi = 2 * math.Pi

// Position is a screen coordinate. After every step it lies in
// [0,width]x[0,height] for the extent in effect at that step.
type Position struct {
	X, Y float64
}

// AngularState is the walker's location on the curved torus, both angles
// in [0, 2π). Theta runs around the tube, phi around the ring.
type AngularState struct {
	Theta, Phi float64
}

// Position projects the angles onto a w x h rectangle: phi spans the
// width and theta spans the height.
func (a AngularState) Position(w, h float64) Position {
	return Position{
		X: wrapAxis(a.Phi/twoPi*w, w),
		Y: wrapAxis(a.Theta/twoPi*h, h),
	}
}

// State is the mode-dependent walker state. Only Cartesian and Angular
// implement it.
type State interface {
	isState()
}

// Cartesian is the walker state on the plane and the flat torus.
type Cartesian struct {
	Position
}

// Angular is the walker state on the curved torus.
type Angular struct {
	AngularState
}

func (Cartesian) isState() {}
func (Angular) isState()   {}

// Advance applies one step in direction dir and returns the new state and
// the screen position it maps to. The state variant must match the mode:
// Cartesian for Plane and FlatTorus, Angular for CurvedTorus. A mismatch
// or an unknown mode panics.
func Advance(mode Mode, dir Direction, geom Geometry, state State, w, h float64) (State, Position) {
	switch mode {
	case ModePlane, ModeFlatTorus:
		c, ok := state.(Cartesian)
		if !ok {
			panic(fmt.Sprintf("walk: %s step needs Cartesian state, got %T", mode, state))
		}
		p := c.Position
		if dir.horizontal() {
			p.X += dir.sign() * geom.StepSize
		} else {
			p.Y += dir.sign() * geom.StepSize
		}
		if mode == ModePlane {
			p.X = core.ClampF(p.X, 0, math.Max(w, 0))
			p.Y = core.ClampF(p.Y, 0, math.Max(h, 0))
		} else {
			p.X = wrapAxis(p.X, w)
			p.Y = wrapAxis(p.Y, h)
		}
		return Cartesian{p}, p

	case ModeCurvedTorus:
		a, ok := state.(Angular)
		if !ok {
			panic(fmt.Sprintf("walk: %s step needs Angular state, got %T", mode, state))
		}
		s := a.AngularState
		if dir.horizontal() {
			// metric factor uses theta before the step
			s.Phi += dir.sign() * geom.BaseStep / geom.MetricFactor(s.Theta)
		} else {
			s.Theta += dir.sign() * geom.BaseStep
		}
		s.Theta = wrapAngle(s.Theta)
		s.Phi = wrapAngle(s.Phi)
		return Angular{s}, s.Position(w, h)

	default:
		panic(fmt.Sprintf("walk: unknown mode %d", int(mode)))
	}
}

// wrapAxis identifies opposite edges of [0, extent]. A single correction
// covers any one-step overshoot; larger jumps, which only happen after a
// resize shrinks the extent, fall back to a modular reduction so the result
// always lands in range.
func wrapAxis(v, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	if v > extent {
		v -= extent
	} else if v < 0 {
		v += extent
	}
	if v < 0 || v > extent {
		v = math.Mod(v, extent)
		if v < 0 {
			v += extent
		}
	}
	return v
}

// wrapAngle reduces a to [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a+twoPi, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}
