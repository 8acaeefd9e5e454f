// Package walk implements the walk-state engine: a discrete four-direction
// random walk on a bounded plane, a flat torus, or a curved torus with a
// metric-corrected angular step, plus the bounded path buffer and the
// segment filter that hides wrap-around jumps when drawing the path.
package walk

import (
	"fmt"
	"strings"
)

// Mode selects the coordinate space and boundary policy of the walk.
type Mode int

const (
	ModePlane       Mode = iota // bounded, clamped at the edges
	ModeFlatTorus               // opposite edges identified
	ModeCurvedTorus             // angular coordinates with metric correction
)

// Modes lists every walk mode in declaration order.
func Modes() []Mode {
	return []Mode{ModePlane, ModeFlatTorus, ModeCurvedTorus}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= ModePlane && m <= ModeCurvedTorus
}

// String returns the identifier used in config files, flags and run records.
func (m Mode) String() string {
	switch m {
	case ModePlane:
		return "plane"
	case ModeFlatTorus:
		return "flat-torus"
	case ModeCurvedTorus:
		return "curved-torus"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Label returns the on-screen name, including the key that selects the mode.
func (m Mode) Label() string {
	switch m {
	case ModePlane:
		return "Normal Walk (N)"
	case ModeFlatTorus:
		return "Flat 2D Torus (F)"
	case ModeCurvedTorus:
		return "Curved 3D Torus (C)"
	default:
		return "Unknown"
	}
}

// ParseMode converts an identifier or a short alias to a Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes() {
		if name == m.String() {
			return m, nil
		}
	}
	switch name {
	case "normal", "n":
		return ModePlane, nil
	case "flat", "f":
		return ModeFlatTorus, nil
	case "curved", "c":
		return ModeCurvedTorus, nil
	default:
		return ModePlane, fmt.Errorf("walk: unknown mode %q", s)
	}
}

// Direction is one of the four cardinal moves in a mode's native space.
type Direction int

const (
	DirPosX Direction = iota // +X, or +phi on the curved torus
	DirNegX                  // -X, or -phi
	DirPosY                  // +Y, or +theta
	DirNegY                  // -Y, or -theta
)

// DirectionFromSample maps an RNG sample in [0,4) to a direction.
// Any other value means a broken RNG collaborator and panics.
func DirectionFromSample(sample int) Direction {
	if sample < 0 || sample > 3 {
		panic(fmt.Sprintf("walk: direction sample %d outside [0,4)", sample))
	}
	return Direction(sample)
}

// sign returns the unit delta along the direction's axis.
func (d Direction) sign() float64 {
	if d == DirPosX || d == DirPosY {
		return 1
	}
	return -1
}

// horizontal reports whether the direction moves along X (phi).
func (d Direction) horizontal() bool {
	return d == DirPosX || d == DirNegX
}
