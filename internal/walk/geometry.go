package walk

import "math"

// Geometry holds the step magnitudes and torus radii. It is fixed for the
// lifetime of an engine.
type Geometry struct {
	MajorRadius float64 // R
	MinorRadius float64 // r
	BaseStep    float64 // angular step on the curved torus
	StepSize    float64 // planar step on the plane and flat torus
	MetricFloor float64 // lower bound of the metric factor
}

// DefaultGeometry returns R=3, r=1 with a 0.01 rad angular step and a unit
// planar step.
func DefaultGeometry() Geometry {
	return Geometry{
		MajorRadius: 3,
		MinorRadius: 1,
		BaseStep:    0.01,
		StepSize:    1,
		MetricFloor: 0.1,
	}
}

// MetricFactor returns R + r*cos(theta), floored at MetricFloor. Dividing an
// angular phi step by it keeps the arc length of a step comparable between
// the outer and inner side of the torus.
func (g Geometry) MetricFactor(theta float64) float64 {
	f := g.MajorRadius + g.MinorRadius*math.Cos(theta)
	if f < g.MetricFloor {
		return g.MetricFloor
	}
	return f
}
