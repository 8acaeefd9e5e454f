package config

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/walk"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid walk config")

// Validate checks that the config describes a walk the engine can run.
func (c WalkConfig) Validate() error {
	g := c.Geometry
	switch {
	case c.Path.Capacity < 1:
		return fmt.Errorf("%w: path.capacity must be at least 1, got %d", ErrInvalid, c.Path.Capacity)
	case g.StepSize <= 0:
		return fmt.Errorf("%w: geometry.step_size must be positive, got %v", ErrInvalid, g.StepSize)
	case g.BaseStep <= 0:
		return fmt.Errorf("%w: geometry.base_step must be positive, got %v", ErrInvalid, g.BaseStep)
	case g.MetricFloor <= 0:
		return fmt.Errorf("%w: geometry.metric_floor must be positive, got %v", ErrInvalid, g.MetricFloor)
	case g.MajorRadius <= 0 || g.MinorRadius <= 0:
		return fmt.Errorf("%w: torus radii must be positive, got R=%v r=%v", ErrInvalid, g.MajorRadius, g.MinorRadius)
	case c.Scene.Width < 0 || c.Scene.Height < 0:
		return fmt.Errorf("%w: scene size must not be negative", ErrInvalid)
	case c.Sim.StepsPerSecond < 0:
		return fmt.Errorf("%w: sim.steps_per_second must not be negative", ErrInvalid)
	}
	if _, err := walk.ParseMode(c.Scene.InitialMode); err != nil {
		return fmt.Errorf("%w: scene.initial_mode: %v", ErrInvalid, err)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// InitialMode returns the configured starting mode, or the curved torus when
// the value does not parse.
func (c WalkConfig) InitialMode() walk.Mode {
	m, err := walk.ParseMode(c.Scene.InitialMode)
	if err != nil {
		return walk.ModeCurvedTorus
	}
	return m
}

// WalkGeometry converts the geometry section for the engine.
func (c WalkConfig) WalkGeometry() walk.Geometry {
	return walk.Geometry{
		MajorRadius: c.Geometry.MajorRadius,
		MinorRadius: c.Geometry.MinorRadius,
		BaseStep:    c.Geometry.BaseStep,
		StepSize:    c.Geometry.StepSize,
		MetricFloor: c.Geometry.MetricFloor,
	}
}

// Palette parses the hex colors.
func (c WalkConfig) Palette() (walk.Palette, error) {
	var p walk.Palette
	var err error
	if p.Line, err = colorful.Hex(c.Colors.Line); err != nil {
		return p, fmt.Errorf("colors.line: %w", err)
	}
	if p.GradientFrom, err = colorful.Hex(c.Colors.GradientFrom); err != nil {
		return p, fmt.Errorf("colors.gradient_from: %w", err)
	}
	if p.GradientTo, err = colorful.Hex(c.Colors.GradientTo); err != nil {
		return p, fmt.Errorf("colors.gradient_to: %w", err)
	}
	return p, nil
}

// EngineConfig builds the engine setup for mode. An unparsable palette falls
// back to the default colors.
func (c WalkConfig) EngineConfig(mode walk.Mode) walk.Config {
	p, err := c.Palette()
	if err != nil {
		p = walk.DefaultPalette()
	}
	return walk.Config{
		Mode:     mode,
		Geometry: c.WalkGeometry(),
		Capacity: c.Path.Capacity,
		Palette:  p,
	}
}

// FixedSize reports the configured scene size when both sides are set.
func (c WalkConfig) FixedSize() (walk.Size, bool) {
	if c.Scene.Width > 0 && c.Scene.Height > 0 {
		return walk.Size{W: float64(c.Scene.Width), H: float64(c.Scene.Height)}, true
	}
	return walk.Size{}, false
}
