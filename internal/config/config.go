// Package config provides YAML-based walk configuration loading and
// geometry presets for the random walk frontends.
package config

// WalkConfig contains all configuration for a walk.
type WalkConfig struct {
	Geometry GeometryConfig `yaml:"geometry"`
	Path     PathConfig     `yaml:"path"`
	Scene    SceneConfig    `yaml:"scene"`
	Sim      SimConfig      `yaml:"sim"`
	Colors   ColorConfig    `yaml:"colors"`
}

// GeometryConfig defines the torus radii and step magnitudes.
type GeometryConfig struct {
	MajorRadius float64 `yaml:"major_radius"` // R, ring radius
	MinorRadius float64 `yaml:"minor_radius"` // r, tube radius
	BaseStep    float64 `yaml:"base_step"`    // radians per curved step
	StepSize    float64 `yaml:"step_size"`    // screen units per planar step
	MetricFloor float64 `yaml:"metric_floor"`
}

// PathConfig bounds the stored path.
type PathConfig struct {
	Capacity int `yaml:"capacity"`
}

// SceneConfig defines the walk area and starting mode.
type SceneConfig struct {
	Width       int    `yaml:"width"`  // 0 = follow the display
	Height      int    `yaml:"height"` // 0 = follow the display
	InitialMode string `yaml:"initial_mode"`
}

// SimConfig defines the simulation clock.
type SimConfig struct {
	StepsPerSecond float64 `yaml:"steps_per_second"` // 0 = one step per frame
}

// ColorConfig holds hex colors for the path.
type ColorConfig struct {
	Line         string `yaml:"line"`
	GradientFrom string `yaml:"gradient_from"`
	GradientTo   string `yaml:"gradient_to"`
}

// GeometryPreset represents a named torus shape.
type GeometryPreset string

const (
	PresetStandard GeometryPreset = "standard"
	PresetThin     GeometryPreset = "thin"
	PresetSpindle  GeometryPreset = "spindle"
	PresetFixed    GeometryPreset = "fixed"
)

// Presets lists the preset names accepted by --preset.
func Presets() []GeometryPreset {
	return []GeometryPreset{PresetStandard, PresetThin, PresetSpindle, PresetFixed}
}
