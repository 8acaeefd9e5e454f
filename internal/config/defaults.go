package config

import (
	_ "embed"
)

//go:embed defaults/walk.yaml
var defaultWalkYAML []byte

// DefaultWalkConfig returns the default walk configuration.
func DefaultWalkConfig() WalkConfig {
	return WalkConfig{
		Geometry: GeometryConfig{
			MajorRadius: 3.0,
			MinorRadius: 1.0,
			BaseStep:    0.01,
			StepSize:    1.0,
			MetricFloor: 0.1,
		},
		Path: PathConfig{
			Capacity: 1_000_000,
		},
		Scene: SceneConfig{
			InitialMode: "curved",
		},
		Colors: ColorConfig{
			Line:         "#ffffff",
			GradientFrom: "#0000ff",
			GradientTo:   "#ff0000",
		},
	}
}
