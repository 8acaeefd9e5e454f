package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWalk loads the walk configuration.
// Search order: customPath -> ~/.randomwalk/configs/walk.yaml -> ./configs/walk.yaml -> embedded default
// Files are decoded over the defaults, so a file may set only the keys it changes.
func LoadWalk(customPath string) (WalkConfig, error) {
	cfg := DefaultWalkConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("walk.yaml"); userCfgPath != "" {
		if c, ok := readWalk(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := readWalk(filepath.Join("configs", "walk.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultWalkYAML, &cfg); err != nil {
		return DefaultWalkConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readWalk decodes path over the defaults. Unreadable, malformed or invalid
// files are skipped so the search falls through.
func readWalk(path string) (WalkConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WalkConfig{}, false
	}
	cfg := DefaultWalkConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WalkConfig{}, false
	}
	if cfg.Validate() != nil {
		return WalkConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".randomwalk", "configs", filename)
}

// ApplyPreset replaces the torus radii with a named shape.
// Step sizes and everything else stay as loaded.
func ApplyPreset(cfg *WalkConfig, preset GeometryPreset) error {
	switch preset {
	case PresetFixed, "":
		return nil
	case PresetStandard:
		cfg.Geometry.MajorRadius, cfg.Geometry.MinorRadius = 3, 1
	case PresetThin:
		cfg.Geometry.MajorRadius, cfg.Geometry.MinorRadius = 5, 0.5
	case PresetSpindle:
		// R < r: the inner side folds through the axis, so the metric floor applies
		cfg.Geometry.MajorRadius, cfg.Geometry.MinorRadius = 1, 2
	default:
		return fmt.Errorf("config: unknown preset %q", preset)
	}
	return nil
}
