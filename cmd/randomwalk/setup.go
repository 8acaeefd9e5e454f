package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/config"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/core"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/sims/walker"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/storage"
)

// loadWalkConfig loads the walk config, applies --preset and --rate, and
// hands the result to the surfaces.
func loadWalkConfig(preset config.GeometryPreset) (config.WalkConfig, error) {
	cfg, err := config.LoadWalk(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, preset); err != nil {
		return cfg, err
	}
	if flagRate >= 0 {
		cfg.Sim.StepsPerSecond = flagRate
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	walker.SetConfig(cfg)
	return cfg, nil
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the run history. The walk works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return nil
	}
	return store
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
