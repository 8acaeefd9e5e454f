package core

// RuntimeConfig contains configuration passed to simulations at initialization.
// Simulations use this to adapt to screen size and for deterministic stepping.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for a reproducible walk
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SimState is the status a simulation reports to the platform after each tick.
type SimState struct {
	Steps    int    // Entries in the path, including the start position
	Capacity int    // Maximum path length
	Mode     string // Active walk mode identifier
	Seed     int64  // Seed of the current walk
	Paused   bool
	Full     bool // Capacity reached; the path is static from now on
}

// StepResult is returned by Simulation.Step() after each tick.
type StepResult struct {
	State SimState
}
