package walker

// Snapshot contains the walk state for determinism tests and run records.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick   uint64
	Steps  int
	Mode   string
	X, Y   float64
	Theta  float64
	Phi    float64
	Seed   int64
	Draws  int64 // RNG samples consumed
	Paused bool
}

// Snapshot returns the current walk state.
func (s *Sim) Snapshot() Snapshot {
	pos := s.eng.Position()
	ang := s.eng.Angles()
	return Snapshot{
		Tick:   s.ticks,
		Steps:  s.eng.Steps(),
		Mode:   s.eng.Mode().String(),
		X:      pos.X,
		Y:      pos.Y,
		Theta:  ang.Theta,
		Phi:    ang.Phi,
		Seed:   s.rc.Seed,
		Draws:  s.src.Position(),
		Paused: s.paused,
	}
}
