package walk

import "math/rand"

// Source supplies uniform integers in [0,n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// RNG wraps a seeded math/rand source with a draw counter so a run can
// state how many samples it consumed.
type RNG struct {
	src *rand.Rand
	pos int64
}

// NewRNG creates a deterministic source from seed.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform integer in [0,n).
func (r *RNG) Intn(n int) int {
	r.pos++
	return r.src.Intn(n)
}

// Position returns the number of draws made so far.
func (r *RNG) Position() int64 { return r.pos }

// Sequence replays a fixed list of samples, cycling when it runs out.
// It is meant for scripted walks such as "always +X".
type Sequence struct {
	samples []int
	next    int
}

// NewSequence returns a source that yields samples in order.
func NewSequence(samples ...int) *Sequence {
	if len(samples) == 0 {
		samples = []int{0}
	}
	return &Sequence{samples: samples}
}

// Intn returns the next scripted sample; n is ignored.
func (s *Sequence) Intn(int) int {
	v := s.samples[s.next%len(s.samples)]
	s.next++
	return v
}

// Drawn returns how many samples were consumed.
func (s *Sequence) Drawn() int { return s.next }
