package walk

import "time"

// maxBurst bounds the steps released for a single frame so a long stall
// (a suspended terminal, a dragged window) does not freeze the next frame.
const maxBurst = 20000

// Pacer converts elapsed frame time into a number of steps. A rate of zero
// or less releases exactly one step per frame.
type Pacer struct {
	rate  float64 // steps per second
	carry float64
}

// NewPacer returns a pacer for rate steps per second.
func NewPacer(rate float64) *Pacer {
	return &Pacer{rate: rate}
}

// Rate returns the configured steps per second.
func (p *Pacer) Rate() float64 { return p.rate }

// Steps returns how many steps to run for a frame that took elapsed.
// Fractional steps carry over to later frames.
func (p *Pacer) Steps(elapsed time.Duration) int {
	if p.rate <= 0 {
		return 1
	}
	if elapsed < 0 {
		elapsed = 0
	}
	p.carry += elapsed.Seconds() * p.rate
	n := int(p.carry)
	p.carry -= float64(n)
	if n > maxBurst {
		n = maxBurst
	}
	return n
}

// Reset drops any carried fraction.
func (p *Pacer) Reset() { p.carry = 0 }
