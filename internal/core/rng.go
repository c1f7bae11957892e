package core

// RNG is a deterministic pseudo-random number generator.
// It is a 64-bit LCG whose whole state is one word, so snapshots can capture
// and restore it exactly.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed. A zero seed is mapped to 1.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n). Returns 0 for n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG have far longer periods than the low ones.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// State returns the raw generator state.
func (r *RNG) State() uint64 {
	return r.state
}

// SetState overwrites the raw generator state.
func (r *RNG) SetState(s uint64) {
	r.state = s
}
