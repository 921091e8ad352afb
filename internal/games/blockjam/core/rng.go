package core

// Rand is the random source used by level generation.
// *math/rand.Rand and *SimpleRNG both satisfy it.
type Rand interface {
	Intn(n int) int
}

// SimpleRNG is a deterministic pseudo-random number generator (xorshift64).
type SimpleRNG struct {
	seed  uint64
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *SimpleRNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &SimpleRNG{seed: seed, state: seed}
}

// Seed returns the seed the generator was created with.
func (r *SimpleRNG) Seed() uint64 {
	return r.seed
}

// Next returns the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a random int in [0, n). Returns 0 when n <= 0.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// rangeInt returns a uniform int in [lo, hi]. hi < lo yields lo.
func rangeInt(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// shuffleColors shuffles in place with Fisher-Yates.
func shuffleColors(rng Rand, colors []Color) {
	for i := len(colors) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		colors[i], colors[j] = colors[j], colors[i]
	}
}
