// Package rng provides the small deterministic random source that seeds all
// stochastic show behavior.
package rng

// Rng is a linear congruential generator (Numerical Recipes parameters).
// A fixed seed always produces the same stream.
type Rng struct {
	state uint32
}

// New creates a generator starting from seed.
func New(seed uint32) *Rng {
	return &Rng{state: seed}
}

// Next advances the generator and returns the new state.
func (r *Rng) Next() uint32 {
	r.state = r.state*1664525 + 1013904223
	return r.state
}

// InRange returns a value in [low, high). high must be greater than low.
func (r *Rng) InRange(low, high int32) int32 {
	return int32(r.Next()%uint32(high-low)) + low
}
