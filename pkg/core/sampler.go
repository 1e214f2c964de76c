package core

import (
	"math/rand"
)

// Sampler is a seeded random stream used by the light transport kernels.
// Nested estimators call Fork to obtain statistically independent,
// reproducible sub-streams so their samples never correlate.
type Sampler struct {
	rng  *rand.Rand
	seed int64
}

// NewSampler creates a sampler seeded with the given value
func NewSampler(seed int64) *Sampler {
	return &Sampler{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Get1D returns a uniform sample in [0, 1)
func (s *Sampler) Get1D() float64 {
	return s.rng.Float64()
}

// Get2D returns a uniform sample in [0, 1)^2
func (s *Sampler) Get2D() Vec2 {
	return NewVec2(s.rng.Float64(), s.rng.Float64())
}

// Fork returns an independent child sampler whose seed is drawn
// deterministically from this stream. Forking advances the parent stream
// by one value, so sibling forks are independent of each other too.
func (s *Sampler) Fork() *Sampler {
	return NewSampler(int64(s.rng.Uint64()))
}

// Reseed resets the stream to a fresh deterministic state
func (s *Sampler) Reseed(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed the stream was last initialized with
func (s *Sampler) Seed() int64 {
	return s.seed
}
