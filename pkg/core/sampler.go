package core

import (
	"math"
	"math/rand"
)

// Sampler provides random draws for rendering algorithms.
// Can be swapped out for deterministic sequences in tests.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded from seed
func NewSeededSampler(seed int64) *RandomSampler {
	return &RandomSampler{random: rand.New(rand.NewSource(seed))}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// RandomUnitVector generates a uniformly distributed direction on the unit
// sphere by rejection sampling the unit cube. Points too close to the center
// are rejected so the final division cannot blow up.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		v := Vec3{
			X: 2*sampler.Get1D() - 1,
			Y: 2*sampler.Get1D() - 1,
			Z: 2*sampler.Get1D() - 1,
		}
		lenSq := v.LengthSquared()
		if 1e-20 < lenSq && lenSq <= 1.0 {
			return v.Multiply(1.0 / math.Sqrt(lenSq))
		}
	}
}

// RandomInUnitDisk generates a random point inside the unit disk (z = 0 plane)
func RandomInUnitDisk(sampler Sampler) Vec2 {
	for {
		v := NewVec2(2*sampler.Get1D()-1, 2*sampler.Get1D()-1)
		if v.LengthSquared() < 1.0 {
			return v
		}
	}
}
