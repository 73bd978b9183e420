package core

import (
	"math"
	"math/rand"
)

// Sampler provides uniform random numbers in [0, 1) for rendering algorithms.
// A sampler is not safe for concurrent use; each worker owns its own.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded deterministically
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// Intn returns a random integer in [0, n)
func (r *RandomSampler) Intn(n int) int {
	return r.random.Intn(n)
}

// RandomRange returns a random float64 in [lo, hi)
func RandomRange(sampler Sampler, lo, hi float64) float64 {
	return lo + (hi-lo)*sampler.Get1D()
}

// RandomIntn returns a random integer in [0, n) drawn from the sampler
func RandomIntn(sampler Sampler, n int) int {
	if rs, ok := sampler.(*RandomSampler); ok {
		return rs.Intn(n)
	}
	i := int(sampler.Get1D() * float64(n))
	return min(i, n-1)
}

// RandomVec3 returns a vector with each component uniform in [lo, hi)
func RandomVec3(sampler Sampler, lo, hi float64) Vec3 {
	u := sampler.Get3D()
	return NewVec3(lo+(hi-lo)*u.X, lo+(hi-lo)*u.Y, lo+(hi-lo)*u.Z)
}

// RandomInUnitSphere generates a random point inside the unit sphere by rejection sampling
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := RandomVec3(sampler, -1, 1)
		// Accept if inside unit sphere
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomInUnitSphere(sampler)
		// Reject points too close to the center to normalize reliably
		if lenSq := p.LengthSquared(); lenSq > 1e-160 {
			return p.Divide(math.Sqrt(lenSq))
		}
	}
}

// RandomInUnitDisk generates a random point in the z=0 unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		u := sampler.Get2D()
		p := NewVec3(2*u.X-1, 2*u.Y-1, 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
