package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ConstantMedium is a volume of uniform density bounded by a closed shape, such as smoke or fog.
// The boundary must be convex: a ray is assumed to enter and leave it once.
type ConstantMedium struct {
	Boundary      Shape
	Density       float64
	PhaseFunction material.Material
	negInvDensity float64
}

// mediumExitEpsilon separates the search for the exit crossing from the entry crossing
const mediumExitEpsilon = 0.0001

// NewConstantMedium creates a medium with a solid albedo
func NewConstantMedium(boundary Shape, density float64, albedo core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium creates a medium whose albedo comes from a texture
func NewTexturedConstantMedium(boundary Shape, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1 / density,
	}
}

// Hit samples an exponential free-flight distance through the boundary; the ray
// either scatters at that depth or passes through
func (c *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := c.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}
	exit, ok := c.Boundary.Hit(ray, entry.T+mediumExitEpsilon, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	t1 := math.Max(entry.T, tMin)
	t2 := math.Min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (t2 - t1) * rayLength
	hitDistance := c.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // Arbitrary: isotropic scattering ignores it
		FrontFace: true,
		Material:  c.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (c *ConstantMedium) BoundingBox(time0, time1 float64) core.AABB {
	return c.Boundary.BoundingBox(time0, time1)
}
