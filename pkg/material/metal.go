package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	NoEmission
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Calculate perfect reflection direction
	reflected := rayIn.Direction.Reflect(hit.Normal).Normalize()

	// Add fuzziness by perturbing the reflection direction
	if m.Fuzzness > 0 {
		perturbation := core.RandomInUnitSphere(sampler).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation)
	}

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)

	// Absorb rays the fuzz pushed below the surface
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, true
}
