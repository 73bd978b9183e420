package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	NoEmission
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Determine if we're entering or exiting the material
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex // Ray is entering the material (from air to glass)
	} else {
		refractionRatio = d.RefractiveIndex // Ray is exiting the material (from glass to air)
	}

	// Normalize the incoming ray direction
	unitDirection := rayIn.Direction.Normalize()

	// Calculate the cosine of the angle between ray and normal
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Check for total internal reflection
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, d.RefractiveIndex) > sampler.Get1D() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation.
// R0 is symmetric in ior and 1/ior, so either side's ratio gives the same result.
func Reflectance(cosine, ior float64) float64 {
	r0 := (1 - ior) / (1 + ior)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
