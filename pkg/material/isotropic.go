package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Isotropic is the phase function of a participating medium: it scatters uniformly in all directions
type Isotropic struct {
	NoEmission
	Albedo Texture
}

// NewIsotropic creates a new isotropic phase function with a solid albedo
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates a new isotropic phase function with a textured albedo
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniform random direction, ignoring the incoming direction and the normal
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, core.RandomUnitVector(sampler), rayIn.Time),
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
