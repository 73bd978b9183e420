package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse (matte) material
type Lambertian struct {
	NoEmission
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture Texture) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Normal plus a random unit vector gives a cosine-weighted direction
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// Catch degenerate scatter direction when the sample cancels the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	} else {
		scatterDirection = scatterDirection.Normalize()
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, scatterDirection, rayIn.Time),
		Attenuation: l.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
