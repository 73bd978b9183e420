package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material decides how a ray continues after hitting a surface and what light the surface emits.
// Materials are immutable once built and shared by reference between many shapes.
type Material interface {
	// Scatter returns the attenuation and outgoing ray, or false if the ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the light emitted at the given surface coordinates and point
	Emitted(uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// NoEmission provides the black Emitted default for materials that do not emit light
type NoEmission struct{}

// Emitted returns black
func (NoEmission) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, always opposing the ray
	UV        core.Vec2 // Surface parametric coordinates
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
