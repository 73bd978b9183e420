package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emit Texture // Emitted light color/intensity
}

// NewDiffuseLight creates a new emitter with a uniform color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a new emitter whose emission varies with a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter implements the Material interface for emissive materials.
// Lights don't scatter rays, they only emit.
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emitted light for this material
func (e *DiffuseLight) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return e.Emit.Evaluate(uv, point)
}
