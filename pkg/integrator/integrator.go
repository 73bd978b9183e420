package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance arriving along ray from world, bouncing at most depth times.
	// Rays that escape the scene see the constant background color.
	RayColor(ray core.Ray, background core.Vec3, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3
}
