package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Shapes are built once per scene and queried concurrently, so Hit must not mutate the shape.
type Shape interface {
	// Hit returns the nearest intersection with t strictly inside (tMin, tMax).
	// The sampler is the calling worker's random stream; only volumes consume it.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box containing the shape over the whole time interval
	BoundingBox(time0, time1 float64) core.AABB
}

// boxPadding keeps planar shapes from producing zero-thickness boxes
const boxPadding = 0.0001

// padBox widens any axis of box thinner than boxPadding
func padBox(box core.AABB) core.AABB {
	size := box.Size()
	if size.X < boxPadding {
		box.Min.X -= boxPadding / 2
		box.Max.X += boxPadding / 2
	}
	if size.Y < boxPadding {
		box.Min.Y -= boxPadding / 2
		box.Max.Y += boxPadding / 2
	}
	if size.Z < boxPadding {
		box.Min.Z -= boxPadding / 2
		box.Max.Z += boxPadding / 2
	}
	return box
}
