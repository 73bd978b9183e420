package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a shape by a fixed offset
type Translate struct {
	Shape  Shape
	Offset core.Vec3
}

// NewTranslate wraps shape so that it appears moved by offset
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

// Hit moves the ray into the shape's frame, then moves the hit point back out
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Shape.Hit(moved, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the wrapped shape's box moved by the offset
func (t *Translate) BoundingBox(time0, time1 float64) core.AABB {
	box := t.Shape.BoundingBox(time0, time1)
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset))
}
