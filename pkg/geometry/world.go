package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// World is an ordered list of shapes intersected by linear scan
type World struct {
	Shapes []Shape
}

// NewWorld creates a list holding the given shapes
func NewWorld(shapes ...Shape) *World {
	return &World{Shapes: shapes}
}

// Add appends a shape to the list. Only call this during scene construction.
func (w *World) Add(shape Shape) {
	w.Shapes = append(w.Shapes, shape)
}

// Hit returns the closest hit among all shapes
func (w *World) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, shape := range w.Shapes {
		if hit, ok := shape.Hit(ray, tMin, closestSoFar, sampler); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes, or the empty box for an empty list
func (w *World) BoundingBox(time0, time1 float64) core.AABB {
	if len(w.Shapes) == 0 {
		return core.AABB{}
	}

	box := w.Shapes[0].BoundingBox(time0, time1)
	for _, shape := range w.Shapes[1:] {
		box = box.Union(shape.BoundingBox(time0, time1))
	}
	return box
}
