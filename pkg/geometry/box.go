package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is an axis-aligned block made of six rectangles with outward-facing normals.
// Rotated boxes are built by wrapping a Box in Rotate and Translate.
type Box struct {
	Min, Max core.Vec3
	sides    *World
}

// NewBox creates a block spanning the two opposite corners p0 and p1
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	lo := core.NewVec3(min(p0.X, p1.X), min(p0.Y, p1.Y), min(p0.Z, p1.Z))
	hi := core.NewVec3(max(p0.X, p1.X), max(p0.Y, p1.Y), max(p0.Z, p1.Z))

	sides := NewWorld(
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, hi.Z, mat),           // Front (Z+)
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, lo.Z, mat).Flipped(), // Back (Z-)
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, hi.Y, mat),           // Top (Y+)
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, lo.Y, mat).Flipped(), // Bottom (Y-)
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, hi.X, mat),           // Right (X+)
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, lo.X, mat).Flipped(), // Left (X-)
	)

	return &Box{Min: lo, Max: hi, sides: sides}
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the block's own corner extents
func (b *Box) BoundingBox(time0, time1 float64) core.AABB {
	return core.NewAABB(b.Min, b.Max)
}
