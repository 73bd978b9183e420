package core

import "math"

// AABB represents an axis-aligned bounding box.
// The zero value is the empty box: a degenerate box at the origin.
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray overlaps this AABB within (tMin, tMax) using the slab method.
// A zero direction component divides to ±Inf, which the comparisons below
// handle without a special case.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invDirection := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (aabb.Min.Axis(axis) - origin) * invDirection
		t1 := (aabb.Max.Axis(axis) - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		// Shrink the running interval to this slab
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Contains reports whether other lies entirely inside this AABB
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && other.Max.X <= aabb.Max.X &&
		aabb.Min.Y <= other.Min.Y && other.Max.Y <= aabb.Max.Y &&
		aabb.Min.Z <= other.Min.Z && other.Max.Z <= aabb.Max.Z
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Corners returns the eight corner points of the AABB
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		corner := aabb.Min
		if i&1 != 0 {
			corner.X = aabb.Max.X
		}
		if i&2 != 0 {
			corner.Y = aabb.Max.Y
		}
		if i&4 != 0 {
			corner.Z = aabb.Max.Z
		}
		corners[i] = corner
	}
	return corners
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
