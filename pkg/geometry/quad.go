package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Unit normal (computed from U × V)
	Material material.Material // Material of the quad
	D        float64           // Plane equation constant: Normal · p = D
	W        core.Vec3         // Cached n / (n · n) for planar coordinates
	bbox     core.AABB
}

// parallelEpsilon rejects rays nearly parallel to the plane
const parallelEpsilon = 1e-8

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	// Bounding box over both diagonals, padded so it never has zero thickness
	bbox := core.NewAABBFromPoints(corner, corner.Add(u), corner.Add(v), corner.Add(u).Add(v))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		D:        normal.Dot(corner),
		W:        n.Divide(n.Dot(n)),
		bbox:     padBox(bbox),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t <= tMin || t >= tMax {
		return nil, false
	}

	hitPoint := ray.At(t)

	// Express the hit point in the (U, V) basis
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the padded box around the quad's four corners
func (q *Quad) BoundingBox(time0, time1 float64) core.AABB {
	return q.bbox
}
