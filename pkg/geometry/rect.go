package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane selects which principal plane an axis-aligned rectangle lies in
type Plane int

const (
	PlaneXY Plane = iota // Fixed z, spans x and y
	PlaneXZ              // Fixed y, spans x and z
	PlaneYZ              // Fixed x, spans y and z
)

// axes returns the two in-plane axes and the fixed axis
func (p Plane) axes() (a, b, k int) {
	switch p {
	case PlaneXZ:
		return 0, 2, 1
	case PlaneYZ:
		return 1, 2, 0
	default:
		return 0, 1, 2
	}
}

// Rect is an axis-aligned rectangle [A0,A1]×[B0,B1] on the plane where the fixed axis equals K
type Rect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
	outward  float64 // +1 or -1 along the fixed axis
}

// NewRect creates a rectangle whose outward normal points along the positive fixed axis
func NewRect(plane Plane, a0, a1, b0, b1, k float64, mat material.Material) *Rect {
	return &Rect{Plane: plane, A0: a0, A1: a1, B0: b0, B1: b1, K: k, Material: mat, outward: 1}
}

// NewXYRect creates a rectangle spanning x and y at z=k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *Rect {
	return NewRect(PlaneXY, x0, x1, y0, y1, k, mat)
}

// NewXZRect creates a rectangle spanning x and z at y=k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *Rect {
	return NewRect(PlaneXZ, x0, x1, z0, z1, k, mat)
}

// NewYZRect creates a rectangle spanning y and z at x=k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *Rect {
	return NewRect(PlaneYZ, y0, y1, z0, z1, k, mat)
}

// Flipped returns a copy of the rectangle whose outward normal points the other way
func (r *Rect) Flipped() *Rect {
	flipped := *r
	flipped.outward = -r.outward
	return &flipped
}

// Hit tests if a ray intersects with the rectangle
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	a, b, k := r.Plane.axes()

	dk := ray.Direction.Axis(k)
	if dk == 0 {
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(k)) / dk
	if t <= tMin || t >= tMax {
		return nil, false
	}

	point := ray.At(t)
	pa := point.Axis(a)
	pb := point.Axis(b)
	if pa < r.A0 || pa > r.A1 || pb < r.B0 || pb > r.B1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    point,
		UV:       core.NewVec2((pa-r.A0)/(r.A1-r.A0), (pb-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, r.normal())

	return hitRecord, true
}

// BoundingBox returns the rectangle's box padded along the fixed axis
func (r *Rect) BoundingBox(time0, time1 float64) core.AABB {
	a, b, k := r.Plane.axes()
	var lo, hi [3]float64
	lo[a], hi[a] = r.A0, r.A1
	lo[b], hi[b] = r.B0, r.B1
	lo[k], hi[k] = r.K-boxPadding, r.K+boxPadding
	return core.NewAABB(core.NewVec3(lo[0], lo[1], lo[2]), core.NewVec3(hi[0], hi[1], hi[2]))
}

func (r *Rect) normal() core.Vec3 {
	_, _, k := r.Plane.axes()
	var n [3]float64
	n[k] = r.outward
	return core.NewVec3(n[0], n[1], n[2])
}
