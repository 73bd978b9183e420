package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) core.AABB {
	return sphereBox(s.Center, s.Radius)
}

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0 to Center1 at Time1
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a sphere that moves during the shutter interval
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}
}

// CenterAt returns the sphere center at the given time
func (m *MovingSphere) CenterAt(time float64) core.Vec3 {
	if m.Time1 == m.Time0 {
		return m.Center0
	}
	fraction := (time - m.Time0) / (m.Time1 - m.Time0)
	return m.Center0.Add(m.Center1.Subtract(m.Center0).Multiply(fraction))
}

// Hit intersects the ray with the sphere at the ray's time
func (m *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitSphere(m.CenterAt(ray.Time), m.Radius, m.Material, ray, tMin, tMax)
}

// BoundingBox returns the union of the boxes at both ends of the time interval
func (m *MovingSphere) BoundingBox(time0, time1 float64) core.AABB {
	return sphereBox(m.CenterAt(time0), m.Radius).Union(sphereBox(m.CenterAt(time1), m.Radius))
}

func hitSphere(center core.Vec3, radius float64, mat material.Material, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: mat,
	}

	// Calculate outward normal (from center to hit point)
	outwardNormal := hitRecord.Point.Subtract(center).Divide(radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = sphereUV(outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to (u, v): u is the angle around
// the Y axis from X=-1, v is the angle from Y=-1 to Y=+1, both scaled to [0,1].
// Rounding can push p.Y just past ±1 near the poles, so it is clamped before Acos.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1, min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := core.NewVec3(radius, radius, radius)
	return core.NewAABB(center.Subtract(r), center.Add(r))
}
