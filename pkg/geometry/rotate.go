package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Axis names a principal axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) unit() r3.Vec {
	switch a {
	case AxisX:
		return r3.Vec{X: 1}
	case AxisZ:
		return r3.Vec{Z: 1}
	default:
		return r3.Vec{Y: 1}
	}
}

// Rotate turns a shape about a principal axis through the origin.
// Angles follow the right-hand rule about the axis.
type Rotate struct {
	Shape   Shape
	Axis    Axis
	Degrees float64
	forward r3.Rotation
	inverse r3.Rotation
	bbox    core.AABB
}

// NewRotate wraps shape rotated by degrees about axis.
// The box encloses the eight corners of the wrapped box over the shutter interval [0,1].
func NewRotate(shape Shape, axis Axis, degrees float64) *Rotate {
	radians := degrees * math.Pi / 180
	r := &Rotate{
		Shape:   shape,
		Axis:    axis,
		Degrees: degrees,
		forward: r3.NewRotation(radians, axis.unit()),
		inverse: r3.NewRotation(-radians, axis.unit()),
	}

	corners := shape.BoundingBox(0, 1).Corners()
	for i, corner := range corners {
		corners[i] = r.rotate(r.forward, corner)
	}
	r.bbox = core.NewAABBFromPoints(corners[:]...)

	return r
}

// NewRotateX wraps shape rotated about the X axis
func NewRotateX(shape Shape, degrees float64) *Rotate { return NewRotate(shape, AxisX, degrees) }

// NewRotateY wraps shape rotated about the Y axis
func NewRotateY(shape Shape, degrees float64) *Rotate { return NewRotate(shape, AxisY, degrees) }

// NewRotateZ wraps shape rotated about the Z axis
func NewRotateZ(shape Shape, degrees float64) *Rotate { return NewRotate(shape, AxisZ, degrees) }

// Hit rotates the ray into the shape's frame, then rotates the hit point and normal back out
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(
		r.rotate(r.inverse, ray.Origin),
		r.rotate(r.inverse, ray.Direction),
		ray.Time,
	)

	hit, ok := r.Shape.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	// Points and normals go through the same forward rotation; it preserves
	// the normal's orientation relative to the ray, so FrontFace still holds
	hit.Point = r.rotate(r.forward, hit.Point)
	hit.Normal = r.rotate(r.forward, hit.Normal)
	return hit, true
}

// BoundingBox returns the box around the rotated corners
func (r *Rotate) BoundingBox(time0, time1 float64) core.AABB {
	return r.bbox
}

func (r *Rotate) rotate(rotation r3.Rotation, v core.Vec3) core.Vec3 {
	p := rotation.Rotate(r3.Vec{X: v.X, Y: v.Y, Z: v.Z})
	return core.NewVec3(p.X, p.Y, p.Z)
}
