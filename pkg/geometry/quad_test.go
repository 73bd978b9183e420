package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// DummyMaterial for testing
type DummyMaterial struct{}

func (d DummyMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

func (d DummyMaterial) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func TestQuad_Hit_BasicIntersection(t *testing.T) {
	// Create a 1x1 quad in the XZ plane at y=0
	corner := core.NewVec3(0, 0, 0)
	u := core.NewVec3(1, 0, 0) // X direction
	v := core.NewVec3(0, 0, 1) // Z direction
	quad := NewQuad(corner, u, v, DummyMaterial{})

	// Ray shooting down toward the quad
	ray := core.NewRay(core.NewVec3(0.25, 1, 0.75), core.NewVec3(0, -1, 0))

	hit, isHit := quad.Hit(ray, 0.001, 1000.0, nil)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}

	expectedPoint := core.NewVec3(0.25, 0, 0.75)
	if !hit.Point.Equals(expectedPoint) {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}

	// UV is the position in the (u, v) edge basis
	if math.Abs(hit.UV.X-0.25) > 1e-9 || math.Abs(hit.UV.Y-0.75) > 1e-9 {
		t.Errorf("Expected UV (0.25, 0.75), got %v", hit.UV)
	}

	// u × v = x × z = -y, so a ray from above sees the back face
	if hit.FrontFace {
		t.Error("Expected back face hit for ray against the quad normal")
	}
	if !hit.Normal.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected normal to oppose the ray, got %v", hit.Normal)
	}
}

func TestQuad_Hit_OutsideBounds(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), DummyMaterial{})

	tests := []struct {
		name      string
		rayOrigin core.Vec3
		rayDir    core.Vec3
	}{
		{"outside X bounds (negative)", core.NewVec3(-0.5, 1, 0.5), core.NewVec3(0, -1, 0)},
		{"outside X bounds (positive)", core.NewVec3(1.5, 1, 0.5), core.NewVec3(0, -1, 0)},
		{"outside Z bounds (negative)", core.NewVec3(0.5, 1, -0.5), core.NewVec3(0, -1, 0)},
		{"outside Z bounds (positive)", core.NewVec3(0.5, 1, 1.5), core.NewVec3(0, -1, 0)},
		{"parallel to plane", core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1)},
		{"pointing away", core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDir)
			hit, isHit := quad.Hit(ray, 0.001, 1000.0, nil)
			if isHit {
				t.Errorf("Expected miss, but got hit at t=%f", hit.T)
			}
		})
	}
}

func TestQuad_Hit_Parallelogram(t *testing.T) {
	// Skewed quad: v leans along x
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(1, 1, 0), DummyMaterial{})

	for i, tc := range []struct {
		x, y float64
		hit  bool
	}{
		{1.5, 0.5, true},
		{2.5, 0.9, true},
		{0.1, 0.9, false}, // Inside the bounding rectangle but left of the slanted edge
	} {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(tc.x, tc.y, 1), core.NewVec3(0, 0, -1))
			_, isHit := quad.Hit(ray, 0.001, 1000.0, nil)
			if isHit != tc.hit {
				t.Errorf("At (%f, %f): expected hit=%t, got %t", tc.x, tc.y, tc.hit, isHit)
			}
		})
	}
}

func TestQuad_BoundingBox(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), DummyMaterial{})
	box := quad.BoundingBox(0, 1)

	if box.Min.X != 0 || box.Max.X != 1 || box.Min.Z != 0 || box.Max.Z != 1 {
		t.Errorf("Unexpected in-plane extent %v", box)
	}
	if box.Max.Y-box.Min.Y <= 0 {
		t.Errorf("Expected padded thickness along Y, got %v", box)
	}
}

func TestRect_Hit(t *testing.T) {
	tests := []struct {
		name           string
		rect           *Rect
		ray            core.Ray
		expectedT      float64
		expectedUV     core.Vec2
		expectedNormal core.Vec3
		expectedFront  bool
	}{
		{
			name:           "XY rect from +z",
			rect:           NewXYRect(0, 2, 0, 4, -1, DummyMaterial{}),
			ray:            core.NewRay(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, -1)),
			expectedT:      2,
			expectedUV:     core.NewVec2(0.5, 0.25),
			expectedNormal: core.NewVec3(0, 0, 1),
			expectedFront:  true,
		},
		{
			name:           "XZ rect from below",
			rect:           NewXZRect(-1, 1, -1, 1, 3, DummyMaterial{}),
			ray:            core.NewRay(core.NewVec3(0.5, 0, 0), core.NewVec3(0, 1, 0)),
			expectedT:      3,
			expectedUV:     core.NewVec2(0.75, 0.5),
			expectedNormal: core.NewVec3(0, -1, 0),
			expectedFront:  false,
		},
		{
			name:           "flipped YZ rect from -x",
			rect:           NewYZRect(0, 1, 0, 1, 0, DummyMaterial{}).Flipped(),
			ray:            core.NewRay(core.NewVec3(-2, 0.5, 0.5), core.NewVec3(1, 0, 0)),
			expectedT:      2,
			expectedUV:     core.NewVec2(0.5, 0.5),
			expectedNormal: core.NewVec3(-1, 0, 0),
			expectedFront:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.rect.Hit(tt.ray, 0.001, math.Inf(1), nil)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if math.Abs(hit.UV.X-tt.expectedUV.X) > 1e-9 || math.Abs(hit.UV.Y-tt.expectedUV.Y) > 1e-9 {
				t.Errorf("Expected UV %v, got %v", tt.expectedUV, hit.UV)
			}
			if !hit.Normal.Equals(tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
		})
	}
}

func TestRect_Miss(t *testing.T) {
	rect := NewXYRect(0, 1, 0, 1, 0, DummyMaterial{})

	for _, ray := range []core.Ray{
		core.NewRay(core.NewVec3(2, 0.5, 1), core.NewVec3(0, 0, -1)),    // Outside in x
		core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(1, 0, 0)),   // Parallel
		core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, 1)),   // Away
		core.NewRay(core.NewVec3(0.5, -0.1, 1), core.NewVec3(0, 0, -1)), // Outside in y
	} {
		if hit, isHit := rect.Hit(ray, 0.001, math.Inf(1), nil); isHit {
			t.Errorf("Expected miss for %v, got hit at t=%f", ray, hit.T)
		}
	}

	box := rect.BoundingBox(0, 1)
	if box.Min.Z >= 0 || box.Max.Z <= 0 {
		t.Errorf("Expected box padded around z=0, got %v", box)
	}
}
