package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_HalfUnitSphere(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1), nil)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected t=0.5, got t=%f", hit.T)
	}
	if !hit.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if hit.Material != (DummyMaterial{}) {
		t.Errorf("Expected the sphere's material on the hit record")
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			if !hit.Normal.Equals(tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, 0.001, 0.5, nil)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, 3.5, 1000.0, nil)
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Interval is open: a root exactly at tMax is excluded, so the far root is not reachable either
	hit, isHit = sphere.Hit(ray, 0.001, 1.0, nil)
	if isHit {
		t.Errorf("Expected miss with root on the open upper bound, got hit at t=%f", hit.T)
	}

	// Near root excluded by tMin falls through to the far root
	hit, isHit = sphere.Hit(ray, 1.5, 1000.0, nil)
	if !isHit || math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root at t=3, got hit=%t", isHit)
	}
}

func TestSphereUV(t *testing.T) {
	tests := []struct {
		point    core.Vec3
		expected core.Vec2
	}{
		{core.NewVec3(1, 0, 0), core.NewVec2(0.5, 0.5)},
		{core.NewVec3(0, 1, 0), core.NewVec2(0.5, 1.0)},
		{core.NewVec3(0, -1, 0), core.NewVec2(0.5, 0.0)},
		{core.NewVec3(0, 0, 1), core.NewVec2(0.25, 0.5)},
		{core.NewVec3(0, 0, -1), core.NewVec2(0.75, 0.5)},
	}

	for _, tt := range tests {
		uv := sphereUV(tt.point)
		if math.Abs(uv.X-tt.expected.X) > 1e-9 || math.Abs(uv.Y-tt.expected.Y) > 1e-9 {
			t.Errorf("sphereUV(%v): expected %v, got %v", tt.point, tt.expected, uv)
		}
	}
}

func TestSphereUV_PoleRounding(t *testing.T) {
	// Normals computed as (point-center)/radius can overshoot the poles by an ulp
	if uv := sphereUV(core.NewVec3(0, 1+1e-15, 0)); uv.Y != 1 {
		t.Errorf("Expected v=1 just past the north pole, got %v", uv)
	}
	if uv := sphereUV(core.NewVec3(0, -1-1e-15, 0)); uv.Y != 0 {
		t.Errorf("Expected v=0 just past the south pole, got %v", uv)
	}
}

func TestSphere_Hit_NearPolesHasFiniteUV(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0.3, -1.7, 2.1), 0.7, nil)
	sampler := core.NewSeededSampler(11)

	for i := 0; i < 20000; i++ {
		// Aim straight down and up at points within a hair of each pole
		offset := core.NewVec3(core.RandomRange(sampler, -1e-7, 1e-7), 0, core.RandomRange(sampler, -1e-7, 1e-7))
		for _, dir := range []float64{-1, 1} {
			origin := sphere.Center.Add(offset).Add(core.NewVec3(0, -dir*5, 0))
			ray := core.NewRay(origin, core.NewVec3(0, dir, 0))
			hit, ok := sphere.Hit(ray, 0.001, math.Inf(1), sampler)
			if !ok {
				t.Fatalf("Expected ray %v to hit the sphere", ray)
			}
			if math.IsNaN(hit.UV.X) || math.IsNaN(hit.UV.Y) {
				t.Fatalf("NaN UV %v at point %v", hit.UV, hit.Point)
			}
		}
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, DummyMaterial{})
	box := sphere.BoundingBox(0, 1)

	if !box.Min.Equals(core.NewVec3(0.5, 1.5, 2.5)) || !box.Max.Equals(core.NewVec3(1.5, 2.5, 3.5)) {
		t.Errorf("Unexpected sphere box %v", box)
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), 0, 1, 0.5, DummyMaterial{})

	// At time 1 the sphere has moved to x=2
	late := core.NewRayAtTime(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1), 1.0)
	hit, isHit := sphere.Hit(late, 0.001, math.Inf(1), nil)
	if !isHit {
		t.Fatal("Expected hit at time 1, but got miss")
	}
	if math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected t=4.5, got t=%f", hit.T)
	}

	early := core.NewRayAtTime(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1), 0.0)
	if _, isHit := sphere.Hit(early, 0.001, math.Inf(1), nil); isHit {
		t.Error("Expected miss at time 0, the sphere has not moved yet")
	}

	mid := sphere.CenterAt(0.5)
	if !mid.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected center (1,0,0) at time 0.5, got %v", mid)
	}

	box := sphere.BoundingBox(0, 1)
	if !box.Min.Equals(core.NewVec3(-0.5, -0.5, -0.5)) || !box.Max.Equals(core.NewVec3(2.5, 0.5, 0.5)) {
		t.Errorf("Expected box covering both ends of the motion, got %v", box)
	}
}
