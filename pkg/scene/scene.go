package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          geometry.Shape // BVH over the top-level shapes
	CameraConfig   renderer.CameraConfig
	Background     core.Vec3 // Radiance returned by rays that escape the world
	SamplingConfig renderer.SamplingConfig
}

// Options parameterize scene construction
type Options struct {
	TexturePath string // Image used by texture-mapped scenes
	Seed        int64  // Seed for random scene layout and BVH axis choice
}

// Builder constructs a named scene
type Builder func(opts Options) (*Scene, error)

var builders = map[string]Builder{
	"random-spheres":     NewRandomSpheresScene,
	"two-perlin-spheres": NewTwoPerlinSpheresScene,
	"earth":              NewEarthScene,
	"simple-light":       NewSimpleLightScene,
	"cornell":            NewCornellScene,
	"cornell-smoke":      NewCornellSmokeScene,
	"final":              NewFinalScene,
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the scene registered under name
func Lookup(name string, opts Options) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	s, err := builder(opts)
	if err != nil {
		return nil, fmt.Errorf("building scene %q: %w", name, err)
	}
	return s, nil
}

// Camera creates the camera for this scene
func (s *Scene) Camera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// newScene wraps the top-level shapes in a BVH built over the camera's shutter interval
func newScene(name string, shapes []geometry.Shape, camera renderer.CameraConfig, background core.Vec3, sampling renderer.SamplingConfig, sampler core.Sampler) *Scene {
	return &Scene{
		Name:           name,
		World:          geometry.NewBVH(shapes, camera.Time0, camera.Time1, sampler),
		CameraConfig:   camera,
		Background:     background,
		SamplingConfig: sampling,
	}
}

// samplingConfig returns the default sampling settings at the given resolution
func samplingConfig(width, height, samples int, seed int64) renderer.SamplingConfig {
	config := renderer.DefaultSamplingConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = samples
	config.Seed = seed
	return config
}

// lookAtCamera returns a pinhole camera with the shutter open over [0,1)
func lookAtCamera(from, at core.Vec3, vfov, aspect float64) renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.LookFrom = from
	config.LookAt = at
	config.VFov = vfov
	config.AspectRatio = aspect
	config.Aperture = 0
	config.FocusDistance = 10
	return config
}

var skyBlue = core.NewVec3(0.7, 0.8, 1.0)
