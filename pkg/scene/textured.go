package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrNoTexture is returned by scenes that need an image texture when none was given
var ErrNoTexture = errors.New("scene requires a texture image")

// NewTwoPerlinSpheresScene creates a marbled sphere resting on a marbled ground
func NewTwoPerlinSpheresScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(sampler), 4))

	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	}

	camera := lookAtCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20, 16.0/9.0)
	return newScene("two-perlin-spheres", shapes, camera, skyBlue, samplingConfig(400, 225, 100, opts.Seed), sampler), nil
}

// NewEarthScene creates a single globe wrapped in the texture at opts.TexturePath
func NewEarthScene(opts Options) (*Scene, error) {
	if opts.TexturePath == "" {
		return nil, ErrNoTexture
	}
	texture, err := material.NewImageTextureFromFile(opts.TexturePath)
	if err != nil {
		return nil, fmt.Errorf("loading earth texture: %w", err)
	}

	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)),
	}

	camera := lookAtCamera(core.NewVec3(0, 0, 12), core.NewVec3(0, 0, 0), 20, 16.0/9.0)
	sampler := core.NewSeededSampler(opts.Seed)
	return newScene("earth", shapes, camera, skyBlue, samplingConfig(400, 225, 100, opts.Seed), sampler), nil
}

// NewSimpleLightScene lights a marbled sphere with a rectangular emitter in the dark
func NewSimpleLightScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(sampler), 4))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewXYRect(3, 5, 1, 3, -1, light),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, marble),
	}

	camera := lookAtCamera(core.NewVec3(26, 3, 6), core.NewVec3(0, 2, 0), 20, 16.0/9.0)
	return newScene("simple-light", shapes, camera, core.Vec3{}, samplingConfig(400, 225, 400, opts.Seed), sampler), nil
}
