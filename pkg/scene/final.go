package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewFinalScene combines every primitive and material: a field of boxes, motion blur, glass,
// metal, subsurface fog, an image-mapped globe, marble and an instanced cluster of spheres.
// Without a texture path the globe falls back to a plain blue albedo.
func NewFinalScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	boxes := make([]geometry.Shape, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes = append(boxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}

	shapes := []geometry.Shape{
		geometry.NewBVH(boxes, 0, 1, sampler),
		geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7))),
	}

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	shapes = append(shapes,
		geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Glass shell around blue fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	shapes = append(shapes, boundary, geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin haze over the whole scene
	haze := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	shapes = append(shapes, geometry.NewConstantMedium(haze, 0.0001, core.NewVec3(1, 1, 1)))

	var globe material.Texture = material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.8))
	if opts.TexturePath != "" {
		texture, err := material.NewImageTextureFromFile(opts.TexturePath)
		if err != nil {
			return nil, fmt.Errorf("loading globe texture: %w", err)
		}
		globe = texture
	}
	shapes = append(shapes,
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(globe)),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
			material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(sampler), 0.1))),
	)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const clusterSize = 1000
	cluster := make([]geometry.Shape, 0, clusterSize)
	for i := 0; i < clusterSize; i++ {
		cluster = append(cluster, geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}
	shapes = append(shapes, geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVH(cluster, 0, 1, sampler), 15),
		core.NewVec3(-100, 270, 395),
	))

	camera := lookAtCamera(core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0), 40, 1.0)
	return newScene("final", shapes, camera, core.Vec3{}, samplingConfig(800, 800, 10000, opts.Seed), sampler), nil
}
