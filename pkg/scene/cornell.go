package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const cornellSize = 555.0

// cornellWalls returns the five walls of the box plus a ceiling light spanning [x0,x1]x[z0,z1]
func cornellWalls(light material.Material, x0, x1, z0, z1 float64) []geometry.Shape {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []geometry.Shape{
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green), // left
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),             // right
		geometry.NewXZRect(x0, x1, z0, z1, cornellSize-1, light),
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),           // floor
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white), // ceiling
		geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white), // back
	}
}

// cornellBlocks returns the tall and short blocks, rotated and moved into place.
// The tall block is tipped about all three axes.
func cornellBlocks(tallMat, shortMat material.Material) (tall, short geometry.Shape) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), tallMat)
	tall = geometry.NewRotateZ(geometry.NewRotateX(geometry.NewRotateY(tall, 35), -25), 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), shortMat)
	short = geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65))
	return tall, short
}

func cornellCamera() renderer.CameraConfig {
	return lookAtCamera(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 40, 1.0)
}

// NewCornellScene creates the classic Cornell box with two rotated blocks
func NewCornellScene(opts Options) (*Scene, error) {
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	shapes := cornellWalls(light, 213, 343, 113, 332)
	tall, short := cornellBlocks(white, white)
	shapes = append(shapes, tall, short)

	sampler := core.NewSeededSampler(opts.Seed)
	return newScene("cornell", shapes, cornellCamera(), core.Vec3{}, samplingConfig(600, 600, 200, opts.Seed), sampler), nil
}

// NewCornellSmokeScene fills the Cornell blocks with dark and light smoke under a larger light
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	shapes := cornellWalls(light, 113, 443, 127, 432)
	tall, short := cornellBlocks(white, white)
	shapes = append(shapes,
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	sampler := core.NewSeededSampler(opts.Seed)
	return newScene("cornell-smoke", shapes, cornellCamera(), core.Vec3{}, samplingConfig(600, 600, 200, opts.Seed), sampler), nil
}
