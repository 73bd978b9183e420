package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewRandomSpheresScene creates a checkered ground covered in small random spheres around
// three large ones. Metal and glass spheres rise while the shutter is open.
func NewRandomSpheresScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)

	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	}

	for a := -11; a <= 11; a++ {
		for b := -11; b <= 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			switch {
			case chooseMat < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				shapes = append(shapes, geometry.NewSphere(center, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.4, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				center1 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				shapes = append(shapes, geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				center1 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				shapes = append(shapes, geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	shapes = append(shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	camera := lookAtCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20, 16.0/9.0)
	camera.Aperture = 0.1

	return newScene("random-spheres", shapes, camera, skyBlue, samplingConfig(400, 225, 100, opts.Seed), sampler), nil
}
