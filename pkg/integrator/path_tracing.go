package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// shadowAcneEpsilon keeps scattered rays from re-hitting the surface they leave
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with emission and a constant background
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// RayColor computes the color for a single ray. The depth bound is the only termination rule.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, background core.Vec3, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, shadowAcneEpsilon, math.Inf(1), sampler)
	if !isHit {
		return background
	}

	// Start with emitted light from the hit material
	colorEmitted := hit.Material.Emitted(hit.UV, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	return colorEmitted.Add(pt.scatteredColor(scatter, background, world, depth, sampler))
}

// scatteredColor follows the scattered ray and tints what it brings back by the attenuation
func (pt *PathTracingIntegrator) scatteredColor(scatter material.ScatterResult, background core.Vec3, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	incoming := pt.RayColor(scatter.Scattered, background, world, depth-1, sampler)
	return scatter.Attenuation.MultiplyVec(incoming)
}
