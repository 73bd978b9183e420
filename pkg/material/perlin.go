package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin generates gradient noise from random unit vectors and per-axis permutation tables.
// Tables are filled once at construction; Noise and Turbulence are pure functions of the point.
type Perlin struct {
	gradients [perlinPointCount]core.Vec3
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin builds a noise generator from the given sampler
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = core.RandomVec3(sampler, -1, 1).Normalize()
	}
	p.permX = perlinPermutation(sampler)
	p.permY = perlinPermutation(sampler)
	p.permZ = perlinPermutation(sampler)
	return p
}

// perlinPermutation returns a Fisher-Yates shuffle of 0..255
func perlinPermutation(sampler core.Sampler) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		target := core.RandomIntn(sampler, i+1)
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

// Noise returns smoothed gradient noise in roughly [-1, 1] at point p
func (p *Perlin) Noise(point core.Vec3) float64 {
	const mask = perlinPointCount - 1

	fx := math.Floor(point.X)
	fy := math.Floor(point.Y)
	fz := math.Floor(point.Z)

	u := point.X - fx
	v := point.Y - fy
	w := point.Z - fz

	i := int(fx)
	j := int(fy)
	k := int(fz)

	// Gather the gradients at the 8 corners of the lattice cell
	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				index := p.permX[(i+di)&mask] ^ p.permY[(j+dj)&mask] ^ p.permZ[(k+dk)&mask]
				c[di][dj][dk] = p.gradients[index]
			}
		}
	}

	return perlinInterpolate(&c, u, v, w)
}

// Turbulence sums depth octaves of noise, halving amplitude and doubling frequency each time
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// perlinInterpolate trilinearly blends the corner gradients dotted with their offset vectors
func perlinInterpolate(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	// Hermite smoothing removes grid artifacts
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		fi := float64(i)
		for j := 0; j < 2; j++ {
			fj := float64(j)
			for k := 0; k < 2; k++ {
				fk := float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}
