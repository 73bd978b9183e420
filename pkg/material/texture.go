package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture is a 3D checkerboard that alternates between two sub-textures in space
type CheckerTexture struct {
	Scale float64 // Checks per unit length
	Even  Texture
	Odd   Texture
}

// NewCheckerTexture creates a spatial checkerboard over two arbitrary textures
func NewCheckerTexture(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a spatial checkerboard over two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks the even or odd texture from the parity of the floored scaled coordinates
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	// Floor rather than truncate so cells on either side of zero differ
	x := int(math.Floor(c.Scale * point.X))
	y := int(math.Floor(c.Scale * point.Y))
	z := int(math.Floor(c.Scale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}

// NoiseTexture is a marble-like procedural texture driven by Perlin turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// turbulenceDepth is the number of octaves summed for marble banding
const turbulenceDepth = 7

// NewNoiseTexture creates a marble texture with the given frequency scale
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale}
}

// Evaluate shifts the phase of a sine along z by turbulence, giving undulating stripes in [0,1]
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	s := point.Multiply(n.Scale)
	intensity := 0.5 * (1 + math.Sin(s.Z+10*n.Noise.Turbulence(s, turbulenceDepth)))
	return core.NewVec3(1, 1, 1).Multiply(intensity)
}
