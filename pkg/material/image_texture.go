package material

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], colors in [0, 1]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureFromFile decodes an image file into a texture.
// A missing or undecodable file is an error; there is no placeholder fallback.
func NewImageTextureFromFile(filename string) (*ImageTexture, error) {
	data, err := loaders.LoadImage(filename)
	if err != nil {
		return nil, fmt.Errorf("image texture %s: %w", filename, err)
	}
	if data.Width == 0 || data.Height == 0 {
		return nil, fmt.Errorf("image texture %s: empty image", filename)
	}
	return NewImageTexture(data.Width, data.Height, data.Pixels), nil
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	// Clamp UV coordinates to [0, 1]; NaN from degenerate geometry reads as 0
	u := clampUnit(uv.X)
	v := clampUnit(uv.Y)

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	// u or v of exactly 1 would land one past the last pixel
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))

	return t.Pixels[y*t.Width+x]
}

func clampUnit(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return max(0.0, min(1.0, f))
}
