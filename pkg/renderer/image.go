package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Image holds averaged linear colors in row-major order, top row first
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

// At returns the linear color at column x of row y, counted from the top
func (img *Image) At(x, y int) core.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// Set stores the linear color at column x of row y, counted from the top
func (img *Image) Set(x, y int, c core.Vec3) {
	img.Pixels[y*img.Width+x] = c
}

// toByte maps a gamma-corrected channel in [0, 1) onto 0..255.
// NaN from a degenerate sample, or from gamma on a negative value, maps to 0.
func toByte(gamma float64) uint8 {
	if math.IsNaN(gamma) || gamma < 0 {
		return 0
	}
	return uint8(256 * math.Min(gamma, 0.999))
}

// vec3ToColor converts a linear color to square-root gamma-corrected RGBA
func vec3ToColor(c core.Vec3) color.RGBA {
	g := c.GammaCorrect(2)
	return color.RGBA{R: toByte(g.X), G: toByte(g.Y), B: toByte(g.Z), A: 255}
}

// WritePPM writes the image as a plain-text P3 PPM: a "P3", "width height", "255" header,
// then one "R G B" line per pixel, top row first
func WritePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	for _, pixel := range img.Pixels {
		c := vec3ToColor(pixel)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
			return fmt.Errorf("failed to write PPM pixel: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return nil
}

// ToRGBA converts the image to gamma-corrected 8-bit RGBA
func ToRGBA(img *Image) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			rgba.SetRGBA(x, y, vec3ToColor(img.At(x, y)))
		}
	}
	return rgba
}

// WritePNG encodes the image as PNG
func WritePNG(w io.Writer, img *Image) error {
	if err := png.Encode(w, ToRGBA(img)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
