package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Workers        int           // Number of workers used
	Elapsed        time.Duration // Wall-clock render time
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean linear luminance over all pixels of an image
func CalculateAverageLuminance(img *Image) float64 {
	if len(img.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, pixel := range img.Pixels {
		total += pixel.Luminance()
	}
	return total / float64(len(img.Pixels))
}
