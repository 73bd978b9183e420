package loaders

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first, channels in [0, 1]
}

// LoadImage loads an image file and converts it to a Vec3 color array.
// The format is detected from the file header.
func LoadImage(filename string) (*ImageData, error) {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	return imageToData(img), nil
}

// imageToData converts a decoded image to 8-bit RGB scaled into [0, 1]
func imageToData(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	const colorScale = 1.0 / 255.0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Non-premultiplied 8-bit channels, alpha is dropped
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			pixels[y*width+x] = core.NewVec3(
				float64(c.R)*colorScale,
				float64(c.G)*colorScale,
				float64(c.B)*colorScale,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}
