package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed; each row derives its own stream from it
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate reports configuration values that cannot produce an image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// Raytracer renders a world through a camera. The world, camera and integrator are
// shared read-only by all workers.
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	background core.Vec3
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world geometry.Shape, camera *Camera, background core.Vec3, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		background: background,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(),
		logger:     logger,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// rowSampler returns the random stream for one image row. Seeding per row rather than
// per worker makes the image independent of scheduling.
func (rt *Raytracer) rowSampler(row int) core.Sampler {
	return core.NewSeededSampler(rt.config.Seed*1000003 + int64(row))
}

// RenderRow renders image row y (counted from the top) into pixels
func (rt *Raytracer) RenderRow(y int, pixels []core.Vec3) {
	sampler := rt.rowSampler(y)

	// Rows run bottom to top in viewport space
	j := rt.config.Height - 1 - y
	sDenominator := float64(max(rt.config.Width-1, 1))
	tDenominator := float64(max(rt.config.Height-1, 1))

	for i := 0; i < rt.config.Width; i++ {
		var stats PixelStats
		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			jitter := sampler.Get2D()
			s := (float64(i) + jitter.X) / sDenominator
			t := (float64(j) + jitter.Y) / tDenominator

			ray := rt.camera.GetRay(s, t, sampler)
			stats.AddSample(rt.integrator.RayColor(ray, rt.background, rt.world, rt.config.MaxDepth, sampler))
		}
		pixels[i] = stats.GetColor()
	}
}

// Render renders the full image in parallel, one task per row.
// It stops early and returns the context's error if ctx is cancelled.
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel with %d workers\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, numWorkers)

	start := time.Now()
	img := NewImage(rt.config.Width, rt.config.Height)

	pool := NewWorkerPool(ctx, rt, rt.config.Height, numWorkers)
	pool.Start()
	for y := 0; y < rt.config.Height; y++ {
		pool.SubmitTask(RowTask{Row: y, Pixels: img.Pixels[y*img.Width : (y+1)*img.Width]})
	}
	pool.Close()

	var renderErr error
	remaining := rt.config.Height
	for result := range pool.Results() {
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
				rt.logger.Printf("Rendering cancelled with %d rows remaining\n", remaining)
			}
			continue
		}
		remaining--
		if renderErr == nil {
			rt.logger.Printf("Rows remaining: %d\n", remaining)
		}
	}
	if renderErr != nil {
		return nil, RenderStats{}, renderErr
	}

	pixels := rt.config.Width * rt.config.Height
	stats := RenderStats{
		TotalPixels:    pixels,
		TotalSamples:   pixels * rt.config.SamplesPerPixel,
		AverageSamples: float64(rt.config.SamplesPerPixel),
		Workers:        pool.GetNumWorkers(),
		Elapsed:        time.Since(start),
	}
	rt.logger.Printf("Render completed in %v\n", stats.Elapsed)

	return img, stats, nil
}
