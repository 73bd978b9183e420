package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	scene   string
	width   int
	spp     int
	depth   int
	workers int
	seed    int64
	out     string
	texture string
	list    bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.scene, "scene", "random-spheres", "Scene to render (see -list)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels; height follows the camera aspect ratio (0 = scene default)")
	fs.IntVar(&opts.spp, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", -1, "Maximum ray bounce depth (-1 = scene default)")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.Int64Var(&opts.seed, "seed", 42, "Random seed for scene layout and sampling")
	fs.StringVar(&opts.out, "out", "", "Output file; .png writes PNG, anything else PPM (default stdout as PPM)")
	fs.StringVar(&opts.texture, "texture", "", "Image file for texture-mapped scenes")
	fs.BoolVar(&opts.list, "list", false, "List available scenes and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// buildScene looks up the scene and applies command line overrides to its sampling settings
func buildScene(opts options) (*scene.Scene, error) {
	s, err := scene.Lookup(opts.scene, scene.Options{TexturePath: opts.texture, Seed: opts.seed})
	if err != nil {
		return nil, err
	}

	config := &s.SamplingConfig
	if opts.width > 0 {
		config.Width = opts.width
		config.Height = max(int(float64(opts.width)/s.CameraConfig.AspectRatio), 1)
	}
	if opts.spp > 0 {
		config.SamplesPerPixel = opts.spp
	}
	if opts.depth >= 0 {
		config.MaxDepth = opts.depth
	}
	config.NumWorkers = opts.workers
	return s, nil
}

// writeImage encodes img to path, or to stdout as PPM when path is empty
func writeImage(img *renderer.Image, path string, stdout io.Writer) (err error) {
	if path == "" {
		return renderer.WritePPM(stdout, img)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("closing output file: %w", closeErr)
		}
	}()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		return renderer.WritePNG(file, img)
	}
	return renderer.WritePPM(file, img)
}

// run renders the scene selected by args. Progress goes to stderr so PPM can stream to stdout.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.list {
		for _, name := range scene.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	s, err := buildScene(opts)
	if err != nil {
		return err
	}

	logger := &renderer.DefaultLogger{Out: stderr}
	logger.Printf("Using %s scene\n", s.Name)

	raytracer := renderer.NewRaytracer(s.World, s.Camera(), s.Background, s.SamplingConfig, logger)
	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", s.Name, err)
	}
	logger.Printf("Rendered %d samples over %d pixels\n", stats.TotalSamples, stats.TotalPixels)

	if err := writeImage(img, opts.out, stdout); err != nil {
		return err
	}
	if opts.out != "" {
		logger.Printf("Render saved as %s\n", opts.out)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}
