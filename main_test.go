package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/scene"
)

func TestRun_List(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-list"}, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	expected := strings.Join(scene.Names(), "\n") + "\n"
	if stdout.String() != expected {
		t.Errorf("Expected scene list %q, got %q", expected, stdout.String())
	}
}

func TestRun_PPMToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-scene", "two-perlin-spheres", "-width", "16", "-spp", "2", "-depth", "3", "-workers", "2"}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if lines[0] != "P3" || lines[1] != "16 9" || lines[2] != "255" {
		t.Fatalf("Unexpected PPM header %q", lines[:3])
	}
	if len(lines) != 3+16*9 {
		t.Errorf("Expected %d pixel lines, got %d", 16*9, len(lines)-3)
	}
	if !strings.Contains(stderr.String(), "Rows remaining: 0") {
		t.Errorf("Expected progress on stderr, got %q", stderr.String())
	}
}

func TestRun_PNGFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cornell.png")
	var stdout, stderr bytes.Buffer
	args := []string{"-scene", "cornell", "-width", "8", "-spp", "1", "-depth", "2", "-out", out}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected nothing on stdout, got %d bytes", stdout.Len())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if bounds := img.Bounds(); bounds.Dx() != 8 || bounds.Dy() != 8 {
		t.Errorf("Expected 8x8 image, got %v", bounds)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"-scene", "nonexistent"}},
		{"earth without texture", []string{"-scene", "earth"}},
		{"bad flag", []string{"-frobnicate"}},
		{"unwritable output", []string{"-scene", "cornell", "-width", "2", "-spp", "1", "-out", filepath.Join(t.TempDir(), "missing", "out.ppm")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(context.Background(), tt.args, &stdout, &stderr); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{"-scene", "cornell", "-width", "4", "-spp", "1"}, &stdout, &stderr)
	if err == nil {
		t.Fatal("Expected error from cancelled render")
	}
	if stdout.Len() != 0 {
		t.Error("Expected no image output after cancellation")
	}
}

func TestBuildScene_Overrides(t *testing.T) {
	s, err := buildScene(options{scene: "random-spheres", width: 160, spp: 7, depth: 0, workers: 3, seed: 5})
	if err != nil {
		t.Fatalf("buildScene failed: %v", err)
	}

	config := s.SamplingConfig
	if config.Width != 160 || config.Height != 90 {
		t.Errorf("Expected 160x90, got %dx%d", config.Width, config.Height)
	}
	if config.SamplesPerPixel != 7 || config.MaxDepth != 0 || config.NumWorkers != 3 || config.Seed != 5 {
		t.Errorf("Unexpected sampling config %+v", config)
	}

	s, err = buildScene(options{scene: "cornell", depth: -1})
	if err != nil {
		t.Fatalf("buildScene failed: %v", err)
	}
	if s.SamplingConfig.Width != 600 || s.SamplingConfig.MaxDepth != 50 {
		t.Errorf("Expected scene defaults, got %+v", s.SamplingConfig)
	}
}
