package main

import (
	"bytes"
	"context"
	"image"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/willbeason/mandelbrot/pkg/mandelbrot"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { mandelbrot.SetLogger(nil) })

	var out, errOut bytes.Buffer
	cmd := mainCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRender(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		file       string
		extra      []string
		wantFormat string
	}{
		{"png from extension", "a.png", nil, "png"},
		{"jpeg from extension", "a.jpg", nil, "jpeg"},
		{"explicit format", "a.img", []string{"--format", "bmp"}, "bmp"},
		{"supersampled tiff", "a.tiff", []string{"--supersample", "2", "--scale", "discrete"}, "tiff"},
		{"hue rotation from top-left", "b.png", []string{"--top-left", "-3,1.15", "--hues", "8", "--hue", "140"}, "png"},
		{"discrete hues around center", "c.gif", []string{"--center", "-0.75,0", "--scale", "discrete", "--hues", "6"}, "gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			args := append([]string{"render", "--width", "24", "--height", "16", "--iterations", "40", "-o", path}, tt.extra...)

			out, err := execute(t, args...)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, "wrote "+path) {
				t.Errorf("output %q", out)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			cfg, format, err := image.DecodeConfig(f)
			if err != nil {
				t.Fatal(err)
			}
			if format != tt.wantFormat || cfg.Width != 24 || cfg.Height != 16 {
				t.Errorf("wrote %s %dx%d", format, cfg.Width, cfg.Height)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown extension", []string{"render", "-o", filepath.Join(dir, "a.exr")}},
		{"bad format", []string{"render", "--format", "webp"}},
		{"bad scale", []string{"render", "--scale", "plasma"}},
		{"bad region", []string{"render", "--region", "atlantis", "-o", filepath.Join(dir, "a.png")}},
		{"two framings", []string{"render", "--region", "full", "--center", "0,0", "-o", filepath.Join(dir, "a.png")}},
		{"zero iterations", []string{"render", "--iterations", "0", "-o", filepath.Join(dir, "a.png")}},
		{"stray argument", []string{"render", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("command succeeded")
			}
		})
	}
}

func TestAnimate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.gif")

	out, err := execute(t, "animate", "--width", "20", "--height", "12", "--frames", "4", "--step", "3", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "4 frames") || !strings.Contains(out, "12 iterations") {
		t.Errorf("output %q", out)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 4 {
		t.Errorf("%d frames, want 4", len(anim.Image))
	}

	if _, err := execute(t, "animate", "--frames", "0", "-o", path); err == nil {
		t.Error("--frames 0 accepted")
	}
}

func TestRegions(t *testing.T) {
	out, err := execute(t, "regions")
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"full", "seahorse-valley", "elephant-valley"} {
		if !strings.Contains(out, name) {
			t.Errorf("regions output lacks %s:\n%s", name, out)
		}
	}
}
