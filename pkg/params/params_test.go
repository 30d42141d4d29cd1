package params

import (
	"errors"
	"math"
	"net/url"
	"slices"
	"testing"

	"github.com/spf13/pflag"

	"github.com/willbeason/mandelbrot/pkg/colorscale"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/pixel"
	"github.com/willbeason/mandelbrot/pkg/viewport"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := Default().Config()
	if err != nil {
		t.Fatal(err)
	}

	vp := cfg.Viewport()
	if vp.Width() != DefaultWidth || vp.Height() != DefaultHeight {
		t.Errorf("size = %dx%d", vp.Width(), vp.Height())
	}
	if vp.RealMin() != -2 || vp.RealMax() != 1 || vp.ImagMin() != -1.5 || vp.ImagMax() != 1.5 {
		t.Errorf("bounds = %v", vp)
	}
	if _, ok := cfg.Scale().(*colorscale.Continuous); !ok {
		t.Errorf("scale = %T, want *Continuous", cfg.Scale())
	}
}

func TestAddFlags(t *testing.T) {
	p := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	p.AddFlags(fs)

	err := fs.Parse([]string{
		"--width", "64", "--height=48",
		"--region", "seahorse-valley",
		"--iterations", "250",
		"--scale", "Discrete",
		"--palette", "#ff0000,00ff00",
		"--julia", "-0.8,0.156",
		"--supersample", "2",
	})
	if err != nil {
		t.Fatal(err)
	}

	if p.Width != 64 || p.Height != 48 || p.Iterations != 250 || p.Supersample != 2 {
		t.Errorf("parsed %+v", p)
	}
	if p.Scale != colorscale.NameDiscrete {
		t.Errorf("scale = %q", p.Scale)
	}

	cfg, err := p.Config()
	if err != nil {
		t.Fatal(err)
	}
	if vp := cfg.Viewport(); vp.Width() != 128 || vp.Height() != 96 {
		t.Errorf("supersampled viewport = %dx%d, want 128x96", vp.Width(), vp.Height())
	}
	if vp := cfg.Viewport(); vp.RealMin() != viewport.SeahorseValley.Xmin {
		t.Errorf("region not applied: %v", vp)
	}
	if got := cfg.Transform(); got == nil {
		t.Error("no transform")
	}

	if err := fs.Parse([]string{"--scale", "plasma"}); err == nil {
		t.Error("--scale plasma accepted")
	}
}

func TestFromQuery(t *testing.T) {
	q := url.Values{
		"width":      {"10"},
		"height":     {"5"},
		"real-min":   {"-1"},
		"real-max":   {"0"},
		"imag-min":   {"-0.5"},
		"imag-max":   {"0.5"},
		"iterations": {"20"},
		"scale":      {"simple"},
		"interior":   {"#ffffff"},
	}

	p, err := FromQuery(q)
	if err != nil {
		t.Fatal(err)
	}
	if p.Width != 10 || p.Height != 5 || p.RealMin != -1 || p.ImagMax != 0.5 || p.Iterations != 20 {
		t.Errorf("parsed %+v", p)
	}

	scale, err := p.ColorScale()
	if err != nil {
		t.Fatal(err)
	}
	if got := scale.Color(escape.Bounded(), 20); got != pixel.White {
		t.Errorf("interior = %v, want white", got)
	}
}

func TestFromQueryInvalid(t *testing.T) {
	tests := []struct {
		name string
		q    url.Values
	}{
		{"unknown key", url.Values{"zoom": {"2"}}},
		{"bad int", url.Values{"width": {"wide"}}},
		{"negative iterations", url.Values{"iterations": {"-1"}}},
		{"bad scale", url.Values{"scale": {"plasma"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromQuery(tt.q); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("FromQuery() error = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestConfigInvalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
	}{
		{"zero width", func(p *Params) { p.Width = 0 }},
		{"inverted bounds", func(p *Params) { p.RealMin, p.RealMax = 1, -2 }},
		{"unknown region", func(p *Params) { p.Region = "atlantis" }},
		{"zero iterations", func(p *Params) { p.Iterations = 0 }},
		{"zero radius", func(p *Params) { p.EscapeRadius = 0 }},
		{"bad interior", func(p *Params) { p.Interior = "#zzzzzz" }},
		{"empty gradient", func(p *Params) { p.Gradient = "," }},
		{"bad palette", func(p *Params) { p.Scale = colorscale.NameDiscrete; p.Palette = "red" }},
		{"bad julia", func(p *Params) { p.Julia = "0.3" }},
		{"zero supersample", func(p *Params) { p.Supersample = 0 }},
		{"region and center", func(p *Params) { p.Region = "full"; p.Center = "0,0" }},
		{"top-left and center", func(p *Params) { p.TopLeft = "-3,1.15"; p.Center = "0,0" }},
		{"bad top-left", func(p *Params) { p.TopLeft = "-3" }},
		{"bad center", func(p *Params) { p.Center = "zero,0" }},
		{"negative view width", func(p *Params) { p.TopLeft = "-3,1.15"; p.ViewWidth = -4 }},
		{"zero view height", func(p *Params) { p.Center = "0,0"; p.ViewHeight = 0 }},
		{"negative hues", func(p *Params) { p.Hues = -1 }},
		{"hues and gradient", func(p *Params) { p.Hues = 4; p.Gradient = "#000000,#ffffff" }},
		{"hues and palette", func(p *Params) { p.Scale = colorscale.NameDiscrete; p.Hues = 4; p.Palette = "#ff0000" }},
		{"simple hues", func(p *Params) { p.Scale = colorscale.NameSimple; p.Hues = 4 }},
		{"saturation above one", func(p *Params) { p.Hues = 4; p.Saturation = 2 }},
		{"negative brightness", func(p *Params) { p.Scale = colorscale.NameDiscrete; p.Hues = 4; p.Brightness = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.modify(&p)
			if _, err := p.Config(); err == nil {
				t.Error("Config() succeeded")
			}
		})
	}
}

func TestColorScale(t *testing.T) {
	red := pixel.RGB(1, 0, 0)
	blue := pixel.RGB(0, 0, 1)
	white := pixel.RGB(1, 1, 1)
	hit := escape.Result{Escaped: true, Iterations: 1, Smooth: 1}

	tests := []struct {
		name         string
		p            Params
		wantBounded  pixel.Color
		wantEscaped1 pixel.Color
	}{
		{
			name:         "simple defaults",
			p:            Params{Scale: colorscale.NameSimple},
			wantBounded:  pixel.Red,
			wantEscaped1: pixel.Black,
		},
		{
			name:         "simple colors",
			p:            Params{Scale: colorscale.NameSimple, Interior: "0000ff", Palette: "ffffff"},
			wantBounded:  blue,
			wantEscaped1: white,
		},
		{
			name:         "discrete palette",
			p:            Params{Scale: colorscale.NameDiscrete, Palette: "#ff0000,#0000ff"},
			wantBounded:  pixel.Black,
			wantEscaped1: blue,
		},
		{
			name:         "discrete interior keeps default bands",
			p:            Params{Scale: colorscale.NameDiscrete, Interior: "#ffffff"},
			wantBounded:  white,
			wantEscaped1: colorscale.DefaultDiscrete().Band(1),
		},
		{
			name:         "continuous interior keeps default gradient",
			p:            Params{Scale: colorscale.NameContinuous, Interior: "#ffffff"},
			wantBounded:  white,
			wantEscaped1: colorscale.DefaultContinuous().At(0.1),
		},
		{
			name:         "continuous gradient without interior ends the gradient",
			p:            Params{Scale: colorscale.NameContinuous, Gradient: "#0000ff,#ff0000"},
			wantBounded:  red,
			wantEscaped1: blue.Lerp(red, colorscale.Normalize(hit, 10)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, err := tt.p.ColorScale()
			if err != nil {
				t.Fatal(err)
			}
			if got := scale.Color(escape.Bounded(), 10); got != tt.wantBounded {
				t.Errorf("bounded = %v, want %v", got, tt.wantBounded)
			}
			if got := scale.Color(hit, 10); got != tt.wantEscaped1 {
				t.Errorf("escaped at 1 = %v, want %v", got, tt.wantEscaped1)
			}
		})
	}
}

func TestPixels(t *testing.T) {
	p := Params{Width: 100, Height: 50, Supersample: 3}
	if got := p.Pixels(); got != 45000 {
		t.Errorf("Pixels() = %d, want 45000", got)
	}
}

func TestViewportFraming(t *testing.T) {
	tests := []struct {
		name                               string
		q                                  url.Values
		realMin, realMax, imagMin, imagMax float64
	}{
		{
			name:    "top-left",
			q:       url.Values{"width": {"192"}, "height": {"108"}, "top-left": {"-3,1.15"}},
			realMin: -3, realMax: 1, imagMin: -1.1, imagMax: 1.15,
		},
		{
			name:    "top-left with view width",
			q:       url.Values{"width": {"100"}, "height": {"100"}, "top-left": {"-1,1"}, "view-width": {"0.5"}},
			realMin: -1, realMax: -0.5, imagMin: 0.5, imagMax: 1,
		},
		{
			name:    "center",
			q:       url.Values{"width": {"400"}, "height": {"300"}, "center": {"-0.75,0"}},
			realMin: -2.75, realMax: 1.25, imagMin: -1.5, imagMax: 1.5,
		},
		{
			name:    "center with view height",
			q:       url.Values{"width": {"20"}, "height": {"10"}, "center": {"-0.5,0.25"}, "view-height": {"1"}},
			realMin: -1.5, realMax: 0.5, imagMin: -0.25, imagMax: 0.75,
		},
	}

	const epsilon = 1e-12
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FromQuery(tt.q)
			if err != nil {
				t.Fatal(err)
			}
			vp, err := p.Viewport()
			if err != nil {
				t.Fatal(err)
			}

			got := []float64{vp.RealMin(), vp.RealMax(), vp.ImagMin(), vp.ImagMax()}
			want := []float64{tt.realMin, tt.realMax, tt.imagMin, tt.imagMax}
			for i := range got {
				if math.Abs(got[i]-want[i]) > epsilon {
					t.Errorf("bounds = %v, want %v", got, want)
					break
				}
			}

			stepRe, stepIm := vp.Step()
			if math.Abs(stepRe-stepIm) > epsilon {
				t.Errorf("pixels are %g×%g, want square", stepRe, stepIm)
			}
		})
	}
}

func TestHueScales(t *testing.T) {
	t.Run("continuous", func(t *testing.T) {
		p := Default()
		p.Hues = 5

		scale, err := p.ColorScale()
		if err != nil {
			t.Fatal(err)
		}
		c, ok := scale.(*colorscale.Continuous)
		if !ok {
			t.Fatalf("scale = %T, want *Continuous", scale)
		}

		want, err := colorscale.HueGradient(DefaultHue, 1, 1, 5)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(c.Stops(), want) {
			t.Errorf("stops = %v, want %v", c.Stops(), want)
		}
		if got := c.Color(escape.Bounded(), 10); got != pixel.Black {
			t.Errorf("bounded = %v, want black", got)
		}
	})

	t.Run("discrete", func(t *testing.T) {
		p := Params{Scale: colorscale.NameDiscrete, Hues: 6, Saturation: 1, Brightness: 1}

		scale, err := p.ColorScale()
		if err != nil {
			t.Fatal(err)
		}
		d, ok := scale.(*colorscale.Discrete)
		if !ok {
			t.Fatalf("scale = %T, want *Discrete", scale)
		}

		want, err := colorscale.Rainbow(0, 1, 1, 6)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(d.Bands(), want.Bands()) {
			t.Errorf("bands = %v, want %v", d.Bands(), want.Bands())
		}
		if got := d.Color(escape.Bounded(), 10); got != pixel.Black {
			t.Errorf("bounded = %v, want black", got)
		}
	})

	t.Run("interior", func(t *testing.T) {
		for _, kind := range []ScaleKind{colorscale.NameDiscrete, colorscale.NameContinuous} {
			p := Default()
			p.Scale = kind
			p.Hues = 3
			p.Interior = "#ffffff"

			scale, err := p.ColorScale()
			if err != nil {
				t.Fatal(err)
			}
			if got := scale.Color(escape.Bounded(), 10); got != pixel.White {
				t.Errorf("%s: bounded = %v, want white", kind, got)
			}
		}
	})
}

func TestFromQueryHues(t *testing.T) {
	p, err := FromQuery(url.Values{
		"scale":      {"discrete"},
		"hues":       {"4"},
		"hue":        {"200"},
		"saturation": {"0.5"},
		"brightness": {"0.75"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.Hues != 4 || p.Hue != 200 || p.Saturation != 0.5 || p.Brightness != 0.75 {
		t.Errorf("parsed %+v", p)
	}
	if _, err := p.Config(); err != nil {
		t.Error(err)
	}
}
