// Package params describes a render as plain named values, shared by the
// command line and the HTTP query string.
package params

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/willbeason/mandelbrot/pkg/colorscale"
	"github.com/willbeason/mandelbrot/pkg/complexnum"
	"github.com/willbeason/mandelbrot/pkg/mandelbrot"
	"github.com/willbeason/mandelbrot/pkg/pixel"
	"github.com/willbeason/mandelbrot/pkg/transforms"
	"github.com/willbeason/mandelbrot/pkg/viewport"
)

// ErrInvalidParams wraps every parse and validation failure.
var ErrInvalidParams = errors.New("params: invalid parameters")

const (
	DefaultWidth  = 800
	DefaultHeight = 600

	// DefaultViewWidth and DefaultViewHeight are the plane sizes used with
	// TopLeft and Center.
	DefaultViewWidth  = 4.0
	DefaultViewHeight = 3.0

	DefaultHue = 140.0
)

// Params are the user facing knobs of a render.
type Params struct {
	Width, Height int

	// Region, when set, names a viewport.Region and overrides the bounds.
	Region           string
	RealMin, RealMax float64
	ImagMin, ImagMax float64

	// TopLeft "re,im" frames ViewWidth of the plane from that corner, and
	// Center "re,im" frames ViewHeight around that point. Either one
	// overrides the bounds and keeps pixels square. At most one of Region,
	// TopLeft and Center may be set.
	TopLeft    string
	ViewWidth  float64
	Center     string
	ViewHeight float64

	Iterations   uint32
	EscapeRadius float64

	Scale ScaleKind
	// Palette and Gradient are comma separated hex colours for the discrete
	// and continuous scales. For the simple scale the first palette colour
	// paints escaped points.
	Palette  string
	Gradient string
	Interior string

	// Hues, when positive, replaces the palette or gradient with Hues colours
	// stepped around the hue circle from Hue.
	Hues       int
	Hue        float64
	Saturation float64
	Brightness float64

	// Julia is a Julia constant "re,im"; empty renders the Mandelbrot set.
	Julia string

	Workers     int
	Supersample int
}

// Default shows the whole set with the continuous scale.
func Default() Params {
	return Params{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		RealMin:      viewport.Full.Xmin,
		RealMax:      viewport.Full.Xmax,
		ImagMin:      viewport.Full.Ymin,
		ImagMax:      viewport.Full.Ymax,
		ViewWidth:    DefaultViewWidth,
		ViewHeight:   DefaultViewHeight,
		Iterations:   mandelbrot.DefaultMaxIterations,
		EscapeRadius: mandelbrot.DefaultEscapeRadius,
		Scale:        colorscale.NameContinuous,
		Hue:          DefaultHue,
		Saturation:   1,
		Brightness:   1,
		Supersample:  1,
	}
}

// AddFlags registers one flag per field, with p's current values as defaults.
func (p *Params) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&p.Width, "width", p.Width, "image width in pixels")
	fs.IntVar(&p.Height, "height", p.Height, "image height in pixels")

	fs.StringVar(&p.Region, "region", p.Region,
		"named region, overrides the bounds: "+strings.Join(viewport.RegionNames(), ", "))
	fs.Float64Var(&p.RealMin, "real-min", p.RealMin, "real part of the left edge")
	fs.Float64Var(&p.RealMax, "real-max", p.RealMax, "real part of the right edge")
	fs.Float64Var(&p.ImagMin, "imag-min", p.ImagMin, "imaginary part of the bottom edge")
	fs.Float64Var(&p.ImagMax, "imag-max", p.ImagMax, "imaginary part of the top edge")
	fs.StringVar(&p.TopLeft, "top-left", p.TopLeft, `frame --view-width of the plane from corner "re,im"`)
	fs.Float64Var(&p.ViewWidth, "view-width", p.ViewWidth, "plane width framed by --top-left")
	fs.StringVar(&p.Center, "center", p.Center, `frame --view-height of the plane around "re,im"`)
	fs.Float64Var(&p.ViewHeight, "view-height", p.ViewHeight, "plane height framed by --center")

	fs.Uint32Var(&p.Iterations, "iterations", p.Iterations, "maximum iterations per point")
	fs.Float64Var(&p.EscapeRadius, "escape-radius", p.EscapeRadius, "radius past which a point has escaped")

	fs.Var(&p.Scale, "scale", "color scale: "+strings.Join(colorscale.Names(), ", "))
	fs.StringVar(&p.Palette, "palette", p.Palette, "comma separated hex colors of the discrete bands")
	fs.StringVar(&p.Gradient, "gradient", p.Gradient, "comma separated hex colors of the continuous gradient")
	fs.StringVar(&p.Interior, "interior", p.Interior, "hex color of points in the set")
	fs.IntVar(&p.Hues, "hues", p.Hues, "use this many colors around the hue circle instead of --palette or --gradient")
	fs.Float64Var(&p.Hue, "hue", p.Hue, "first hue in degrees for --hues")
	fs.Float64Var(&p.Saturation, "saturation", p.Saturation, "saturation in [0, 1] for --hues")
	fs.Float64Var(&p.Brightness, "brightness", p.Brightness, "brightness in [0, 1] for --hues")

	fs.StringVar(&p.Julia, "julia", p.Julia, `render the Julia set of constant "re,im"`)

	fs.IntVar(&p.Workers, "workers", p.Workers, "render goroutines, 0 for one per CPU")
	fs.IntVar(&p.Supersample, "supersample", p.Supersample, "render at this many times the size and downsample")
}

// FromQuery reads parameters named like the flags from a URL query, starting
// from Default. Unknown names are an error.
func FromQuery(q url.Values) (Params, error) {
	p := Default()
	fs := pflag.NewFlagSet("query", pflag.ContinueOnError)
	p.AddFlags(fs)

	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if fs.Lookup(k) == nil {
			return Params{}, fmt.Errorf("%w: unknown parameter %q", ErrInvalidParams, k)
		}
		for _, v := range q[k] {
			if err := fs.Set(k, v); err != nil {
				return Params{}, fmt.Errorf("%w: %s: %w", ErrInvalidParams, k, err)
			}
		}
	}
	return p, nil
}

// Pixels is the number of pixels rendered, including supersampling.
func (p Params) Pixels() int64 {
	ss := int64(p.Supersample)
	return int64(p.Width) * ss * int64(p.Height) * ss
}

// Viewport is the pixel grid to render, Supersample times the output size.
func (p Params) Viewport() (viewport.Viewport[float64], error) {
	if p.Supersample < 1 {
		return viewport.Viewport[float64]{}, fmt.Errorf("%w: supersample %d must be at least 1", ErrInvalidParams, p.Supersample)
	}

	framings := 0
	for _, set := range []bool{p.Region != "", p.TopLeft != "", p.Center != ""} {
		if set {
			framings++
		}
	}
	if framings > 1 {
		return viewport.Viewport[float64]{}, fmt.Errorf("%w: set at most one of region, top-left and center", ErrInvalidParams)
	}

	var (
		vp  viewport.Viewport[float64]
		err error
	)
	switch {
	case p.Region != "":
		r, lookupErr := viewport.LookupRegion(p.Region)
		if lookupErr != nil {
			return viewport.Viewport[float64]{}, fmt.Errorf("%w: %w", ErrInvalidParams, lookupErr)
		}
		vp, err = r.Viewport(p.Width, p.Height)
	case p.TopLeft != "":
		topLeft, parseErr := complexnum.Parse[float64](p.TopLeft)
		if parseErr != nil {
			return viewport.Viewport[float64]{}, fmt.Errorf("%w: top-left: %w", ErrInvalidParams, parseErr)
		}
		// New rejects a zero Width before the infinite span matters.
		viewHeight := p.ViewWidth * float64(p.Height) / float64(p.Width)
		vp, err = viewport.FromTopLeft(topLeft, p.ViewWidth, viewHeight, p.Width, p.Height)
	case p.Center != "":
		center, parseErr := complexnum.Parse[float64](p.Center)
		if parseErr != nil {
			return viewport.Viewport[float64]{}, fmt.Errorf("%w: center: %w", ErrInvalidParams, parseErr)
		}
		vp, err = viewport.FromCenter(center, p.ViewHeight, p.Width, p.Height)
	default:
		vp, err = viewport.New(p.RealMin, p.RealMax, p.ImagMin, p.ImagMax, p.Width, p.Height)
	}
	if err != nil {
		return viewport.Viewport[float64]{}, err
	}
	return vp.Scaled(p.Supersample)
}

// ColorScale builds the scale named by Scale with the configured colours.
// Unset colours keep the scale's defaults.
func (p Params) ColorScale() (colorscale.Scale, error) {
	interior, hasInterior, err := optionalColor(p.Interior)
	if err != nil {
		return nil, err
	}
	if p.Hues < 0 {
		return nil, fmt.Errorf("%w: hues %d must not be negative", ErrInvalidParams, p.Hues)
	}

	switch p.Scale {
	case colorscale.NameSimple:
		if p.Hues > 0 {
			return nil, fmt.Errorf("%w: the simple scale has no hues", ErrInvalidParams)
		}
		s := colorscale.DefaultSimple()
		if hasInterior {
			s.Bounded = interior
		}
		if p.Palette != "" {
			colors, err := colorList(p.Palette)
			if err != nil {
				return nil, err
			}
			s.Escaped = colors[0]
		}
		return s, nil

	case colorscale.NameDiscrete:
		if p.Hues > 0 {
			if p.Palette != "" {
				return nil, fmt.Errorf("%w: set palette or hues, not both", ErrInvalidParams)
			}
			rainbow, err := colorscale.Rainbow(p.Hue, p.Saturation, p.Brightness, p.Hues)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
			}
			if !hasInterior {
				return rainbow, nil
			}
			return colorscale.NewDiscrete(interior, rainbow.Bands()...)
		}

		def := colorscale.DefaultDiscrete()
		if p.Palette == "" && !hasInterior {
			return def, nil
		}
		bands := def.Bands()
		if p.Palette != "" {
			if bands, err = colorList(p.Palette); err != nil {
				return nil, err
			}
		}
		if !hasInterior {
			interior = pixel.Black
		}
		return colorscale.NewDiscrete(interior, bands...)

	case colorscale.NameContinuous, "":
		if p.Hues > 0 {
			if p.Gradient != "" {
				return nil, fmt.Errorf("%w: set gradient or hues, not both", ErrInvalidParams)
			}
			stops, err := colorscale.HueGradient(p.Hue, p.Saturation, p.Brightness, p.Hues)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
			}
			// Bounded points stay black unless Interior says otherwise.
			if !hasInterior {
				interior = pixel.Black
			}
			return colorscale.NewContinuous(stops, colorscale.WithInterior(interior))
		}

		if p.Gradient == "" && !hasInterior {
			return colorscale.DefaultContinuous(), nil
		}
		stops := colorscale.DefaultContinuous().Stops()
		var opts []colorscale.ContinuousOption
		if p.Gradient != "" {
			colors, err := colorList(p.Gradient)
			if err != nil {
				return nil, err
			}
			stops = colorscale.EvenStops(colors...)
		}
		if hasInterior {
			opts = append(opts, colorscale.WithInterior(interior))
		}
		return colorscale.NewContinuous(stops, opts...)

	default:
		return nil, fmt.Errorf("%w: unknown scale %q", ErrInvalidParams, p.Scale)
	}
}

// Config validates every parameter and builds the render configuration.
func (p Params) Config() (mandelbrot.Config[float64], error) {
	vp, err := p.Viewport()
	if err != nil {
		return mandelbrot.Config[float64]{}, err
	}
	scale, err := p.ColorScale()
	if err != nil {
		return mandelbrot.Config[float64]{}, err
	}

	opts := []mandelbrot.Option{
		mandelbrot.WithMaxIterations(p.Iterations),
		mandelbrot.WithEscapeRadius(p.EscapeRadius),
		mandelbrot.WithWorkers(p.Workers),
	}
	if p.Julia != "" {
		j, err := transforms.ParseJulia[float64](p.Julia)
		if err != nil {
			return mandelbrot.Config[float64]{}, fmt.Errorf("%w: %w", ErrInvalidParams, err)
		}
		opts = append(opts, mandelbrot.WithJulia(j.C.Complex128()))
	}

	return mandelbrot.NewConfig(vp, scale, opts...)
}

func optionalColor(s string) (pixel.Color, bool, error) {
	if s == "" {
		return pixel.Color{}, false, nil
	}
	c, err := pixel.ParseHex(s)
	if err != nil {
		return pixel.Color{}, false, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return c, true, nil
}

func colorList(s string) ([]pixel.Color, error) {
	colors, err := pixel.ParseHexList(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("%w: no colors in %q", ErrInvalidParams, s)
	}
	return colors, nil
}
