// Package mandelbrot renders escape-time images of the Mandelbrot set, and
// of Julia sets, from a viewport, an iteration bound and a colour scale.
package mandelbrot

import (
	"errors"
	"fmt"
	"math"

	"github.com/willbeason/mandelbrot/pkg/colorscale"
	"github.com/willbeason/mandelbrot/pkg/complexnum"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/parallel"
	"github.com/willbeason/mandelbrot/pkg/pixel"
	"github.com/willbeason/mandelbrot/pkg/transforms"
	"github.com/willbeason/mandelbrot/pkg/viewport"
)

const (
	DefaultMaxIterations uint32 = 1000
	DefaultEscapeRadius         = 2.0
)

// ErrInvalidConfig is returned by NewConfig for an unusable iteration bound,
// escape radius or colour scale.
var ErrInvalidConfig = errors.New("mandelbrot: invalid config")

// Config is everything a render needs. It is immutable once built by
// NewConfig and may be shared by any number of renders.
type Config[T complexnum.Float] struct {
	viewport  viewport.Viewport[T]
	scale     colorscale.Scale
	transform transforms.Transform[T]

	maxIterations uint32
	escapeRadius  T
	radius2       T
	workers       int
}

// Option adjusts a Config built by NewConfig.
type Option func(*options)

type options struct {
	maxIterations uint32
	escapeRadius  float64
	workers       int
	julia         *complex128
}

// WithMaxIterations sets the iteration bound. It must be positive.
func WithMaxIterations(n uint32) Option {
	return func(o *options) { o.maxIterations = n }
}

// WithEscapeRadius sets the radius past which an orbit counts as escaped.
// It must be positive.
func WithEscapeRadius(r float64) Option {
	return func(o *options) { o.escapeRadius = r }
}

// WithWorkers sets the number of render goroutines; n <= 0 uses GOMAXPROCS.
// The rendered image does not depend on the worker count.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithJulia renders the Julia set with constant c instead of the Mandelbrot set.
func WithJulia(c complex128) Option {
	return func(o *options) { o.julia = &c }
}

// NewConfig validates its arguments. All errors are reported here; a render
// of a valid Config cannot fail.
func NewConfig[T complexnum.Float](vp viewport.Viewport[T], scale colorscale.Scale, opts ...Option) (Config[T], error) {
	o := options{
		maxIterations: DefaultMaxIterations,
		escapeRadius:  DefaultEscapeRadius,
	}
	for _, opt := range opts {
		opt(&o)
	}

	// The squared radius is compared in T, so it must be representable there.
	r := T(o.escapeRadius)
	r2 := r * r

	switch {
	case vp.Len() == 0:
		return Config[T]{}, fmt.Errorf("%w: %w", ErrInvalidConfig, viewport.ErrInvalidViewport)
	case scale == nil:
		return Config[T]{}, fmt.Errorf("%w: no color scale", ErrInvalidConfig)
	case o.maxIterations == 0:
		return Config[T]{}, fmt.Errorf("%w: max iterations must be positive", ErrInvalidConfig)
	case !(o.escapeRadius > 0) || math.IsInf(o.escapeRadius, 0):
		return Config[T]{}, fmt.Errorf("%w: escape radius %g", ErrInvalidConfig, o.escapeRadius)
	case !(r2 > 0) || math.IsInf(float64(r2), 0):
		return Config[T]{}, fmt.Errorf("%w: escape radius %g out of range for %T", ErrInvalidConfig, o.escapeRadius, r)
	}
	if err := colorscale.Validate(scale); err != nil {
		return Config[T]{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var transform transforms.Transform[T] = transforms.Mandelbrot[T]{}
	if o.julia != nil {
		transform = transforms.Julia[T]{C: complexnum.FromComplex128[T](*o.julia)}
	}

	return Config[T]{
		viewport:      vp,
		scale:         scale,
		transform:     transform,
		maxIterations: o.maxIterations,
		escapeRadius:  r,
		radius2:       r2,
		workers:       parallel.Workers(o.workers),
	}, nil
}

func (c Config[T]) Viewport() viewport.Viewport[T]     { return c.viewport }
func (c Config[T]) Scale() colorscale.Scale            { return c.scale }
func (c Config[T]) Transform() transforms.Transform[T] { return c.transform }
func (c Config[T]) MaxIterations() uint32              { return c.maxIterations }
func (c Config[T]) EscapeRadius() T                    { return c.escapeRadius }
func (c Config[T]) Workers() int                       { return c.workers }

// Evaluate computes the escape data of pixel (x, y).
func (c Config[T]) Evaluate(x, y int) escape.Result {
	z0, k := c.transform.Seed(c.viewport.Coordinate(x, y))
	return escape.EvaluateFrom(z0, k, c.maxIterations, c.radius2)
}

// Pixel computes pixel (x, y). It depends on nothing but c, x and y.
func (c Config[T]) Pixel(x, y int) pixel.Pixel {
	return pixel.Pixel{
		X:     x,
		Y:     y,
		Color: c.scale.Color(c.Evaluate(x, y), c.maxIterations),
	}
}
