// Package colorscale turns escape data into colours.
//
// There are exactly three scales: Simple, Discrete and Continuous. Scales
// hold only their configured colours and are safe to share between render
// workers.
package colorscale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/pixel"
)

var (
	// ErrEmptyGradient is returned when a Continuous scale has no stops.
	ErrEmptyGradient = errors.New("colorscale: gradient has no stops")

	// ErrEmptyPalette is returned when a Discrete scale has no bands.
	ErrEmptyPalette = errors.New("colorscale: palette has no colors")

	// ErrInvalidStop is returned for a gradient stop outside [0, 1].
	ErrInvalidStop = errors.New("colorscale: invalid gradient stop")
)

// Scale maps the escape result of one point to its colour. maxIterations is
// the bound the result was computed with.
type Scale interface {
	Color(r escape.Result, maxIterations uint32) pixel.Color

	// valid reports why a scale cannot colour a point. It also keeps the set
	// of scales closed.
	valid() error
}

// Validate returns an error when s cannot colour every result, as with a nil
// scale or a zero Discrete or Continuous value built without its constructor.
func Validate(s Scale) error {
	if s == nil {
		return errors.New("colorscale: no scale")
	}
	return s.valid()
}

// Names of the scales, as accepted by ByName.
const (
	NameSimple     = "simple"
	NameDiscrete   = "discrete"
	NameContinuous = "continuous"
)

// Names lists the scale names.
func Names() []string {
	return []string{NameSimple, NameDiscrete, NameContinuous}
}

// ByName returns the default scale of the given kind.
func ByName(name string) (Scale, error) {
	switch strings.ToLower(name) {
	case NameSimple:
		return DefaultSimple(), nil
	case NameDiscrete:
		return DefaultDiscrete(), nil
	case NameContinuous:
		return DefaultContinuous(), nil
	default:
		return nil, fmt.Errorf("colorscale: unknown scale %q, want one of %s", name, strings.Join(Names(), ", "))
	}
}
