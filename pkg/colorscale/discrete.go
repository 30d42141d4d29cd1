package colorscale

import (
	"fmt"

	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/pixel"
)

// Discrete cycles through a fixed palette of bands by iteration count, so
// iterations and iterations+len(bands) share a colour.
type Discrete struct {
	interior pixel.Color
	bands    []pixel.Color
}

// NewDiscrete builds a banded scale. interior colours bounded points.
func NewDiscrete(interior pixel.Color, bands ...pixel.Color) (*Discrete, error) {
	if len(bands) == 0 {
		return nil, ErrEmptyPalette
	}

	return &Discrete{
		interior: interior,
		bands:    append([]pixel.Color(nil), bands...),
	}, nil
}

// DefaultDiscrete uses seven primary bands on a black interior.
func DefaultDiscrete() *Discrete {
	d, err := NewDiscrete(pixel.Black,
		pixel.Red,
		pixel.Yellow,
		pixel.Green,
		pixel.White,
		pixel.Magenta,
		pixel.Blue,
		pixel.RGB8(0xff, 0x80, 0x00),
	)
	if err != nil {
		panic(err)
	}
	return d
}

// Rainbow is a Discrete scale of n bands spread evenly around the hue circle
// from hue degrees, on a black interior.
func Rainbow(hue, saturation, brightness float64, n int) (*Discrete, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d bands", ErrEmptyPalette, n)
	}

	bands := make([]pixel.Color, n)
	for i := range bands {
		c, err := pixel.HSB(hue+360*float64(i)/float64(n), saturation, brightness)
		if err != nil {
			return nil, err
		}
		bands[i] = c
	}
	return NewDiscrete(pixel.Black, bands...)
}

// Len is the number of bands.
func (d *Discrete) Len() int {
	return len(d.bands)
}

// Bands returns a copy of the palette.
func (d *Discrete) Bands() []pixel.Color {
	return append([]pixel.Color(nil), d.bands...)
}

// Band is the colour of the band for the given iteration count.
func (d *Discrete) Band(iterations uint32) pixel.Color {
	return d.bands[iterations%uint32(len(d.bands))]
}

func (d *Discrete) Color(r escape.Result, _ uint32) pixel.Color {
	if r.IsBounded() {
		return d.interior
	}
	return d.Band(r.Iterations)
}

func (d *Discrete) valid() error {
	if d == nil || len(d.bands) == 0 {
		return ErrEmptyPalette
	}
	return nil
}
