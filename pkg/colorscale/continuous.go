package colorscale

import (
	"fmt"
	"math"
	"sort"

	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/pixel"
)

// Stop is a colour at a position of a gradient.
type Stop struct {
	Position float64 // in [0, 1]
	Color    pixel.Color
}

// Continuous interpolates between gradient stops using the smooth escape
// value, which removes visible banding.
type Continuous struct {
	stops []Stop

	interior    pixel.Color
	hasInterior bool
}

// ContinuousOption configures a Continuous scale.
type ContinuousOption func(*Continuous)

// WithInterior colours bounded points with c instead of the gradient's end.
func WithInterior(c pixel.Color) ContinuousOption {
	return func(s *Continuous) {
		s.interior = c
		s.hasInterior = true
	}
}

// NewContinuous builds a gradient scale. Stops may be given in any order.
func NewContinuous(stops []Stop, opts ...ContinuousOption) (*Continuous, error) {
	if len(stops) == 0 {
		return nil, ErrEmptyGradient
	}

	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	for _, s := range sorted {
		if math.IsNaN(s.Position) || s.Position < 0 || s.Position > 1 {
			return nil, fmt.Errorf("%w: position %g", ErrInvalidStop, s.Position)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	c := &Continuous{stops: sorted}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// EvenStops spaces colours evenly over [0, 1].
func EvenStops(colors ...pixel.Color) []Stop {
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		stops[i] = Stop{Position: pos, Color: c}
	}
	return stops
}

// DefaultContinuous runs from deep blue through white to orange, with a
// black interior.
func DefaultContinuous() *Continuous {
	c, err := NewContinuous([]Stop{
		{Position: 0, Color: pixel.RGB8(0x00, 0x07, 0x64)},
		{Position: 0.16, Color: pixel.RGB8(0x20, 0x6b, 0xcb)},
		{Position: 0.42, Color: pixel.RGB8(0xed, 0xff, 0xff)},
		{Position: 0.6425, Color: pixel.RGB8(0xff, 0xaa, 0x00)},
		{Position: 0.8575, Color: pixel.RGB8(0x00, 0x02, 0x00)},
		{Position: 1, Color: pixel.Black},
	}, WithInterior(pixel.Black))
	if err != nil {
		panic(err)
	}
	return c
}

// HueGradient builds n stops that rotate once around the hue circle starting
// at hue degrees, at fixed saturation and brightness.
func HueGradient(hue, saturation, brightness float64, n int) ([]Stop, error) {
	if n <= 0 {
		return nil, ErrEmptyGradient
	}

	colors := make([]pixel.Color, n)
	for i := range colors {
		h := hue
		if n > 1 {
			h += 360 * float64(i) / float64(n-1)
		}
		c, err := pixel.HSB(h, saturation, brightness)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return EvenStops(colors...), nil
}

// Stops returns a copy of the sorted stops.
func (s *Continuous) Stops() []Stop {
	return append([]Stop(nil), s.stops...)
}

// At returns the gradient colour at t. t is clamped to [0, 1].
func (s *Continuous) At(t float64) pixel.Color {
	t = clamp01(t)

	// First stop at or after t.
	idx := sort.Search(len(s.stops), func(i int) bool {
		return s.stops[i].Position >= t
	})

	if idx == 0 {
		return s.stops[0].Color
	}
	if idx >= len(s.stops) {
		return s.stops[len(s.stops)-1].Color
	}

	lo, hi := s.stops[idx-1], s.stops[idx]
	if hi.Position == t || hi.Position == lo.Position {
		return hi.Color
	}

	return lo.Color.Lerp(hi.Color, (t-lo.Position)/(hi.Position-lo.Position))
}

// Normalize maps a result onto [0, 1]: smooth / maxIterations for escaped
// points, 1 for bounded ones.
func Normalize(r escape.Result, maxIterations uint32) float64 {
	if r.IsBounded() || maxIterations == 0 {
		return 1
	}
	return clamp01(r.Smooth / float64(maxIterations))
}

func (s *Continuous) Color(r escape.Result, maxIterations uint32) pixel.Color {
	if r.IsBounded() && s.hasInterior {
		return s.interior
	}
	return s.At(Normalize(r, maxIterations))
}

func (s *Continuous) valid() error {
	if s == nil || len(s.stops) == 0 {
		return ErrEmptyGradient
	}
	return nil
}

// clamp01 clamps x to [0, 1]; NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
