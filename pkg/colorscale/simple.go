package colorscale

import (
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/pixel"
)

// Simple paints a silhouette: one colour for bounded points and another for
// every escaped point regardless of how fast it escaped.
type Simple struct {
	Bounded pixel.Color
	Escaped pixel.Color
}

// DefaultSimple paints the set red on black.
func DefaultSimple() Simple {
	return Simple{Bounded: pixel.Red, Escaped: pixel.Black}
}

func (s Simple) Color(r escape.Result, _ uint32) pixel.Color {
	if r.IsBounded() {
		return s.Bounded
	}
	return s.Escaped
}

func (Simple) valid() error { return nil }
