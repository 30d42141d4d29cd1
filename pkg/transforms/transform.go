// Package transforms chooses how a pixel coordinate seeds the quadratic
// iteration z -> z² + c.
package transforms

import (
	"fmt"

	"github.com/willbeason/mandelbrot/pkg/complexnum"
)

// A Transform maps a point of the plane to the starting value and constant
// of its orbit.
type Transform[T complexnum.Float] interface {
	Seed(p complexnum.Number[T]) (z0, c complexnum.Number[T])
}

// ParseJulia reads a Julia constant written as "re,im".
func ParseJulia[T complexnum.Float](s string) (Julia[T], error) {
	c, err := complexnum.Parse[T](s)
	if err != nil {
		return Julia[T]{}, fmt.Errorf("julia constant: %w", err)
	}
	return Julia[T]{C: c}, nil
}
