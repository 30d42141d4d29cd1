package transforms

import "github.com/willbeason/mandelbrot/pkg/complexnum"

// Mandelbrot starts every orbit at the origin and uses the pixel coordinate
// as the additive constant.
type Mandelbrot[T complexnum.Float] struct{}

func (Mandelbrot[T]) Seed(p complexnum.Number[T]) (z0, c complexnum.Number[T]) {
	return complexnum.Number[T]{}, p
}

func (Mandelbrot[T]) String() string {
	return "mandelbrot"
}

var _ Transform[float64] = Mandelbrot[float64]{}
