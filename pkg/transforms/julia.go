package transforms

import (
	"fmt"

	"github.com/willbeason/mandelbrot/pkg/complexnum"
)

// Julia fixes the additive constant C and starts each orbit at the pixel
// coordinate.
type Julia[T complexnum.Float] struct {
	C complexnum.Number[T]
}

func (j Julia[T]) Seed(p complexnum.Number[T]) (z0, c complexnum.Number[T]) {
	return p, j.C
}

func (j Julia[T]) String() string {
	return fmt.Sprintf("julia(%v)", j.C)
}

var _ Transform[float64] = Julia[float64]{}
