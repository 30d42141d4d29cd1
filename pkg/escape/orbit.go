package escape

import "github.com/willbeason/mandelbrot/pkg/complexnum"

// Orbit is the state of a partially iterated point, so iteration can be
// resumed in several passes.
type Orbit[T complexnum.Float] struct {
	Z          complexnum.Number[T]
	Iterations uint32
	Escaped    bool
}

// Continue runs up to steps more iterations of z -> z² + c on o.
//
// An orbit that already escaped is returned unchanged. Running n steps and
// then m steps is identical to running n+m steps at once.
func Continue[T complexnum.Float](o Orbit[T], c complexnum.Number[T], steps uint32, escapeRadiusSquared T) Orbit[T] {
	if o.Escaped {
		return o
	}

	z := o.Z
	for i := uint32(0); i < steps; i++ {
		// Expanded z*z + c; the generic Mul/Add calls are not always inlined.
		z = complexnum.Number[T]{
			Re: z.Re*z.Re - z.Im*z.Im + c.Re,
			Im: 2*z.Re*z.Im + c.Im,
		}
		o.Iterations++

		if z.Re*z.Re+z.Im*z.Im > escapeRadiusSquared {
			o.Z = z
			o.Escaped = true
			return o
		}
	}

	o.Z = z
	return o
}

// Result converts the orbit state into escape data.
func (o Orbit[T]) Result() Result {
	if !o.Escaped {
		return Bounded()
	}

	return Result{
		Escaped:    true,
		Iterations: o.Iterations,
		Smooth:     SmoothValue(o.Iterations, o.Z.Abs()),
	}
}
