// Package escape classifies points of the complex plane by how quickly the
// orbit of z -> z² + c leaves a disc of given radius.
package escape

import (
	"math"

	"github.com/willbeason/mandelbrot/pkg/complexnum"
)

// Result is the escape data of one point.
//
// The zero value is Bounded: the orbit stayed inside the escape radius for
// every iteration that was run.
type Result struct {
	// Escaped reports whether the orbit left the escape radius.
	Escaped bool

	// Iterations is the 1-based iteration after which the orbit was first
	// seen outside the escape radius. Zero when Bounded.
	Iterations uint32

	// Smooth is the continuous iteration value. Zero when Bounded.
	Smooth float64
}

// Bounded is the result of a point that did not escape.
func Bounded() Result {
	return Result{}
}

func (r Result) IsBounded() bool {
	return !r.Escaped
}

// Evaluate iterates z -> z² + c from z = 0 for at most maxIterations steps.
//
// A point escapes once |z|² > escapeRadiusSquared; a point sitting exactly
// on the radius has not escaped yet. maxIterations == 0 is always Bounded.
func Evaluate[T complexnum.Float](c complexnum.Number[T], maxIterations uint32, escapeRadiusSquared T) Result {
	return Continue(Orbit[T]{}, c, maxIterations, escapeRadiusSquared).Result()
}

// EvaluateFrom is Evaluate with the orbit starting at z0 instead of the
// origin. Julia sets fix c and start the orbit at the pixel coordinate.
func EvaluateFrom[T complexnum.Float](z0, c complexnum.Number[T], maxIterations uint32, escapeRadiusSquared T) Result {
	return Continue(Orbit[T]{Z: z0}, c, maxIterations, escapeRadiusSquared).Result()
}

// SmoothValue is the continuous iteration count
//
//	iterations + 1 - log(log|z|) / log 2
//
// for an orbit that escaped at z. When log|z| is not positive, which only
// happens for escape radii of at most 1, the formula is undefined and the
// integer count is returned instead.
func SmoothValue(iterations uint32, absZ float64) float64 {
	logZ := math.Log(absZ)
	if !(logZ > 0) {
		return float64(iterations)
	}
	return float64(iterations) + 1 - math.Log(logZ)/math.Ln2
}
