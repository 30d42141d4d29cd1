// Package viewport maps a pixel grid onto a rectangle of the complex plane.
//
// Pixel (0, 0) is the top-left corner of the image and corresponds to
// (RealMin, ImagMax). x grows toward RealMax and y grows toward ImagMin, the
// usual raster orientation. Renderers enumerate pixels in the same row-major
// order as Index.
package viewport

import (
	"errors"
	"fmt"
	"math"

	"github.com/willbeason/mandelbrot/pkg/complexnum"
)

// ErrInvalidViewport is returned when a Viewport would have an empty pixel
// grid or a degenerate region of the plane.
var ErrInvalidViewport = errors.New("viewport: invalid viewport")

// Viewport is an immutable mapping from a Width×Height pixel grid onto
// [RealMin, RealMax]×[ImagMin, ImagMax].
type Viewport[T complexnum.Float] struct {
	realMin, realMax T
	imagMin, imagMax T
	width, height    int

	// stepRe and stepIm are the plane size of one pixel.
	stepRe, stepIm T
}

// New validates the bounds and grid size and returns the Viewport.
func New[T complexnum.Float](realMin, realMax, imagMin, imagMax T, width, height int) (Viewport[T], error) {
	switch {
	case width <= 0 || height <= 0:
		return Viewport[T]{}, fmt.Errorf("%w: %dx%d pixels", ErrInvalidViewport, width, height)
	case !finite(realMin) || !finite(realMax) || !finite(imagMin) || !finite(imagMax):
		return Viewport[T]{}, fmt.Errorf("%w: bounds must be finite", ErrInvalidViewport)
	case !(realMin < realMax):
		return Viewport[T]{}, fmt.Errorf("%w: real range [%g, %g] is empty", ErrInvalidViewport, float64(realMin), float64(realMax))
	case !(imagMin < imagMax):
		return Viewport[T]{}, fmt.Errorf("%w: imaginary range [%g, %g] is empty", ErrInvalidViewport, float64(imagMin), float64(imagMax))
	}

	stepRe := (realMax - realMin) / T(width)
	stepIm := (imagMax - imagMin) / T(height)
	if !finite(stepRe) || !finite(stepIm) || !(stepRe > 0) || !(stepIm > 0) {
		return Viewport[T]{}, fmt.Errorf("%w: pixel size %g×%g is not representable", ErrInvalidViewport, float64(stepRe), float64(stepIm))
	}

	return Viewport[T]{
		realMin: realMin,
		realMax: realMax,
		imagMin: imagMin,
		imagMax: imagMax,
		width:   width,
		height:  height,
		stepRe:  stepRe,
		stepIm:  stepIm,
	}, nil
}

// FromTopLeft builds a Viewport from its top-left corner and the size of the
// region it covers.
func FromTopLeft[T complexnum.Float](topLeft complexnum.Number[T], spanRe, spanIm T, width, height int) (Viewport[T], error) {
	return New(topLeft.Re, topLeft.Re+spanRe, topLeft.Im-spanIm, topLeft.Im, width, height)
}

// FromCenter builds a Viewport of the given plane height centered on center.
// The plane width follows the aspect ratio of the pixel grid so pixels are
// square.
func FromCenter[T complexnum.Float](center complexnum.Number[T], viewHeight T, width, height int) (Viewport[T], error) {
	if width <= 0 || height <= 0 {
		return Viewport[T]{}, fmt.Errorf("%w: %dx%d pixels", ErrInvalidViewport, width, height)
	}

	viewWidth := viewHeight * T(width) / T(height)
	return New(
		center.Re-viewWidth/2, center.Re+viewWidth/2,
		center.Im-viewHeight/2, center.Im+viewHeight/2,
		width, height,
	)
}

func (v Viewport[T]) Width() int         { return v.width }
func (v Viewport[T]) Height() int        { return v.height }
func (v Viewport[T]) RealMin() T         { return v.realMin }
func (v Viewport[T]) RealMax() T         { return v.realMax }
func (v Viewport[T]) ImagMin() T         { return v.imagMin }
func (v Viewport[T]) ImagMax() T         { return v.imagMax }
func (v Viewport[T]) Step() (T, T)       { return v.stepRe, v.stepIm }
func (v Viewport[T]) Len() int           { return v.width * v.height }
func (v Viewport[T]) Index(x, y int) int { return y*v.width + x }

// Point is the inverse of Index.
func (v Viewport[T]) Point(i int) (x, y int) {
	return i % v.width, i / v.width
}

// Coordinate is the point of the plane at the top-left corner of pixel (x, y).
func (v Viewport[T]) Coordinate(x, y int) complexnum.Number[T] {
	return complexnum.Number[T]{
		Re: v.realMin + T(x)*v.stepRe,
		Im: v.imagMax - T(y)*v.stepIm,
	}
}

// Scaled returns the same region of the plane sampled on a grid factor times
// larger in each dimension.
func (v Viewport[T]) Scaled(factor int) (Viewport[T], error) {
	if factor <= 0 {
		return Viewport[T]{}, fmt.Errorf("%w: scale factor %d", ErrInvalidViewport, factor)
	}
	return New(v.realMin, v.realMax, v.imagMin, v.imagMax, v.width*factor, v.height*factor)
}

func (v Viewport[T]) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g] @ %dx%d",
		float64(v.realMin), float64(v.realMax), float64(v.imagMin), float64(v.imagMax), v.width, v.height)
}

func finite[T complexnum.Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
