// Package complexnum is a small generic complex number type.
//
// It carries only what escape-time iteration needs. The generic parameter
// lets the same evaluator run at float32 or float64 precision without going
// through complex64/complex128 conversions on the hot path.
package complexnum

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float is the set of real types a Number can be built from.
type Float interface {
	~float32 | ~float64
}

// Number is a complex number with real part Re and imaginary part Im.
type Number[T Float] struct {
	Re, Im T
}

func New[T Float](re, im T) Number[T] {
	return Number[T]{Re: re, Im: im}
}

// Parse reads a number written as "re,im".
func Parse[T Float](s string) (Number[T], error) {
	re, im, ok := strings.Cut(s, ",")
	if !ok {
		return Number[T]{}, fmt.Errorf("complexnum: %q: want re,im", s)
	}

	r, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
	if err != nil {
		return Number[T]{}, fmt.Errorf("complexnum: %q: %w", s, err)
	}
	i, err := strconv.ParseFloat(strings.TrimSpace(im), 64)
	if err != nil {
		return Number[T]{}, fmt.Errorf("complexnum: %q: %w", s, err)
	}
	return New(T(r), T(i)), nil
}

// FromComplex128 converts a builtin complex value.
func FromComplex128[T Float](c complex128) Number[T] {
	return Number[T]{Re: T(real(c)), Im: T(imag(c))}
}

func Add[T Float](a, b Number[T]) Number[T] {
	return Number[T]{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

func Mul[T Float](a, b Number[T]) Number[T] {
	return Number[T]{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// SquaredMagnitude is Re² + Im². Compare it against a squared radius to
// avoid the square root in Abs.
func SquaredMagnitude[T Float](a Number[T]) T {
	return a.Re*a.Re + a.Im*a.Im
}

func (a Number[T]) Add(b Number[T]) Number[T] { return Add(a, b) }

func (a Number[T]) Sub(b Number[T]) Number[T] {
	return Number[T]{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

func (a Number[T]) Mul(b Number[T]) Number[T] { return Mul(a, b) }

// Scale multiplies both parts by the real k.
func (a Number[T]) Scale(k T) Number[T] {
	return Number[T]{Re: a.Re * k, Im: a.Im * k}
}

// Div divides both parts by the real k.
func (a Number[T]) Div(k T) Number[T] {
	return Number[T]{Re: a.Re / k, Im: a.Im / k}
}

func (a Number[T]) SquaredMagnitude() T { return SquaredMagnitude(a) }

// Abs is the modulus |a|.
func (a Number[T]) Abs() float64 {
	return math.Hypot(float64(a.Re), float64(a.Im))
}

func (a Number[T]) Complex128() complex128 {
	return complex(float64(a.Re), float64(a.Im))
}

func (a Number[T]) String() string {
	return fmt.Sprintf("%g%+gi", float64(a.Re), float64(a.Im))
}
