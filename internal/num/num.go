package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the capability set a dual number base type needs: the four
// arithmetic operators, ordering and conversion to and from float64.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float restricts a base type to the ones the math package can evaluate
// without losing the fractional part.
type Float interface {
	constraints.Float
}

func Pow[T Float](x, n T) T { return T(math.Pow(float64(x), float64(n))) }

func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

func Exp[T Float](x T) T { return T(math.Exp(float64(x))) }

// Log is the natural logarithm.
func Log[T Float](x T) T { return T(math.Log(float64(x))) }

func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

func Cos[T Float](x T) T { return T(math.Cos(float64(x))) }

func Tan[T Float](x T) T { return T(math.Tan(float64(x))) }

func Asin[T Float](x T) T { return T(math.Asin(float64(x))) }

func Acos[T Float](x T) T { return T(math.Acos(float64(x))) }

func Atan[T Float](x T) T { return T(math.Atan(float64(x))) }

func Hypot[T Float](x, y T) T { return T(math.Hypot(float64(x), float64(y))) }

// Sgn returns -1, 0 or +1 as (0 < x) - (x < 0). NaN yields 0.
func Sgn[T Number](x T) T {
	var zero T
	var s T
	if zero < x {
		s++
	}
	if x < zero {
		s--
	}
	return s
}

// Abs is Sgn(x)*x.
func Abs[T Number](x T) T {
	return Sgn(x) * x
}
