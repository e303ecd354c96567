package dual

import (
	"math"

	"github.com/san-kum/dualnum/internal/num"
)

// Dual is the pair re + d·ε with ε² = 0.
type Dual[T num.Number] struct {
	re T
	d  T
}

func New[T num.Number](re, d T) Dual[T] {
	return Dual[T]{re: re, d: d}
}

// Const lifts a scalar: (v, 0).
func Const[T num.Number](v T) Dual[T] {
	return Dual[T]{re: v}
}

// Var seeds the independent variable: (x, 1).
func Var[T num.Number](x T) Dual[T] {
	return Dual[T]{re: x, d: 1}
}

// Eps is the derivative-unit literal (0, v). Var(x) == Const(x).Add(Eps(1)).
func Eps[T num.Number](v T) Dual[T] {
	return Dual[T]{d: v}
}

// Convert changes the base type of x componentwise.
func Convert[T, U num.Number](x Dual[U]) Dual[T] {
	return Dual[T]{re: T(x.re), d: T(x.d)}
}

func (x Dual[T]) Re() T { return x.re }

func (x Dual[T]) D() T { return x.d }

func (x *Dual[T]) SetRe(v T) { x.re = v }

func (x *Dual[T]) SetD(v T) { x.d = v }

// Set assigns a constant, dropping any tracked derivative.
func (x *Dual[T]) Set(v T) *Dual[T] {
	x.re = v
	x.d = 0
	return x
}

// Lifted reports whether x carries no derivative.
func (x Dual[T]) Lifted() bool {
	var zero T
	return x.d == zero
}

// Norm returns Sgn(re)*re, the magnitude of the real part. It is not a
// Euclidean norm over (re, d).
func (x Dual[T]) Norm() T {
	return num.Sgn(x.re) * x.re
}

// Conj negates the derivative in place.
func (x *Dual[T]) Conj() *Dual[T] {
	x.d = -x.d
	return x
}

// IsFinite reports whether neither component is NaN or Inf.
func (x Dual[T]) IsFinite() bool {
	for _, v := range [2]float64{float64(x.re), float64(x.d)} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (x *Dual[T]) AddScalarAssign(v T) *Dual[T] {
	x.re += v
	return x
}

func (x *Dual[T]) SubScalarAssign(v T) *Dual[T] {
	x.re -= v
	return x
}

func (x *Dual[T]) MulScalarAssign(v T) *Dual[T] {
	x.re *= v
	x.d *= v
	return x
}

func (x *Dual[T]) DivScalarAssign(v T) *Dual[T] {
	x.re /= v
	x.d /= v
	return x
}

func (x *Dual[T]) AddAssign(y Dual[T]) *Dual[T] {
	x.re += y.re
	x.d += y.d
	return x
}

func (x *Dual[T]) SubAssign(y Dual[T]) *Dual[T] {
	x.re -= y.re
	x.d -= y.d
	return x
}

// MulAssign applies the product rule. d is updated before re.
func (x *Dual[T]) MulAssign(y Dual[T]) *Dual[T] {
	x.d = x.d*y.re + x.re*y.d
	x.re *= y.re
	return x
}

// DivAssign applies the quotient rule. d is updated before re.
func (x *Dual[T]) DivAssign(y Dual[T]) *Dual[T] {
	x.d = (x.d*y.re - x.re*y.d) / (y.re * y.re)
	x.re /= y.re
	return x
}
