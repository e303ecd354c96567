package dual

import "github.com/san-kum/dualnum/internal/num"

func (x Dual[T]) Neg() Dual[T] {
	return Dual[T]{re: -x.re, d: -x.d}
}

func (x Dual[T]) Add(y Dual[T]) Dual[T] {
	return Dual[T]{re: x.re + y.re, d: x.d + y.d}
}

func (x Dual[T]) Sub(y Dual[T]) Dual[T] {
	return Dual[T]{re: x.re - y.re, d: x.d - y.d}
}

func (x Dual[T]) Mul(y Dual[T]) Dual[T] {
	return Dual[T]{re: x.re * y.re, d: x.d*y.re + x.re*y.d}
}

func (x Dual[T]) Div(y Dual[T]) Dual[T] {
	return Dual[T]{re: x.re / y.re, d: (x.d*y.re - x.re*y.d) / (y.re * y.re)}
}

func (x Dual[T]) AddScalar(s T) Dual[T] {
	return Dual[T]{re: x.re + s, d: x.d}
}

func (x Dual[T]) SubScalar(s T) Dual[T] {
	return Dual[T]{re: x.re - s, d: x.d}
}

func (x Dual[T]) MulScalar(s T) Dual[T] {
	return Dual[T]{re: x.re * s, d: x.d * s}
}

func (x Dual[T]) DivScalar(s T) Dual[T] {
	return Dual[T]{re: x.re / s, d: x.d / s}
}

// ScalarAdd computes s + x.
func ScalarAdd[T num.Number](s T, x Dual[T]) Dual[T] {
	return Dual[T]{re: s + x.re, d: x.d}
}

// ScalarSub computes s - x.
func ScalarSub[T num.Number](s T, x Dual[T]) Dual[T] {
	return Dual[T]{re: s - x.re, d: -x.d}
}

// ScalarMul computes s * x.
func ScalarMul[T num.Number](s T, x Dual[T]) Dual[T] {
	return Dual[T]{re: s * x.re, d: s * x.d}
}

// ScalarDiv computes s / x, i.e. (s, 0) / x.
func ScalarDiv[T num.Number](s T, x Dual[T]) Dual[T] {
	return Dual[T]{re: s / x.re, d: -s * x.d / (x.re * x.re)}
}
