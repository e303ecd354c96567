package dual

import "github.com/san-kum/dualnum/internal/num"

// Pow computes u^n where both base and exponent carry derivatives.
func Pow[T num.Float](u, n Dual[T]) Dual[T] {
	p := num.Pow(u.re, n.re)
	return Dual[T]{
		re: p,
		d:  n.re*num.Pow(u.re, n.re-1)*u.d + num.Log(u.re)*p*n.d,
	}
}

// PowScalar computes u^n for a constant exponent.
func PowScalar[T num.Float](u Dual[T], n T) Dual[T] {
	return Dual[T]{re: num.Pow(u.re, n), d: n * num.Pow(u.re, n-1) * u.d}
}

// ScalarPow computes u^n for a constant base.
func ScalarPow[T num.Float](u T, n Dual[T]) Dual[T] {
	p := num.Pow(u, n.re)
	return Dual[T]{re: p, d: num.Log(u) * p * n.d}
}

func Sqrt[T num.Float](u Dual[T]) Dual[T] {
	return Dual[T]{re: num.Sqrt(u.re), d: 0.5 * num.Pow(u.re, -0.5) * u.d}
}

func Cos[T num.Float](u Dual[T]) Dual[T] {
	return Dual[T]{re: num.Cos(u.re), d: -num.Sin(u.re) * u.d}
}

func Sin[T num.Float](u Dual[T]) Dual[T] {
	return Dual[T]{re: num.Sin(u.re), d: num.Cos(u.re) * u.d}
}

func Tan[T num.Float](u Dual[T]) Dual[T] {
	c := num.Cos(u.re)
	return Dual[T]{re: num.Tan(u.re), d: u.d / (c * c)}
}

func Exp[T num.Float](u Dual[T]) Dual[T] {
	e := num.Exp(u.re)
	return Dual[T]{re: e, d: e * u.d}
}

func Acos[T num.Float](u Dual[T]) Dual[T] {
	return Dual[T]{re: num.Acos(u.re), d: -u.d / num.Sqrt(1-u.re*u.re)}
}

func Asin[T num.Float](u Dual[T]) Dual[T] {
	return Dual[T]{re: num.Asin(u.re), d: u.d / num.Sqrt(1-u.re*u.re)}
}

func Atan[T num.Float](u Dual[T]) Dual[T] {
	return Dual[T]{re: num.Atan(u.re), d: u.d / (1 + u.re*u.re)}
}

// Log is the natural logarithm.
func Log[T num.Float](u Dual[T]) Dual[T] {
	return Dual[T]{re: num.Log(u.re), d: u.d / u.re}
}

func Hypot[T num.Float](u, v Dual[T]) Dual[T] {
	h := num.Hypot(u.re, v.re)
	return Dual[T]{re: h, d: (u.re*u.d + v.re*v.d) / h}
}

// HypotScalar is Hypot(u, Const(v)).
func HypotScalar[T num.Float](u Dual[T], v T) Dual[T] {
	h := num.Hypot(u.re, v)
	return Dual[T]{re: h, d: u.re * u.d / h}
}

// ScalarHypot is Hypot(Const(u), v).
func ScalarHypot[T num.Float](u T, v Dual[T]) Dual[T] {
	h := num.Hypot(u, v.re)
	return Dual[T]{re: h, d: v.re * v.d / h}
}

// Sgn is the sign of the real part. It has no derivative.
func Sgn[T num.Number](x Dual[T]) T {
	return num.Sgn(x.re)
}

// Abs is Sgn(x)·x, so the derivative flips sign with the value.
func Abs[T num.Number](x Dual[T]) Dual[T] {
	return ScalarMul(Sgn(x), x)
}
