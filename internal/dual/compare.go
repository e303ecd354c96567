package dual

import "github.com/san-kum/dualnum/internal/num"

// Comparisons consult re only; see the package documentation.

func (x Dual[T]) Eq(y Dual[T]) bool { return x.re == y.re }
func (x Dual[T]) Ne(y Dual[T]) bool { return x.re != y.re }
func (x Dual[T]) Lt(y Dual[T]) bool { return x.re < y.re }
func (x Dual[T]) Gt(y Dual[T]) bool { return x.re > y.re }
func (x Dual[T]) Le(y Dual[T]) bool { return x.re <= y.re }
func (x Dual[T]) Ge(y Dual[T]) bool { return x.re >= y.re }

func (x Dual[T]) EqScalar(s T) bool { return x.re == s }
func (x Dual[T]) NeScalar(s T) bool { return x.re != s }
func (x Dual[T]) LtScalar(s T) bool { return x.re < s }
func (x Dual[T]) GtScalar(s T) bool { return x.re > s }
func (x Dual[T]) LeScalar(s T) bool { return x.re <= s }
func (x Dual[T]) GeScalar(s T) bool { return x.re >= s }

// Cmp returns -1, 0 or +1 ordering x and y by real part.
func (x Dual[T]) Cmp(y Dual[T]) int {
	switch {
	case x.re < y.re:
		return -1
	case x.re > y.re:
		return 1
	}
	return 0
}

// Equiv reports whether a and b agree in both the value and the derivative.
// Tests asserting full state must use Equiv; Eq ignores the derivative.
func Equiv[T num.Number](a, b Dual[T]) bool {
	return a.re == b.re && a.d == b.d
}

// EquivScalar is Equiv(a, Const(s)).
func EquivScalar[T num.Number](a Dual[T], s T) bool {
	return Equiv(a, Const(s))
}
