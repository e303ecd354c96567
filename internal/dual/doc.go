// Package dual implements forward-mode automatic differentiation with dual
// numbers.
//
// A [Dual] carries a value and its derivative with respect to a single
// independent variable. The independent variable itself is seeded as
// Var(x) = (x, 1); constants are Const(c) = (c, 0). Pushing a Dual through
// the arithmetic methods and the elementary functions of this package yields
// the value of the composition in Re and its derivative in D:
//
//	t := dual.Var(0.25)
//	x := dual.Cos(t.MulScalar(2 * math.Pi)).Mul(t)
//	fmt.Println(x.Re(), x.D())
//
// # Operator forms
//
// Each operator exists as a value method returning a new Dual (Add, MulScalar,
// ...), as a free function for a scalar on the left (ScalarSub, ScalarDiv, ...)
// and as a pointer method mutating the receiver (AddAssign,
// MulScalarAssign, ...). The mutating forms return the receiver so they can be
// chained.
//
// # Comparison
//
// Eq, Lt and the other comparisons look at the real parts only. Equality of
// dual numbers is the Kronecker delta of their real parts; its distributional
// derivative is zero almost everywhere, so leaving the derivative out of the
// outcome is consistent rather than an approximation. The ordering comparisons
// follow by analogy. Use [Equiv] to compare both components.
//
// # Domain errors
//
// Nothing is validated. Out-of-domain inputs to Log, Sqrt, Acos, Asin, Pow and
// division by a zero real part produce NaN or Inf in the same places the
// scalar math functions do; [Dual.IsFinite] reports whether a result is usable.
// This holds for float base types only. Integer duals follow Go integer
// division, so dividing a Dual[int] by a zero real part (Div, DivScalar,
// ScalarDiv and their Assign forms) panics.
//
// # Mixed base types
//
// Dual[int] and Dual[float64] do not combine directly. Convert one operand
// with [Convert] first; the result has the base type converted to. Converting
// a float dual into an integer dual truncates both components, so integer
// receivers see integer division.
package dual
