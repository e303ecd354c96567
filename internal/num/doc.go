// Package num provides the scalar side of the elementary function library.
//
// Each function is generic over a floating-point base type and delegates to
// the standard math package; [internal/dual] lifts the same functions to dual
// numbers via the chain rule.
//
//   - [Pow], [Sqrt], [Exp], [Log]
//   - [Sin], [Cos], [Tan], [Asin], [Acos], [Atan]
//   - [Hypot]
//   - [Sgn], [Abs]: defined for every [Number]
package num
