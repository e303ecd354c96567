// Package curve samples planar parametric curves with dual numbers.
//
// Each [Curve] maps a parameter t in [0, 1) to a point (x(t), y(t)). The
// sampler seeds t as dual.Var(t), so the derivative part of each coordinate is
// the tangent direction at that point:
//
//	c := curve.NewSpiral()
//	s, _ := curve.Sample(ctx, c, curve.DefaultOptions())
//	for i, p := range s.Markers {
//	    fmt.Println(p, s.Tangents[i])
//	}
//
// Curves are looked up by name through a [Registry].
package curve
