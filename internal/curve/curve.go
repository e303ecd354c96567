package curve

import (
	"fmt"
	"math"

	"github.com/san-kum/dualnum/internal/dual"
)

type D = dual.Dual[float64]

type Curve interface {
	Name() string
	Eval(t D) (x, y D)
}

// Configurable curves expose their shape parameters by name.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

// Spiral is a circle whose radius grows linearly with t.
type Spiral struct {
	Turns float64
}

func NewSpiral() *Spiral { return &Spiral{Turns: 1} }

func (s *Spiral) Name() string { return "spiral" }

func (s *Spiral) Eval(t D) (D, D) {
	theta := t.MulScalar(2 * math.Pi * s.Turns)
	return dual.Cos(theta).Mul(t), dual.Sin(theta).Mul(t)
}

func (s *Spiral) Params() map[string]float64 {
	return map[string]float64{"turns": s.Turns}
}

func (s *Spiral) SetParam(name string, value float64) error {
	switch name {
	case "turns":
		s.Turns = value
	default:
		return fmt.Errorf("%w: %s has no %q", ErrUnknownParam, s.Name(), name)
	}
	return nil
}

type Circle struct {
	Radius float64
}

func NewCircle() *Circle { return &Circle{Radius: 1} }

func (c *Circle) Name() string { return "circle" }

func (c *Circle) Eval(t D) (D, D) {
	theta := t.MulScalar(2 * math.Pi)
	return dual.Cos(theta).MulScalar(c.Radius), dual.Sin(theta).MulScalar(c.Radius)
}

func (c *Circle) Params() map[string]float64 {
	return map[string]float64{"radius": c.Radius}
}

func (c *Circle) SetParam(name string, value float64) error {
	switch name {
	case "radius":
		c.Radius = value
	default:
		return fmt.Errorf("%w: %s has no %q", ErrUnknownParam, c.Name(), name)
	}
	return nil
}

// Lissajous traces (sin(2πAt + δ), sin(2πBt)).
type Lissajous struct {
	A, B, Delta float64
}

func NewLissajous() *Lissajous { return &Lissajous{A: 3, B: 2, Delta: math.Pi / 2} }

func (l *Lissajous) Name() string { return "lissajous" }

func (l *Lissajous) Eval(t D) (D, D) {
	x := dual.Sin(t.MulScalar(2 * math.Pi * l.A).AddScalar(l.Delta))
	y := dual.Sin(t.MulScalar(2 * math.Pi * l.B))
	return x, y
}

func (l *Lissajous) Params() map[string]float64 {
	return map[string]float64{"a": l.A, "b": l.B, "delta": l.Delta}
}

func (l *Lissajous) SetParam(name string, value float64) error {
	switch name {
	case "a":
		l.A = value
	case "b":
		l.B = value
	case "delta":
		l.Delta = value
	default:
		return fmt.Errorf("%w: %s has no %q", ErrUnknownParam, l.Name(), name)
	}
	return nil
}

// Rose is the polar curve r = cos(Kθ) with θ = 2πt.
type Rose struct {
	K float64
}

func NewRose() *Rose { return &Rose{K: 3} }

func (r *Rose) Name() string { return "rose" }

func (r *Rose) Eval(t D) (D, D) {
	theta := t.MulScalar(2 * math.Pi)
	radius := dual.Cos(theta.MulScalar(r.K))
	return radius.Mul(dual.Cos(theta)), radius.Mul(dual.Sin(theta))
}

func (r *Rose) Params() map[string]float64 {
	return map[string]float64{"k": r.K}
}

func (r *Rose) SetParam(name string, value float64) error {
	switch name {
	case "k":
		r.K = value
	default:
		return fmt.Errorf("%w: %s has no %q", ErrUnknownParam, r.Name(), name)
	}
	return nil
}
