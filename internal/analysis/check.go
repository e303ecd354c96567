package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/dualnum/internal/dual"
)

type D = dual.Dual[float64]

// Functions lists the unary functions the CLI can evaluate by name.
var Functions = map[string]func(D) D{
	"sin":  dual.Sin[float64],
	"cos":  dual.Cos[float64],
	"tan":  dual.Tan[float64],
	"exp":  dual.Exp[float64],
	"log":  dual.Log[float64],
	"sqrt": dual.Sqrt[float64],
	"asin": dual.Asin[float64],
	"acos": dual.Acos[float64],
	"atan": dual.Atan[float64],
	"abs":  dual.Abs[float64],
	"square": func(x D) D {
		return dual.PowScalar(x, 2)
	},
	"inv": func(x D) D {
		return dual.ScalarDiv(1, x)
	},
	"sigmoid": func(x D) D {
		return dual.ScalarDiv(1, dual.ScalarAdd(1, dual.Exp(x.Neg())))
	},
	"xpowx": func(x D) D {
		return dual.Pow(x, x)
	},
}

func FunctionNames() []string {
	names := make([]string, 0, len(Functions))
	for name := range Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Lookup(name string) (func(D) D, error) {
	fn, ok := Functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	return fn, nil
}

// CentralDifference approximates f'(x) as (f(x+h) - f(x-h)) / 2h.
func CentralDifference(f func(float64) float64, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

type Check struct {
	X      float64
	Value  float64
	AD     float64
	FD     float64
	AbsErr float64
	OK     bool
}

func (c Check) String() string {
	status := "ok"
	if !c.OK {
		status = "MISMATCH"
	}
	return fmt.Sprintf("x=%g f=%g ad=%g fd=%g err=%.3g %s", c.X, c.Value, c.AD, c.FD, c.AbsErr, status)
}

// CheckDerivative evaluates f at Var(x) and compares the derivative part
// against a central difference with step h. The tolerance is relative to
// max(1, |fd|). Non-finite results never pass.
func CheckDerivative(f func(D) D, x, h, tol float64) Check {
	r := f(dual.Var(x))
	fd := CentralDifference(func(v float64) float64 { return f(dual.Const(v)).Re() }, x, h)

	c := Check{X: x, Value: r.Re(), AD: r.D(), FD: fd}
	c.AbsErr = math.Abs(c.AD - c.FD)
	c.OK = r.IsFinite() && !math.IsNaN(fd) && c.AbsErr <= tol*math.Max(1, math.Abs(fd))
	return c
}
