package dual_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dualnum/internal/dual"
	"github.com/san-kum/dualnum/internal/num"
)

var _ = Describe("elementary functions", func() {
	x := dual.Convert[float64](dual.New(2, 2))
	y := dual.New(0.5, 2.0)

	DescribeTable("follow the chain rule",
		func(got, want dual.Dual[float64]) { expectEquiv(got, want) },
		Entry("pow(x, 0.5)", dual.PowScalar(x, 0.5),
			dual.New(num.Pow(2.0, 0.5), 0.5*num.Pow(2.0, -0.5)*2)),
		Entry("pow(0.5, x)", dual.ScalarPow(0.5, x),
			dual.New(num.Pow(0.5, 2.0), num.Log(0.5)*num.Pow(0.5, 2.0)*2)),
		Entry("pow(x, y)", dual.Pow(x, y),
			dual.New(num.Pow(2.0, 0.5), 0.5*num.Pow(2.0, 0.5-1)*2+math.Log(2)*math.Pow(2, 0.5)*2)),
		Entry("sqrt", dual.Sqrt(x), dual.New(num.Sqrt(2.0), 0.5*num.Pow(2.0, -0.5)*2)),
		Entry("cos", dual.Cos(x), dual.New(num.Cos(2.0), -num.Sin(2.0)*2)),
		Entry("sin", dual.Sin(x), dual.New(num.Sin(2.0), num.Cos(2.0)*2)),
		Entry("exp", dual.Exp(x), dual.New(num.Exp(2.0), num.Exp(2.0)*2)),
		Entry("log", dual.Log(x), dual.New(num.Log(2.0), 1.0)),
		Entry("acos", dual.Acos(y), dual.New(num.Acos(0.5), -2/num.Sqrt(1-0.25))),
		Entry("asin", dual.Asin(y), dual.New(num.Asin(0.5), 2/num.Sqrt(1-0.25))),
		Entry("atan", dual.Atan(y), dual.New(num.Atan(0.5), 2/(1+0.25))),
	)

	It("differentiates tan as sec squared", func() {
		for _, t := range []float64{-1.2, 0, 0.3, 1.0} {
			r := dual.Tan(dual.Var(t))
			Expect(r.Re()).To(Equal(math.Tan(t)))
			Expect(r.D()).To(BeNumerically("~", 1+math.Tan(t)*math.Tan(t), 1e-12))
		}
	})

	It("gives acos a negative slope", func() {
		Expect(dual.Acos(dual.Var(0.0)).D()).To(Equal(-1.0))
		Expect(dual.Asin(dual.Var(0.0)).D()).To(Equal(1.0))
	})

	Describe("hypot", func() {
		It("handles dual and scalar operands in both positions", func() {
			expectEquiv(dual.Hypot(dual.Var(3.0), dual.Const(4.0)), dual.New(5.0, 0.6))
			expectEquiv(dual.HypotScalar(dual.Var(3.0), 4), dual.New(5.0, 0.6))
			expectEquiv(dual.ScalarHypot(4, dual.Var(3.0)), dual.New(5.0, 0.6))
		})

		It("sums both contributions", func() {
			h := dual.Hypot(dual.New(3.0, 1.0), dual.New(4.0, 2.0))
			Expect(h.Re()).To(Equal(5.0))
			Expect(h.D()).To(BeNumerically("~", (3.0+8.0)/5.0, 1e-15))
		})
	})

	Describe("sgn and abs", func() {
		xi := dual.New(-2, 2)
		yf := dual.New(2.0, 0.5)
		zi := dual.New(0, 1)

		It("takes the sign of the real part", func() {
			Expect(dual.Sgn(xi)).To(Equal(-1))
			Expect(dual.Sgn(yf)).To(Equal(1.0))
			Expect(dual.Sgn(zi)).To(Equal(0))
		})

		It("flips the derivative along with a negative value", func() {
			expectEquiv(dual.Abs(xi), dual.New(2, -2))
			expectEquiv(dual.Abs(yf), dual.New(2.0, 0.5))
			Expect(dual.EquivScalar(dual.Abs(zi), 0)).To(BeTrue())
		})
	})

	It("keeps sin² + cos² constant", func() {
		for i := 0; i <= 64; i++ {
			t := -4 + 8*float64(i)/64
			v := dual.Var(t)
			s, c := dual.Sin(v), dual.Cos(v)
			r := s.Mul(s).Add(c.Mul(c))
			Expect(r.Re()).To(BeNumerically("~", 1.0, 1e-12))
			Expect(r.D()).To(BeNumerically("~", 0.0, 1e-12))
		}
	})

	It("differentiates the spiral parametrisation", func() {
		t := dual.Var(0.25)
		px := dual.Cos(t.MulScalar(2 * math.Pi)).Mul(t)
		py := dual.Sin(t.MulScalar(2 * math.Pi)).Mul(t)

		Expect(px.Re()).To(BeNumerically("~", 0.0, 1e-15))
		Expect(py.Re()).To(BeNumerically("~", 0.25, 1e-15))
		Expect(px.D()).To(BeNumerically("~", -2*math.Pi*0.25, 1e-12))
		Expect(py.D()).To(BeNumerically("~", 1.0, 1e-12))
	})

	It("works in single precision", func() {
		r := dual.Exp(dual.Var(float32(1)))
		Expect(r.Re()).To(BeNumerically("~", float32(math.E), 1e-6))
		Expect(r.D()).To(Equal(r.Re()))
	})

	Describe("out-of-domain inputs", func() {
		It("propagates NaN from log, sqrt and the inverse trig functions", func() {
			l := dual.Log(dual.Var(-1.0))
			Expect(math.IsNaN(l.Re())).To(BeTrue())
			Expect(l.D()).To(Equal(-1.0))
			Expect(l.IsFinite()).To(BeFalse())

			s := dual.Sqrt(dual.Var(-1.0))
			Expect(math.IsNaN(s.Re())).To(BeTrue())
			Expect(math.IsNaN(s.D())).To(BeTrue())

			a := dual.Acos(dual.Var(2.0))
			Expect(math.IsNaN(a.Re())).To(BeTrue())
			Expect(math.IsNaN(a.D())).To(BeTrue())

			b := dual.Asin(dual.Var(-2.0))
			Expect(math.IsNaN(b.Re())).To(BeTrue())
			Expect(math.IsNaN(b.D())).To(BeTrue())
		})

		It("produces infinities at log(0)", func() {
			l := dual.Log(dual.Var(0.0))
			Expect(math.IsInf(l.Re(), -1)).To(BeTrue())
			Expect(math.IsInf(l.D(), 1)).To(BeTrue())
		})

		It("does not trap division by a zero real part", func() {
			q := dual.New(1.0, 1.0).Div(dual.New(0.0, 1.0))
			Expect(math.IsInf(q.Re(), 1)).To(BeTrue())
			Expect(math.IsInf(q.D(), -1)).To(BeTrue())

			z := dual.New(0.0, 0.0).Div(dual.Const(0.0))
			Expect(math.IsNaN(z.Re())).To(BeTrue())
			Expect(math.IsNaN(z.D())).To(BeTrue())
		})

		It("panics on integer division by a zero real part", func() {
			x, zero := dual.New(1, 1), dual.New(0, 1)
			Expect(func() { x.Div(zero) }).To(Panic())
			Expect(func() { x.DivScalar(0) }).To(Panic())
			Expect(func() { dual.ScalarDiv(2, zero) }).To(Panic())
			Expect(func() { y := x; y.DivAssign(zero) }).To(Panic())
			Expect(func() { y := x; y.DivScalarAssign(0) }).To(Panic())
		})

		It("never treats NaN as equivalent", func() {
			n := dual.Log(dual.Var(-1.0))
			Expect(dual.Equiv(n, n)).To(BeFalse())
			Expect(n.Eq(n)).To(BeFalse())
		})

		It("reports finite results", func() {
			Expect(dual.Sin(dual.Var(1.0)).IsFinite()).To(BeTrue())
			Expect(dual.New(3, 4).IsFinite()).To(BeTrue())
		})
	})
})
