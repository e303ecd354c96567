package dual_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dualnum/internal/dual"
)

func expectEquiv[T int | float64](got, want dual.Dual[T]) {
	GinkgoHelper()
	Expect(dual.Equiv(got, want)).To(BeTrue(), "got %v, want %v", got, want)
}

var _ = Describe("Dual", func() {
	Describe("construction", func() {
		It("defaults to zero", func() {
			var x dual.Dual[int]
			expectEquiv(x, dual.New(0, 0))
			var y dual.Dual[float64]
			expectEquiv(y, dual.New(0.0, 0.0))
		})

		It("lifts a single value with zero derivative", func() {
			x := dual.Const(1.0)
			Expect(x.Re()).To(Equal(1.0))
			Expect(x.D()).To(Equal(0.0))
			Expect(x.Lifted()).To(BeTrue())
		})

		It("seeds the independent variable with derivative one", func() {
			expectEquiv(dual.Var(2.5), dual.New(2.5, 1.0))
			Expect(dual.Var(2.5).Lifted()).To(BeFalse())
		})

		It("builds an infinitesimal from the derivative-unit literal", func() {
			expectEquiv(dual.Eps(1.0), dual.New(0.0, 1.0))
			expectEquiv(dual.Const(3.0).Add(dual.Eps(1.0)), dual.Var(3.0))
			expectEquiv(dual.Eps(4), dual.New(0, 4))
		})

		It("converts between base types componentwise", func() {
			expectEquiv(dual.Convert[float64](dual.New(1, 2)), dual.New(1.0, 2.0))
			expectEquiv(dual.Convert[int](dual.New(3.7, -4.2)), dual.New(3, -4))
		})
	})

	Describe("accessors", func() {
		It("reads and writes both components", func() {
			x := dual.New(-1.0, 1.0)
			Expect(x.Re()).To(Equal(-1.0))
			Expect(x.D()).To(Equal(1.0))

			x.SetRe(4)
			x.SetD(-2)
			expectEquiv(x, dual.New(4.0, -2.0))
		})

		It("resets the derivative on scalar assignment", func() {
			x := dual.New(5.0, 7.0)
			x.Set(2)
			Expect(x.D()).To(Equal(0.0))
			expectEquiv(x, dual.Const(2.0))
		})

		It("copies by value", func() {
			x := dual.New(1.0, 1.0)
			y := x
			y.MulScalarAssign(3)
			expectEquiv(x, dual.New(1.0, 1.0))
			expectEquiv(y, dual.New(3.0, 3.0))
		})
	})

	Describe("Norm", func() {
		It("is the magnitude of the real part only", func() {
			Expect(dual.New(-1.0, 1.0).Norm()).To(Equal(1.0))
			Expect(dual.New(3.0, 4.0).Norm()).To(Equal(3.0))
			Expect(dual.New(-2, 9).Norm()).To(Equal(2))
		})
	})

	Describe("Conj", func() {
		It("negates the derivative in place", func() {
			x := dual.New(-1.0, 1.0)
			r := x.Conj()
			expectEquiv(x, dual.New(-1.0, -1.0))
			Expect(r).To(BeIdenticalTo(&x))
		})

		It("is an involution", func() {
			for _, x := range []dual.Dual[float64]{
				dual.New(0.0, 0.0), dual.New(2.0, -3.5), dual.New(-7.0, 1e-9),
			} {
				y := x
				y.Conj().Conj()
				expectEquiv(y, x)
			}
		})
	})

	Describe("compound assignment", func() {
		It("follows the scalar rules for integers", func() {
			x := dual.New(1, 1)
			expectEquiv(*x.AddScalarAssign(2), dual.New(3, 1))
			expectEquiv(*x.SubScalarAssign(2), dual.New(1, 1))
			expectEquiv(*x.DivScalarAssign(2), dual.New(0, 0))
			expectEquiv(*x.MulScalarAssign(2), dual.New(0, 0))
		})

		It("follows the scalar rules for floats", func() {
			x := dual.New(1.0, 1.0)
			expectEquiv(*x.AddScalarAssign(2), dual.New(3.0, 1.0))
			expectEquiv(*x.SubScalarAssign(2), dual.New(1.0, 1.0))
			expectEquiv(*x.DivScalarAssign(2), dual.New(0.5, 0.5))
			expectEquiv(*x.MulScalarAssign(2), dual.New(1.0, 1.0))
		})

		It("applies product and quotient rules for integers", func() {
			x, y := dual.New(1, 2), dual.New(3, 4)
			expectEquiv(*x.AddAssign(y), dual.New(4, 6))
			expectEquiv(*x.SubAssign(y), dual.New(1, 2))
			expectEquiv(*x.DivAssign(y), dual.New(0, 0))
			expectEquiv(*x.MulAssign(y), dual.New(0, 0))
		})

		It("applies product and quotient rules for floats", func() {
			x, y := dual.New(1.0, 2.0), dual.New(3.0, 4.0)
			expectEquiv(*x.AddAssign(y), dual.New(4.0, 6.0))
			expectEquiv(*x.SubAssign(y), dual.New(1.0, 2.0))
			expectEquiv(*x.DivAssign(y), dual.New(1.0/3, 2.0/9))

			x.MulAssign(y)
			Expect(x.Re()).To(BeNumerically("~", 1.0, 1e-15))
			Expect(x.D()).To(BeNumerically("~", 2.0, 1e-15))
		})

		It("uses the pre-update real part when the operand aliases the receiver", func() {
			x := dual.New(3.0, 1.0)
			x.MulAssign(x)
			expectEquiv(x, dual.New(9.0, 6.0))

			y := dual.New(3.0, 1.0)
			y.DivAssign(y)
			expectEquiv(y, dual.New(1.0, 0.0))
		})
	})

	Describe("binary operators", func() {
		x := dual.New(2.0, 2.0)
		y := dual.New(3.0, 1.0)

		DescribeTable("dual and scalar in both orders",
			func(got, want dual.Dual[float64]) { expectEquiv(got, want) },
			Entry("x + 2", x.AddScalar(2), dual.New(4.0, 2.0)),
			Entry("x - 2", x.SubScalar(2), dual.New(0.0, 2.0)),
			Entry("x * 2", x.MulScalar(2), dual.New(4.0, 4.0)),
			Entry("x / 2", x.DivScalar(2), dual.New(1.0, 1.0)),
			Entry("2 + x", dual.ScalarAdd(2.0, x), dual.New(4.0, 2.0)),
			Entry("2 - x", dual.ScalarSub(2.0, x), dual.New(0.0, -2.0)),
			Entry("2 * x", dual.ScalarMul(2.0, x), dual.New(4.0, 4.0)),
			Entry("2 / x", dual.ScalarDiv(2.0, x), dual.New(1.0, -1.0)),
			Entry("x + y", x.Add(y), dual.New(5.0, 3.0)),
			Entry("x - y", x.Sub(y), dual.New(-1.0, 1.0)),
			Entry("-x", x.Neg(), dual.New(-2.0, -2.0)),
		)

		It("applies the product rule", func() {
			p := dual.New(2, 1).Mul(dual.New(3, 2))
			Expect(p.Re()).To(Equal(6))
			Expect(p.D()).To(Equal(7))
		})

		It("applies the quotient rule", func() {
			q := dual.New(1.0, 2.0).Div(dual.New(3.0, 4.0))
			Expect(q.Re()).To(Equal(1.0 / 3))
			Expect(q.D()).To(Equal(2.0 / 9))
		})

		It("matches the compound forms", func() {
			a, b := dual.New(1.5, -0.5), dual.New(-2.0, 3.0)
			ops := []struct {
				binary   dual.Dual[float64]
				compound func(*dual.Dual[float64]) *dual.Dual[float64]
			}{
				{a.Add(b), func(z *dual.Dual[float64]) *dual.Dual[float64] { return z.AddAssign(b) }},
				{a.Sub(b), func(z *dual.Dual[float64]) *dual.Dual[float64] { return z.SubAssign(b) }},
				{a.Mul(b), func(z *dual.Dual[float64]) *dual.Dual[float64] { return z.MulAssign(b) }},
				{a.Div(b), func(z *dual.Dual[float64]) *dual.Dual[float64] { return z.DivAssign(b) }},
			}
			for _, op := range ops {
				z := a
				expectEquiv(*op.compound(&z), op.binary)
			}
			expectEquiv(a, dual.New(1.5, -0.5))
		})

		It("is linear in the derivative", func() {
			for _, in := range []dual.Dual[float64]{dual.New(1.5, 0.75), dual.New(-4.0, 2.0), dual.Var(0.0)} {
				for _, ab := range [][2]float64{{3, 2}, {-0.5, 10}, {0, 1}} {
					got := in.MulScalar(ab[0]).AddScalar(ab[1])
					Expect(got.D()).To(Equal(ab[0] * in.D()))
				}
			}
		})
	})

	Describe("mixed base types", func() {
		It("promotes when the narrow operand is converted up", func() {
			x := dual.Convert[float64](dual.New(1, 2))
			y := dual.New(3.0, 4.0)
			expectEquiv(x.Add(y), dual.New(4.0, 6.0))
			expectEquiv(x.Div(y), dual.New(1.0/3, 2.0/9))
		})

		It("truncates when the wide operand is converted into an integer receiver", func() {
			x := dual.New(1, 2)
			y := dual.Convert[int](dual.New(3.0, 4.0))
			expectEquiv(*x.AddAssign(y), dual.New(4, 6))
			expectEquiv(*x.SubAssign(y), dual.New(1, 2))
			expectEquiv(*x.DivAssign(y), dual.New(0, 0))
			expectEquiv(*x.MulAssign(y), dual.New(0, 0))
		})
	})

	Describe("comparison", func() {
		It("compares real parts only", func() {
			x, y := dual.New(-1.0, 1.0), dual.New(-1.0, -1.0)
			Expect(x.Eq(y)).To(BeTrue())
			Expect(x.Ne(y)).To(BeFalse())
			Expect(x.Le(y)).To(BeTrue())
			Expect(x.Ge(y)).To(BeTrue())
			Expect(x.Lt(y)).To(BeFalse())
			Expect(x.Gt(y)).To(BeFalse())
			Expect(x.Cmp(y)).To(Equal(0))
		})

		It("diverges from equivalence when derivatives differ", func() {
			x, y := dual.New(-1.0, 1.0), dual.New(-1.0, -1.0)
			Expect(x.Eq(y)).To(BeTrue())
			Expect(dual.Equiv(x, y)).To(BeFalse())
		})

		It("orders by real part regardless of derivative", func() {
			small, big := dual.New(1.0, 100.0), dual.New(2.0, -100.0)
			Expect(small.Lt(big)).To(BeTrue())
			Expect(big.Gt(small)).To(BeTrue())
			Expect(small.Cmp(big)).To(Equal(-1))
			Expect(big.Cmp(small)).To(Equal(1))
		})

		It("compares against scalars", func() {
			x := dual.New(2.0, 5.0)
			Expect(x.EqScalar(2)).To(BeTrue())
			Expect(x.NeScalar(2)).To(BeFalse())
			Expect(x.LtScalar(3)).To(BeTrue())
			Expect(x.GtScalar(1)).To(BeTrue())
			Expect(x.LeScalar(2)).To(BeTrue())
			Expect(x.GeScalar(2.5)).To(BeFalse())
		})

		It("treats a scalar as a constant under equivalence", func() {
			Expect(dual.EquivScalar(dual.Const(4.0), 4.0)).To(BeTrue())
			Expect(dual.EquivScalar(dual.Var(4.0), 4.0)).To(BeFalse())
		})
	})

	Describe("String", func() {
		It("renders value and infinitesimal part", func() {
			Expect(dual.New(1, 2).String()).To(Equal("1 + 2_eps"))
			Expect(dual.New(1.5, -2.0).String()).To(Equal("1.5 + -2_eps"))
		})
	})
})
