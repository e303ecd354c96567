package curve

import (
	"fmt"
	"math"
)

// ArcLength integrates the speed |r'(t)| over [0, 1) with steps RK4 steps.
// The speed comes from the dual-number tangent, so no finite differences are
// involved.
func ArcLength(c Curve, steps int) (float64, error) {
	if steps <= 0 {
		return 0, fmt.Errorf("%w: steps=%d", ErrInvalidOptions, steps)
	}

	speed := func(t float64) float64 {
		_, v := At(c, t)
		return math.Hypot(v.DX, v.DY)
	}

	dt := 1.0 / float64(steps)
	length := 0.0
	for i := 0; i < steps; i++ {
		length = rk4Step(speed, length, float64(i)*dt, dt)
	}
	return length, nil
}

// rk4Step advances y' = f(t) by one step. f does not depend on y, so k2 and
// k3 coincide.
func rk4Step(f func(t float64) float64, y, t, dt float64) float64 {
	k1 := f(t)
	k2 := f(t + dt*0.5)
	k3 := k2
	k4 := f(t + dt)
	return y + dt/6.0*(k1+2*k2+2*k3+k4)
}
