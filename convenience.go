package trapez

import "math"

// IntegrateFunc approximates the definite integral of f over [a, b] by
// sampling it at n evenly spaced points and applying the uniform-spacing
// trapezoidal rule.
//
// n counts sample points, not segments, so n = 2 integrates a single
// trapezoid between a and b. Returns NaN when n < 2 or b <= a.
func IntegrateFunc(f func(float64) float64, a, b float64, n int) float64 {
	if n < minSamples || b <= a {
		return math.NaN()
	}

	dx := (b - a) / float64(n-1)
	y := make([]float64, n)
	for i := range y {
		y[i] = f(a + float64(i)*dx)
	}
	return TrapezoidEven(y, dx)
}
