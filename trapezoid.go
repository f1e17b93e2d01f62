package trapez

import (
	"math"

	"github.com/awxkee/trapez-integrate/internal/floatops"
)

// Float is the type constraint for supported floating-point types.
type Float = floatops.Float

// Trapezoid calculates the definite integral of a dataset using the
// trapezoidal rule.
//
// y holds the function values and x the matching abscissas. Non-uniform
// spacing between x values is handled by calculating the area of each
// trapezoidal segment directly; when all intervals match the first one
// within the precision's tolerance, the optimized uniform-spacing formula
// is used instead.
//
// Returns NaN when fewer than two samples are given or len(x) != len(y).
func Trapezoid[F Float](y, x []F) F {
	n := len(y)
	if n < minSamples || len(x) != n {
		return nan[F]()
	}

	ops := floatops.For[F]()

	// Quick check for uniform spacing against the first interval,
	// with the tolerance scaled to the magnitude of h0.
	h0 := x[1] - x[0]
	tol := max(abs(h0), F(toleranceFloor)) * ops.Tolerance

	uniform := true
	for i := 1; i < n-1; i++ {
		hi := x[i+1] - x[i]
		if abs(hi-h0) > tol {
			uniform = false
			break
		}
	}

	if uniform {
		// integral = h * (0.5*y0 + sum(y[1..n-1]) + 0.5*yn)
		interiorSum := ops.Sum(y[1 : n-1])
		return h0 * ops.FMA(y[0]+y[n-1], F(segmentHalf), interiorSum)
	}

	// General (non-uniform) trapezoid rule: one segment at a time.
	var integral F
	for i := 0; i < n-1; i++ {
		dx := x[i+1] - x[i]
		integral = ops.FMA(dx*F(segmentHalf), y[i]+y[i+1], integral)
	}
	return integral
}

// TrapezoidEven calculates the definite integral of evenly spaced samples.
//
// dx is the spacing between consecutive x values and is trusted as given;
// no uniformity detection runs. This is the fast path for callers who
// already know their sampling is regular.
//
// Returns NaN when fewer than two samples are given or dx <= 0.
func TrapezoidEven[F Float](y []F, dx F) F {
	n := len(y)
	if n < minSamples || dx <= 0 {
		return nan[F]()
	}

	ops := floatops.For[F]()
	sum := ops.Sum(y[1 : n-1])
	return dx * ops.FMA(F(segmentHalf), y[0]+y[n-1], sum)
}

// Trapezoid64 integrates float64 samples over float64 abscissas.
func Trapezoid64(y, x []float64) float64 {
	return Trapezoid(y, x)
}

// Trapezoid32 integrates float32 samples over float32 abscissas.
// The computation runs at single precision with the float32 uniformity
// tolerance.
func Trapezoid32(y, x []float32) float32 {
	return Trapezoid(y, x)
}

// TrapezoidEven64 integrates evenly spaced float64 samples.
func TrapezoidEven64(y []float64, dx float64) float64 {
	return TrapezoidEven(y, dx)
}

// TrapezoidEven32 integrates evenly spaced float32 samples.
func TrapezoidEven32(y []float32, dx float32) float32 {
	return TrapezoidEven(y, dx)
}

// nan returns the NaN sentinel of type F.
func nan[F Float]() F {
	return F(math.NaN())
}

// abs avoids a float64 round trip through math.Abs for float32 inputs.
func abs[F Float](v F) F {
	if v < 0 {
		return -v
	}
	return v
}
