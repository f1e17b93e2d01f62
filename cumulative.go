package trapez

import (
	"github.com/awxkee/trapez-integrate/internal/floatops"
)

// CumulativeTrapezoid computes the running integral of y over x using the
// trapezoidal rule.
//
// The result has the same length as y, with dst[0] = 0 and dst[i] holding
// the integral from x[0] to x[i]. Each segment is accumulated with fused
// multiply-add, so the final element matches the general path of
// [Trapezoid] bit for bit.
//
// dst is used as the destination when it has capacity for len(y) elements;
// otherwise a new slice is allocated. Returns nil when fewer than two
// samples are given or len(x) != len(y).
func CumulativeTrapezoid[F Float](dst, y, x []F) []F {
	n := len(y)
	if n < minSamples || len(x) != n {
		return nil
	}

	dst = sized(dst, n)
	ops := floatops.For[F]()

	dst[0] = 0
	var integral F
	for i := 0; i < n-1; i++ {
		dx := x[i+1] - x[i]
		integral = ops.FMA(dx*F(segmentHalf), y[i]+y[i+1], integral)
		dst[i+1] = integral
	}
	return dst
}

// CumulativeTrapezoidEven computes the running integral of evenly spaced
// samples. dx is trusted as given, matching [TrapezoidEven].
//
// Returns nil when fewer than two samples are given or dx <= 0.
func CumulativeTrapezoidEven[F Float](dst, y []F, dx F) []F {
	n := len(y)
	if n < minSamples || dx <= 0 {
		return nil
	}

	dst = sized(dst, n)
	ops := floatops.For[F]()

	dst[0] = 0
	var integral F
	for i := 0; i < n-1; i++ {
		integral = ops.FMA(dx*F(segmentHalf), y[i]+y[i+1], integral)
		dst[i+1] = integral
	}
	return dst
}

// sized returns dst resized to n elements, reusing its backing array when
// the capacity allows.
func sized[F Float](dst []F, n int) []F {
	if cap(dst) >= n {
		return dst[:n]
	}
	return make([]F, n)
}
