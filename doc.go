// Package trapez computes definite integrals of sampled data using the
// trapezoidal rule, in pure Go.
//
// The package handles both uniformly and non-uniformly spaced abscissas.
// [Trapezoid] inspects the spacing of its x values: when all intervals match
// the first one within a precision-specific tolerance it switches to the
// optimized uniform-spacing formula, otherwise it sums the area of each
// trapezoidal segment directly. Interior accumulation uses fused multiply-add
// to keep rounding error down, and interior sums are SIMD-accelerated via
// github.com/tphakala/simd on supported platforms.
//
// # Quick Start
//
//	area := trapez.Trapezoid64(y, x)
//	if math.IsNaN(area) {
//	    // fewer than two samples, or len(x) != len(y)
//	}
//
// For samples on a known regular grid, skip the spacing scan:
//
//	area := trapez.TrapezoidEven64(y, dx)
//
// # Precision
//
// Every entry point exists for float32 and float64, either through the
// generic [Trapezoid] and [TrapezoidEven] or the typed wrappers
// [Trapezoid32], [Trapezoid64], [TrapezoidEven32] and [TrapezoidEven64].
// Each precision carries its own uniformity tolerance (1e-6 for float32,
// 1e-12 for float64), scaled to the magnitude of the first interval so that
// detection behaves the same for large and small coordinate ranges.
//
// # Error Handling
//
// There are no error returns. Invalid input (fewer than two samples,
// mismatched slice lengths, non-positive spacing) yields the NaN sentinel,
// or nil for the cumulative variants. Callers that need to distinguish an
// undefined result from a near-zero one must check with math.IsNaN.
//
// # Thread Safety
//
// All functions are pure: they read their input slices and mutate nothing
// shared. Concurrent calls on shared read-only buffers need no
// synchronization. Every call completes in O(n) time and O(1) extra space,
// and is bit-reproducible for a fixed input.
package trapez
