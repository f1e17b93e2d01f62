// Package testutil provides reusable test helper functions for the
// integration tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-12
	Float32Tolerance = 1e-5
	LooseTolerance   = 1e-6
)

// AssertNaN verifies that got is the NaN sentinel.
func AssertNaN[F float32 | float64](t *testing.T, got F, msgAndArgs ...any) bool {
	t.Helper()
	if !math.IsNaN(float64(got)) {
		return assert.Fail(t, "expected NaN sentinel", "got %v", got)
	}
	return true
}

// AssertClose verifies that got is within tolerance of want, where the
// tolerance is relative for large magnitudes and absolute near zero.
func AssertClose(t *testing.T, want, got, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	scale := math.Max(math.Abs(want), 1.0)
	return assert.InDelta(t, want, got, tolerance*scale, msgAndArgs...)
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}
