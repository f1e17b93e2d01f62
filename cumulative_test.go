package trapez

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awxkee/trapez-integrate/internal/testutil"
)

// TestCumulativeTrapezoid verifies the running integral against the
// one-shot general path.
func TestCumulativeTrapezoid(t *testing.T) {
	y := []float64{5, 6, 1, 4, 6, 2}
	x := []float64{1, 2, 4, 6, 7, 9}

	got := CumulativeTrapezoid(nil, y, x)
	require.Len(t, got, len(y))

	assert.Zero(t, got[0])
	testutil.AssertNoNaNOrInf(t, got)

	// The final element accumulates exactly like the non-uniform path.
	assert.Equal(t, Trapezoid64(y, x), got[len(got)-1])
	assert.InDelta(t, 30.5, got[len(got)-1], testutil.DefaultTolerance)
}

// TestCumulativeTrapezoidMonotonic verifies that a non-negative integrand
// produces a non-decreasing running integral.
func TestCumulativeTrapezoidMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	n := 200
	x := make([]float64, n)
	y := make([]float64, n)
	v := 0.0
	for i := range x {
		x[i] = v
		v += 0.1 + rng.Float64()
		y[i] = rng.Float64() // non-negative
	}

	got := CumulativeTrapezoid(nil, y, x)
	require.Len(t, got, n)
	testutil.AssertMonotonic(t, got)
}

// TestCumulativeTrapezoidReusesDst verifies destination reuse semantics.
func TestCumulativeTrapezoidReusesDst(t *testing.T) {
	y := []float64{1, 2, 3, 4}
	x := []float64{0, 1, 2, 3}

	dst := make([]float64, 0, 8)
	got := CumulativeTrapezoid(dst, y, x)
	require.Len(t, got, len(y))
	assert.Equal(t, 8, cap(got), "expected the provided backing array to be reused")

	short := make([]float64, 1)
	grown := CumulativeTrapezoid(short, y, x)
	require.Len(t, grown, len(y))
}

// TestCumulativeTrapezoidInvalidInput verifies the nil sentinel.
func TestCumulativeTrapezoidInvalidInput(t *testing.T) {
	assert.Nil(t, CumulativeTrapezoid[float64](nil, nil, nil))
	assert.Nil(t, CumulativeTrapezoid(nil, []float64{1}, []float64{0}))
	assert.Nil(t, CumulativeTrapezoid(nil, []float64{1, 2}, []float64{0}))

	assert.Nil(t, CumulativeTrapezoidEven(nil, []float64{1, 2}, 0))
	assert.Nil(t, CumulativeTrapezoidEven(nil, []float64{1, 2}, -1))
	assert.Nil(t, CumulativeTrapezoidEven(nil, []float64{1}, 1))
}

// TestCumulativeTrapezoidEven verifies the even variant against the uniform
// one-shot result and per-prefix expectations.
func TestCumulativeTrapezoidEven(t *testing.T) {
	y := []float64{5, 6, 1, 4, 6, 2}
	const dx = 0.003

	got := CumulativeTrapezoidEven(nil, y, dx)
	require.Len(t, got, len(y))
	assert.Zero(t, got[0])

	// Each prefix equals integrating that prefix on its own.
	for i := 2; i <= len(y); i++ {
		assert.InDelta(t, TrapezoidEven64(y[:i], dx), got[i-1],
			testutil.DefaultTolerance, "prefix length %d", i)
	}
}

// TestCumulativeTrapezoid32 exercises the float32 instantiation.
func TestCumulativeTrapezoid32(t *testing.T) {
	y := []float32{1, 3, 2}
	x := []float32{0, 0.5, 2}

	got := CumulativeTrapezoid(nil, y, x)
	require.Len(t, got, 3)
	assert.Zero(t, got[0])
	assert.InDelta(t, 1.0, float64(got[1]), testutil.Float32Tolerance)
	assert.InDelta(t, 4.75, float64(got[2]), testutil.Float32Tolerance)
}
