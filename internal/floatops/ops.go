// Package floatops provides precision-specific numeric kernels for float32
// and float64 types. This enables a single integration codebase to support
// both precision levels without duplication.
//
// With Profile-Guided Optimization (Go 1.22+), function pointer calls in hot
// paths can be devirtualized and inlined, achieving near-zero overhead.
package floatops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Uniform-spacing detection tolerances. An interval is considered equal to
// the reference interval when the widths differ by no more than
// max(|h0|, 1) * tolerance.
const (
	Tolerance32 = 1e-6
	Tolerance64 = 1e-12
)

// Ops provides numeric kernels for type F.
// Function pointers allow type-safe generic code while delegating
// to optimized type-specific implementations.
//
// With PGO, these indirect calls can be devirtualized in hot paths.
type Ops[F Float] struct {
	// Sum returns the sum of all elements. SIMD-accelerated on
	// supported platforms via github.com/tphakala/simd.
	Sum func(a []F) F

	// FMA computes a*b + c with a single final rounding.
	FMA func(a, b, c F) F

	// Tolerance is the uniform-spacing detection tolerance for F.
	Tolerance F
}

// Pre-instantiated operations for each float type.
// These are package-level variables to avoid repeated allocation.
var (
	ops32 = Ops[float32]{
		Sum:       f32.Sum,
		FMA:       FMA32,
		Tolerance: Tolerance32,
	}
	ops64 = Ops[float64]{
		Sum:       f64.Sum,
		FMA:       FMA64,
		Tolerance: Tolerance64,
	}
)

// For returns the Ops instance for type F.
// The type switch happens at instantiation time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("floatops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("floatops: type assertion failed for float64")
		}
		return ops
	default:
		panic("floatops: unsupported float type")
	}
}

// Type aliases for common configurations.
type (
	Ops32 = Ops[float32]
	Ops64 = Ops[float64]
)

// Float32Ops returns the float32 kernels.
// Convenience function for non-generic code.
func Float32Ops() *Ops[float32] {
	return &ops32
}

// Float64Ops returns the float64 kernels.
// Convenience function for non-generic code.
func Float64Ops() *Ops[float64] {
	return &ops64
}
