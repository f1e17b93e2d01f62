package floatops

import "math"

// FMA64 computes a*b + c with a single final rounding, using a hardware
// fused multiply-add instruction where the platform provides one.
//
// Total over all finite and non-finite inputs; NaN and infinities propagate
// per the usual floating-point rules.
func FMA64(a, b, c float64) float64 {
	return math.FMA(a, b, c)
}

// FMA32 computes a*b + c for float32 operands by fusing in float64.
//
// The float32 product is exact in float64 (24-bit significands multiply into
// 48 bits, well under float64's 53), so a*b+c incurs one float64 rounding
// followed by the narrowing conversion. Double rounding can differ from a
// native single-precision FMA only on narrowing ties, which is still strictly
// tighter than an unfused multiply-add.
func FMA32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}
