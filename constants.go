package trapez

// Sample count limits
const (
	// minSamples is the minimum number of samples the trapezoidal rule
	// is defined for (one segment).
	minSamples = 2
)

// Spacing detection constants
const (
	// toleranceFloor keeps the uniformity tolerance absolute for
	// intervals smaller than one: tol = max(|h0|, toleranceFloor) * eps.
	toleranceFloor = 1.0

	// segmentHalf halves the segment height sum in the trapezoid area
	// formula (area = dx * (y0 + y1) / 2).
	segmentHalf = 0.5
)
