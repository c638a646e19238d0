package mathutil

// Curve parameter interval (0 ≤ t ≤ 1)
const (
	IntervalStart = 0.0
	IntervalEnd   = 1.0
)

// Precision is the number of decimal places sampled output is rounded to.
// Rounding suppresses floating point noise in the blended coordinates.
const Precision = 3
