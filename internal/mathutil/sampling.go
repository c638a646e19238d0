package mathutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Linspace returns m evenly spaced parameter values over [IntervalStart, IntervalEnd].
//
//   - m <= 0 yields an empty slice
//   - m == 1 yields a single value at IntervalStart
//   - m > 1 includes both interval ends
func Linspace(m int) []float64 {
	if m <= 0 {
		return []float64{}
	}

	dst := make([]float64, m)
	if m == 1 {
		dst[0] = IntervalStart
		return dst
	}

	return floats.Span(dst, IntervalStart, IntervalEnd)
}

// Round rounds x to Precision decimal places, halves to even.
// Negative zero is folded to zero so rounded output compares cleanly.
func Round(x float64) float64 {
	r := scalar.RoundEven(x, Precision)
	if r == 0 {
		return 0
	}
	return r
}

// RoundSlice rounds every element of s in place and returns s.
func RoundSlice(s []float64) []float64 {
	for i, v := range s {
		s[i] = Round(v)
	}
	return s
}

// IsFinite reports whether every value is neither NaN nor infinite.
func IsFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
