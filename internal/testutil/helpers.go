// Package testutil provides reusable test helper functions for curve tests.
package testutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// RoundingTolerance absorbs one step of three-decimal rounding.
	RoundingTolerance = 1e-3 + 1e-9

	// TermRoundingTolerance absorbs per-term rounding in the N-degree engine.
	// In rational mode the rounded denominator may drift from 1 by a few
	// steps, which scales with the coordinate magnitude.
	TermRoundingTolerance = 1e-2

	// AngleTolerance is used for Euler angles recovered from quaternions.
	AngleTolerance = 2e-3
)

// AssertSamplesInDelta verifies two flat sample slices match element-wise
// within tolerance, printing a go-cmp diff on mismatch.
func AssertSamplesInDelta(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateApprox(0, tolerance), cmpopts.EquateEmpty()); diff != "" {
		return assert.Fail(t, "samples differ (-want +got):\n"+diff, msgAndArgs...)
	}
	return true
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

// AssertRounded verifies every element has at most three decimals.
func AssertRounded(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		scaled := v * 1000
		if math.Abs(scaled-math.Round(scaled)) > 1e-6 {
			return assert.Fail(t, "value not rounded", "s[%d]=%v has more than 3 decimals", i, v)
		}
	}
	return true
}

// Sample returns the stride-wide tuple at index i of a flat interleaved slice.
func Sample(s []float64, stride, i int) []float64 {
	return s[i*stride : (i+1)*stride]
}

// AssertSampleCount verifies a flat slice holds exactly n tuples of width stride.
func AssertSampleCount(t *testing.T, s []float64, stride, n int, msgAndArgs ...any) bool {
	t.Helper()
	return assert.Len(t, s, stride*n, msgAndArgs...)
}
