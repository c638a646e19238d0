package bezier

import (
	"fmt"
	"math"

	"github.com/tphakala/go-bezier/internal/mathutil"
	"github.com/tphakala/go-bezier/internal/simdops"
)

// State is the lifecycle state of a Curve.
type State int

const (
	// StateEmpty means no control points are set; Compute returns ErrEmptyCurve.
	StateEmpty State = iota

	// StateConfigured means control points, lookup table and ratios are set.
	StateConfigured

	// StateComputed means at least one Compute succeeded since configuration.
	// Results are never cached; every Compute evaluates again.
	StateComputed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateConfigured:
		return "configured"
	case StateComputed:
		return "computed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Curve evaluates a Bezier curve of arbitrary degree from N+1 control points
// using the Bernstein form
//
//	B(t) = Σ C(N,i)·tⁱ·(1-t)^(N-i)·Pᵢ, 0 ≤ t ≤ 1
//
// or, in rational mode, the same sum weighted by per-point ratios rᵢ and
// divided by Σ C(N,i)·tⁱ·(1-t)^(N-i)·rᵢ.
//
// A Curve is not safe for concurrent use: configuration and Compute calls
// must be serialised by the caller (see Worker).
type Curve struct {
	reporter Reporter

	points  []Point
	dim     int
	samples int
	lut     [][]int
	ratios  []float64
	state   State
}

// NewCurve creates an empty curve.
func NewCurve(opts ...Option) *Curve {
	o := newOptions(opts)
	c := &Curve{reporter: o.reporter}
	c.Delete()

	if err := checkSamples(c.reporter, o.samples); err == nil {
		c.samples = o.samples
	}

	return c
}

// SetPoints replaces the control points. The Pascal's triangle lookup table is
// rebuilt for the new degree and every ratio is reset to 1. An empty slice
// returns the curve to StateEmpty. More than MaxDegree+1 points are rejected
// with ErrPointCount. On error the curve is left unchanged.
func (c *Curve) SetPoints(points []Point) error {
	if len(points) == 0 {
		c.clearPoints()
		return nil
	}

	if degree := len(points) - 1; degree > MaxDegree {
		c.reporter.ValidationFailure("Degree %d exceeds the maximum of %d.", degree, MaxDegree)
		return fmt.Errorf("%w: degree %d exceeds %d", ErrPointCount, degree, MaxDegree)
	}

	dim, err := checkShape(c.reporter, points)
	if err != nil {
		return err
	}

	c.points = clonePoints(points)
	c.dim = dim
	c.lut = mathutil.PascalsTriangle(len(points) - 1)
	c.ratios = make([]float64, len(points))
	for i := range c.ratios {
		c.ratios[i] = 1
	}
	c.state = StateConfigured

	return nil
}

// SetSamples sets the number of samples produced by Compute.
// A negative count is reported, resets the curve via Delete and returns
// ErrNegativeSamples.
func (c *Curve) SetSamples(m int) error {
	if err := checkSamples(c.reporter, m); err != nil {
		c.Delete()
		return err
	}
	c.samples = m
	return nil
}

// SetRatios sets the rational weight of each control point.
// The slice must have one strictly positive, finite entry per control point.
func (c *Curve) SetRatios(ratios []float64) error {
	if len(ratios) != len(c.points) {
		c.reporter.ValidationFailure("Got %d ratios for %d control points.", len(ratios), len(c.points))
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidRatios, len(ratios), len(c.points))
	}

	for i, r := range ratios {
		if r <= 0 || !mathutil.IsFinite(r) {
			c.reporter.ValidationFailure("Ratio %d must be positive, got %v.", i, r)
			return fmt.Errorf("%w: ratio %d is %v", ErrInvalidRatios, i, r)
		}
	}

	c.ratios = append(c.ratios[:0], ratios...)
	return nil
}

// Compute samples the curve. With rationalize set, the ratio-weighted rational
// form is used; with all ratios equal to 1 it matches the non-rational form
// within rounding.
//
// A single control point is returned, rounded, for every sample count, since
// a degree-0 curve is just that point. Results are recomputed on every call.
func (c *Curve) Compute(rationalize bool) ([]float64, error) {
	switch len(c.points) {
	case 0:
		return nil, ErrEmptyCurve
	case 1:
		c.state = StateComputed
		return mathutil.RoundSlice(append([]float64(nil), c.points[0]...)), nil
	}

	var out []float64
	if rationalize {
		out = c.rational()
	} else {
		out = c.weighted()
	}

	if !mathutil.IsFinite(out...) {
		c.reporter.Exception("Unable to compute degree %d Bezier curve: non-finite sample (rational=%v)",
			c.Degree(), rationalize)
		return nil, fmt.Errorf("%w: degree %d curve", ErrNonFinite, c.Degree())
	}

	c.state = StateComputed
	return out, nil
}

// Delete resets the curve to StateEmpty with DefaultSamples. It is idempotent.
func (c *Curve) Delete() {
	c.clearPoints()
	c.samples = DefaultSamples
}

func (c *Curve) clearPoints() {
	c.points = []Point{}
	c.dim = 0
	c.lut = [][]int{}
	c.ratios = []float64{}
	c.state = StateEmpty
}

// State returns the lifecycle state.
func (c *Curve) State() State { return c.state }

// Samples returns the configured sample count.
func (c *Curve) Samples() int { return c.samples }

// Degree returns N for N+1 control points, or -1 when empty.
func (c *Curve) Degree() int { return len(c.points) - 1 }

// Dim returns the axis count of the control points, or 0 when empty.
func (c *Curve) Dim() int { return c.dim }

// Points returns a copy of the control points.
func (c *Curve) Points() []Point { return clonePoints(c.points) }

// Ratios returns a copy of the ratio vector.
func (c *Curve) Ratios() []float64 { return append([]float64(nil), c.ratios...) }

// LookupTable returns the Pascal's triangle rows built for the current degree.
func (c *Curve) LookupTable() [][]int {
	out := make([][]int, len(c.lut))
	for i, row := range c.lut {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// bernsteinColumns returns C(N,i)·tⁱ·(1-t)^(N-i) for every control point i,
// one column per point spanning all sample parameters.
func (c *Curve) bernsteinColumns(ts []float64) [][]float64 {
	n := c.Degree()
	row := c.lut[n]

	columns := make([][]float64, len(c.points))
	for i := range columns {
		coeff := float64(row[i])
		column := make([]float64, len(ts))
		for s, t := range ts {
			column[s] = coeff * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
		}
		columns[i] = column
	}

	return columns
}

// weighted sums the rounded Bernstein terms per axis.
func (c *Curve) weighted() []float64 {
	columns := c.bernsteinColumns(mathutil.Linspace(c.samples))
	return simdops.Interleave(blendAxes(c.points, c.dim, columns, mathutil.Round))
}

// rational divides the ratio-weighted numerator by the ratio-weighted basis
// sum, rounding every term and the final quotient.
func (c *Curve) rational() []float64 {
	ts := mathutil.Linspace(c.samples)
	columns := c.bernsteinColumns(ts)

	denominator := make([]float64, len(ts))
	scratch := make([]float64, len(ts))
	for i, column := range columns {
		// Replace each column with its rounded ratio-weighted basis so the
		// numerator below multiplies the same values that form the denominator.
		simdops.For[float64]().Scale(scratch, column, c.ratios[i])
		for s := range column {
			column[s] = mathutil.Round(scratch[s])
			denominator[s] += column[s]
		}
	}

	axes := blendAxes(c.points, c.dim, columns, mathutil.Round)
	for _, axis := range axes {
		for s := range axis {
			axis[s] = mathutil.Round(axis[s] / denominator[s])
		}
	}

	return simdops.Interleave(axes)
}
