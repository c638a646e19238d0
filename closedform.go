package bezier

import (
	"fmt"

	"github.com/tphakala/go-bezier/internal/mathutil"
	"github.com/tphakala/go-bezier/internal/report"
	"github.com/tphakala/go-bezier/internal/simdops"
)

// basisFunc writes the blending weight of every control point at t into w.
type basisFunc func(t float64, w []float64)

// Linear samples the linear Bezier curve through two control points:
//
//	b(t) = (1 - t)·p0 + t·p1, 0 ≤ t ≤ 1
//
// The result holds samples interleaved per axis (x0, y0[, z0], x1, ...),
// rounded to three decimals. On failure the result is nil, the failure is
// reported through r, and the error wraps one of the package sentinels.
func Linear(r Reporter, points []Point, samples int) ([]float64, error) {
	return evaluateClosedForm(r, "linear", points, samples, pointsLinear, linearBasis)
}

// Quadratic samples the quadratic Bezier curve through three control points:
//
//	b(t) = (1 - t)²·p0 + 2t(1 - t)·p1 + t²·p2, 0 ≤ t ≤ 1
func Quadratic(r Reporter, points []Point, samples int) ([]float64, error) {
	return evaluateClosedForm(r, "quadratic", points, samples, pointsQuadratic, quadraticBasis)
}

// Cubic samples the cubic Bezier curve through four control points:
//
//	b(t) = (1 - t)³·p0 + 3t(1 - t)²·p1 + 3t²(1 - t)·p2 + t³·p3, 0 ≤ t ≤ 1
func Cubic(r Reporter, points []Point, samples int) ([]float64, error) {
	return evaluateClosedForm(r, "cubic", points, samples, pointsCubic, cubicBasis)
}

// Evaluate picks the closed-form evaluator matching the number of points.
func Evaluate(r Reporter, points []Point, samples int) ([]float64, error) {
	switch len(points) {
	case pointsLinear:
		return Linear(r, points, samples)
	case pointsQuadratic:
		return Quadratic(r, points, samples)
	case pointsCubic:
		return Cubic(r, points, samples)
	default:
		if r == nil {
			r = report.Nop()
		}
		r.ValidationFailure("No closed-form Bezier evaluator for %d points.", len(points))
		return nil, fmt.Errorf("%w: closed form needs %d to %d, got %d",
			ErrPointCount, pointsLinear, pointsCubic, len(points))
	}
}

func evaluateClosedForm(r Reporter, name string, points []Point, samples, arity int, basis basisFunc) ([]float64, error) {
	if r == nil {
		r = report.Nop()
	}

	if len(points) != arity {
		r.ValidationFailure("Number of points are not equal to %d.", arity)
		return nil, fmt.Errorf("%w: %s Bezier needs %d, got %d", ErrPointCount, name, arity, len(points))
	}
	if err := checkSamples(r, samples); err != nil {
		return nil, err
	}

	dim, err := checkShape(r, points)
	if err != nil {
		return nil, err
	}

	columns := basisColumns(mathutil.Linspace(samples), arity, basis)
	axes := blendAxes(points, dim, columns, nil)
	for _, axis := range axes {
		mathutil.RoundSlice(axis)
	}

	out := simdops.Interleave(axes)
	if !mathutil.IsFinite(out...) {
		r.Exception("Unable to compute %s Bezier curve: non-finite sample", name)
		return nil, fmt.Errorf("%w: %s Bezier sample", ErrNonFinite, name)
	}

	return out, nil
}

// basisColumns evaluates basis at every t and transposes the weights into one
// column per control point.
func basisColumns(ts []float64, arity int, basis basisFunc) [][]float64 {
	columns := make([][]float64, arity)
	for k := range columns {
		columns[k] = make([]float64, len(ts))
	}

	w := make([]float64, arity)
	for s, t := range ts {
		basis(t, w)
		for k := range columns {
			columns[k][s] = w[k]
		}
	}

	return columns
}

// blendAxes returns, for every axis a, Σ_k columns[k] · points[k][a].
// round, when non-nil, is applied to every term before it is summed.
func blendAxes(points []Point, dim int, columns [][]float64, round func(float64) float64) [][]float64 {
	n := 0
	if len(columns) > 0 {
		n = len(columns[0])
	}

	axes := make([][]float64, dim)
	scratch := make([]float64, n)
	for a := range axes {
		axes[a] = make([]float64, n)
		for k, column := range columns {
			simdops.AccumulateScaled(axes[a], column, scratch, points[k][a], round)
		}
	}

	return axes
}

func linearBasis(t float64, w []float64) {
	w[0] = 1 - t
	w[1] = t
}

func quadraticBasis(t float64, w []float64) {
	mt := 1 - t
	w[0] = mt * mt
	w[1] = 2 * t * mt
	w[2] = t * t
}

func cubicBasis(t float64, w []float64) {
	mt := 1 - t
	w[0] = mt * mt * mt
	w[1] = 3 * t * mt * mt
	w[2] = 3 * t * t * mt
	w[3] = t * t * t
}
