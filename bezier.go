package bezier

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tphakala/go-bezier/internal/mathutil"
	"github.com/tphakala/go-bezier/internal/report"
)

// Point is a 2D (x, y) or 3D (x, y, z) coordinate.
// All points of one control sequence must have the same number of axes.
type Point []float64

// P2 returns a 2D point.
func P2(x, y float64) Point { return Point{x, y} }

// P3 returns a 3D point.
func P3(x, y, z float64) Point { return Point{x, y, z} }

// Dim returns the number of axes of p.
func (p Point) Dim() int { return len(p) }

// Reporter receives validation failures, numeric failures and warnings from
// the evaluators. Every failure is also returned as an error; the Reporter is
// the diagnostic channel for hosts that must stay responsive.
type Reporter = report.Reporter

// NewSlogReporter returns a Reporter that writes to logger.
// A nil logger uses slog.Default().
func NewSlogReporter(logger *slog.Logger) Reporter {
	return report.NewSlog(logger)
}

// NopReporter returns a Reporter that discards all diagnostics.
func NopReporter() Reporter {
	return report.Nop()
}

// Common errors returned by the evaluators.
var (
	// ErrPointCount indicates a fixed-degree evaluator received the wrong
	// number of control points.
	ErrPointCount = errors.New("wrong number of control points")

	// ErrNegativeSamples indicates a negative sample count.
	ErrNegativeSamples = errors.New("number of samples less than zero")

	// ErrShapeMismatch indicates control points with unsupported or
	// inconsistent axis counts.
	ErrShapeMismatch = errors.New("control point shape mismatch")

	// ErrNonFinite indicates an input or result value that is NaN or infinite.
	ErrNonFinite = errors.New("non-finite value")

	// ErrInvalidRatios indicates a ratio vector of the wrong length or with
	// non-positive weights.
	ErrInvalidRatios = errors.New("invalid ratios")

	// ErrEmptyCurve indicates a compute on a curve with no control points.
	// It is not a failure: callers treat it as "nothing to draw".
	ErrEmptyCurve = errors.New("curve has no control points")

	// ErrOddPoseStream indicates a pose stream whose position and
	// orientation entries do not pair up.
	ErrOddPoseStream = errors.New("pose stream has an unpaired entry")
)

// Option configures a Curve, SphericalCurve or Spline.
type Option func(*options)

type options struct {
	reporter    Reporter
	samples     int
	orientation OrientationMode
}

// newOptions returns a freshly owned option set with defaults applied.
func newOptions(opts []Option) options {
	o := options{
		reporter:    report.NewSlog(nil),
		samples:     DefaultSamples,
		orientation: OrientationSpherical,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.reporter == nil {
		o.reporter = report.Nop()
	}
	return o
}

// WithReporter sets the diagnostic channel. A nil reporter discards diagnostics.
func WithReporter(r Reporter) Option {
	return func(o *options) { o.reporter = r }
}

// WithSamples sets the initial sample count.
// A negative count is reported and the curve starts empty with DefaultSamples.
func WithSamples(m int) Option {
	return func(o *options) { o.samples = m }
}

// WithOrientationMode selects the engine a Spline uses for orientation.
func WithOrientationMode(mode OrientationMode) Option {
	return func(o *options) { o.orientation = mode }
}

// checkSamples validates a sample count.
func checkSamples(r Reporter, m int) error {
	if m < 0 {
		r.ValidationFailure("Number of samples less than zero: %d", m)
		return fmt.Errorf("%w: %d", ErrNegativeSamples, m)
	}
	return nil
}

// checkShape validates that all points share a supported axis count and hold
// finite values. It returns the axis count.
func checkShape(r Reporter, points []Point) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}

	dim := points[0].Dim()
	if dim < minAxes || dim > maxAxes {
		r.Exception("Control point 0 has %d axes, want %d or %d", dim, minAxes, maxAxes)
		return 0, fmt.Errorf("%w: point 0 has %d axes", ErrShapeMismatch, dim)
	}

	for i, p := range points {
		if p.Dim() != dim {
			r.Exception("Control point %d has %d axes, point 0 has %d", i, p.Dim(), dim)
			return 0, fmt.Errorf("%w: point %d has %d axes, want %d", ErrShapeMismatch, i, p.Dim(), dim)
		}
		if !mathutil.IsFinite(p...) {
			r.Exception("Control point %d is not finite: %v", i, p)
			return 0, fmt.Errorf("%w: control point %d", ErrNonFinite, i)
		}
	}

	return dim, nil
}

// clonePoints returns a deep copy so callers cannot mutate a configured curve.
func clonePoints(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = append(Point(nil), p...)
	}
	return out
}
