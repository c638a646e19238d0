// Package bezier evaluates Bezier curves that turn sparse control points and
// robot poses into dense, time-sampled trajectories for a tool-center-point.
//
// # Features
//
//   - Closed-form linear, quadratic and cubic evaluators
//   - N-degree Bezier curves in Bernstein form, weighted or rational
//   - Spherical Bezier interpolation of orientations on the quaternion sphere
//     (Ken Shoemake's construction), free of gimbal lock
//   - A pose spline that splits an alternating position/orientation stream and
//     keeps both curves sampled at the same parameters
//   - A single-consumer Worker for evaluating off the caller's goroutine
//   - Batch evaluation of independent curves, optionally in parallel
//   - Column-wise blending accelerated via github.com/tphakala/simd
//
// # Quick Start
//
// For a fixed-degree curve:
//
//	samples, err := bezier.Linear(nil, []bezier.Point{
//	    bezier.P3(0, 0, 0),
//	    bezier.P3(10, 0, 0),
//	}, 3)
//	// samples == [0 0 0 5 0 0 10 0 0]
//
// For an arbitrary number of control points:
//
//	c := bezier.NewCurve(bezier.WithSamples(50))
//	if err := c.SetPoints(points); err != nil {
//	    log.Fatal(err)
//	}
//	out, err := c.Compute(false)
//
// For a robot trajectory:
//
//	s := bezier.NewSpline(bezier.WithSamples(200))
//	if err := s.SetPoses(poses); err != nil { // pos, rot, pos, rot, ...
//	    log.Fatal(err)
//	}
//	tr, err := s.Trajectory()
//
// # Sampling and Precision
//
// A curve is evaluated at M evenly spaced parameters over [0, 1], both ends
// included. M = 0 yields an empty result and M = 1 a single sample at t = 0.
// Output is flat and interleaved per sample (x0, y0, z0, x1, ...) and every
// value is rounded to three decimals to suppress floating point noise.
//
// # Orientation
//
// Orientations are Euler angle triples in degrees: X pitch, Y yaw, Z roll.
// [SphericalCurve] converts them to quaternions, interpolates with slerp and
// converts back. A [Spline] uses it by default; [OrientationLinear] selects
// component-wise Euler blending instead.
// Returned angles are the canonical Euler form with yaw in [-90, 90], so an
// input triple may come back as an equivalent one.
//
// # Errors
//
// Nothing in this package panics on bad input. Validation failures (wrong
// point count, negative sample count, bad ratios, unpaired poses) and numeric
// failures (shape mismatch, non-finite values) are reported through a
// [Reporter] and returned as errors wrapping the package sentinels, with a nil
// result. An empty curve returns [ErrEmptyCurve], which is not a failure.
//
// # Thread Safety
//
// Curves and splines hold configuration and are not safe for concurrent use.
// Serialise configuration and computation per instance, for example through a
// [Worker]. Returned slices are freshly allocated and safe to share.
package bezier
