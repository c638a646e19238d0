package bezier

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// ComputeCurve evaluates points as an N-degree curve in one call.
// Diagnostics are discarded; use a Curve with WithReporter to observe them.
func ComputeCurve(points []Point, samples int, rational bool) ([]float64, error) {
	c := NewCurve(WithReporter(nil))
	if err := c.SetSamples(samples); err != nil {
		return nil, err
	}
	if err := c.SetPoints(points); err != nil {
		return nil, err
	}
	return c.Compute(rational)
}

// ComputeOrientations interpolates Euler angle triples on the quaternion
// sphere in one call.
func ComputeOrientations(angles []r3.Vec, samples int) ([]float64, error) {
	s := NewSphericalCurve(WithReporter(nil))
	if err := s.SetSamples(samples); err != nil {
		return nil, err
	}
	if err := s.SetAngles(angles); err != nil {
		return nil, err
	}
	return s.Compute()
}

// ComputeTrajectory samples a pose stream in one call using spherical
// orientation interpolation.
func ComputeTrajectory(poses []r3.Vec, samples int) (Trajectory, error) {
	s := NewSpline(WithReporter(nil))
	if err := s.SetSamples(samples); err != nil {
		return nil, err
	}
	if err := s.SetPoses(poses); err != nil {
		return nil, err
	}
	return s.Trajectory()
}
