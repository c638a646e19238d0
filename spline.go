package bezier

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// OrientationMode selects how a Spline interpolates orientation.
type OrientationMode int

const (
	// OrientationSpherical interpolates orientation on the quaternion sphere
	// with a SphericalCurve. It is free of gimbal lock.
	OrientationSpherical OrientationMode = iota

	// OrientationLinear blends Euler angles component-wise with a Curve,
	// the same way positions are blended.
	OrientationLinear
)

// String returns the mode name.
func (m OrientationMode) String() string {
	switch m {
	case OrientationSpherical:
		return "spherical"
	case OrientationLinear:
		return "linear"
	default:
		return fmt.Sprintf("OrientationMode(%d)", int(m))
	}
}

// ParseOrientationMode parses "spherical" or "linear".
func ParseOrientationMode(s string) (OrientationMode, error) {
	switch s {
	case "spherical", "":
		return OrientationSpherical, nil
	case "linear":
		return OrientationLinear, nil
	default:
		return OrientationSpherical, fmt.Errorf("unknown orientation mode %q", s)
	}
}

// PoseSample is one time step of a trajectory: a TCP position and an
// orientation as Euler angles in degrees.
type PoseSample struct {
	Position    r3.Vec
	Orientation r3.Vec
}

// Trajectory is a time-ordered sequence of pose samples.
type Trajectory []PoseSample

// Flatten returns x, y, z, a, b, c for every sample in order.
func (tr Trajectory) Flatten() []float64 {
	out := make([]float64, 0, len(tr)*poseStride*eulerAxes)
	for _, p := range tr {
		out = append(out,
			p.Position.X, p.Position.Y, p.Position.Z,
			p.Orientation.X, p.Orientation.Y, p.Orientation.Z)
	}
	return out
}

// Spline turns a robot pose stream into a 6-DoF trajectory.
//
// The stream alternates position and orientation entries. Even entries form
// the translation curve and odd entries the orientation curve; both are
// always sampled with the same count so they stay frame-aligned. Both curves
// start at the first pose and end at the last, so every PoseSample pairs a
// position with the orientation at the same parameter.
//
// A Spline is not safe for concurrent use.
type Spline struct {
	reporter Reporter
	mode     OrientationMode

	poses   []r3.Vec
	samples int

	translation *Curve
	orientation *Curve
	spherical   *SphericalCurve
}

// NewSpline creates an empty spline.
func NewSpline(opts ...Option) *Spline {
	o := newOptions(opts)
	sub := []Option{WithReporter(o.reporter)}

	s := &Spline{
		reporter:    o.reporter,
		mode:        o.orientation,
		poses:       []r3.Vec{},
		samples:     DefaultSamples,
		translation: NewCurve(sub...),
		orientation: NewCurve(sub...),
		spherical:   NewSphericalCurve(sub...),
	}
	s.spherical.interpolateEnds = true
	if err := s.SetSamples(o.samples); err != nil {
		s.samples = DefaultSamples
	}

	return s
}

// SetPoses replaces the pose stream. The stream must pair every position with
// an orientation; an odd-length stream is rejected with ErrOddPoseStream and
// the spline is left unchanged.
func (s *Spline) SetPoses(poses []r3.Vec) error {
	if len(poses)%poseStride != 0 {
		s.reporter.ValidationFailure("Pose stream has %d entries, the last one is unpaired.", len(poses))
		return fmt.Errorf("%w: %d entries", ErrOddPoseStream, len(poses))
	}
	s.poses = append([]r3.Vec{}, poses...)
	return nil
}

// PoseStream returns a copy of the pose stream.
func (s *Spline) PoseStream() []r3.Vec { return append([]r3.Vec{}, s.poses...) }

// SetSamples sets the shared sample count of both sub-curves.
// A negative count is reported and leaves the current count unchanged.
func (s *Spline) SetSamples(m int) error {
	if err := checkSamples(s.reporter, m); err != nil {
		return err
	}
	s.samples = m
	s.propagateSamples()
	return nil
}

// Samples returns the shared sample count.
func (s *Spline) Samples() int { return s.samples }

// Mode returns the orientation interpolation mode.
func (s *Spline) Mode() OrientationMode { return s.mode }

// Coords samples the translation curve: x, y, z per sample.
func (s *Spline) Coords() ([]float64, error) {
	if err := s.split(); err != nil {
		return nil, err
	}
	return s.translation.Compute(false)
}

// Angles samples the orientation curve: Euler degrees per sample.
func (s *Spline) Angles() ([]float64, error) {
	if err := s.split(); err != nil {
		return nil, err
	}
	return s.computeAngles()
}

// Trajectory samples both curves and zips them into pose samples.
func (s *Spline) Trajectory() (Trajectory, error) {
	if err := s.split(); err != nil {
		return nil, err
	}

	coords, err := s.translation.Compute(false)
	if err != nil {
		return nil, err
	}
	angles, err := s.computeAngles()
	if err != nil {
		return nil, err
	}

	if len(coords) != len(angles) || len(coords)%eulerAxes != 0 {
		s.reporter.Exception("Translation (%d values) and orientation (%d values) are not frame-aligned",
			len(coords), len(angles))
		return nil, fmt.Errorf("%w: %d translation values, %d orientation values",
			ErrShapeMismatch, len(coords), len(angles))
	}

	out := make(Trajectory, len(coords)/eulerAxes)
	for i := range out {
		j := i * eulerAxes
		out[i] = PoseSample{
			Position:    r3.Vec{X: coords[j], Y: coords[j+1], Z: coords[j+2]},
			Orientation: r3.Vec{X: angles[j], Y: angles[j+1], Z: angles[j+2]},
		}
	}

	return out, nil
}

// Delete clears the pose stream and restores DefaultSamples.
func (s *Spline) Delete() {
	s.poses = []r3.Vec{}
	s.samples = DefaultSamples
	s.translation.Delete()
	s.orientation.Delete()
	s.spherical.Delete()
}

// split is the precondition of every read view: it checks a pose stream is
// present and distributes it to the sub-curves with the shared sample count.
func (s *Spline) split() error {
	if len(s.poses) == 0 {
		return ErrEmptyCurve
	}

	half := len(s.poses) / poseStride
	positions := make([]Point, 0, half)
	orientations := make([]Point, 0, half)
	eulers := make([]r3.Vec, 0, half)
	for i, p := range s.poses {
		if i%poseStride == 0 {
			positions = append(positions, P3(p.X, p.Y, p.Z))
		} else {
			orientations = append(orientations, P3(p.X, p.Y, p.Z))
			eulers = append(eulers, p)
		}
	}

	if err := s.translation.SetPoints(positions); err != nil {
		return err
	}

	var err error
	if s.mode == OrientationLinear {
		err = s.orientation.SetPoints(orientations)
	} else {
		err = s.spherical.SetAngles(eulers)
	}
	if err != nil {
		return err
	}

	s.propagateSamples()
	return nil
}

func (s *Spline) propagateSamples() {
	// Counts are validated by SetSamples, so the sub-curves accept them.
	_ = s.translation.SetSamples(s.samples)
	_ = s.orientation.SetSamples(s.samples)
	_ = s.spherical.SetSamples(s.samples)
}

func (s *Spline) computeAngles() ([]float64, error) {
	if s.mode == OrientationLinear {
		return s.orientation.Compute(false)
	}
	return s.spherical.Compute()
}
