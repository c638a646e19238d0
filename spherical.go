package bezier

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-bezier/internal/mathutil"
	"github.com/tphakala/go-bezier/internal/rotation"
	"github.com/tphakala/go-bezier/internal/simdops"
)

// SphericalCurve interpolates a sequence of orientations on the unit
// quaternion sphere, which keeps the motion free of gimbal lock.
//
// Orientations are Euler angle triples in degrees (X pitch, Y yaw, Z roll).
// They are converted to quaternions, interpolated with De Casteljau's
// algorithm using slerp in place of linear interpolation, and converted back
// to Euler degrees.
//
//   - one orientation is returned unchanged;
//   - two orientations are slerped directly;
//   - three orientations use Ken Shoemake's cubic construction, in which the
//     first orientation only shapes the tangent and the curve runs from the
//     second to the third;
//   - more orientations are reduced by repeated pairwise slerp.
//
// Output angles are the canonical Euler form of each rotation, with yaw in
// [-90, 90]. An input triple outside that range comes back as an equivalent
// triple: (0, 120, 0) samples as (180, 60, 180).
//
// A SphericalCurve is not safe for concurrent use.
type SphericalCurve struct {
	reporter Reporter

	angles  []r3.Vec
	samples int

	// interpolateEnds replaces the three-orientation Shoemake construction
	// with pairwise slerp, so the curve starts at the first orientation.
	interpolateEnds bool
}

// NewSphericalCurve creates an empty spherical curve.
func NewSphericalCurve(opts ...Option) *SphericalCurve {
	o := newOptions(opts)
	s := &SphericalCurve{reporter: o.reporter}
	s.Delete()

	if err := checkSamples(s.reporter, o.samples); err == nil {
		s.samples = o.samples
	}

	return s
}

// SetAngles replaces the orientation control sequence.
// On error the curve is left unchanged.
func (s *SphericalCurve) SetAngles(angles []r3.Vec) error {
	for i, a := range angles {
		if !mathutil.IsFinite(a.X, a.Y, a.Z) {
			s.reporter.ValidationFailure("Angle set %d is not finite: %v", i, a)
			return fmt.Errorf("%w: angle set %d", ErrNonFinite, i)
		}
	}

	s.angles = append([]r3.Vec{}, angles...)
	return nil
}

// SetSamples sets the number of samples produced by Compute.
// A negative count is reported, resets the curve and returns ErrNegativeSamples.
func (s *SphericalCurve) SetSamples(m int) error {
	if err := checkSamples(s.reporter, m); err != nil {
		s.Delete()
		return err
	}
	s.samples = m
	return nil
}

// Samples returns the configured sample count.
func (s *SphericalCurve) Samples() int { return s.samples }

// Angles returns a copy of the orientation control sequence.
func (s *SphericalCurve) Angles() []r3.Vec { return append([]r3.Vec{}, s.angles...) }

// Delete resets the curve to no orientations and DefaultSamples.
func (s *SphericalCurve) Delete() {
	s.angles = []r3.Vec{}
	s.samples = DefaultSamples
}

// Compute samples the curve and returns Euler angles in degrees, interleaved
// per sample and rounded to three decimals. A single orientation is returned
// unconverted, rounded, regardless of the sample count.
func (s *SphericalCurve) Compute() ([]float64, error) {
	if len(s.angles) == 1 {
		a := s.angles[0]
		return mathutil.RoundSlice([]float64{a.X, a.Y, a.Z}), nil
	}

	quats, err := s.ComputeQuats()
	if err != nil {
		return nil, err
	}

	axes := [][]float64{
		make([]float64, len(quats)),
		make([]float64, len(quats)),
		make([]float64, len(quats)),
	}
	for i, q := range quats {
		e := rotation.ToEuler(q)
		axes[0][i] = mathutil.Round(e.X)
		axes[1][i] = mathutil.Round(e.Y)
		axes[2][i] = mathutil.Round(e.Z)
	}

	return simdops.Interleave(axes), nil
}

// ComputeQuats samples the curve and returns unit quaternions.
//
// Samples are evaluated independently. A sample whose quaternion is not
// finite is reported and replaced by the identity rotation; its neighbours
// are unaffected.
func (s *SphericalCurve) ComputeQuats() ([]quat.Number, error) {
	if len(s.angles) == 0 {
		return nil, ErrEmptyCurve
	}

	qs := make([]rotation.Quat, len(s.angles))
	for i, a := range s.angles {
		qs[i] = rotation.FromEuler(a)
	}

	if len(qs) == 1 {
		return qs, nil
	}

	ts := mathutil.Linspace(s.samples)
	out := make([]rotation.Quat, len(ts))

	var eval func(u float64) rotation.Quat
	switch {
	case len(qs) == anglesSlerp:
		eval = func(u float64) rotation.Quat { return rotation.Slerp(qs[0], qs[1], u) }
	case len(qs) == anglesShoemake && !s.interpolateEnds:
		an := rotation.Bisect(s.reporter, rotation.Double(s.reporter, qs[0], qs[1]), qs[2])
		bn := rotation.Double(s.reporter, an, qs[2])
		eval = func(u float64) rotation.Quat { return shoemake(qs[1], an, bn, qs[2], u) }
	default:
		scratch := make([]rotation.Quat, len(qs))
		eval = func(u float64) rotation.Quat { return slerpCasteljau(qs, scratch, u) }
	}

	for i, u := range ts {
		q := eval(u)
		if !rotation.IsFinite(q) {
			s.reporter.Warning("Spherical Bezier sample %d (u=%v) is not finite, substituting identity", i, u)
			q = rotation.Identity()
		}
		out[i] = q
	}

	return out, nil
}

// shoemake evaluates the cubic spherical Bezier segment from q1 to q2 with
// inner control quaternions an and bn.
func shoemake(q1, an, bn, q2 rotation.Quat, u float64) rotation.Quat {
	p1 := rotation.Slerp(q1, an, u)
	p2 := rotation.Slerp(an, bn, u)
	p3 := rotation.Slerp(bn, q2, u)
	p12 := rotation.Slerp(p1, p2, u)
	p23 := rotation.Slerp(p2, p3, u)
	return rotation.Slerp(p12, p23, u)
}

// slerpCasteljau reduces the control quaternions by repeated pairwise slerp.
// scratch must hold len(qs) entries; qs is not modified.
func slerpCasteljau(qs, scratch []rotation.Quat, u float64) rotation.Quat {
	copy(scratch, qs)
	for n := len(qs) - 1; n > 0; n-- {
		for i := range n {
			scratch[i] = rotation.Slerp(scratch[i], scratch[i+1], u)
		}
	}
	return scratch[0]
}
