// Package rotation provides the quaternion primitives behind spherical Bezier
// interpolation: Euler conversion, slerp, and Ken Shoemake's arc double and
// arc bisect constructions.
//
// Quaternions are gonum quat.Number values with Real as the scalar part.
// Euler triples use the pitch (X), yaw (Y), roll (Z) convention of GLM and are
// expressed in degrees at the package boundary.
package rotation

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-bezier/internal/mathutil"
	"github.com/tphakala/go-bezier/internal/report"
)

// Quat is a rotation quaternion.
type Quat = quat.Number

// Identity returns the quaternion of the null rotation.
func Identity() Quat {
	return Quat{Real: 1}
}

// Dot returns the four-component dot product of p and q.
func Dot(p, q Quat) float64 {
	return p.Real*q.Real + p.Imag*q.Imag + p.Jmag*q.Jmag + p.Kmag*q.Kmag
}

// Normalize returns q scaled to unit length.
// The second result is false when q has zero or non-finite length.
func Normalize(q Quat) (Quat, bool) {
	n := quat.Abs(q)
	if n == 0 || !mathutil.IsFinite(n) {
		return Identity(), false
	}
	return quat.Scale(1/n, q), true
}

// IsFinite reports whether all four components are finite.
func IsFinite(q Quat) bool {
	return mathutil.IsFinite(q.Real, q.Imag, q.Jmag, q.Kmag)
}

// FromEuler converts Euler angles in degrees to a unit quaternion.
func FromEuler(deg r3.Vec) Quat {
	hx := radians(deg.X) * half
	hy := radians(deg.Y) * half
	hz := radians(deg.Z) * half

	cx, sx := math.Cos(hx), math.Sin(hx)
	cy, sy := math.Cos(hy), math.Sin(hy)
	cz, sz := math.Cos(hz), math.Sin(hz)

	return Quat{
		Real: cx*cy*cz + sx*sy*sz,
		Imag: sx*cy*cz - cx*sy*sz,
		Jmag: cx*sy*cz + sx*cy*sz,
		Kmag: cx*cy*sz - sx*sy*cz,
	}
}

// ToEuler converts q to Euler angles in degrees.
// Yaw is clamped to [-90, 90]; q and -q yield the same angles.
func ToEuler(q Quat) r3.Vec {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	var pitch float64
	py := 2 * (y*z + w*x)
	px := w*w - x*x - y*y + z*z
	if math.Abs(py) < epsilon && math.Abs(px) < epsilon {
		pitch = 2 * math.Atan2(x, w)
	} else {
		pitch = math.Atan2(py, px)
	}

	yaw := math.Asin(clamp(-2*(x*z-w*y), -1, 1))

	var roll float64
	ry := 2 * (x*y + w*z)
	rx := w*w + x*x - y*y - z*z
	if math.Abs(ry) >= epsilon || math.Abs(rx) >= epsilon {
		roll = math.Atan2(ry, rx)
	}

	return r3.Vec{X: degrees(pitch), Y: degrees(yaw), Z: degrees(roll)}
}

// Slerp spherically interpolates from p to q by u along the shorter arc.
// Nearly parallel inputs fall back to linear interpolation, which avoids a
// division by sin(θ) ≈ 0.
func Slerp(p, q Quat, u float64) Quat {
	cosTheta := Dot(p, q)
	if cosTheta < 0 {
		q = quat.Scale(-1, q)
		cosTheta = -cosTheta
	}

	if cosTheta > 1-epsilon {
		return quat.Add(quat.Scale(1-u, p), quat.Scale(u, q))
	}

	theta := math.Acos(cosTheta)
	sinTheta := math.Sin(theta)
	return quat.Scale(1/sinTheta, quat.Add(
		quat.Scale(math.Sin((1-u)*theta), p),
		quat.Scale(math.Sin(u*theta), q),
	))
}

// Double returns the arc double of p through q, 2(p·q)q - p: the reflection
// of p through q on the unit sphere. A non-finite result is reported and the
// identity is returned.
func Double(r report.Reporter, p, q Quat) Quat {
	d := quat.Sub(quat.Scale(2*Dot(p, q), q), p)
	if !IsFinite(d) {
		r.Exception("unable to compute arc double of %v through %v", p, q)
		return Identity()
	}
	return d
}

// Bisect returns normalize(p + q), the unit quaternion halfway along the arc
// from p to q. Antipodal or non-finite inputs are reported and the identity is
// returned.
func Bisect(r report.Reporter, p, q Quat) Quat {
	b, ok := Normalize(quat.Add(p, q))
	if !ok {
		r.Exception("unable to compute arc bisector of %v and %v", p, q)
		return Identity()
	}
	return b
}

func radians(deg float64) float64 { return deg * math.Pi / degreesPerHalfTurn }
func degrees(rad float64) float64 { return rad * degreesPerHalfTurn / math.Pi }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
