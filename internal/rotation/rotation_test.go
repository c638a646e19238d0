package rotation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-bezier/internal/report"
)

const quatTolerance = 1e-9

func assertQuatInDelta(t *testing.T, expected, actual Quat, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected.Real, actual.Real, delta, msgAndArgs...)
	assert.InDelta(t, expected.Imag, actual.Imag, delta, msgAndArgs...)
	assert.InDelta(t, expected.Jmag, actual.Jmag, delta, msgAndArgs...)
	assert.InDelta(t, expected.Kmag, actual.Kmag, delta, msgAndArgs...)
}

// sameRotation compares quaternions up to sign, since q and -q encode the same rotation.
func sameRotation(t *testing.T, expected, actual Quat, delta float64) {
	t.Helper()
	assert.InDelta(t, 1.0, math.Abs(Dot(expected, actual)), delta,
		"quaternions %v and %v describe different rotations", expected, actual)
}

func TestFromEuler_Identity(t *testing.T) {
	assertQuatInDelta(t, Identity(), FromEuler(r3.Vec{}), quatTolerance)
}

func TestFromEuler_SingleAxis(t *testing.T) {
	s := math.Sqrt2 / 2

	tests := []struct {
		name     string
		angles   r3.Vec
		expected Quat
	}{
		{"Pitch 90", r3.Vec{X: 90}, Quat{Real: s, Imag: s}},
		{"Yaw 90", r3.Vec{Y: 90}, Quat{Real: s, Jmag: s}},
		{"Roll 90", r3.Vec{Z: 90}, Quat{Real: s, Kmag: s}},
		{"Roll 180", r3.Vec{Z: 180}, Quat{Kmag: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := FromEuler(tt.angles)
			assertQuatInDelta(t, tt.expected, q, quatTolerance)
			assert.InDelta(t, 1.0, quat.Abs(q), quatTolerance, "FromEuler should return a unit quaternion")
		})
	}
}

func TestEuler_RoundTrip(t *testing.T) {
	cases := []r3.Vec{
		{},
		{X: 10, Y: 20, Z: 30},
		{X: -45, Y: 60, Z: 120},
		{X: 170, Y: -80, Z: -170},
		{X: 0, Y: 0, Z: 90},
	}

	for _, angles := range cases {
		got := ToEuler(FromEuler(angles))
		assert.InDelta(t, angles.X, got.X, 1e-7, "pitch for %v", angles)
		assert.InDelta(t, angles.Y, got.Y, 1e-7, "yaw for %v", angles)
		assert.InDelta(t, angles.Z, got.Z, 1e-7, "roll for %v", angles)
	}
}

func TestToEuler_SignInvariant(t *testing.T) {
	q := FromEuler(r3.Vec{X: 12, Y: -34, Z: 56})
	a := ToEuler(q)
	b := ToEuler(quat.Scale(-1, q))
	assert.InDelta(t, a.X, b.X, 1e-9)
	assert.InDelta(t, a.Y, b.Y, 1e-9)
	assert.InDelta(t, a.Z, b.Z, 1e-9)
}

func TestSlerp_Endpoints(t *testing.T) {
	p := FromEuler(r3.Vec{X: 10, Y: 20, Z: 30})
	q := FromEuler(r3.Vec{X: -40, Y: 50, Z: 100})

	sameRotation(t, p, Slerp(p, q, 0), quatTolerance)
	sameRotation(t, q, Slerp(p, q, 1), quatTolerance)
}

func TestSlerp_Midpoint(t *testing.T) {
	p := Identity()
	q := FromEuler(r3.Vec{Z: 90})

	mid := Slerp(p, q, 0.5)
	sameRotation(t, FromEuler(r3.Vec{Z: 45}), mid, quatTolerance)
	assert.InDelta(t, 1.0, quat.Abs(mid), quatTolerance)
}

func TestSlerp_ShortestArc(t *testing.T) {
	p := FromEuler(r3.Vec{Z: 10})
	q := quat.Scale(-1, FromEuler(r3.Vec{Z: 30}))

	mid := Slerp(p, q, 0.5)
	sameRotation(t, FromEuler(r3.Vec{Z: 20}), mid, quatTolerance)
}

func TestSlerp_NearlyParallel(t *testing.T) {
	p := FromEuler(r3.Vec{Z: 10})
	q := FromEuler(r3.Vec{Z: 10.00001})

	out := Slerp(p, q, 0.5)
	require.True(t, IsFinite(out))
	sameRotation(t, p, out, 1e-9)
}

func TestDouble(t *testing.T) {
	var rec report.Recorder
	p := FromEuler(r3.Vec{Z: 0})
	q := FromEuler(r3.Vec{Z: 30})

	// Reflecting p through q lands twice as far along the same arc.
	d := Double(&rec, p, q)
	sameRotation(t, FromEuler(r3.Vec{Z: 60}), d, quatTolerance)
	assert.InDelta(t, 1.0, quat.Abs(d), quatTolerance)
	assert.Zero(t, rec.Len())
}

func TestDouble_NonFinite(t *testing.T) {
	var rec report.Recorder
	d := Double(&rec, Quat{Real: math.NaN()}, Identity())
	assert.Equal(t, Identity(), d)
	assert.Len(t, rec.Exceptions, 1)
}

func TestBisect(t *testing.T) {
	var rec report.Recorder
	p := FromEuler(r3.Vec{Z: 20})
	q := FromEuler(r3.Vec{Z: 80})

	b := Bisect(&rec, p, q)
	sameRotation(t, FromEuler(r3.Vec{Z: 50}), b, quatTolerance)
	assert.Zero(t, rec.Len())
}

func TestBisect_Antipodal(t *testing.T) {
	var rec report.Recorder
	p := FromEuler(r3.Vec{X: 30})

	b := Bisect(&rec, p, quat.Scale(-1, p))
	assert.Equal(t, Identity(), b)
	assert.Len(t, rec.Exceptions, 1)
}

func TestNormalize(t *testing.T) {
	q, ok := Normalize(Quat{Real: 3, Imag: 4})
	require.True(t, ok)
	assertQuatInDelta(t, Quat{Real: 0.6, Imag: 0.8}, q, quatTolerance)

	_, ok = Normalize(Quat{})
	assert.False(t, ok)
}

func BenchmarkSlerp(b *testing.B) {
	p := FromEuler(r3.Vec{X: 10, Y: 20, Z: 30})
	q := FromEuler(r3.Vec{X: -40, Y: 50, Z: 100})
	var sink Quat
	for b.Loop() {
		sink = Slerp(p, q, 0.37)
	}
	_ = sink
}
