// Package simdops provides the SIMD-accelerated kernels used to blend Bezier
// basis columns, for both float32 and float64 samples.
//
// Curves are evaluated column-wise: every control point contributes one
// basis column spanning all sample parameters, and a coordinate axis is the
// scaled sum of those columns. Scaling a column is the hot operation and is
// delegated to github.com/tphakala/simd.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
// Function pointers allow type-safe generic code while delegating
// to optimized type-specific implementations.
type Ops[F Float] struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)

	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []F)
}

// Pre-instantiated operations for each float type.
var (
	ops32 = Ops[float32]{
		Scale:       f32.Scale,
		Interleave2: f32.Interleave2,
	}
	ops64 = Ops[float64]{
		Scale:       f64.Scale,
		Interleave2: f64.Interleave2,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// AccumulateScaled adds column scaled by s into acc: acc[i] += column[i] * s.
// scratch must be at least len(column) long. When round is non-nil each scaled
// term is rounded before it is accumulated.
func AccumulateScaled[F Float](acc, column, scratch []F, s F, round func(F) F) {
	n := len(column)
	scratch = scratch[:n]
	For[F]().Scale(scratch, column, s)

	if round == nil {
		for i := range n {
			acc[i] += scratch[i]
		}
		return
	}

	for i := range n {
		acc[i] += round(scratch[i])
	}
}

// Interleave flattens per-axis columns into sample-major order:
// x0, y0[, z0], x1, y1[, z1], ...
// All axes must have the same length.
func Interleave[F Float](axes [][]F) []F {
	if len(axes) == 0 {
		return []F{}
	}

	n := len(axes[0])
	dst := make([]F, n*len(axes))

	if len(axes) == 2 {
		For[F]().Interleave2(dst, axes[0], axes[1])
		return dst
	}

	for a, axis := range axes {
		for i, v := range axis {
			dst[i*len(axes)+a] = v
		}
	}
	return dst
}

// Info describes the SIMD instruction sets available on this CPU.
func Info() string {
	return cpu.Info()
}
