package bezier

import "github.com/tphakala/go-bezier/internal/mathutil"

// DefaultSamples is the sample count of a new or deleted curve.
const DefaultSamples = 100

// MaxDegree is the highest degree a Curve accepts; its binomial coefficients
// are the largest that fit in an int.
const MaxDegree = mathutil.MaxDegree

// Fixed arity of the closed-form evaluators
const (
	pointsLinear    = 2
	pointsQuadratic = 3
	pointsCubic     = 4
)

// Supported point dimensions
const (
	minAxes = 2
	maxAxes = 3
)

// Spherical engine special cases
const (
	anglesSlerp    = 2 // direct slerp between two orientations
	anglesShoemake = 3 // Shoemake's cubic construction
)

// eulerAxes is the length of an orientation triple.
const eulerAxes = 3

// poseStride is the number of stream entries per pose: one position, one orientation.
const poseStride = 2
