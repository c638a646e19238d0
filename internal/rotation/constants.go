package rotation

const (
	half               = 0.5
	degreesPerHalfTurn = 180.0

	// epsilon bounds the slerp linear fallback and the Euler singularity checks.
	epsilon = 1e-6
)
