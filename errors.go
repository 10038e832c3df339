package supball

import "errors"

// Sentinel errors for the two failure kinds. Callers discriminate with
// errors.Is; every returned error wraps one of these with context.
var (
	// ErrInvalidInput reports a precondition violation at the call
	// boundary. Not retryable without correcting the input.
	ErrInvalidInput = errors.New("supball: invalid input")

	// ErrAllSamplesInvalid reports that the imaginary-part filter
	// discarded every ray, so no aggregate exists. Retryable by relaxing
	// ImagThreshold or changing the ray count.
	ErrAllSamplesInvalid = errors.New("supball: all ray samples invalid")

	// ErrStationaryPoint reports that steepest-descent integration hit a
	// zero of the phase derivative, where the path ODE is singular.
	ErrStationaryPoint = errors.New("supball: stationary point on path")
)
