package supball

import (
	"fmt"
	"math"
)

// Params contains the inputs of one enclosing-ball computation.
// All fields are read-only for the duration of the call; the solver never
// mutates Coeffs.
type Params struct {
	// Coeffs holds the phase polynomial coefficients in ascending powers:
	// g(z) = Coeffs[0] + Coeffs[1]·z + ... Must be non-empty.
	Coeffs []complex128

	// Freq is the oscillation frequency ω scaling the phase increment.
	Freq float64

	// Target is the point ξ the ball is centered on.
	Target complex128

	// OscBound is the safety ceiling on the returned radius. The
	// aggregate is clamped to it, never silently exceeded.
	OscBound float64

	// Rays is the number of uniformly spaced sampling directions. Must
	// be ≥ 1; Rays = 1 samples only θ = 0.
	Rays int

	// TakeMax selects the aggregate: true reports the supremum of the
	// surviving magnitudes (enclosing ball), false the infimum.
	TakeMax bool

	// ImagThreshold is the admissibility tolerance on |Im z_k|. Must be
	// ≥ 0; zero admits only purely real samples.
	ImagThreshold float64
}

// Validate checks the call-boundary preconditions. Every violation wraps
// ErrInvalidInput.
func (p Params) Validate() error {
	if len(p.Coeffs) == 0 {
		return fmt.Errorf("%w: empty coefficient vector", ErrInvalidInput)
	}
	if p.Rays < 1 {
		return fmt.Errorf("%w: rays = %d, need ≥ 1", ErrInvalidInput, p.Rays)
	}
	if p.ImagThreshold < 0 || math.IsNaN(p.ImagThreshold) {
		return fmt.Errorf("%w: imag threshold = %v, need ≥ 0", ErrInvalidInput, p.ImagThreshold)
	}
	if p.OscBound < 0 || math.IsNaN(p.OscBound) {
		return fmt.Errorf("%w: oscillation bound = %v, need ≥ 0", ErrInvalidInput, p.OscBound)
	}
	if math.IsNaN(p.Freq) {
		return fmt.Errorf("%w: frequency is NaN", ErrInvalidInput)
	}
	return nil
}

// Solve computes the radius of the smallest enclosing ball under the
// ray-sampling approximation.
//
// For each direction θ_k = 2πk/Rays it evaluates the frequency-scaled
// phase increment
//
//	z_k = Freq · (g(Target + e^{iθ_k}) − g(Target))
//
// discards samples with |Im z_k| > ImagThreshold, reduces the surviving
// |z_k| with max (TakeMax) or min, and clamps the result to OscBound.
//
// The call either fully succeeds with a finite radius r ≥ 0 or fails
// atomically: ErrInvalidInput on a precondition violation,
// ErrAllSamplesInvalid when no ray survives the filter.
func Solve(p Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	gAtTarget := evalPhase(p.Coeffs, p.Target)

	var (
		aggregate float64
		survivors int
	)
	for k := 0; k < p.Rays; k++ {
		z := sampleRay(p.Coeffs, p.Freq, p.Target, gAtTarget, 1, rayAngle(k, p.Rays))
		if !admissible(z, p.ImagThreshold) {
			continue
		}
		aggregate = fold(aggregate, magnitude(z), survivors, p.TakeMax)
		survivors++
	}

	if survivors == 0 {
		return 0, fmt.Errorf("%w: %d rays discarded by threshold %v",
			ErrAllSamplesInvalid, p.Rays, p.ImagThreshold)
	}

	return clampRadius(aggregate, p.OscBound), nil
}

// magnitude is the real-valued size of one sample, |z_k|.
func magnitude(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// fold combines one more surviving magnitude into the running aggregate.
// The first survivor seeds the aggregate; max and min are associative and
// commutative, so any fold order yields the same result.
func fold(acc, m float64, seen int, takeMax bool) float64 {
	if seen == 0 {
		return m
	}
	if takeMax {
		return math.Max(acc, m)
	}
	return math.Min(acc, m)
}

// clampRadius applies the oscillation bound as a ceiling. Exceeding the
// bound is not an error; it is clamped.
func clampRadius(r, bound float64) float64 {
	if r > bound {
		return bound
	}
	return r
}
