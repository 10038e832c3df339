package supball

// interiorBisectIters fixes the bisection depth. 60 halvings resolve the
// radius to OscBound·2⁻⁶⁰, below float64 noise for any sane bound.
const interiorBisectIters = 60

// InteriorBall returns the largest radius ρ ∈ [0, OscBound] such that a
// sweep displaced by ρ·e^{iθ_k} keeps every ray within the imaginary-part
// tolerance. It is the dual of Solve: instead of enclosing the admissible
// excursions, it measures how far the target can be inflated before any
// direction turns inadmissible.
//
// ρ = 0 is always admissible (the phase increment vanishes), so the result
// is well defined and ≥ 0. The boundary is located by deterministic
// bisection on the all-rays-admissible predicate; for phase polynomials
// whose admissibility is not monotone in ρ the result is the boundary of
// the first inadmissible shell the bisection brackets.
//
// Validation and error conditions match Solve, except that
// ErrAllSamplesInvalid cannot occur.
func InteriorBall(p Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	gAtTarget := evalPhase(p.Coeffs, p.Target)

	allAdmissible := func(scale float64) bool {
		for k := 0; k < p.Rays; k++ {
			z := sampleRay(p.Coeffs, p.Freq, p.Target, gAtTarget, scale, rayAngle(k, p.Rays))
			if !admissible(z, p.ImagThreshold) {
				return false
			}
		}
		return true
	}

	if allAdmissible(p.OscBound) {
		return p.OscBound, nil
	}

	lo, hi := 0.0, p.OscBound // lo admissible, hi not
	for i := 0; i < interiorBisectIters; i++ {
		mid := lo + (hi-lo)/2
		if allAdmissible(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, nil
}
