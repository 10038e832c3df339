package supball

import (
	"math"
	"math/cmplx"
)

// evalPhase evaluates the phase polynomial g(z) = Σ coeffs[j]·z^j by
// Horner's method. Coefficients are in ascending powers.
func evalPhase(coeffs []complex128, z complex128) complex128 {
	acc := complex(0, 0)
	for j := len(coeffs) - 1; j >= 0; j-- {
		acc = acc*z + coeffs[j]
	}
	return acc
}

// phaseDerivative returns the coefficients of g'(z).
// len(coeffs) must be ≥ 2; the caller validates.
func phaseDerivative(coeffs []complex128) []complex128 {
	deriv := make([]complex128, len(coeffs)-1)
	for j := 1; j < len(coeffs); j++ {
		deriv[j-1] = complex(float64(j), 0) * coeffs[j]
	}
	return deriv
}

// rayAngle returns θ_k = 2πk/rays, the k-th direction of the uniform fan.
func rayAngle(k, rays int) float64 {
	return 2 * math.Pi * float64(k) / float64(rays)
}

// sampleRay evaluates the candidate value for one direction:
//
//	z_k = ω · (g(ξ + s·e^{iθ}) − g(ξ))
//
// the frequency-scaled phase increment along a displacement of length s in
// direction θ from the target. gAtTarget is g(ξ), hoisted out of the loop
// by the caller.
func sampleRay(coeffs []complex128, freq float64, target, gAtTarget complex128, scale, theta float64) complex128 {
	w := target + complex(scale, 0)*cmplx.Exp(complex(0, theta))
	return complex(freq, 0) * (evalPhase(coeffs, w) - gAtTarget)
}

// admissible reports whether a sample survives the imaginary-part filter.
// Samples with |Im z| > thresh are numerically invalid excursions; they are
// excluded from aggregation, not treated as fatal. NaN never passes.
func admissible(z complex128, thresh float64) bool {
	return math.Abs(imag(z)) <= thresh
}
