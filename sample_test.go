package supball

import (
	"math"
	"math/cmplx"
	"testing"
)

// TestEvalPhase checks Horner evaluation against the expanded polynomial.
func TestEvalPhase(t *testing.T) {
	// g(z) = 1 + 2z + 3z² at z = 2: 1 + 4 + 12 = 17
	if got := evalPhase([]complex128{1, 2, 3}, 2); got != 17 {
		t.Errorf("evalPhase: expected 17, got %v", got)
	}

	// Complex coefficients: g(z) = i + (1+i)z at z = i: i + (1+i)i = -1 + 2i
	got := evalPhase([]complex128{complex(0, 1), complex(1, 1)}, complex(0, 1))
	if got != complex(-1, 2) {
		t.Errorf("evalPhase: expected -1+2i, got %v", got)
	}

	// Empty-sum convention at z = 0 returns the constant term.
	if got := evalPhase([]complex128{complex(4, -3)}, 0); got != complex(4, -3) {
		t.Errorf("evalPhase: expected constant term, got %v", got)
	}
}

// TestPhaseDerivative checks the coefficient shift-and-scale.
func TestPhaseDerivative(t *testing.T) {
	// d/dz (1 + 2z + 3z²) = 2 + 6z
	deriv := phaseDerivative([]complex128{1, 2, 3})
	if len(deriv) != 2 || deriv[0] != 2 || deriv[1] != 6 {
		t.Errorf("phaseDerivative: expected [2 6], got %v", deriv)
	}
}

// TestRayAngle checks the uniform fan.
func TestRayAngle(t *testing.T) {
	if got := rayAngle(0, 4); got != 0 {
		t.Errorf("rayAngle(0,4): expected 0, got %v", got)
	}
	if got := rayAngle(1, 4); got != math.Pi/2 {
		t.Errorf("rayAngle(1,4): expected π/2, got %v", got)
	}
	if got := rayAngle(2, 4); got != math.Pi {
		t.Errorf("rayAngle(2,4): expected π, got %v", got)
	}
}

// TestSampleRay checks the modulation law closed form for g(z) = z²:
// z_k = ω·((ξ + s·e^{iθ})² − ξ²).
func TestSampleRay(t *testing.T) {
	coeffs := []complex128{0, 0, 1}
	target := complex(1, 0)
	gAtTarget := evalPhase(coeffs, target)

	// θ = 0, s = 1: (1+1)² − 1 = 3, scaled by ω = 2 → 6.
	z := sampleRay(coeffs, 2.0, target, gAtTarget, 1, 0)
	if cmplx.Abs(z-6) > 1e-12 {
		t.Errorf("sampleRay: expected 6, got %v", z)
	}

	// s = 0 collapses every direction to the target: zero increment.
	z = sampleRay(coeffs, 2.0, target, gAtTarget, 0, 1.234)
	if z != 0 {
		t.Errorf("sampleRay at zero scale: expected 0, got %v", z)
	}
}

// TestAdmissible checks the filter boundary and NaN behavior.
func TestAdmissible(t *testing.T) {
	if !admissible(complex(5, 1), 1.0) {
		t.Error("Sample at the threshold boundary should be admissible")
	}
	if admissible(complex(0, 1.0001), 1.0) {
		t.Error("Sample beyond the threshold should be inadmissible")
	}
	if !admissible(complex(3, -0.5), 1.0) {
		t.Error("Negative imaginary part within tolerance should be admissible")
	}
	if admissible(complex(0, math.NaN()), 1.0) {
		t.Error("NaN imaginary part must never be admissible")
	}
}
