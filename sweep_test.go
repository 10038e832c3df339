package supball

import (
	"errors"
	"math"
	"testing"
)

// TestAnalyzeConvergence_ImmediateLock uses g(z) = z, where every ray has
// magnitude ω: the radius locks in at the first comparison.
func TestAnalyzeConvergence_ImmediateLock(t *testing.T) {
	p := Params{
		Coeffs:        []complex128{0, 1},
		Freq:          3.0,
		Target:        0,
		OscBound:      100.0,
		Rays:          1, // overridden per level
		TakeMax:       true,
		ImagThreshold: 10.0,
	}

	analysis, err := AnalyzeConvergence(p, ConvergenceConfig{
		MinRays:   1,
		MaxRays:   64,
		Tolerance: 1e-9,
	})
	if err != nil {
		t.Fatalf("AnalyzeConvergence failed: %v", err)
	}

	PrintConvergence(t, analysis)

	if !analysis.Converged {
		t.Fatal("Expected convergence for constant-magnitude fan")
	}
	if analysis.RaysAtConvergence != 2 {
		t.Errorf("Expected convergence at R=2, got R=%d", analysis.RaysAtConvergence)
	}
	if math.Abs(analysis.StableRadius-3.0) > 1e-12 {
		t.Errorf("Expected stable radius 3 (= ω), got %v", analysis.StableRadius)
	}
}

// TestAnalyzeConvergence_MaxMonotone uses g(z) = z + z² with the max
// aggregate: doubling a fan keeps every previous direction, so the
// supremum aggregate can only grow under refinement.
func TestAnalyzeConvergence_MaxMonotone(t *testing.T) {
	p := Params{
		Coeffs:        []complex128{0, 1, 1},
		Freq:          1.0,
		Target:        complex(0.1, 0),
		OscBound:      100.0,
		Rays:          1,
		TakeMax:       true,
		ImagThreshold: 100.0,
	}

	analysis, err := AnalyzeConvergence(p, ConvergenceConfig{
		MinRays:   2,
		MaxRays:   8192,
		Tolerance: 1e-10,
	})
	if err != nil {
		t.Fatalf("AnalyzeConvergence failed: %v", err)
	}

	PrintConvergence(t, analysis)

	if !analysis.Converged {
		t.Error("Expected convergence within 8192 rays")
	}

	// With every ray admissible, doubling a fan keeps all previous
	// directions, so the max aggregate is monotone nondecreasing.
	var prev float64
	for i, point := range analysis.Points {
		if point.Skipped {
			t.Fatalf("Unexpected skipped level at R=%d", point.Rays)
		}
		if i > 0 && point.Radius < prev-1e-15 {
			t.Errorf("Max aggregate decreased under refinement: %v → %v at R=%d",
				prev, point.Radius, point.Rays)
		}
		prev = point.Radius
	}
}

// TestAnalyzeConvergence_SkipsInadmissibleLevels builds a fan where only
// rays near the imaginary axis are admissible: coarse fans miss them
// entirely and must be recorded as skipped, not fatal.
func TestAnalyzeConvergence_SkipsInadmissibleLevels(t *testing.T) {
	p := Params{
		Coeffs:        []complex128{0, complex(0, 1)}, // g = i·z, Im z_k = cos θ_k
		Freq:          1.0,
		Target:        0,
		OscBound:      100.0,
		Rays:          1,
		TakeMax:       true,
		ImagThreshold: 1e-10,
	}

	analysis, err := AnalyzeConvergence(p, ConvergenceConfig{
		MinRays:   1,
		MaxRays:   64,
		Tolerance: 1e-9,
	})
	if err != nil {
		t.Fatalf("AnalyzeConvergence failed: %v", err)
	}

	PrintConvergence(t, analysis)

	if !analysis.Points[0].Skipped || !analysis.Points[1].Skipped {
		t.Error("Expected R=1 and R=2 levels to be skipped (no ray near the admissible axis)")
	}
	if !analysis.Converged {
		t.Error("Expected convergence once the fan reaches the admissible directions")
	}
	if math.Abs(analysis.StableRadius-1.0) > 1e-12 {
		t.Errorf("Expected stable radius 1, got %v", analysis.StableRadius)
	}
}

// TestAnalyzeConvergence_AllLevelsSkipped fails with the filter error when
// no level has an admissible ray.
func TestAnalyzeConvergence_AllLevelsSkipped(t *testing.T) {
	p := Params{
		Coeffs:        []complex128{0, complex(0, 1)},
		Freq:          1.0,
		Target:        0,
		OscBound:      100.0,
		Rays:          1,
		TakeMax:       true,
		ImagThreshold: 0, // cos θ_k is never exactly zero in floating point
	}

	_, err := AnalyzeConvergence(p, ConvergenceConfig{MinRays: 1, MaxRays: 8, Tolerance: 1e-9})
	if !errors.Is(err, ErrAllSamplesInvalid) {
		t.Errorf("Expected ErrAllSamplesInvalid, got %v", err)
	}
}

// TestAnalyzeConvergence_BadConfig covers sweep-config validation.
func TestAnalyzeConvergence_BadConfig(t *testing.T) {
	p := Params{
		Coeffs:        []complex128{0, 1},
		Freq:          1.0,
		OscBound:      10.0,
		Rays:          1,
		TakeMax:       true,
		ImagThreshold: 1.0,
	}

	cases := []struct {
		name string
		cfg  ConvergenceConfig
	}{
		{"ZeroMinRays", ConvergenceConfig{MinRays: 0, MaxRays: 8, Tolerance: 1e-9}},
		{"MaxBelowMin", ConvergenceConfig{MinRays: 8, MaxRays: 4, Tolerance: 1e-9}},
		{"NegativeTolerance", ConvergenceConfig{MinRays: 1, MaxRays: 8, Tolerance: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := AnalyzeConvergence(p, tc.cfg); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
