package supball

import (
	"math"
	"testing"
)

// AssertDeterministic verifies that repeated solves of the same parameters
// yield bit-identical radii. The solver has no hidden randomness; any
// drift between runs is a bug.
func AssertDeterministic(t *testing.T, p Params) {
	t.Helper()

	first, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	for run := 0; run < 5; run++ {
		r, err := Solve(p)
		if err != nil {
			t.Fatalf("Solve failed on run %d: %v", run+1, err)
		}
		if r != first {
			t.Errorf("Nondeterministic radius: run %d gave %v, first run gave %v",
				run+1, r, first)
		}
	}

	t.Logf("✓ Deterministic: r = %v across repeated solves", first)
}

// AssertRadiusBounded verifies the radius is finite, non-negative, and
// respects the oscillation bound ceiling.
func AssertRadiusBounded(t *testing.T, p Params) {
	t.Helper()

	r, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if math.IsNaN(r) || math.IsInf(r, 0) {
		t.Errorf("Radius not finite: %v", r)
	}
	if r < 0 {
		t.Errorf("Radius negative: %v", r)
	}
	if r > p.OscBound {
		t.Errorf("Radius %v exceeds oscillation bound %v (clamp failed)", r, p.OscBound)
	}

	t.Logf("✓ Bounded: 0 ≤ %v ≤ %v", r, p.OscBound)
}

// AssertMaxDominatesMin verifies the supremum aggregate dominates the
// infimum aggregate over the same sample set:
//
//	Solve(TakeMax=true) ≥ Solve(TakeMax=false)
func AssertMaxDominatesMin(t *testing.T, p Params) {
	t.Helper()

	pMax := p
	pMax.TakeMax = true
	pMin := p
	pMin.TakeMax = false

	rMax, err := Solve(pMax)
	if err != nil {
		t.Fatalf("Solve (max) failed: %v", err)
	}
	rMin, err := Solve(pMin)
	if err != nil {
		t.Fatalf("Solve (min) failed: %v", err)
	}

	if rMax < rMin {
		t.Errorf("Aggregate ordering violated: max = %v < min = %v", rMax, rMin)
	}

	t.Logf("✓ Aggregate ordering: max = %v ≥ min = %v", rMax, rMin)
}

// AssertParallelMatches verifies SolveParallel reproduces the sequential
// radius exactly for a spread of worker counts.
func AssertParallelMatches(t *testing.T, p Params) {
	t.Helper()

	sequential, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	for _, workers := range []int{1, 2, 3, 4, 8} {
		r, err := SolveParallel(p, workers)
		if err != nil {
			t.Fatalf("SolveParallel(workers=%d) failed: %v", workers, err)
		}
		if r != sequential {
			t.Errorf("workers=%d: parallel radius %v != sequential %v", workers, r, sequential)
		}
	}

	t.Logf("✓ Parallel reduction matches sequential: r = %v", sequential)
}

// PrintConvergence outputs a ray-count sweep to the test log.
func PrintConvergence(t *testing.T, analysis ConvergenceAnalysis) {
	t.Helper()

	t.Logf("\n=== Ray-Count Convergence ===")
	t.Logf("  Rays    Radius")
	t.Logf("  ------  ------------")
	for _, point := range analysis.Points {
		if point.Skipped {
			t.Logf("  %-6d  (skipped: all rays inadmissible)", point.Rays)
			continue
		}
		t.Logf("  %-6d  %.12f", point.Rays, point.Radius)
	}

	if analysis.Converged {
		t.Logf("✓ Converged at R=%d: r = %.12f", analysis.RaysAtConvergence, analysis.StableRadius)
	} else {
		t.Logf("✗ Not converged; last radius %.12f at R=%d",
			analysis.StableRadius, analysis.RaysAtConvergence)
	}
	if analysis.Rate > 0 {
		t.Logf("  Residual decay rate: %.4f per doubling", analysis.Rate)
	}
}
