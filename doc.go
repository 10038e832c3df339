// Package supball computes ray-sampled enclosing balls for oscillatory
// phase functions in the complex plane.
//
// # Overview
//
// Given a finite oscillatory expansion with phase polynomial
//
//	g(z) = c₀ + c₁z + c₂z² + ... + c_{n-1}z^{n-1}
//
// supball answers the question: how far does the frequency-scaled phase
// move when we step one unit away from a target point ξ? Sampling a finite
// fan of directions around ξ gives a deterministic approximation of the
// smallest ball that encloses every admissible excursion.
//
// The core computation:
//
//  1. Sample directions θ_k = 2πk/R uniformly on the unit circle.
//  2. Evaluate z_k = ω·(g(ξ + e^{iθ_k}) − g(ξ)) for each direction.
//  3. Discard rays whose imaginary-part magnitude exceeds the tolerance
//     (numerically invalid excursions, not fatal).
//  4. Aggregate the surviving |z_k| with max (supremum ball) or min.
//  5. Clamp the aggregate to the oscillation bound.
//
// # Quick Start
//
//	r, err := supball.Solve(supball.Params{
//	    Coeffs:        []complex128{0, 1, 0.5},
//	    Freq:          2.0,
//	    Target:        0,
//	    OscBound:      10.0,
//	    Rays:          64,
//	    TakeMax:       true,
//	    ImagThreshold: 1.0,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("enclosing radius: %.6f\n", r)
//
// # Components
//
//   - solve.go      - Sequential enclosing-ball solver
//   - parallel.go   - Worker-pool variant (identical results, any worker count)
//   - interior.go   - Largest fully-admissible interior ball
//   - euler.go      - Steepest-descent path integration (forward Euler)
//   - sweep.go      - Ray-count convergence analysis
//   - stats.go      - Per-ray magnitude distribution snapshot
//   - assertions.go - Test helpers for solver properties
//
// # Determinism
//
// Every function in this package is a pure function of its inputs: no
// randomness, no global state, no clocks. Identical inputs always produce
// identical outputs, and SolveParallel produces bit-identical aggregates to
// Solve because max and min are associative and commutative, so the
// reduction order cannot change the result.
//
// # Error Model
//
// Two failure kinds, both synchronous and atomic (no partial results):
//
//   - ErrInvalidInput: precondition violation (empty coefficients,
//     Rays < 1, negative tolerance, ...). Not retryable without fixing
//     the input.
//   - ErrAllSamplesInvalid: the imaginary-part filter discarded every ray.
//     Retryable by relaxing ImagThreshold or changing Rays.
//
// Check with errors.Is:
//
//	if errors.Is(err, supball.ErrAllSamplesInvalid) {
//	    // relax the tolerance and retry
//	}
//
// # Convergence
//
// The ray fan is a quadrature: more rays, better angular resolution. Use
// AnalyzeConvergence to find the ray count where the radius stabilizes:
//
//	analysis, err := supball.AnalyzeConvergence(params, supball.DefaultConvergenceConfig())
//	if analysis.Converged {
//	    fmt.Printf("stable at R=%d: r=%.9f\n",
//	        analysis.RaysAtConvergence, analysis.StableRadius)
//	}
//
// # Testing
//
// Use the exported assertions to validate solver properties:
//
//	func TestMyParams(t *testing.T) {
//	    supball.AssertDeterministic(t, params)
//	    supball.AssertRadiusBounded(t, params)
//	    supball.AssertMaxDominatesMin(t, params)
//	}
package supball
