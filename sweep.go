package supball

import (
	"errors"
	"fmt"
	"math"
)

// ConvergencePoint records the solver output at one ray count during a
// convergence sweep.
type ConvergencePoint struct {
	Rays    int     // Ray count at this level
	Radius  float64 // Radius returned by Solve
	Skipped bool    // True if this level failed with ErrAllSamplesInvalid
}

// ConvergenceAnalysis contains the full ray-count sweep.
type ConvergenceAnalysis struct {
	Points            []ConvergencePoint
	Converged         bool    // True if successive radii agreed within tolerance
	StableRadius      float64 // Radius at convergence (last radius if not converged)
	RaysAtConvergence int     // Ray count where convergence was declared
	Rate              float64 // Estimated geometric residual decay rate (0 if unknown)
}

// ConvergenceConfig controls the ray-count sweep.
type ConvergenceConfig struct {
	MinRays   int     // Starting ray count (≥ 1)
	MaxRays   int     // Ceiling; the sweep doubles MinRays until it passes this
	Tolerance float64 // |r_{k+1} - r_k| ≤ Tolerance declares convergence
}

// DefaultConvergenceConfig returns sensible defaults.
func DefaultConvergenceConfig() ConvergenceConfig {
	return ConvergenceConfig{
		MinRays:   1,
		MaxRays:   4096,
		Tolerance: 1e-9,
	}
}

// AnalyzeConvergence sweeps the ray count by doubling and watches the
// radius stabilize. The ray fan is an angular quadrature, so the radius at
// R rays is an approximation that refines as R grows; convergence is
// declared at the first level whose radius agrees with its predecessor
// within cfg.Tolerance.
//
// Levels that fail with ErrAllSamplesInvalid are recorded as skipped and do
// not participate in the convergence check (coarse fans can miss every
// admissible direction). Any other error aborts the sweep. If every level
// is skipped the analysis fails with ErrAllSamplesInvalid.
func AnalyzeConvergence(p Params, cfg ConvergenceConfig) (ConvergenceAnalysis, error) {
	if cfg.MinRays < 1 {
		return ConvergenceAnalysis{}, fmt.Errorf("%w: min rays = %d, need ≥ 1",
			ErrInvalidInput, cfg.MinRays)
	}
	if cfg.MaxRays < cfg.MinRays {
		return ConvergenceAnalysis{}, fmt.Errorf("%w: max rays = %d < min rays = %d",
			ErrInvalidInput, cfg.MaxRays, cfg.MinRays)
	}
	if cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) {
		return ConvergenceAnalysis{}, fmt.Errorf("%w: tolerance = %v, need ≥ 0",
			ErrInvalidInput, cfg.Tolerance)
	}

	analysis := ConvergenceAnalysis{
		Points: make([]ConvergencePoint, 0),
	}

	var (
		havePrev  bool
		prev      float64
		residuals []float64
	)

	for rays := cfg.MinRays; rays <= cfg.MaxRays; rays *= 2 {
		level := p
		level.Rays = rays

		r, err := Solve(level)
		if err != nil {
			if errors.Is(err, ErrAllSamplesInvalid) {
				analysis.Points = append(analysis.Points, ConvergencePoint{Rays: rays, Skipped: true})
				continue
			}
			return ConvergenceAnalysis{}, err
		}

		analysis.Points = append(analysis.Points, ConvergencePoint{Rays: rays, Radius: r})
		analysis.StableRadius = r
		analysis.RaysAtConvergence = rays

		if havePrev {
			residual := math.Abs(r - prev)
			residuals = append(residuals, residual)
			if !analysis.Converged && residual <= cfg.Tolerance {
				analysis.Converged = true
			}
		}
		havePrev, prev = true, r

		if analysis.Converged {
			break
		}
	}

	if !havePrev {
		return ConvergenceAnalysis{}, fmt.Errorf("%w: every sweep level skipped (min rays %d, max rays %d)",
			ErrAllSamplesInvalid, cfg.MinRays, cfg.MaxRays)
	}

	analysis.Rate = estimateDecayRate(residuals)
	return analysis, nil
}

// estimateDecayRate averages the ratio of successive residuals. A rate
// near 0.5 means each doubling of the fan halves the error; a rate near 0
// means the radius locked in immediately. Returns 0 when fewer than two
// nonzero residuals exist.
func estimateDecayRate(residuals []float64) float64 {
	var (
		sum   float64
		count int
	)
	for i := 1; i < len(residuals); i++ {
		if residuals[i-1] == 0 {
			continue
		}
		ratio := residuals[i] / residuals[i-1]
		if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
			continue
		}
		sum += ratio
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
