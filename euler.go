package supball

import (
	"fmt"
	"math/cmplx"
)

// stationaryEps is the derivative magnitude below which a point is treated
// as stationary. The path ODE has 1/g'(p) on the right-hand side, so the
// step blows up long before g' underflows; this cutoff fails cleanly
// instead.
const stationaryEps = 1e-12

// PathConfig controls steepest-descent path integration.
type PathConfig struct {
	Step  float64 // Forward-Euler step size h (> 0)
	Steps int     // Number of steps to take (≥ 1)
}

// DefaultPathConfig returns sensible defaults: a fine step over a short
// path segment.
func DefaultPathConfig() PathConfig {
	return PathConfig{
		Step:  1e-3,
		Steps: 1000,
	}
}

// EulerPath integrates the steepest-descent path of the oscillatory phase
// g from the starting point, using forward Euler on
//
//	p'(t) = i / g'(p(t)),  p(0) = start
//
// Along this path the phase g(p(t)) gains imaginary part at unit rate, so
// the oscillatory factor e^{iωg} decays exponentially: the path of
// steepest descent.
//
// The returned slice has Steps+1 points, starting at start. The phase must
// be non-constant (len(coeffs) ≥ 2). If the derivative magnitude drops
// below the stationary cutoff at any visited point the call fails
// atomically with ErrStationaryPoint: no partial path is returned.
func EulerPath(coeffs []complex128, start complex128, cfg PathConfig) ([]complex128, error) {
	if len(coeffs) < 2 {
		return nil, fmt.Errorf("%w: need ≥ 2 phase coefficients for a path, got %d",
			ErrInvalidInput, len(coeffs))
	}
	if cfg.Step <= 0 {
		return nil, fmt.Errorf("%w: step = %v, need > 0", ErrInvalidInput, cfg.Step)
	}
	if cfg.Steps < 1 {
		return nil, fmt.Errorf("%w: steps = %d, need ≥ 1", ErrInvalidInput, cfg.Steps)
	}

	deriv := phaseDerivative(coeffs)

	path := make([]complex128, 0, cfg.Steps+1)
	p := start
	path = append(path, p)

	for n := 0; n < cfg.Steps; n++ {
		dg := evalPhase(deriv, p)
		if cmplx.Abs(dg) < stationaryEps {
			return nil, fmt.Errorf("%w: |g'| = %v at step %d (p = %v)",
				ErrStationaryPoint, cmplx.Abs(dg), n, p)
		}
		p += complex(cfg.Step, 0) * (complex(0, 1) / dg)
		path = append(path, p)
	}

	return path, nil
}
