package supball

import (
	"fmt"
	"sort"
)

// Stats is a distribution snapshot of the per-ray sample magnitudes for
// one parameter set. It is a diagnostic companion to Solve: the aggregate
// the solver returns is one point of this distribution (its max or min,
// before clamping).
type Stats struct {
	Rays      int     // Total rays sampled
	Valid     int     // Rays surviving the imaginary-part filter
	Discarded int     // Rays removed by the filter
	Min       float64 // Smallest surviving magnitude
	Max       float64 // Largest surviving magnitude
	Mean      float64 // Mean of surviving magnitudes
	P50       float64 // Median surviving magnitude
	P95       float64 // 95th percentile surviving magnitude
}

// SweepStats samples the full ray fan once and summarizes the surviving
// magnitudes. Percentiles are unclamped; OscBound does not apply here.
//
// Validation and error conditions match Solve: ErrInvalidInput on a
// precondition violation, ErrAllSamplesInvalid when the filter discards
// every ray.
func SweepStats(p Params) (Stats, error) {
	if err := p.Validate(); err != nil {
		return Stats{}, err
	}

	gAtTarget := evalPhase(p.Coeffs, p.Target)

	magnitudes := make([]float64, 0, p.Rays)
	for k := 0; k < p.Rays; k++ {
		z := sampleRay(p.Coeffs, p.Freq, p.Target, gAtTarget, 1, rayAngle(k, p.Rays))
		if !admissible(z, p.ImagThreshold) {
			continue
		}
		magnitudes = append(magnitudes, magnitude(z))
	}

	if len(magnitudes) == 0 {
		return Stats{}, fmt.Errorf("%w: %d rays discarded by threshold %v",
			ErrAllSamplesInvalid, p.Rays, p.ImagThreshold)
	}

	sort.Float64s(magnitudes)

	var sum float64
	for _, m := range magnitudes {
		sum += m
	}

	return Stats{
		Rays:      p.Rays,
		Valid:     len(magnitudes),
		Discarded: p.Rays - len(magnitudes),
		Min:       magnitudes[0],
		Max:       magnitudes[len(magnitudes)-1],
		Mean:      sum / float64(len(magnitudes)),
		P50:       percentile(magnitudes, 0.50),
		P95:       percentile(magnitudes, 0.95),
	}, nil
}

// percentile returns the p-th percentile (0 < p < 1) of a sorted slice.
func percentile(sorted []float64, p float64) float64 {
	index := int(float64(len(sorted)-1) * p)
	if index < 0 {
		index = 0
	}
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}
