package supball

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// SolveParallel computes the same radius as Solve using a pool of worker
// goroutines. The ray fan is embarrassingly parallel: each ray depends only
// on the read-only inputs, and the final reduction uses max/min, which are
// associative and commutative, so the result is identical to the sequential
// solver for any worker count.
//
// workers ≤ 0 selects runtime.NumCPU(). The pool never exceeds the number
// of rays.
func SolveParallel(p Params, workers int) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > p.Rays {
		workers = p.Rays
	}
	if workers == 1 {
		return Solve(p)
	}

	gAtTarget := evalPhase(p.Coeffs, p.Target)

	// Per-worker partial aggregates, merged after Wait. No shared mutable
	// state on the hot path beyond the atomic discard counter.
	type partial struct {
		aggregate float64
		survivors int
	}

	var (
		wg        sync.WaitGroup
		discarded int64
		partials  = make([]partial, workers)
	)

	// Contiguous ray ranges per worker.
	chunk := (p.Rays + workers - 1) / workers

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > p.Rays {
			hi = p.Rays
		}
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()

			var local partial
			for k := lo; k < hi; k++ {
				z := sampleRay(p.Coeffs, p.Freq, p.Target, gAtTarget, 1, rayAngle(k, p.Rays))
				if !admissible(z, p.ImagThreshold) {
					atomic.AddInt64(&discarded, 1)
					continue
				}
				local.aggregate = fold(local.aggregate, magnitude(z), local.survivors, p.TakeMax)
				local.survivors++
			}
			partials[w] = local
		}(w, lo, hi)
	}

	wg.Wait()

	var merged partial
	for _, part := range partials {
		if part.survivors == 0 {
			continue
		}
		merged.aggregate = fold(merged.aggregate, part.aggregate, merged.survivors, p.TakeMax)
		merged.survivors += part.survivors
	}

	if merged.survivors == 0 {
		return 0, fmt.Errorf("%w: %d rays discarded by threshold %v",
			ErrAllSamplesInvalid, discarded, p.ImagThreshold)
	}

	return clampRadius(merged.aggregate, p.OscBound), nil
}
