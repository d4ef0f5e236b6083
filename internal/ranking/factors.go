package ranking

import "github.com/alexanderramin/nextup/internal/domain"

// ActiveFactors is the per-request toggle set: which scoring dimensions
// participate in this ranking run.
type ActiveFactors map[domain.Factor]bool

// DefaultActiveFactors enables every factor, including the catch-up bonus.
func DefaultActiveFactors() ActiveFactors {
	return ActiveFactors{
		domain.FactorHype:         true,
		domain.FactorExternal:     true,
		domain.FactorAffinity:     true,
		domain.FactorContinuity:   true,
		domain.FactorProgress:     true,
		domain.FactorAge:          true,
		domain.FactorDuration:     true,
		domain.FactorOrigin:       true,
		domain.FactorCatchupBonus: true,
	}
}

// activeWeights intersects the configured weights with the enabled factors
// and renormalizes so the active subset sums to 1. Disabling a factor
// redistributes its share proportionally instead of shrinking the total
// achievable score. Returns nil when the active weight sum is zero.
func activeWeights(weights map[domain.Factor]float64, factors ActiveFactors) map[domain.Factor]float64 {
	active := make(map[domain.Factor]float64)
	var sum float64
	for _, f := range domain.WeightedFactors {
		if !factors[f] {
			continue
		}
		w := weights[f]
		if w < 0 {
			w = 0
		}
		active[f] = w
		sum += w
	}
	if sum <= 0 {
		return nil
	}
	for f, w := range active {
		active[f] = w / sum
	}
	return active
}
