package domain

// Factor names a scoring dimension of the ranking algorithm.
type Factor string

const (
	FactorHype         Factor = "hype"
	FactorExternal     Factor = "external_rating"
	FactorAffinity     Factor = "genre_affinity"
	FactorContinuity   Factor = "series_continuity"
	FactorProgress     Factor = "progress"
	FactorAge          Factor = "age"
	FactorDuration     Factor = "duration"
	FactorOrigin       Factor = "origin"
	FactorCatchupBonus Factor = "catchup_bonus"
)

// WeightedFactors lists the factors that participate in the weighted sum.
// The catch-up bonus is a multiplier, not a weighted term, so it is absent.
var WeightedFactors = []Factor{
	FactorHype, FactorExternal, FactorAffinity, FactorContinuity,
	FactorProgress, FactorAge, FactorDuration, FactorOrigin,
}

// RankingConfig holds the per-user ranking and gamification tunables.
type RankingConfig struct {
	// Weights need not sum to 1; the composer renormalizes the active subset.
	Weights map[Factor]float64

	// UnlockConversion maps a duration unit to units-per-PL.
	UnlockConversion map[DurationUnit]float64

	CatchupEnabled    bool
	CatchupMultiplier float64

	// UnlockBalance is the PL currency balance, mutated only by the
	// finalize and unlock flows, never by ranking.
	UnlockBalance float64
}

// DefaultRankingConfig returns the stock configuration.
func DefaultRankingConfig() RankingConfig {
	return RankingConfig{
		Weights: map[Factor]float64{
			FactorHype:       0.25,
			FactorExternal:   0.15,
			FactorContinuity: 0.15,
			FactorProgress:   0.15,
			FactorAge:        0.10,
			FactorDuration:   0.10,
			FactorAffinity:   0.10,
			FactorOrigin:     0.05,
		},
		UnlockConversion: map[DurationUnit]float64{
			UnitHours:    10,
			UnitPages:    100,
			UnitEpisodes: 12,
			UnitMinutes:  180,
			UnitEditions: 1,
		},
		CatchupEnabled:    true,
		CatchupMultiplier: 1.5,
	}
}
