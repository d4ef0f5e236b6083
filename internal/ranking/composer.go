package ranking

import (
	"sort"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

// RankedItem is a backlog item annotated with its ranking result.
type RankedItem struct {
	Item          domain.BacklogItem
	FinalScore    float64
	ProgressRatio float64
	UnlockCost    float64

	// SubScores holds the normalized 0-10 sub-score per weighted factor,
	// kept so the caller can explain why an item ranked where it did.
	SubScores map[domain.Factor]float64
}

// Rank orders the open items of a collection snapshot by their weighted
// multi-factor score, highest first. Finished and archived items are excluded.
// Ties keep the snapshot's insertion order, so identical inputs always produce
// identical output. The function never fails: dirty data is coerced and a
// zero active weight sum yields a zero-score ranking in insertion order.
func Rank(items []domain.BacklogItem, cfg domain.RankingConfig, factors ActiveFactors, now time.Time) []RankedItem {
	if len(items) == 0 {
		return []RankedItem{}
	}

	// Affinity and duration ranges are computed over the full snapshot,
	// pre-filter, so sub-scores stay comparable across runs.
	affinities := ComputeAffinity(items)
	durations := durationScores(items)
	maxAffinity := maxItemAffinity(items, affinities)

	weights := activeWeights(cfg.Weights, factors)

	ranked := make([]RankedItem, 0, len(items))
	for _, it := range items {
		if !it.Open() {
			continue
		}

		subs := map[domain.Factor]float64{
			domain.FactorHype:       hypeScore(it),
			domain.FactorExternal:   criticScore(it),
			domain.FactorAffinity:   scaledAffinity(it, affinities, maxAffinity),
			domain.FactorContinuity: continuityScore(it),
			domain.FactorProgress:   progressScore(it),
			domain.FactorAge:        ageScore(it, now),
			domain.FactorDuration:   durations[it.ID],
			domain.FactorOrigin:     originScore(it),
		}

		var score float64
		for f, w := range weights {
			score += subs[f] * w
		}

		ranked = append(ranked, RankedItem{
			Item:          it,
			FinalScore:    score,
			ProgressRatio: it.ProgressRatio(),
			UnlockCost:    UnlockCost(it, cfg.UnlockConversion),
			SubScores:     subs,
		})
	}

	if factors[domain.FactorCatchupBonus] && cfg.CatchupEnabled {
		applyCatchupBonus(ranked, items, cfg.CatchupMultiplier)
	}

	// Stable sort keeps insertion order on ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})
	return ranked
}

// applyCatchupBonus multiplies the score of still-open series entries the
// user has skipped past: for every series with a finished entry, any ranked
// item of that series ordered before the highest finished entry gets the
// configured multiplier.
func applyCatchupBonus(ranked []RankedItem, items []domain.BacklogItem, multiplier float64) {
	if multiplier <= 0 {
		return
	}
	maxFinished := make(map[string]int)
	for _, it := range items {
		if it.Status != domain.StatusFinished || it.SeriesName == "" {
			continue
		}
		if it.SeriesOrder > maxFinished[it.SeriesName] {
			maxFinished[it.SeriesName] = it.SeriesOrder
		}
	}
	if len(maxFinished) == 0 {
		return
	}
	for i := range ranked {
		it := ranked[i].Item
		if it.SeriesName == "" {
			continue
		}
		if max, ok := maxFinished[it.SeriesName]; ok && it.SeriesOrder < max {
			ranked[i].FinalScore *= multiplier
		}
	}
}

// maxItemAffinity finds the largest per-item raw affinity across the snapshot,
// used to rescale affinities into the common 0-10 range.
func maxItemAffinity(items []domain.BacklogItem, affinities map[string]float64) float64 {
	var max float64
	for _, it := range items {
		if a := itemAffinity(it, affinities); a > max {
			max = a
		}
	}
	return max
}

func scaledAffinity(item domain.BacklogItem, affinities map[string]float64, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return itemAffinity(item, affinities) / max * 10
}
