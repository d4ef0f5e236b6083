package ranking

import "github.com/alexanderramin/nextup/internal/domain"

// affinityThreshold is the rating a genre's mean must exceed to count as a
// preference signal.
const affinityThreshold = 7.0

// ComputeAffinity derives a per-genre affinity score from finished, highly
// rated history: items with status finished and personal rating >= 7 are
// exploded into (item, genre) pairs, then each genre scores
// (meanRating - 7) * count. Genres at or below the threshold are dropped, so
// the returned map only contains positive scores. Scores are unbounded; the
// composer renormalizes them per ranking run.
func ComputeAffinity(items []domain.BacklogItem) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, it := range items {
		if it.Status != domain.StatusFinished || it.PersonalRating < affinityThreshold {
			continue
		}
		for _, g := range domain.SplitGenres(it.Genres) {
			sums[g] += it.PersonalRating
			counts[g]++
		}
	}

	affinities := make(map[string]float64)
	for g, sum := range sums {
		n := counts[g]
		score := (sum/float64(n) - affinityThreshold) * float64(n)
		if score > 0 {
			affinities[g] = score
		}
	}
	return affinities
}

// itemAffinity returns the strongest affinity among the item's genres.
// A single strongly loved genre is enough to surface an item; co-genres
// never dilute it.
func itemAffinity(item domain.BacklogItem, affinities map[string]float64) float64 {
	if len(affinities) == 0 {
		return 0
	}
	var best float64
	for _, g := range domain.SplitGenres(item.Genres) {
		if a := affinities[g]; a > best {
			best = a
		}
	}
	return best
}
