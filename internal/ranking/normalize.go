package ranking

import (
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

// The normalizer turns raw item fields into bounded 0-10 sub-scores.
// Dirty or missing input never errors; it coerces to a safe default.

// ageScore buckets days-in-backlog into tiers so one ancient outlier can't
// dominate a continuous scale: <=180d -> 0, <=365d -> 2.5, <=730d -> 5,
// beyond -> 10. An unknown DateAdded counts as zero days.
func ageScore(item domain.BacklogItem, now time.Time) float64 {
	if item.DateAdded.IsZero() {
		return 0
	}
	days := now.Sub(item.DateAdded).Hours() / 24
	switch {
	case days <= 180:
		return 0
	case days <= 365:
		return 2.5
	case days <= 730:
		return 5
	default:
		return 10
	}
}

// progressScore rewards partially consumed items: completion ratio scaled to 0-10.
func progressScore(item domain.BacklogItem) float64 {
	return item.ProgressRatio() * 10
}

// continuityScore rewards later entries of a series: order position scaled to
// 0-10. Standalone items and single-entry series score 0.
func continuityScore(item domain.BacklogItem) float64 {
	if item.SeriesTotal <= 1 || item.SeriesOrder < 1 {
		return 0
	}
	s := float64(item.SeriesOrder-1) / float64(item.SeriesTotal-1) * 10
	if s > 10 {
		return 10
	}
	return s
}

func hypeScore(item domain.BacklogItem) float64 {
	return clampScore(item.Hype)
}

func criticScore(item domain.BacklogItem) float64 {
	return clampScore(item.ExternalRating / 10)
}

// originScore biases mildly toward not wasting paid purchases.
func originScore(item domain.BacklogItem) float64 {
	if item.Origin == domain.OriginPaid {
		return 10
	}
	return 0
}

// durationScores computes the inverse-duration sub-score per item, grouped by
// media type so an hour-long movie never competes with a 100-hour game on the
// same scale. Within a bucket: shortest -> 10, longest -> 0. A degenerate
// bucket (all durations equal) scores a neutral 5 for every member.
// The full item set must be passed in, pre-filter, to keep ranges comparable.
func durationScores(items []domain.BacklogItem) map[int64]float64 {
	type bucket struct {
		min, max float64
		seen     bool
	}
	buckets := make(map[domain.MediaType]*bucket)
	for _, it := range items {
		d := it.DurationEstimate
		if d < 0 {
			d = 0
		}
		b, ok := buckets[it.Type]
		if !ok {
			buckets[it.Type] = &bucket{min: d, max: d, seen: true}
			continue
		}
		if d < b.min {
			b.min = d
		}
		if d > b.max {
			b.max = d
		}
	}

	scores := make(map[int64]float64, len(items))
	for _, it := range items {
		b := buckets[it.Type]
		if b == nil || b.max == b.min {
			scores[it.ID] = 5.0
			continue
		}
		d := it.DurationEstimate
		if d < 0 {
			d = 0
		}
		scores[it.ID] = (b.max - d) / (b.max - b.min) * 10
	}
	return scores
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
