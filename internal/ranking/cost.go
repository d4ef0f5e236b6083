package ranking

import (
	"math"

	"github.com/alexanderramin/nextup/internal/domain"
)

// UnlockCost returns the PL price of releasing a wish-listed item:
// ceil(durationEstimate / conversion[unit]), with 1 as the conversion for an
// unmapped unit. Anything that isn't a wish-listed item with a known duration
// is free to unlock.
func UnlockCost(item domain.BacklogItem, conversion map[domain.DurationUnit]float64) float64 {
	if item.Status != domain.StatusWishlist || item.DurationEstimate <= 0 {
		return 0
	}
	factor, ok := conversion[item.DurationUnit]
	if !ok {
		factor = 1
	}
	if factor <= 0 {
		return 0
	}
	return math.Ceil(item.DurationEstimate / factor)
}
