package achievement

import (
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

// The engine is pure: it looks at a collection snapshot plus the already
// unlocked key set and reports which locked achievements now qualify. The
// caller persists the unlocks. Unlocking is one-way; a key already in the
// unlocked set is never re-reported, which makes repeated evaluation of the
// same snapshot a no-op.

const yearOnBacklog = 365 * 24 * time.Hour

// snapshot precomputes the aggregates the rule set needs.
type snapshot struct {
	total            int
	finished         int
	rated            int
	lowRated         int
	finishedByType   map[domain.MediaType]int
	finishedBySeries map[string]int
	byID             map[int64]domain.BacklogItem
}

func newSnapshot(items []domain.BacklogItem) snapshot {
	s := snapshot{
		finishedByType:   make(map[domain.MediaType]int),
		finishedBySeries: make(map[string]int),
		byID:             make(map[int64]domain.BacklogItem, len(items)),
	}
	for _, it := range items {
		s.total++
		s.byID[it.ID] = it
		if it.PersonalRating > 0 {
			s.rated++
			if it.PersonalRating <= 3 {
				s.lowRated++
			}
		}
		if it.Status != domain.StatusFinished {
			continue
		}
		s.finished++
		s.finishedByType[it.Type]++
		if it.SeriesName != "" {
			s.finishedBySeries[it.SeriesName]++
		}
	}
	return s
}

func (s snapshot) maxSeriesFinished() int {
	var max int
	for _, n := range s.finishedBySeries {
		if n > max {
			max = n
		}
	}
	return max
}

func (s snapshot) finishedTypes() int {
	return len(s.finishedByType)
}

// Evaluate returns the keys of built-in achievements that qualify against the
// snapshot and are not yet in unlocked, in catalog order. changedItemID names
// the item whose change triggered the evaluation; pass 0 for a full sweep,
// which skips the item-contextual rules.
func Evaluate(items []domain.BacklogItem, unlocked map[string]bool, changedItemID int64, now time.Time) []string {
	s := newSnapshot(items)

	qualify := map[string]bool{
		KeyFirstFinished:   s.finished >= 1,
		KeyBeginnerCritic:  s.rated >= 5,
		KeyCollector:       s.total >= 50,
		KeyMarathoner:      s.maxSeriesFinished() >= 3,
		KeyDedicatedGamer:  s.finishedByType[domain.TypeGame] >= 10,
		KeyCinephile:       s.finishedByType[domain.TypeMovie] >= 10,
		KeyVoraciousReader: s.finishedByType[domain.TypeBook] >= 10,
		KeyOtaku:           s.finishedByType[domain.TypeAnime]+s.finishedByType[domain.TypeManga] >= 5,
		KeyMediaPolyglot:   s.finishedTypes() >= 5,
	}

	if changed, ok := s.byID[changedItemID]; ok {
		finished := changed.Status == domain.StatusFinished
		qualify[KeyHypeTrain] = finished && changed.Hype >= 10
		qualify[KeyArchaeologist] = finished && backlogTenure(changed, now) > yearOnBacklog
		qualify[KeyToughCritic] = changed.PersonalRating > 0 && changed.PersonalRating <= 3 && s.lowRated >= 3
	}

	var newly []string
	for _, a := range DefaultCatalog() {
		if qualify[a.Key] && !unlocked[a.Key] {
			newly = append(newly, a.Key)
		}
	}
	return newly
}

// backlogTenure measures the time since the item was added, regardless of
// when it was finished.
func backlogTenure(item domain.BacklogItem, now time.Time) time.Duration {
	if item.DateAdded.IsZero() {
		return 0
	}
	return now.Sub(item.DateAdded)
}
