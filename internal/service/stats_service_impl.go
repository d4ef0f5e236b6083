package service

import (
	"context"
	"sort"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/repository"
)

// Personal rating bounds for the hall of fame and its shame counterpart.
const (
	hallOfFameThreshold  = 9.0
	hallOfShameThreshold = 3.0
)

type statsService struct {
	items    repository.ItemRepo
	sessions repository.SessionRepo
	config   repository.ConfigRepo
	now      func() time.Time
}

func NewStatsService(items repository.ItemRepo, sessions repository.SessionRepo, config repository.ConfigRepo) StatsService {
	return &statsService{items: items, sessions: sessions, config: config, now: time.Now}
}

func (s *statsService) Overview(ctx context.Context) (*StatsOverview, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}

	year := s.now().UTC().Year()
	overview := &StatsOverview{
		ByStatus:      make(map[domain.ItemStatus]int),
		ByType:        make(map[domain.MediaType]int),
		UnlockBalance: cfg.UnlockBalance,
	}
	var hypeSum float64
	var openCount int
	var daysSum float64
	var timedCount int
	for _, it := range items {
		overview.TotalItems++
		overview.ByStatus[it.Status]++
		overview.ByType[it.Type]++
		if finishedInYear(it, year) {
			overview.FinishedThisYear++
		}
		if it.Open() {
			hypeSum += it.Hype
			openCount++
		}
		if it.Status == domain.StatusFinished && it.DateFinished != nil && !it.DateAdded.IsZero() {
			daysSum += it.DateFinished.Sub(it.DateAdded).Hours() / 24
			timedCount++
		}
	}
	if overview.TotalItems > 0 {
		overview.FinishedPercent = float64(overview.ByStatus[domain.StatusFinished]) / float64(overview.TotalItems) * 100
	}
	if openCount > 0 {
		overview.MeanOpenHype = hypeSum / float64(openCount)
	}
	if timedCount > 0 {
		overview.MeanDaysToFinish = daysSum / float64(timedCount)
	}

	sessions, err := s.sessions.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	for _, sess := range sessions {
		overview.MinutesThisYear += sess.Minutes
	}
	return overview, nil
}

func (s *statsService) YearInReview(ctx context.Context, year int) (*YearReview, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	review := &YearReview{Year: year}
	genreCounts := make(map[string]int)
	var ratingSum float64
	var ratedCount int
	for _, it := range items {
		if !finishedInYear(it, year) {
			continue
		}
		review.Finished = append(review.Finished, it)
		review.FinishesByMonth[it.DateFinished.Month()-1]++
		for _, g := range domain.SplitGenres(it.Genres) {
			genreCounts[g]++
		}
		if it.PersonalRating > 0 {
			ratingSum += it.PersonalRating
			ratedCount++
			if review.BestRated == nil || it.PersonalRating > review.BestRated.PersonalRating {
				best := it
				review.BestRated = &best
			}
		}
		spent := spentDuration(it)
		switch it.Type {
		case domain.TypeGame:
			if it.DurationUnit == domain.UnitHours {
				review.GameHours += spent
			}
			if review.LongestGame == nil || spent > spentDuration(*review.LongestGame) {
				game := it
				review.LongestGame = &game
			}
		case domain.TypeBook:
			if it.DurationUnit == domain.UnitPages {
				review.PagesRead += spent
			}
		}
	}
	for _, sess := range sessions {
		review.TotalMinutes += sess.Minutes
	}
	if ratedCount > 0 {
		review.AverageRating = ratingSum / float64(ratedCount)
	}

	review.TopGenres = make([]GenreCount, 0, len(genreCounts))
	for g, n := range genreCounts {
		review.TopGenres = append(review.TopGenres, GenreCount{Genre: g, Count: n})
	}
	sort.Slice(review.TopGenres, func(i, j int) bool {
		if review.TopGenres[i].Count != review.TopGenres[j].Count {
			return review.TopGenres[i].Count > review.TopGenres[j].Count
		}
		return review.TopGenres[i].Genre < review.TopGenres[j].Genre
	})
	if len(review.TopGenres) > 5 {
		review.TopGenres = review.TopGenres[:5]
	}
	return review, nil
}

// HallOfFame lists finished items at the rating extremes: 9+ best first,
// 3 and under worst first.
func (s *statsService) HallOfFame(ctx context.Context) (*Hall, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	hall := &Hall{}
	for _, it := range items {
		if it.Status != domain.StatusFinished || it.PersonalRating <= 0 {
			continue
		}
		switch {
		case it.PersonalRating >= hallOfFameThreshold:
			hall.Best = append(hall.Best, it)
		case it.PersonalRating <= hallOfShameThreshold:
			hall.Worst = append(hall.Worst, it)
		}
	}
	sort.SliceStable(hall.Best, func(i, j int) bool {
		return hall.Best[i].PersonalRating > hall.Best[j].PersonalRating
	})
	sort.SliceStable(hall.Worst, func(i, j int) bool {
		return hall.Worst[i].PersonalRating < hall.Worst[j].PersonalRating
	})
	return hall, nil
}

// spentDuration is the duration an item actually took, falling back to the
// estimate when no final figure was recorded.
func spentDuration(item domain.BacklogItem) float64 {
	if item.FinalDuration > 0 {
		return item.FinalDuration
	}
	return item.DurationEstimate
}

// Audit flags items with incomplete bookkeeping so the finished history stays
// trustworthy for ranking and goals.
func (s *statsService) Audit(ctx context.Context) ([]AuditFinding, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}

	var findings []AuditFinding
	for _, it := range items {
		if it.Status == domain.StatusArchived {
			continue
		}
		var issues []string
		// Wishlist entries are often placeholders; only tracked items are
		// held to the missing-data checks.
		if it.Status != domain.StatusWishlist {
			if it.CoverURL == "" {
				issues = append(issues, "missing cover")
			}
			if it.DurationEstimate <= 0 && it.FinalDuration <= 0 {
				issues = append(issues, "missing duration")
			}
			if it.Genres == "" {
				issues = append(issues, "missing genres")
			}
		}
		if it.Status == domain.StatusInProgress && it.ProgressCurrent <= 0 {
			issues = append(issues, "in progress with nothing logged")
		}
		if it.Status == domain.StatusFinished && it.PersonalRating <= 0 {
			issues = append(issues, "finished but not rated")
		}
		if len(issues) > 0 {
			findings = append(findings, AuditFinding{Item: it, Issues: issues})
		}
	}
	return findings, nil
}
