package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/repository"
	"github.com/google/uuid"
)

type goalService struct {
	items repository.ItemRepo
	goals repository.GoalRepo
	now   func() time.Time
}

func NewGoalService(items repository.ItemRepo, goals repository.GoalRepo) GoalService {
	return &goalService{items: items, goals: goals, now: time.Now}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) error {
	if g.Target <= 0 {
		return fmt.Errorf("goal target must be positive")
	}
	if g.MediaType != "" && !domain.ValidMediaTypes[g.MediaType] {
		return fmt.Errorf("invalid media type %q", g.MediaType)
	}
	now := s.now().UTC()
	if g.Year == 0 {
		g.Year = now.Year()
	}
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	g.CreatedAt = now
	return s.goals.Create(ctx, g)
}

// Progress reports each goal of the year against the finished items that
// match its media type and genre filters.
func (s *goalService) Progress(ctx context.Context, year int) ([]GoalProgress, error) {
	goals, err := s.goals.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, nil
	}

	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}

	progress := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		count := 0
		for _, it := range items {
			if !finishedInYear(it, year) {
				continue
			}
			if g.MediaType != "" && it.Type != g.MediaType {
				continue
			}
			if g.Genre != "" && !domain.HasGenre(it.Genres, g.Genre) {
				continue
			}
			count++
		}
		progress = append(progress, GoalProgress{Goal: g, Done: count})
	}
	return progress, nil
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	return s.goals.Delete(ctx, id)
}

func finishedInYear(item domain.BacklogItem, year int) bool {
	return item.Status == domain.StatusFinished &&
		item.DateFinished != nil &&
		item.DateFinished.Year() == year
}
