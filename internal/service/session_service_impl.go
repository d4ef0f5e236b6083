package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	items    repository.ItemRepo
	sessions repository.SessionRepo
	now      func() time.Time
}

func NewSessionService(items repository.ItemRepo, sessions repository.SessionRepo) SessionService {
	return &sessionService{items: items, sessions: sessions, now: time.Now}
}

// Log records an activity session against an item, advances its progress and
// flips a backlog item to in_progress. When minutes are not supplied, they
// are estimated from the progress delta and the item's media type.
func (s *sessionService) Log(ctx context.Context, itemID int64, minutes int, progressDelta float64, note string, date time.Time) (*domain.ActivitySession, error) {
	if minutes <= 0 && progressDelta <= 0 {
		return nil, fmt.Errorf("a session needs minutes or progress")
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Open() {
		return nil, fmt.Errorf("cannot log a session on a %s item", item.Status)
	}

	now := s.now().UTC()
	if date.IsZero() {
		date = now
	}
	if minutes <= 0 {
		minutes = estimateMinutes(item.Type, progressDelta)
	}

	session := &domain.ActivitySession{
		ID:            uuid.New().String(),
		ItemID:        itemID,
		Date:          date,
		Minutes:       minutes,
		ProgressDelta: progressDelta,
		Note:          note,
		CreatedAt:     now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	if progressDelta > 0 {
		item.ProgressCurrent += progressDelta
	}
	if item.Status == domain.StatusBacklog {
		item.Status = domain.StatusInProgress
	}
	item.UpdatedAt = now
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *sessionService) ListByItem(ctx context.Context, itemID int64) ([]*domain.ActivitySession, error) {
	return s.sessions.ListByItem(ctx, itemID)
}

// estimateMinutes derives a session length from a progress delta using rough
// per-type paces: 2 min per page, 45 min per episode, 5 min per manga
// edition, an hour per logged game hour, a minute per movie minute.
func estimateMinutes(t domain.MediaType, delta float64) int {
	var perUnit float64
	switch t {
	case domain.TypeBook:
		perUnit = 2
	case domain.TypeSeries, domain.TypeAnime:
		perUnit = 45
	case domain.TypeManga:
		perUnit = 5
	case domain.TypeGame:
		perUnit = 60
	default:
		perUnit = 1
	}
	return int(math.Round(delta * perUnit))
}
