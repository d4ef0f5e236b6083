package service

import (
	"context"
	"time"

	"github.com/alexanderramin/nextup/internal/achievement"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/repository"
)

type achievementService struct {
	items        repository.ItemRepo
	achievements repository.AchievementRepo
	now          func() time.Time
}

func NewAchievementService(items repository.ItemRepo, achievements repository.AchievementRepo) AchievementService {
	return &achievementService{items: items, achievements: achievements, now: time.Now}
}

func (s *achievementService) Sync(ctx context.Context, changedItemID int64) ([]domain.Achievement, error) {
	if err := s.achievements.Seed(ctx, achievement.DefaultCatalog()); err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.achievements.List(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(existing))
	unlocked := make(map[string]bool)
	for _, a := range existing {
		known[a.Key] = true
		if a.Unlocked {
			unlocked[a.Key] = true
		}
	}

	// Minted definitions are persisted locked; they enter the same
	// locked-to-unlocked state machine as the fixed catalog.
	minted := achievement.GenerateDynamic(items, known)
	if len(minted) > 0 {
		if err := s.achievements.Seed(ctx, minted); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	newly := append([]domain.Achievement(nil), minted...)

	keys := achievement.Evaluate(items, unlocked, changedItemID, now)
	if len(keys) == 0 {
		return newly, nil
	}

	catalog := make(map[string]domain.Achievement)
	for _, a := range achievement.DefaultCatalog() {
		catalog[a.Key] = a
	}
	for _, key := range keys {
		if err := s.achievements.Unlock(ctx, key, now); err != nil {
			return nil, err
		}
		a := catalog[key]
		a.Unlocked = true
		a.UnlockedAt = &now
		newly = append(newly, a)
	}
	return newly, nil
}

func (s *achievementService) List(ctx context.Context) ([]domain.Achievement, error) {
	if err := s.achievements.Seed(ctx, achievement.DefaultCatalog()); err != nil {
		return nil, err
	}
	return s.achievements.List(ctx)
}
