package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/ranking"
	"github.com/alexanderramin/nextup/internal/repository"
)

type libraryService struct {
	items        repository.ItemRepo
	config       repository.ConfigRepo
	achievements AchievementService
	now          func() time.Time
}

func NewLibraryService(items repository.ItemRepo, config repository.ConfigRepo, achievements AchievementService) LibraryService {
	return &libraryService{
		items:        items,
		config:       config,
		achievements: achievements,
		now:          time.Now,
	}
}

func (s *libraryService) Add(ctx context.Context, item *domain.BacklogItem) error {
	if item.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !domain.ValidMediaTypes[item.Type] {
		return fmt.Errorf("invalid media type %q", item.Type)
	}
	if item.Status == "" {
		item.Status = domain.StatusBacklog
	}
	if !domain.ValidItemStatuses[item.Status] {
		return fmt.Errorf("invalid status %q", item.Status)
	}
	if item.DurationUnit == "" {
		item.DurationUnit = domain.CanonicalUnit(item.Type)
	}
	if item.SeriesOrder < 1 {
		item.SeriesOrder = 1
	}
	if item.SeriesTotal < 1 {
		item.SeriesTotal = 1
	}

	now := s.now().UTC()
	if item.DateAdded.IsZero() {
		item.DateAdded = now
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	return s.items.Create(ctx, item)
}

func (s *libraryService) GetByID(ctx context.Context, id int64) (*domain.BacklogItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *libraryService) List(ctx context.Context) ([]domain.BacklogItem, error) {
	return s.items.List(ctx)
}

func (s *libraryService) Search(ctx context.Context, query string) ([]domain.BacklogItem, error) {
	return s.items.Search(ctx, query)
}

func (s *libraryService) Update(ctx context.Context, item *domain.BacklogItem) error {
	if !domain.ValidMediaTypes[item.Type] {
		return fmt.Errorf("invalid media type %q", item.Type)
	}
	if !domain.ValidItemStatuses[item.Status] {
		return fmt.Errorf("invalid status %q", item.Status)
	}
	item.UpdatedAt = s.now().UTC()
	return s.items.Update(ctx, item)
}

// Finish marks an item finished, credits earned PL and runs the achievement
// sweep. finalDuration overrides the estimate when positive; the credited
// amount divides the duration actually spent by the unit's conversion rate.
func (s *libraryService) Finish(ctx context.Context, id int64, finalDuration float64) (*FinishResult, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	item.Status = domain.StatusFinished
	item.DateFinished = &now
	if finalDuration > 0 {
		item.FinalDuration = finalDuration
	}
	item.UpdatedAt = now
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}
	earned := earnedPL(*item, cfg.UnlockConversion)
	cfg.UnlockBalance += earned
	if err := s.config.Save(ctx, cfg); err != nil {
		return nil, err
	}

	newly, err := s.achievements.Sync(ctx, id)
	if err != nil {
		return nil, err
	}

	return &FinishResult{
		Item:            item,
		EarnedPL:        earned,
		Balance:         cfg.UnlockBalance,
		NewAchievements: newly,
	}, nil
}

func (s *libraryService) Rate(ctx context.Context, id int64, rating float64) ([]domain.Achievement, error) {
	if rating < 0 || rating > 10 {
		return nil, fmt.Errorf("rating must be between 0 and 10")
	}
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.PersonalRating = rating
	item.UpdatedAt = s.now().UTC()
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.achievements.Sync(ctx, id)
}

func (s *libraryService) Archive(ctx context.Context, id int64) error {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	item.Status = domain.StatusArchived
	item.UpdatedAt = s.now().UTC()
	return s.items.Update(ctx, item)
}

func (s *libraryService) Delete(ctx context.Context, id int64) error {
	return s.items.Delete(ctx, id)
}

// Unlock spends PL to move a wishlist item onto the backlog.
func (s *libraryService) Unlock(ctx context.Context, id int64) (*UnlockResult, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Status != domain.StatusWishlist {
		return nil, ErrNotWishlisted
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}
	cost := ranking.UnlockCost(*item, cfg.UnlockConversion)
	if cfg.UnlockBalance < cost {
		return nil, fmt.Errorf("unlocking %q costs %.0f PL, balance is %.1f: %w",
			item.Title, cost, cfg.UnlockBalance, ErrInsufficientBalance)
	}

	cfg.UnlockBalance -= cost
	if err := s.config.Save(ctx, cfg); err != nil {
		return nil, err
	}

	item.Status = domain.StatusBacklog
	item.UpdatedAt = s.now().UTC()
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}

	return &UnlockResult{Item: item, Cost: cost, Balance: cfg.UnlockBalance}, nil
}

// RecalculateBalance rebuilds the PL balance from the finished history. This
// is an admin repair: past unlock spends are not replayed, so the result is
// the gross total ever earned.
func (s *libraryService) RecalculateBalance(ctx context.Context) (float64, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return 0, err
	}
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return 0, err
	}

	var balance float64
	for _, it := range items {
		if it.Status != domain.StatusFinished {
			continue
		}
		balance += earnedPL(it, cfg.UnlockConversion)
	}

	cfg.UnlockBalance = balance
	if err := s.config.Save(ctx, cfg); err != nil {
		return 0, err
	}
	return balance, nil
}

// earnedPL converts a finished item's spent duration into PL. The final
// duration wins over the estimate when recorded.
func earnedPL(item domain.BacklogItem, conversion map[domain.DurationUnit]float64) float64 {
	used := item.FinalDuration
	if used <= 0 {
		used = item.DurationEstimate
	}
	if used <= 0 {
		return 0
	}
	factor, ok := conversion[item.DurationUnit]
	if !ok {
		factor = 1
	}
	if factor <= 0 {
		return 0
	}
	return used / factor
}
