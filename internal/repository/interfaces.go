package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row. Callers test for it
// with errors.Is.
var ErrNotFound = errors.New("not found")

type ItemRepo interface {
	Create(ctx context.Context, item *domain.BacklogItem) error
	GetByID(ctx context.Context, id int64) (*domain.BacklogItem, error)
	List(ctx context.Context) ([]domain.BacklogItem, error)
	ListByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.BacklogItem, error)
	Search(ctx context.Context, query string) ([]domain.BacklogItem, error)
	Update(ctx context.Context, item *domain.BacklogItem) error
	Delete(ctx context.Context, id int64) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.ActivitySession) error
	ListByItem(ctx context.Context, itemID int64) ([]*domain.ActivitySession, error)
	ListByYear(ctx context.Context, year int) ([]*domain.ActivitySession, error)
}

type AchievementRepo interface {
	// Seed inserts achievements that are not present yet; existing keys are
	// left untouched.
	Seed(ctx context.Context, achievements []domain.Achievement) error
	List(ctx context.Context) ([]domain.Achievement, error)
	Unlock(ctx context.Context, key string, at time.Time) error
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	ListByYear(ctx context.Context, year int) ([]*domain.Goal, error)
	Delete(ctx context.Context, id string) error
}

type ConfigRepo interface {
	Get(ctx context.Context) (*domain.RankingConfig, error)
	Save(ctx context.Context, cfg *domain.RankingConfig) error
}
