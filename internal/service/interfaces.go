package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/ranking"
)

// ErrInsufficientBalance is returned by Unlock when the PL balance does not
// cover the item's unlock cost.
var ErrInsufficientBalance = errors.New("insufficient unlock balance")

// ErrNotWishlisted is returned by Unlock for items outside the wishlist.
var ErrNotWishlisted = errors.New("item is not on the wishlist")

// RecommendRequest narrows a ranking run. Filters apply to the ranked output;
// scoring itself always sees the full collection snapshot.
type RecommendRequest struct {
	Types    []domain.MediaType
	Statuses []domain.ItemStatus
	Genre    string
	Search   string
	Limit    int

	// Factors toggles scoring dimensions; nil means all enabled.
	Factors ranking.ActiveFactors
}

type RankingService interface {
	Recommend(ctx context.Context, req RecommendRequest) ([]ranking.RankedItem, error)
}

// FinishResult reports the outcome of finalizing an item.
type FinishResult struct {
	Item            *domain.BacklogItem
	EarnedPL        float64
	Balance         float64
	NewAchievements []domain.Achievement
}

// UnlockResult reports the outcome of spending PL on a wishlist item.
type UnlockResult struct {
	Item    *domain.BacklogItem
	Cost    float64
	Balance float64
}

type LibraryService interface {
	Add(ctx context.Context, item *domain.BacklogItem) error
	GetByID(ctx context.Context, id int64) (*domain.BacklogItem, error)
	List(ctx context.Context) ([]domain.BacklogItem, error)
	Search(ctx context.Context, query string) ([]domain.BacklogItem, error)
	Update(ctx context.Context, item *domain.BacklogItem) error
	Finish(ctx context.Context, id int64, finalDuration float64) (*FinishResult, error)
	Rate(ctx context.Context, id int64, rating float64) ([]domain.Achievement, error)
	Archive(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Unlock(ctx context.Context, id int64) (*UnlockResult, error)
	RecalculateBalance(ctx context.Context) (float64, error)
}

type SessionService interface {
	Log(ctx context.Context, itemID int64, minutes int, progressDelta float64, note string, date time.Time) (*domain.ActivitySession, error)
	ListByItem(ctx context.Context, itemID int64) ([]*domain.ActivitySession, error)
}

type AchievementService interface {
	// Sync seeds the built-in catalog, mints any new dynamic achievement
	// definitions (persisted locked), evaluates the rule set and persists
	// unlocks. It returns one batch of news: freshly minted definitions
	// (Unlocked false) and freshly unlocked achievements. changedItemID
	// enables the item-contextual rules; pass 0 for a full sweep.
	Sync(ctx context.Context, changedItemID int64) ([]domain.Achievement, error)
	List(ctx context.Context) ([]domain.Achievement, error)
}

// GoalProgress pairs a goal with the number of qualifying finished items.
type GoalProgress struct {
	Goal *domain.Goal
	Done int
}

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	Progress(ctx context.Context, year int) ([]GoalProgress, error)
	Delete(ctx context.Context, id string) error
}

// StatsOverview summarizes the collection.
type StatsOverview struct {
	TotalItems       int
	ByStatus         map[domain.ItemStatus]int
	ByType           map[domain.MediaType]int
	FinishedPercent  float64
	MeanOpenHype     float64
	MeanDaysToFinish float64
	FinishedThisYear int
	MinutesThisYear  int
	UnlockBalance    float64
}

// GenreCount is a genre with its finished-item count.
type GenreCount struct {
	Genre string
	Count int
}

// YearReview summarizes a finished year of activity.
type YearReview struct {
	Year          int
	Finished      []domain.BacklogItem
	TotalMinutes  int
	TopGenres     []GenreCount
	AverageRating float64

	GameHours       float64
	PagesRead       float64
	BestRated       *domain.BacklogItem
	LongestGame     *domain.BacklogItem
	FinishesByMonth [12]int
}

// Hall pairs the best and worst rated finished items.
type Hall struct {
	Best  []domain.BacklogItem
	Worst []domain.BacklogItem
}

// AuditFinding flags an item with incomplete bookkeeping.
type AuditFinding struct {
	Item   domain.BacklogItem
	Issues []string
}

type StatsService interface {
	Overview(ctx context.Context) (*StatsOverview, error)
	YearInReview(ctx context.Context, year int) (*YearReview, error)
	HallOfFame(ctx context.Context) (*Hall, error)
	Audit(ctx context.Context) ([]AuditFinding, error)
}
