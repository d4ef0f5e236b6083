package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/nextup/internal/achievement"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryAdd_DefaultsAndValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := &domain.BacklogItem{Title: "Project Hail Mary", Type: domain.TypeBook}
	require.NoError(t, env.library.Add(ctx, item))
	require.NotZero(t, item.ID)

	fetched, err := env.library.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBacklog, fetched.Status)
	assert.Equal(t, domain.UnitPages, fetched.DurationUnit, "unit should default from media type")
	assert.Equal(t, 1, fetched.SeriesOrder)
	assert.False(t, fetched.DateAdded.IsZero())
}

func TestLibraryAdd_RejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.Error(t, env.library.Add(ctx, &domain.BacklogItem{Type: domain.TypeGame}))
	assert.Error(t, env.library.Add(ctx, &domain.BacklogItem{Title: "x", Type: "vinyl"}))
	assert.Error(t, env.library.Add(ctx, &domain.BacklogItem{Title: "x", Type: domain.TypeGame, Status: "someday"}))
}

func TestLibraryFinish_AwardsPLAndAchievements(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := testutil.NewTestItem("Celeste", testutil.WithDuration(25, domain.UnitHours))
	require.NoError(t, env.items.Create(ctx, &item))

	res, err := env.library.Finish(ctx, item.ID, 30)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusFinished, res.Item.Status)
	require.NotNil(t, res.Item.DateFinished)
	assert.Equal(t, 30.0, res.Item.FinalDuration)
	// 30 hours at 10 hours per PL.
	assert.InDelta(t, 3.0, res.EarnedPL, 1e-9)
	assert.InDelta(t, 3.0, res.Balance, 1e-9)

	keys := make([]string, 0, len(res.NewAchievements))
	for _, a := range res.NewAchievements {
		keys = append(keys, a.Key)
	}
	assert.Contains(t, keys, achievement.KeyFirstFinished)
}

func TestLibraryFinish_FallsBackToEstimate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := testutil.NewTestItem("quick read",
		testutil.WithType(domain.TypeBook),
		testutil.WithDuration(200, domain.UnitPages),
	)
	require.NoError(t, env.items.Create(ctx, &item))

	res, err := env.library.Finish(ctx, item.ID, 0)
	require.NoError(t, err)
	// 200 pages at 100 pages per PL.
	assert.InDelta(t, 2.0, res.EarnedPL, 1e-9)
}

func TestLibraryRate_TriggersToughCritic(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var lastID int64
	for i := 0; i < 3; i++ {
		item := testutil.NewTestItem("disappointment")
		require.NoError(t, env.items.Create(ctx, &item))
		lastID = item.ID
		if i < 2 {
			_, err := env.library.Rate(ctx, item.ID, 2)
			require.NoError(t, err)
		}
	}

	newly, err := env.library.Rate(ctx, lastID, 2)
	require.NoError(t, err)

	keys := make([]string, 0, len(newly))
	for _, a := range newly {
		keys = append(keys, a.Key)
	}
	assert.Contains(t, keys, achievement.KeyToughCritic)
}

func TestLibraryUnlock_SpendsBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cfg, err := env.config.Get(ctx)
	require.NoError(t, err)
	cfg.UnlockBalance = 5
	require.NoError(t, env.config.Save(ctx, cfg))

	wish := testutil.NewTestItem("tempting",
		testutil.WithStatus(domain.StatusWishlist),
		testutil.WithDuration(25, domain.UnitHours),
	)
	require.NoError(t, env.items.Create(ctx, &wish))

	res, err := env.library.Unlock(ctx, wish.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Cost)
	assert.InDelta(t, 2.0, res.Balance, 1e-9)
	assert.Equal(t, domain.StatusBacklog, res.Item.Status)
}

func TestLibraryUnlock_InsufficientBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	wish := testutil.NewTestItem("out of reach",
		testutil.WithStatus(domain.StatusWishlist),
		testutil.WithDuration(100, domain.UnitHours),
	)
	require.NoError(t, env.items.Create(ctx, &wish))

	_, err := env.library.Unlock(ctx, wish.ID)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// The failed unlock must not move the item.
	fetched, err := env.library.GetByID(ctx, wish.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWishlist, fetched.Status)
}

func TestLibraryUnlock_RejectsNonWishlist(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := testutil.NewTestItem("already owned")
	require.NoError(t, env.items.Create(ctx, &item))

	_, err := env.library.Unlock(ctx, item.ID)
	assert.ErrorIs(t, err, ErrNotWishlisted)
}

func TestLibraryRecalculateBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	done := testutil.NewTestItem("done",
		testutil.WithStatus(domain.StatusFinished),
		testutil.WithFinalDuration(50),
	)
	require.NoError(t, env.items.Create(ctx, &done))

	pending := testutil.NewTestItem("pending", testutil.WithDuration(80, domain.UnitHours))
	require.NoError(t, env.items.Create(ctx, &pending))

	balance, err := env.library.RecalculateBalance(ctx)
	require.NoError(t, err)
	// Only the finished item counts: 50 hours at 10 per PL.
	assert.InDelta(t, 5.0, balance, 1e-9)
}

func TestLibraryArchive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := testutil.NewTestItem("shelved")
	require.NoError(t, env.items.Create(ctx, &item))
	require.NoError(t, env.library.Archive(ctx, item.ID))

	fetched, err := env.library.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusArchived, fetched.Status)
}
