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

func TestAchievementSync_UnlocksAndIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := testutil.NewTestItem("winner", testutil.WithStatus(domain.StatusFinished))
	require.NoError(t, env.items.Create(ctx, &item))

	newly, err := env.achievements.Sync(ctx, 0)
	require.NoError(t, err)
	require.Len(t, newly, 1)
	assert.Equal(t, achievement.KeyFirstFinished, newly[0].Key)
	require.NotNil(t, newly[0].UnlockedAt)

	// Nothing changed, nothing new.
	again, err := env.achievements.Sync(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestAchievementSync_MintsDynamicLocked(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// A cluster of queued items is enough to mint a definition, but not to
	// unlock it.
	for i := 0; i < 5; i++ {
		item := testutil.NewTestItem("rpg run", testutil.WithGenres("RPG"))
		require.NoError(t, env.items.Create(ctx, &item))
	}

	newly, err := env.achievements.Sync(ctx, 0)
	require.NoError(t, err)
	require.Len(t, newly, 1)
	assert.Equal(t, "genre_rpg", newly[0].Key)
	assert.False(t, newly[0].Unlocked)
	assert.Nil(t, newly[0].UnlockedAt)

	// The minted key persists and is not re-minted on the next sweep.
	again, err := env.achievements.Sync(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, again)

	list, err := env.achievements.List(ctx)
	require.NoError(t, err)
	var dynamicCount int
	for _, a := range list {
		if a.Dynamic {
			dynamicCount++
			assert.False(t, a.Unlocked)
		}
	}
	assert.Equal(t, 1, dynamicCount)
}

func TestAchievementList_SeedsCatalog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	list, err := env.achievements.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, len(achievement.DefaultCatalog()))
}
