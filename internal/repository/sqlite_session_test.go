package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/nextup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionTestSetup(t *testing.T) (*SQLiteSessionRepo, int64) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	itemRepo := NewSQLiteItemRepo(db)
	item := testutil.NewTestItem("tracked")
	require.NoError(t, itemRepo.Create(ctx, &item))

	return NewSQLiteSessionRepo(db), item.ID
}

func TestSessionRepo_CreateAndListByItem(t *testing.T) {
	repo, itemID := sessionTestSetup(t)
	ctx := context.Background()

	earlier := testutil.NewTestSession(itemID, 30, 2, testutil.WithSessionDate(time.Now().UTC().Add(-2*time.Hour)))
	later := testutil.NewTestSession(itemID, 45, 1, testutil.WithSessionDate(time.Now().UTC().Add(-1*time.Hour)), testutil.WithSessionNote("good run"))
	require.NoError(t, repo.Create(ctx, earlier))
	require.NoError(t, repo.Create(ctx, later))

	list, err := repo.ListByItem(ctx, itemID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Ordered by date.
	assert.Equal(t, earlier.ID, list[0].ID)
	assert.Equal(t, later.ID, list[1].ID)
	assert.Equal(t, 45, list[1].Minutes)
	assert.Equal(t, 1.0, list[1].ProgressDelta)
	assert.Equal(t, "good run", list[1].Note)
}

func TestSessionRepo_ListByYear(t *testing.T) {
	repo, itemID := sessionTestSetup(t)
	ctx := context.Background()

	thisYear := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	lastYear := time.Date(2024, 11, 2, 20, 0, 0, 0, time.UTC)
	inYear := testutil.NewTestSession(itemID, 60, 1, testutil.WithSessionDate(thisYear))
	outOfYear := testutil.NewTestSession(itemID, 60, 1, testutil.WithSessionDate(lastYear))
	require.NoError(t, repo.Create(ctx, inYear))
	require.NoError(t, repo.Create(ctx, outOfYear))

	list, err := repo.ListByYear(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, inYear.ID, list[0].ID)
}

func TestSessionRepo_CascadeOnItemDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	itemRepo := NewSQLiteItemRepo(db)
	sessRepo := NewSQLiteSessionRepo(db)

	item := testutil.NewTestItem("short lived")
	require.NoError(t, itemRepo.Create(ctx, &item))
	require.NoError(t, sessRepo.Create(ctx, testutil.NewTestSession(item.ID, 30, 1)))

	require.NoError(t, itemRepo.Delete(ctx, item.ID))

	list, err := sessRepo.ListByItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
