package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGoal(year int, target int) *domain.Goal {
	return &domain.Goal{
		ID:        uuid.New().String(),
		MediaType: domain.TypeBook,
		Target:    target,
		Year:      year,
		CreatedAt: time.Now().UTC(),
	}
}

func TestGoalRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(db)
	ctx := context.Background()

	goal := newTestGoal(2025, 12)
	goal.Genre = "Fantasy"
	require.NoError(t, repo.Create(ctx, goal))

	fetched, err := repo.GetByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TypeBook, fetched.MediaType)
	assert.Equal(t, "Fantasy", fetched.Genre)
	assert.Equal(t, 12, fetched.Target)
	assert.Equal(t, 2025, fetched.Year)
}

func TestGoalRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalRepo_ListByYear(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(db)
	ctx := context.Background()

	current := newTestGoal(2025, 12)
	past := newTestGoal(2024, 20)
	require.NoError(t, repo.Create(ctx, current))
	require.NoError(t, repo.Create(ctx, past))

	list, err := repo.ListByYear(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, current.ID, list[0].ID)
}

func TestGoalRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(db)
	ctx := context.Background()

	goal := newTestGoal(2025, 5)
	require.NoError(t, repo.Create(ctx, goal))
	require.NoError(t, repo.Delete(ctx, goal.ID))

	_, err := repo.GetByID(ctx, goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
