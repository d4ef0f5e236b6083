package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(db)
	ctx := context.Background()

	item := testutil.NewTestItem("Hollow Knight",
		testutil.WithGenres("Metroidvania, Platformer"),
		testutil.WithPlatform("Switch"),
		testutil.WithHype(8),
		testutil.WithDuration(40, domain.UnitHours),
	)
	require.NoError(t, repo.Create(ctx, &item))
	require.NotZero(t, item.ID, "create should backfill the store-assigned id")

	fetched, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hollow Knight", fetched.Title)
	assert.Equal(t, domain.TypeGame, fetched.Type)
	assert.Equal(t, domain.StatusBacklog, fetched.Status)
	assert.Equal(t, "Metroidvania, Platformer", fetched.Genres)
	assert.Equal(t, 8.0, fetched.Hype)
	assert.Equal(t, 40.0, fetched.DurationEstimate)
	assert.Equal(t, domain.UnitHours, fetched.DurationUnit)
}

func TestItemRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 9999)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemRepo_List_InsertionOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(db)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		item := testutil.NewTestItem(title)
		require.NoError(t, repo.Create(ctx, &item))
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
	assert.Equal(t, "third", items[2].Title)
}

func TestItemRepo_ListByStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(db)
	ctx := context.Background()

	backlog := testutil.NewTestItem("pending")
	wish := testutil.NewTestItem("wanted", testutil.WithStatus(domain.StatusWishlist))
	require.NoError(t, repo.Create(ctx, &backlog))
	require.NoError(t, repo.Create(ctx, &wish))

	wishes, err := repo.ListByStatus(ctx, domain.StatusWishlist)
	require.NoError(t, err)
	require.Len(t, wishes, 1)
	assert.Equal(t, "wanted", wishes[0].Title)
}

func TestItemRepo_Search(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(db)
	ctx := context.Background()

	zelda := testutil.NewTestItem("Tears of the Kingdom", testutil.WithSeries("Zelda", 2, 2))
	dune := testutil.NewTestItem("Dune", testutil.WithType(domain.TypeBook), testutil.WithAuthor("Frank Herbert"))
	require.NoError(t, repo.Create(ctx, &zelda))
	require.NoError(t, repo.Create(ctx, &dune))

	byTitle, err := repo.Search(ctx, "kingdom")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, zelda.ID, byTitle[0].ID)

	byAuthor, err := repo.Search(ctx, "herbert")
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, dune.ID, byAuthor[0].ID)

	bySeries, err := repo.Search(ctx, "zelda")
	require.NoError(t, err)
	require.Len(t, bySeries, 1)
}

func TestItemRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(db)
	ctx := context.Background()

	item := testutil.NewTestItem("evolving")
	require.NoError(t, repo.Create(ctx, &item))

	finished := time.Now().UTC().Truncate(time.Second)
	item.Status = domain.StatusFinished
	item.PersonalRating = 9
	item.FinalDuration = 38
	item.DateFinished = &finished
	require.NoError(t, repo.Update(ctx, &item))

	fetched, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFinished, fetched.Status)
	assert.Equal(t, 9.0, fetched.PersonalRating)
	assert.Equal(t, 38.0, fetched.FinalDuration)
	require.NotNil(t, fetched.DateFinished)
	assert.True(t, fetched.DateFinished.Equal(finished))
}

func TestItemRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteItemRepo(db)
	ctx := context.Background()

	item := testutil.NewTestItem("doomed")
	require.NoError(t, repo.Create(ctx, &item))
	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
