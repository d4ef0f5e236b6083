package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsOverview(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	thisYear := time.Now().UTC()
	finished := testutil.NewTestItem("done game",
		testutil.WithStatus(domain.StatusFinished),
		testutil.WithDateAdded(thisYear.AddDate(0, 0, -10)),
		testutil.WithDateFinished(thisYear),
	)
	pending := testutil.NewTestItem("pending book",
		testutil.WithType(domain.TypeBook),
		testutil.WithHype(6),
	)
	require.NoError(t, env.items.Create(ctx, &finished))
	require.NoError(t, env.items.Create(ctx, &pending))

	require.NoError(t, env.sessions.Create(ctx, testutil.NewTestSession(pending.ID, 45, 1)))

	overview, err := env.stats.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, overview.TotalItems)
	assert.Equal(t, 1, overview.ByStatus[domain.StatusFinished])
	assert.Equal(t, 1, overview.ByType[domain.TypeBook])
	assert.Equal(t, 1, overview.FinishedThisYear)
	assert.Equal(t, 45, overview.MinutesThisYear)
	assert.Equal(t, 0.0, overview.UnlockBalance)
	assert.InDelta(t, 50.0, overview.FinishedPercent, 1e-9)
	assert.InDelta(t, 6.0, overview.MeanOpenHype, 1e-9)
	assert.InDelta(t, 10.0, overview.MeanDaysToFinish, 0.1)
}

func TestStatsYearInReview(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	year := 2025
	finished := time.Date(year, 7, 1, 0, 0, 0, 0, time.UTC)
	a := testutil.NewTestItem("rpg one",
		testutil.WithStatus(domain.StatusFinished),
		testutil.WithDateFinished(finished),
		testutil.WithGenres("RPG"),
		testutil.WithPersonalRating(8),
	)
	b := testutil.NewTestItem("rpg two",
		testutil.WithStatus(domain.StatusFinished),
		testutil.WithDateFinished(finished),
		testutil.WithGenres("RPG, Indie"),
		testutil.WithPersonalRating(6),
	)
	require.NoError(t, env.items.Create(ctx, &a))
	require.NoError(t, env.items.Create(ctx, &b))

	sess := testutil.NewTestSession(a.ID, 120, 5, testutil.WithSessionDate(finished))
	require.NoError(t, env.sessions.Create(ctx, sess))

	review, err := env.stats.YearInReview(ctx, year)
	require.NoError(t, err)
	assert.Len(t, review.Finished, 2)
	assert.Equal(t, 120, review.TotalMinutes)
	assert.InDelta(t, 7.0, review.AverageRating, 1e-9)
	require.NotEmpty(t, review.TopGenres)
	assert.Equal(t, GenreCount{Genre: "RPG", Count: 2}, review.TopGenres[0])
	assert.Equal(t, 2, review.FinishesByMonth[6])
	require.NotNil(t, review.BestRated)
	assert.Equal(t, "rpg one", review.BestRated.Title)
	assert.InDelta(t, 20.0, review.GameHours, 1e-9)
	require.NotNil(t, review.LongestGame)
}

func TestStatsHallOfFame(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	legend := testutil.NewTestItem("legend",
		testutil.WithStatus(domain.StatusFinished),
		testutil.WithPersonalRating(10),
	)
	great := testutil.NewTestItem("great",
		testutil.WithStatus(domain.StatusFinished),
		testutil.WithPersonalRating(9),
	)
	good := testutil.NewTestItem("good",
		testutil.WithStatus(domain.StatusFinished),
		testutil.WithPersonalRating(8),
	)
	awful := testutil.NewTestItem("awful",
		testutil.WithStatus(domain.StatusFinished),
		testutil.WithPersonalRating(2),
	)
	for _, it := range []*domain.BacklogItem{&good, &great, &legend, &awful} {
		require.NoError(t, env.items.Create(ctx, it))
	}

	hall, err := env.stats.HallOfFame(ctx)
	require.NoError(t, err)
	require.Len(t, hall.Best, 2)
	assert.Equal(t, "legend", hall.Best[0].Title)
	assert.Equal(t, "great", hall.Best[1].Title)
	require.Len(t, hall.Worst, 1)
	assert.Equal(t, "awful", hall.Worst[0].Title)
}

func TestStatsAudit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	unrated := testutil.NewTestItem("unrated finish",
		testutil.WithStatus(domain.StatusFinished),
		testutil.WithGenres("RPG"),
	)
	unrated.CoverURL = "https://covers.example/a.jpg"
	stalled := testutil.NewTestItem("stalled",
		testutil.WithStatus(domain.StatusInProgress),
		testutil.WithGenres("RPG"),
		testutil.WithProgress(0, 40),
	)
	stalled.CoverURL = "https://covers.example/b.jpg"
	bare := testutil.NewTestItem("bare")
	placeholder := testutil.NewTestItem("someday", testutil.WithStatus(domain.StatusWishlist))
	shelved := testutil.NewTestItem("shelved", testutil.WithStatus(domain.StatusArchived))
	clean := testutil.NewTestItem("fine", testutil.WithGenres("Indie"))
	clean.CoverURL = "https://covers.example/c.jpg"
	for _, it := range []*domain.BacklogItem{&unrated, &stalled, &bare, &placeholder, &shelved, &clean} {
		require.NoError(t, env.items.Create(ctx, it))
	}

	findings, err := env.stats.Audit(ctx)
	require.NoError(t, err)

	byTitle := make(map[string][]string)
	for _, f := range findings {
		byTitle[f.Item.Title] = f.Issues
	}
	assert.Equal(t, []string{"finished but not rated"}, byTitle["unrated finish"])
	assert.Equal(t, []string{"in progress with nothing logged"}, byTitle["stalled"])
	assert.ElementsMatch(t, []string{"missing cover", "missing genres"}, byTitle["bare"])
	assert.NotContains(t, byTitle, "someday")
	assert.NotContains(t, byTitle, "shelved")
	assert.NotContains(t, byTitle, "fine")
}
