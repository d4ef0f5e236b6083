package ranking

import (
	"testing"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func finishedRated(title, genres string, rating float64) domain.BacklogItem {
	return testutil.NewTestItem(title,
		testutil.WithStatus(domain.StatusFinished),
		testutil.WithGenres(genres),
		testutil.WithPersonalRating(rating),
	)
}

func TestComputeAffinity_MeanMinusThresholdTimesCount(t *testing.T) {
	items := []domain.BacklogItem{
		finishedRated("a", "RPG", 9),
		finishedRated("b", "RPG", 8),
		finishedRated("c", "RPG", 10),
	}

	affinities := ComputeAffinity(items)

	// mean 9, (9 - 7) * 3 = 6
	assert.InDelta(t, 6.0, affinities["RPG"], 1e-9)
}

func TestComputeAffinity_IgnoresLowRatedAndUnfinished(t *testing.T) {
	items := []domain.BacklogItem{
		finishedRated("loved", "RPG", 9),
		finishedRated("meh", "Horror", 6),
		testutil.NewTestItem("still playing",
			testutil.WithGenres("Strategy"),
			testutil.WithPersonalRating(10),
			testutil.WithStatus(domain.StatusInProgress),
		),
	}

	affinities := ComputeAffinity(items)

	assert.Contains(t, affinities, "RPG")
	assert.NotContains(t, affinities, "Horror")
	assert.NotContains(t, affinities, "Strategy")
}

func TestComputeAffinity_DropsNonPositiveScores(t *testing.T) {
	// Mean exactly at the threshold contributes zero and must be dropped.
	items := []domain.BacklogItem{
		finishedRated("a", "Puzzle", 7),
		finishedRated("b", "Puzzle", 7),
	}

	affinities := ComputeAffinity(items)

	assert.Empty(t, affinities)
}

func TestComputeAffinity_ExplodesAndTrimsGenreList(t *testing.T) {
	items := []domain.BacklogItem{
		finishedRated("a", "RPG, Open World , RPG", 9),
	}

	affinities := ComputeAffinity(items)

	// Duplicate genres on one item count once.
	assert.InDelta(t, 2.0, affinities["RPG"], 1e-9)
	assert.InDelta(t, 2.0, affinities["Open World"], 1e-9)
}

func TestItemAffinity_MaxAcrossGenresNotSum(t *testing.T) {
	affinities := map[string]float64{"RPG": 6, "Open World": 2}

	item := testutil.NewTestItem("both", testutil.WithGenres("RPG, Open World"))
	assert.Equal(t, 6.0, itemAffinity(item, affinities))

	none := testutil.NewTestItem("neither", testutil.WithGenres("Sports"))
	assert.Equal(t, 0.0, itemAffinity(none, affinities))
}
