package achievement

import (
	"testing"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDynamic_GenreThreshold(t *testing.T) {
	var items []domain.BacklogItem
	for i := 0; i < 5; i++ {
		items = append(items, testutil.NewTestItem("done",
			testutil.WithStatus(domain.StatusFinished),
			testutil.WithGenres("RPG, Horror"),
		))
	}

	minted := GenerateDynamic(items, nil)

	require.Len(t, minted, 2)
	assert.Equal(t, "genre_horror", minted[0].Key)
	assert.Equal(t, "genre_rpg", minted[1].Key)
	assert.True(t, minted[0].Dynamic)
}

func TestGenerateDynamic_AuthorAndPlatformThresholds(t *testing.T) {
	var items []domain.BacklogItem
	for i := 0; i < 3; i++ {
		items = append(items, testutil.NewTestItem("book",
			testutil.WithType(domain.TypeBook),
			testutil.WithStatus(domain.StatusFinished),
			testutil.WithAuthor("Ursula K. Le Guin"),
		))
	}
	for i := 0; i < 10; i++ {
		items = append(items, testutil.NewTestItem("game",
			testutil.WithStatus(domain.StatusFinished),
			testutil.WithPlatform("Steam Deck"),
		))
	}

	minted := GenerateDynamic(items, nil)

	keys := make([]string, len(minted))
	for i, a := range minted {
		keys[i] = a.Key
	}
	assert.Contains(t, keys, "author_ursula_k_le_guin")
	assert.Contains(t, keys, "platform_steam_deck")
}

func TestGenerateDynamic_CountsWholeCollection(t *testing.T) {
	var items []domain.BacklogItem
	for i := 0; i < 5; i++ {
		items = append(items, testutil.NewTestItem("queued", testutil.WithGenres("RPG")))
	}

	minted := GenerateDynamic(items, nil)

	require.Len(t, minted, 1)
	assert.Equal(t, "genre_rpg", minted[0].Key)
	assert.False(t, minted[0].Unlocked)
}

func TestGenerateDynamic_BelowThresholdMintsNothing(t *testing.T) {
	var items []domain.BacklogItem
	for i := 0; i < 4; i++ {
		items = append(items, testutil.NewTestItem("done",
			testutil.WithStatus(domain.StatusFinished),
			testutil.WithGenres("RPG"),
		))
	}

	assert.Empty(t, GenerateDynamic(items, nil))
}

func TestGenerateDynamic_AppendOnly(t *testing.T) {
	var items []domain.BacklogItem
	for i := 0; i < 5; i++ {
		items = append(items, testutil.NewTestItem("done",
			testutil.WithStatus(domain.StatusFinished),
			testutil.WithGenres("RPG"),
		))
	}
	existing := map[string]bool{"genre_rpg": true}

	assert.Empty(t, GenerateDynamic(items, existing))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "steam_deck", slug("Steam Deck"))
	assert.Equal(t, "ursula_k_le_guin", slug(" Ursula K. Le Guin "))
	assert.Equal(t, "scifi", slug("Sci'Fi"))
}
