package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitGenres(t *testing.T) {
	assert.Equal(t, []string{"Action", "RPG"}, SplitGenres("Action, RPG"))
	assert.Equal(t, []string{"Action"}, SplitGenres("Action,, Action ,"))
	assert.Nil(t, SplitGenres(""))
	assert.Nil(t, SplitGenres("  ,  , "))
}

func TestSplitGenres_PreservesFirstAppearanceOrder(t *testing.T) {
	got := SplitGenres("RPG, Action, RPG, Strategy")
	assert.Equal(t, []string{"RPG", "Action", "Strategy"}, got)
}

func TestHasGenre(t *testing.T) {
	assert.True(t, HasGenre("Action, RPG", "RPG"))
	assert.False(t, HasGenre("Action, RPG", "RP"))
	assert.False(t, HasGenre("", "RPG"))
}
