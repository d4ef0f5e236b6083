package achievement

import "github.com/alexanderramin/nextup/internal/domain"

// Built-in achievement keys. Keys are stable identifiers; names and
// descriptions are display-only and safe to reword.
const (
	KeyFirstFinished   = "first_item_finished"
	KeyBeginnerCritic  = "beginner_critic"
	KeyCollector       = "collector"
	KeyMarathoner      = "marathoner"
	KeyDedicatedGamer  = "dedicated_gamer"
	KeyCinephile       = "cinephile"
	KeyVoraciousReader = "voracious_reader"
	KeyOtaku           = "otaku"
	KeyMediaPolyglot   = "media_polyglot"
	KeyHypeTrain       = "hype_train"
	KeyArchaeologist   = "archaeologist"
	KeyToughCritic     = "tough_critic"
)

// DefaultCatalog returns the built-in achievements, all locked. The order is
// fixed and doubles as the evaluation order, so unlock batches are
// deterministic.
func DefaultCatalog() []domain.Achievement {
	return []domain.Achievement{
		{Key: KeyFirstFinished, Name: "First Blood", Description: "Finish your first item"},
		{Key: KeyBeginnerCritic, Name: "Beginner Critic", Description: "Rate 5 items"},
		{Key: KeyCollector, Name: "Collector", Description: "Track 50 items"},
		{Key: KeyMarathoner, Name: "Marathoner", Description: "Finish 3 entries of the same series"},
		{Key: KeyDedicatedGamer, Name: "Dedicated Gamer", Description: "Finish 10 games"},
		{Key: KeyCinephile, Name: "Cinephile", Description: "Finish 10 movies"},
		{Key: KeyVoraciousReader, Name: "Voracious Reader", Description: "Finish 10 books"},
		{Key: KeyOtaku, Name: "Otaku", Description: "Finish 5 anime or manga"},
		{Key: KeyMediaPolyglot, Name: "Media Polyglot", Description: "Finish items of 5 different media types"},
		{Key: KeyHypeTrain, Name: "Hype Train", Description: "Finish an item you hyped to the maximum"},
		{Key: KeyArchaeologist, Name: "Archaeologist", Description: "Finish an item after over a year on the backlog"},
		{Key: KeyToughCritic, Name: "Tough Critic", Description: "Hand out 3 ratings of 3 or below"},
	}
}
