package achievement

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/nextup/internal/domain"
)

// Thresholds for minting a dynamic achievement from collection-wide counts.
const (
	genreThreshold    = 5
	authorThreshold   = 3
	platformThreshold = 10
)

// GenerateDynamic mints locked achievement definitions from collection
// patterns, regardless of item status: a genre tagged 5 times, an author
// appearing 3 times, a platform appearing 10 times. The result contains only
// achievements whose key is absent from existing; generation is append-only
// and never touches an already minted key. Output is sorted by key so
// repeated runs over the same snapshot agree.
func GenerateDynamic(items []domain.BacklogItem, existing map[string]bool) []domain.Achievement {
	genres := make(map[string]int)
	authors := make(map[string]int)
	platforms := make(map[string]int)
	for _, it := range items {
		for _, g := range domain.SplitGenres(it.Genres) {
			genres[g]++
		}
		if a := strings.TrimSpace(it.Author); a != "" {
			authors[a]++
		}
		if p := strings.TrimSpace(it.Platform); p != "" {
			platforms[p]++
		}
	}

	var minted []domain.Achievement
	mint := func(key, name, desc string) {
		if existing[key] {
			return
		}
		minted = append(minted, domain.Achievement{Key: key, Name: name, Description: desc, Dynamic: true})
	}

	for g, n := range genres {
		if n >= genreThreshold {
			mint("genre_"+slug(g),
				fmt.Sprintf("%s Devotee", g),
				fmt.Sprintf("Finish %d %s items", genreThreshold, g))
		}
	}
	for a, n := range authors {
		if n >= authorThreshold {
			mint("author_"+slug(a),
				fmt.Sprintf("%s Completionist", a),
				fmt.Sprintf("Finish %d works by %s", authorThreshold, a))
		}
	}
	for p, n := range platforms {
		if n >= platformThreshold {
			mint("platform_"+slug(p),
				fmt.Sprintf("%s Loyalist", p),
				fmt.Sprintf("Finish %d items on %s", platformThreshold, p))
		}
	}

	sort.Slice(minted, func(i, j int) bool { return minted[i].Key < minted[j].Key })
	return minted
}

// slug folds a display name into a stable key fragment.
func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	return b.String()
}
