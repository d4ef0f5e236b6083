package domain

import "strings"

// SplitGenres explodes a comma-encoded genre list into trimmed, de-duplicated
// entries, dropping empties. Order of first appearance is preserved. Shared by
// the affinity model, dynamic achievement generation, and filtering.
func SplitGenres(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, part := range strings.Split(s, ",") {
		g := strings.TrimSpace(part)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}

// HasGenre reports whether the comma-encoded list contains the given genre.
func HasGenre(genres, genre string) bool {
	for _, g := range SplitGenres(genres) {
		if g == genre {
			return true
		}
	}
	return false
}
