package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/ranking"
)

// ProgressBar renders a fixed-width bar for a 0-1 ratio, like "███░░░░░░░ 30%".
func ProgressBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3.0f%%", bar, ratio*100)
}

// ItemLine renders a one-line summary of a backlog item.
func ItemLine(item domain.BacklogItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s",
		Dim(fmt.Sprintf("#%d", item.ID)),
		Bold(item.Title),
		StatusStyle(item.Status).Render(string(item.Status)))
	fmt.Fprintf(&b, " %s", Dim(string(item.Type)))
	if item.SeriesName != "" {
		fmt.Fprintf(&b, " %s", Dim(fmt.Sprintf("(%s #%d)", item.SeriesName, item.SeriesOrder)))
	}
	if item.PersonalRating > 0 {
		fmt.Fprintf(&b, " %s", StyleYellow.Render(fmt.Sprintf("★%.1f", item.PersonalRating)))
	}
	return b.String()
}

// RankedLine renders a recommendation row: rank, score, title and context.
func RankedLine(rank int, r ranking.RankedItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%2d. %s  %s",
		rank,
		ScoreStyle(r.FinalScore).Render(fmt.Sprintf("%5.2f", r.FinalScore)),
		Bold(r.Item.Title))
	fmt.Fprintf(&b, " %s", Dim(string(r.Item.Type)))
	if r.Item.ProgressTotal > 0 {
		fmt.Fprintf(&b, "  %s", ProgressBar(r.ProgressRatio, 10))
	}
	if r.Item.Status == domain.StatusWishlist && r.UnlockCost > 0 {
		fmt.Fprintf(&b, "  %s", StylePurple.Render(fmt.Sprintf("%.0f PL", r.UnlockCost)))
	}
	return b.String()
}

// AchievementLine renders an achievement with its locked/unlocked marker.
func AchievementLine(a domain.Achievement) string {
	marker := StyleDim.Render("○")
	name := Dim(a.Name)
	if a.Unlocked {
		marker = StyleGreen.Render("●")
		name = Bold(a.Name)
	}
	line := fmt.Sprintf("%s %s  %s", marker, name, Dim(a.Description))
	if a.Dynamic {
		line += " " + StylePurple.Render("[earned pattern]")
	}
	return line
}
