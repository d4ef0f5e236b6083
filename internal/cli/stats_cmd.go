package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collection overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := app.Stats.Overview(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Overview"))
			fmt.Printf("  %s  %d\n", formatter.Dim("ITEMS   "), overview.TotalItems)
			for _, status := range []domain.ItemStatus{
				domain.StatusBacklog, domain.StatusInProgress, domain.StatusFinished,
				domain.StatusWishlist, domain.StatusArchived,
			} {
				if n := overview.ByStatus[status]; n > 0 {
					fmt.Printf("    %s %d\n", formatter.StatusStyle(status).Render(fmt.Sprintf("%-12s", status)), n)
				}
			}

			types := make([]domain.MediaType, 0, len(overview.ByType))
			for t := range overview.ByType {
				types = append(types, t)
			}
			sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
			for _, t := range types {
				fmt.Printf("    %s %d\n", formatter.Dim(fmt.Sprintf("%-12s", t)), overview.ByType[t])
			}

			fmt.Printf("  %s  %.0f%% finished", formatter.Dim("LIFETIME"), overview.FinishedPercent)
			if overview.MeanDaysToFinish > 0 {
				fmt.Printf(", %.0f days to finish on average", overview.MeanDaysToFinish)
			}
			fmt.Println()
			if overview.MeanOpenHype > 0 {
				fmt.Printf("  %s  %.1f mean hype across open items\n", formatter.Dim("HYPE    "), overview.MeanOpenHype)
			}
			fmt.Printf("  %s  %d finished, %s logged\n", formatter.Dim("THIS YR "),
				overview.FinishedThisYear, formatMinutes(overview.MinutesThisYear))
			fmt.Printf("  %s  %s\n", formatter.Dim("BALANCE "),
				formatter.StylePurple.Render(fmt.Sprintf("%.1f PL", overview.UnlockBalance)))
			return nil
		},
	}
	return cmd
}

func newReviewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review [YEAR]",
		Short: "Year-in-review summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := time.Now().Year()
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q", args[0])
				}
				year = y
			}

			review, err := app.Stats.YearInReview(context.Background(), year)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(fmt.Sprintf("Year in Review %d", review.Year)))
			if len(review.Finished) == 0 {
				fmt.Println(formatter.Dim("Nothing finished"))
				return nil
			}

			fmt.Printf("Finished %s across %s\n",
				formatter.Bold(fmt.Sprintf("%d items", len(review.Finished))),
				formatMinutes(review.TotalMinutes))
			if review.AverageRating > 0 {
				fmt.Printf("Average rating %s\n",
					formatter.StyleYellow.Render(fmt.Sprintf("★%.1f", review.AverageRating)))
			}
			if review.GameHours > 0 {
				fmt.Printf("%s of games played\n", formatter.Bold(fmt.Sprintf("%.0fh", review.GameHours)))
			}
			if review.PagesRead > 0 {
				fmt.Printf("%s read\n", formatter.Bold(fmt.Sprintf("%.0f pages", review.PagesRead)))
			}
			if review.BestRated != nil {
				fmt.Printf("Best of the year: %s %s\n", formatter.Bold(review.BestRated.Title),
					formatter.StyleYellow.Render(fmt.Sprintf("★%.1f", review.BestRated.PersonalRating)))
			}
			if review.LongestGame != nil {
				fmt.Printf("Longest game: %s\n", formatter.Bold(review.LongestGame.Title))
			}
			fmt.Printf("\n%s\n", formatter.Bold("Finishes by month"))
			for m := time.January; m <= time.December; m++ {
				n := review.FinishesByMonth[m-1]
				if n == 0 {
					continue
				}
				fmt.Printf("  %s %d\n", formatter.Dim(fmt.Sprintf("%-10s", m)), n)
			}
			if len(review.TopGenres) > 0 {
				fmt.Printf("\n%s\n", formatter.Bold("Top genres"))
				for _, g := range review.TopGenres {
					fmt.Printf("  %s %d\n", formatter.Dim(fmt.Sprintf("%-20s", g.Genre)), g.Count)
				}
			}
			fmt.Println()
			for _, item := range review.Finished {
				fmt.Println(formatter.ItemLine(item))
			}
			return nil
		},
	}
	return cmd
}

func newHallCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hall",
		Short: "Show the hall of fame",
		RunE: func(cmd *cobra.Command, args []string) error {
			hall, err := app.Stats.HallOfFame(context.Background())
			if err != nil {
				return err
			}
			if len(hall.Best) == 0 && len(hall.Worst) == 0 {
				fmt.Println(formatter.Dim("No strongly rated finishes yet"))
				return nil
			}

			if len(hall.Best) > 0 {
				fmt.Println(formatter.Header("Hall of Fame"))
				for _, item := range hall.Best {
					fmt.Println(formatter.ItemLine(item))
				}
			}
			if len(hall.Worst) > 0 {
				fmt.Println(formatter.Header("Hall of Shame"))
				for _, item := range hall.Worst {
					fmt.Println(formatter.ItemLine(item))
				}
			}
			return nil
		},
	}
	return cmd
}

func newAuditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Flag items with incomplete bookkeeping",
		RunE: func(cmd *cobra.Command, args []string) error {
			findings, err := app.Stats.Audit(context.Background())
			if err != nil {
				return err
			}
			if len(findings) == 0 {
				fmt.Println(formatter.StyleGreen.Render("Everything in order"))
				return nil
			}

			fmt.Println(formatter.Header("Audit"))
			for _, f := range findings {
				fmt.Println(formatter.ItemLine(f.Item))
				for _, issue := range f.Issues {
					fmt.Printf("    %s %s\n", formatter.StyleRed.Render("!"), issue)
				}
			}
			return nil
		},
	}
	return cmd
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}
