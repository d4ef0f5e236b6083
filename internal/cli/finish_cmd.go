package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/spf13/cobra"
)

func newFinishCmd(app *App) *cobra.Command {
	var duration float64

	cmd := &cobra.Command{
		Use:   "finish ID",
		Short: "Mark an item finished and collect the reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			result, err := app.Library.Finish(context.Background(), id, duration)
			if err != nil {
				return err
			}

			fmt.Printf("Finished %s\n", formatter.Bold(result.Item.Title))
			fmt.Printf("Earned %s (balance %s)\n",
				formatter.StyleGreen.Render(fmt.Sprintf("%.1f PL", result.EarnedPL)),
				formatter.StylePurple.Render(fmt.Sprintf("%.1f PL", result.Balance)))
			printAchievementNews(result.NewAchievements)
			return nil
		},
	}

	cmd.Flags().Float64Var(&duration, "duration", 0, "Actual duration in the item's unit (0 keeps the estimate)")

	return cmd
}

func newRateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate ID RATING",
		Short: "Set a personal rating 0-10",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			rating, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid rating %q", args[1])
			}

			news, err := app.Library.Rate(context.Background(), id, rating)
			if err != nil {
				return err
			}

			fmt.Printf("Rated item #%d %s\n", id, formatter.StyleYellow.Render(fmt.Sprintf("★%.1f", rating)))
			printAchievementNews(news)
			return nil
		},
	}
	return cmd
}

// printAchievementNews reports a Sync batch: freshly unlocked achievements
// and freshly minted (still locked) dynamic definitions.
func printAchievementNews(news []domain.Achievement) {
	for _, a := range news {
		if a.Unlocked {
			fmt.Printf("%s %s\n", formatter.StyleYellow.Render("Achievement unlocked:"), formatter.Bold(a.Name))
		} else {
			fmt.Printf("%s %s\n", formatter.StyleBlue.Render("New achievement available:"), formatter.Bold(a.Name))
		}
	}
}

func newUnlockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock ID",
		Short: "Spend PL to move a wishlist item onto the backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			result, err := app.Library.Unlock(context.Background(), id)
			if err != nil {
				return err
			}

			fmt.Printf("Unlocked %s for %s (balance %s)\n",
				formatter.Bold(result.Item.Title),
				formatter.StylePurple.Render(fmt.Sprintf("%.0f PL", result.Cost)),
				formatter.StylePurple.Render(fmt.Sprintf("%.1f PL", result.Balance)))
			return nil
		},
	}
	return cmd
}
