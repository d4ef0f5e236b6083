package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAchievementsCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// A full sweep catches anything earned by edits done outside the
			// finish and rate flows.
			if _, err := app.Achievements.Sync(ctx, 0); err != nil {
				return err
			}

			achievements, err := app.Achievements.List(ctx)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Achievements"))
			unlocked := 0
			for _, a := range achievements {
				if a.Unlocked {
					unlocked++
				}
				if !a.Unlocked && !all {
					continue
				}
				fmt.Println(formatter.AchievementLine(a))
			}
			fmt.Printf("\n%s\n", formatter.Dim(fmt.Sprintf("%d of %d unlocked", unlocked, len(achievements))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include locked achievements")

	return cmd
}
