package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage yearly finishing goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var (
		typ, genre   string
		target, year int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a yearly goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := &domain.Goal{
				MediaType: domain.MediaType(typ),
				Genre:     genre,
				Target:    target,
				Year:      year,
			}
			if err := app.Goals.Create(context.Background(), g); err != nil {
				return err
			}

			fmt.Printf("Created goal: finish %d", g.Target)
			if g.MediaType != "" {
				fmt.Printf(" %s items", g.MediaType)
			} else {
				fmt.Print(" items")
			}
			if g.Genre != "" {
				fmt.Printf(" in %s", g.Genre)
			}
			fmt.Printf(" in %d (%s)\n", g.Year, g.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "Number of items to finish")
	cmd.Flags().StringVar(&typ, "type", "", "Restrict to a media type")
	cmd.Flags().StringVar(&genre, "genre", "", "Restrict to a genre")
	cmd.Flags().IntVar(&year, "year", 0, "Goal year (default current)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show goal progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = time.Now().Year()
			}
			progress, err := app.Goals.Progress(context.Background(), year)
			if err != nil {
				return err
			}
			if len(progress) == 0 {
				fmt.Println(formatter.Dim(fmt.Sprintf("No goals for %d", year)))
				return nil
			}

			fmt.Println(formatter.Header(fmt.Sprintf("Goals %d", year)))
			for _, p := range progress {
				scope := "any"
				if p.Goal.MediaType != "" {
					scope = string(p.Goal.MediaType)
				}
				if p.Goal.Genre != "" {
					scope += " / " + p.Goal.Genre
				}
				ratio := float64(p.Done) / float64(p.Goal.Target)
				fmt.Printf("%s  %d/%d  %s  %s\n",
					formatter.ProgressBar(ratio, 15),
					p.Done, p.Goal.Target,
					formatter.Bold(scope),
					formatter.Dim(p.Goal.ID))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Goal year (default current)")

	return cmd
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Goals.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed goal %s\n", args[0])
			return nil
		},
	}
	return cmd
}
