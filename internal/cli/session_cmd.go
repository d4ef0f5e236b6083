package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Log and inspect activity sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var (
		minutes  int
		progress float64
		note     string
		dateStr  string
	)

	cmd := &cobra.Command{
		Use:   "log ID",
		Short: "Log an activity session against an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			var date time.Time
			if dateStr != "" {
				date, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", dateStr)
				}
			}

			session, err := app.Sessions.Log(context.Background(), id, minutes, progress, note, date)
			if err != nil {
				return err
			}

			fmt.Printf("Logged %s on item #%d",
				formatter.Bold(fmt.Sprintf("%dm", session.Minutes)), id)
			if session.ProgressDelta > 0 {
				fmt.Printf(" (+%.0f progress)", session.ProgressDelta)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes spent (estimated from progress when omitted)")
	cmd.Flags().Float64Var(&progress, "progress", 0, "Progress units advanced (pages, episodes, ...)")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")
	cmd.Flags().StringVar(&dateStr, "date", "", "Session date as YYYY-MM-DD (default today)")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list ID",
		Short: "List an item's sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			sessions, err := app.Sessions.ListByItem(context.Background(), id)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println(formatter.Dim("No sessions logged"))
				return nil
			}
			for _, s := range sessions {
				line := fmt.Sprintf("%s  %s", s.Date.Format("Jan 2, 2006"), formatter.Bold(fmt.Sprintf("%dm", s.Minutes)))
				if s.ProgressDelta > 0 {
					line += fmt.Sprintf("  +%.0f", s.ProgressDelta)
				}
				if s.Note != "" {
					line += "  " + formatter.Dim(s.Note)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	return cmd
}
