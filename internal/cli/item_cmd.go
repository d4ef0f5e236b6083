package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var status, typ string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backlog items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Library.List(context.Background())
			if err != nil {
				return err
			}

			shown := 0
			for _, item := range items {
				if status != "" && item.Status != domain.ItemStatus(status) {
					continue
				}
				if typ != "" && item.Type != domain.MediaType(typ) {
					continue
				}
				fmt.Println(formatter.ItemLine(item))
				shown++
			}
			if shown == 0 {
				fmt.Println(formatter.Dim("Nothing here yet"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&typ, "type", "", "Filter by media type")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			item, err := app.Library.GetByID(ctx, id)
			if err != nil {
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s  %s\n\n", formatter.Bold(item.Title), formatter.Dim(string(item.Type)))
			fmt.Fprintf(&b, "  %s  %s\n", formatter.Dim("STATUS  "), formatter.StatusStyle(item.Status).Render(string(item.Status)))
			fmt.Fprintf(&b, "  %s  #%d\n", formatter.Dim("ID      "), item.ID)
			if item.Author != "" {
				fmt.Fprintf(&b, "  %s  %s\n", formatter.Dim("AUTHOR  "), item.Author)
			}
			if item.Platform != "" {
				fmt.Fprintf(&b, "  %s  %s\n", formatter.Dim("PLATFORM"), item.Platform)
			}
			if item.Genres != "" {
				fmt.Fprintf(&b, "  %s  %s\n", formatter.Dim("GENRES  "), item.Genres)
			}
			fmt.Fprintf(&b, "  %s  %.1f/10\n", formatter.Dim("HYPE    "), item.Hype)
			if item.ExternalRating > 0 {
				fmt.Fprintf(&b, "  %s  %.0f/100\n", formatter.Dim("CRITICS "), item.ExternalRating)
			}
			if item.PersonalRating > 0 {
				fmt.Fprintf(&b, "  %s  %.1f/10\n", formatter.Dim("RATING  "), item.PersonalRating)
			}
			fmt.Fprintf(&b, "  %s  %s\n", formatter.Dim("ORIGIN  "), string(item.Origin))
			if item.DurationEstimate > 0 {
				fmt.Fprintf(&b, "  %s  %.0f %s\n", formatter.Dim("ESTIMATE"), item.DurationEstimate, item.DurationUnit)
			}
			if item.FinalDuration > 0 {
				fmt.Fprintf(&b, "  %s  %.0f %s\n", formatter.Dim("ACTUAL  "), item.FinalDuration, item.DurationUnit)
			}
			if item.ProgressTotal > 0 {
				fmt.Fprintf(&b, "  %s  %s\n", formatter.Dim("PROGRESS"), formatter.ProgressBar(item.ProgressRatio(), 20))
			}
			if item.SeriesName != "" {
				fmt.Fprintf(&b, "  %s  %s (#%d of %d)\n", formatter.Dim("SERIES  "), item.SeriesName, item.SeriesOrder, item.SeriesTotal)
			}
			fmt.Fprintf(&b, "  %s  %s\n", formatter.Dim("ADDED   "), item.DateAdded.Format("Jan 2, 2006"))
			if item.DateFinished != nil {
				fmt.Fprintf(&b, "  %s  %s\n", formatter.Dim("FINISHED"), item.DateFinished.Format("Jan 2, 2006"))
			}

			sessions, err := app.Sessions.ListByItem(ctx, id)
			if err != nil {
				return err
			}
			if len(sessions) > 0 {
				fmt.Fprintf(&b, "\n%s\n", formatter.Header("Sessions"))
				for _, s := range sessions {
					line := fmt.Sprintf("  %s  %dm", s.Date.Format("Jan 2"), s.Minutes)
					if s.ProgressDelta > 0 {
						line += fmt.Sprintf("  +%.0f", s.ProgressDelta)
					}
					if s.Note != "" {
						line += "  " + formatter.Dim(s.Note)
					}
					fmt.Fprintln(&b, line)
				}
			}

			fmt.Print(b.String())
			return nil
		},
	}
	return cmd
}

func newUpdateCmd(app *App) *cobra.Command {
	var (
		title, typ, status, platform, author string
		genres, origin, series               string
		hype, rating, duration               float64
		current, total                       float64
		seriesOrder, seriesTotal             int
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			item, err := app.Library.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				item.Title = title
			}
			if cmd.Flags().Changed("type") {
				item.Type = domain.MediaType(typ)
			}
			if cmd.Flags().Changed("status") {
				item.Status = domain.ItemStatus(status)
			}
			if cmd.Flags().Changed("platform") {
				item.Platform = platform
			}
			if cmd.Flags().Changed("author") {
				item.Author = author
			}
			if cmd.Flags().Changed("genres") {
				item.Genres = genres
			}
			if cmd.Flags().Changed("origin") {
				item.Origin = domain.Origin(origin)
			}
			if cmd.Flags().Changed("hype") {
				item.Hype = hype
			}
			if cmd.Flags().Changed("rating") {
				item.ExternalRating = rating
			}
			if cmd.Flags().Changed("duration") {
				item.DurationEstimate = duration
			}
			if cmd.Flags().Changed("progress") {
				item.ProgressCurrent = current
			}
			if cmd.Flags().Changed("progress-total") {
				item.ProgressTotal = total
			}
			if cmd.Flags().Changed("series") {
				item.SeriesName = series
			}
			if cmd.Flags().Changed("series-order") {
				item.SeriesOrder = seriesOrder
			}
			if cmd.Flags().Changed("series-total") {
				item.SeriesTotal = seriesTotal
			}

			if err := app.Library.Update(ctx, item); err != nil {
				return err
			}

			fmt.Printf("Updated %s\n", formatter.ItemLine(*item))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&typ, "type", "", "Media type")
	cmd.Flags().StringVar(&status, "status", "", "Status (backlog|in_progress|finished|wishlist|archived)")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform or service")
	cmd.Flags().StringVar(&author, "author", "", "Author, studio or developer")
	cmd.Flags().StringVar(&genres, "genres", "", "Comma-separated genres")
	cmd.Flags().StringVar(&origin, "origin", "", "How the item was acquired (free|paid)")
	cmd.Flags().Float64Var(&hype, "hype", 0, "Personal hype 0-10")
	cmd.Flags().Float64Var(&rating, "rating", 0, "External critic rating 0-100")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Estimated duration")
	cmd.Flags().Float64Var(&current, "progress", 0, "Current progress units")
	cmd.Flags().Float64Var(&total, "progress-total", 0, "Total progress units")
	cmd.Flags().StringVar(&series, "series", "", "Series name")
	cmd.Flags().IntVar(&seriesOrder, "series-order", 0, "Position within the series")
	cmd.Flags().IntVar(&seriesTotal, "series-total", 0, "Total entries in the series")

	return cmd
}

func newSearchCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search items by title, author, platform, genre or series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Library.Search(context.Background(), args[0])
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println(formatter.Dim("No matches"))
				return nil
			}
			for _, item := range items {
				fmt.Println(formatter.ItemLine(item))
			}
			return nil
		},
	}
	return cmd
}

func newArchiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive ID",
		Short: "Archive an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			if err := app.Library.Archive(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Archived item #%d\n", id)
			return nil
		},
	}
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an item and its sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			if err := app.Library.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed item #%d\n", id)
			return nil
		},
	}
	return cmd
}
