package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/metadata"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		title, typ, status, platform, author string
		genres, origin, unit, series         string
		hype, rating, duration, total        float64
		seriesOrder, seriesTotal             int
		wishlist, lookup                     bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the backlog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			item := &domain.BacklogItem{
				Title:            title,
				Type:             domain.MediaType(typ),
				Status:           domain.ItemStatus(status),
				Platform:         platform,
				Author:           author,
				Genres:           genres,
				Hype:             hype,
				ExternalRating:   rating,
				Origin:           domain.Origin(origin),
				DurationEstimate: duration,
				ProgressTotal:    total,
				SeriesName:       series,
				SeriesOrder:      seriesOrder,
				SeriesTotal:      seriesTotal,
			}
			if wishlist {
				item.Status = domain.StatusWishlist
			}
			if cmd.Flags().Changed("unit") {
				item.DurationUnit = domain.DurationUnit(unit)
			}

			if lookup {
				applyLookup(ctx, app.Metadata, item, cmd)
			}

			if err := app.Library.Add(ctx, item); err != nil {
				return err
			}

			fmt.Printf("Added %s\n", formatter.ItemLine(*item))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&typ, "type", "", "Media type (game|book|series|movie|anime|manga)")
	cmd.Flags().StringVar(&status, "status", "", "Initial status (default backlog)")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform or service the item lives on")
	cmd.Flags().StringVar(&author, "author", "", "Author, studio or developer")
	cmd.Flags().StringVar(&genres, "genres", "", "Comma-separated genres")
	cmd.Flags().Float64Var(&hype, "hype", 0, "Personal hype 0-10")
	cmd.Flags().Float64Var(&rating, "rating", 0, "External critic rating 0-100")
	cmd.Flags().StringVar(&origin, "origin", "free", "How the item was acquired (free|paid)")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Estimated duration in the item's unit")
	cmd.Flags().StringVar(&unit, "unit", "", "Duration unit override (hours|pages|episodes|minutes|editions)")
	cmd.Flags().Float64Var(&total, "progress-total", 0, "Total progress units (pages, episodes, ...)")
	cmd.Flags().StringVar(&series, "series", "", "Series name")
	cmd.Flags().IntVar(&seriesOrder, "series-order", 1, "Position within the series")
	cmd.Flags().IntVar(&seriesTotal, "series-total", 1, "Total entries in the series")
	cmd.Flags().BoolVar(&wishlist, "wishlist", false, "Add to the wishlist instead of the backlog")
	cmd.Flags().BoolVar(&lookup, "lookup", false, "Fill missing fields from the metadata provider")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

// applyLookup fills fields the user did not set explicitly from the metadata
// provider. Lookup failures are non-fatal; the item is added as given.
func applyLookup(ctx context.Context, provider metadata.Provider, item *domain.BacklogItem, cmd *cobra.Command) {
	meta, err := provider.Lookup(ctx, item.Type, item.Title)
	if err != nil {
		if errors.Is(err, metadata.ErrNoMatch) {
			fmt.Println(formatter.Dim("No metadata match, adding as entered"))
		} else {
			fmt.Println(formatter.Dim("Metadata lookup failed: " + err.Error()))
		}
		return
	}

	if item.Author == "" && meta.Author != "" {
		item.Author = meta.Author
	}
	if item.Genres == "" && meta.Genres != "" {
		item.Genres = meta.Genres
	}
	if !cmd.Flags().Changed("rating") && meta.ExternalRating > 0 {
		item.ExternalRating = meta.ExternalRating
	}
	if !cmd.Flags().Changed("duration") && meta.DurationEstimate > 0 {
		item.DurationEstimate = meta.DurationEstimate
	}
	if meta.CoverURL != "" {
		item.CoverURL = meta.CoverURL
	}
}
