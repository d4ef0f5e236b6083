package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/alexanderramin/nextup/internal/cliconfig"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/ranking"
	"github.com/alexanderramin/nextup/internal/service"
	"github.com/spf13/cobra"
)

func newNextCmd(app *App) *cobra.Command {
	var (
		limit         int
		types, states []string
		genre, search string
		only, skip    []string
		explain       bool
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Recommend what to pick up next",
		RunE: func(cmd *cobra.Command, args []string) error {
			factors, err := resolveFactors(only, skip)
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = cliconfig.DefaultLimit()
			}

			req := service.RecommendRequest{
				Genre:   genre,
				Search:  search,
				Limit:   limit,
				Factors: factors,
			}
			for _, t := range types {
				req.Types = append(req.Types, domain.MediaType(t))
			}
			for _, s := range states {
				req.Statuses = append(req.Statuses, domain.ItemStatus(s))
			}

			ranked, err := app.Ranking.Recommend(context.Background(), req)
			if err != nil {
				return err
			}
			if len(ranked) == 0 {
				fmt.Println(formatter.Dim("Nothing to recommend"))
				return nil
			}

			if app.IsInteractive == nil || app.IsInteractive() {
				fmt.Println(formatter.Header("Up Next"))
			}
			for i, r := range ranked {
				fmt.Println(formatter.RankedLine(i+1, r))
				if explain {
					printSubScores(r)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of recommendations")
	cmd.Flags().StringSliceVar(&types, "type", nil, "Restrict to media types")
	cmd.Flags().StringSliceVar(&states, "status", nil, "Restrict to statuses")
	cmd.Flags().StringVar(&genre, "genre", "", "Restrict to a genre")
	cmd.Flags().StringVar(&search, "search", "", "Restrict to titles containing a substring")
	cmd.Flags().StringSliceVar(&only, "only", nil, "Score with only these factors")
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "Score without these factors")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show the per-factor sub-scores")

	return cmd
}

// resolveFactors turns --only/--skip into an active-factor set. The two flags
// are mutually exclusive; unknown factor names are rejected.
func resolveFactors(only, skip []string) (ranking.ActiveFactors, error) {
	if len(only) > 0 && len(skip) > 0 {
		return nil, fmt.Errorf("--only and --skip cannot be combined")
	}
	if len(only) == 0 && len(skip) == 0 {
		return nil, nil
	}

	valid := ranking.DefaultActiveFactors()
	if len(only) > 0 {
		factors := make(ranking.ActiveFactors)
		for _, name := range only {
			f := domain.Factor(name)
			if !valid[f] {
				return nil, fmt.Errorf("unknown factor %q", name)
			}
			factors[f] = true
		}
		return factors, nil
	}

	factors := ranking.DefaultActiveFactors()
	for _, name := range skip {
		f := domain.Factor(name)
		if !valid[f] {
			return nil, fmt.Errorf("unknown factor %q", name)
		}
		delete(factors, f)
	}
	return factors, nil
}

func printSubScores(r ranking.RankedItem) {
	factors := make([]domain.Factor, 0, len(r.SubScores))
	for f := range r.SubScores {
		factors = append(factors, f)
	}
	sort.Slice(factors, func(i, j int) bool { return factors[i] < factors[j] })

	for _, f := range factors {
		fmt.Printf("      %s %s\n",
			formatter.Dim(fmt.Sprintf("%-17s", f)),
			formatter.ScoreStyle(r.SubScores[f]).Render(fmt.Sprintf("%5.2f", r.SubScores[f])))
	}
}
