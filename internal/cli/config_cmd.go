package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and tune ranking configuration",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetWeightCmd(app),
		newConfigSetConversionCmd(app),
		newConfigCatchupCmd(app),
		newConfigRecalcCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Get(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Weights"))
			for _, f := range domain.WeightedFactors {
				fmt.Printf("  %s %.2f\n", formatter.Dim(fmt.Sprintf("%-18s", f)), cfg.Weights[f])
			}

			fmt.Println(formatter.Header("Unlock conversion"))
			for _, u := range []domain.DurationUnit{
				domain.UnitHours, domain.UnitPages, domain.UnitEpisodes,
				domain.UnitMinutes, domain.UnitEditions,
			} {
				fmt.Printf("  %s %.0f per PL\n", formatter.Dim(fmt.Sprintf("%-10s", u)), cfg.UnlockConversion[u])
			}

			catchup := formatter.StyleDim.Render("off")
			if cfg.CatchupEnabled {
				catchup = formatter.StyleGreen.Render(fmt.Sprintf("on (x%.1f)", cfg.CatchupMultiplier))
			}
			fmt.Printf("\n  %s %s\n", formatter.Dim("catch-up bonus"), catchup)
			fmt.Printf("  %s %s\n", formatter.Dim("balance       "),
				formatter.StylePurple.Render(fmt.Sprintf("%.1f PL", cfg.UnlockBalance)))
			return nil
		},
	}
	return cmd
}

func newConfigSetWeightCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-weight FACTOR VALUE",
		Short: "Set a factor weight",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			factor := domain.Factor(args[0])

			known := false
			for _, f := range domain.WeightedFactors {
				if f == factor {
					known = true
					break
				}
			}
			if !known {
				return fmt.Errorf("unknown factor %q", args[0])
			}

			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil || value < 0 {
				return fmt.Errorf("invalid weight %q", args[1])
			}

			cfg, err := app.Config.Get(ctx)
			if err != nil {
				return err
			}
			cfg.Weights[factor] = value
			if err := app.Config.Save(ctx, cfg); err != nil {
				return err
			}

			fmt.Printf("Set %s weight to %.2f\n", factor, value)
			return nil
		},
	}
	return cmd
}

func newConfigSetConversionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-conversion UNIT VALUE",
		Short: "Set how many duration units one PL buys",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			unit := domain.DurationUnit(args[0])

			cfg, err := app.Config.Get(ctx)
			if err != nil {
				return err
			}
			if _, ok := cfg.UnlockConversion[unit]; !ok {
				return fmt.Errorf("unknown duration unit %q", args[0])
			}

			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil || value <= 0 {
				return fmt.Errorf("invalid conversion %q", args[1])
			}

			cfg.UnlockConversion[unit] = value
			if err := app.Config.Save(ctx, cfg); err != nil {
				return err
			}

			fmt.Printf("Set %s conversion to %.0f per PL\n", unit, value)
			return nil
		},
	}
	return cmd
}

func newConfigCatchupCmd(app *App) *cobra.Command {
	var multiplier float64

	cmd := &cobra.Command{
		Use:   "catchup on|off",
		Short: "Toggle the series catch-up bonus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := app.Config.Get(ctx)
			if err != nil {
				return err
			}

			switch args[0] {
			case "on":
				cfg.CatchupEnabled = true
			case "off":
				cfg.CatchupEnabled = false
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}
			if cmd.Flags().Changed("multiplier") {
				if multiplier <= 0 {
					return fmt.Errorf("multiplier must be positive")
				}
				cfg.CatchupMultiplier = multiplier
			}

			if err := app.Config.Save(ctx, cfg); err != nil {
				return err
			}

			if cfg.CatchupEnabled {
				fmt.Printf("Catch-up bonus on (x%.1f)\n", cfg.CatchupMultiplier)
			} else {
				fmt.Println("Catch-up bonus off")
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&multiplier, "multiplier", 0, "Score multiplier for skipped series entries")

	return cmd
}

func newConfigRecalcCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recalc-balance",
		Short: "Rebuild the PL balance from finished history",
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := app.Library.RecalculateBalance(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Balance recalculated: %s\n",
				formatter.StylePurple.Render(fmt.Sprintf("%.1f PL", balance)))
			return nil
		},
	}
	return cmd
}
