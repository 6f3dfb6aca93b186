package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/edurishi/sales-assistant/internal/model"
	"github.com/edurishi/sales-assistant/internal/pipeline"
)

var forecastHorizon int

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project probability-weighted deal value over a horizon",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		stored, err := st.ListDeals(ctx, listAllDeals())
		if err != nil {
			return err
		}
		deals := make([]*model.Deal, len(stored))
		for i := range stored {
			deals[i] = &stored[i]
		}

		horizon := forecastHorizon
		if horizon == 0 {
			horizon = cfg.Forecast.HorizonDays
		}
		f := pipeline.BuildForecast(deals, horizon, time.Now())

		fmt.Printf("Forecast through %s (%d days)\n\n", f.EndDate, f.HorizonDays)
		fmt.Printf("%-40s %-12s %5s %16s %16s\n",
			"Deal", "Close Date", "Prob", "Amount", "Weighted")
		for _, d := range f.Deals {
			name := d.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			fmt.Printf("%-40s %-12s %4d%% %16s %16s\n",
				name, d.CloseDate, d.Probability,
				model.FormatCurrency(d.Amount, ""),
				model.FormatCurrency(d.WeightedAmount, ""))
		}
		fmt.Printf("\nPotential: %s\n", f.FormattedPotential)
		fmt.Printf("Weighted:  %s\n", f.FormattedWeighted)
		return nil
	},
}

func init() {
	forecastCmd.Flags().IntVar(&forecastHorizon, "horizon", 0, "forecast horizon in days (default from config)")
	rootCmd.AddCommand(forecastCmd)
}
