package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/venuecast/internal/cli"
	"github.com/theirongolddev/venuecast/internal/forecast"
)

var flagForceActual string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Reconciled weekly view with aggregate totals",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&flagForceActual, "force-actual", "", "Comma-separated weeks to treat as actual even without a record")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	plan, series, actuals, err := loadPlanData()
	if err != nil {
		return err
	}

	forced, err := parseWeekSet(flagForceActual)
	if err != nil {
		return err
	}

	reconciled, err := forecast.Reconcile(series, actuals, forced)
	if err != nil {
		return err
	}
	summary := forecast.Summarize(reconciled)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SUMMARY  %s  %dw", plan.Name, plan.HorizonWeeks)))
	fmt.Println()

	rows := make([][]string, 0, len(reconciled))
	for _, rw := range reconciled {
		revenue, cost, profit := "-", "-", "-"
		if rw.IsActual() {
			revenue = cli.FormatMoney(*rw.EffectiveRevenue)
			cost = cli.FormatMoney(*rw.EffectiveCost)
			profit = cli.FormatMoney(*rw.EffectiveProfit)
		}
		rows = append(rows, []string{
			cli.FormatWeek(rw.Week),
			rw.Source.String(),
			revenue,
			cost,
			profit,
			cli.FormatMoney(rw.ProjectedRevenue),
			cli.FormatMoney(rw.ProjectedProfit),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Week", "Source", "Revenue", "Costs", "Profit", "Proj Rev", "Proj Profit"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Totals (actuals where available, forecast elsewhere)",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Revenue", cli.FormatMoney(summary.TotalRevenue)},
			{"Costs", cli.FormatMoney(summary.TotalCost)},
			{"Profit", cli.FormatMoney(summary.TotalProfit)},
			{"Margin", cli.FormatPercent(summary.ProfitMargin)},
		},
	}))

	return nil
}
