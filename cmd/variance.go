package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/venuecast/internal/cli"
	"github.com/theirongolddev/venuecast/internal/forecast"
)

var varianceCmd = &cobra.Command{
	Use:   "variance",
	Short: "Projected-vs-actual deltas per week and metric",
	RunE:  runVariance,
}

func init() {
	rootCmd.AddCommand(varianceCmd)
}

func runVariance(_ *cobra.Command, _ []string) error {
	plan, series, actuals, err := loadPlanData()
	if err != nil {
		return err
	}

	records := forecast.AnalyzeVariance(series, actuals)
	if len(records) == 0 {
		fmt.Println("\n  No completed weeks to analyze yet. Record results with `venuecast actuals add`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("VARIANCE  %s", plan.Name)))
	fmt.Println()

	rows := make([][]string, 0, len(records)+len(records)/3)
	lastWeek := records[0].Week
	for _, rec := range records {
		if rec.Week != lastWeek {
			rows = append(rows, []string{"---"})
			lastWeek = rec.Week
		}
		rows = append(rows, []string{
			cli.FormatWeek(rec.Week),
			string(rec.Metric),
			cli.FormatMoney(rec.Projected),
			cli.FormatMoney(rec.Actual),
			cli.FormatMoneyDelta(rec.Absolute),
			cli.FormatPercentDelta(rec.Percent),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Week", "Metric", "Projected", "Actual", "Delta", "Delta %"},
		Rows:    rows,
	}))
	return nil
}
