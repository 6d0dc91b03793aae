package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/venuecast/internal/cli"
	"github.com/theirongolddev/venuecast/internal/config"
	"github.com/theirongolddev/venuecast/internal/model"
)

var flagForecastFile string

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Render the weekly forecast for a plan",
	RunE:  runForecast,
}

func init() {
	forecastCmd.Flags().StringVarP(&flagForecastFile, "file", "f", "", "Forecast a plan TOML file instead of a stored plan")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	var plan model.ProjectionConfig
	var series []model.WeeklyProjection
	var err error

	if flagForecastFile != "" {
		plan, err = config.LoadPlan(flagForecastFile)
		if err != nil {
			return err
		}
		series, err = memo.Generate(plan)
		if err != nil {
			return err
		}
	} else {
		plan, series, _, err = loadPlanData()
		if err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FORECAST  %s  %dw", plan.Name, plan.HorizonWeeks)))
	fmt.Println()

	rows := make([][]string, 0, len(series))
	profits := make([]float64, 0, len(series))
	for _, wp := range series {
		rows = append(rows, []string{
			cli.FormatWeek(wp.Week),
			cli.FormatQty(wp.FootTraffic),
			cli.FormatMoney(wp.TotalRevenue),
			cli.FormatMoney(wp.TotalCost),
			cli.FormatMoney(wp.WeeklyProfit),
			cli.FormatMoney(wp.CumulativeProfit),
		})
		profits = append(profits, wp.WeeklyProfit)
	}

	table := cli.Table{
		Headers: []string{"Week", "Traffic", "Revenue", "Costs", "Profit", "Cumulative"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))
	fmt.Println()
	fmt.Println(cli.RenderProfitLine(profits))
	fmt.Println()

	return nil
}
