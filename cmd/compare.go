package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/venuecast/internal/cli"
	"github.com/theirongolddev/venuecast/internal/config"
	"github.com/theirongolddev/venuecast/internal/forecast"
	"github.com/theirongolddev/venuecast/internal/model"
)

var (
	flagCompareBaseline string
	flagCompareScenario string
	flagCompareWeek     int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Diff two forecast scenarios week by week",
	Long: "Compares the selected stored plan (or -b file) as baseline against\n" +
		"a scenario plan file. Both are forecast independently; actuals play no part.",
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&flagCompareBaseline, "baseline", "b", "", "Baseline plan TOML file (default: stored plan)")
	compareCmd.Flags().StringVarP(&flagCompareScenario, "scenario", "f", "", "Scenario plan TOML file (required)")
	compareCmd.Flags().IntVarP(&flagCompareWeek, "week", "w", 0, "Only show one week")
	_ = compareCmd.MarkFlagRequired("scenario")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	var baselinePlan model.ProjectionConfig
	var err error

	if flagCompareBaseline != "" {
		baselinePlan, err = config.LoadPlan(flagCompareBaseline)
		if err != nil {
			return err
		}
	} else {
		baselinePlan, _, _, err = loadPlanData()
		if err != nil {
			return err
		}
	}

	scenarioPlan, err := config.LoadPlan(flagCompareScenario)
	if err != nil {
		return err
	}

	baseline, err := memo.Generate(baselinePlan)
	if err != nil {
		return fmt.Errorf("baseline: %w", err)
	}
	scenario, err := memo.Generate(scenarioPlan)
	if err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	diffs, err := forecast.Compare(baseline, scenario)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("COMPARE  %s vs %s", baselinePlan.Name, scenarioPlan.Name)))
	fmt.Println()

	var rows [][]string
	lastWeek := 0
	for _, d := range diffs {
		if flagCompareWeek != 0 && d.Week != flagCompareWeek {
			continue
		}
		if lastWeek != 0 && d.Week != lastWeek {
			rows = append(rows, []string{"---"})
		}
		lastWeek = d.Week

		baselineVal, scenarioVal, diffVal := cli.FormatMoney(d.Baseline), cli.FormatMoney(d.Scenario), cli.FormatMoneyDelta(d.Diff)
		if d.Metric == model.MetricAttendance {
			baselineVal, scenarioVal = cli.FormatQty(d.Baseline), cli.FormatQty(d.Scenario)
			diffVal = cli.FormatQty(d.Diff)
		}
		rows = append(rows, []string{
			cli.FormatWeek(d.Week),
			string(d.Metric),
			baselineVal,
			scenarioVal,
			diffVal,
			cli.FormatPercentDelta(d.DiffPct),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Week", "Metric", "Baseline", "Scenario", "Diff", "Diff %"},
		Rows:    rows,
	}))
	return nil
}
