package forecast

import (
	"github.com/theirongolddev/venuecast/internal/model"
)

// Compare diffs two independently generated forecast series week by week,
// producing revenue, cost, profit, and attendance records per week. The
// series must have equal length and identical week indexing.
func Compare(baseline, scenario []model.WeeklyProjection) ([]model.ScenarioDiff, error) {
	if len(baseline) != len(scenario) {
		return nil, validationErrorf("series length mismatch: baseline %d weeks, scenario %d weeks",
			len(baseline), len(scenario))
	}

	diffs := make([]model.ScenarioDiff, 0, len(baseline)*4)
	for i := range baseline {
		b, s := baseline[i], scenario[i]
		if b.Week != s.Week {
			return nil, validationErrorf("week index mismatch at position %d: baseline week %d, scenario week %d",
				i, b.Week, s.Week)
		}
		diffs = append(diffs,
			scenarioDiff(b.Week, model.MetricRevenue, b.TotalRevenue, s.TotalRevenue),
			scenarioDiff(b.Week, model.MetricCost, b.TotalCost, s.TotalCost),
			scenarioDiff(b.Week, model.MetricProfit, b.WeeklyProfit, s.WeeklyProfit),
			scenarioDiff(b.Week, model.MetricAttendance, b.FootTraffic, s.FootTraffic),
		)
	}
	return diffs, nil
}

func scenarioDiff(week int, metric model.Metric, baseline, scenario float64) model.ScenarioDiff {
	diff := scenario - baseline
	var pct float64
	if baseline != 0 {
		pct = diff / baseline * 100
	}
	return model.ScenarioDiff{
		Week:     week,
		Metric:   metric,
		Baseline: baseline,
		Scenario: scenario,
		Diff:     diff,
		DiffPct:  pct,
	}
}
