package forecast

import (
	"math"
	"sort"

	"github.com/theirongolddev/venuecast/internal/model"
)

// AnalyzeVariance computes actual-minus-projected deltas for every week
// present in both inputs, ordered by ascending week with revenue, cost,
// and profit records per week. Weeks with no actual record produce nothing.
func AnalyzeVariance(series []model.WeeklyProjection, actuals []model.ActualRecord) []model.VarianceRecord {
	projected := make(map[int]model.WeeklyProjection, len(series))
	for _, wp := range series {
		projected[wp.Week] = wp
	}

	byWeek := make(map[int]model.ActualRecord, len(actuals))
	for _, a := range actuals {
		byWeek[a.Week] = a // later record wins, matching reconciliation
	}

	weeks := make([]int, 0, len(byWeek))
	for w := range byWeek {
		if _, ok := projected[w]; ok {
			weeks = append(weeks, w)
		}
	}
	sort.Ints(weeks)

	records := make([]model.VarianceRecord, 0, len(weeks)*3)
	for _, w := range weeks {
		wp, a := projected[w], byWeek[w]
		records = append(records,
			variance(w, model.MetricRevenue, wp.TotalRevenue, a.Revenue),
			variance(w, model.MetricCost, wp.TotalCost, a.Expenses),
			variance(w, model.MetricProfit, wp.WeeklyProfit, a.Profit()),
		)
	}
	return records
}

func variance(week int, metric model.Metric, projected, actual float64) model.VarianceRecord {
	absolute := actual - projected
	var percent float64
	if projected != 0 {
		// Absolute value in the denominator keeps the sign meaningful when
		// the forecast baseline is itself negative (a projected loss).
		percent = absolute / math.Abs(projected) * 100
	}
	return model.VarianceRecord{
		Week:      week,
		Metric:    metric,
		Projected: projected,
		Actual:    actual,
		Absolute:  absolute,
		Percent:   percent,
	}
}
