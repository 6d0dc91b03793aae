package forecast

import (
	"github.com/theirongolddev/venuecast/internal/model"
)

// Summarize reduces a reconciled series to whole-horizon totals. Each week
// contributes exactly once: the effective figures when the week counts as
// actual, the projected figures otherwise.
func Summarize(reconciled []model.ReconciledWeek) model.AggregateSummary {
	var sum model.AggregateSummary
	for _, w := range reconciled {
		revenue, cost, profit := contribution(w)
		sum.TotalRevenue += revenue
		sum.TotalCost += cost
		sum.TotalProfit += profit
	}
	if sum.TotalRevenue > 0 {
		sum.ProfitMargin = sum.TotalProfit / sum.TotalRevenue * 100
	}
	return sum
}

// contribution picks the single counted value per metric for one week.
func contribution(w model.ReconciledWeek) (revenue, cost, profit float64) {
	revenue, cost, profit = w.ProjectedRevenue, w.ProjectedCost, w.ProjectedProfit
	if !w.IsActual() {
		return revenue, cost, profit
	}
	if w.EffectiveRevenue != nil {
		revenue = *w.EffectiveRevenue
	}
	if w.EffectiveCost != nil {
		cost = *w.EffectiveCost
	}
	if w.EffectiveProfit != nil {
		profit = *w.EffectiveProfit
	}
	return revenue, cost, profit
}
