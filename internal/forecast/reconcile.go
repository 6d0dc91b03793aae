package forecast

import (
	"github.com/theirongolddev/venuecast/internal/model"
)

// Reconcile merges actual weekly records into a forecast series, producing
// one ReconciledWeek per projected week. Precedence per week:
//
//  1. an ActualRecord exists -> its figures become the effective values
//  2. the week is in forced  -> the projected figures stand in as a
//     placeholder (they are the same numbers, never an extra contribution)
//  3. otherwise              -> projected only, effective fields nil
//
// The projected figures are always copied from the series regardless of
// branch, so consumers can read either track without re-deriving precedence.
// A record for a week outside 1..len(series) is a ValidationError.
func Reconcile(series []model.WeeklyProjection, actuals []model.ActualRecord, forced map[int]bool) ([]model.ReconciledWeek, error) {
	byWeek := make(map[int]model.ActualRecord, len(actuals))
	for _, a := range actuals {
		if a.Week < 1 || a.Week > len(series) {
			return nil, validationErrorf("actual record for week %d is outside the horizon 1..%d", a.Week, len(series))
		}
		// Later record for the same week replaces the earlier one.
		byWeek[a.Week] = a
	}

	out := make([]model.ReconciledWeek, 0, len(series))
	for _, wp := range series {
		rw := model.ReconciledWeek{
			Week:             wp.Week,
			Source:           model.SourceProjected,
			ProjectedRevenue: wp.TotalRevenue,
			ProjectedCost:    wp.TotalCost,
			ProjectedProfit:  wp.WeeklyProfit,
		}

		if a, ok := byWeek[wp.Week]; ok {
			rw.Source = model.SourceActual
			rw.EffectiveRevenue = ref(a.Revenue)
			rw.EffectiveCost = ref(a.Expenses)
			rw.EffectiveProfit = ref(a.Profit())
		} else if forced[wp.Week] {
			rw.Source = model.SourceActualPlaceholder
			rw.EffectiveRevenue = ref(wp.TotalRevenue)
			rw.EffectiveCost = ref(wp.TotalCost)
			rw.EffectiveProfit = ref(wp.WeeklyProfit)
		}

		out = append(out, rw)
	}
	return out, nil
}

func ref(v float64) *float64 {
	return &v
}
