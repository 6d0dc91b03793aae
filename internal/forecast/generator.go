package forecast

import (
	"math"

	"github.com/theirongolddev/venuecast/internal/model"
)

// Generate turns a plan into an ordered forecast series of length
// cfg.HorizonWeeks. Identical configs always yield identical series.
func Generate(cfg model.ProjectionConfig) ([]model.WeeklyProjection, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	amortWeekly, amortRemainder, week1Setup := splitSetupCosts(cfg.SetupCosts, cfg.HorizonWeeks)

	series := make([]model.WeeklyProjection, 0, cfg.HorizonWeeks)
	cumulative := 0.0

	for w := 1; w <= cfg.HorizonWeeks; w++ {
		g := growthFactor(cfg.Growth, w)

		wp := model.WeeklyProjection{
			Week:    w,
			Revenue: make(map[model.RevenueStream]float64, len(cfg.Streams)),
			COGS:    make(map[model.RevenueStream]float64, len(cfg.Streams)),
		}
		wp.AvgEventAttendance = cfg.Growth.BaseAttendance * g
		wp.FootTraffic = wp.AvgEventAttendance * cfg.Growth.EventsPerWeek

		for _, stream := range model.Streams() {
			p := cfg.Streams[stream] // missing stream -> zero params
			revenue := wp.FootTraffic * p.UnitPrice * p.ConversionRate
			cogs := revenue * p.COGSPct
			wp.Revenue[stream] = revenue
			wp.COGS[stream] = cogs
			wp.TotalRevenue += revenue
			wp.TotalCOGS += cogs
		}

		wp.MarketingCost = marketingCost(cfg.Marketing, g)
		wp.StaffingCost = staffingCost(cfg.Staffing, cfg.Growth.EventsPerWeek)
		wp.EventCost = eventCost(cfg.EventCosts, cfg.Growth.EventsPerWeek)

		wp.SetupCost = amortWeekly
		if w == 1 {
			// Non-amortized items land entirely in week 1, and week 1 also
			// absorbs the rounding remainder of amortized items so the
			// schedule sums exactly to the item amounts.
			wp.SetupCost += week1Setup + amortRemainder
		}

		wp.TotalCost = wp.MarketingCost + wp.StaffingCost + wp.EventCost + wp.SetupCost + wp.TotalCOGS
		wp.WeeklyProfit = wp.TotalRevenue - wp.TotalCost
		cumulative += wp.WeeklyProfit
		wp.CumulativeProfit = cumulative

		series = append(series, wp)
	}

	return series, nil
}

func validate(cfg model.ProjectionConfig) error {
	if cfg.HorizonWeeks <= 0 {
		return configErrorf("horizon_weeks", "must be positive, got %d", cfg.HorizonWeeks)
	}
	switch cfg.Growth.Model {
	case model.GrowthExponential, model.GrowthLinear:
	default:
		return configErrorf("growth.model", "unrecognized growth model %q", cfg.Growth.Model)
	}
	for i, role := range cfg.Staffing.Roles {
		if role.Count < 0 {
			return configErrorf("staffing.roles", "role %d (%s): negative count %d", i, role.Name, role.Count)
		}
	}
	for i, item := range cfg.EventCosts {
		if item.Amount < 0 {
			return configErrorf("event_costs", "item %d (%s): negative amount %.2f", i, item.Name, item.Amount)
		}
	}
	for i, item := range cfg.SetupCosts {
		if item.Amount < 0 {
			return configErrorf("setup_costs", "item %d (%s): negative amount %.2f", i, item.Name, item.Amount)
		}
	}
	return nil
}

// growthFactor evaluates the plan's growth law at the given week, clipped
// at zero so a strongly negative linear rate bottoms out instead of going
// negative. The model is validated before generation starts.
func growthFactor(g model.GrowthParams, week int) float64 {
	var f float64
	switch g.Model {
	case model.GrowthExponential:
		f = math.Pow(1+g.WeeklyRate, float64(week-1))
	case model.GrowthLinear:
		f = 1 + g.WeeklyRate*float64(week-1)
	}
	if f < 0 {
		f = 0
	}
	return f
}

// splitSetupCosts partitions one-off items into the per-week amortized
// share, the cent-rounding remainder charged to week 1, and the total of
// non-amortized items (also week 1).
func splitSetupCosts(items []model.SetupCostItem, horizon int) (weekly, remainder, week1 float64) {
	h := float64(horizon)
	for _, item := range items {
		if !item.Amortize {
			week1 += item.Amount
			continue
		}
		share := math.Floor(item.Amount/h*100) / 100
		weekly += share
		remainder += item.Amount - share*h
	}
	return weekly, remainder, week1
}

// marketingCost is the channel-allocation sum when channels are configured
// (flat, not growth-scaled), otherwise the weekly budget scaled by growth.
func marketingCost(m model.MarketingParams, growth float64) float64 {
	if len(m.Channels) > 0 {
		var total float64
		for _, ch := range m.Channels {
			total += ch.WeeklyBudget
		}
		return total
	}
	return m.WeeklyBudget * growth
}

// staffingCost uses the detailed roster when present, otherwise the flat
// weekly cost plus per-event staff when the plan is event-driven.
func staffingCost(s model.StaffingParams, eventsPerWeek float64) float64 {
	if len(s.Roles) > 0 {
		var total float64
		for _, role := range s.Roles {
			total += float64(role.Count) * role.CostPerPerson
		}
		return total
	}
	total := s.WeeklyCost
	if eventsPerWeek > 0 {
		total += s.EventStaffCount * s.EventStaffCost * eventsPerWeek
	}
	return total
}

func eventCost(items []model.EventCostItem, eventsPerWeek float64) float64 {
	var total float64
	for _, item := range items {
		if item.PerEvent {
			total += item.Amount * eventsPerWeek
		} else {
			total += item.Amount
		}
	}
	return total
}
