package model

import "time"

// WeeklyProjection holds the forecast figures for a single week.
// Weeks are indexed 1..horizon with no gaps.
type WeeklyProjection struct {
	Week int

	AvgEventAttendance float64
	FootTraffic        float64

	Revenue      map[RevenueStream]float64
	TotalRevenue float64

	MarketingCost float64
	StaffingCost  float64
	EventCost     float64
	SetupCost     float64
	COGS          map[RevenueStream]float64
	TotalCOGS     float64
	TotalCost     float64

	WeeklyProfit     float64
	CumulativeProfit float64
}

// ChannelActual records realized spend and revenue for one marketing channel.
type ChannelActual struct {
	Name    string  `toml:"name"`
	Spend   float64 `toml:"spend"`
	Revenue float64 `toml:"revenue"`
}

// ActualRecord holds the realized figures for one completed week.
// Records are keyed by week; a later write for the same week replaces
// the earlier one.
type ActualRecord struct {
	Week     int       `toml:"week"`
	Date     time.Time `toml:"date,omitempty"`
	Revenue  float64   `toml:"revenue"`
	Expenses float64   `toml:"expenses"`

	// Optional breakdowns; empty maps/slices mean the week was recorded
	// as totals only.
	RevenueByStream    map[RevenueStream]float64 `toml:"revenue_by_stream,omitempty"`
	ExpensesByCategory map[string]float64        `toml:"expenses_by_category,omitempty"`
	Channels           []ChannelActual           `toml:"channels,omitempty"`
}

// Profit returns realized revenue minus realized expenses.
func (a ActualRecord) Profit() float64 {
	return a.Revenue - a.Expenses
}
