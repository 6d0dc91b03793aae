// Package model defines domain value types for venuecast plans and forecasts.
package model

// GrowthModel selects the law governing the week-over-week growth factor.
type GrowthModel string

const (
	GrowthExponential GrowthModel = "exponential"
	GrowthLinear      GrowthModel = "linear"
)

// RevenueStream identifies one of a plan's income streams.
type RevenueStream string

const (
	StreamTicket       RevenueStream = "ticket"
	StreamFoodBeverage RevenueStream = "food_beverage"
	StreamMerchandise  RevenueStream = "merchandise"
	StreamDigital      RevenueStream = "digital"
)

// Streams returns all revenue streams in display order.
func Streams() []RevenueStream {
	return []RevenueStream{StreamTicket, StreamFoodBeverage, StreamMerchandise, StreamDigital}
}

// GrowthParams holds the attendance and growth assumptions of a plan.
// BaseAttendance is the average attendance of a single event in week 1.
type GrowthParams struct {
	BaseAttendance float64     `toml:"base_attendance"`
	EventsPerWeek  float64     `toml:"events_per_week"`
	Model          GrowthModel `toml:"model"`
	WeeklyRate     float64     `toml:"weekly_rate"`
}

// StreamParams holds the revenue assumptions for one stream. A missing
// stream behaves as all-zero (no revenue, no COGS). Rates outside [0,1]
// are passed through unclamped.
type StreamParams struct {
	UnitPrice      float64 `toml:"unit_price"`
	ConversionRate float64 `toml:"conversion_rate"`
	COGSPct        float64 `toml:"cogs_pct"`
}

// ChannelBudget is a fixed weekly marketing allocation for one channel.
type ChannelBudget struct {
	Name         string  `toml:"name"`
	WeeklyBudget float64 `toml:"weekly_budget"`
}

// MarketingParams holds the marketing cost assumptions. When Channels is
// non-empty the channel allocations win and WeeklyBudget is ignored.
type MarketingParams struct {
	WeeklyBudget float64         `toml:"weekly_budget"`
	Channels     []ChannelBudget `toml:"channels,omitempty"`
}

// StaffRole is one line of a detailed staffing roster.
type StaffRole struct {
	Name          string  `toml:"name"`
	Count         int     `toml:"count"`
	CostPerPerson float64 `toml:"cost_per_person"`
}

// StaffingParams holds the staffing cost assumptions. A non-empty roster
// switches the plan to detailed mode and the flat fields are ignored.
type StaffingParams struct {
	WeeklyCost      float64     `toml:"weekly_cost"`
	EventStaffCount float64     `toml:"event_staff_count"`
	EventStaffCost  float64     `toml:"event_staff_cost"`
	Roles           []StaffRole `toml:"roles,omitempty"`
}

// EventCostItem is a recurring cost; PerEvent items scale with events per week.
type EventCostItem struct {
	Name     string  `toml:"name"`
	Amount   float64 `toml:"amount"`
	PerEvent bool    `toml:"per_event"`
}

// SetupCostItem is a one-off cost charged in week 1, or spread evenly
// across the horizon when Amortize is set.
type SetupCostItem struct {
	Name     string  `toml:"name"`
	Amount   float64 `toml:"amount"`
	Amortize bool    `toml:"amortize"`
}

// ProjectionConfig is the complete set of assumptions a forecast is
// generated from. It is a value: edits replace the whole config and force
// full series regeneration, never an in-place patch.
type ProjectionConfig struct {
	Name         string                         `toml:"name"`
	HorizonWeeks int                            `toml:"horizon_weeks"`
	Growth       GrowthParams                   `toml:"growth"`
	Streams      map[RevenueStream]StreamParams `toml:"streams"`
	Marketing    MarketingParams                `toml:"marketing"`
	Staffing     StaffingParams                 `toml:"staffing"`
	EventCosts   []EventCostItem                `toml:"event_costs,omitempty"`
	SetupCosts   []SetupCostItem                `toml:"setup_costs,omitempty"`
}
