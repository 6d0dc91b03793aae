package model

// WeekSource says where a reconciled week's effective figures came from.
type WeekSource int

const (
	// SourceProjected means no actual data exists; only the forecast applies.
	SourceProjected WeekSource = iota
	// SourceActual means an ActualRecord supplied the effective figures.
	SourceActual
	// SourceActualPlaceholder means the week was forced to count as actual
	// with the projected figures standing in for missing real data.
	SourceActualPlaceholder
)

func (s WeekSource) String() string {
	switch s {
	case SourceActual:
		return "actual"
	case SourceActualPlaceholder:
		return "placeholder"
	default:
		return "projected"
	}
}

// ReconciledWeek is the merged view of one week: the forecast figures are
// always present, the effective figures only when the week counts as actual.
// It is derived on every read and never persisted.
type ReconciledWeek struct {
	Week   int
	Source WeekSource

	EffectiveRevenue *float64
	EffectiveCost    *float64
	EffectiveProfit  *float64

	ProjectedRevenue float64
	ProjectedCost    float64
	ProjectedProfit  float64
}

// IsActual reports whether the week's effective figures are populated.
func (r ReconciledWeek) IsActual() bool {
	return r.Source != SourceProjected
}

// AggregateSummary holds whole-horizon totals over a reconciled series.
// ProfitMargin is a percentage (0 when total revenue is not positive).
type AggregateSummary struct {
	TotalRevenue float64
	TotalCost    float64
	TotalProfit  float64
	ProfitMargin float64
}

// Metric names a figure that variance and scenario comparisons operate on.
type Metric string

const (
	MetricRevenue    Metric = "revenue"
	MetricCost       Metric = "cost"
	MetricProfit     Metric = "profit"
	MetricAttendance Metric = "attendance"
)

// VarianceRecord is the projected-vs-actual delta for one week and metric.
type VarianceRecord struct {
	Week      int
	Metric    Metric
	Projected float64
	Actual    float64
	Absolute  float64
	Percent   float64
}

// ScenarioDiff is the baseline-vs-scenario delta for one week and metric.
type ScenarioDiff struct {
	Week     int
	Metric   Metric
	Baseline float64
	Scenario float64
	Diff     float64
	DiffPct  float64
}
