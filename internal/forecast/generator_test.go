package forecast

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/theirongolddev/venuecast/internal/model"
)

// testPlan returns a 12-week exponential plan with a single ticket stream.
func testPlan() model.ProjectionConfig {
	return model.ProjectionConfig{
		Name:         "test-venue",
		HorizonWeeks: 12,
		Growth: model.GrowthParams{
			BaseAttendance: 100,
			EventsPerWeek:  1,
			Model:          model.GrowthExponential,
			WeeklyRate:     0.10,
		},
		Streams: map[model.RevenueStream]model.StreamParams{
			model.StreamTicket: {UnitPrice: 25, ConversionRate: 0.8},
		},
		Marketing: model.MarketingParams{WeeklyBudget: 500},
		Staffing:  model.StaffingParams{WeeklyCost: 800},
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestGenerate_LengthAndCumulativeInvariant(t *testing.T) {
	series, err := Generate(testPlan())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(series) != 12 {
		t.Fatalf("len(series) = %d, want 12", len(series))
	}
	for i, wp := range series {
		if wp.Week != i+1 {
			t.Errorf("series[%d].Week = %d, want %d", i, wp.Week, i+1)
		}
	}

	if !approx(series[0].CumulativeProfit, series[0].WeeklyProfit) {
		t.Errorf("week 1 CumulativeProfit = %.4f, want WeeklyProfit %.4f",
			series[0].CumulativeProfit, series[0].WeeklyProfit)
	}
	for w := 1; w < len(series); w++ {
		want := series[w-1].CumulativeProfit + series[w].WeeklyProfit
		if !approx(series[w].CumulativeProfit, want) {
			t.Errorf("week %d CumulativeProfit = %.4f, want %.4f", w+1, series[w].CumulativeProfit, want)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(testPlan())
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	b, err := Generate(testPlan())
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two Generate calls with identical config differ")
	}
}

func TestGenerate_Week1TicketRevenue(t *testing.T) {
	series, err := Generate(testPlan())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	w1 := series[0]
	if !approx(w1.FootTraffic, 100) {
		t.Errorf("week 1 FootTraffic = %.2f, want 100", w1.FootTraffic)
	}
	if !approx(w1.Revenue[model.StreamTicket], 2000) {
		t.Errorf("week 1 ticket revenue = %.2f, want 2000 (100 x 25 x 0.8)", w1.Revenue[model.StreamTicket])
	}

	// Week 2 under 10% exponential growth.
	w2 := series[1]
	if !approx(w2.FootTraffic, 110) {
		t.Errorf("week 2 FootTraffic = %.2f, want 110", w2.FootTraffic)
	}
	if !approx(w2.Revenue[model.StreamTicket], 2200) {
		t.Errorf("week 2 ticket revenue = %.2f, want 2200", w2.Revenue[model.StreamTicket])
	}
}

func TestGenerate_LinearGrowthClipsAtZero(t *testing.T) {
	cfg := testPlan()
	cfg.Growth.Model = model.GrowthLinear
	cfg.Growth.WeeklyRate = -0.6

	series, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Week 2: 1 - 0.6 = 0.4
	if !approx(series[1].FootTraffic, 40) {
		t.Errorf("week 2 FootTraffic = %.2f, want 40", series[1].FootTraffic)
	}
	// Week 3 would be 1 - 1.2 = -0.2, clipped to 0.
	if !approx(series[2].FootTraffic, 0) {
		t.Errorf("week 3 FootTraffic = %.2f, want 0 (clipped)", series[2].FootTraffic)
	}
	if !approx(series[2].TotalRevenue, 0) {
		t.Errorf("week 3 TotalRevenue = %.2f, want 0", series[2].TotalRevenue)
	}
}

func TestGenerate_SetupCostAmortization(t *testing.T) {
	cfg := testPlan()
	cfg.HorizonWeeks = 3
	cfg.SetupCosts = []model.SetupCostItem{
		{Name: "gear", Amount: 100, Amortize: true},
		{Name: "license", Amount: 50},
	}

	series, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// 100/3 floored to cents is 33.33; week 1 takes the 0.01 remainder
	// plus the full non-amortized 50.
	if !approx(series[0].SetupCost, 50+33.34) {
		t.Errorf("week 1 SetupCost = %.4f, want 83.34", series[0].SetupCost)
	}
	if !approx(series[1].SetupCost, 33.33) {
		t.Errorf("week 2 SetupCost = %.4f, want 33.33", series[1].SetupCost)
	}
	if !approx(series[2].SetupCost, 33.33) {
		t.Errorf("week 3 SetupCost = %.4f, want 33.33", series[2].SetupCost)
	}

	var total float64
	for _, wp := range series {
		total += wp.SetupCost
	}
	if !approx(total, 150) {
		t.Errorf("setup cost total = %.4f, want 150 (no rounding drift)", total)
	}
}

func TestGenerate_MarketingChannelsWinOverBudget(t *testing.T) {
	cfg := testPlan()
	cfg.Marketing = model.MarketingParams{
		WeeklyBudget: 500,
		Channels: []model.ChannelBudget{
			{Name: "social", WeeklyBudget: 120},
			{Name: "flyers", WeeklyBudget: 80},
		},
	}

	series, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Channel allocations are flat; later weeks do not scale with growth.
	for _, w := range []int{0, 5, 11} {
		if !approx(series[w].MarketingCost, 200) {
			t.Errorf("week %d MarketingCost = %.2f, want 200", w+1, series[w].MarketingCost)
		}
	}
}

func TestGenerate_MarketingBudgetScalesWithGrowth(t *testing.T) {
	series, err := Generate(testPlan())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !approx(series[0].MarketingCost, 500) {
		t.Errorf("week 1 MarketingCost = %.2f, want 500", series[0].MarketingCost)
	}
	if !approx(series[1].MarketingCost, 550) {
		t.Errorf("week 2 MarketingCost = %.2f, want 550", series[1].MarketingCost)
	}
}

func TestGenerate_StaffingModes(t *testing.T) {
	// Detailed roster wins over the flat fields.
	cfg := testPlan()
	cfg.Staffing = model.StaffingParams{
		WeeklyCost: 800,
		Roles: []model.StaffRole{
			{Name: "bar", Count: 3, CostPerPerson: 150},
			{Name: "door", Count: 1, CostPerPerson: 100},
		},
	}
	series, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate (detailed): %v", err)
	}
	if !approx(series[0].StaffingCost, 550) {
		t.Errorf("detailed StaffingCost = %.2f, want 550", series[0].StaffingCost)
	}

	// Flat mode adds per-event staff when the plan is event-driven.
	cfg = testPlan()
	cfg.Growth.EventsPerWeek = 2
	cfg.Staffing = model.StaffingParams{
		WeeklyCost:      800,
		EventStaffCount: 2,
		EventStaffCost:  120,
	}
	series, err = Generate(cfg)
	if err != nil {
		t.Fatalf("Generate (flat): %v", err)
	}
	if !approx(series[0].StaffingCost, 800+2*120*2) {
		t.Errorf("flat StaffingCost = %.2f, want 1280", series[0].StaffingCost)
	}
}

func TestGenerate_EventCostItems(t *testing.T) {
	cfg := testPlan()
	cfg.Growth.EventsPerWeek = 3
	cfg.EventCosts = []model.EventCostItem{
		{Name: "venue_hire", Amount: 400, PerEvent: true},
		{Name: "insurance", Amount: 60},
	}

	series, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !approx(series[0].EventCost, 400*3+60) {
		t.Errorf("EventCost = %.2f, want 1260", series[0].EventCost)
	}
}

func TestGenerate_COGSPerStream(t *testing.T) {
	cfg := testPlan()
	cfg.Streams[model.StreamTicket] = model.StreamParams{UnitPrice: 25, ConversionRate: 0.8, COGSPct: 0.10}

	series, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !approx(series[0].COGS[model.StreamTicket], 200) {
		t.Errorf("week 1 ticket COGS = %.2f, want 200 (10%% of 2000)", series[0].COGS[model.StreamTicket])
	}
}

func TestGenerate_ConfigErrors(t *testing.T) {
	cfg := testPlan()
	cfg.HorizonWeeks = 0
	if _, err := Generate(cfg); !isConfigError(err) {
		t.Errorf("horizon 0: err = %v, want ConfigError", err)
	}

	cfg = testPlan()
	cfg.HorizonWeeks = -5
	if _, err := Generate(cfg); !isConfigError(err) {
		t.Errorf("negative horizon: err = %v, want ConfigError", err)
	}

	cfg = testPlan()
	cfg.Growth.Model = "hockey-stick"
	if _, err := Generate(cfg); !isConfigError(err) {
		t.Errorf("unknown growth model: err = %v, want ConfigError", err)
	}

	cfg = testPlan()
	cfg.Staffing.Roles = []model.StaffRole{{Name: "bar", Count: -1, CostPerPerson: 100}}
	if _, err := Generate(cfg); !isConfigError(err) {
		t.Errorf("negative role count: err = %v, want ConfigError", err)
	}

	cfg = testPlan()
	cfg.SetupCosts = []model.SetupCostItem{{Name: "gear", Amount: -10}}
	if _, err := Generate(cfg); !isConfigError(err) {
		t.Errorf("negative setup amount: err = %v, want ConfigError", err)
	}
}

func isConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func isValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
