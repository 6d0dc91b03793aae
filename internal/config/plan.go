package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/venuecast/internal/model"
)

// LoadPlan reads a projection plan from a TOML file.
func LoadPlan(path string) (model.ProjectionConfig, error) {
	var cfg model.ProjectionConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading plan file: %w", err)
	}
	return DecodePlan(data)
}

// SavePlan writes a projection plan to a TOML file.
func SavePlan(path string, cfg model.ProjectionConfig) error {
	data, err := EncodePlan(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing plan file: %w", err)
	}
	return nil
}

// EncodePlan serializes a plan to TOML bytes.
func EncodePlan(cfg model.ProjectionConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding plan: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodePlan parses a plan from TOML bytes.
func DecodePlan(data []byte) (model.ProjectionConfig, error) {
	var cfg model.ProjectionConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing plan: %w", err)
	}
	return cfg, nil
}

// StarterPlan returns a worked example plan for `venuecast plan init`.
func StarterPlan(name string, horizonWeeks int) model.ProjectionConfig {
	return model.ProjectionConfig{
		Name:         name,
		HorizonWeeks: horizonWeeks,
		Growth: model.GrowthParams{
			BaseAttendance: 100,
			EventsPerWeek:  1,
			Model:          model.GrowthExponential,
			WeeklyRate:     0.10,
		},
		Streams: map[model.RevenueStream]model.StreamParams{
			model.StreamTicket:       {UnitPrice: 25, ConversionRate: 0.8, COGSPct: 0.05},
			model.StreamFoodBeverage: {UnitPrice: 12, ConversionRate: 0.5, COGSPct: 0.35},
			model.StreamMerchandise:  {UnitPrice: 20, ConversionRate: 0.1, COGSPct: 0.45},
			model.StreamDigital:      {UnitPrice: 8, ConversionRate: 0.05, COGSPct: 0.02},
		},
		Marketing: model.MarketingParams{
			WeeklyBudget: 500,
		},
		Staffing: model.StaffingParams{
			WeeklyCost:      800,
			EventStaffCount: 2,
			EventStaffCost:  120,
		},
		EventCosts: []model.EventCostItem{
			{Name: "venue_hire", Amount: 400, PerEvent: true},
			{Name: "insurance", Amount: 60},
		},
		SetupCosts: []model.SetupCostItem{
			{Name: "sound_equipment", Amount: 2400, Amortize: true},
			{Name: "licensing", Amount: 350},
		},
	}
}
