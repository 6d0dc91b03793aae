package config

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/theirongolddev/venuecast/internal/model"
)

func TestPlanRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	plan := StarterPlan("roundtrip", 12)

	if err := SavePlan(path, plan); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}
	loaded, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan: %v", err)
	}

	if !reflect.DeepEqual(plan, loaded) {
		t.Errorf("round-tripped plan differs:\n got %+v\nwant %+v", loaded, plan)
	}
}

func TestEncodeDecodePlan(t *testing.T) {
	plan := model.ProjectionConfig{
		Name:         "minimal",
		HorizonWeeks: 4,
		Growth: model.GrowthParams{
			BaseAttendance: 50,
			EventsPerWeek:  2,
			Model:          model.GrowthLinear,
			WeeklyRate:     0.05,
		},
		Streams: map[model.RevenueStream]model.StreamParams{
			model.StreamDigital: {UnitPrice: 5, ConversionRate: 0.1},
		},
	}

	data, err := EncodePlan(plan)
	if err != nil {
		t.Fatalf("EncodePlan: %v", err)
	}
	decoded, err := DecodePlan(data)
	if err != nil {
		t.Fatalf("DecodePlan: %v", err)
	}
	if !reflect.DeepEqual(plan, decoded) {
		t.Errorf("decoded plan differs:\n got %+v\nwant %+v", decoded, plan)
	}
}

func TestLoadPlan_MissingFile(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("LoadPlan of missing file returned nil error")
	}
}

func TestStarterPlan_HasAllStreams(t *testing.T) {
	plan := StarterPlan("starter", 8)
	if plan.HorizonWeeks != 8 {
		t.Errorf("HorizonWeeks = %d, want 8", plan.HorizonWeeks)
	}
	for _, stream := range model.Streams() {
		if _, ok := plan.Streams[stream]; !ok {
			t.Errorf("starter plan missing stream %q", stream)
		}
	}
}
