// README: Plan validation tests (gap filling, idempotency, empty itineraries).
package ai

import (
	"reflect"
	"testing"
)

func testDay() DailyItinerary {
	return DailyItinerary{
		Day:  "Day 1",
		Date: "2025-10-15",
		Activities: []Activity{{
			Name: "Morning Exploration", Type: "attraction",
			StartTime: "09:00", EndTime: "12:00", EstimatedCost: 20.0, Duration: "3h",
		}},
	}
}

func TestValidatePlanFillsAbsentFields(t *testing.T) {
	params := TripParameters{
		Destination: "Lisbon",
		Duration:    3,
		Budget:      floatPtr(1500.0),
		StartDate:   "2025-10-15",
		EndDate:     "2025-10-17",
	}
	raw := &rawTripPlan{DailyItineraries: []DailyItinerary{testDay()}}

	plan, err := validatePlan(raw, params)
	if err != nil {
		t.Fatalf("validatePlan: %v", err)
	}
	if !plan.Success {
		t.Fatal("success not defaulted to true")
	}
	if plan.Destination != "Lisbon" || plan.Duration != 3 {
		t.Fatalf("destination/duration not filled from request: %+v", plan)
	}
	if plan.StartDate != "2025-10-15" || plan.EndDate != "2025-10-17" {
		t.Fatalf("dates not filled from request: %+v", plan)
	}
	if plan.TotalBudget != 1500.0 {
		t.Fatalf("budget %v, want request budget 1500", plan.TotalBudget)
	}
	if plan.GeneratedAt == "" {
		t.Fatal("generatedAt not defaulted")
	}
	if plan.AIModel != "Google Gemini" {
		t.Fatalf("aiModel %q, want external tag", plan.AIModel)
	}
}

func TestValidatePlanBudgetDefault(t *testing.T) {
	raw := &rawTripPlan{DailyItineraries: []DailyItinerary{testDay()}}
	plan, err := validatePlan(raw, TripParameters{Destination: "Rome", Duration: 1})
	if err != nil {
		t.Fatalf("validatePlan: %v", err)
	}
	if plan.TotalBudget != 1000.0 {
		t.Fatalf("budget %v, want fixed default 1000", plan.TotalBudget)
	}
}

// TestValidatePlanNeverOverwrites verifies present fields survive, even
// when they disagree with the request.
func TestValidatePlanNeverOverwrites(t *testing.T) {
	success := false
	dest := "Porto"
	duration := 9
	budget := 77.0
	generatedAt := "2025-01-01T00:00:00"
	model := "Some Other Model"

	raw := &rawTripPlan{
		Success:          &success,
		Destination:      &dest,
		Duration:         &duration,
		TotalBudget:      &budget,
		GeneratedAt:      &generatedAt,
		AIModel:          &model,
		DailyItineraries: []DailyItinerary{testDay()},
	}
	plan, err := validatePlan(raw, TripParameters{Destination: "Lisbon", Duration: 3, Budget: floatPtr(1500.0)})
	if err != nil {
		t.Fatalf("validatePlan: %v", err)
	}
	if plan.Success || plan.Destination != "Porto" || plan.Duration != 9 {
		t.Fatalf("present fields were overwritten: %+v", plan)
	}
	if plan.TotalBudget != 77.0 || plan.GeneratedAt != generatedAt || plan.AIModel != model {
		t.Fatalf("present fields were overwritten: %+v", plan)
	}
}

// TestFillDefaultsIdempotent verifies a second fill pass changes nothing.
func TestFillDefaultsIdempotent(t *testing.T) {
	params := TripParameters{Destination: "Lisbon", Duration: 3, StartDate: "2025-10-15"}
	raw := &rawTripPlan{DailyItineraries: []DailyItinerary{testDay()}}

	fillPlanDefaults(raw, params)
	first := *raw
	fillPlanDefaults(raw, params)

	if !reflect.DeepEqual(first, *raw) {
		t.Fatalf("second fill changed the plan:\nfirst:  %+v\nsecond: %+v", first, *raw)
	}
}

func TestValidatePlanRejectsEmptyItineraries(t *testing.T) {
	for _, raw := range []*rawTripPlan{
		{},
		{DailyItineraries: []DailyItinerary{}},
	} {
		if _, err := validatePlan(raw, TripParameters{Destination: "Lisbon", Duration: 3}); err != ErrIncompletePlan {
			t.Fatalf("expected ErrIncompletePlan, got %v", err)
		}
	}
}
