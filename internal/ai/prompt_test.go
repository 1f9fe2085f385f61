package ai

import (
	"strings"
	"testing"
)

func TestBuildTripPlanPrompt(t *testing.T) {
	params := TripParameters{
		Destination: "Lisbon",
		Duration:    3,
		Interests:   []string{"food", "history"},
		Budget:      floatPtr(1500.0),
		StartDate:   "2025-10-15",
	}
	prompt := buildTripPlanPrompt(ProfileContext{"travelStyle": "relaxed"}, params)

	for _, want := range []string{
		"3-day travel itinerary for Lisbon",
		"starting on 2025-10-15",
		"Interests: food, history",
		"Budget: $1500.00",
		"travelStyle: relaxed",
		"Provide exactly 3 days of activities",
		"3-4 activities per day",
		`"endDate": "2025-10-17"`,
		"Return ONLY a JSON response",
		`"aiModel": "Google Gemini"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestBuildTripPlanPromptDefaults(t *testing.T) {
	prompt := buildTripPlanPrompt(nil, TripParameters{Destination: "Tokyo", Duration: 2})

	if !strings.Contains(prompt, "Interests: general tourism") {
		t.Fatal("missing interests default")
	}
	if !strings.Contains(prompt, "Budget: moderate budget") {
		t.Fatal("missing budget placeholder")
	}
	if !strings.Contains(prompt, `"totalBudget": 1000.00`) {
		t.Fatal("missing template budget default")
	}
}

// TestBuildTripPlanPromptEmptyFields ensures blank destination and dates
// interpolate without panicking.
func TestBuildTripPlanPromptEmptyFields(t *testing.T) {
	prompt := buildTripPlanPrompt(ProfileContext{}, TripParameters{Duration: 1})
	if !strings.Contains(prompt, "1-day travel itinerary for ") {
		t.Fatal("blank destination did not interpolate")
	}
}

func TestCalculateEndDate(t *testing.T) {
	cases := []struct {
		start    string
		duration int
		want     string
	}{
		{"2025-10-15", 3, "2025-10-17"},
		{"2025-10-15", 1, "2025-10-15"},
		{"2025-12-31", 2, "2026-01-01"},
		{"next tuesday", 3, "next tuesday"},
		{"", 3, ""},
	}
	for _, tc := range cases {
		if got := calculateEndDate(tc.start, tc.duration); got != tc.want {
			t.Fatalf("calculateEndDate(%q, %d) = %q, want %q", tc.start, tc.duration, got, tc.want)
		}
	}
}
