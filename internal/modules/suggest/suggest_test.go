// README: Suggestion service tests.
package suggest

import (
	"context"
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestTrendingDestinations(t *testing.T) {
	trending := NewService(nil).TrendingDestinations(context.Background())

	if len(trending) != 3 {
		t.Fatalf("got %d trending suggestions, want 3", len(trending))
	}
	wantDest := []string{"Paris, France", "Tokyo, Japan", "Santorini, Greece"}
	for i, s := range trending {
		if s.Destination != wantDest[i] {
			t.Fatalf("trending[%d] destination %q, want %q", i, s.Destination, wantDest[i])
		}
		if s.ID == "" {
			t.Fatalf("trending[%d] missing id", i)
		}
		if len(s.Highlights) == 0 || len(s.Tags) == 0 {
			t.Fatalf("trending[%d] missing highlights or tags", i)
		}
	}
}

// TestActivityRecommendationsParisArt checks the one recommendation the
// rule table produces: an Art Museum Tour for art lovers visiting Paris.
func TestActivityRecommendationsParisArt(t *testing.T) {
	svc := NewService(nil)

	activities := svc.ActivityRecommendations("Paris", []string{"Art"})
	if len(activities) != 1 {
		t.Fatalf("got %d activities, want exactly 1", len(activities))
	}
	got := activities[0]
	if !strings.Contains(got.Title, "Art Museum Tour") {
		t.Fatalf("title %q", got.Title)
	}
	if got.EstimatedCost != 150 {
		t.Fatalf("cost %v, want 150", got.EstimatedCost)
	}
	if got.DurationDays != 1 {
		t.Fatalf("durationDays %d, want 1", got.DurationDays)
	}

	// No rule matches other combinations.
	if out := svc.ActivityRecommendations("Paris", []string{"Food"}); len(out) != 0 {
		t.Fatalf("Paris+Food: got %d activities, want 0", len(out))
	}
	if out := svc.ActivityRecommendations("Rome", []string{"Art"}); len(out) != 0 {
		t.Fatalf("Rome+Art: got %d activities, want 0", len(out))
	}
}

func TestPersonalizedSuggestions(t *testing.T) {
	svc := NewService(nil)

	cases := []struct {
		interests []string
		wantDests []string
	}{
		{[]string{"Adventure"}, []string{"Queenstown, New Zealand"}},
		{[]string{"Culture", "Beach"}, []string{"Kyoto, Japan", "Maldives"}},
		{[]string{"Knitting"}, nil},
		{nil, nil},
	}
	for _, tc := range cases {
		got := svc.PersonalizedSuggestions("u1", tc.interests)
		if len(got) != len(tc.wantDests) {
			t.Fatalf("interests %v: got %d suggestions, want %d", tc.interests, len(got), len(tc.wantDests))
		}
		for i, s := range got {
			if s.Destination != tc.wantDests[i] {
				t.Fatalf("interests %v: destination %q, want %q", tc.interests, s.Destination, tc.wantDests[i])
			}
		}
	}
}

func TestTripSuggestionsByDestination(t *testing.T) {
	resp := NewService(nil).TripSuggestions(SuggestionRequest{
		Destination: "Lisbon",
		Budget:      floatPtr(800),
		Interests:   []string{"Food"},
	})

	if resp.Count != 1 || len(resp.Suggestions) != 1 {
		t.Fatalf("count %d, want 1", resp.Count)
	}
	got := resp.Suggestions[0]
	if got.Title != "Explore Lisbon" || got.EstimatedCost != 800 {
		t.Fatalf("suggestion %+v", got)
	}
	if resp.Metadata.ModelVersion != modelVersion {
		t.Fatalf("model version %q", resp.Metadata.ModelVersion)
	}
}

func TestTripSuggestionsByInterests(t *testing.T) {
	resp := NewService(nil).TripSuggestions(SuggestionRequest{
		Interests: []string{"culture", "adventure", "surfing"},
	})

	if resp.Count != 3 {
		t.Fatalf("count %d, want one suggestion per interest", resp.Count)
	}
	wantDests := []string{"Florence, Italy", "Swiss Alps, Switzerland", "Amsterdam, Netherlands"}
	for i, s := range resp.Suggestions {
		if s.Destination != wantDests[i] {
			t.Fatalf("suggestion[%d] destination %q, want %q", i, s.Destination, wantDests[i])
		}
	}
}
