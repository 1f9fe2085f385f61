// README: Handler tests for the trip-plan and suggestion endpoints.
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"wayfare/internal/ai"
	"wayfare/internal/http/handlers"
	"wayfare/internal/modules/suggest"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// nil generator: every plan request takes the fallback path.
	h := handlers.NewAIHandler(ai.NewService(nil), suggest.NewService(nil))
	r.POST("/api/ai/trip-plan", h.TripPlan)
	r.POST("/api/ai/activities", h.Activities)
	r.GET("/api/ai/destinations", h.Destinations)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTripPlanMissingParameters(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/ai/trip-plan", `{"profileData":{"travelStyle":"relaxed"}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing tripParameters: got %d", w.Code)
	}

	w = postJSON(t, r, "/api/ai/trip-plan", `{"tripParameters":{"destination":"Lisbon","duration":0}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero duration: got %d", w.Code)
	}

	w = postJSON(t, r, "/api/ai/trip-plan", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: got %d", w.Code)
	}
}

func TestTripPlanFallbackResponse(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/ai/trip-plan", `{"tripParameters":{"destination":"Lisbon","duration":2,"startDate":"2026-05-01"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	var plan struct {
		Success          bool   `json:"success"`
		Destination      string `json:"destination"`
		AIModel          string `json:"aiModel"`
		DailyItineraries []struct {
			Day string `json:"day"`
		} `json:"dailyItineraries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !plan.Success || plan.Destination != "Lisbon" {
		t.Fatalf("plan %+v", plan)
	}
	if len(plan.DailyItineraries) != 2 {
		t.Fatalf("expected 2 days, got %d", len(plan.DailyItineraries))
	}
	if !strings.Contains(plan.AIModel, "Fallback Service") {
		t.Fatalf("aiModel %q", plan.AIModel)
	}
}

func TestActivityRecommendations(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/ai/activities", `{"destination":"Paris","interests":["Art"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var suggestions []suggest.TripSuggestion
	if err := json.Unmarshal(w.Body.Bytes(), &suggestions); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Title != "Paris Art Museum Tour" {
		t.Fatalf("suggestions %+v", suggestions)
	}
}

func TestPopularDestinations(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/ai/destinations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var resp struct {
		Destinations []string `json:"destinations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Destinations) != 10 {
		t.Fatalf("expected 10 destinations, got %d", len(resp.Destinations))
	}
}
