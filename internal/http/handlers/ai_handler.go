// README: Trip-plan generation and suggestion handlers.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wayfare/internal/ai"
	"wayfare/internal/modules/suggest"
)

type AIHandler struct {
	planner *ai.Service
	suggest *suggest.Service
}

func NewAIHandler(planner *ai.Service, suggestSvc *suggest.Service) *AIHandler {
	return &AIHandler{planner: planner, suggest: suggestSvc}
}

type tripParamsReq struct {
	Destination string   `json:"destination"`
	Duration    int      `json:"duration"`
	Interests   []string `json:"interests"`
	Budget      *float64 `json:"budget"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
}

type tripPlanReq struct {
	ProfileData    map[string]string `json:"profileData"`
	TripParameters *tripParamsReq    `json:"tripParameters"`
}

// TripPlan handles POST /api/ai/trip-plan. Generation failures never surface
// here; the only client error is malformed input.
func (h *AIHandler) TripPlan(c *gin.Context) {
	var req tripPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.TripParameters == nil {
		writeError(c, http.StatusBadRequest, "missing tripParameters")
		return
	}
	if req.TripParameters.Duration < 1 {
		writeError(c, http.StatusBadRequest, "duration must be at least 1 day")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 45*time.Second)
	defer cancel()

	plan := h.planner.GenerateTripPlan(ctx, ai.ProfileContext(req.ProfileData), ai.TripParameters{
		Destination: req.TripParameters.Destination,
		Duration:    req.TripParameters.Duration,
		Interests:   req.TripParameters.Interests,
		Budget:      req.TripParameters.Budget,
		StartDate:   req.TripParameters.StartDate,
		EndDate:     req.TripParameters.EndDate,
	})
	writeJSON(c, http.StatusOK, plan)
}

// Suggestions handles POST /api/ai/suggestions.
func (h *AIHandler) Suggestions(c *gin.Context) {
	var req suggest.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(c, http.StatusOK, h.suggest.TripSuggestions(req))
}

// Trending handles GET /api/ai/trending.
func (h *AIHandler) Trending(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.suggest.TrendingDestinations(c.Request.Context()))
}

// Personalized handles GET /api/ai/personalized?userId=...&interests=a,b.
func (h *AIHandler) Personalized(c *gin.Context) {
	userID := c.Query("userId")
	var interests []string
	if raw := c.Query("interests"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				interests = append(interests, part)
			}
		}
	}
	writeJSON(c, http.StatusOK, h.suggest.PersonalizedSuggestions(userID, interests))
}

// Destinations handles GET /api/ai/destinations.
func (h *AIHandler) Destinations(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"destinations": h.suggest.PopularDestinations()})
}

type activitiesReq struct {
	Destination string   `json:"destination"`
	Interests   []string `json:"interests"`
}

// Activities handles POST /api/ai/activities.
func (h *AIHandler) Activities(c *gin.Context) {
	var req activitiesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(c, http.StatusOK, h.suggest.ActivityRecommendations(req.Destination, req.Interests))
}
