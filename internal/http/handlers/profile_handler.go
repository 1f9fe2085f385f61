// README: Traveler profile and user persona handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/http/middleware"
	"wayfare/internal/modules/profile"
)

type ProfileHandler struct {
	profiles *profile.Service
}

func NewProfileHandler(svc *profile.Service) *ProfileHandler {
	return &ProfileHandler{profiles: svc}
}

type profileReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateProfile handles POST /api/profiles.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req profileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	created, err := h.profiles.CreateProfile(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		writeProfileError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, created)
}

// GetProfile handles GET /api/profiles/:id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.profiles.GetProfile(c.Request.Context(), id)
	if err != nil {
		writeProfileError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

// ListProfiles handles GET /api/profiles.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profiles.ListProfiles(c.Request.Context())
	if err != nil {
		writeProfileError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, profiles)
}

type personaReq struct {
	BaseProfileID       int64  `json:"baseProfileId"`
	PersonalPreferences string `json:"personalPreferences"`
	Constraints         string `json:"constraints"`
	BudgetDetails       string `json:"budgetDetails"`
	AccessibilityNeeds  string `json:"accessibilityNeeds"`
	GroupDynamics       string `json:"groupDynamics"`
}

func (r personaReq) command(userID int64) profile.PersonaCommand {
	return profile.PersonaCommand{
		UserID:              userID,
		BaseProfileID:       r.BaseProfileID,
		PersonalPreferences: r.PersonalPreferences,
		Constraints:         r.Constraints,
		BudgetDetails:       r.BudgetDetails,
		AccessibilityNeeds:  r.AccessibilityNeeds,
		GroupDynamics:       r.GroupDynamics,
	}
}

// CreatePersona handles POST /api/personas (JWT).
func (h *ProfileHandler) CreatePersona(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "missing identity")
		return
	}
	var req personaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	created, err := h.profiles.CreatePersona(c.Request.Context(), req.command(userID))
	if err != nil {
		writeProfileError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, created)
}

// ListPersonas handles GET /api/personas (JWT; caller's personas only).
func (h *ProfileHandler) ListPersonas(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "missing identity")
		return
	}
	personas, err := h.profiles.ListPersonas(c.Request.Context(), userID)
	if err != nil {
		writeProfileError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, personas)
}

// UpdatePersona handles PUT /api/personas/:id (JWT; owner only).
func (h *ProfileHandler) UpdatePersona(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "missing identity")
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req personaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	updated, err := h.profiles.UpdatePersona(c.Request.Context(), id, req.command(userID))
	if err != nil {
		writeProfileError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, updated)
}

// DeletePersona handles DELETE /api/personas/:id (JWT; owner only).
func (h *ProfileHandler) DeletePersona(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "missing identity")
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.profiles.DeletePersona(c.Request.Context(), id, userID); err != nil {
		writeProfileError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
