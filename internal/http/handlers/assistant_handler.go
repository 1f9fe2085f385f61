// README: Travel-assistant chat handler (token-guarded).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wayfare/internal/http/middleware"
	"wayfare/internal/modules/assistant"
)

type AssistantHandler struct {
	assistant *assistant.Service
}

func NewAssistantHandler(svc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{assistant: svc}
}

type assistantChatReq struct {
	Message string `json:"message"`
}

// Chat handles POST /api/assistant/chat (JWT).
func (h *AssistantHandler) Chat(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "missing identity")
		return
	}

	var req assistantChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	reply, err := h.assistant.Chat(ctx, userID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrBadRequest):
			writeError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, assistant.ErrInsufficientTokens):
			writeError(c, http.StatusTooManyRequests, err.Error())
		default:
			writeError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(c, http.StatusOK, reply)
}

// Tokens handles GET /api/assistant/tokens (JWT).
func (h *AssistantHandler) Tokens(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "missing identity")
		return
	}
	remaining, err := h.assistant.RemainingTokens(c.Request.Context(), userID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"tokensRemaining": remaining})
}
