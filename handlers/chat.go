package handlers

import (
	"net/http"
	"time"

	"bookline/models"
	"bookline/services/conversation"
	"bookline/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler fronts the conversation service.
type ChatHandler struct {
	Svc conversation.ConversationService
}

func NewChatHandler(svc conversation.ConversationService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// AdvanceHandler runs one dialogue turn. A missing session key mints a new
// session; an unknown key starts a fresh one rather than failing.
func (h *ChatHandler) AdvanceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sessionKey := req.SessionKey
	if sessionKey == "" {
		sessionKey = uuid.New().String()
	}

	now := time.Now()
	if req.Now != "" {
		parsed, err := time.Parse(time.RFC3339, req.Now)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid now reference", err.Error())
			return
		}
		now = parsed
	}

	response, state, err := h.Svc.Advance(c.Request.Context(), sessionKey, req.Text, now)
	if err != nil {
		logger.Error("conversation turn failed", zap.String("sessionKey", sessionKey), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to process message", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		SessionKey: sessionKey,
		Response:   response,
		State:      state,
	})
}

// SnapshotHandler returns a session's current state without advancing it.
func (h *ChatHandler) SnapshotHandler(c *gin.Context) {
	sessionKey := c.Param("key")
	state, err := h.Svc.Snapshot(c.Request.Context(), sessionKey)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load session", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.ChatResponse{SessionKey: sessionKey, State: state})
}

// ResetHandler clears a session.
func (h *ChatHandler) ResetHandler(c *gin.Context) {
	sessionKey := c.Param("key")
	if err := h.Svc.Reset(c.Request.Context(), sessionKey); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to reset session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionKey": sessionKey, "status": "reset"})
}
