package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-server/internal/apierrors"
	"voice-server/internal/chat/processor"
	"voice-server/internal/observability"
)

type Handler struct {
	processor processor.ChatProcessor
	logger    *observability.Logger
}

func New(processor processor.ChatProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ChatRequest represents one user turn. chat_id continues an existing
// conversation.
type ChatRequest struct {
	UserID  string     `json:"user_id" binding:"required"`
	AgentID uuid.UUID  `json:"agent_id" binding:"required"`
	ChatID  *uuid.UUID `json:"chat_id,omitempty"`
	Message string     `json:"message" binding:"required,min=1"`
}

// HandleChat runs one conversation turn
func (h Handler) HandleChat(c *gin.Context) {
	ctx := c.Request.Context()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.processor.Chat(ctx, processor.ChatParams{
		UserID:  req.UserID,
		AgentID: req.AgentID,
		ChatID:  req.ChatID,
		Message: req.Message,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetChatLog fetches one conversation
func (h Handler) HandleGetChatLog(c *gin.Context) {
	ctx := c.Request.Context()

	chatID, err := uuid.Parse(c.Param("chat_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid chat ID"))
		return
	}

	log, err := h.processor.GetChatLog(ctx, chatID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

// HandleListChatLogs lists the user's conversations, optionally
// filtered by agent_id
func (h Handler) HandleListChatLogs(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Query("user_id")
	if userID == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "user_id query parameter is required"))
		return
	}

	logs, err := h.processor.ListChatLogs(ctx, userID, c.Query("agent_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chat_logs": logs})
}
