package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voice-server/internal/analytics/processor"
	"voice-server/internal/apierrors"
	"voice-server/internal/observability"
	"voice-server/internal/store"
)

type Handler struct {
	processor processor.AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor processor.AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RecordCallRequest is the ingestion payload for one finished call.
type RecordCallRequest struct {
	UserID               string    `json:"user_id" binding:"required"`
	AgentID              *string   `json:"agent_id,omitempty"`
	AgentName            *string   `json:"agent_name,omitempty"`
	AgentPhoneNumber     *string   `json:"agent_phone_number,omitempty"`
	CalledNumber         *string   `json:"called_number,omitempty"`
	CallDirection        string    `json:"call_direction" binding:"required,oneof=inbound outbound"`
	CallType             string    `json:"call_type" binding:"required"`
	StartTime            time.Time `json:"start_time" binding:"required"`
	EndTime              time.Time `json:"end_time" binding:"required"`
	Duration             float64   `json:"duration"`
	TotalTokensLLM       int       `json:"total_tokens_llm"`
	TotalTokensSTT       int       `json:"total_tokens_stt"`
	TotalTokensTTS       int       `json:"total_tokens_tts"`
	CostLLM              float64   `json:"cost_llm"`
	CostSTT              float64   `json:"cost_stt"`
	CostTTS              float64   `json:"cost_tts"`
	PlatformCost         float64   `json:"platform_cost"`
	TotalCost            float64   `json:"total_cost"`
	ConversationAnalysis *string   `json:"conversation_analysis,omitempty"`
}

// HandleRecordCall ingests one finished call with its usage breakdown
func (h Handler) HandleRecordCall(c *gin.Context) {
	ctx := c.Request.Context()

	var req RecordCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	log, err := h.processor.RecordCall(ctx, store.CreateCallLogParams{
		UserID:               req.UserID,
		AgentID:              req.AgentID,
		AgentName:            req.AgentName,
		AgentPhoneNumber:     req.AgentPhoneNumber,
		CalledNumber:         req.CalledNumber,
		CallDirection:        req.CallDirection,
		CallType:             req.CallType,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Duration:             req.Duration,
		TotalTokensLLM:       req.TotalTokensLLM,
		TotalTokensSTT:       req.TotalTokensSTT,
		TotalTokensTTS:       req.TotalTokensTTS,
		CostLLM:              req.CostLLM,
		CostSTT:              req.CostSTT,
		CostTTS:              req.CostTTS,
		PlatformCost:         req.PlatformCost,
		TotalCost:            req.TotalCost,
		ConversationAnalysis: req.ConversationAnalysis,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, log)
}

// HandleListCallLogs lists the user's call history, newest first.
// Optional query filters: agent_id, call_direction, call_type, and an
// RFC3339 from/to window on start_time.
func (h Handler) HandleListCallLogs(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Query("user_id")
	if userID == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "user_id query parameter is required"))
		return
	}

	filter := store.CallLogFilter{
		AgentID:       c.Query("agent_id"),
		CallDirection: c.Query("call_direction"),
		CallType:      c.Query("call_type"),
	}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "from must be an RFC3339 timestamp"))
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "to must be an RFC3339 timestamp"))
			return
		}
		filter.To = &to
	}

	logs, err := h.processor.ListCallLogs(ctx, userID, filter)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"call_logs": logs})
}

// HandleGetDashboard aggregates the user's calls over the window named
// by the filter query parameter (day, week, month or overall)
func (h Handler) HandleGetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Query("user_id")
	if userID == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "user_id query parameter is required"))
		return
	}

	filter := c.Query("filter")
	if filter == "" {
		filter = processor.FilterOverall
	}

	dashboard, err := h.processor.GetDashboard(ctx, userID, filter)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
