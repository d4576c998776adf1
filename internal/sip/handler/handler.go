package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-server/internal/apierrors"
	"voice-server/internal/observability"
	"voice-server/internal/sip/processor"
)

type Handler struct {
	processor processor.SIPProcessor
	logger    *observability.Logger
}

func New(processor processor.SIPProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ConfigureRequest represents the HTTP request for provisioning a line
type ConfigureRequest struct {
	Email        string `json:"email" binding:"required,email"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	Provider     string `json:"provider" binding:"required,oneof=twilio telnyx"`
	Label        string `json:"label,omitempty"`
	SIPAddress   string `json:"sip_address" binding:"required"`
	AuthUsername string `json:"auth_username" binding:"required"`
	AuthPassword string `json:"auth_password" binding:"required"`
}

// MapAgentRequest represents the HTTP request for routing a line to an agent
type MapAgentRequest struct {
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	AgentName   string `json:"agent_name" binding:"required"`
}

// DeleteLineRequest represents the HTTP request for removing a line
type DeleteLineRequest struct {
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// TestCallRequest represents the HTTP request for a verification call
type TestCallRequest struct {
	Email        string `json:"email" binding:"required,email"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	TargetNumber string `json:"target_number" binding:"required"`
}

// HandleConfigure provisions the trunk chain for a phone number
func (h Handler) HandleConfigure(c *gin.Context) {
	ctx := c.Request.Context()

	var req ConfigureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	line, err := h.processor.Configure(ctx, processor.ConfigureParams{
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Provider:     req.Provider,
		Label:        req.Label,
		SIPAddress:   req.SIPAddress,
		AuthUsername: req.AuthUsername,
		AuthPassword: req.AuthPassword,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, line)
}

// HandleListNumbers lists the caller's provisioned lines
func (h Handler) HandleListNumbers(c *gin.Context) {
	ctx := c.Request.Context()

	email := c.Query("email")
	if email == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "email query parameter is required"))
		return
	}

	lines, err := h.processor.ListLines(ctx, email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"phone_numbers": lines})
}

// HandleMapAgent routes a line's inbound calls to an agent
func (h Handler) HandleMapAgent(c *gin.Context) {
	ctx := c.Request.Context()

	var req MapAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.MapAgent(ctx, req.Email, req.PhoneNumber, req.AgentName); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "agent mapped"})
}

// HandleUpdate re-provisions a line with new connection settings
func (h Handler) HandleUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	var req ConfigureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	line, err := h.processor.UpdateLine(ctx, req.Email, req.PhoneNumber, processor.ConfigureParams{
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Provider:     req.Provider,
		Label:        req.Label,
		SIPAddress:   req.SIPAddress,
		AuthUsername: req.AuthUsername,
		AuthPassword: req.AuthPassword,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, line)
}

// HandleDelete removes a line and its provider resources
func (h Handler) HandleDelete(c *gin.Context) {
	ctx := c.Request.Context()

	var req DeleteLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.DeleteLine(ctx, req.Email, req.PhoneNumber); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sip line deleted"})
}

// HandleTestCall places one verification call through the line
func (h Handler) HandleTestCall(c *gin.Context) {
	ctx := c.Request.Context()

	var req TestCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.TestCall(ctx, req.Email, req.PhoneNumber, req.TargetNumber); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "test call dispatched"})
}
