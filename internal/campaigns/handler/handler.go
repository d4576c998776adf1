package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-server/internal/apierrors"
	"voice-server/internal/campaigns/processor"
	"voice-server/internal/observability"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Email               string   `json:"email" binding:"required,email"`
	CampaignName        string   `json:"campaign_name" binding:"required,min=1,max=255"`
	CampaignDescription *string  `json:"campaign_description,omitempty"`
	AgentPhoneNumber    string   `json:"agent_phone_number" binding:"required"`
	PhoneNumbers        []string `json:"phone_numbers,omitempty"`
}

// UpdateCampaignRequest represents the HTTP request for updating a campaign
type UpdateCampaignRequest struct {
	Email               string  `json:"email" binding:"required,email"`
	CampaignName        *string `json:"campaign_name,omitempty" binding:"omitempty,min=1,max=255"`
	CampaignDescription *string `json:"campaign_description,omitempty"`
	AgentPhoneNumber    *string `json:"agent_phone_number,omitempty"`
}

// AddNumbersRequest represents the HTTP request for adding call targets
type AddNumbersRequest struct {
	Email        string   `json:"email" binding:"required,email"`
	PhoneNumbers []string `json:"phone_numbers" binding:"required,min=1"`
}

// DeleteNumberRequest represents the HTTP request for removing a call target
type DeleteNumberRequest struct {
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// UpdateNumberRequest represents the HTTP request for replacing a call target
type UpdateNumberRequest struct {
	Email          string `json:"email" binding:"required,email"`
	OldPhoneNumber string `json:"old_phone_number" binding:"required"`
	NewPhoneNumber string `json:"new_phone_number" binding:"required"`
}

// StartCampaignRequest represents the HTTP request for starting a campaign
type StartCampaignRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// getCampaignID parses the campaign_id path parameter. On failure it
// has already written the error response.
func (h Handler) getCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID"))
		return uuid.Nil, false
	}
	return campaignID, true
}

// getEmail reads the required email query parameter.
func (h Handler) getEmail(c *gin.Context) (string, bool) {
	email := c.Query("email")
	if email == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "email query parameter is required"))
		return "", false
	}
	return email, true
}

// HandleCreateCampaign creates a campaign with an optional initial target list
func (h Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, processor.CreateCampaignParams{
		Email:               req.Email,
		CampaignName:        req.CampaignName,
		CampaignDescription: req.CampaignDescription,
		AgentPhoneNumber:    req.AgentPhoneNumber,
		PhoneNumbers:        req.PhoneNumbers,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists the caller's campaigns
func (h Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	email, ok := h.getEmail(c)
	if !ok {
		return
	}

	campaigns, err := h.processor.ListCampaigns(ctx, email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleGetCampaign returns one campaign with its full target list
func (h Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}
	email, ok := h.getEmail(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, campaignID, email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleUpdateCampaign updates campaign metadata
func (h Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.UpdateCampaign(ctx, campaignID, req.Email, processor.UpdateCampaignParams{
		CampaignName:        req.CampaignName,
		CampaignDescription: req.CampaignDescription,
		AgentPhoneNumber:    req.AgentPhoneNumber,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleDeleteCampaign removes a campaign
func (h Handler) HandleDeleteCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}
	email, ok := h.getEmail(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteCampaign(ctx, campaignID, email); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "campaign deleted"})
}

// HandleAddNumbers unions new targets into the campaign
func (h Handler) HandleAddNumbers(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req AddNumbersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.AddPhoneNumbers(ctx, campaignID, req.Email, req.PhoneNumbers); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "phone numbers added"})
}

// HandleImportNumbers uploads a CSV of targets. The file must carry a
// phone_number column.
func (h Handler) HandleImportNumbers(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	email := c.PostForm("email")
	if email == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "email form field is required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "file form field is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	defer file.Close()

	count, err := h.processor.ImportNumbers(ctx, campaignID, email, file)
	if err != nil {
		if errors.Is(err, processor.ErrNoPhoneNumberColumn) {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "CSV must have a phone_number column"))
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "phone numbers imported", "imported": count})
}

// HandleDeleteNumber removes one target from the campaign
func (h Handler) HandleDeleteNumber(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req DeleteNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.RemovePhoneNumber(ctx, campaignID, req.Email, req.PhoneNumber); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "phone number removed"})
}

// HandleUpdateNumber replaces one target, keeping its called standing
func (h Handler) HandleUpdateNumber(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req UpdateNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.UpdatePhoneNumber(ctx, campaignID, req.Email, req.OldPhoneNumber, req.NewPhoneNumber); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "phone number updated"})
}

// HandleStartCampaign acknowledges immediately and dispatches the
// campaign's calls in the background. Progress is durable, so a crash
// mid-run resumes from called_numbers on the next start.
func (h Handler) HandleStartCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req StartCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	// Validate existence before acking so a bad ID still gets a 404.
	if _, err := h.processor.GetCampaign(ctx, campaignID, req.Email); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	// The dispatch outlives this request; carry the request_id into a
	// fresh context so its logs stay correlated.
	dispatchCtx := observability.WithFields(context.Background(),
		observability.Field{Key: "request_id", Value: c.GetHeader("X-Request-ID")})
	go func() {
		if err := h.processor.Dispatch(dispatchCtx, campaignID, req.Email); err != nil {
			h.logger.Error(dispatchCtx, "campaign dispatch failed", err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"message":     "campaign started",
		"campaign_id": campaignID,
	})
}

// HandleGetCallStatus reports called and pending numbers
func (h Handler) HandleGetCallStatus(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}
	email, ok := h.getEmail(c)
	if !ok {
		return
	}

	status, err := h.processor.GetCallStatus(ctx, campaignID, email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// HandleGetStatus returns just the campaign lifecycle status
func (h Handler) HandleGetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}
	email, ok := h.getEmail(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, campaignID, email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign_id": campaign.CampaignID,
		"status":      campaign.Status,
		"updated_at":  campaign.UpdatedAt,
	})
}
