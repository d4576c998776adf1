package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-server/internal/apierrors"
	"voice-server/internal/observability"
	"voice-server/internal/tokens/processor"
)

type Handler struct {
	processor processor.TokenProcessor
	logger    *observability.Logger
}

func New(processor processor.TokenProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGenerateToken mints a room access token for a web participant
// calling the agent behind the given phone number
func (h Handler) HandleGenerateToken(c *gin.Context) {
	ctx := c.Request.Context()

	phone := c.Query("phone")
	if phone == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "phone query parameter is required"))
		return
	}
	participantID := c.Query("id")
	if participantID == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "id query parameter is required"))
		return
	}

	token, err := h.processor.GenerateRoomToken(ctx, phone, participantID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}
