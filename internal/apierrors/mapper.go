package apierrors

import (
	"errors"

	agentsProcessor "voice-server/internal/agents/processor"
	analyticsProcessor "voice-server/internal/analytics/processor"
	campaignsProcessor "voice-server/internal/campaigns/processor"
	chatProcessor "voice-server/internal/chat/processor"
	knowledgeProcessor "voice-server/internal/knowledge/processor"
	"voice-server/internal/provisioning"
	sipProcessor "voice-server/internal/sip/processor"
	"voice-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Map agents processor errors
	case errors.Is(err, agentsProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")

	case errors.Is(err, agentsProcessor.ErrAgentNotFound):
		return NotFound(CodeAgentNotFound, "Agent not found")

	case errors.Is(err, agentsProcessor.ErrEmailAlreadyExists):
		return Conflict(CodeEmailExists, "A user with this email already exists")

	// Map campaigns processor errors
	case errors.Is(err, campaignsProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found or does not belong to user")

	case errors.Is(err, campaignsProcessor.ErrPhoneNumberNotFound):
		return NotFound(CodeNumberNotFound, "Phone number not found in campaign")

	// Map SIP processor errors
	case errors.Is(err, sipProcessor.ErrLineNotFound):
		return NotFound(CodeSIPLineNotFound, "Phone number not found for the given email")

	case errors.Is(err, sipProcessor.ErrNoOutboundTrunk):
		return NotFound(CodeSIPLineNotFound, "Outbound trunk not configured for this number")

	// Map provisioning failures to 503 so callers know the external
	// telephony tool, not their request, is at fault.
	case errors.Is(err, provisioning.ErrCommandFailed),
		errors.Is(err, provisioning.ErrParseOutput):
		return ServiceUnavailable(CodeProvisioningError, "Telephony provisioning failed", err)

	// Map chat processor errors
	case errors.Is(err, chatProcessor.ErrChatLogNotFound):
		return NotFound(CodeNotFound, "No chat logs found")

	case errors.Is(err, chatProcessor.ErrCompletionFailed):
		return ServiceUnavailable(CodeChatServiceError, "Chat service is unavailable", err)

	// Map knowledge processor errors
	case errors.Is(err, knowledgeProcessor.ErrFileNotFound):
		return NotFound(CodeFileNotFound, "File not found")

	case errors.Is(err, knowledgeProcessor.ErrKnowledgeBaseEmpty):
		return NotFound(CodeKnowledgeNotFound, "Knowledge base not found for the agent")

	case errors.Is(err, knowledgeProcessor.ErrUnsupportedFileType):
		return BadRequest(CodeInvalidInput, err.Error())

	case errors.Is(err, knowledgeProcessor.ErrRetrievalDisabled):
		return BadRequest(CodeInvalidInput, "Retrieval is not enabled for this agent")

	case errors.Is(err, knowledgeProcessor.ErrRetrievalFailed):
		return ServiceUnavailable(CodeChatServiceError, "Knowledge retrieval is unavailable", err)

	// Map analytics processor errors
	case errors.Is(err, analyticsProcessor.ErrInvalidFilter):
		return BadRequest(CodeInvalidInput, "Invalid filter. Valid values: day, week, month, overall")

	// Generic store-level not found
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")
	}

	return InternalError(err)
}
