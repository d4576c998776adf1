package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to API clients.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeAgentNotFound     = "AGENT_NOT_FOUND"
	CodeCampaignNotFound  = "CAMPAIGN_NOT_FOUND"
	CodeSIPLineNotFound   = "SIP_LINE_NOT_FOUND"
	CodeNumberNotFound    = "PHONE_NUMBER_NOT_FOUND"
	CodeFileNotFound      = "FILE_NOT_FOUND"
	CodeKnowledgeNotFound = "KNOWLEDGE_BASE_NOT_FOUND"
	CodeEmailExists       = "EMAIL_EXISTS"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeProvisioningError = "PROVISIONING_ERROR"
	CodeChatServiceError  = "CHAT_SERVICE_ERROR"
	CodeInternalError     = "INTERNAL_ERROR"
)

// APIError represents an error that can be returned to API clients.
// It carries the HTTP status, a machine-readable code, and a
// user-facing message; the wrapped internal error is logged, never
// sent to the client.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Internal   error
}

func (e *APIError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Internal
}

// NotFound creates a 404 APIError
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadRequest creates a 400 APIError
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Conflict creates a 409 APIError
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// Forbidden creates a 403 APIError
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: "FORBIDDEN", Message: message}
}

// ServiceUnavailable creates a 503 APIError carrying the internal cause
func ServiceUnavailable(code, message string, internal error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Internal: internal}
}

// InternalError creates a sanitized 500 APIError - never exposes internal details
func InternalError(internal error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Internal:   internal,
	}
}
