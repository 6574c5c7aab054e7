package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/resume-match-scorer/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeMissingInput     ErrorCode = "MISSING_INPUT"
	ErrorCodeInputTooLarge    ErrorCode = "INPUT_TOO_LARGE"
	ErrorCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrorCodeExtractionFailed ErrorCode = "EXTRACTION_FAILED"
	ErrorCodeScoringFailed    ErrorCode = "SCORING_FAILED"

	// Server Error Codes (5xx)
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)

	// Add request ID if available
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendStructuredValidationError sends a validation error with structured details
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendRequestTooLargeError sends a standardized error for bodies cut off by the size limit
func SendRequestTooLargeError(c *gin.Context, limit int64) {
	SendError(c, http.StatusRequestEntityTooLarge, ErrorCodeInputTooLarge,
		"Request body exceeds the configured limit",
		ErrorDetail{Field: "body", Message: "limit is " + formatBytes(limit)})
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendAnalysisError maps a core error to its status code, error code and user-facing message.
// The underlying error text is kept in the details.
func SendAnalysisError(c *gin.Context, operation string, err error) {
	status, code := classifyError(err)
	if status == http.StatusInternalServerError {
		SendInternalError(c, operation, err)
		return
	}

	detail := ErrorDetail{Message: err.Error()}
	var missing *internalErrors.MissingInputError
	var tooLarge *internalErrors.InputTooLargeError
	switch {
	case errors.As(err, &missing):
		detail.Field = missing.Field
	case errors.As(err, &tooLarge):
		detail.Field = tooLarge.Field
	}

	SendError(c, status, code, internalErrors.UserMessage(err), detail)
}

func classifyError(err error) (int, ErrorCode) {
	switch {
	case errors.Is(err, internalErrors.ErrMissingInput):
		return http.StatusBadRequest, ErrorCodeMissingInput
	case errors.Is(err, internalErrors.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge, ErrorCodeInputTooLarge
	case errors.Is(err, internalErrors.ErrExtraction):
		return http.StatusUnprocessableEntity, ErrorCodeExtractionFailed
	case errors.Is(err, internalErrors.ErrScoring):
		return http.StatusUnprocessableEntity, ErrorCodeScoringFailed
	default:
		return http.StatusInternalServerError, ErrorCodeInternalError
	}
}
