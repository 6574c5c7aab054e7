// Package api provides validation utilities for API request handling.
package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/resume-match-scorer/internal/errors"
	"github.com/gcbaptista/resume-match-scorer/internal/matcher"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateResumeUpload checks that a resume file was uploaded
func ValidateResumeUpload(pdfBytes []byte) *ValidationResult {
	result := &ValidationResult{Valid: true}
	if len(pdfBytes) == 0 {
		addMissing(result, matcher.FieldResume)
	}
	return result
}

// ValidateAnalyzeUpload reports every missing input of a multipart analysis at once,
// so callers see both problems in one response.
func ValidateAnalyzeUpload(pdfBytes []byte, jobDescription string) *ValidationResult {
	result := ValidateResumeUpload(pdfBytes)
	if strings.TrimSpace(jobDescription) == "" {
		addMissing(result, matcher.FieldJobDescription)
	}
	return result
}

// ValidateAnalyzeTextRequest reports every blank field of an AnalyzeTextRequest
func ValidateAnalyzeTextRequest(req AnalyzeTextRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}
	if strings.TrimSpace(req.ResumeText) == "" {
		addMissing(result, matcher.FieldResume)
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		addMissing(result, matcher.FieldJobDescription)
	}
	return result
}

// ValidateTextEncoding checks that a free-text field is valid UTF-8
func ValidateTextEncoding(field, text string) *ValidationResult {
	result := &ValidationResult{Valid: true}
	if !utf8.ValidString(text) {
		result.AddError(field, "Must be valid UTF-8 text")
	}
	return result
}

func addMissing(result *ValidationResult, field string) {
	result.AddError(field, internalErrors.UserMessage(internalErrors.NewMissingInputError(field)))
}

// SendMissingInputError sends the missing fields of a ValidationResult as a MISSING_INPUT error
func SendMissingInputError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    string(ErrorCodeMissingInput),
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeMissingInput, result.Errors[0].Message, details...)
}

// readResumeUpload reads the multipart "resume" file. A request without the file
// returns (nil, nil) so the missing input is reported by validation.
func readResumeUpload(c *gin.Context) ([]byte, error) {
	header, err := c.FormFile(matcher.FieldResume)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	return readFileHeader(header)
}

func readFileHeader(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file %q: %w", header.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file %q: %w", header.Filename, err)
	}
	return data, nil
}

// isBodyTooLarge reports whether err was caused by RequestSizeLimitMiddleware cutting off the body
func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}

// sendUploadError answers a request whose body could not be parsed
func sendUploadError(c *gin.Context, err error) {
	if isBodyTooLarge(err) {
		limit, _ := c.Get(maxBodyKey)
		maxBytes, _ := limit.(int64)
		SendRequestTooLargeError(c, maxBytes)
		return
	}

	SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest,
		"Invalid upload: "+err.Error())
}
