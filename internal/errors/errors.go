package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrExtraction is returned when a resume PDF cannot be read
	ErrExtraction = errors.New("extraction failed")

	// ErrScoring is returned when the two documents share no comparable content
	ErrScoring = errors.New("scoring failed")

	// ErrMissingInput is returned when the resume or the job description is absent
	ErrMissingInput = errors.New("missing input")

	// ErrInputTooLarge is returned when an input exceeds its configured cap
	ErrInputTooLarge = errors.New("input too large")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoExtractableText is the cause used when a valid PDF carries no text layer
	ErrNoExtractableText = errors.New("no extractable text")
)

// ExtractionError represents a PDF that is malformed, encrypted or otherwise unreadable
type ExtractionError struct {
	Page  int // 1-based page that failed, 0 when the document itself failed
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("could not extract text from page %d: %v", e.Page, e.Cause)
	}
	return fmt.Sprintf("could not read PDF: %v", e.Cause)
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// NewExtractionError creates a new ExtractionError for the whole document
func NewExtractionError(cause error) *ExtractionError {
	return &ExtractionError{Cause: cause}
}

// NewPageExtractionError creates a new ExtractionError for a single page
func NewPageExtractionError(page int, cause error) *ExtractionError {
	return &ExtractionError{Page: page, Cause: cause}
}

// ScoringError represents a pair of documents that cannot be compared
type ScoringError struct {
	Reason string
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("cannot score documents: %s", e.Reason)
}

func (e *ScoringError) Is(target error) bool {
	return target == ErrScoring
}

// NewScoringError creates a new ScoringError
func NewScoringError(reason string) *ScoringError {
	return &ScoringError{Reason: reason}
}

// NoComparableContent is the reason used when both documents normalize to nothing
const NoComparableContent = "no comparable content"

// MissingInputError represents an absent resume or job description
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input: '%s' is empty", e.Field)
}

func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// NewMissingInputError creates a new MissingInputError
func NewMissingInputError(field string) *MissingInputError {
	return &MissingInputError{Field: field}
}

// InputTooLargeError represents an input beyond the configured size cap
type InputTooLargeError struct {
	Field  string
	Limit  int64
	Actual int64
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input '%s' is too large: %d exceeds limit of %d", e.Field, e.Actual, e.Limit)
}

func (e *InputTooLargeError) Is(target error) bool {
	return target == ErrInputTooLarge
}

// NewInputTooLargeError creates a new InputTooLargeError
func NewInputTooLargeError(field string, limit, actual int64) *InputTooLargeError {
	return &InputTooLargeError{Field: field, Limit: limit, Actual: actual}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UserMessage returns the actionable message shown to the end user for err.
func UserMessage(err error) string {
	var missing *MissingInputError
	var tooLarge *InputTooLargeError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &missing):
		switch missing.Field {
		case "resume":
			return "Please upload your resume."
		case "job_description":
			return "Please paste the job description."
		}
		return fmt.Sprintf("Please provide '%s'.", missing.Field)
	case errors.As(err, &tooLarge):
		return fmt.Sprintf("The %s is too large to analyze (limit %d).", tooLarge.Field, tooLarge.Limit)
	case errors.Is(err, ErrNoExtractableText):
		return "Could not extract text from PDF."
	case errors.Is(err, ErrExtraction):
		return "Could not read resume."
	case errors.Is(err, ErrScoring):
		return "Insufficient content to compare."
	case errors.Is(err, ErrInvalidInput):
		return err.Error()
	default:
		return "Unexpected error while analyzing the resume."
	}
}
