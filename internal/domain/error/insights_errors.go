// Package error defines domain-specific errors for the LifeTrack application.
package error

import "errors"

// Insights domain errors.
var (
	// ErrInvalidReferenceDate is returned when the "today" parameter is not a valid date.
	ErrInvalidReferenceDate = errors.New("invalid reference date")

	// ErrInvalidMonth is returned when the requested month is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// InsightsErrorCode defines error codes for insights errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReferenceDate InsightsErrorCode = "INS-010001"
	ErrCodeInvalidMonth         InsightsErrorCode = "INS-010002"
)

// InsightsError represents an insights error with code and message.
type InsightsError struct {
	Code    InsightsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightsError) Unwrap() error {
	return e.Err
}

// NewInsightsError creates a new InsightsError with the given code and message.
func NewInsightsError(code InsightsErrorCode, message string, err error) *InsightsError {
	return &InsightsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
