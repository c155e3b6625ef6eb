// Package error defines domain-specific errors for the LifeTrack application.
package error

import "errors"

// Observation domain errors.
var (
	// ErrObservationNotFound is returned when no observation exists for a category and date.
	ErrObservationNotFound = errors.New("observation not found")

	// ErrInvalidObservationDate is returned when the observation date is not a valid YYYY-MM-DD day.
	ErrInvalidObservationDate = errors.New("invalid observation date")

	// ErrNegativeObservationValue is returned when the recorded value is negative.
	ErrNegativeObservationValue = errors.New("observation value must not be negative")
)

// ObservationErrorCode defines error codes for observation errors.
// Format: OBS-XXYYYY where XX is category and YYYY is specific error.
type ObservationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidObservationDate   ObservationErrorCode = "OBS-010001"
	ErrCodeNegativeObservationValue ObservationErrorCode = "OBS-010002"
	ErrCodeObservationNotFound      ObservationErrorCode = "OBS-010003"
)

// ObservationError represents an observation error with code and message.
type ObservationError struct {
	Code    ObservationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ObservationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ObservationError) Unwrap() error {
	return e.Err
}

// NewObservationError creates a new ObservationError with the given code and message.
func NewObservationError(code ObservationErrorCode, message string, err error) *ObservationError {
	return &ObservationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
