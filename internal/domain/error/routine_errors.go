// Package error defines domain-specific errors for the LifeTrack application.
package error

import "errors"

// Routine domain errors.
var (
	// ErrRoutineNotFound is returned when a routine is not found in the system.
	ErrRoutineNotFound = errors.New("routine not found")

	// ErrInvalidRoutineTime is returned when the routine time is not a valid HH:MM value.
	ErrInvalidRoutineTime = errors.New("invalid routine time")

	// ErrEmptyRoutineActivity is returned when the routine activity is blank.
	ErrEmptyRoutineActivity = errors.New("routine activity must not be empty")

	// ErrInvalidWeekday is returned when a weekday abbreviation is not recognized.
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidCompletionDate is returned when a completion date is not a valid YYYY-MM-DD day.
	ErrInvalidCompletionDate = errors.New("invalid completion date")
)

// RoutineErrorCode defines error codes for routine errors.
// Format: ROU-XXYYYY where XX is category and YYYY is specific error.
type RoutineErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRoutineTime    RoutineErrorCode = "ROU-010001"
	ErrCodeEmptyRoutineActivity  RoutineErrorCode = "ROU-010002"
	ErrCodeInvalidWeekday        RoutineErrorCode = "ROU-010003"
	ErrCodeRoutineNotFound       RoutineErrorCode = "ROU-010004"
	ErrCodeInvalidCompletionDate RoutineErrorCode = "ROU-010005"
)

// RoutineError represents a routine error with code and message.
type RoutineError struct {
	Code    RoutineErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RoutineError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RoutineError) Unwrap() error {
	return e.Err
}

// NewRoutineError creates a new RoutineError with the given code and message.
func NewRoutineError(code RoutineErrorCode, message string, err error) *RoutineError {
	return &RoutineError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
