// Package error defines domain-specific errors for the LifeTrack application.
package error

import "errors"

// Exercise domain errors.
var (
	// ErrExerciseDayNotFound is returned when no exercise day exists for a date.
	ErrExerciseDayNotFound = errors.New("exercise day not found")

	// ErrInvalidExerciseDate is returned when the exercise date is not a valid YYYY-MM-DD day.
	ErrInvalidExerciseDate = errors.New("invalid exercise date")
)

// ExerciseErrorCode defines error codes for exercise errors.
// Format: EXE-XXYYYY where XX is category and YYYY is specific error.
type ExerciseErrorCode string

const (
	ErrCodeInvalidExerciseDate ExerciseErrorCode = "EXE-010001"
	ErrCodeExerciseDayNotFound ExerciseErrorCode = "EXE-010002"
)

// ExerciseError represents an exercise error with code and message.
type ExerciseError struct {
	Code    ExerciseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExerciseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExerciseError) Unwrap() error {
	return e.Err
}

// NewExerciseError creates a new ExerciseError with the given code and message.
func NewExerciseError(code ExerciseErrorCode, message string, err error) *ExerciseError {
	return &ExerciseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
