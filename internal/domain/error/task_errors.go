// Package error defines domain-specific errors for the LifeTrack application.
package error

import "errors"

// Task domain errors.
var (
	// ErrTaskNotFound is returned when a task is not found in the system.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyTaskTitle is returned when the task title is blank.
	ErrEmptyTaskTitle = errors.New("task title must not be empty")

	// ErrInvalidTaskDate is returned when the task date is not a valid YYYY-MM-DD day.
	ErrInvalidTaskDate = errors.New("invalid task date")

	// ErrInvalidTaskTime is returned when the task time is not a 24-hour HH:MM value.
	ErrInvalidTaskTime = errors.New("invalid task time")
)

// TaskErrorCode defines error codes for task errors.
// Format: TSK-XXYYYY where XX is category and YYYY is specific error.
type TaskErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyTaskTitle  TaskErrorCode = "TSK-010001"
	ErrCodeInvalidTaskDate TaskErrorCode = "TSK-010002"
	ErrCodeTaskNotFound    TaskErrorCode = "TSK-010003"
	ErrCodeInvalidTaskTime TaskErrorCode = "TSK-010004"
)

// TaskError represents a task error with code and message.
type TaskError struct {
	Code    TaskErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TaskError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TaskError) Unwrap() error {
	return e.Err
}

// NewTaskError creates a new TaskError with the given code and message.
func NewTaskError(code TaskErrorCode, message string, err error) *TaskError {
	return &TaskError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
