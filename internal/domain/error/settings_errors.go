// Package error defines domain-specific errors for the LifeTrack application.
package error

import "errors"

// Settings domain errors.
var (
	// ErrInvalidTheme is returned when the theme name is not recognized.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrInvalidFontSize is returned when the font size is not recognized.
	ErrInvalidFontSize = errors.New("invalid font size")

	// ErrInvalidExerciseGoal is returned when the exercise monthly goal is not positive.
	ErrInvalidExerciseGoal = errors.New("exercise monthly goal must be positive")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	ErrCodeInvalidTheme        SettingsErrorCode = "SET-010001"
	ErrCodeInvalidFontSize     SettingsErrorCode = "SET-010002"
	ErrCodeInvalidExerciseGoal SettingsErrorCode = "SET-010003"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
