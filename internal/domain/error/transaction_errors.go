// Package error defines domain-specific errors for the LifeTrack application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is not expense or income.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidAmount is returned when the transaction amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidRecurringDay is returned when the recurring day is outside 1-28.
	ErrInvalidRecurringDay = errors.New("recurring day must be between 1 and 28")

	// ErrInvalidTransactionDate is returned when the transaction date is not a valid YYYY-MM-DD day.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrSuggestionUnavailable is returned when the category suggestion service cannot answer.
	ErrSuggestionUnavailable = errors.New("category suggestion unavailable")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidAmount          TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidRecurringDay    TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound    TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidTransactionDate TransactionErrorCode = "TXN-010005"

	// Suggestion errors (02XXXX)
	ErrCodeSuggestionUnavailable TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
