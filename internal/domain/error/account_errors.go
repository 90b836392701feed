// Package error defines domain-specific errors for the SpendXP application.
package error

import "errors"

// Account, persistence and notification domain errors.
var (
	// ErrPersistenceFailure is returned by the document store when a write fails.
	ErrPersistenceFailure = errors.New("persistence failure")

	// ErrAccountNotFound is returned when no documents exist for an account key.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidLinkedAccount is returned when a linked account request is malformed.
	ErrInvalidLinkedAccount = errors.New("invalid linked account")

	// ErrNotificationDeliveryFailed is returned by a sink when delivery fails.
	ErrNotificationDeliveryFailed = errors.New("failed to deliver notification")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Account errors (01XXXX)
	ErrCodeAccountNotFound      AccountErrorCode = "ACC-010001"
	ErrCodeInvalidLinkedAccount AccountErrorCode = "ACC-010002"
	ErrCodeInvalidCurrency      AccountErrorCode = "ACC-010003"

	// Delivery errors (02XXXX)
	ErrCodeNotificationDelivery AccountErrorCode = "ACC-020001"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
