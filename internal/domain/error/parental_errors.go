// Package error defines domain-specific errors for the SpendXP application.
package error

import "errors"

// Parental control domain errors.
var (
	// ErrInvalidSpendingLimit is returned when a spending limit is zero or negative.
	ErrInvalidSpendingLimit = errors.New("spending limit must be positive")

	// ErrInvalidNotificationThreshold is returned when a notification threshold is negative.
	ErrInvalidNotificationThreshold = errors.New("notification threshold must not be negative")

	// ErrInvalidSpendingPeriod is returned when the period is not daily, weekly or monthly.
	ErrInvalidSpendingPeriod = errors.New("invalid spending period")

	// ErrInvalidParentPin is returned when the parent PIN does not match.
	ErrInvalidParentPin = errors.New("invalid parent pin")
)

// ParentalErrorCode defines error codes for parental control errors.
// Format: PAR-XXYYYY where XX is category and YYYY is specific error.
type ParentalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSpendingLimit         ParentalErrorCode = "PAR-010001"
	ErrCodeInvalidNotificationThreshold ParentalErrorCode = "PAR-010002"
	ErrCodeInvalidSpendingPeriod        ParentalErrorCode = "PAR-010003"
	ErrCodeInvalidParentEmail           ParentalErrorCode = "PAR-010004"
)

// ParentalError represents a parental control error with code and message.
type ParentalError struct {
	Code    ParentalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParentalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ParentalError) Unwrap() error {
	return e.Err
}

// NewParentalError creates a new ParentalError with the given code and message.
func NewParentalError(code ParentalErrorCode, message string, err error) *ParentalError {
	return &ParentalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
