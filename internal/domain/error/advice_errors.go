// Package error defines domain-specific errors for the SpendXP application.
package error

import "errors"

// AdviceFailureMessage is the user-facing text shown when the advice service fails.
const AdviceFailureMessage = "Sorry, I'm having trouble connecting right now. Please try again later."

// Advice and investment domain errors.
var (
	// ErrAdviceServiceFailure is returned when the advice service call fails.
	ErrAdviceServiceFailure = errors.New("advice service failure")

	// ErrAnalysisRateLimited is returned when analysis is requested again within the cooldown.
	ErrAnalysisRateLimited = errors.New("analysis rate limited")

	// ErrEmptyPrompt is returned when a question has no text.
	ErrEmptyPrompt = errors.New("prompt is required")

	// ErrInvestmentNotFound is returned when an investment is not found.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrInvalidInvestment is returned when investment fields are invalid.
	ErrInvalidInvestment = errors.New("invalid investment")
)

// AdviceErrorCode defines error codes for advice and investment errors.
// Format: ADV-XXYYYY where XX is category and YYYY is specific error.
type AdviceErrorCode string

const (
	// Advice errors (01XXXX)
	ErrCodeAdviceServiceFailure AdviceErrorCode = "ADV-010001"
	ErrCodeAnalysisRateLimited  AdviceErrorCode = "ADV-010002"
	ErrCodeEmptyPrompt          AdviceErrorCode = "ADV-010003"

	// Investment errors (02XXXX)
	ErrCodeInvestmentNotFound AdviceErrorCode = "ADV-020001"
	ErrCodeInvalidInvestment  AdviceErrorCode = "ADV-020002"
)

// AdviceError represents an advice error with code and message.
type AdviceError struct {
	Code    AdviceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdviceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdviceError) Unwrap() error {
	return e.Err
}

// NewAdviceError creates a new AdviceError with the given code and message.
func NewAdviceError(code AdviceErrorCode, message string, err error) *AdviceError {
	return &AdviceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
