// Package error defines domain-specific errors for the SpendXP application.
package error

import (
	"errors"
	"fmt"

	"github.com/spendxp/backend/internal/domain/valueobject"
)

// Ledger domain errors.
var (
	// ErrInvalidTransactionAmount is returned when the transaction amount is not positive.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrCategoryNotFoundForTransaction is returned when the specified category is not found.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrDescriptionRequired is returned when the transaction has no description.
	ErrDescriptionRequired = errors.New("description is required")

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrLimitExceeded is returned when a transaction would breach the parental spending limit.
	ErrLimitExceeded = errors.New("spending limit exceeded")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010006"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010008"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010010"

	// Gate errors (02XXXX)
	ErrCodeLimitExceeded TransactionErrorCode = "TXN-020001"
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

// LimitExceededError is returned by the spending gate. The transaction was not recorded.
type LimitExceededError struct {
	Period valueobject.SpendingPeriod
}

// Error implements the error interface.
func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("This transaction exceeds the %s spending limit.", e.Period)
}

// Unwrap returns ErrLimitExceeded.
func (e *LimitExceededError) Unwrap() error {
	return ErrLimitExceeded
}

// NewLimitExceededError creates a LimitExceededError for period.
func NewLimitExceededError(period valueobject.SpendingPeriod) *LimitExceededError {
	return &LimitExceededError{Period: period}
}
