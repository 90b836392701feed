package dto

import (
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for logging a transaction.
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount"`
	CategoryID  string  `json:"category_id" binding:"required"`
	Description string  `json:"description"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	CategoryID  string    `json:"category_id"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Source      string    `json:"source"`
}

// CreateTransactionResponse represents the result of logging a transaction.
type CreateTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	XPAwarded   float64             `json:"xp_awarded"`
	LeveledUp   bool                `json:"leveled_up"`
	Progression ProgressionResponse `json:"progression"`
}

// TransactionListResponse represents a page of the ledger.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a domain Transaction entity to its DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Amount:      t.Amount,
		CategoryID:  t.CategoryID,
		Description: t.Description,
		Date:        t.Date,
		Source:      string(t.Source),
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(transactions []entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, ToTransactionResponse(&transactions[i]))
	}
	return responses
}
