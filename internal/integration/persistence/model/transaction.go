package model

import (
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
)

// TransactionDocument is the stored JSON shape of a transaction.
type TransactionDocument struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	CategoryID  string    `json:"categoryId"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Source      string    `json:"source,omitempty"`
}

// ToEntity converts a TransactionDocument to a domain Transaction entity.
func (d *TransactionDocument) ToEntity() *entity.Transaction {
	source := entity.TransactionSource(d.Source)
	if source == "" {
		source = entity.TransactionSourceManual
	}
	return &entity.Transaction{
		ID:          d.ID,
		Amount:      d.Amount,
		CategoryID:  d.CategoryID,
		Description: d.Description,
		Date:        d.Date,
		Source:      source,
	}
}

// TransactionDocumentFromEntity creates a TransactionDocument from a domain Transaction entity.
func TransactionDocumentFromEntity(tx *entity.Transaction) TransactionDocument {
	return TransactionDocument{
		ID:          tx.ID,
		Amount:      tx.Amount,
		CategoryID:  tx.CategoryID,
		Description: tx.Description,
		Date:        tx.Date,
		Source:      string(tx.Source),
	}
}
