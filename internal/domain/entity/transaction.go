package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionSource tells how a transaction entered the ledger.
type TransactionSource string

const (
	TransactionSourceManual TransactionSource = "manual"
	TransactionSourceLinked TransactionSource = "linked"
)

// Transaction is an immutable ledger entry. Amount is always positive; the
// category role decides whether it is income, savings or spending.
type Transaction struct {
	ID          string
	Amount      float64
	CategoryID  string
	Description string
	Date        time.Time
	Source      TransactionSource
}

// NewTransaction creates a manually logged transaction dated at now.
func NewTransaction(amount float64, categoryID, description string, now time.Time) *Transaction {
	return &Transaction{
		ID:          uuid.NewString(),
		Amount:      amount,
		CategoryID:  categoryID,
		Description: description,
		Date:        now,
		Source:      TransactionSourceManual,
	}
}
