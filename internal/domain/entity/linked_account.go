package entity

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// LinkedAccountType is the kind of external account.
type LinkedAccountType string

const (
	LinkedAccountTypeBank LinkedAccountType = "Bank"
	LinkedAccountTypeCard LinkedAccountType = "Card"
)

// IsValid reports whether t is a known account type.
func (t LinkedAccountType) IsValid() bool {
	return t == LinkedAccountTypeBank || t == LinkedAccountTypeCard
}

// LinkedAccount is an external bank account or card connected by the user.
type LinkedAccount struct {
	ID          string
	Provider    string
	Type        LinkedAccountType
	Mask        string
	Balance     *float64
	ConnectedAt time.Time
}

// NewLinkedAccount creates a linked account with a masked display number.
func NewLinkedAccount(provider string, accountType LinkedAccountType, now time.Time) *LinkedAccount {
	label := "Credit"
	if accountType == LinkedAccountTypeBank {
		label = "Checking"
	}
	return &LinkedAccount{
		ID:          "acc-" + uuid.NewString(),
		Provider:    provider,
		Type:        accountType,
		Mask:        fmt.Sprintf("%s ...%d", label, 1000+rand.Intn(9000)),
		ConnectedAt: now,
	}
}

// ImportedTransactions returns the transactions pulled in when the account is
// connected: a lunch today and an online purchase yesterday. Their dates may
// be older than entries already in the ledger.
func (a *LinkedAccount) ImportedTransactions(now time.Time) []*Transaction {
	return []*Transaction{
		{
			ID:          "tx-link-" + uuid.NewString(),
			Amount:      12.50,
			CategoryID:  "cat-food",
			Description: a.Provider + ": Lunch",
			Date:        now,
			Source:      TransactionSourceLinked,
		},
		{
			ID:          "tx-link-" + uuid.NewString(),
			Amount:      29.99,
			CategoryID:  "cat-shopping",
			Description: a.Provider + ": Online Store",
			Date:        now.Add(-24 * time.Hour),
			Source:      TransactionSourceLinked,
		},
	}
}
