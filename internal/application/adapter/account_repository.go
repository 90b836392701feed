// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/spendxp/backend/internal/domain/entity"
)

// Document fields stored per account.
const (
	FieldUser             = "user"
	FieldCategories       = "categories"
	FieldTransactions     = "transactions"
	FieldGoals            = "goals"
	FieldInvestments      = "investments"
	FieldClaimedQuests    = "claimed-quests"
	FieldCompletedModules = "completed-modules"
)

// AccountFields lists every document field of an account snapshot.
var AccountFields = []string{
	FieldUser,
	FieldCategories,
	FieldTransactions,
	FieldGoals,
	FieldInvestments,
	FieldClaimedQuests,
	FieldCompletedModules,
}

// DocumentStore is a per-account key/value store of JSON documents.
// An absent field is not an error: Load returns nil and the caller uses its default.
type DocumentStore interface {
	// Load returns the JSON payload of one field, or nil when absent.
	Load(ctx context.Context, accountKey, field string) ([]byte, error)

	// Save writes the JSON payload of one field.
	Save(ctx context.Context, accountKey, field string, payload []byte) error

	// LoadAll returns every stored field of an account.
	LoadAll(ctx context.Context, accountKey string) (map[string][]byte, error)

	// SaveAll writes every given field of an account as one atomic unit.
	SaveAll(ctx context.Context, accountKey string, documents map[string][]byte) error
}

// AccountRepository loads and saves whole account snapshots.
type AccountRepository interface {
	// Exists checks if an account with the given key exists.
	Exists(ctx context.Context, accountKey string) (bool, error)

	// Load retrieves and migrates the snapshot of an account.
	Load(ctx context.Context, accountKey string) (*entity.Account, error)

	// Save persists the full snapshot atomically.
	Save(ctx context.Context, account *entity.Account) error
}
