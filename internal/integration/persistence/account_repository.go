package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface on top
// of a document store.
type accountRepository struct {
	store adapter.DocumentStore
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(store adapter.DocumentStore) adapter.AccountRepository {
	return &accountRepository{
		store: store,
	}
}

// Exists checks if an account with the given key exists.
func (r *accountRepository) Exists(ctx context.Context, accountKey string) (bool, error) {
	payload, err := r.store.Load(ctx, accountKey, adapter.FieldUser)
	if err != nil {
		return false, err
	}
	return payload != nil, nil
}

// Load retrieves the documents of an account, migrates them to the current
// schema and assembles the snapshot. Absent fields fall back to defaults.
func (r *accountRepository) Load(ctx context.Context, accountKey string) (*entity.Account, error) {
	docs, err := r.store.LoadAll(ctx, accountKey)
	if err != nil {
		return nil, err
	}
	if docs[adapter.FieldUser] == nil {
		return nil, domainerror.ErrAccountNotFound
	}

	var rawUser map[string]any
	if err := json.Unmarshal(docs[adapter.FieldUser], &rawUser); err != nil {
		return nil, fmt.Errorf("failed to decode user document: %w", err)
	}
	var rawCategories []map[string]any
	if payload := docs[adapter.FieldCategories]; payload != nil {
		if err := json.Unmarshal(payload, &rawCategories); err != nil {
			return nil, fmt.Errorf("failed to decode categories document: %w", err)
		}
	}
	session.Migrate(rawUser, rawCategories)

	var userDoc model.UserDocument
	if err := remarshal(rawUser, &userDoc); err != nil {
		return nil, fmt.Errorf("failed to decode user document: %w", err)
	}
	account := entity.NewAccount(userDoc.ToEntity())

	if rawCategories != nil {
		var categoryDocs []model.CategoryDocument
		if err := remarshal(rawCategories, &categoryDocs); err != nil {
			return nil, fmt.Errorf("failed to decode categories document: %w", err)
		}
		account.Categories = make(entity.Categories, 0, len(categoryDocs))
		for i := range categoryDocs {
			account.Categories = append(account.Categories, categoryDocs[i].ToEntity())
		}
	}

	var txDocs []model.TransactionDocument
	if err := decodeField(docs, adapter.FieldTransactions, &txDocs); err != nil {
		return nil, err
	}
	for i := range txDocs {
		account.Ledger = append(account.Ledger, txDocs[i].ToEntity())
	}

	var goalDocs []model.GoalDocument
	if err := decodeField(docs, adapter.FieldGoals, &goalDocs); err != nil {
		return nil, err
	}
	for i := range goalDocs {
		account.Goals = append(account.Goals, goalDocs[i].ToEntity())
	}

	var investmentDocs []model.InvestmentDocument
	if err := decodeField(docs, adapter.FieldInvestments, &investmentDocs); err != nil {
		return nil, err
	}
	for i := range investmentDocs {
		account.Investments = append(account.Investments, investmentDocs[i].ToEntity())
	}

	var claimed, completed []string
	if err := decodeField(docs, adapter.FieldClaimedQuests, &claimed); err != nil {
		return nil, err
	}
	if err := decodeField(docs, adapter.FieldCompletedModules, &completed); err != nil {
		return nil, err
	}
	account.ClaimedQuests = entity.NewIDSet(claimed...)
	account.CompletedModules = entity.NewIDSet(completed...)

	return account, nil
}

// Save persists the full snapshot atomically.
func (r *accountRepository) Save(ctx context.Context, account *entity.Account) error {
	categories := make([]model.CategoryDocument, 0, len(account.Categories))
	for _, c := range account.Categories {
		categories = append(categories, model.CategoryDocumentFromEntity(c))
	}
	transactions := make([]model.TransactionDocument, 0, len(account.Ledger))
	for _, tx := range account.Ledger {
		transactions = append(transactions, model.TransactionDocumentFromEntity(tx))
	}
	goals := make([]model.GoalDocument, 0, len(account.Goals))
	for _, g := range account.Goals {
		goals = append(goals, model.GoalDocumentFromEntity(g))
	}
	investments := make([]model.InvestmentDocument, 0, len(account.Investments))
	for _, i := range account.Investments {
		investments = append(investments, model.InvestmentDocumentFromEntity(i))
	}

	values := map[string]any{
		adapter.FieldUser:             model.UserDocumentFromEntity(account.User),
		adapter.FieldCategories:       categories,
		adapter.FieldTransactions:     transactions,
		adapter.FieldGoals:            goals,
		adapter.FieldInvestments:      investments,
		adapter.FieldClaimedQuests:    account.ClaimedQuests.Sorted(),
		adapter.FieldCompletedModules: account.CompletedModules.Sorted(),
	}

	documents := make(map[string][]byte, len(values))
	for field, v := range values {
		payload, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode %s document: %w", field, err)
		}
		documents[field] = payload
	}

	return r.store.SaveAll(ctx, account.Key(), documents)
}

func decodeField(docs map[string][]byte, field string, dst any) error {
	payload := docs[field]
	if payload == nil {
		return nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("failed to decode %s document: %w", field, err)
	}
	return nil
}

func remarshal(src, dst any) error {
	payload, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, dst)
}
