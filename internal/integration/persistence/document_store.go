// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/spendxp/backend/internal/application/adapter"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/persistence/model"
)

// documentStore implements the adapter.DocumentStore interface.
type documentStore struct {
	db *gorm.DB
}

// NewDocumentStore creates a new document store instance.
func NewDocumentStore(db *gorm.DB) adapter.DocumentStore {
	return &documentStore{
		db: db,
	}
}

// Load returns the JSON payload of one field, or nil when absent.
func (s *documentStore) Load(ctx context.Context, accountKey, field string) ([]byte, error) {
	var doc model.AccountDocumentModel
	result := s.db.WithContext(ctx).
		Where("account_key = ? AND field = ?", accountKey, field).
		First(&doc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return []byte(doc.Payload), nil
}

// Save writes the JSON payload of one field.
func (s *documentStore) Save(ctx context.Context, accountKey, field string, payload []byte) error {
	return s.SaveAll(ctx, accountKey, map[string][]byte{field: payload})
}

// LoadAll returns every stored field of an account.
func (s *documentStore) LoadAll(ctx context.Context, accountKey string) (map[string][]byte, error) {
	var docs []model.AccountDocumentModel
	result := s.db.WithContext(ctx).Where("account_key = ?", accountKey).Find(&docs)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make(map[string][]byte, len(docs))
	for _, d := range docs {
		out[d.Field] = []byte(d.Payload)
	}
	return out, nil
}

// SaveAll upserts every given field in a single database transaction.
func (s *documentStore) SaveAll(ctx context.Context, accountKey string, documents map[string][]byte) error {
	if len(documents) == 0 {
		return nil
	}

	fields := make([]string, 0, len(documents))
	for f := range documents {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	now := time.Now().UTC()
	rows := make([]model.AccountDocumentModel, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, model.AccountDocumentModel{
			AccountKey: accountKey,
			Field:      f,
			Payload:    string(documents[f]),
			UpdatedAt:  now,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_key"}, {Name: "field"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrPersistenceFailure, err)
	}
	return nil
}
