// Package model defines database models for persistence layer.
package model

import (
	"time"
)

// AccountDocumentModel represents the account_documents table. Each row holds
// one JSON document of an account, keyed by field.
type AccountDocumentModel struct {
	AccountKey string    `gorm:"type:varchar(255);primaryKey"`
	Field      string    `gorm:"type:varchar(50);primaryKey"`
	Payload    string    `gorm:"type:text;not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the AccountDocumentModel.
func (AccountDocumentModel) TableName() string {
	return "account_documents"
}
