// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spendxp/backend/internal/domain/valueobject"
)

// CurrentSchemaVersion is the shape version of a fully migrated user document.
const CurrentSchemaVersion = 2

// Security holds the credential state of a user. Hashes are opaque digests
// produced by the credential service.
type Security struct {
	PinHash          string
	ParentPinHash    string
	TwoFactorEnabled bool
}

// HasPin reports whether a personal PIN has been set.
func (s Security) HasPin() bool {
	return s.PinHash != ""
}

// HasParentPin reports whether a parent PIN has been set.
func (s Security) HasParentPin() bool {
	return s.ParentPinHash != ""
}

// ParentalControls is the configuration set by a parent and read by the spending gate.
type ParentalControls struct {
	SpendingLimitEnabled  bool
	SpendingLimitAmount   *float64
	SpendingLimitPeriod   valueobject.SpendingPeriod
	NotificationsEnabled  bool
	NotificationThreshold *float64 // nil means alert on every amount
	ParentEmail           string
}

// LimitApplies reports whether a positive spending limit is active.
func (pc ParentalControls) LimitApplies() bool {
	return pc.SpendingLimitEnabled && pc.SpendingLimitAmount != nil && *pc.SpendingLimitAmount > 0
}

// Threshold returns the notification threshold, defaulting to 0.
func (pc ParentalControls) Threshold() float64 {
	if pc.NotificationThreshold == nil {
		return 0
	}
	return *pc.NotificationThreshold
}

// Preferences holds the user's own settings.
type Preferences struct {
	Notifications bool
}

// User represents a teen account holder and its progression state.
type User struct {
	ID               uuid.UUID
	Email            string
	Name             string
	Currency         valueobject.Currency
	Progression      valueobject.Progression
	Security         Security
	ParentalControls ParentalControls
	Preferences      Preferences
	LinkedAccounts   []*LinkedAccount
	SchemaVersion    int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name string, currency valueobject.Currency, pinHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:          uuid.New(),
		Email:       NormalizeEmail(email),
		Name:        strings.TrimSpace(name),
		Currency:    valueobject.ParseCurrency(string(currency)),
		Progression: valueobject.NewProgression(),
		Security: Security{
			PinHash:          pinHash,
			TwoFactorEnabled: true,
		},
		ParentalControls: ParentalControls{
			SpendingLimitPeriod: valueobject.SpendingPeriodMonthly,
		},
		Preferences:    Preferences{Notifications: true},
		LinkedAccounts: []*LinkedAccount{},
		SchemaVersion:  CurrentSchemaVersion,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// AccountKey is the storage namespace of the user's documents.
func (u *User) AccountKey() string {
	return u.Email
}

// RequiresPin reports whether login must present a PIN.
func (u *User) RequiresPin() bool {
	return u.Security.TwoFactorEnabled && u.Security.HasPin()
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
