package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/spendxp/backend/internal/domain/entity"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// UserDocument is the stored JSON shape of a user. Progression fields sit at
// the top level.
type UserDocument struct {
	ID               uuid.UUID                `json:"id"`
	Name             string                   `json:"name"`
	Email            string                   `json:"email"`
	Level            int                      `json:"level"`
	XP               float64                  `json:"xp"`
	XPToNextLevel    float64                  `json:"xpToNextLevel"`
	Streak           int                      `json:"streak"`
	Currency         string                   `json:"currency"`
	Security         SecurityDocument         `json:"security"`
	ParentalControls ParentalControlsDocument `json:"parentalControls"`
	Preferences      PreferencesDocument      `json:"preferences"`
	LinkedAccounts   []LinkedAccountDocument  `json:"linkedAccounts"`
	SchemaVersion    int                      `json:"schemaVersion"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}

// SecurityDocument is the stored JSON shape of the user's credentials.
type SecurityDocument struct {
	PinHash          string `json:"pinHash,omitempty"`
	ParentPinHash    string `json:"parentPinHash,omitempty"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
}

// ParentalControlsDocument is the stored JSON shape of parental controls.
type ParentalControlsDocument struct {
	SpendingLimitEnabled  bool     `json:"spendingLimitEnabled"`
	SpendingLimitAmount   *float64 `json:"spendingLimitAmount,omitempty"`
	SpendingLimitPeriod   string   `json:"spendingLimitPeriod,omitempty"`
	NotificationsEnabled  bool     `json:"notificationsEnabled,omitempty"`
	NotificationThreshold *float64 `json:"notificationThreshold,omitempty"`
	ParentEmail           string   `json:"parentEmail,omitempty"`
}

// PreferencesDocument is the stored JSON shape of user preferences.
type PreferencesDocument struct {
	Notifications bool `json:"notifications"`
}

// LinkedAccountDocument is the stored JSON shape of a linked account.
type LinkedAccountDocument struct {
	ID          string    `json:"id"`
	Provider    string    `json:"provider"`
	Type        string    `json:"type"`
	Mask        string    `json:"mask"`
	Balance     *float64  `json:"balance,omitempty"`
	ConnectedAt time.Time `json:"connectedAt"`
}

// ToEntity converts a UserDocument to a domain User entity.
func (d *UserDocument) ToEntity() *entity.User {
	linked := make([]*entity.LinkedAccount, 0, len(d.LinkedAccounts))
	for _, la := range d.LinkedAccounts {
		linked = append(linked, &entity.LinkedAccount{
			ID:          la.ID,
			Provider:    la.Provider,
			Type:        entity.LinkedAccountType(la.Type),
			Mask:        la.Mask,
			Balance:     la.Balance,
			ConnectedAt: la.ConnectedAt,
		})
	}

	return &entity.User{
		ID:       d.ID,
		Email:    d.Email,
		Name:     d.Name,
		Currency: valueobject.ParseCurrency(d.Currency),
		Progression: valueobject.Progression{
			Level:         d.Level,
			XP:            d.XP,
			XPToNextLevel: d.XPToNextLevel,
			Streak:        d.Streak,
		},
		Security: entity.Security{
			PinHash:          d.Security.PinHash,
			ParentPinHash:    d.Security.ParentPinHash,
			TwoFactorEnabled: d.Security.TwoFactorEnabled,
		},
		ParentalControls: entity.ParentalControls{
			SpendingLimitEnabled:  d.ParentalControls.SpendingLimitEnabled,
			SpendingLimitAmount:   d.ParentalControls.SpendingLimitAmount,
			SpendingLimitPeriod:   valueobject.SpendingPeriod(d.ParentalControls.SpendingLimitPeriod).OrDefault(),
			NotificationsEnabled:  d.ParentalControls.NotificationsEnabled,
			NotificationThreshold: d.ParentalControls.NotificationThreshold,
			ParentEmail:           d.ParentalControls.ParentEmail,
		},
		Preferences:    entity.Preferences{Notifications: d.Preferences.Notifications},
		LinkedAccounts: linked,
		SchemaVersion:  d.SchemaVersion,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// UserDocumentFromEntity creates a UserDocument from a domain User entity.
func UserDocumentFromEntity(user *entity.User) *UserDocument {
	linked := make([]LinkedAccountDocument, 0, len(user.LinkedAccounts))
	for _, la := range user.LinkedAccounts {
		linked = append(linked, LinkedAccountDocument{
			ID:          la.ID,
			Provider:    la.Provider,
			Type:        string(la.Type),
			Mask:        la.Mask,
			Balance:     la.Balance,
			ConnectedAt: la.ConnectedAt,
		})
	}

	return &UserDocument{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Level:         user.Progression.Level,
		XP:            user.Progression.XP,
		XPToNextLevel: user.Progression.XPToNextLevel,
		Streak:        user.Progression.Streak,
		Currency:      string(user.Currency),
		Security: SecurityDocument{
			PinHash:          user.Security.PinHash,
			ParentPinHash:    user.Security.ParentPinHash,
			TwoFactorEnabled: user.Security.TwoFactorEnabled,
		},
		ParentalControls: ParentalControlsDocument{
			SpendingLimitEnabled:  user.ParentalControls.SpendingLimitEnabled,
			SpendingLimitAmount:   user.ParentalControls.SpendingLimitAmount,
			SpendingLimitPeriod:   string(user.ParentalControls.SpendingLimitPeriod),
			NotificationsEnabled:  user.ParentalControls.NotificationsEnabled,
			NotificationThreshold: user.ParentalControls.NotificationThreshold,
			ParentEmail:           user.ParentalControls.ParentEmail,
		},
		Preferences:    PreferencesDocument{Notifications: user.Preferences.Notifications},
		LinkedAccounts: linked,
		SchemaVersion:  user.SchemaVersion,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}
