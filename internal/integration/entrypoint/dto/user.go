package dto

import (
	"time"

	"github.com/spendxp/backend/internal/domain/entity"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// UpdatePreferencesRequest represents a partial preferences update.
type UpdatePreferencesRequest struct {
	Notifications *bool `json:"notifications,omitempty"`
}

// LinkAccountRequest represents the request body for connecting an external account.
type LinkAccountRequest struct {
	Provider string `json:"provider" binding:"required"`
	Type     string `json:"type" binding:"required"`
}

// ProgressionResponse represents the XP state of a user.
type ProgressionResponse struct {
	Level         int     `json:"level"`
	XP            float64 `json:"xp"`
	XPToNextLevel float64 `json:"xp_to_next_level"`
	Streak        int     `json:"streak"`
}

// PreferencesResponse represents the user's own settings.
type PreferencesResponse struct {
	Notifications bool `json:"notifications"`
}

// LinkedAccountResponse represents a connected external account.
type LinkedAccountResponse struct {
	ID          string    `json:"id"`
	Provider    string    `json:"provider"`
	Type        string    `json:"type"`
	Mask        string    `json:"mask"`
	Balance     *float64  `json:"balance,omitempty"`
	ConnectedAt time.Time `json:"connected_at"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID               string                  `json:"id"`
	Email            string                  `json:"email"`
	Name             string                  `json:"name"`
	Currency         string                  `json:"currency"`
	CurrencySymbol   string                  `json:"currency_symbol"`
	Progression      ProgressionResponse     `json:"progression"`
	TwoFactorEnabled bool                    `json:"two_factor_enabled"`
	Preferences      PreferencesResponse     `json:"preferences"`
	LinkedAccounts   []LinkedAccountResponse `json:"linked_accounts"`
	CreatedAt        time.Time               `json:"created_at"`
}

// ProfileResponse represents the profile endpoint.
type ProfileResponse struct {
	User             UserResponse `json:"user"`
	TransactionCount int          `json:"transaction_count"`
	CompletedModules int          `json:"completed_modules"`
	ClaimedQuests    int          `json:"claimed_quests"`
}

// LinkAccountResponse represents the result of linking an account.
type LinkAccountResponse struct {
	LinkedAccount LinkedAccountResponse `json:"linked_account"`
	Imported      []TransactionResponse `json:"imported_transactions"`
}

// ToProgressionResponse converts a Progression value to its DTO.
func ToProgressionResponse(p valueobject.Progression) ProgressionResponse {
	return ProgressionResponse{
		Level:         p.Level,
		XP:            p.XP,
		XPToNextLevel: p.XPToNextLevel,
		Streak:        p.Streak,
	}
}

// ToLinkedAccountResponse converts a LinkedAccount entity to its DTO.
func ToLinkedAccountResponse(a *entity.LinkedAccount) LinkedAccountResponse {
	return LinkedAccountResponse{
		ID:          a.ID,
		Provider:    a.Provider,
		Type:        string(a.Type),
		Mask:        a.Mask,
		Balance:     a.Balance,
		ConnectedAt: a.ConnectedAt,
	}
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	linked := make([]LinkedAccountResponse, 0, len(user.LinkedAccounts))
	for _, a := range user.LinkedAccounts {
		linked = append(linked, ToLinkedAccountResponse(a))
	}
	return UserResponse{
		ID:               user.ID.String(),
		Email:            user.Email,
		Name:             user.Name,
		Currency:         string(user.Currency),
		CurrencySymbol:   user.Currency.Info().Symbol,
		Progression:      ToProgressionResponse(user.Progression),
		TwoFactorEnabled: user.Security.TwoFactorEnabled,
		Preferences:      PreferencesResponse{Notifications: user.Preferences.Notifications},
		LinkedAccounts:   linked,
		CreatedAt:        user.CreatedAt,
	}
}
