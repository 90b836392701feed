package account

import (
	"context"

	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
)

// UpdatePreferencesInput represents a partial preferences update.
type UpdatePreferencesInput struct {
	AccountKey    string
	Notifications *bool
}

// UpdatePreferencesOutput represents the stored preferences.
type UpdatePreferencesOutput struct {
	Preferences entity.Preferences
}

// UpdatePreferencesUseCase changes the user's own settings.
type UpdatePreferencesUseCase struct {
	sessions *session.Manager
}

// NewUpdatePreferencesUseCase creates a new UpdatePreferencesUseCase instance.
func NewUpdatePreferencesUseCase(sessions *session.Manager) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{
		sessions: sessions,
	}
}

// Execute performs the update.
func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, input UpdatePreferencesInput) (*UpdatePreferencesOutput, error) {
	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	if input.Notifications != nil {
		s.Account.User.Preferences.Notifications = *input.Notifications
		uc.sessions.Commit(ctx, s)
	}

	return &UpdatePreferencesOutput{
		Preferences: s.Account.User.Preferences,
	}, nil
}
