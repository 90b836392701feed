package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/session"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	AccountKey string
	TokenID    string
	ExpiresAt  time.Time
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	sessions *session.Manager
	denylist adapter.TokenDenylist
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(sessions *session.Manager, denylist adapter.TokenDenylist) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		sessions: sessions,
		denylist: denylist,
	}
}

// Execute closes the account's session and revokes the presented token.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	uc.sessions.Close(input.AccountKey)

	// Revocation failures are logged; the client discards the token anyway.
	if input.TokenID != "" {
		if err := uc.denylist.Revoke(ctx, input.TokenID, input.ExpiresAt); err != nil {
			slog.Warn("failed to revoke token", "account", input.AccountKey, "error", err)
		}
	}

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
