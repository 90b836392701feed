// Package parental contains the parent-mode use cases.
package parental

import (
	"context"
	"fmt"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/session"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// StartParentSessionInput represents the parent PIN entry.
type StartParentSessionInput struct {
	AccountKey string
	Pin        string
}

// StartParentSessionOutput carries the parent-scoped token.
type StartParentSessionOutput struct {
	Token      *adapter.IssuedToken
	PinCreated bool
}

// StartParentSessionUseCase enters parent mode. The first call sets the parent
// PIN; later calls verify it.
type StartParentSessionUseCase struct {
	sessions     *session.Manager
	pinService   adapter.PinService
	tokenService adapter.TokenService
}

// NewStartParentSessionUseCase creates a new StartParentSessionUseCase instance.
func NewStartParentSessionUseCase(
	sessions *session.Manager,
	pinService adapter.PinService,
	tokenService adapter.TokenService,
) *StartParentSessionUseCase {
	return &StartParentSessionUseCase{
		sessions:     sessions,
		pinService:   pinService,
		tokenService: tokenService,
	}
}

// Execute performs the PIN check and issues the token.
func (uc *StartParentSessionUseCase) Execute(ctx context.Context, input StartParentSessionInput) (*StartParentSessionOutput, error) {
	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	user := s.Account.User
	created := false

	if !user.Security.HasParentPin() {
		if err := uc.pinService.ValidatePinFormat(input.Pin); err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidPinFormat,
				"PIN must be 4 to 8 digits",
				domainerror.ErrInvalidPinFormat,
			)
		}
		hash, err := uc.pinService.HashPin(input.Pin)
		if err != nil {
			return nil, fmt.Errorf("failed to hash parent pin: %w", err)
		}
		user.Security.ParentPinHash = hash
		uc.sessions.Commit(ctx, s)
		created = true
	} else if err := uc.pinService.VerifyPin(user.Security.ParentPinHash, input.Pin); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidParentPin,
			"incorrect parent PIN",
			domainerror.ErrInvalidParentPin,
		)
	}

	token, err := uc.tokenService.GenerateToken(ctx, user.ID, user.AccountKey(), adapter.TokenScopeParent)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &StartParentSessionOutput{
		Token:      token,
		PinCreated: created,
	}, nil
}
