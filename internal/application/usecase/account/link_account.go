package account

import (
	"context"
	"strings"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/engine"
	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// LinkAccountInput represents the input for connecting an external account.
type LinkAccountInput struct {
	AccountKey string
	Provider   string
	Type       entity.LinkedAccountType
}

// LinkAccountOutput returns the linked account and the transactions it imported.
type LinkAccountOutput struct {
	LinkedAccount *entity.LinkedAccount
	Imported      []*entity.Transaction
}

// LinkAccountUseCase connects an external account and backfills its recent activity.
type LinkAccountUseCase struct {
	sessions *session.Manager
	clock    adapter.Clock
}

// NewLinkAccountUseCase creates a new LinkAccountUseCase instance.
func NewLinkAccountUseCase(sessions *session.Manager, clock adapter.Clock) *LinkAccountUseCase {
	return &LinkAccountUseCase{
		sessions: sessions,
		clock:    clock,
	}
}

// Execute performs the link.
func (uc *LinkAccountUseCase) Execute(ctx context.Context, input LinkAccountInput) (*LinkAccountOutput, error) {
	provider := strings.TrimSpace(input.Provider)
	if provider == "" || !input.Type.IsValid() {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidLinkedAccount,
			"provider and a type of Bank or Card are required",
			domainerror.ErrInvalidLinkedAccount,
		)
	}

	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	before := len(s.Account.Ledger)
	linked := engine.LinkAccount(s.Account, provider, input.Type, uc.clock.Now())
	imported := append([]*entity.Transaction(nil), s.Account.Ledger[:len(s.Account.Ledger)-before]...)
	uc.sessions.Commit(ctx, s)

	return &LinkAccountOutput{
		LinkedAccount: linked,
		Imported:      imported,
	}, nil
}
