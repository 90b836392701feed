// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/engine"
	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for logging a transaction.
type CreateTransactionInput struct {
	AccountKey  string
	Amount      float64
	CategoryID  string
	Description string
}

// CreateTransactionOutput represents the output of logging a transaction.
type CreateTransactionOutput struct {
	Transaction entity.Transaction
	XPAwarded   float64
	LeveledUp   bool
	Progression valueobject.Progression
}

// CreateTransactionUseCase logs a manual transaction through the spending gate.
type CreateTransactionUseCase struct {
	sessions *session.Manager
	clock    adapter.Clock
	notifier adapter.Notifier
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(sessions *session.Manager, clock adapter.Clock, notifier adapter.Notifier) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		sessions: sessions,
		clock:    clock,
		notifier: notifier,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"description is required",
			domainerror.ErrDescriptionRequired,
		)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	if s.Account.Categories.ByID(input.CategoryID) == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	submission, err := engine.Submit(s.Account, input.Amount, input.CategoryID, description, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	uc.sessions.Commit(ctx, s)

	for _, n := range submission.Notifications {
		uc.notifier.Notify(ctx, n)
	}

	return &CreateTransactionOutput{
		Transaction: *submission.Transaction,
		XPAwarded:   submission.XPAwarded,
		LeveledUp:   submission.LeveledUp,
		Progression: s.Account.User.Progression,
	}, nil
}
