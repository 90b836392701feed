// Package advice contains the money coach use case.
package advice

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spendxp/backend/internal/application/adapter"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// AskCoachInput represents a question to the money coach.
type AskCoachInput struct {
	AccountKey string
	Prompt     string
}

// AskCoachOutput carries the coach's reply.
type AskCoachOutput struct {
	Reply string
}

// AskCoachUseCase forwards a question to the advice service.
type AskCoachUseCase struct {
	advice adapter.AdviceService
}

// NewAskCoachUseCase creates a new AskCoachUseCase instance.
func NewAskCoachUseCase(advice adapter.AdviceService) *AskCoachUseCase {
	return &AskCoachUseCase{
		advice: advice,
	}
}

// Execute performs the request. Service failures surface as one generic
// apologetic message and are not retried.
func (uc *AskCoachUseCase) Execute(ctx context.Context, input AskCoachInput) (*AskCoachOutput, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return nil, domainerror.NewAdviceError(
			domainerror.ErrCodeEmptyPrompt,
			"please type a question",
			domainerror.ErrEmptyPrompt,
		)
	}

	reply, err := uc.advice.Ask(ctx, prompt)
	if err != nil {
		slog.Error("coach request failed", "account", input.AccountKey, "error", err)
		return nil, domainerror.NewAdviceError(
			domainerror.ErrCodeAdviceServiceFailure,
			domainerror.AdviceFailureMessage,
			domainerror.ErrAdviceServiceFailure,
		)
	}

	return &AskCoachOutput{
		Reply: reply,
	}, nil
}
