package investment

import (
	"context"
	"log/slog"
	"time"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/session"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// DefaultAnalysisCooldown is the minimum gap between two analyses of one account.
const DefaultAnalysisCooldown = 5 * time.Second

// AnalyzeInvestmentInput represents the input for an investment analysis.
type AnalyzeInvestmentInput struct {
	AccountKey   string
	InvestmentID string
}

// AnalyzeInvestmentOutput carries the advice service's opaque analysis text.
type AnalyzeInvestmentOutput struct {
	Subject  string
	Analysis string
}

// AnalyzeInvestmentUseCase asks the advice service about one holding.
type AnalyzeInvestmentUseCase struct {
	sessions *session.Manager
	advice   adapter.AdviceService
	limiter  adapter.RateLimiter
	cooldown time.Duration
}

// NewAnalyzeInvestmentUseCase creates a new AnalyzeInvestmentUseCase instance.
func NewAnalyzeInvestmentUseCase(
	sessions *session.Manager,
	advice adapter.AdviceService,
	limiter adapter.RateLimiter,
	cooldown time.Duration,
) *AnalyzeInvestmentUseCase {
	if cooldown <= 0 {
		cooldown = DefaultAnalysisCooldown
	}
	return &AnalyzeInvestmentUseCase{
		sessions: sessions,
		advice:   advice,
		limiter:  limiter,
		cooldown: cooldown,
	}
}

// Execute performs the analysis.
func (uc *AnalyzeInvestmentUseCase) Execute(ctx context.Context, input AnalyzeInvestmentInput) (*AnalyzeInvestmentOutput, error) {
	subject, err := uc.subject(ctx, input)
	if err != nil {
		return nil, err
	}

	allowed, err := uc.limiter.Allow(ctx, "analysis:"+input.AccountKey, uc.cooldown)
	if err != nil {
		// The limiter failing open keeps analysis usable without redis.
		slog.Warn("analysis rate limiter unavailable", "account", input.AccountKey, "error", err)
		allowed = true
	}
	if !allowed {
		return nil, domainerror.NewAdviceError(
			domainerror.ErrCodeAnalysisRateLimited,
			"please wait a few seconds before requesting another analysis",
			domainerror.ErrAnalysisRateLimited,
		)
	}

	analysis, err := uc.advice.Analyze(ctx, subject)
	if err != nil {
		slog.Error("investment analysis failed", "account", input.AccountKey, "subject", subject, "error", err)
		return nil, domainerror.NewAdviceError(
			domainerror.ErrCodeAdviceServiceFailure,
			domainerror.AdviceFailureMessage,
			domainerror.ErrAdviceServiceFailure,
		)
	}

	return &AnalyzeInvestmentOutput{
		Subject:  subject,
		Analysis: analysis,
	}, nil
}

// subject resolves the holding under the session lock, which is released
// before the slow advice call.
func (uc *AnalyzeInvestmentUseCase) subject(ctx context.Context, input AnalyzeInvestmentInput) (string, error) {
	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return "", err
	}
	defer release()

	investment := s.Account.Investments.ByID(input.InvestmentID)
	if investment == nil {
		return "", domainerror.NewAdviceError(
			domainerror.ErrCodeInvestmentNotFound,
			"investment not found",
			domainerror.ErrInvestmentNotFound,
		)
	}
	return investment.Subject(), nil
}
