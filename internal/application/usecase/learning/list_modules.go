// Package learning contains learning module use cases.
package learning

import (
	"context"

	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
)

// ListModulesInput represents the input for listing learning modules.
type ListModulesInput struct {
	AccountKey string
}

// ModuleOutput is a learning module with the account's completion flag.
type ModuleOutput struct {
	Module    *entity.LearningModule
	Completed bool
}

// ListModulesOutput represents the output of listing learning modules.
type ListModulesOutput struct {
	Modules []ModuleOutput
}

// ListModulesUseCase lists the learning catalogue.
type ListModulesUseCase struct {
	sessions *session.Manager
}

// NewListModulesUseCase creates a new ListModulesUseCase instance.
func NewListModulesUseCase(sessions *session.Manager) *ListModulesUseCase {
	return &ListModulesUseCase{
		sessions: sessions,
	}
}

// Execute performs the listing.
func (uc *ListModulesUseCase) Execute(ctx context.Context, input ListModulesInput) (*ListModulesOutput, error) {
	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	catalogue := entity.LearningModules()
	modules := make([]ModuleOutput, 0, len(catalogue))
	for _, m := range catalogue {
		modules = append(modules, ModuleOutput{
			Module:    m,
			Completed: s.Account.CompletedModules.Has(m.ID),
		})
	}

	return &ListModulesOutput{
		Modules: modules,
	}, nil
}
