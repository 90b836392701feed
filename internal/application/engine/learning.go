package engine

import (
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// CompleteModule awards a learning module's XP when its quiz is answered
// correctly. A module already completed awards nothing.
func CompleteModule(acct *entity.Account, moduleID string, answer int) (float64, error) {
	module := entity.LearningModuleByID(moduleID)
	if module == nil {
		return 0, domainerror.NewQuestError(domainerror.ErrCodeModuleNotFound, "learning module not found", domainerror.ErrModuleNotFound)
	}
	if !module.Quiz.IsCorrect(answer) {
		return 0, domainerror.NewQuestError(domainerror.ErrCodeIncorrectAnswer, "that's not quite right, try again", domainerror.ErrIncorrectAnswer)
	}
	if acct.CompletedModules.Has(module.ID) {
		return 0, nil
	}

	AwardXP(acct, module.XPReward)
	acct.CompletedModules.Add(module.ID)
	return module.XPReward, nil
}
