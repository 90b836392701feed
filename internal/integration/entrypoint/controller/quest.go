package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendxp/backend/internal/application/usecase/learning"
	"github.com/spendxp/backend/internal/application/usecase/quest"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/entrypoint/dto"
)

// QuestController handles quest and learning module endpoints.
type QuestController struct {
	listQuestsUseCase     *quest.ListQuestsUseCase
	claimQuestUseCase     *quest.ClaimQuestUseCase
	answerQuizUseCase     *quest.AnswerQuizUseCase
	listModulesUseCase    *learning.ListModulesUseCase
	completeModuleUseCase *learning.CompleteModuleUseCase
}

// NewQuestController creates a new quest controller instance.
func NewQuestController(
	listQuestsUseCase *quest.ListQuestsUseCase,
	claimQuestUseCase *quest.ClaimQuestUseCase,
	answerQuizUseCase *quest.AnswerQuizUseCase,
	listModulesUseCase *learning.ListModulesUseCase,
	completeModuleUseCase *learning.CompleteModuleUseCase,
) *QuestController {
	return &QuestController{
		listQuestsUseCase:     listQuestsUseCase,
		claimQuestUseCase:     claimQuestUseCase,
		answerQuizUseCase:     answerQuizUseCase,
		listModulesUseCase:    listModulesUseCase,
		completeModuleUseCase: completeModuleUseCase,
	}
}

// ListQuests handles GET /quests requests.
func (c *QuestController) ListQuests(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	output, err := c.listQuestsUseCase.Execute(ctx.Request.Context(), quest.ListQuestsInput{AccountKey: key})
	if err != nil {
		handleError(ctx, err)
		return
	}

	quests := make([]dto.QuestResponse, 0, len(output.Quests))
	for _, s := range output.Quests {
		quests = append(quests, dto.ToQuestResponse(s))
	}
	ctx.JSON(http.StatusOK, dto.QuestListResponse{Quests: quests})
}

// ClaimQuest handles POST /quests/:id/claim requests.
func (c *QuestController) ClaimQuest(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	output, err := c.claimQuestUseCase.Execute(ctx.Request.Context(), quest.ClaimQuestInput{
		AccountKey: key,
		QuestID:    ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ClaimResponse{
		XPAwarded:   output.XPAwarded,
		Progression: dto.ToProgressionResponse(output.Progression),
	})
}

// AnswerQuiz handles POST /quests/:id/answer requests.
func (c *QuestController) AnswerQuiz(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeIncorrectAnswer))
		return
	}

	output, err := c.answerQuizUseCase.Execute(ctx.Request.Context(), quest.AnswerQuizInput{
		AccountKey: key,
		QuestID:    ctx.Param("id"),
		Answer:     *req.Answer,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AnswerResponse{Correct: output.Correct})
}

// ListModules handles GET /learning/modules requests.
func (c *QuestController) ListModules(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	output, err := c.listModulesUseCase.Execute(ctx.Request.Context(), learning.ListModulesInput{AccountKey: key})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToModuleListResponse(output))
}

// CompleteModule handles POST /learning/modules/:id/complete requests.
func (c *QuestController) CompleteModule(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeIncorrectAnswer))
		return
	}

	output, err := c.completeModuleUseCase.Execute(ctx.Request.Context(), learning.CompleteModuleInput{
		AccountKey: key,
		ModuleID:   ctx.Param("id"),
		Answer:     *req.Answer,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ClaimResponse{
		XPAwarded:   output.XPAwarded,
		Progression: dto.ToProgressionResponse(output.Progression),
	})
}
