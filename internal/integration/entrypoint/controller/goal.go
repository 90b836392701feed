package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendxp/backend/internal/application/usecase/goal"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/entrypoint/dto"
)

// GoalController handles savings goal endpoints.
type GoalController struct {
	listUseCase       *goal.ListGoalsUseCase
	createUseCase     *goal.CreateGoalUseCase
	contributeUseCase *goal.ContributeToGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	contributeUseCase *goal.ContributeToGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		contributeUseCase: contributeUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{AccountKey: key})
	if err != nil {
		handleError(ctx, err)
		return
	}

	goals := make([]dto.GoalResponse, 0, len(output.Goals))
	for i := range output.Goals {
		goals = append(goals, dto.ToGoalResponse(&output.Goals[i]))
	}
	ctx.JSON(http.StatusOK, dto.GoalListResponse{Goals: goals})
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingGoalFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		AccountKey:   key,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		VideoURL:     req.VideoURL,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(&output.Goal))
}

// Contribute handles POST /goals/:id/contributions requests.
func (c *GoalController) Contribute(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	var req dto.ContributeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidContribution))
		return
	}

	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), goal.ContributeToGoalInput{
		AccountKey: key,
		GoalID:     ctx.Param("id"),
		Amount:     req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ContributeResponse{
		Goal:        dto.ToGoalResponse(&output.Goal),
		Ignored:     output.Ignored,
		Completed:   output.Completed,
		BonusXP:     output.BonusXP,
		Progression: dto.ToProgressionResponse(output.Progression),
	})
}
