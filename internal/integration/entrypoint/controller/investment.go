package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendxp/backend/internal/application/usecase/advice"
	"github.com/spendxp/backend/internal/application/usecase/investment"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/entrypoint/dto"
)

// InvestmentController handles investment tracking and money coach endpoints.
type InvestmentController struct {
	createUseCase  *investment.CreateInvestmentUseCase
	listUseCase    *investment.ListInvestmentsUseCase
	deleteUseCase  *investment.DeleteInvestmentUseCase
	analyzeUseCase *investment.AnalyzeInvestmentUseCase
	askUseCase     *advice.AskCoachUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	createUseCase *investment.CreateInvestmentUseCase,
	listUseCase *investment.ListInvestmentsUseCase,
	deleteUseCase *investment.DeleteInvestmentUseCase,
	analyzeUseCase *investment.AnalyzeInvestmentUseCase,
	askUseCase *advice.AskCoachUseCase,
) *InvestmentController {
	return &InvestmentController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		deleteUseCase:  deleteUseCase,
		analyzeUseCase: analyzeUseCase,
		askUseCase:     askUseCase,
	}
}

// List handles GET /investments requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), investment.ListInvestmentsInput{AccountKey: key})
	if err != nil {
		handleError(ctx, err)
		return
	}

	investments := make([]dto.InvestmentResponse, 0, len(output.Investments))
	for i := range output.Investments {
		investments = append(investments, dto.ToInvestmentResponse(&output.Investments[i]))
	}
	ctx.JSON(http.StatusOK, dto.InvestmentListResponse{
		Investments: investments,
		TotalValue:  output.TotalValue,
	})
}

// Create handles POST /investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	var req dto.CreateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidInvestment))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), investment.CreateInvestmentInput{
		AccountKey:      key,
		AccountName:     req.AccountName,
		Ticker:          req.Ticker,
		Type:            entity.InvestmentType(req.Type),
		CurrentValue:    req.CurrentValue,
		ProjectedGrowth: req.ProjectedGrowth,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentResponse(&output.Investment))
}

// Delete handles DELETE /investments/:id requests.
func (c *InvestmentController) Delete(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), investment.DeleteInvestmentInput{
		AccountKey:   key,
		InvestmentID: ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Analyze handles POST /investments/:id/analysis requests.
func (c *InvestmentController) Analyze(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	output, err := c.analyzeUseCase.Execute(ctx.Request.Context(), investment.AnalyzeInvestmentInput{
		AccountKey:   key,
		InvestmentID: ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AnalysisResponse{
		Subject:  output.Subject,
		Analysis: output.Analysis,
	})
}

// Ask handles POST /coach requests.
func (c *InvestmentController) Ask(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	var req dto.AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeEmptyPrompt))
		return
	}

	output, err := c.askUseCase.Execute(ctx.Request.Context(), advice.AskCoachInput{
		AccountKey: key,
		Prompt:     req.Prompt,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AskResponse{Reply: output.Reply})
}
