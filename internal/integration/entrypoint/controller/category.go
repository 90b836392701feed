package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendxp/backend/internal/application/usecase/category"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category and budget endpoints.
type CategoryController struct {
	listUseCase      *category.ListCategoriesUseCase
	createUseCase    *category.CreateCategoryUseCase
	setBudgetUseCase *category.SetBudgetUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	setBudgetUseCase *category.SetBudgetUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		setBudgetUseCase: setBudgetUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{AccountKey: key})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingCategoryFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		AccountKey: key,
		Name:       req.Name,
		Emoji:      req.Emoji,
		Color:      req.Color,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(&output.Category))
}

// SetBudget handles PUT /categories/:id/budget requests.
func (c *CategoryController) SetBudget(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidBudget))
		return
	}

	output, err := c.setBudgetUseCase.Execute(ctx.Request.Context(), category.SetBudgetInput{
		AccountKey: key,
		CategoryID: ctx.Param("id"),
		Budget:     req.Budget,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(&output.Category))
}
