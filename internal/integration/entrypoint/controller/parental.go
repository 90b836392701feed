package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendxp/backend/internal/application/usecase/parental"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/entrypoint/dto"
)

// ParentalController handles parent mode endpoints.
type ParentalController struct {
	startSessionUseCase   *parental.StartParentSessionUseCase
	overviewUseCase       *parental.GetOverviewUseCase
	updateControlsUseCase *parental.UpdateControlsUseCase
}

// NewParentalController creates a new parental controller instance.
func NewParentalController(
	startSessionUseCase *parental.StartParentSessionUseCase,
	overviewUseCase *parental.GetOverviewUseCase,
	updateControlsUseCase *parental.UpdateControlsUseCase,
) *ParentalController {
	return &ParentalController{
		startSessionUseCase:   startSessionUseCase,
		overviewUseCase:       overviewUseCase,
		updateControlsUseCase: updateControlsUseCase,
	}
}

// StartSession handles POST /parent/session requests.
func (c *ParentalController) StartSession(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	var req dto.ParentSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidPinFormat))
		return
	}

	output, err := c.startSessionUseCase.Execute(ctx.Request.Context(), parental.StartParentSessionInput{
		AccountKey: key,
		Pin:        req.Pin,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ParentSessionResponse{
		TokenResponse: dto.ToTokenResponse(output.Token),
		PinCreated:    output.PinCreated,
	})
}

// Overview handles GET /parent/overview requests.
func (c *ParentalController) Overview(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), parental.GetOverviewInput{AccountKey: key})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// UpdateControls handles PATCH /parent/controls requests.
func (c *ParentalController) UpdateControls(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	var req dto.UpdateControlsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidSpendingLimit))
		return
	}

	output, err := c.updateControlsUseCase.Execute(ctx.Request.Context(), parental.UpdateControlsInput{
		AccountKey:            key,
		SpendingLimitEnabled:  req.SpendingLimitEnabled,
		SpendingLimitAmount:   req.SpendingLimitAmount,
		SpendingLimitPeriod:   req.SpendingLimitPeriod,
		NotificationsEnabled:  req.NotificationsEnabled,
		NotificationThreshold: req.NotificationThreshold,
		ParentEmail:           req.ParentEmail,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToControlsResponse(output.Controls))
}
