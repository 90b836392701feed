package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendxp/backend/internal/application/usecase/account"
	"github.com/spendxp/backend/internal/application/usecase/notification"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/entrypoint/dto"
)

// UserController handles the account holder's own profile endpoints.
type UserController struct {
	getProfileUseCase        *account.GetProfileUseCase
	updatePreferencesUseCase *account.UpdatePreferencesUseCase
	linkAccountUseCase       *account.LinkAccountUseCase
	listNotificationsUseCase *notification.ListNotificationsUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *account.GetProfileUseCase,
	updatePreferencesUseCase *account.UpdatePreferencesUseCase,
	linkAccountUseCase *account.LinkAccountUseCase,
	listNotificationsUseCase *notification.ListNotificationsUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:        getProfileUseCase,
		updatePreferencesUseCase: updatePreferencesUseCase,
		linkAccountUseCase:       linkAccountUseCase,
		listNotificationsUseCase: listNotificationsUseCase,
	}
}

// GetProfile handles GET /users/me requests.
func (c *UserController) GetProfile(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), account.GetProfileInput{AccountKey: key})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{
		User:             dto.ToUserResponse(&output.User),
		TransactionCount: output.TransactionCount,
		CompletedModules: output.CompletedModules,
		ClaimedQuests:    output.ClaimedQuests,
	})
}

// UpdatePreferences handles PATCH /users/me/preferences requests.
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingFields))
		return
	}

	output, err := c.updatePreferencesUseCase.Execute(ctx.Request.Context(), account.UpdatePreferencesInput{
		AccountKey:    key,
		Notifications: req.Notifications,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PreferencesResponse{
		Notifications: output.Preferences.Notifications,
	})
}

// LinkAccount handles POST /linked-accounts requests.
func (c *UserController) LinkAccount(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	var req dto.LinkAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidLinkedAccount))
		return
	}

	output, err := c.linkAccountUseCase.Execute(ctx.Request.Context(), account.LinkAccountInput{
		AccountKey: key,
		Provider:   req.Provider,
		Type:       entity.LinkedAccountType(req.Type),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	imported := make([]dto.TransactionResponse, 0, len(output.Imported))
	for _, tx := range output.Imported {
		imported = append(imported, dto.ToTransactionResponse(tx))
	}

	ctx.JSON(http.StatusCreated, dto.LinkAccountResponse{
		LinkedAccount: dto.ToLinkedAccountResponse(output.LinkedAccount),
		Imported:      imported,
	})
}

// ListNotifications handles GET /notifications requests.
func (c *UserController) ListNotifications(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	output, err := c.listNotificationsUseCase.Execute(ctx.Request.Context(), notification.ListNotificationsInput{
		AccountKey: key,
		Limit:      queryInt(ctx, "limit", 0),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(output.Notifications))
}
