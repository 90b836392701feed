package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendxp/backend/internal/application/usecase/auth"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/entrypoint/dto"
	"github.com/spendxp/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	registerUseCase       *auth.RegisterUserUseCase
	checkUserUseCase      *auth.CheckUserUseCase
	loginUseCase          *auth.LoginUserUseCase
	logoutUseCase         *auth.LogoutUserUseCase
	resetPinUseCase       *auth.ResetPinUseCase
	updateSecurityUseCase *auth.UpdateSecurityUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	checkUserUseCase *auth.CheckUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
	logoutUseCase *auth.LogoutUserUseCase,
	resetPinUseCase *auth.ResetPinUseCase,
	updateSecurityUseCase *auth.UpdateSecurityUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase:       registerUseCase,
		checkUserUseCase:      checkUserUseCase,
		loginUseCase:          loginUseCase,
		logoutUseCase:         logoutUseCase,
		resetPinUseCase:       resetPinUseCase,
		updateSecurityUseCase: updateSecurityUseCase,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingFields))
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Currency: req.Currency,
		Pin:      req.Pin,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAuthResponse(output.Token, &output.User))
}

// CheckUser handles POST /auth/check requests.
func (c *AuthController) CheckUser(ctx *gin.Context) {
	var req dto.CheckUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeInvalidEmail))
		return
	}

	output, err := c.checkUserUseCase.Execute(ctx.Request.Context(), auth.CheckUserInput{Email: req.Email})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CheckUserResponse{
		Exists:           output.Exists,
		HasPin:           output.HasPin,
		TwoFactorEnabled: output.TwoFactorEnabled,
	})
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingFields))
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email: req.Email,
		Pin:   req.Pin,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAuthResponse(output.Token, &output.User))
}

// ResetPin handles POST /auth/reset-pin requests.
func (c *AuthController) ResetPin(ctx *gin.Context) {
	var req dto.ResetPinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingFields))
		return
	}

	output, err := c.resetPinUseCase.Execute(ctx.Request.Context(), auth.ResetPinInput{
		Email:  req.Email,
		NewPin: req.NewPin,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAuthResponse(output.Token, &output.User))
}

// Logout handles POST /auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}
	tokenID, expiresAt := middleware.GetTokenFromContext(ctx)

	output, err := c.logoutUseCase.Execute(ctx.Request.Context(), auth.LogoutUserInput{
		AccountKey: key,
		TokenID:    tokenID,
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// UpdateSecurity handles PATCH /users/me/security requests.
func (c *AuthController) UpdateSecurity(ctx *gin.Context) {
	key, ok := accountKey(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSecurityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingFields))
		return
	}

	output, err := c.updateSecurityUseCase.Execute(ctx.Request.Context(), auth.UpdateSecurityInput{
		AccountKey:       key,
		TwoFactorEnabled: req.TwoFactorEnabled,
		NewPin:           req.NewPin,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SecurityResponse{
		TwoFactorEnabled: output.TwoFactorEnabled,
		HasPin:           output.HasPin,
	})
}
