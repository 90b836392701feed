package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/integration/entrypoint/dto"
	"github.com/spendxp/backend/internal/integration/entrypoint/middleware"
)

// handleError maps domain errors to HTTP responses.
func handleError(ctx *gin.Context, err error) {
	status, code, message := statusForError(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", ctx.FullPath(), "error", err)
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func statusForError(err error) (int, string, string) {
	var limitErr *domainerror.LimitExceededError
	if errors.As(err, &limitErr) {
		return http.StatusUnprocessableEntity, string(domainerror.ErrCodeLimitExceeded), limitErr.Error()
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		return authStatus(authErr.Code), string(authErr.Code), authErr.Message
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		status := http.StatusBadRequest
		if txnErr.Code == domainerror.ErrCodeTxnCategoryNotFound {
			status = http.StatusNotFound
		}
		return status, string(txnErr.Code), txnErr.Message
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		status := http.StatusBadRequest
		switch catErr.Code {
		case domainerror.ErrCodeCategoryNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeCategoryNameExists:
			status = http.StatusConflict
		}
		return status, string(catErr.Code), catErr.Message
	}

	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		status := http.StatusBadRequest
		if goalErr.Code == domainerror.ErrCodeGoalNotFound {
			status = http.StatusNotFound
		}
		return status, string(goalErr.Code), goalErr.Message
	}

	var questErr *domainerror.QuestError
	if errors.As(err, &questErr) {
		status := http.StatusBadRequest
		switch questErr.Code {
		case domainerror.ErrCodeQuestNotFound, domainerror.ErrCodeModuleNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeQuestNotComplete:
			status = http.StatusConflict
		}
		return status, string(questErr.Code), questErr.Message
	}

	var parentalErr *domainerror.ParentalError
	if errors.As(err, &parentalErr) {
		return http.StatusBadRequest, string(parentalErr.Code), parentalErr.Message
	}

	var adviceErr *domainerror.AdviceError
	if errors.As(err, &adviceErr) {
		status := http.StatusBadRequest
		switch adviceErr.Code {
		case domainerror.ErrCodeAdviceServiceFailure:
			status = http.StatusBadGateway
		case domainerror.ErrCodeAnalysisRateLimited:
			status = http.StatusTooManyRequests
		case domainerror.ErrCodeInvestmentNotFound:
			status = http.StatusNotFound
		}
		return status, string(adviceErr.Code), adviceErr.Message
	}

	var accountErr *domainerror.AccountError
	if errors.As(err, &accountErr) {
		status := http.StatusBadRequest
		switch accountErr.Code {
		case domainerror.ErrCodeAccountNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeNotificationDelivery:
			status = http.StatusBadGateway
		}
		return status, string(accountErr.Code), accountErr.Message
	}

	if errors.Is(err, domainerror.ErrAccountNotFound) {
		return http.StatusNotFound, string(domainerror.ErrCodeAccountNotFound), "account not found"
	}

	return http.StatusInternalServerError, "", "An internal error occurred"
}

// authStatus maps auth error codes to HTTP status codes.
func authStatus(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidPinFormat,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodePinRequired,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeRevokedToken,
		domainerror.ErrCodeInvalidParentPin:
		return http.StatusUnauthorized
	case domainerror.ErrCodeParentScopeRequired:
		return http.StatusForbidden
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// badRequest writes the response for a request body that failed to bind.
func badRequest(ctx *gin.Context, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
		Code:  code,
	})
}

// accountKey returns the authenticated account key, writing a 401 when absent.
func accountKey(ctx *gin.Context) (string, bool) {
	key, ok := middleware.GetAccountKeyFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return key, ok
}

// queryInt parses an integer query parameter, returning def when absent or invalid.
func queryInt(ctx *gin.Context, name string, def int) int {
	if raw := ctx.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return def
}
