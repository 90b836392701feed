package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/domain/valueobject"
	"github.com/spendxp/backend/internal/integration/entrypoint/dto"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "limit exceeded",
			err:    domainerror.NewLimitExceededError(valueobject.SpendingPeriodWeekly),
			status: http.StatusUnprocessableEntity,
			code:   string(domainerror.ErrCodeLimitExceeded),
		},
		{
			name:   "email exists",
			err:    domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "exists", domainerror.ErrEmailAlreadyExists),
			status: http.StatusConflict,
			code:   string(domainerror.ErrCodeEmailExists),
		},
		{
			name:   "wrong parent pin",
			err:    domainerror.NewAuthError(domainerror.ErrCodeInvalidParentPin, "wrong", domainerror.ErrInvalidParentPin),
			status: http.StatusUnauthorized,
			code:   string(domainerror.ErrCodeInvalidParentPin),
		},
		{
			name:   "parent scope",
			err:    domainerror.NewAuthError(domainerror.ErrCodeParentScopeRequired, "parent only", nil),
			status: http.StatusForbidden,
			code:   string(domainerror.ErrCodeParentScopeRequired),
		},
		{
			name:   "unknown category on transaction",
			err:    domainerror.NewTransactionError(domainerror.ErrCodeTxnCategoryNotFound, "missing", domainerror.ErrCategoryNotFoundForTransaction),
			status: http.StatusNotFound,
			code:   string(domainerror.ErrCodeTxnCategoryNotFound),
		},
		{
			name:   "duplicate category",
			err:    domainerror.NewCategoryError(domainerror.ErrCodeCategoryNameExists, "dup", nil),
			status: http.StatusConflict,
			code:   string(domainerror.ErrCodeCategoryNameExists),
		},
		{
			name:   "quest not complete",
			err:    domainerror.NewQuestError(domainerror.ErrCodeQuestNotComplete, "not yet", domainerror.ErrQuestNotComplete),
			status: http.StatusConflict,
			code:   string(domainerror.ErrCodeQuestNotComplete),
		},
		{
			name:   "wrong module answer",
			err:    domainerror.NewQuestError(domainerror.ErrCodeIncorrectAnswer, "nope", domainerror.ErrIncorrectAnswer),
			status: http.StatusBadRequest,
			code:   string(domainerror.ErrCodeIncorrectAnswer),
		},
		{
			name:   "analysis rate limited",
			err:    domainerror.NewAdviceError(domainerror.ErrCodeAnalysisRateLimited, "slow down", nil),
			status: http.StatusTooManyRequests,
			code:   string(domainerror.ErrCodeAnalysisRateLimited),
		},
		{
			name:   "advice failure",
			err:    domainerror.NewAdviceError(domainerror.ErrCodeAdviceServiceFailure, "failed", nil),
			status: http.StatusBadGateway,
			code:   string(domainerror.ErrCodeAdviceServiceFailure),
		},
		{
			name:   "invalid parental setting",
			err:    domainerror.NewParentalError(domainerror.ErrCodeInvalidSpendingPeriod, "bad period", nil),
			status: http.StatusBadRequest,
			code:   string(domainerror.ErrCodeInvalidSpendingPeriod),
		},
		{
			name:   "bare account not found",
			err:    fmt.Errorf("load: %w", domainerror.ErrAccountNotFound),
			status: http.StatusNotFound,
			code:   string(domainerror.ErrCodeAccountNotFound),
		},
		{
			name:   "unknown error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, message := statusForError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, message)
		})
	}
}

func TestStatusForError_LimitMessage(t *testing.T) {
	_, _, message := statusForError(domainerror.NewLimitExceededError(valueobject.SpendingPeriodDaily))
	assert.Equal(t, "This transaction exceeds the daily spending limit.", message)
}

func TestHandleError_WritesErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/v1/goals/g1/contribute", nil)

	handleError(ctx, domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "Goal not found", domainerror.ErrGoalNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Goal not found", body.Error)
	assert.Equal(t, string(domainerror.ErrCodeGoalNotFound), body.Code)
}
