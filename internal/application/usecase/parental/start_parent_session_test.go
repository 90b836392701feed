package parental

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/domain/valueobject"
	"github.com/spendxp/backend/internal/integration/adapters"
)

type memoryRepository struct {
	mu       sync.Mutex
	accounts map[string]*entity.Account
	saves    int
}

func (r *memoryRepository) Exists(_ context.Context, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.accounts[key]
	return ok, nil
}

func (r *memoryRepository) Load(_ context.Context, key string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.accounts[key]; ok {
		return a, nil
	}
	return nil, domainerror.ErrAccountNotFound
}

func (r *memoryRepository) Save(_ context.Context, a *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	r.accounts[a.Key()] = a
	return nil
}

func TestStartParentSessionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	account := entity.NewAccount(entity.NewUser("teen@example.com", "Teen", valueobject.DefaultCurrency, ""))
	repo := &memoryRepository{accounts: map[string]*entity.Account{account.Key(): account}}
	tokens := adapters.NewTokenService("secret", time.Hour, 15*time.Minute)
	uc := NewStartParentSessionUseCase(session.NewManager(repo), adapters.NewPinServiceWithCost(bcrypt.MinCost), tokens)

	_, err := uc.Execute(ctx, StartParentSessionInput{AccountKey: account.Key(), Pin: "12"})
	assert.ErrorIs(t, err, domainerror.ErrInvalidPinFormat)
	assert.False(t, account.User.Security.HasParentPin())

	first, err := uc.Execute(ctx, StartParentSessionInput{AccountKey: account.Key(), Pin: "4321"})
	require.NoError(t, err)
	assert.True(t, first.PinCreated)
	assert.True(t, account.User.Security.HasParentPin())
	assert.Equal(t, 1, repo.saves)

	claims, err := tokens.ValidateToken(ctx, first.Token.Token)
	require.NoError(t, err)
	assert.Equal(t, adapter.TokenScopeParent, claims.Scope)
	assert.Equal(t, account.Key(), claims.AccountKey)

	second, err := uc.Execute(ctx, StartParentSessionInput{AccountKey: account.Key(), Pin: "4321"})
	require.NoError(t, err)
	assert.False(t, second.PinCreated)

	_, err = uc.Execute(ctx, StartParentSessionInput{AccountKey: account.Key(), Pin: "0000"})
	var authErr *domainerror.AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, domainerror.ErrCodeInvalidParentPin, authErr.Code)
	assert.Equal(t, 1, repo.saves)
}
