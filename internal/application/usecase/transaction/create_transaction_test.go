package transaction

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
	"github.com/spendxp/backend/internal/domain/valueobject"
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
	a, ok := r.accounts[key]
	if !ok {
		return nil, domainerror.ErrAccountNotFound
	}
	return a, nil
}

func (r *memoryRepository) Save(_ context.Context, a *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	r.accounts[a.Key()] = a
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type recordingNotifier struct {
	mu   sync.Mutex
	sent []*entity.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification *entity.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
}

const teenKey = "teen@example.com"

func setup(t *testing.T) (*CreateTransactionUseCase, *entity.Account, *memoryRepository, *recordingNotifier) {
	t.Helper()
	account := entity.NewAccount(entity.NewUser(teenKey, "Teen", valueobject.DefaultCurrency, ""))
	repo := &memoryRepository{accounts: map[string]*entity.Account{teenKey: account}}
	notifier := &recordingNotifier{}
	clock := fixedClock{now: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	return NewCreateTransactionUseCase(session.NewManager(repo), clock, notifier), account, repo, notifier
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("records an expense and persists it", func(t *testing.T) {
		uc, account, repo, _ := setup(t)

		out, err := uc.Execute(ctx, CreateTransactionInput{
			AccountKey:  teenKey,
			Amount:      12.5,
			CategoryID:  "cat-food",
			Description: "  Lunch  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Transaction.Description != "Lunch" {
			t.Errorf("expected trimmed description, got %q", out.Transaction.Description)
		}
		if out.XPAwarded != valueobject.TransactionXP(12.5, false) {
			t.Errorf("unexpected xp %v", out.XPAwarded)
		}
		if len(account.Ledger) != 1 {
			t.Errorf("expected 1 ledger entry, got %d", len(account.Ledger))
		}
		if repo.saves != 1 {
			t.Errorf("expected 1 save, got %d", repo.saves)
		}
	})

	t.Run("rejects invalid input before touching the account", func(t *testing.T) {
		uc, _, repo, _ := setup(t)

		cases := []struct {
			name  string
			input CreateTransactionInput
			want  error
		}{
			{"zero amount", CreateTransactionInput{AccountKey: teenKey, Amount: 0, CategoryID: "cat-food", Description: "x"}, domainerror.ErrInvalidTransactionAmount},
			{"blank description", CreateTransactionInput{AccountKey: teenKey, Amount: 1, CategoryID: "cat-food", Description: "   "}, domainerror.ErrDescriptionRequired},
			{"unknown category", CreateTransactionInput{AccountKey: teenKey, Amount: 1, CategoryID: "cat-nope", Description: "x"}, domainerror.ErrCategoryNotFoundForTransaction},
		}
		for _, tc := range cases {
			if _, err := uc.Execute(ctx, tc.input); !errors.Is(err, tc.want) {
				t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
			}
		}
		if repo.saves != 0 {
			t.Errorf("expected no saves, got %d", repo.saves)
		}
	})

	t.Run("spending limit rejects without recording", func(t *testing.T) {
		uc, account, repo, _ := setup(t)
		limit := 20.0
		account.User.ParentalControls.SpendingLimitEnabled = true
		account.User.ParentalControls.SpendingLimitAmount = &limit
		account.User.ParentalControls.SpendingLimitPeriod = valueobject.SpendingPeriodWeekly

		_, err := uc.Execute(ctx, CreateTransactionInput{AccountKey: teenKey, Amount: 25, CategoryID: "cat-gaming", Description: "Skin"})

		var limitErr *domainerror.LimitExceededError
		if !errors.As(err, &limitErr) {
			t.Fatalf("expected LimitExceededError, got %v", err)
		}
		if limitErr.Period != valueobject.SpendingPeriodWeekly {
			t.Errorf("expected weekly period, got %s", limitErr.Period)
		}
		if len(account.Ledger) != 0 || repo.saves != 0 {
			t.Errorf("rejected transaction must not be recorded")
		}
	})

	t.Run("emits a parental alert at the threshold", func(t *testing.T) {
		uc, account, _, notifier := setup(t)
		threshold := 30.0
		account.User.ParentalControls.NotificationsEnabled = true
		account.User.ParentalControls.NotificationThreshold = &threshold
		account.User.ParentalControls.ParentEmail = "parent@example.com"

		if _, err := uc.Execute(ctx, CreateTransactionInput{AccountKey: teenKey, Amount: 30, CategoryID: "cat-shopping", Description: "Shoes"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(notifier.sent) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(notifier.sent))
		}
		n := notifier.sent[0]
		if n.Kind != entity.NotificationKindParentalAlert || n.ParentEmail != "parent@example.com" {
			t.Errorf("unexpected notification %+v", n)
		}
	})

	t.Run("income emits no alerts", func(t *testing.T) {
		uc, account, _, notifier := setup(t)
		threshold := 1.0
		account.User.ParentalControls.NotificationsEnabled = true
		account.User.ParentalControls.NotificationThreshold = &threshold

		if _, err := uc.Execute(ctx, CreateTransactionInput{AccountKey: teenKey, Amount: 50, CategoryID: "cat-income", Description: "Allowance"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notifier.sent) != 0 {
			t.Errorf("expected no notifications, got %d", len(notifier.sent))
		}
	})
}
