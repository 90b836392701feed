package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

type fakeRepository struct {
	mu       sync.Mutex
	accounts map[string]*entity.Account
	loads    int
	saves    int
	saveErr  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{accounts: make(map[string]*entity.Account)}
}

func (r *fakeRepository) Exists(_ context.Context, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.accounts[key]
	return ok, nil
}

func (r *fakeRepository) Load(_ context.Context, key string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
	a, ok := r.accounts[key]
	if !ok {
		return nil, domainerror.NewAccountError(domainerror.ErrCodeAccountNotFound, "account not found", domainerror.ErrAccountNotFound)
	}
	return a, nil
}

func (r *fakeRepository) Save(_ context.Context, a *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.accounts[a.Key()] = a
	return nil
}

// gatedRepository blocks Load of one account until gate is closed.
type gatedRepository struct {
	*fakeRepository
	gatedKey string
	gate     chan struct{}
}

func (r *gatedRepository) Load(ctx context.Context, key string) (*entity.Account, error) {
	if key == r.gatedKey {
		<-r.gate
	}
	return r.fakeRepository.Load(ctx, key)
}

func TestManager_OpenAndAcquire(t *testing.T) {
	repo := newFakeRepository()
	m := NewManager(repo)
	account := entity.NewAccount(entity.NewUser("teen@example.com", "Teen", "USD", ""))

	require.NoError(t, m.Open(context.Background(), account))
	assert.True(t, m.Active("teen@example.com"))
	assert.Equal(t, 1, repo.saves)

	s, release, err := m.Acquire(context.Background(), "teen@example.com")
	require.NoError(t, err)
	defer release()

	assert.Same(t, account, s.Account)
	assert.Zero(t, repo.loads)
}

func TestManager_AcquireLoadsOnce(t *testing.T) {
	repo := newFakeRepository()
	repo.accounts["teen@example.com"] = entity.NewAccount(entity.NewUser("teen@example.com", "Teen", "USD", ""))
	m := NewManager(repo)

	for i := 0; i < 3; i++ {
		_, release, err := m.Acquire(context.Background(), "teen@example.com")
		require.NoError(t, err)
		release()
	}

	assert.Equal(t, 1, repo.loads)
}

func TestManager_AcquireUnknownAccount(t *testing.T) {
	m := NewManager(newFakeRepository())

	_, _, err := m.Acquire(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)
	assert.False(t, m.Active("ghost@example.com"))
}

func TestManager_CommitFailureKeepsSnapshot(t *testing.T) {
	repo := newFakeRepository()
	m := NewManager(repo)
	account := entity.NewAccount(entity.NewUser("teen@example.com", "Teen", "USD", ""))
	require.NoError(t, m.Open(context.Background(), account))

	s, release, err := m.Acquire(context.Background(), "teen@example.com")
	require.NoError(t, err)
	s.Account.User.Name = "Renamed"
	repo.saveErr = errors.New("disk full")
	ok := m.Commit(context.Background(), s)
	release()

	assert.False(t, ok)
	s, release, err = m.Acquire(context.Background(), "teen@example.com")
	require.NoError(t, err)
	defer release()
	assert.Equal(t, "Renamed", s.Account.User.Name)
}

func TestManager_CloseDropsSessionAndQuizFlags(t *testing.T) {
	repo := newFakeRepository()
	m := NewManager(repo)
	account := entity.NewAccount(entity.NewUser("teen@example.com", "Teen", "USD", ""))
	require.NoError(t, m.Open(context.Background(), account))

	s, release, err := m.Acquire(context.Background(), "teen@example.com")
	require.NoError(t, err)
	s.MarkQuizPassed("q1")
	assert.True(t, s.QuizPassed().Has("q1"))
	release()

	m.Close("teen@example.com")
	assert.False(t, m.Active("teen@example.com"))

	s, release, err = m.Acquire(context.Background(), "teen@example.com")
	require.NoError(t, err)
	defer release()
	assert.False(t, s.QuizPassed().Has("q1"))
	assert.Equal(t, 1, repo.loads)
}

func TestManager_AcquireSerializesAccess(t *testing.T) {
	repo := newFakeRepository()
	m := NewManager(repo)
	account := entity.NewAccount(entity.NewUser("teen@example.com", "Teen", "USD", ""))
	require.NoError(t, m.Open(context.Background(), account))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, release, err := m.Acquire(context.Background(), "teen@example.com")
			if err != nil {
				return
			}
			defer release()
			s.Account.User.Progression.XP++
		}()
	}
	wg.Wait()

	s, release, err := m.Acquire(context.Background(), "teen@example.com")
	require.NoError(t, err)
	defer release()
	assert.Equal(t, 50.0, s.Account.User.Progression.XP)
}

func TestManager_CloseWaitsForHolder(t *testing.T) {
	repo := newFakeRepository()
	m := NewManager(repo)
	account := entity.NewAccount(entity.NewUser("teen@example.com", "Teen", "USD", ""))
	require.NoError(t, m.Open(context.Background(), account))

	first, release, err := m.Acquire(context.Background(), "teen@example.com")
	require.NoError(t, err)

	closed := make(chan struct{})
	go func() {
		m.Close("teen@example.com")
		close(closed)
	}()

	acquired := make(chan *Session, 1)
	go func() {
		s, rel, err := m.Acquire(context.Background(), "teen@example.com")
		if err != nil {
			acquired <- nil
			return
		}
		defer rel()
		acquired <- s
	}()

	assert.Never(t, func() bool { return len(acquired) > 0 }, 50*time.Millisecond, 5*time.Millisecond)
	select {
	case <-closed:
		t.Fatal("Close returned while the session was held")
	default:
	}

	first.Account.User.Name = "Renamed"
	require.True(t, m.Commit(context.Background(), first))
	release()

	select {
	case s := <-acquired:
		require.NotNil(t, s)
		assert.Equal(t, "Renamed", s.Account.User.Name)
	case <-time.After(time.Second):
		t.Fatal("second Acquire never returned")
	}
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close never returned")
	}
}

func TestManager_AcquireAfterCloseReloads(t *testing.T) {
	repo := newFakeRepository()
	m := NewManager(repo)
	account := entity.NewAccount(entity.NewUser("teen@example.com", "Teen", "USD", ""))
	require.NoError(t, m.Open(context.Background(), account))

	first, release, err := m.Acquire(context.Background(), "teen@example.com")
	require.NoError(t, err)
	release()

	m.Close("teen@example.com")
	m.Close("teen@example.com")

	second, release, err := m.Acquire(context.Background(), "teen@example.com")
	require.NoError(t, err)
	defer release()

	assert.NotSame(t, first, second)
	assert.Equal(t, 1, repo.loads)
	assert.True(t, m.Active("teen@example.com"))
}

func TestManager_SlowLoadDoesNotBlockOtherAccounts(t *testing.T) {
	repo := &gatedRepository{
		fakeRepository: newFakeRepository(),
		gatedKey:       "slow@example.com",
		gate:           make(chan struct{}),
	}
	repo.accounts["slow@example.com"] = entity.NewAccount(entity.NewUser("slow@example.com", "Slow", "USD", ""))
	m := NewManager(repo)
	require.NoError(t, m.Open(context.Background(), entity.NewAccount(entity.NewUser("teen@example.com", "Teen", "USD", ""))))

	slowDone := make(chan error, 1)
	go func() {
		_, rel, err := m.Acquire(context.Background(), "slow@example.com")
		if err == nil {
			rel()
		}
		slowDone <- err
	}()

	fastDone := make(chan error, 1)
	go func() {
		_, rel, err := m.Acquire(context.Background(), "teen@example.com")
		if err == nil {
			rel()
		}
		fastDone <- err
	}()

	select {
	case err := <-fastDone:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Acquire of a loaded account waited on another account's load")
	}

	close(repo.gate)
	select {
	case err := <-slowDone:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("slow Acquire never returned")
	}
}
