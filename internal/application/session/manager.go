// Package session holds the loaded state of active accounts and serializes
// read-modify-write cycles on each of them.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/domain/entity"
)

// Session is the application state of one account: its snapshot plus
// ephemeral flags that are never persisted.
type Session struct {
	mu         sync.Mutex
	closed     bool // guarded by mu
	Account    *entity.Account
	quizPassed entity.IDSet
}

// QuizPassed returns the quiz quests answered correctly during this session.
func (s *Session) QuizPassed() entity.IDSet {
	return s.quizPassed
}

// MarkQuizPassed records a correct quiz answer for the session.
func (s *Session) MarkQuizPassed(questID string) {
	s.quizPassed.Add(questID)
}

// Manager opens sessions on first use and drops them on logout.
type Manager struct {
	repo     adapter.AccountRepository
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a new session manager.
func NewManager(repo adapter.AccountRepository) *Manager {
	return &Manager{
		repo:     repo,
		sessions: make(map[string]*Session),
	}
}

// Acquire returns the locked session of an account, loading it if needed.
// The caller must call release when done.
func (m *Manager) Acquire(ctx context.Context, accountKey string) (*Session, func(), error) {
	for {
		s, err := m.get(ctx, accountKey)
		if err != nil {
			return nil, nil, err
		}
		s.mu.Lock()
		if !s.closed {
			return s, s.mu.Unlock, nil
		}
		// Closed while we waited; the next lookup reloads the committed state.
		s.mu.Unlock()
	}
}

// get returns the cached session or loads one. The repository is read
// outside the manager lock; a concurrent load of the same account keeps
// whichever session was installed first.
func (m *Manager) get(ctx context.Context, accountKey string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[accountKey]
	m.mu.Unlock()
	if ok {
		return s, nil
	}

	account, err := m.repo.Load(ctx, accountKey)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[accountKey]; ok {
		return s, nil
	}
	s = &Session{Account: account, quizPassed: entity.NewIDSet()}
	m.sessions[accountKey] = s
	return s, nil
}

// Open installs a freshly created account as the active session and persists it.
func (m *Manager) Open(ctx context.Context, account *entity.Account) error {
	if err := m.repo.Save(ctx, account); err != nil {
		return err
	}

	m.mu.Lock()
	m.sessions[account.Key()] = &Session{Account: account, quizPassed: entity.NewIDSet()}
	m.mu.Unlock()
	return nil
}

// Commit persists the whole snapshot as one unit. A failed write is logged
// and the in-memory snapshot stays authoritative for the running session.
func (m *Manager) Commit(ctx context.Context, s *Session) bool {
	if err := m.repo.Save(ctx, s.Account); err != nil {
		slog.Error("persistence failure", "account", s.Account.Key(), "error", err)
		return false
	}
	return true
}

// Close drops the session of an account. It waits for the current holder to
// release it, so no reload can race with an in-flight cycle. The next Acquire
// reloads from the repository.
func (m *Manager) Close(accountKey string) {
	m.mu.Lock()
	s, ok := m.sessions[accountKey]
	m.mu.Unlock()
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true

	m.mu.Lock()
	if m.sessions[accountKey] == s {
		delete(m.sessions, accountKey)
	}
	m.mu.Unlock()
}

// Active reports whether an account currently has a loaded session.
func (m *Manager) Active(accountKey string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[accountKey]
	return ok
}
