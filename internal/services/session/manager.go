package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/commonsapp/commons/internal/model"
	"github.com/commonsapp/commons/internal/services/account"
	"github.com/commonsapp/commons/internal/storage"
)

// Manager tracks the single active identity for the running process, or none.
// The identity is persisted as one serialized record so a restart resumes the
// session; anything missing or undecodable in the store simply yields a
// logged-out manager.
//
// The authenticated state is derived from the presence of the identity, so
// the two can never disagree.
type Manager struct {
	store    storage.Store
	accounts *account.Service
	logger   *slog.Logger

	mu      sync.RWMutex
	current *model.User
}

// New creates a session manager, restoring any persisted session
func New(ctx context.Context, store storage.Store, accounts *account.Service, logger *slog.Logger) *Manager {
	m := &Manager{
		store:    store,
		accounts: accounts,
		logger:   logger,
	}

	data, err := store.Get(ctx, storage.KeySession)
	if err != nil {
		logger.Warn("could not read session snapshot, starting logged out",
			slog.String("error", err.Error()))
		return m
	}
	if data == nil {
		return m
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil || user.Username == "" {
		logger.Warn("discarding undecodable session snapshot")
		return m
	}

	m.current = &user
	return m
}

// SignIn authenticates against the account registry and activates a session.
// On failure the session state is unchanged.
func (m *Manager) SignIn(ctx context.Context, username, password string) error {
	acct, err := m.accounts.VerifyAccount(ctx, username, password)
	if err != nil {
		return err
	}
	return m.activate(ctx, acct)
}

// SignUp registers a new account and activates a session for it. A duplicate
// username fails with ErrUsernameTaken and leaves the session unchanged.
func (m *Manager) SignUp(ctx context.Context, username, password string, birthDate time.Time) error {
	acct, err := m.accounts.CreateAccount(ctx, username, password, birthDate)
	if err != nil {
		return err
	}
	return m.activate(ctx, acct)
}

// SignOut clears the active identity and its persisted record. Account and
// community data are unaffected.
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.store.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	return nil
}

// Current returns the active identity, if any
func (m *Manager) Current() (model.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return model.User{}, false
	}
	return *m.current, true
}

// IsAuthenticated reports whether a session is active
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

// activate persists and installs the identity built from acct. The snapshot
// is written before the in-memory switch so a save failure leaves the
// previous session intact.
func (m *Manager) activate(ctx context.Context, acct *model.Account) error {
	user := model.User{
		Username:  acct.Username,
		BirthDate: acct.BirthDate,
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeySession, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	m.mu.Lock()
	m.current = &user
	m.mu.Unlock()
	return nil
}
