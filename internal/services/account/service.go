package account

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/commonsapp/commons/internal/dependencies/clock"
	"github.com/commonsapp/commons/internal/model"
	"github.com/commonsapp/commons/internal/storage"
)

// Service owns the account collection. The full collection is held in memory
// and written back to the store as a single JSON snapshot on every mutation.
type Service struct {
	store  storage.Store
	clock  clock.Clock
	logger *slog.Logger

	mu       sync.RWMutex
	accounts []model.Account
}

// New creates an account service, loading any persisted snapshot. A snapshot
// that fails to decode is logged and treated as an empty collection.
func New(ctx context.Context, store storage.Store, clk clock.Clock, logger *slog.Logger) (*Service, error) {
	s := &Service{
		store:  store,
		clock:  clk,
		logger: logger,
	}

	data, err := store.Get(ctx, storage.KeyAccounts)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if data != nil {
		if err := json.Unmarshal(data, &s.accounts); err != nil {
			logger.Warn("discarding undecodable accounts snapshot",
				slog.String("error", err.Error()))
			s.accounts = nil
		}
	}

	return s, nil
}

// CreateAccount registers a new account. It fails with ErrUsernameTaken if
// another account already uses the username, compared case-insensitively.
func (s *Service) CreateAccount(ctx context.Context, username, password string, birthDate time.Time) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if strings.EqualFold(a.Username, username) {
			return nil, model.ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := model.Account{
		ID:           model.AccountID(uuid.NewString()),
		Username:     username,
		PasswordHash: string(hash),
		BirthDate:    birthDate,
		CreatedAt:    s.clock.Now(),
	}

	s.accounts = append(s.accounts, account)
	if err := s.persistLocked(ctx); err != nil {
		// Keep memory and store in agreement: undo the append
		s.accounts = s.accounts[:len(s.accounts)-1]
		return nil, err
	}

	return &account, nil
}

// VerifyAccount returns the account matching the given credentials.
// The username is compared case-insensitively; the password must match the
// stored hash. Unknown username and wrong password are indistinguishable to
// the caller, both yield ErrInvalidCredentials.
func (s *Service) VerifyAccount(ctx context.Context, username, password string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if !strings.EqualFold(a.Username, username) {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
			return nil, model.ErrInvalidCredentials
		}
		account := a
		return &account, nil
	}

	return nil, model.ErrInvalidCredentials
}

// Count returns the number of registered accounts
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// Accounts returns a copy of the account collection in insertion order
func (s *Service) Accounts() []model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// persistLocked serializes the full collection back to the store. Callers
// must hold mu.
func (s *Service) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyAccounts, data); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	return nil
}
