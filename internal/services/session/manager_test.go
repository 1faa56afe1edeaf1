package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/commonsapp/commons/internal/dependencies/mocks"
	"github.com/commonsapp/commons/internal/model"
	"github.com/commonsapp/commons/internal/services/account"
	"github.com/commonsapp/commons/internal/storage"
	"github.com/commonsapp/commons/internal/storage/memory"
	"github.com/commonsapp/commons/internal/testutil"
)

type ManagerSuite struct {
	suite.Suite
	store    *memory.Store
	accounts *account.Service
	manager  *Manager
	ctx      context.Context

	birthDate time.Time
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	s.store = memory.New()
	s.ctx = context.Background()
	s.birthDate = time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	accounts, err := account.New(s.ctx, s.store, clk, testutil.NopLogger())
	s.Require().NoError(err)
	s.accounts = accounts
	s.manager = New(s.ctx, s.store, s.accounts, testutil.NopLogger())
}

// restore builds a fresh manager over the same store, as a process restart would
func (s *ManagerSuite) restore() *Manager {
	return New(s.ctx, s.store, s.accounts, testutil.NopLogger())
}

func (s *ManagerSuite) TestStartsLoggedOut() {
	s.False(s.manager.IsAuthenticated())
	_, ok := s.manager.Current()
	s.False(ok)
}

// SignUp tests

func (s *ManagerSuite) TestSignUpActivatesSession() {
	err := s.manager.SignUp(s.ctx, "alice", "pw", s.birthDate)
	s.Require().NoError(err)

	s.True(s.manager.IsAuthenticated())
	user, ok := s.manager.Current()
	s.Require().True(ok)
	s.Equal("alice", user.Username)
	s.Equal(s.birthDate, user.BirthDate)
}

func (s *ManagerSuite) TestSignUpDuplicateLeavesSessionUnchanged() {
	s.Require().NoError(s.manager.SignUp(s.ctx, "alice", "pw", s.birthDate))
	s.Require().NoError(s.manager.SignOut(s.ctx))

	err := s.manager.SignUp(s.ctx, "ALICE", "other", s.birthDate)
	s.ErrorIs(err, model.ErrUsernameTaken)
	s.False(s.manager.IsAuthenticated())
}

// SignIn tests

func (s *ManagerSuite) TestSignInSucceeds() {
	s.Require().NoError(s.manager.SignUp(s.ctx, "alice", "pw", s.birthDate))
	s.Require().NoError(s.manager.SignOut(s.ctx))

	err := s.manager.SignIn(s.ctx, "alice", "pw")
	s.Require().NoError(err)
	s.True(s.manager.IsAuthenticated())
}

func (s *ManagerSuite) TestSignInWithBadCredentialsFails() {
	s.Require().NoError(s.manager.SignUp(s.ctx, "alice", "pw", s.birthDate))
	s.Require().NoError(s.manager.SignOut(s.ctx))

	err := s.manager.SignIn(s.ctx, "alice", "wrong")
	s.ErrorIs(err, model.ErrInvalidCredentials)
	s.False(s.manager.IsAuthenticated())
}

func (s *ManagerSuite) TestSignInUsesAccountCasing() {
	s.Require().NoError(s.manager.SignUp(s.ctx, "Alice", "pw", s.birthDate))
	s.Require().NoError(s.manager.SignOut(s.ctx))

	s.Require().NoError(s.manager.SignIn(s.ctx, "alice", "pw"))
	user, _ := s.manager.Current()
	s.Equal("Alice", user.Username)
}

// SignOut tests

func (s *ManagerSuite) TestSignOutClearsSession() {
	s.Require().NoError(s.manager.SignUp(s.ctx, "alice", "pw", s.birthDate))
	s.Require().NoError(s.manager.SignOut(s.ctx))

	s.False(s.manager.IsAuthenticated())
	_, ok := s.manager.Current()
	s.False(ok)
}

func (s *ManagerSuite) TestSignOutWhileLoggedOutIsNoOp() {
	s.NoError(s.manager.SignOut(s.ctx))
}

// Restore tests

func (s *ManagerSuite) TestRestoreResumesSession() {
	s.Require().NoError(s.manager.SignUp(s.ctx, "alice", "pw", s.birthDate))

	restored := s.restore()
	s.True(restored.IsAuthenticated())
	user, _ := restored.Current()
	s.Equal("alice", user.Username)
}

func (s *ManagerSuite) TestRestoreAfterSignOutIsLoggedOut() {
	s.Require().NoError(s.manager.SignUp(s.ctx, "alice", "pw", s.birthDate))
	s.Require().NoError(s.manager.SignOut(s.ctx))

	restored := s.restore()
	s.False(restored.IsAuthenticated())
}

func (s *ManagerSuite) TestRestoreWithCorruptSnapshotIsLoggedOut() {
	s.Require().NoError(s.store.Set(s.ctx, storage.KeySession, []byte("garbage")))

	restored := s.restore()
	s.False(restored.IsAuthenticated())
}

func (s *ManagerSuite) TestRestoreWithEmptyIdentityIsLoggedOut() {
	s.Require().NoError(s.store.Set(s.ctx, storage.KeySession, []byte("{}")))

	restored := s.restore()
	s.False(restored.IsAuthenticated())
}

// Save failure tests

// failingStore wraps the memory store so snapshot writes can be made to fail
type failingStore struct {
	*memory.Store
	setErr error
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, key, value)
}

func (s *ManagerSuite) TestSignInKeepsPreviousSessionWhenSaveFails() {
	store := &failingStore{Store: memory.New()}
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	accounts, err := account.New(s.ctx, store, clk, testutil.NopLogger())
	s.Require().NoError(err)
	manager := New(s.ctx, store, accounts, testutil.NopLogger())

	s.Require().NoError(manager.SignUp(s.ctx, "alice", "pw", s.birthDate))
	_, err = accounts.CreateAccount(s.ctx, "bob", "pw2", s.birthDate)
	s.Require().NoError(err)

	store.setErr = errors.New("disk full")
	s.Error(manager.SignIn(s.ctx, "bob", "pw2"))

	// The failed activation never replaced the persisted or in-memory identity
	user, ok := manager.Current()
	s.Require().True(ok)
	s.Equal("alice", user.Username)

	store.setErr = nil
	restored := New(s.ctx, store, accounts, testutil.NopLogger())
	user, ok = restored.Current()
	s.Require().True(ok)
	s.Equal("alice", user.Username)
}

func (s *ManagerSuite) TestSignUpStaysLoggedOutWhenSaveFails() {
	store := &failingStore{Store: memory.New()}
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	accounts, err := account.New(s.ctx, store, clk, testutil.NopLogger())
	s.Require().NoError(err)
	manager := New(s.ctx, store, accounts, testutil.NopLogger())

	store.setErr = errors.New("disk full")
	s.Error(manager.SignUp(s.ctx, "alice", "pw", s.birthDate))
	s.False(manager.IsAuthenticated())
}
