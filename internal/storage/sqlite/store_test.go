package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	store, err := New(Config{Path: filepath.Join(s.T().TempDir(), "commons.db")})
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

func (s *StoreSuite) TestNewRequiresPath() {
	_, err := New(Config{})
	s.Error(err)
}

func (s *StoreSuite) TestGetMissingKeyReturnsNil() {
	data, err := s.store.Get(s.ctx, "nope")
	s.Require().NoError(err)
	s.Nil(data)
}

func (s *StoreSuite) TestSetAndGet() {
	err := s.store.Set(s.ctx, "k", []byte("hello"))
	s.Require().NoError(err)

	data, err := s.store.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("hello"), data)
}

func (s *StoreSuite) TestSetOverwrites() {
	s.Require().NoError(s.store.Set(s.ctx, "k", []byte("one")))
	s.Require().NoError(s.store.Set(s.ctx, "k", []byte("two")))

	data, err := s.store.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("two"), data)
}

func (s *StoreSuite) TestDelete() {
	s.Require().NoError(s.store.Set(s.ctx, "k", []byte("v")))
	s.Require().NoError(s.store.Delete(s.ctx, "k"))

	data, err := s.store.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Nil(data)
}

func (s *StoreSuite) TestDeleteMissingKeyIsNoOp() {
	s.NoError(s.store.Delete(s.ctx, "never-set"))
}

func (s *StoreSuite) TestDataSurvivesReopen() {
	path := filepath.Join(s.T().TempDir(), "durable.db")

	first, err := New(Config{Path: path})
	s.Require().NoError(err)
	s.Require().NoError(first.Set(s.ctx, "k", []byte("persisted")))
	s.Require().NoError(first.Close())

	second, err := New(Config{Path: path})
	s.Require().NoError(err)
	defer second.Close()

	data, err := second.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("persisted"), data)
}
