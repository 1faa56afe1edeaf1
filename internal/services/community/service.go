package community

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/commonsapp/commons/internal/dependencies/clock"
	"github.com/commonsapp/commons/internal/model"
	"github.com/commonsapp/commons/internal/storage"
)

// Service owns the community collection and its ownership-checked mutation.
// Like the account registry, the whole collection round-trips through the
// store as a single JSON snapshot.
//
// Update and Delete take the acting identity explicitly. A call by anyone
// other than the record's creator is a silent no-op: callers that need to
// surface a message re-check ownership themselves via Get.
type Service struct {
	store  storage.Store
	clock  clock.Clock
	logger *slog.Logger

	mu          sync.RWMutex
	communities []model.Community
}

// New creates a community service, loading any persisted snapshot. A snapshot
// that fails to decode is logged and treated as an empty collection.
func New(ctx context.Context, store storage.Store, clk clock.Clock, logger *slog.Logger) (*Service, error) {
	s := &Service{
		store:  store,
		clock:  clk,
		logger: logger,
	}

	data, err := store.Get(ctx, storage.KeyCommunities)
	if err != nil {
		return nil, fmt.Errorf("load communities: %w", err)
	}
	if data != nil {
		if err := json.Unmarshal(data, &s.communities); err != nil {
			logger.Warn("discarding undecodable communities snapshot",
				slog.String("error", err.Error()))
			s.communities = nil
		}
	}

	return s, nil
}

// Add creates a new community owned by creatorUsername. image may be nil.
func (s *Service) Add(ctx context.Context, name, state, creatorUsername string, image []byte) (*model.Community, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	community := model.Community{
		ID:              model.CommunityID(uuid.NewString()),
		Name:            name,
		State:           state,
		CreatorUsername: creatorUsername,
		ImageData:       image,
		CreatedAt:       s.clock.Now(),
	}

	s.communities = append(s.communities, community)
	if err := s.persistLocked(ctx); err != nil {
		s.communities = s.communities[:len(s.communities)-1]
		return nil, err
	}

	return &community, nil
}

// All returns a copy of the full collection in insertion order
func (s *Service) All() []model.Community {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Community, len(s.communities))
	copy(out, s.communities)
	return out
}

// ForCreator returns the communities created by username (exact match),
// preserving insertion order
func (s *Service) ForCreator(username string) []model.Community {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Community
	for _, c := range s.communities {
		if c.CreatorUsername == username {
			out = append(out, c)
		}
	}
	return out
}

// Get returns the community with the given id, if present
func (s *Service) Get(id model.CommunityID) (model.Community, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.communities {
		if c.ID == id {
			return c, true
		}
	}
	return model.Community{}, false
}

// Update replaces the name, state and image of the community with the given
// id, preserving its identity, creator and creation timestamp. The call is a
// no-op unless actor exactly matches the stored creator username.
func (s *Service) Update(ctx context.Context, actor string, id model.CommunityID, newName, newState string, newImage []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.communities {
		if c.ID != id {
			continue
		}
		if c.CreatorUsername != actor {
			return nil
		}

		previous := s.communities[i]
		s.communities[i].Name = newName
		s.communities[i].State = newState
		s.communities[i].ImageData = newImage
		if err := s.persistLocked(ctx); err != nil {
			s.communities[i] = previous
			return err
		}
		return nil
	}

	return nil
}

// Delete removes the community with the given id. The call is a no-op when
// the record is absent or actor is not its creator; deleting an already
// deleted record is therefore safe.
func (s *Service) Delete(ctx context.Context, actor string, id model.CommunityID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.communities {
		if c.ID != id {
			continue
		}
		if c.CreatorUsername != actor {
			return nil
		}

		previous := s.communities
		s.communities = append(s.communities[:i:i], s.communities[i+1:]...)
		if err := s.persistLocked(ctx); err != nil {
			s.communities = previous
			return err
		}
		return nil
	}

	return nil
}

// persistLocked serializes the full collection back to the store. Callers
// must hold mu.
func (s *Service) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.communities)
	if err != nil {
		return fmt.Errorf("encode communities: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyCommunities, data); err != nil {
		return fmt.Errorf("save communities: %w", err)
	}
	return nil
}
