package chat

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/commonsapp/commons/internal/dependencies/clock"
	"github.com/commonsapp/commons/internal/model"
)

// Service holds the in-process chat feed. Messages are deliberately not
// persisted: the feed resets with the process.
type Service struct {
	clock clock.Clock

	mu       sync.RWMutex
	messages []model.Message
}

// New creates an empty chat feed
func New(clk clock.Clock) *Service {
	return &Service{clock: clk}
}

// Post appends a message from sender. Blank content is rejected.
func (s *Service) Post(sender, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, model.ErrEmptyMessage
	}

	message := model.Message{
		ID:         model.MessageID(uuid.NewString()),
		Content:    content,
		SenderName: sender,
		Timestamp:  s.clock.Now(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, message)
	s.mu.Unlock()

	return &message, nil
}

// Messages returns a copy of the feed in posting order
func (s *Service) Messages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}
