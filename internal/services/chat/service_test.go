package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/commonsapp/commons/internal/dependencies/mocks"
	"github.com/commonsapp/commons/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.clock)
}

func (s *ServiceSuite) TestPostAppendsMessage() {
	message, err := s.service.Post("alice", "hello neighbors")
	s.Require().NoError(err)

	s.NotEmpty(message.ID)
	s.Equal("alice", message.SenderName)
	s.Equal("hello neighbors", message.Content)
	s.Equal(s.clock.CurrentTime, message.Timestamp)
}

func (s *ServiceSuite) TestPostRejectsBlankContent() {
	_, err := s.service.Post("alice", "   ")
	s.ErrorIs(err, model.ErrEmptyMessage)
	s.Empty(s.service.Messages())
}

func (s *ServiceSuite) TestMessagesPreservePostingOrder() {
	_, _ = s.service.Post("alice", "first")
	s.clock.Advance(time.Minute)
	_, _ = s.service.Post("bob", "second")

	messages := s.service.Messages()
	s.Require().Len(messages, 2)
	s.Equal("first", messages[0].Content)
	s.Equal("second", messages[1].Content)
	s.True(messages[1].Timestamp.After(messages[0].Timestamp))
}
