package response

import (
	"time"

	"github.com/commonsapp/commons/internal/model"
)

// User represents the active identity in API responses
type User struct {
	Username    string    `json:"username"`
	BirthDate   time.Time `json:"birth_date"`
	Communities int       `json:"communities"`
	Messages    int       `json:"messages"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u model.User) User {
	return User{
		Username:    u.Username,
		BirthDate:   u.BirthDate,
		Communities: u.Communities,
		Messages:    u.Messages,
	}
}

// SessionResponse is the response for authentication endpoints
type SessionResponse struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

// Community represents a community record in API responses
type Community struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	State           string    `json:"state"`
	CreatorUsername string    `json:"creator_username"`
	ImageData       []byte    `json:"image_data,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CommunityFromModel converts a model.Community to a response Community
func CommunityFromModel(c model.Community) Community {
	return Community{
		ID:              string(c.ID),
		Name:            c.Name,
		State:           c.State,
		CreatorUsername: c.CreatorUsername,
		ImageData:       c.ImageData,
		CreatedAt:       c.CreatedAt,
	}
}

// CommunitiesFromModel converts a slice of communities
func CommunitiesFromModel(cs []model.Community) []Community {
	out := make([]Community, 0, len(cs))
	for _, c := range cs {
		out = append(out, CommunityFromModel(c))
	}
	return out
}

// Message represents a chat message in API responses
type Message struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	SenderName string    `json:"sender_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// MessageFromModel converts a model.Message to a response Message
func MessageFromModel(m model.Message) Message {
	return Message{
		ID:         string(m.ID),
		Content:    m.Content,
		SenderName: m.SenderName,
		Timestamp:  m.Timestamp,
	}
}

// MessagesFromModel converts a slice of messages
func MessagesFromModel(ms []model.Message) []Message {
	out := make([]Message, 0, len(ms))
	for _, m := range ms {
		out = append(out, MessageFromModel(m))
	}
	return out
}

// StatesResponse lists the available region labels
type StatesResponse struct {
	States []string `json:"states"`
}
