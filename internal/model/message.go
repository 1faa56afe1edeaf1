package model

import "time"

// MessageID uniquely identifies a chat message
type MessageID string

// Message is a single entry in the in-process chat feed. Messages are not
// persisted; the feed lives only as long as the process.
type Message struct {
	ID         MessageID `json:"id"`
	Content    string    `json:"content"`
	SenderName string    `json:"sender_name"`
	Timestamp  time.Time `json:"timestamp"`
}
