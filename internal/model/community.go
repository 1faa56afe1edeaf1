package model

import "time"

// CommunityID uniquely identifies a community record
type CommunityID string

// Community is an owned, mutable shared record. Name, state and image may be
// reassigned by the creator; ID, CreatorUsername and CreatedAt are immutable.
type Community struct {
	ID              CommunityID `json:"id"`
	Name            string      `json:"name"`
	State           string      `json:"state"` // region label, see states.go
	CreatorUsername string      `json:"creator_username"`
	ImageData       []byte      `json:"image_data,omitempty"` // compressed image bytes, optional
	CreatedAt       time.Time   `json:"created_at"`
}
