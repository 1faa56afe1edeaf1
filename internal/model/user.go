package model

import "time"

// User is the identity of the active session. It carries the profile counters
// shown by the UI layer but none of the credential material.
type User struct {
	Username    string    `json:"username"`
	BirthDate   time.Time `json:"birth_date"`
	Communities int       `json:"communities"`
	Messages    int       `json:"messages"`
}
