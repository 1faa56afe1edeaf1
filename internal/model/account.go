package model

import "time"

// AccountID uniquely identifies an account across the system
type AccountID string

// Account is a registered credential record. Accounts are created on sign-up
// and never mutated afterwards.
type Account struct {
	ID           AccountID `json:"id"`
	Username     string    `json:"username"` // unique, compared case-insensitively
	PasswordHash string    `json:"password_hash"`
	BirthDate    time.Time `json:"birth_date"`
	CreatedAt    time.Time `json:"created_at"`
}
