package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")

	// Community errors
	ErrCommunityNotFound = errors.New("community not found")
	ErrNotCreator        = errors.New("only the creator can modify a community")

	// Chat errors
	ErrEmptyMessage = errors.New("message content is empty")
)
