package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// Service-level (business logic) errors
var (
	// Login never reveals whether the username or the password was wrong,
	// so usernames cannot be enumerated.
	ErrInvalidCredentials = errors.New("wrong credentials")
)
