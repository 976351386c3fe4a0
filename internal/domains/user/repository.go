package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the contract for the user data access layer.
// The interface allows swapping the implementation and mocking in tests.
type Repository interface {
	// Create inserts a new user.
	// The username uniqueness constraint is enforced atomically by the store:
	// of two concurrent creates with the same username exactly one succeeds,
	// the other gets ErrUsernameTaken.
	Create(ctx context.Context, u *User) (*User, error)

	// FindByID returns ErrUserNotFound if no user exists.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername returns ErrUserNotFound if no user exists (used for login).
	FindByUsername(ctx context.Context, username string) (*User, error)
}
