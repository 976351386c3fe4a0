package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic contract for accounts and sessions.
type Service interface {
	// Register creates a user with a bcrypt hash of the supplied password.
	Register(ctx context.Context, req CreateUserRequest) (*User, error)

	// Login verifies credentials and issues a signed session token.
	// Unknown username and wrong password are indistinguishable to the caller:
	// both return ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (string, error)

	// GetByID loads a user, used when resolving a session token back to its user.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
