package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the author domain.
type Service interface {
	// FindOrCreate returns the author with the given name, creating it when
	// absent. Exactly-once under concurrent callers: when a concurrent create
	// wins the race, the loser re-reads and reuses the winner's row.
	// Errors: ErrNameTooShort when a new author would violate the name rule.
	FindOrCreate(ctx context.Context, name string) (*Author, error)

	// EditBorn sets the year of birth of an existing author.
	// Requires an authenticated context. No auto-creation here: editing an
	// unknown author is always ErrAuthorNotFound.
	EditBorn(ctx context.Context, req EditAuthorRequest) (*Author, error)

	// GetByID loads a single author.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetByName loads a single author by unique name.
	GetByName(ctx context.Context, name string) (*Author, error)

	// List returns all authors.
	List(ctx context.Context) ([]Author, error)

	// Count returns the total number of authors.
	Count(ctx context.Context) (int, error)
}
