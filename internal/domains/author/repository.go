package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the contract for author data access.
type Repository interface {
	// Create inserts a new author.
	// The UNIQUE constraint on name is enforced atomically by the store:
	// concurrent creates of the same name yield exactly one success and
	// one ErrDuplicateName, never two rows.
	Create(ctx context.Context, a *Author) (*Author, error)

	// FindByID returns ErrAuthorNotFound if no author exists.
	FindByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// FindByName returns ErrAuthorNotFound if no author exists.
	FindByName(ctx context.Context, name string) (*Author, error)

	// UpdateBorn sets the year of birth and returns the updated author.
	// Returns ErrAuthorNotFound if the author does not exist.
	UpdateBorn(ctx context.Context, id uuid.UUID, born int) (*Author, error)

	// List returns all authors in storage order.
	List(ctx context.Context) ([]Author, error)

	// Count returns the total number of authors.
	Count(ctx context.Context) (int, error)
}
