package book

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the book domain.
type Service interface {
	// AddBook creates a book for an authenticated caller, provisioning the
	// author by name when it does not exist yet. Submitting a duplicate
	// title is ErrDuplicateTitle, not a silent no-op.
	AddBook(ctx context.Context, req AddBookRequest) (*Book, error)

	// List answers allBooks with optional author/genre filters.
	List(ctx context.Context, filter Filter) ([]Book, error)

	// Count returns the total number of books.
	Count(ctx context.Context) (int, error)

	// CountByAuthor computes the derived bookCount of an author.
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}
