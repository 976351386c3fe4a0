package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the contract for book data access.
type Repository interface {
	// Create inserts a new book.
	// Errors: ErrDuplicateTitle on the title uniqueness constraint,
	// ErrAuthorMissing when the author reference does not resolve.
	Create(ctx context.Context, b *Book) (*Book, error)

	// List returns books in storage order. Nil filters are ignored;
	// both given, they compose with AND.
	List(ctx context.Context, authorID *uuid.UUID, genre *string) ([]Book, error)

	// Count returns the total number of books.
	Count(ctx context.Context) (int, error)

	// CountByAuthor returns the number of books referencing the author.
	// Backs the derived Author.bookCount, recomputed per read.
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}
