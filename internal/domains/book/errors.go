package book

import "errors"

var (
	// Validation errors
	ErrTitleTooShort = errors.New("book title must be at least 3 characters long")

	// Business rule errors
	ErrDuplicateTitle = errors.New("book with this title already exists")

	// ErrAuthorMissing signals a book insert referencing a nonexistent author.
	// Normally unreachable, since addBook resolves the author first.
	ErrAuthorMissing = errors.New("referenced author does not exist")
)
