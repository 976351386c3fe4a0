package author

import "errors"

var (
	// Validation errors
	ErrNameTooShort = errors.New("author name must be at least 3 characters long")
	ErrNegativeBorn = errors.New("year of birth cannot be negative")

	// Business rule errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateName  = errors.New("author with this name already exists")
)
