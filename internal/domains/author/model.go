package author

import (
	"time"

	"github.com/google/uuid"
)

// Validation constants
const MinNameLength = 3

// Author is the domain entity.
// bookCount is deliberately NOT a field here: it is derived from the book
// collection on every read, so there is no second source of truth to drift.
type Author struct {
	ID uuid.UUID `db:"id" json:"id"`

	// Name is globally unique, min 3 characters
	Name string `db:"name" json:"name"`

	// Born is the year of birth; optional, never negative
	Born *int `db:"born" json:"born,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// IsValid validates the Author entity.
func (a *Author) IsValid() error {
	if len([]rune(a.Name)) < MinNameLength {
		return ErrNameTooShort
	}
	if a.Born != nil && *a.Born < 0 {
		return ErrNegativeBorn
	}
	return nil
}
