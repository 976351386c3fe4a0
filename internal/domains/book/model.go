package book

import (
	"time"

	"github.com/google/uuid"
)

// Validation constants
const MinTitleLength = 3

// Book is the domain entity. AuthorID is a non-owning reference: the author
// row outlives any book pointing at it.
type Book struct {
	ID uuid.UUID `db:"id" json:"id"`

	// Title is globally unique, min 3 characters
	Title string `db:"title" json:"title"`

	AuthorID  uuid.UUID `db:"author_id" json:"author_id"`
	Published int       `db:"published" json:"published"`

	// Genres keeps its submission order
	Genres []string `db:"genres" json:"genres"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Filter narrows listBooks results. Both fields are optional and compose
// with AND semantics. An author name matching no author matches zero books.
type Filter struct {
	Author string
	Genre  string
}
