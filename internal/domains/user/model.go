package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain entity, mapping 1:1 with the users table.
type User struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Username string    `db:"username" json:"username"`

	// FavoriteGenre drives per-user recommendations on the client
	FavoriteGenre string `db:"favorite_genre" json:"favorite_genre"`

	// Authentication
	PasswordHash string `db:"password_hash" json:"-"` // Never expose in JSON

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
