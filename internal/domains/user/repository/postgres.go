package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	user "library-backend/internal/domains/user"
)

// postgresRepository is the concrete implementation of user.Repository.
// Private struct, public constructor: callers depend on the interface only.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a pgx-backed user repository.
func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
		INSERT INTO users (username, favorite_genre, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	created := *u
	err := r.pool.QueryRow(ctx, query,
		u.Username,
		u.FavoriteGenre,
		u.PasswordHash,
	).Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		// Error code 23505 = unique_violation. The UNIQUE index on username is
		// the atomic backstop for concurrent registrations of the same name.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, user.ErrUsernameTaken
		}
		return nil, err
	}

	return &created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `
		SELECT id, username, favorite_genre, password_hash, created_at
		FROM users
		WHERE id = $1
	`

	var u user.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Username,
		&u.FavoriteGenre,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}

	return &u, nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `
		SELECT id, username, favorite_genre, password_hash, created_at
		FROM users
		WHERE username = $1
	`

	var u user.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.FavoriteGenre,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}

	return &u, nil
}
