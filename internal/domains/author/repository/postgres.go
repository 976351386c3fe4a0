package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	author "library-backend/internal/domains/author"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a pgx-backed author repository.
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
		INSERT INTO authors (name, born)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	created := *a
	err := r.pool.QueryRow(ctx, query, a.Name, a.Born).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		// 23505 unique_violation on authors.name
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, author.ErrDuplicateName
		}
		return nil, err
	}

	return &created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `SELECT id, name, born, created_at FROM authors WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) (*author.Author, error) {
	query := `SELECT id, name, born, created_at FROM authors WHERE name = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, name))
}

func (r *postgresRepository) UpdateBorn(ctx context.Context, id uuid.UUID, born int) (*author.Author, error) {
	query := `
		UPDATE authors
		SET born = $2
		WHERE id = $1
		RETURNING id, name, born, created_at
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id, born))
}

func (r *postgresRepository) List(ctx context.Context) ([]author.Author, error) {
	query := `SELECT id, name, born, created_at FROM authors ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Born, &a.CreatedAt); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}

	return authors, rows.Err()
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&count)
	return count, err
}

func (r *postgresRepository) scanOne(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(&a.ID, &a.Name, &a.Born, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, err
	}
	return &a, nil
}
