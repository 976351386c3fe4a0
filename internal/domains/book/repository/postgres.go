package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	book "library-backend/internal/domains/book"
	"library-backend/pkg/cache"
	"library-backend/pkg/database"
)

const countCacheTTL = 5 * time.Minute

// postgresRepository implements book.Repository with a Redis cache-aside
// layer on the count queries.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a pgx-backed book repository.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	// The insert runs in a transaction that first pins the referenced author
	// row. The addBook protocol already guarantees the author exists; this is
	// the repository's own backstop for that invariant.
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*book.Book, error) {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1 FOR KEY SHARE)`,
			b.AuthorID,
		).Scan(&exists)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, book.ErrAuthorMissing
		}

		query := `
			INSERT INTO books (title, author_id, published, genres)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`

		inserted := *b
		err = tx.QueryRow(ctx, query,
			b.Title,
			b.AuthorID,
			b.Published,
			b.Genres,
		).Scan(&inserted.ID, &inserted.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case "23505": // unique_violation on books.title
					return nil, book.ErrDuplicateTitle
				case "23503": // foreign_key_violation on author_id
					return nil, book.ErrAuthorMissing
				}
			}
			return nil, err
		}

		return &inserted, nil
	})
	if err != nil {
		return nil, err
	}

	// Stored counts changed; drop stale cache entries
	if err := r.cache.Delete(ctx, countCacheKey(), authorCountCacheKey(created.AuthorID)); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate book count cache")
	}

	return created, nil
}

func (r *postgresRepository) List(ctx context.Context, authorID *uuid.UUID, genre *string) ([]book.Book, error) {
	query := `
		SELECT id, title, author_id, published, genres, created_at
		FROM books
		WHERE ($1::uuid IS NULL OR author_id = $1)
		  AND ($2::text IS NULL OR $2 = ANY(genres))
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, authorID, genre)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.Published, &b.Genres, &b.CreatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

// Count uses the cache-aside pattern: check Redis, fall back to the
// database, then populate the cache.
func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	return r.cachedCount(ctx, countCacheKey(), `SELECT COUNT(*) FROM books`)
}

func (r *postgresRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	return r.cachedCount(ctx, authorCountCacheKey(authorID),
		`SELECT COUNT(*) FROM books WHERE author_id = $1`, authorID)
}

func (r *postgresRepository) cachedCount(ctx context.Context, key, query string, args ...interface{}) (int, error) {
	var count int

	found, err := r.cache.Get(ctx, key, &count)
	if err != nil {
		// Cache trouble must not fail the read; the database stays
		// the source of truth
		log.Warn().Err(err).Str("key", key).Msg("book count cache read failed")
	}
	if found {
		return count, nil
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	if err := r.cache.Set(ctx, key, count, countCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("book count cache write failed")
	}

	return count, nil
}

func countCacheKey() string {
	return "books:count"
}

func authorCountCacheKey(authorID uuid.UUID) string {
	return fmt.Sprintf("books:count:author:%s", authorID)
}
