package service

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	author "library-backend/internal/domains/author"
	authorservice "library-backend/internal/domains/author/service"
	book "library-backend/internal/domains/book"
	user "library-backend/internal/domains/user"
	"library-backend/internal/shared/auth"
)

// fakeAuthorRepo mirrors the store's atomic name uniqueness.
type fakeAuthorRepo struct {
	mu      sync.Mutex
	authors map[uuid.UUID]author.Author
	byName  map[string]uuid.UUID
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{
		authors: make(map[uuid.UUID]author.Author),
		byName:  make(map[string]uuid.UUID),
	}
}

func (r *fakeAuthorRepo) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[a.Name]; exists {
		return nil, author.ErrDuplicateName
	}

	created := *a
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	r.authors[created.ID] = created
	r.byName[created.Name] = created.ID
	return &created, nil
}

func (r *fakeAuthorRepo) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func (r *fakeAuthorRepo) FindByName(ctx context.Context, name string) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byName[name]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	a := r.authors[id]
	return &a, nil
}

func (r *fakeAuthorRepo) UpdateBorn(ctx context.Context, id uuid.UUID, born int) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	a.Born = &born
	r.authors[id] = a
	return &a, nil
}

func (r *fakeAuthorRepo) List(ctx context.Context) ([]author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	authors := make([]author.Author, 0, len(r.authors))
	for _, a := range r.authors {
		authors = append(authors, a)
	}
	return authors, nil
}

func (r *fakeAuthorRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.authors), nil
}

// fakeBookRepo keeps books in insertion order and enforces title uniqueness
// atomically, like the real store.
type fakeBookRepo struct {
	mu       sync.Mutex
	books    []book.Book
	byTitle  map[string]struct{}
	authored map[uuid.UUID]int
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{
		byTitle:  make(map[string]struct{}),
		authored: make(map[uuid.UUID]int),
	}
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byTitle[b.Title]; exists {
		return nil, book.ErrDuplicateTitle
	}

	created := *b
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	r.books = append(r.books, created)
	r.byTitle[created.Title] = struct{}{}
	r.authored[created.AuthorID]++
	return &created, nil
}

func (r *fakeBookRepo) List(ctx context.Context, authorID *uuid.UUID, genre *string) ([]book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []book.Book{}
	for _, b := range r.books {
		if authorID != nil && b.AuthorID != *authorID {
			continue
		}
		if genre != nil && !slices.Contains(b.Genres, *genre) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.books), nil
}

func (r *fakeBookRepo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.authored[authorID], nil
}

type testEnv struct {
	bookRepo   *fakeBookRepo
	authorRepo *fakeAuthorRepo
	books      book.Service
	authors    author.Service
}

func newTestEnv() *testEnv {
	bookRepo := newFakeBookRepo()
	authorRepo := newFakeAuthorRepo()
	authors := authorservice.NewService(authorRepo)
	return &testEnv{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
		books:      NewService(bookRepo, authors),
		authors:    authors,
	}
}

func authenticatedCtx() context.Context {
	return auth.WithUser(context.Background(), &user.User{ID: uuid.New(), Username: "tester"})
}

func TestAddBookRequiresAuthentication(t *testing.T) {
	env := newTestEnv()

	_, err := env.books.AddBook(context.Background(), book.AddBookRequest{
		Title: "Dune", Author: "Frank Herbert", Published: 1965,
	})
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)

	// the gate precedes all writes: store must be untouched
	assert.Empty(t, env.bookRepo.books)
	assert.Empty(t, env.authorRepo.authors)
}

func TestAddBookProvisionsUnknownAuthor(t *testing.T) {
	env := newTestEnv()

	b, err := env.books.AddBook(authenticatedCtx(), book.AddBookRequest{
		Title: "Dune", Author: "Frank Herbert", Published: 1965,
		Genres: []string{"sci-fi", "classic"},
	})
	require.NoError(t, err)

	a, err := env.authors.GetByName(context.Background(), "Frank Herbert")
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.AuthorID)
	assert.Len(t, env.authorRepo.authors, 1)
	assert.Len(t, env.bookRepo.books, 1)
}

func TestAddBookReusesExistingAuthor(t *testing.T) {
	env := newTestEnv()

	first, err := env.books.AddBook(authenticatedCtx(), book.AddBookRequest{
		Title: "Dune", Author: "Frank Herbert", Published: 1965,
	})
	require.NoError(t, err)

	second, err := env.books.AddBook(authenticatedCtx(), book.AddBookRequest{
		Title: "Dune Messiah", Author: "Frank Herbert", Published: 1969,
	})
	require.NoError(t, err)

	assert.Equal(t, first.AuthorID, second.AuthorID)
	assert.Len(t, env.authorRepo.authors, 1)
}

func TestAddBookDuplicateTitle(t *testing.T) {
	env := newTestEnv()

	_, err := env.books.AddBook(authenticatedCtx(), book.AddBookRequest{
		Title: "Dune", Author: "Frank Herbert", Published: 1965,
	})
	require.NoError(t, err)

	// same title again is a conflict, not a silent no-op
	_, err = env.books.AddBook(authenticatedCtx(), book.AddBookRequest{
		Title: "Dune", Author: "Frank Herbert", Published: 1965,
	})
	assert.ErrorIs(t, err, book.ErrDuplicateTitle)
	assert.Len(t, env.bookRepo.books, 1)
}

func TestAddBookRejectsShortTitle(t *testing.T) {
	env := newTestEnv()

	_, err := env.books.AddBook(authenticatedCtx(), book.AddBookRequest{
		Title: "It", Author: "Stephen King", Published: 1986,
	})
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "title")

	// validation failed before anything was written
	assert.Empty(t, env.bookRepo.books)
	assert.Empty(t, env.authorRepo.authors)
}

func TestAddBookSurfacesAuthorValidation(t *testing.T) {
	env := newTestEnv()

	_, err := env.books.AddBook(authenticatedCtx(), book.AddBookRequest{
		Title: "Some Title", Author: "Al", Published: 2001,
	})
	assert.ErrorIs(t, err, author.ErrNameTooShort)
	assert.Empty(t, env.bookRepo.books)
}

func TestListUnknownAuthorMatchesNothing(t *testing.T) {
	env := newTestEnv()

	_, err := env.books.AddBook(authenticatedCtx(), book.AddBookRequest{
		Title: "Dune", Author: "Frank Herbert", Published: 1965,
	})
	require.NoError(t, err)

	books, err := env.books.List(context.Background(), book.Filter{Author: "Nobody Known"})
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestListFiltersComposeWithAnd(t *testing.T) {
	env := newTestEnv()
	ctx := authenticatedCtx()

	seed := []book.AddBookRequest{
		{Title: "Dune", Author: "Frank Herbert", Published: 1965, Genres: []string{"sci-fi", "classic"}},
		{Title: "Dune Messiah", Author: "Frank Herbert", Published: 1969, Genres: []string{"sci-fi"}},
		{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", Published: 1969, Genres: []string{"sci-fi", "classic"}},
	}
	for _, req := range seed {
		_, err := env.books.AddBook(ctx, req)
		require.NoError(t, err)
	}

	byGenre, err := env.books.List(context.Background(), book.Filter{Genre: "classic"})
	require.NoError(t, err)
	require.Len(t, byGenre, 2)
	assert.Equal(t, "Dune", byGenre[0].Title)
	assert.Equal(t, "The Left Hand of Darkness", byGenre[1].Title)

	both, err := env.books.List(context.Background(), book.Filter{
		Author: "Frank Herbert", Genre: "classic",
	})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Dune", both[0].Title)

	all, err := env.books.List(context.Background(), book.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCountByAuthorTracksBooks(t *testing.T) {
	env := newTestEnv()
	ctx := authenticatedCtx()

	a, err := env.authors.FindOrCreate(ctx, "Frank Herbert")
	require.NoError(t, err)

	count, err := env.books.CountByAuthor(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	titles := []string{"Dune", "Dune Messiah", "Children of Dune"}
	for i, title := range titles {
		_, err := env.books.AddBook(ctx, book.AddBookRequest{
			Title: title, Author: "Frank Herbert", Published: 1965 + i,
		})
		require.NoError(t, err)
	}

	count, err = env.books.CountByAuthor(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, len(titles), count)
}
