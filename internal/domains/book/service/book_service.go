package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	author "library-backend/internal/domains/author"
	book "library-backend/internal/domains/book"
	"library-backend/internal/shared/auth"
)

// BookService implements book.Service. It composes the author service for
// the find-or-create half of the addBook protocol.
type BookService struct {
	repo    book.Repository
	authors author.Service
}

// NewService creates the book service.
func NewService(repo book.Repository, authors author.Service) book.Service {
	return &BookService{
		repo:    repo,
		authors: authors,
	}
}

// AddBook runs the write protocol: gate, validate, find-or-create the
// author, then create the book referencing it.
func (s *BookService) AddBook(ctx context.Context, req book.AddBookRequest) (*book.Book, error) {
	// Authorization gate: no identity, no writes of any kind
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.authors.FindOrCreate(ctx, req.Author)
	if err != nil {
		return nil, err
	}

	genres := req.Genres
	if genres == nil {
		genres = []string{}
	}

	return s.repo.Create(ctx, &book.Book{
		Title:     req.Title,
		AuthorID:  a.ID,
		Published: req.Published,
		Genres:    genres,
	})
}

// List resolves the author-name filter to an id first; a name matching no
// author matches zero books and is never an error.
func (s *BookService) List(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	var authorID *uuid.UUID
	if filter.Author != "" {
		a, err := s.authors.GetByName(ctx, filter.Author)
		if err != nil {
			if errors.Is(err, author.ErrAuthorNotFound) {
				return []book.Book{}, nil
			}
			return nil, err
		}
		authorID = &a.ID
	}

	var genre *string
	if filter.Genre != "" {
		genre = &filter.Genre
	}

	return s.repo.List(ctx, authorID, genre)
}

func (s *BookService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *BookService) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	return s.repo.CountByAuthor(ctx, authorID)
}
