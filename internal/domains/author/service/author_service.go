package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	author "library-backend/internal/domains/author"
	"library-backend/internal/shared/auth"
)

// AuthorService implements author.Service.
type AuthorService struct {
	repo author.Repository
}

// NewService creates the author service.
func NewService(repo author.Repository) author.Service {
	return &AuthorService{repo: repo}
}

// FindOrCreate is the explicit half of addBook's implicit author creation:
// a book referencing an unknown author silently provisions that author.
func (s *AuthorService) FindOrCreate(ctx context.Context, name string) (*author.Author, error) {
	a, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, author.ErrAuthorNotFound) {
		return nil, err
	}

	candidate := &author.Author{Name: name}
	if err := candidate.IsValid(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, candidate)
	if err == nil {
		return created, nil
	}

	// A concurrent request created the same name between our lookup and
	// insert. The store's uniqueness constraint guarantees a single row;
	// re-read and reuse the winner.
	if errors.Is(err, author.ErrDuplicateName) {
		return s.repo.FindByName(ctx, name)
	}

	return nil, err
}

// EditBorn sets the year of birth of an existing author.
func (s *AuthorService) EditBorn(ctx context.Context, req author.EditAuthorRequest) (*author.Author, error) {
	// Authorization gate: must precede every store access on this path
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateBorn(ctx, a.ID, req.SetBornTo)
}

func (s *AuthorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AuthorService) GetByName(ctx context.Context, name string) (*author.Author, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *AuthorService) List(ctx context.Context) ([]author.Author, error) {
	return s.repo.List(ctx)
}

func (s *AuthorService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
