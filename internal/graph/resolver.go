// Package graph exposes the catalog as a GraphQL API. Resolvers are thin:
// they translate schema types, delegate to the domain services and classify
// every error before it leaves the boundary.
package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	author "library-backend/internal/domains/author"
	book "library-backend/internal/domains/book"
	user "library-backend/internal/domains/user"
	"library-backend/internal/shared/auth"
)

// Resolver is the root resolver for queries and mutations.
type Resolver struct {
	users   user.Service
	authors author.Service
	books   book.Service
}

// NewResolver creates the root resolver with its domain services.
func NewResolver(users user.Service, authors author.Service, books book.Service) *Resolver {
	return &Resolver{
		users:   users,
		authors: authors,
		books:   books,
	}
}

// ========================================
// QUERIES
// ========================================

// Me returns the identity derived from the bearer token, or null.
func (r *Resolver) Me(ctx context.Context) *UserResolver {
	u, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil
	}
	return &UserResolver{u: u}
}

func (r *Resolver) BookCount(ctx context.Context) (int32, error) {
	count, err := r.books.Count(ctx)
	if err != nil {
		return 0, mapError(err)
	}
	return int32(count), nil
}

func (r *Resolver) AuthorCount(ctx context.Context) (int32, error) {
	count, err := r.authors.Count(ctx)
	if err != nil {
		return 0, mapError(err)
	}
	return int32(count), nil
}

func (r *Resolver) AllBooks(ctx context.Context, args struct {
	Author *string
	Genre  *string
}) ([]*BookResolver, error) {
	filter := book.Filter{}
	if args.Author != nil {
		filter.Author = *args.Author
	}
	if args.Genre != nil {
		filter.Genre = *args.Genre
	}

	books, err := r.books.List(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}

	resolvers := make([]*BookResolver, 0, len(books))
	for i := range books {
		resolvers = append(resolvers, &BookResolver{b: books[i], root: r})
	}
	return resolvers, nil
}

func (r *Resolver) AllAuthors(ctx context.Context) ([]*AuthorResolver, error) {
	authors, err := r.authors.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resolvers := make([]*AuthorResolver, 0, len(authors))
	for i := range authors {
		resolvers = append(resolvers, &AuthorResolver{a: authors[i], root: r})
	}
	return resolvers, nil
}

// ========================================
// MUTATIONS
// ========================================

func (r *Resolver) CreateUser(ctx context.Context, args struct {
	Username      string
	FavoriteGenre string
	Password      string
}) (*UserResolver, error) {
	u, err := r.users.Register(ctx, user.CreateUserRequest{
		Username:      args.Username,
		FavoriteGenre: args.FavoriteGenre,
		Password:      args.Password,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &UserResolver{u: u}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct {
	Username string
	Password string
}) (*TokenResolver, error) {
	token, err := r.users.Login(ctx, user.LoginRequest{
		Username: args.Username,
		Password: args.Password,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &TokenResolver{value: token}, nil
}

func (r *Resolver) AddBook(ctx context.Context, args struct {
	Title     string
	Author    string
	Published int32
	Genres    []string
}) (*BookResolver, error) {
	b, err := r.books.AddBook(ctx, book.AddBookRequest{
		Title:     args.Title,
		Author:    args.Author,
		Published: int(args.Published),
		Genres:    args.Genres,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &BookResolver{b: *b, root: r}, nil
}

func (r *Resolver) EditAuthor(ctx context.Context, args struct {
	Name      string
	SetBornTo int32
}) (*AuthorResolver, error) {
	a, err := r.authors.EditBorn(ctx, author.EditAuthorRequest{
		Name:      args.Name,
		SetBornTo: int(args.SetBornTo),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &AuthorResolver{a: *a, root: r}, nil
}

// ========================================
// TYPE RESOLVERS
// ========================================

type UserResolver struct {
	u *user.User
}

func (r *UserResolver) ID() graphql.ID {
	return graphql.ID(r.u.ID.String())
}

func (r *UserResolver) Username() string {
	return r.u.Username
}

func (r *UserResolver) FavoriteGenre() string {
	return r.u.FavoriteGenre
}

type TokenResolver struct {
	value string
}

func (r *TokenResolver) Value() string {
	return r.value
}

type AuthorResolver struct {
	a    author.Author
	root *Resolver
}

func (r *AuthorResolver) ID() graphql.ID {
	return graphql.ID(r.a.ID.String())
}

func (r *AuthorResolver) Name() string {
	return r.a.Name
}

func (r *AuthorResolver) Born() *int32 {
	if r.a.Born == nil {
		return nil
	}
	born := int32(*r.a.Born)
	return &born
}

// BookCount is derived from the book collection on every read, never stored.
func (r *AuthorResolver) BookCount(ctx context.Context) (int32, error) {
	count, err := r.root.books.CountByAuthor(ctx, r.a.ID)
	if err != nil {
		return 0, mapError(err)
	}
	return int32(count), nil
}

type BookResolver struct {
	b    book.Book
	root *Resolver
}

func (r *BookResolver) ID() graphql.ID {
	return graphql.ID(r.b.ID.String())
}

func (r *BookResolver) Title() string {
	return r.b.Title
}

// Author materializes the book's author reference in the response.
func (r *BookResolver) Author(ctx context.Context) (*AuthorResolver, error) {
	a, err := r.root.authors.GetByID(ctx, r.b.AuthorID)
	if err != nil {
		return nil, mapError(err)
	}
	return &AuthorResolver{a: *a, root: r.root}, nil
}

func (r *BookResolver) Published() int32 {
	return int32(r.b.Published)
}

func (r *BookResolver) Genres() []string {
	return r.b.Genres
}
