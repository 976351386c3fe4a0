package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	user "library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

// UserService implements user.Service.
type UserService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

// NewService creates the user service. The JWT manager carries the
// server-held signing secret; it is injected here, not read from globals.
func NewService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &UserService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Register creates a user with a one-way hash of the supplied password.
func (s *UserService) Register(ctx context.Context, req user.CreateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// bcrypt cost 12: balance between security and login latency
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Username:      req.Username,
		FavoriteGenre: req.FavoriteGenre,
		PasswordHash:  string(passwordHash),
	}

	return s.repo.Create(ctx, u)
}

// Login verifies credentials and issues a signed session token.
func (s *UserService) Login(ctx context.Context, req user.LoginRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same outcome as a wrong password: no username enumeration
			return "", user.ErrInvalidCredentials
		}
		return "", err
	}

	// Constant-time comparison
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", user.ErrInvalidCredentials
	}

	return s.jwtManager.Generate(u.ID.String(), u.Username)
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.FindByID(ctx, id)
}
