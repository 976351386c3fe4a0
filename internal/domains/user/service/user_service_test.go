package service

import (
	"context"
	"sync"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	user "library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

// fakeUserRepo is an in-memory user.Repository. The mutex makes the
// uniqueness check atomic, matching the guarantee of the real store.
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uuid.UUID]user.User
	byName map[string]uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[uuid.UUID]user.User),
		byName: make(map[string]uuid.UUID),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[u.Username]; exists {
		return nil, user.ErrUsernameTaken
	}

	created := *u
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	r.users[created.ID] = created
	r.byName[created.Username] = created.ID
	return &created, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	u := r.users[id]
	return &u, nil
}

func newTestService(repo user.Repository) (user.Service, *jwt.Manager) {
	manager := jwt.NewManager("test-secret", time.Hour)
	return NewService(repo, manager), manager
}

func TestRegisterHashesSuppliedPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)

	u, err := svc.Register(context.Background(), user.CreateUserRequest{
		Username:      "alice",
		FavoriteGenre: "sci-fi",
		Password:      "hunter2-but-long",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "sci-fi", u.FavoriteGenre)

	stored, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2-but-long", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2-but-long")))
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc, _ := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), user.CreateUserRequest{
		FavoriteGenre: "crime",
		Password:      "pw",
	})
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "username")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)

	_, err := svc.Register(context.Background(), user.CreateUserRequest{
		Username: "bob", FavoriteGenre: "horror", Password: "secret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), user.CreateUserRequest{
		Username: "bob", FavoriteGenre: "romance", Password: "other-pass",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
	assert.Len(t, repo.users, 1)
}

func TestLoginDoesNotRevealWhichCredentialWasWrong(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)

	_, err := svc.Register(context.Background(), user.CreateUserRequest{
		Username: "carol", FavoriteGenre: "poetry", Password: "right-password",
	})
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), user.LoginRequest{
		Username: "missing_user", Password: "anything",
	})
	_, wrongErr := svc.Login(context.Background(), user.LoginRequest{
		Username: "carol", Password: "wrong-password",
	})

	assert.ErrorIs(t, unknownErr, user.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, user.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc, manager := newTestService(repo)

	u, err := svc.Register(context.Background(), user.CreateUserRequest{
		Username: "dave", FavoriteGenre: "fantasy", Password: "daves-password",
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "dave", Password: "daves-password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token is verifiable offline and points back at the user
	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, "dave", claims.Username)
}
