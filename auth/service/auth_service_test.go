package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/apperr"
	authpkg "github.com/Ruidozo/fam-backoffice/auth"
	"github.com/Ruidozo/fam-backoffice/entity"
)

type fakeAuthRepo struct {
	users      map[uuid.UUID]*entity.User
	lastLogins map[uuid.UUID]time.Time
}

var _ authpkg.Repository = (*fakeAuthRepo)(nil)

func newFakeAuthRepo(users ...*entity.User) *fakeAuthRepo {
	f := &fakeAuthRepo{users: map[uuid.UUID]*entity.User{}, lastLogins: map[uuid.UUID]time.Time{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeAuthRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeAuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeAuthRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	f.lastLogins[id] = at
	return nil
}

func testUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:             uuid.New(),
		Username:       "admin",
		Email:          "admin@example.com",
		HashedPassword: string(hash),
		Role:           entity.RoleAdmin,
		Active:         true,
	}
}

func TestLogin(t *testing.T) {
	u := testUser(t, "admin")
	repo := newFakeAuthRepo(u)
	svc := NewAuthService(repo, "test-secret", time.Hour)

	resp, err := svc.Login(context.Background(), authpkg.LoginRequest{Username: "admin", Password: "admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Contains(t, repo.lastLogins, u.ID)

	claims, err := authpkg.ParseAndValidate("test-secret", resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, string(entity.RoleAdmin), claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(testUser(t, "admin")), "test-secret", time.Hour)
	_, err := svc.Login(context.Background(), authpkg.LoginRequest{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), "test-secret", time.Hour)
	_, err := svc.Login(context.Background(), authpkg.LoginRequest{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	u := testUser(t, "admin")
	u.Active = false
	svc := NewAuthService(newFakeAuthRepo(u), "test-secret", time.Hour)
	_, err := svc.Login(context.Background(), authpkg.LoginRequest{Username: "admin", Password: "admin"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), "test-secret", time.Hour)
	_, err := svc.Login(context.Background(), authpkg.LoginRequest{})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestTokenRejectedWithWrongSecret(t *testing.T) {
	u := testUser(t, "admin")
	svc := NewAuthService(newFakeAuthRepo(u), "test-secret", time.Hour)
	resp, err := svc.Login(context.Background(), authpkg.LoginRequest{Username: "admin", Password: "admin"})
	require.NoError(t, err)

	_, err = authpkg.ParseAndValidate("other-secret", resp.AccessToken)
	assert.Error(t, err)
}

func TestMe(t *testing.T) {
	u := testUser(t, "admin")
	svc := NewAuthService(newFakeAuthRepo(u), "test-secret", time.Hour)

	got, err := svc.Me(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Username, got.Username)

	_, err = svc.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
