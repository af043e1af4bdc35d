package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/apperr"
	authpkg "github.com/Ruidozo/fam-backoffice/auth"
	"github.com/Ruidozo/fam-backoffice/entity"
)

// ErrInvalidCredentials deliberately does not say whether the username or
// the password was wrong.
var ErrInvalidCredentials = errors.New("incorrect username or password")

type authService struct {
	repo   authpkg.Repository
	secret string
	ttl    time.Duration
}

func NewAuthService(repo authpkg.Repository, secret string, ttl time.Duration) authpkg.Service {
	return &authService{repo: repo, secret: secret, ttl: ttl}
}

func (s *authService) Login(ctx context.Context, req authpkg.LoginRequest) (*authpkg.TokenResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperr.ErrValidation)
	}
	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	token, err := authpkg.SignJWT(s.secret, user, s.ttl)
	if err != nil {
		return nil, err
	}
	return &authpkg.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, userID)
		}
		return nil, err
	}
	return user, nil
}
