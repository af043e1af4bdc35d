package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/apperr"
	"github.com/Ruidozo/fam-backoffice/entity"
	userpkg "github.com/Ruidozo/fam-backoffice/user"
)

type userService struct {
	repo userpkg.Repository
}

func NewUserService(repo userpkg.Repository) userpkg.Service {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req userpkg.CreateUserRequest) (*entity.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", apperr.ErrValidation)
	}
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperr.ErrValidation, req.Role)
	}
	if existing, err := s.repo.GetByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: username already registered", apperr.ErrConflict)
	}
	if existing, err := s.repo.GetByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperr.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:       req.Username,
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: string(hash),
		Role:           req.Role,
		Active:         true,
	}
	return s.repo.Create(ctx, u)
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req userpkg.UpdateUserRequest) (*entity.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	if req.Email != nil && *req.Email != u.Email {
		existing, err := s.repo.GetByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email already registered", apperr.ErrConflict)
		}
		u.Email = *req.Email
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperr.ErrValidation, *req.Role)
		}
		u.Role = *req.Role
	}
	if req.Active != nil {
		u.Active = *req.Active
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.HashedPassword = string(hash)
	}
	return s.repo.Update(ctx, u)
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, skip, limit int) ([]entity.User, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *userService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	if id == actorID {
		return fmt.Errorf("%w: cannot delete yourself", apperr.ErrValidation)
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %s", apperr.ErrNotFound, id)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
