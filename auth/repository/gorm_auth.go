package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authpkg "github.com/Ruidozo/fam-backoffice/auth"
	"github.com/Ruidozo/fam-backoffice/entity"
)

type GormAuthRepo struct{ db *gorm.DB }

func NewGormAuthRepo(db *gorm.DB) authpkg.Repository { return &GormAuthRepo{db: db} }

func (r *GormAuthRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormAuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormAuthRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Update("last_login", at).Error
}
