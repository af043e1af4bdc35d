package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ruidozo/fam-backoffice/entity"
)

// Repository defines the user lookups login needs.
type Repository interface {
	// GetUserByUsername returns nil, nil when the username is unknown.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
