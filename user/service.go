package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ruidozo/fam-backoffice/entity"
)

type CreateUserRequest struct {
	Username string
	Email    string
	FullName string
	Password string
	Role     entity.UserRole
}

// UpdateUserRequest is partial; nil fields keep their current value.
// Username is immutable.
type UpdateUserRequest struct {
	Email    *string
	FullName *string
	Role     *entity.UserRole
	Active   *bool
	Password *string
}

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*entity.User, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)
	List(ctx context.Context, skip, limit int) ([]entity.User, error)
	// Delete refuses when id equals actorID: admins cannot delete themselves.
	Delete(ctx context.Context, id, actorID uuid.UUID) error
}
