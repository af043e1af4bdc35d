package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ruidozo/fam-backoffice/entity"
)

type LoginRequest struct {
	Username string
	Password string
}

// TokenResponse is the login payload: bearer token plus the account, the
// shape the backoffice UI stores client-side.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *entity.User `json:"user"`
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	// Me resolves the authenticated account from its token subject.
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
