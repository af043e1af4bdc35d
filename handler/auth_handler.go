package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authpkg "github.com/Ruidozo/fam-backoffice/auth"
	authsvc "github.com/Ruidozo/fam-backoffice/auth/service"
)

type AuthHandler struct {
	service authpkg.Service
}

func NewAuthHandler(svc authpkg.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login accepts form-encoded credentials (the OAuth2 password-grant shape
// the UI posts) and returns a bearer token plus the account.
func (h *AuthHandler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		resp, err := h.service.Login(ctx, authpkg.LoginRequest{Username: username, Password: password})
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				c.Header("WWW-Authenticate", "Bearer")
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// Me returns the account behind the presented token.
func (h *AuthHandler) Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetString("user_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token subject"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		user, err := h.service.Me(ctx, id)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
