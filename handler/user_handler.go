package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ruidozo/fam-backoffice/entity"
	userpkg "github.com/Ruidozo/fam-backoffice/user"
)

type UserHandler struct {
	service userpkg.Service
}

func NewUserHandler(svc userpkg.Service) *UserHandler {
	return &UserHandler{service: svc}
}

type createUserPayload struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type updateUserPayload struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
	Active   *bool   `json:"is_active"`
	Password *string `json:"password"`
}

func (h *UserHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		users, err := h.service.List(ctx, skip, limit)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func (h *UserHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		user, err := h.service.Get(ctx, id)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func (h *UserHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createUserPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		role := entity.UserRole(p.Role)
		if p.Role == "" {
			role = entity.RoleOperator
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		user, err := h.service.Create(ctx, userpkg.CreateUserRequest{
			Username: p.Username,
			Email:    p.Email,
			FullName: p.FullName,
			Password: p.Password,
			Role:     role,
		})
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

func (h *UserHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		var p updateUserPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := userpkg.UpdateUserRequest{
			Email:    p.Email,
			FullName: p.FullName,
			Active:   p.Active,
			Password: p.Password,
		}
		if p.Role != nil {
			role := entity.UserRole(*p.Role)
			req.Role = &role
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		user, err := h.service.Update(ctx, id, req)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func (h *UserHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		actorID, err := uuid.Parse(c.GetString("user_id"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token subject"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.Delete(ctx, id, actorID); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
