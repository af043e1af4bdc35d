package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	customerpkg "github.com/Ruidozo/fam-backoffice/customer"
)

type CustomerHandler struct {
	service customerpkg.Service
}

func NewCustomerHandler(svc customerpkg.Service) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

type customerPayload struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	PickupLocation string `json:"pickup_location"`
	IsSubscription bool   `json:"is_subscription"`
}

func (p customerPayload) toRequest() customerpkg.UpsertCustomerRequest {
	return customerpkg.UpsertCustomerRequest{
		Name:           p.Name,
		Email:          p.Email,
		Phone:          p.Phone,
		Address:        p.Address,
		PickupLocation: p.PickupLocation,
		IsSubscription: p.IsSubscription,
	}
}

func (h *CustomerHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		customers, err := h.service.List(ctx)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

func (h *CustomerHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		customer, err := h.service.Get(ctx, id)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

func (h *CustomerHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p customerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		customer, err := h.service.Create(ctx, p.toRequest())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, customer)
	}
}

func (h *CustomerHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		var p customerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		customer, err := h.service.Update(ctx, id, p.toRequest())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

func (h *CustomerHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.Delete(ctx, id); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
	}
}
