package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	productpkg "github.com/Ruidozo/fam-backoffice/product"
)

type ProductHandler struct {
	service productpkg.Service
}

func NewProductHandler(svc productpkg.Service) *ProductHandler {
	return &ProductHandler{service: svc}
}

type productPayload struct {
	SKU         string           `json:"sku" binding:"required"`
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	BatchSize   *int             `json:"batch_size"`
	Active      *bool            `json:"active"`
}

func (p productPayload) toRequest() productpkg.UpsertProductRequest {
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	return productpkg.UpsertProductRequest{
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		CostPrice:   p.CostPrice,
		BatchSize:   p.BatchSize,
		Active:      active,
	}
}

func (h *ProductHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		var active *bool
		if raw := c.Query("active"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active filter"})
				return
			}
			active = &v
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		products, err := h.service.List(ctx, active)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func (h *ProductHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		product, err := h.service.Get(ctx, id)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func (h *ProductHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p productPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		product, err := h.service.Create(ctx, p.toRequest())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func (h *ProductHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		var p productPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		product, err := h.service.Update(ctx, id, p.toRequest())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func (h *ProductHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.Delete(ctx, id); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
