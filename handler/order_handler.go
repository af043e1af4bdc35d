package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ruidozo/fam-backoffice/entity"
	orderpkg "github.com/Ruidozo/fam-backoffice/order"
)

type OrderHandler struct {
	service orderpkg.Service
}

func NewOrderHandler(svc orderpkg.Service) *OrderHandler {
	return &OrderHandler{service: svc}
}

type orderItemPayload struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

type orderPayload struct {
	CustomerID   uuid.UUID          `json:"customer_id" binding:"required"`
	DeliveryDate *string            `json:"delivery_date"`
	Notes        string             `json:"notes"`
	Items        []orderItemPayload `json:"items" binding:"required"`
}

func (p orderPayload) toRequest() (orderpkg.UpsertOrderRequest, error) {
	req := orderpkg.UpsertOrderRequest{
		CustomerID: p.CustomerID,
		Notes:      p.Notes,
	}
	if p.DeliveryDate != nil && *p.DeliveryDate != "" {
		d, err := parseDate(*p.DeliveryDate)
		if err != nil {
			return req, err
		}
		req.DeliveryDate = &d
	}
	for _, it := range p.Items {
		req.Items = append(req.Items, orderpkg.ItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return req, nil
}

func (h *OrderHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		var f orderpkg.ListFilter
		if raw := c.Query("status"); raw != "" {
			st := entity.OrderStatus(raw)
			if !st.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
				return
			}
			f.Status = &st
		}
		if raw := c.Query("customer_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer_id filter"})
				return
			}
			f.CustomerID = &id
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		orders, err := h.service.List(ctx, f)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (h *OrderHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		o, err := h.service.Get(ctx, id)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func (h *OrderHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p orderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req, err := p.toRequest()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid delivery_date, expected YYYY-MM-DD"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		o, err := h.service.Create(ctx, req)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

func (h *OrderHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		var p orderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req, err := p.toRequest()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid delivery_date, expected YYYY-MM-DD"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		o, err := h.service.Update(ctx, id, req)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func (h *OrderHandler) SetStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		var p struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		o, err := h.service.SetStatus(ctx, id, entity.OrderStatus(p.Status))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func (h *OrderHandler) History() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		entries, err := h.service.History(ctx, id)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

func (h *OrderHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.Delete(ctx, id); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
