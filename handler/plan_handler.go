package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	recurringpkg "github.com/Ruidozo/fam-backoffice/recurring"
)

type PlanHandler struct {
	service recurringpkg.Service
}

func NewPlanHandler(svc recurringpkg.Service) *PlanHandler {
	return &PlanHandler{service: svc}
}

type planItemPayload struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

type planPayload struct {
	CustomerID   uuid.UUID         `json:"customer_id" binding:"required"`
	DayOfWeek    int               `json:"day_of_week"`
	StartDate    string            `json:"start_date" binding:"required"`
	EndDate      *string           `json:"end_date"`
	Active       *bool             `json:"active"`
	PrepaidMonth bool              `json:"prepaid_month"`
	Items        []planItemPayload `json:"items" binding:"required"`
}

func (p planPayload) toRequest() (recurringpkg.UpsertPlanRequest, error) {
	start, err := parseDate(p.StartDate)
	if err != nil {
		return recurringpkg.UpsertPlanRequest{}, err
	}
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	req := recurringpkg.UpsertPlanRequest{
		CustomerID:   p.CustomerID,
		DayOfWeek:    p.DayOfWeek,
		StartDate:    start,
		Active:       active,
		PrepaidMonth: p.PrepaidMonth,
	}
	if p.EndDate != nil && *p.EndDate != "" {
		end, err := parseDate(*p.EndDate)
		if err != nil {
			return req, err
		}
		req.EndDate = &end
	}
	for _, it := range p.Items {
		req.Items = append(req.Items, recurringpkg.PlanItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return req, nil
}

func (h *PlanHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		var customerID *uuid.UUID
		if raw := c.Query("customer_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer_id filter"})
				return
			}
			customerID = &id
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		plans, err := h.service.ListPlans(ctx, customerID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, plans)
	}
}

func (h *PlanHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		plan, err := h.service.GetPlan(ctx, id)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}

func (h *PlanHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p planPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req, err := p.toRequest()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		plan, err := h.service.CreatePlan(ctx, req)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, plan)
	}
}

func (h *PlanHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
			return
		}
		var p planPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req, err := p.toRequest()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		plan, err := h.service.UpdatePlan(ctx, id, req)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}

func (h *PlanHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.DeletePlan(ctx, id); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Plan deleted successfully"})
	}
}

// CreateMonthlyPayment issues the subscription payment order for a month.
// Weekly deliveries are generated later, when that order is marked paid.
func (h *PlanHandler) CreateMonthlyPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
			return
		}
		var p struct {
			Month int `json:"month" binding:"required"`
			Year  int `json:"year" binding:"required"`
		}
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		o, err := h.service.GenerateMonthlyPayment(ctx, id, p.Month, p.Year)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}
