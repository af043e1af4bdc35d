package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ruidozo/fam-backoffice/analytics"
	"github.com/Ruidozo/fam-backoffice/production"
)

type AnalyticsHandler struct {
	analytics  *analytics.Service
	production *production.Service
}

func NewAnalyticsHandler(a *analytics.Service, p *production.Service) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: a, production: p}
}

func (h *AnalyticsHandler) Dashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		d, err := h.analytics.Dashboard(ctx, days)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func (h *AnalyticsHandler) InactiveCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		customers, err := h.analytics.InactiveCustomers(ctx, days)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

// ProductionNeeds reports what must be produced for a delivery date,
// defaulting to today.
func (h *AnalyticsHandler) ProductionNeeds() gin.HandlerFunc {
	return func(c *gin.Context) {
		date := time.Now().UTC()
		if raw := c.Query("date"); raw != "" {
			d, err := parseDate(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
				return
			}
			date = d
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		needs, err := h.production.Needs(ctx, date)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"date":  date.Format("2006-01-02"),
			"needs": needs,
		})
	}
}
