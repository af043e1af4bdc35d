package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	settingspkg "github.com/Ruidozo/fam-backoffice/settings"
)

type SettingsHandler struct {
	service settingspkg.Service
}

func NewSettingsHandler(svc settingspkg.Service) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

func (h *SettingsHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		s, err := h.service.Get(ctx)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func (h *SettingsHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p struct {
			ProductionDay     *int `json:"production_day"`
			OrderCutoffDay    *int `json:"order_cutoff_day"`
			OrderCutoffHour   *int `json:"order_cutoff_hour"`
			OrderCutoffMinute *int `json:"order_cutoff_minute"`
		}
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		s, err := h.service.Update(ctx, settingspkg.UpdateRequest{
			ProductionDay:     p.ProductionDay,
			OrderCutoffDay:    p.OrderCutoffDay,
			OrderCutoffHour:   p.OrderCutoffHour,
			OrderCutoffMinute: p.OrderCutoffMinute,
		})
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// Cutoff reports the next order cutoff instant and whether the upcoming
// production day's cutoff already passed, so the UI can lock the order form.
func (h *SettingsHandler) Cutoff() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		s, err := h.service.Get(ctx)
		if err != nil {
			abortWithError(c, err)
			return
		}
		now := time.Now()
		production := settingspkg.NextProductionDate(now, *s)
		c.JSON(http.StatusOK, gin.H{
			"next_cutoff":         settingspkg.NextCutoff(now, *s),
			"next_production_day": production.Format("2006-01-02"),
			"past_cutoff":         settingspkg.IsPastCutoff(now, production, *s),
		})
	}
}
