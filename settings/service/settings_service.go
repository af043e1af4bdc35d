package service

import (
	"context"
	"fmt"

	"github.com/Ruidozo/fam-backoffice/apperr"
	"github.com/Ruidozo/fam-backoffice/entity"
	settingspkg "github.com/Ruidozo/fam-backoffice/settings"
)

type settingsService struct {
	repo settingspkg.Repository
}

func NewSettingsService(repo settingspkg.Repository) settingspkg.Service {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context) (*entity.Settings, error) {
	return s.repo.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, req settingspkg.UpdateRequest) (*entity.Settings, error) {
	if req.ProductionDay != nil && (*req.ProductionDay < 0 || *req.ProductionDay > 6) {
		return nil, fmt.Errorf("%w: production_day must be 0-6", apperr.ErrValidation)
	}
	if req.OrderCutoffDay != nil && (*req.OrderCutoffDay < 0 || *req.OrderCutoffDay > 6) {
		return nil, fmt.Errorf("%w: order_cutoff_day must be 0-6", apperr.ErrValidation)
	}
	if req.OrderCutoffHour != nil && (*req.OrderCutoffHour < 0 || *req.OrderCutoffHour > 23) {
		return nil, fmt.Errorf("%w: order_cutoff_hour must be 0-23", apperr.ErrValidation)
	}
	if req.OrderCutoffMinute != nil && (*req.OrderCutoffMinute < 0 || *req.OrderCutoffMinute > 59) {
		return nil, fmt.Errorf("%w: order_cutoff_minute must be 0-59", apperr.ErrValidation)
	}

	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if req.ProductionDay != nil {
		current.ProductionDay = *req.ProductionDay
	}
	if req.OrderCutoffDay != nil {
		current.OrderCutoffDay = *req.OrderCutoffDay
	}
	if req.OrderCutoffHour != nil {
		current.OrderCutoffHour = *req.OrderCutoffHour
	}
	if req.OrderCutoffMinute != nil {
		current.OrderCutoffMinute = *req.OrderCutoffMinute
	}
	return s.repo.Update(ctx, current)
}
