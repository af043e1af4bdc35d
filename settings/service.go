package settings

import (
	"context"

	"github.com/Ruidozo/fam-backoffice/entity"
)

// UpdateRequest carries a partial settings update; nil fields keep their
// current value.
type UpdateRequest struct {
	ProductionDay     *int
	OrderCutoffDay    *int
	OrderCutoffHour   *int
	OrderCutoffMinute *int
}

type Service interface {
	// Get returns the singleton, creating it with defaults on first access.
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, req UpdateRequest) (*entity.Settings, error)
}
