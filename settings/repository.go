package settings

import (
	"context"

	"github.com/Ruidozo/fam-backoffice/entity"
)

// Repository persists the singleton settings row.
type Repository interface {
	// Get returns the row, inserting defaults when the table is empty.
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, s *entity.Settings) (*entity.Settings, error)
}
