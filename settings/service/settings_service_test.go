package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ruidozo/fam-backoffice/apperr"
	"github.com/Ruidozo/fam-backoffice/entity"
	settingspkg "github.com/Ruidozo/fam-backoffice/settings"
)

type fakeSettingsRepo struct {
	row entity.Settings
}

var _ settingspkg.Repository = (*fakeSettingsRepo)(nil)

func (f *fakeSettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	cp := f.row
	return &cp, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, s *entity.Settings) (*entity.Settings, error) {
	f.row = *s
	return s, nil
}

func defaults() entity.Settings {
	return entity.Settings{ProductionDay: 2, OrderCutoffDay: 6, OrderCutoffHour: 23, OrderCutoffMinute: 59}
}

func TestUpdateSettingsPartial(t *testing.T) {
	repo := &fakeSettingsRepo{row: defaults()}
	svc := NewSettingsService(repo)

	day := 4
	s, err := svc.Update(context.Background(), settingspkg.UpdateRequest{ProductionDay: &day})
	require.NoError(t, err)
	assert.Equal(t, 4, s.ProductionDay)
	// omitted fields keep current values
	assert.Equal(t, 6, s.OrderCutoffDay)
	assert.Equal(t, 23, s.OrderCutoffHour)
	assert.Equal(t, 59, s.OrderCutoffMinute)
}

func TestUpdateSettingsValidation(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{row: defaults()})

	bad := func(req settingspkg.UpdateRequest) {
		t.Helper()
		_, err := svc.Update(context.Background(), req)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	}

	day := 7
	bad(settingspkg.UpdateRequest{ProductionDay: &day})
	bad(settingspkg.UpdateRequest{OrderCutoffDay: &day})
	hour := 24
	bad(settingspkg.UpdateRequest{OrderCutoffHour: &hour})
	minute := 60
	bad(settingspkg.UpdateRequest{OrderCutoffMinute: &minute})
	neg := -1
	bad(settingspkg.UpdateRequest{ProductionDay: &neg})
}
