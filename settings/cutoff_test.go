package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ruidozo/fam-backoffice/entity"
)

// Sunday 23:59 cutoff, Wednesday production.
var testSettings = entity.Settings{
	ProductionDay:     2,
	OrderCutoffDay:    6,
	OrderCutoffHour:   23,
	OrderCutoffMinute: 59,
}

func TestNextCutoff(t *testing.T) {
	// Friday 2026-03-06 10:00
	now := time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)
	next := NextCutoff(now, testSettings)
	assert.Equal(t, time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC), next)
	assert.Equal(t, time.Sunday, next.Weekday())
}

func TestNextCutoffSameDayBefore(t *testing.T) {
	// Sunday morning: cutoff is later the same day.
	now := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
	next := NextCutoff(now, testSettings)
	assert.Equal(t, time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC), next)
}

func TestNextCutoffSameDayAfter(t *testing.T) {
	// Sunday 23:59:30 already passed this week's cutoff, roll a week ahead.
	now := time.Date(2026, 3, 8, 23, 59, 30, 0, time.UTC)
	next := NextCutoff(now, testSettings)
	assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC), next)
}

func TestNextProductionDate(t *testing.T) {
	// Friday -> next Wednesday
	now := time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)
	d := NextProductionDate(now, testSettings)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, time.Wednesday, d.Weekday())

	// A Wednesday counts as its own production day.
	d = NextProductionDate(d, testSettings)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), d)
}

func TestIsPastCutoff(t *testing.T) {
	// Production Wednesday 2026-03-11; cutoff the preceding Sunday 23:59.
	production := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	before := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	assert.False(t, IsPastCutoff(before, production, testSettings))

	after := time.Date(2026, 3, 9, 0, 30, 0, 0, time.UTC)
	assert.True(t, IsPastCutoff(after, production, testSettings))
}

func TestIsPastCutoffProductionOnCutoffDay(t *testing.T) {
	// When production shares the cutoff weekday the cutoff is a full week
	// earlier, never the same instant.
	s := testSettings
	s.ProductionDay = 6
	production := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC) // Sunday
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)       // Monday before
	assert.True(t, now.After(time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)))
	assert.True(t, IsPastCutoff(now, production, s))
}
