package settings

import (
	"time"

	"github.com/Ruidozo/fam-backoffice/entity"
)

// The cutoff-warning math used to live client-side and was recomputed on
// every render; these are the same calculations as pure functions.

// mondayWeekday maps time.Weekday (Sunday=0) to the settings convention
// (Monday=0 .. Sunday=6).
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// NextCutoff returns the first cutoff instant strictly after now, in now's
// location.
func NextCutoff(now time.Time, s entity.Settings) time.Time {
	daysAhead := (s.OrderCutoffDay - mondayWeekday(now) + 7) % 7
	candidate := time.Date(now.Year(), now.Month(), now.Day(), s.OrderCutoffHour, s.OrderCutoffMinute, 0, 0, now.Location()).
		AddDate(0, 0, daysAhead)
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate
}

// NextProductionDate returns the next production day on or after now, at
// midnight in now's location.
func NextProductionDate(now time.Time, s entity.Settings) time.Time {
	daysAhead := (s.ProductionDay - mondayWeekday(now) + 7) % 7
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, daysAhead)
}

// IsPastCutoff reports whether an order placed at now already missed the
// cutoff for the upcoming production day.
func IsPastCutoff(now time.Time, productionDate time.Time, s entity.Settings) bool {
	// Walk back from the production date to the cutoff weekday preceding it.
	daysBack := (mondayWeekday(productionDate) - s.OrderCutoffDay + 7) % 7
	if daysBack == 0 {
		daysBack = 7
	}
	cutoff := time.Date(productionDate.Year(), productionDate.Month(), productionDate.Day(),
		s.OrderCutoffHour, s.OrderCutoffMinute, 0, 0, productionDate.Location()).
		AddDate(0, 0, -daysBack)
	return now.After(cutoff)
}
