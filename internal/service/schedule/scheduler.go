// Package schedule holds the watering-schedule rules shared by every surface
// that reasons about plant care: next-watering computation, the overdue
// predicate, display-status reconciliation and dashboard aggregation.
//
// Every function takes "now" explicitly. Nothing in this package reads a clock.
package schedule

import (
	"time"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

// NextWatering returns reference advanced by frequencyDays calendar days.
func NextWatering(reference time.Time, frequencyDays int) (time.Time, error) {
	if frequencyDays <= 0 {
		return time.Time{}, &domain.InvalidScheduleError{FrequencyDays: frequencyDays}
	}
	// AddDate keeps the wall clock across DST changes, Add(24h*d) does not.
	return reference.AddDate(0, 0, frequencyDays), nil
}

// ReferenceTime is the instant the watering cadence counts from.
func ReferenceTime(p domain.Plant) time.Time {
	if p.LastWatered != nil {
		return *p.LastWatered
	}
	return p.CreatedAt
}

// Reschedule recomputes p.NextWatering from its reference time and cadence.
// p is left untouched on error.
func Reschedule(p *domain.Plant) error {
	next, err := NextWatering(ReferenceTime(*p), p.WateringFrequencyDays)
	if err != nil {
		return err
	}
	p.NextWatering = &next
	return nil
}

// IsOverdue reports whether next is strictly before now.
// An unscheduled plant (nil next) is never overdue.
func IsOverdue(next *time.Time, now time.Time) bool {
	return next != nil && next.Before(now)
}

// WaterNow applies the water-now transition to p in memory.
func WaterNow(p *domain.Plant, now time.Time) error {
	next, err := NextWatering(now, p.WateringFrequencyDays)
	if err != nil {
		return err
	}
	watered := now
	p.LastWatered = &watered
	p.NextWatering = &next
	p.Status = domain.PlantStatusHealthy
	p.UpdatedAt = now
	return nil
}

// DaysUntilWatering returns the number of calendar days from now until next,
// negative when overdue. ok is false for an unscheduled plant.
// Days are counted between calendar dates in now's location.
func DaysUntilWatering(next *time.Time, now time.Time) (days int, ok bool) {
	if next == nil {
		return 0, false
	}
	loc := now.Location()
	n := next.In(loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24), true
}
