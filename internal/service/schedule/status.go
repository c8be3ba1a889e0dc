package schedule

import (
	"time"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

// ResolveDisplayStatus reconciles the stored status with the watering schedule.
//
// Dormant wins unconditionally. Otherwise an overdue plant needs water. A
// stored "needs water" that is no longer overdue falls back to healthy.
func ResolveDisplayStatus(p domain.Plant, now time.Time) domain.PlantStatus {
	if p.Status == domain.PlantStatusDormant {
		return domain.PlantStatusDormant
	}
	if IsOverdue(p.NextWatering, now) {
		return domain.PlantStatusNeedsWater
	}
	switch p.Status {
	case domain.PlantStatusHealthy, domain.PlantStatusNeedsCare:
		return p.Status
	default:
		return domain.PlantStatusHealthy
	}
}

// IsCareEventDue reports whether e is an incomplete event dated at or before now.
func IsCareEventDue(e domain.CareEvent, now time.Time) bool {
	return !e.Completed && !e.EventDate.After(now)
}

// Projection is the schedule-derived view of a plant at one instant.
type Projection struct {
	DisplayStatus     domain.PlantStatus
	Overdue           bool
	DaysUntilWatering *int
}

// Project evaluates every schedule-derived field of p against the same now.
func Project(p domain.Plant, now time.Time) Projection {
	out := Projection{
		DisplayStatus: ResolveDisplayStatus(p, now),
		Overdue:       IsOverdue(p.NextWatering, now),
	}
	if days, ok := DaysUntilWatering(p.NextWatering, now); ok {
		out.DaysUntilWatering = &days
	}
	return out
}
