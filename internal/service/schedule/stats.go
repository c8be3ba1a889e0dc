package schedule

import (
	"time"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

// TipWindowDays is the trailing window counted by AITipsThisWeek.
const TipWindowDays = 7

// TipWindowStart is the earliest creation time counted as "this week".
func TipWindowStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -TipWindowDays)
}

// ComputeUserStats aggregates dashboard counts over one snapshot.
// The caller captures now once and passes the same value for every predicate.
func ComputeUserStats(plants []domain.Plant, events []domain.CareEvent, tips []domain.AITip, now time.Time) domain.UserStats {
	stats := domain.UserStats{TotalPlants: len(plants)}

	for i := range plants {
		if IsOverdue(plants[i].NextWatering, now) {
			stats.NeedWater++
		}
	}

	for i := range events {
		if IsCareEventDue(events[i], now) {
			stats.CareReminders++
		}
	}

	windowStart := TipWindowStart(now)
	for i := range tips {
		if !tips[i].CreatedAt.Before(windowStart) {
			stats.AITipsThisWeek++
		}
	}

	return stats
}
