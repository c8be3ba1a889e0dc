package domain

// UserStats is a dashboard snapshot. It is derived on demand and never persisted.
type UserStats struct {
	TotalPlants    int
	NeedWater      int
	CareReminders  int
	AITipsThisWeek int
}
