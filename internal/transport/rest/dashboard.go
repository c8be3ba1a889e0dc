package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

type statsService interface {
	GetStats(ctx context.Context) (domain.UserStats, error)
}

// DashboardHandler serves /api/dashboard.
type DashboardHandler struct {
	svc statsService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc statsService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type statsResponse struct {
	TotalPlants    int `json:"totalPlants"`
	NeedWater      int `json:"needWater"`
	CareReminders  int `json:"careReminders"`
	AITipsThisWeek int `json:"aiTipsThisWeek"`
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		TotalPlants:    stats.TotalPlants,
		NeedWater:      stats.NeedWater,
		CareReminders:  stats.CareReminders,
		AITipsThisWeek: stats.AITipsThisWeek,
	})
}
