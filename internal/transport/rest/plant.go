package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"github.com/heartmarshall/greenthumb-backend/internal/service/plant"
	"github.com/heartmarshall/greenthumb-backend/internal/service/schedule"
)

type plantService interface {
	CreatePlant(ctx context.Context, input plant.CreatePlantInput) (*domain.Plant, error)
	GetPlant(ctx context.Context, id uuid.UUID) (*domain.Plant, error)
	ListPlants(ctx context.Context) ([]domain.Plant, error)
	ListNeedingWater(ctx context.Context) ([]domain.Plant, error)
	UpdatePlant(ctx context.Context, input plant.UpdatePlantInput) (*domain.Plant, error)
	DeletePlant(ctx context.Context, id uuid.UUID) error
	WaterPlant(ctx context.Context, id uuid.UUID) (*domain.Plant, error)
}

// PlantHandler serves /api/plants.
type PlantHandler struct {
	svc   plantService
	clock clockwork.Clock
	log   *slog.Logger
}

// NewPlantHandler creates a PlantHandler.
func NewPlantHandler(svc plantService, clock clockwork.Clock, logger *slog.Logger) *PlantHandler {
	return &PlantHandler{svc: svc, clock: clock, log: logger.With("handler", "plant")}
}

type plantRequest struct {
	Name              *string               `json:"name"`
	Category          *domain.PlantCategory `json:"category"`
	Variety           *string               `json:"variety"`
	Location          *domain.PlantLocation `json:"location"`
	PlantedDate       *time.Time            `json:"plantedDate"`
	Notes             *string               `json:"notes"`
	ImageURL          *string               `json:"imageUrl"`
	WateringFrequency *int                  `json:"wateringFrequency"`
	LastWatered       *time.Time            `json:"lastWatered"`
	Status            *domain.PlantStatus   `json:"status"`
}

type plantResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Variety           *string    `json:"variety"`
	Location          string     `json:"location"`
	PlantedDate       *time.Time `json:"plantedDate"`
	Notes             *string    `json:"notes"`
	ImageURL          *string    `json:"imageUrl"`
	WateringFrequency int        `json:"wateringFrequency"`
	LastWatered       *time.Time `json:"lastWatered"`
	NextWatering      *time.Time `json:"nextWatering"`
	Status            string     `json:"status"`
	DisplayStatus     string     `json:"displayStatus"`
	IsOverdue         bool       `json:"isOverdue"`
	DaysUntilWatering *int       `json:"daysUntilWatering"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// List handles GET /api/plants.
func (h *PlantHandler) List(w http.ResponseWriter, r *http.Request) {
	plants, err := h.svc.ListPlants(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toPlantList(plants))
}

// NeedingWater handles GET /api/plants/needing-water.
func (h *PlantHandler) NeedingWater(w http.ResponseWriter, r *http.Request) {
	plants, err := h.svc.ListNeedingWater(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toPlantList(plants))
}

// Get handles GET /api/plants/{id}.
func (h *PlantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := h.svc.GetPlant(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlantResponse(*p, h.clock.Now()))
}

// Create handles POST /api/plants.
func (h *PlantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req plantRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := plant.CreatePlantInput{
		Variety:               req.Variety,
		PlantedDate:           req.PlantedDate,
		Notes:                 req.Notes,
		ImageURL:              req.ImageURL,
		WateringFrequencyDays: req.WateringFrequency,
		LastWatered:           req.LastWatered,
		Status:                req.Status,
	}
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Category != nil {
		input.Category = *req.Category
	}
	if req.Location != nil {
		input.Location = *req.Location
	}

	p, err := h.svc.CreatePlant(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPlantResponse(*p, h.clock.Now()))
}

// Update handles PUT and PATCH /api/plants/{id}. Both are partial edits.
func (h *PlantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req plantRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.UpdatePlant(r.Context(), plant.UpdatePlantInput{
		ID:                    id,
		Name:                  req.Name,
		Category:              req.Category,
		Variety:               req.Variety,
		Location:              req.Location,
		PlantedDate:           req.PlantedDate,
		Notes:                 req.Notes,
		ImageURL:              req.ImageURL,
		WateringFrequencyDays: req.WateringFrequency,
		LastWatered:           req.LastWatered,
		Status:                req.Status,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlantResponse(*p, h.clock.Now()))
}

// Delete handles DELETE /api/plants/{id}.
func (h *PlantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.DeletePlant(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Water handles POST /api/plants/{id}/water.
func (h *PlantHandler) Water(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := h.svc.WaterPlant(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlantResponse(*p, h.clock.Now()))
}

// toPlantList projects every plant against one instant.
func (h *PlantHandler) toPlantList(plants []domain.Plant) []plantResponse {
	now := h.clock.Now()
	out := make([]plantResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, toPlantResponse(p, now))
	}
	return out
}

func toPlantResponse(p domain.Plant, now time.Time) plantResponse {
	proj := schedule.Project(p, now)
	return plantResponse{
		ID:                p.ID.String(),
		Name:              p.Name,
		Category:          string(p.Category),
		Variety:           p.Variety,
		Location:          string(p.Location),
		PlantedDate:       p.PlantedDate,
		Notes:             p.Notes,
		ImageURL:          p.ImageURL,
		WateringFrequency: p.WateringFrequencyDays,
		LastWatered:       p.LastWatered,
		NextWatering:      p.NextWatering,
		Status:            string(p.Status),
		DisplayStatus:     string(proj.DisplayStatus),
		IsOverdue:         proj.Overdue,
		DaysUntilWatering: proj.DaysUntilWatering,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
