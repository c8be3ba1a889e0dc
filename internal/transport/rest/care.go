package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"github.com/heartmarshall/greenthumb-backend/internal/service/care"
)

type careService interface {
	CreateEvent(ctx context.Context, input care.CreateEventInput) (*domain.CareEvent, error)
	ListEvents(ctx context.Context, plantID *uuid.UUID) ([]domain.CareEvent, error)
	ListUpcoming(ctx context.Context) ([]domain.CareEvent, error)
	ListDue(ctx context.Context) ([]domain.CareEvent, error)
	UpdateEvent(ctx context.Context, input care.UpdateEventInput) (*domain.CareEvent, error)
	CompleteEvent(ctx context.Context, id uuid.UUID) (*domain.CareEvent, error)
}

// CareHandler serves /api/care-events.
type CareHandler struct {
	svc careService
	log *slog.Logger
}

// NewCareHandler creates a CareHandler.
func NewCareHandler(svc careService, logger *slog.Logger) *CareHandler {
	return &CareHandler{svc: svc, log: logger.With("handler", "care")}
}

type createEventRequest struct {
	PlantID   *uuid.UUID           `json:"plantId"`
	EventType domain.CareEventType `json:"eventType"`
	EventDate time.Time            `json:"eventDate"`
	Completed bool                 `json:"completed"`
	Notes     *string              `json:"notes"`
}

type updateEventRequest struct {
	PlantID   *uuid.UUID            `json:"plantId"`
	EventType *domain.CareEventType `json:"eventType"`
	EventDate *time.Time            `json:"eventDate"`
	Notes     *string               `json:"notes"`
}

type eventResponse struct {
	ID        string    `json:"id"`
	PlantID   *string   `json:"plantId"`
	EventType string    `json:"eventType"`
	EventDate time.Time `json:"eventDate"`
	Completed bool      `json:"completed"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// List handles GET /api/care-events with an optional ?plantId= filter.
func (h *CareHandler) List(w http.ResponseWriter, r *http.Request) {
	var plantID *uuid.UUID
	if raw := r.URL.Query().Get("plantId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid plantId")
			return
		}
		plantID = &id
	}

	events, err := h.svc.ListEvents(r.Context(), plantID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventList(events))
}

// Upcoming handles GET /api/care-events/upcoming.
func (h *CareHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListUpcoming(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventList(events))
}

// Due handles GET /api/care-events/due.
func (h *CareHandler) Due(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListDue(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventList(events))
}

// Create handles POST /api/care-events.
func (h *CareHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.svc.CreateEvent(r.Context(), care.CreateEventInput{
		PlantID:   req.PlantID,
		EventType: req.EventType,
		EventDate: req.EventDate,
		Completed: req.Completed,
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(*e))
}

// Update handles PATCH /api/care-events/{id}.
func (h *CareHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateEventRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.svc.UpdateEvent(r.Context(), care.UpdateEventInput{
		ID:        id,
		PlantID:   req.PlantID,
		EventType: req.EventType,
		EventDate: req.EventDate,
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(*e))
}

// Complete handles PUT /api/care-events/{id}/complete.
func (h *CareHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	e, err := h.svc.CompleteEvent(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(*e))
}

func toEventList(events []domain.CareEvent) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

func toEventResponse(e domain.CareEvent) eventResponse {
	resp := eventResponse{
		ID:        e.ID.String(),
		EventType: string(e.EventType),
		EventDate: e.EventDate,
		Completed: e.Completed,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
	if e.PlantID != nil {
		s := e.PlantID.String()
		resp.PlantID = &s
	}
	return resp
}
