package care

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"github.com/heartmarshall/greenthumb-backend/pkg/ctxutil"
)

// CreateEvent logs a completed care action or schedules a future one.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.CareEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.checkPlant(ctx, userID, input.PlantID); err != nil {
		return nil, fmt.Errorf("care.CreateEvent: %w", err)
	}

	e := &domain.CareEvent{
		ID:        uuid.New(),
		UserID:    userID,
		PlantID:   input.PlantID,
		EventType: input.EventType,
		EventDate: input.EventDate,
		Completed: input.Completed,
		Notes:     input.Notes,
		CreatedAt: s.clock.Now(),
	}

	created, err := s.events.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("care.CreateEvent: %w", err)
	}

	s.log.InfoContext(ctx, "care event created",
		slog.String("user_id", userID.String()),
		slog.String("event_id", created.ID.String()),
		slog.String("event_type", created.EventType.String()),
		slog.Bool("completed", created.Completed))

	return created, nil
}

// UpdateEvent edits a scheduled event. Completed events are history and
// return domain.ErrConflict.
func (s *Service) UpdateEvent(ctx context.Context, input UpdateEventInput) (*domain.CareEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	e, err := s.events.GetByID(ctx, userID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("care.UpdateEvent: %w", err)
	}
	if e.Completed {
		return nil, fmt.Errorf("care.UpdateEvent: event is completed: %w", domain.ErrConflict)
	}

	if input.PlantID != nil {
		if err := s.checkPlant(ctx, userID, input.PlantID); err != nil {
			return nil, fmt.Errorf("care.UpdateEvent: %w", err)
		}
		e.PlantID = input.PlantID
	}
	if input.EventType != nil {
		e.EventType = *input.EventType
	}
	if input.EventDate != nil {
		e.EventDate = *input.EventDate
	}
	if input.Notes != nil {
		e.Notes = input.Notes
	}

	updated, err := s.events.Update(ctx, e)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("care.UpdateEvent: %w", err)
		}
		// Update only matches incomplete rows; the event was either completed
		// or deleted (plant cascade) since it was read.
		if _, getErr := s.events.GetByID(ctx, userID, input.ID); getErr != nil {
			return nil, fmt.Errorf("care.UpdateEvent: %w", getErr)
		}
		return nil, fmt.Errorf("care.UpdateEvent: event is completed: %w", domain.ErrConflict)
	}

	return updated, nil
}

// CompleteEvent marks a scheduled event as done. Completion is one-way.
func (s *Service) CompleteEvent(ctx context.Context, id uuid.UUID) (*domain.CareEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	completed, err := s.events.MarkCompleted(ctx, userID, id)
	if err == nil {
		s.log.InfoContext(ctx, "care event completed",
			slog.String("user_id", userID.String()),
			slog.String("event_id", id.String()))
		return completed, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("care.CompleteEvent: %w", err)
	}

	// MarkCompleted only matches incomplete rows; tell a missing event apart
	// from one that is already done.
	if _, getErr := s.events.GetByID(ctx, userID, id); getErr != nil {
		return nil, fmt.Errorf("care.CompleteEvent: %w", getErr)
	}
	return nil, fmt.Errorf("care.CompleteEvent: already completed: %w", domain.ErrConflict)
}

func (s *Service) checkPlant(ctx context.Context, userID uuid.UUID, plantID *uuid.UUID) error {
	if plantID == nil {
		return nil
	}
	if _, err := s.plants.GetByID(ctx, userID, *plantID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("plant_id", "plant not found")
		}
		return err
	}
	return nil
}
