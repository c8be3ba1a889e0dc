package care

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"github.com/heartmarshall/greenthumb-backend/internal/service/schedule"
	"github.com/heartmarshall/greenthumb-backend/pkg/ctxutil"
)

// ListEvents returns the user's care history, newest first.
// A non-nil plantID restricts the list to that plant.
func (s *Service) ListEvents(ctx context.Context, plantID *uuid.UUID) ([]domain.CareEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.events.List(ctx, userID, domain.CareEventFilter{PlantID: plantID})
	if err != nil {
		return nil, fmt.Errorf("care.ListEvents: %w", err)
	}
	return events, nil
}

// ListUpcoming returns incomplete events dated now or later, soonest first.
func (s *Service) ListUpcoming(ctx context.Context) ([]domain.CareEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.events.ListUpcoming(ctx, userID, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("care.ListUpcoming: %w", err)
	}
	return events, nil
}

// ListDue returns incomplete events whose date has arrived, oldest first.
// These are the events counted as care reminders on the dashboard.
func (s *Service) ListDue(ctx context.Context) ([]domain.CareEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.events.ListIncomplete(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("care.ListDue: %w", err)
	}

	now := s.clock.Now()
	due := make([]domain.CareEvent, 0, len(events))
	for _, e := range events {
		if schedule.IsCareEventDue(e, now) {
			due = append(due, e)
		}
	}
	return due, nil
}
