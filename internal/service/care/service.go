// Package care implements care event logging and scheduling.
package care

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

type eventRepo interface {
	Create(ctx context.Context, e *domain.CareEvent) (*domain.CareEvent, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.CareEvent, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.CareEventFilter) ([]domain.CareEvent, error)
	ListUpcoming(ctx context.Context, userID uuid.UUID, now time.Time) ([]domain.CareEvent, error)
	ListIncomplete(ctx context.Context, userID uuid.UUID) ([]domain.CareEvent, error)
	Update(ctx context.Context, e *domain.CareEvent) (*domain.CareEvent, error)
	MarkCompleted(ctx context.Context, userID, id uuid.UUID) (*domain.CareEvent, error)
}

// plantRepo is used to check that a referenced plant belongs to the user.
type plantRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Plant, error)
}

// Service implements care event operations.
type Service struct {
	log    *slog.Logger
	events eventRepo
	plants plantRepo
	clock  clockwork.Clock
}

// NewService creates a new care service.
func NewService(logger *slog.Logger, events eventRepo, plants plantRepo, clock clockwork.Clock) *Service {
	return &Service{
		log:    logger.With("service", "care"),
		events: events,
		plants: plants,
		clock:  clock,
	}
}
