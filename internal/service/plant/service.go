// Package plant implements plant CRUD and the water-now transition on top of
// the shared watering-schedule rules.
package plant

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

// plantRepo defines the plant persistence needed by the plant service.
type plantRepo interface {
	Create(ctx context.Context, p *domain.Plant) (*domain.Plant, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Plant, error)
	GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Plant, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Plant, error)
	Update(ctx context.Context, p *domain.Plant) (*domain.Plant, error)
	UpdateCareState(ctx context.Context, userID, id uuid.UUID, upd domain.CareStateUpdate) (*domain.Plant, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// careEventRepo records the watering event logged by WaterPlant.
type careEventRepo interface {
	Create(ctx context.Context, e *domain.CareEvent) (*domain.CareEvent, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements plant operations.
type Service struct {
	log                 *slog.Logger
	plants              plantRepo
	events              careEventRepo
	tx                  txManager
	clock               clockwork.Clock
	defaultWateringDays int
}

// NewService creates a new plant service.
// defaultWateringDays is applied to plants created without a cadence.
func NewService(
	logger *slog.Logger,
	plants plantRepo,
	events careEventRepo,
	tx txManager,
	clock clockwork.Clock,
	defaultWateringDays int,
) *Service {
	if defaultWateringDays <= 0 {
		defaultWateringDays = domain.DefaultWateringFrequencyDays
	}
	return &Service{
		log:                 logger.With("service", "plant"),
		plants:              plants,
		events:              events,
		tx:                  tx,
		clock:               clock,
		defaultWateringDays: defaultWateringDays,
	}
}
