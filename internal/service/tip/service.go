// Package tip generates, stores and curates AI gardening tips.
package tip

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

type tipRepo interface {
	Create(ctx context.Context, tip *domain.AITip) (*domain.AITip, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AITip, error)
	SetBookmark(ctx context.Context, userID, id uuid.UUID, bookmarked bool) (*domain.AITip, error)
	SetHelpful(ctx context.Context, userID, id uuid.UUID, helpful bool) (*domain.AITip, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type plantRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Plant, error)
}

// weatherSource supplies current conditions for the user's location.
type weatherSource interface {
	GetWeather(ctx context.Context, location string) (domain.WeatherReport, error)
}

// tipGenerator produces the tip text.
type tipGenerator interface {
	Generate(ctx context.Context, req domain.TipRequest) (*domain.GeneratedTip, error)
}

// Service implements tip operations.
type Service struct {
	log       *slog.Logger
	tips      tipRepo
	users     userRepo
	plants    plantRepo
	weather   weatherSource
	generator tipGenerator
	clock     clockwork.Clock
}

// NewService creates a new tip service. weather and generator may be nil:
// tips are then generated without weather context, or not at all.
func NewService(
	logger *slog.Logger,
	tips tipRepo,
	users userRepo,
	plants plantRepo,
	weather weatherSource,
	generator tipGenerator,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:       logger.With("service", "tip"),
		tips:      tips,
		users:     users,
		plants:    plants,
		weather:   weather,
		generator: generator,
		clock:     clock,
	}
}
