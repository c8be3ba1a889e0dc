package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
	EnsureExists(ctx context.Context, u *domain.User) error
}

// Service implements garden profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	clock clockwork.Clock
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, clock clockwork.Clock) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		clock: clock,
	}
}
