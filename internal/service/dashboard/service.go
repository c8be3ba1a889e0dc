// Package dashboard computes the per-user dashboard summary.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"github.com/heartmarshall/greenthumb-backend/internal/service/schedule"
	"github.com/heartmarshall/greenthumb-backend/pkg/ctxutil"
)

type plantRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Plant, error)
}

type eventRepo interface {
	ListIncomplete(ctx context.Context, userID uuid.UUID) ([]domain.CareEvent, error)
}

type tipRepo interface {
	ListCreatedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.AITip, error)
}

type txManager interface {
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the dashboard stats query.
type Service struct {
	log    *slog.Logger
	plants plantRepo
	events eventRepo
	tips   tipRepo
	tx     txManager
	clock  clockwork.Clock
}

// NewService creates a new dashboard service.
func NewService(
	logger *slog.Logger,
	plants plantRepo,
	events eventRepo,
	tips tipRepo,
	tx txManager,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:    logger.With("service", "dashboard"),
		plants: plants,
		events: events,
		tips:   tips,
		tx:     tx,
		clock:  clock,
	}
}

// GetStats returns the authenticated user's dashboard counters.
func (s *Service) GetStats(ctx context.Context) (domain.UserStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.UserStats{}, domain.ErrUnauthorized
	}
	return s.StatsFor(ctx, userID)
}

// StatsFor computes the counters for userID at the current instant.
// All three collections are read from one consistent snapshot.
func (s *Service) StatsFor(ctx context.Context, userID uuid.UUID) (domain.UserStats, error) {
	now := s.clock.Now()

	var (
		plants []domain.Plant
		events []domain.CareEvent
		tips   []domain.AITip
	)
	err := s.tx.RunInSnapshot(ctx, func(ctx context.Context) error {
		var err error
		if plants, err = s.plants.ListByUser(ctx, userID); err != nil {
			return fmt.Errorf("list plants: %w", err)
		}
		if events, err = s.events.ListIncomplete(ctx, userID); err != nil {
			return fmt.Errorf("list care events: %w", err)
		}
		if tips, err = s.tips.ListCreatedSince(ctx, userID, schedule.TipWindowStart(now)); err != nil {
			return fmt.Errorf("list tips: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("dashboard.GetStats: %w", err)
	}

	stats := schedule.ComputeUserStats(plants, events, tips, now)

	s.log.DebugContext(ctx, "stats computed",
		slog.String("user_id", userID.String()),
		slog.Int("total_plants", stats.TotalPlants),
		slog.Int("need_water", stats.NeedWater))

	return stats, nil
}
