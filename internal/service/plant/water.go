package plant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"github.com/heartmarshall/greenthumb-backend/internal/service/schedule"
	"github.com/heartmarshall/greenthumb-backend/pkg/ctxutil"
)

// wateredNote is attached to the care event logged by WaterPlant.
const wateredNote = "Plant watered"

// WaterPlant records a watering at the current time: LastWatered becomes now,
// NextWatering is recomputed, the stored status is reset to healthy and a
// completed watering event is logged. The row is locked for the whole
// transition so concurrent waterings of one plant serialize.
func (s *Service) WaterPlant(ctx context.Context, id uuid.UUID) (*domain.Plant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var watered *domain.Plant
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.plants.GetByIDForUpdate(ctx, userID, id)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if err := schedule.WaterNow(p, now); err != nil {
			return err
		}

		watered, err = s.plants.UpdateCareState(ctx, userID, id, domain.CareStateUpdate{
			LastWatered:  p.LastWatered,
			NextWatering: p.NextWatering,
			Status:       p.Status,
			UpdatedAt:    p.UpdatedAt,
		})
		if err != nil {
			return err
		}

		note := wateredNote
		_, err = s.events.Create(ctx, &domain.CareEvent{
			ID:        uuid.New(),
			UserID:    userID,
			PlantID:   &id,
			EventType: domain.CareEventWatering,
			EventDate: now,
			Completed: true,
			Notes:     &note,
			CreatedAt: now,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("plant.WaterPlant: %w", err)
	}

	s.log.InfoContext(ctx, "plant watered",
		slog.String("user_id", userID.String()),
		slog.String("plant_id", id.String()),
		slog.Time("next_watering", *watered.NextWatering))

	return watered, nil
}
