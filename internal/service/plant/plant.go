package plant

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
	"github.com/heartmarshall/greenthumb-backend/internal/service/schedule"
	"github.com/heartmarshall/greenthumb-backend/pkg/ctxutil"
)

// CreatePlant registers a plant for the authenticated user and computes its
// first watering from LastWatered, or from the creation time if never watered.
func (s *Service) CreatePlant(ctx context.Context, input CreatePlantInput) (*domain.Plant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now()
	p := domain.Plant{
		ID:                    uuid.New(),
		UserID:                userID,
		Name:                  input.Name,
		Category:              input.Category,
		Variety:               input.Variety,
		Location:              input.Location,
		PlantedDate:           input.PlantedDate,
		Notes:                 input.Notes,
		ImageURL:              input.ImageURL,
		WateringFrequencyDays: s.defaultWateringDays,
		LastWatered:           input.LastWatered,
		Status:                domain.PlantStatusHealthy,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if input.WateringFrequencyDays != nil {
		p.WateringFrequencyDays = *input.WateringFrequencyDays
	}
	if input.Status != nil {
		p.Status = *input.Status
	}

	if err := schedule.Reschedule(&p); err != nil {
		return nil, fmt.Errorf("plant.CreatePlant: %w", err)
	}

	created, err := s.plants.Create(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("plant.CreatePlant: %w", err)
	}

	s.log.InfoContext(ctx, "plant created",
		slog.String("user_id", userID.String()),
		slog.String("plant_id", created.ID.String()),
		slog.Int("watering_frequency_days", created.WateringFrequencyDays))

	return created, nil
}

// GetPlant returns one of the authenticated user's plants.
func (s *Service) GetPlant(ctx context.Context, id uuid.UUID) (*domain.Plant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.plants.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("plant.GetPlant: %w", err)
	}
	return p, nil
}

// ListPlants returns the authenticated user's plants, newest first.
func (s *Service) ListPlants(ctx context.Context) ([]domain.Plant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	plants, err := s.plants.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("plant.ListPlants: %w", err)
	}
	return plants, nil
}

// ListNeedingWater returns the user's overdue plants, most overdue first.
func (s *Service) ListNeedingWater(ctx context.Context) ([]domain.Plant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	plants, err := s.plants.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("plant.ListNeedingWater: %w", err)
	}

	now := s.clock.Now()
	overdue := make([]domain.Plant, 0, len(plants))
	for _, p := range plants {
		if schedule.IsOverdue(p.NextWatering, now) {
			overdue = append(overdue, p)
		}
	}

	slices.SortStableFunc(overdue, func(a, b domain.Plant) int {
		return cmp.Compare(a.NextWatering.UnixNano(), b.NextWatering.UnixNano())
	})

	return overdue, nil
}

// UpdatePlant applies a partial edit. A cadence or last-watered change
// recomputes NextWatering from the plant's reference time, which is its
// creation time when it has never been watered.
func (s *Service) UpdatePlant(ctx context.Context, input UpdatePlantInput) (*domain.Plant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.Plant
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.plants.GetByIDForUpdate(ctx, userID, input.ID)
		if err != nil {
			return err
		}

		applyUpdate(p, input)

		if input.reschedules() {
			if err := schedule.Reschedule(p); err != nil {
				return err
			}
		}
		p.UpdatedAt = s.clock.Now()

		updated, err = s.plants.Update(ctx, p)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("plant.UpdatePlant: %w", err)
	}

	s.log.InfoContext(ctx, "plant updated",
		slog.String("user_id", userID.String()),
		slog.String("plant_id", input.ID.String()),
		slog.Bool("rescheduled", input.reschedules()))

	return updated, nil
}

// DeletePlant removes a plant together with its care events.
func (s *Service) DeletePlant(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.plants.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("plant.DeletePlant: %w", err)
	}

	s.log.InfoContext(ctx, "plant deleted",
		slog.String("user_id", userID.String()),
		slog.String("plant_id", id.String()))

	return nil
}

func applyUpdate(p *domain.Plant, input UpdatePlantInput) {
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Variety != nil {
		p.Variety = input.Variety
	}
	if input.Location != nil {
		p.Location = *input.Location
	}
	if input.PlantedDate != nil {
		p.PlantedDate = input.PlantedDate
	}
	if input.Notes != nil {
		p.Notes = input.Notes
	}
	if input.ImageURL != nil {
		p.ImageURL = input.ImageURL
	}
	if input.WateringFrequencyDays != nil {
		p.WateringFrequencyDays = *input.WateringFrequencyDays
	}
	if input.LastWatered != nil {
		p.LastWatered = input.LastWatered
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
}
