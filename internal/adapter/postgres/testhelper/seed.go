package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with default profile values.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.NewUser(uuid.New(), now)
	email := "gardener-" + uniqueSuffix() + "@example.com"
	user.Email = &email

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, experience_level, garden_type, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, email, string(user.ExperienceLevel), string(user.GardenType), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedPlant creates a never-watered plant with the given cadence and creation time.
// next_watering is stored as createdAt + frequencyDays.
func SeedPlant(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, frequencyDays int, createdAt time.Time) domain.Plant {
	t.Helper()

	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	next := createdAt.AddDate(0, 0, frequencyDays)
	p := domain.Plant{
		ID:                    uuid.New(),
		UserID:                userID,
		Name:                  "Plant " + uniqueSuffix(),
		Category:              domain.PlantCategoryHerb,
		Location:              domain.PlantLocationIndoor,
		WateringFrequencyDays: frequencyDays,
		NextWatering:          &next,
		Status:                domain.PlantStatusHealthy,
		CreatedAt:             createdAt,
		UpdatedAt:             createdAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO plants (id, user_id, name, category, location, watering_frequency_days,
		                     next_watering, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.UserID, p.Name, string(p.Category), string(p.Location), p.WateringFrequencyDays,
		p.NextWatering, string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlant: %v", err)
	}

	return p
}
