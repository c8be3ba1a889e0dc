package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated gardener with a garden profile.
type User struct {
	ID              uuid.UUID
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	Location        *string
	ExperienceLevel ExperienceLevel
	GardenType      PlantLocation
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser returns a User with the profile defaults applied.
func NewUser(id uuid.UUID, now time.Time) User {
	return User{
		ID:              id,
		ExperienceLevel: ExperienceBeginner,
		GardenType:      PlantLocationOutdoor,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
