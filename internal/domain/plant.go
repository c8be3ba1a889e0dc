package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultWateringFrequencyDays is used when a plant is created without a cadence.
const DefaultWateringFrequencyDays = 3

// Plant is a tracked specimen owned by one user.
//
// NextWatering is derived: (LastWatered or CreatedAt) + WateringFrequencyDays
// calendar days. Status is the user-settable stored override; the status shown
// to the user is computed by schedule.ResolveDisplayStatus.
type Plant struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Category    PlantCategory
	Variety     *string
	Location    PlantLocation
	PlantedDate *time.Time
	Notes       *string
	ImageURL    *string

	WateringFrequencyDays int
	LastWatered           *time.Time
	NextWatering          *time.Time
	Status                PlantStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CareStateUpdate holds the schedule fields written by the water-now transition.
type CareStateUpdate struct {
	LastWatered  *time.Time
	NextWatering *time.Time
	Status       PlantStatus
	UpdatedAt    time.Time
}
