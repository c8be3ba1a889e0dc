package domain

import (
	"time"

	"github.com/google/uuid"
)

// CareEvent is a logged or scheduled care action.
// A completed event is immutable history.
type CareEvent struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PlantID   *uuid.UUID
	EventType CareEventType
	EventDate time.Time
	Completed bool
	Notes     *string
	CreatedAt time.Time
}

// CareEventFilter narrows care event listings.
type CareEventFilter struct {
	PlantID *uuid.UUID
}
