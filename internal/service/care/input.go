package care

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

const maxNotesLen = 2000

// CreateEventInput holds parameters for logging or scheduling a care event.
// A nil PlantID records a garden-wide event.
type CreateEventInput struct {
	PlantID   *uuid.UUID
	EventType domain.CareEventType
	EventDate time.Time
	Completed bool
	Notes     *string
}

// Validate validates the create event input.
func (i CreateEventInput) Validate() error {
	var errs []domain.FieldError

	if !i.EventType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "event_type", Message: "invalid value"})
	}
	if i.EventDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "event_date", Message: "required"})
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateEventInput holds a partial edit of an incomplete event.
type UpdateEventInput struct {
	ID        uuid.UUID
	PlantID   *uuid.UUID
	EventType *domain.CareEventType
	EventDate *time.Time
	Notes     *string
}

// Validate validates the update event input.
func (i UpdateEventInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.EventType != nil && !i.EventType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "event_type", Message: "invalid value"})
	}
	if i.EventDate != nil && i.EventDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "event_date", Message: "required"})
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
