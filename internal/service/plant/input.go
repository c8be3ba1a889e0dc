package plant

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/greenthumb-backend/internal/domain"
)

const (
	maxNameLen = 100
	maxTextLen = 2000
	maxURLLen  = 2048
	maxVariety = 100
)

// CreatePlantInput holds parameters for plant creation.
// WateringFrequencyDays nil means the configured default.
type CreatePlantInput struct {
	Name                  string
	Category              domain.PlantCategory
	Variety               *string
	Location              domain.PlantLocation
	PlantedDate           *time.Time
	Notes                 *string
	ImageURL              *string
	WateringFrequencyDays *int
	LastWatered           *time.Time
	Status                *domain.PlantStatus
}

// Validate validates the create plant input.
// The watering cadence is checked by the scheduler, not here.
func (i CreatePlantInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)

	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
	}
	if !i.Location.IsValid() {
		errs = append(errs, domain.FieldError{Field: "location", Message: "invalid value"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	errs = validateOptional(errs, i.Variety, i.Notes, i.ImageURL)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdatePlantInput holds parameters for a partial plant edit.
// nil fields are left unchanged.
type UpdatePlantInput struct {
	ID                    uuid.UUID
	Name                  *string
	Category              *domain.PlantCategory
	Variety               *string
	Location              *domain.PlantLocation
	PlantedDate           *time.Time
	Notes                 *string
	ImageURL              *string
	WateringFrequencyDays *int
	LastWatered           *time.Time
	Status                *domain.PlantStatus
}

// Validate validates the update plant input.
func (i UpdatePlantInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
	}
	if i.Location != nil && !i.Location.IsValid() {
		errs = append(errs, domain.FieldError{Field: "location", Message: "invalid value"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	errs = validateOptional(errs, i.Variety, i.Notes, i.ImageURL)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// reschedules reports whether the edit touches the schedule inputs.
func (i UpdatePlantInput) reschedules() bool {
	return i.WateringFrequencyDays != nil || i.LastWatered != nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len([]rune(name)) > maxNameLen {
		return append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	return errs
}

func validateOptional(errs []domain.FieldError, variety, notes, imageURL *string) []domain.FieldError {
	if variety != nil && len(*variety) > maxVariety {
		errs = append(errs, domain.FieldError{Field: "variety", Message: "too long"})
	}
	if notes != nil && len(*notes) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}
	if imageURL != nil && len(*imageURL) > maxURLLen {
		errs = append(errs, domain.FieldError{Field: "image_url", Message: "too long"})
	}
	return errs
}
