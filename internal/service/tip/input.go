package tip

import "github.com/heartmarshall/greenthumb-backend/internal/domain"

const maxHintLen = 100

// GenerateTipInput narrows the generated tip. Empty fields are filled from
// the user's profile and the current date.
type GenerateTipInput struct {
	Category   string
	Season     string
	SkillLevel string
}

// Validate validates the generate tip input.
func (i GenerateTipInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Category) > maxHintLen {
		errs = append(errs, domain.FieldError{Field: "category", Message: "too long"})
	}
	if len(i.Season) > maxHintLen {
		errs = append(errs, domain.FieldError{Field: "season", Message: "too long"})
	}
	if len(i.SkillLevel) > maxHintLen {
		errs = append(errs, domain.FieldError{Field: "skill_level", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
