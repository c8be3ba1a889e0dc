package user

import "github.com/heartmarshall/greenthumb-backend/internal/domain"

// UpdateProfileInput holds parameters for profile update operation.
// All fields are optional (nil = don't change).
type UpdateProfileInput struct {
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	Location        *string
	ExperienceLevel *domain.ExperienceLevel
	GardenType      *domain.PlantLocation
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Email != nil && len(*i.Email) > 255 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if i.FirstName != nil && len(*i.FirstName) > 255 {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if i.LastName != nil && len(*i.LastName) > 255 {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}
	if i.ProfileImageURL != nil && len(*i.ProfileImageURL) > 2048 {
		errs = append(errs, domain.FieldError{Field: "profile_image_url", Message: "too long"})
	}
	if i.Location != nil && len(*i.Location) > 255 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "too long"})
	}
	if i.ExperienceLevel != nil && !i.ExperienceLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "experience_level", Message: "invalid value"})
	}
	if i.GardenType != nil && !i.GardenType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "garden_type", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProfileInput) apply(u *domain.User) {
	if i.Email != nil {
		u.Email = i.Email
	}
	if i.FirstName != nil {
		u.FirstName = i.FirstName
	}
	if i.LastName != nil {
		u.LastName = i.LastName
	}
	if i.ProfileImageURL != nil {
		u.ProfileImageURL = i.ProfileImageURL
	}
	if i.Location != nil {
		u.Location = i.Location
	}
	if i.ExperienceLevel != nil {
		u.ExperienceLevel = *i.ExperienceLevel
	}
	if i.GardenType != nil {
		u.GardenType = *i.GardenType
	}
}
