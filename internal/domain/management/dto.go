package management

import "github.com/protrack-ops/floor-backend-go/internal/pkg/validator"

// UpdateRequest replaces a member's editable fields.
type UpdateRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Motto    string `json:"motto"`
	ImageURL string `json:"image_url"`
	Type     string `json:"type"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be director, coordinator or shift_chief",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
