package inventory

import "github.com/protrack-ops/floor-backend-go/internal/pkg/validator"

type UpsertRequest struct {
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	Unit         string `json:"unit"`
	MinThreshold int    `json:"min_threshold"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity cannot be negative",
		})
	}

	if r.MinThreshold < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_threshold",
			Message: "min threshold cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ItemResponse decorates an item with its derived stock state.
type ItemResponse struct {
	Item
	LowStock bool `json:"lowStock"`
}
