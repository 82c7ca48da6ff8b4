package leader

import (
	"github.com/protrack-ops/floor-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	Email         string  `json:"email"`
	SerialNumber  string  `json:"serial_number"`
	WhatsApp      *string `json:"whatsapp,omitempty"`
	WhatsAppGroup *string `json:"whatsapp_group,omitempty"`
	GroupEmail    *string `json:"group_email,omitempty"`
	ImageURL      string  `json:"image_url"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidSerialNumber(r.SerialNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "serial_number",
			Message: "serial number must be 3-20 letters or digits",
		})
	}

	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRequest carries a partial update. Nil fields are left untouched.
type UpdateRequest struct {
	Name          *string `json:"name,omitempty"`
	Role          *string `json:"role,omitempty"`
	Email         *string `json:"email,omitempty"`
	SerialNumber  *string `json:"serial_number,omitempty"`
	WhatsApp      *string `json:"whatsapp,omitempty"`
	WhatsAppGroup *string `json:"whatsapp_group,omitempty"`
	GroupEmail    *string `json:"group_email,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be blank",
		})
	}

	if r.SerialNumber != nil && !validator.IsValidSerialNumber(*r.SerialNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "serial_number",
			Message: "serial number must be 3-20 letters or digits",
		})
	}

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SuspendRequest moves a leader to on_leave or stopped.
type SuspendRequest struct {
	Status     string  `json:"status"`
	Reason     string  `json:"reason"`
	ReturnDate *string `json:"return_date,omitempty"` // YYYY-MM-DD
}

func (r *SuspendRequest) Validate() error {
	var errs validator.ValidationErrors

	switch Status(r.Status) {
	case StatusOnLeave, StatusStopped:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be on_leave or stopped",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.ReturnDate != nil {
		if _, ok := validator.IsValidDate(*r.ReturnDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "return_date",
				Message: "return date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PortraitRequest submits a new portrait for background enhancement.
type PortraitRequest struct {
	ImageData string `json:"image_data"` // base64 payload, no data URI prefix
	MimeType  string `json:"mime_type"`
}

func (r *PortraitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ImageData) {
		errs = append(errs, validator.ValidationError{
			Field:   "image_data",
			Message: "image data is required",
		})
	}

	if !validator.IsInSlice(r.MimeType, []string{"image/jpeg", "image/png", "image/webp"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "mime_type",
			Message: "mime type must be image/jpeg, image/png or image/webp",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter filters and orders the leader roster.
type ListFilter struct {
	Search    string // matches leader name substring (case-insensitive)
	SortBy    string // name | status
	SortOrder string // asc | desc
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"name", "status"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be name or status",
		})
	}

	if f.SortOrder != "" && !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PerformanceResponse pairs a leader with their computed metrics.
type PerformanceResponse struct {
	Leader  TeamLeader `json:"leader"`
	Metrics Metrics    `json:"metrics"`
}

// PerformanceFilter filters and orders the performance leaderboard.
type PerformanceFilter struct {
	Search    string // matches leader name substring (case-insensitive)
	SortBy    string // name | shifts | efficiency | rating
	SortOrder string // asc | desc
}

func (f *PerformanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"name", "shifts", "efficiency", "rating"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of name, shifts, efficiency, rating",
		})
	}

	if f.SortOrder != "" && !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
