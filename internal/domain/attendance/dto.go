package attendance

import "github.com/protrack-ops/floor-backend-go/internal/pkg/validator"

// SetRequest upserts one (employee, date) attendance record. Omitting
// attachment_url preserves any previously attached proof image.
type SetRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Status        Status  `json:"status"`
	Date          string  `json:"date"` // YYYY-MM-DD
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

func (r *SetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "unknown attendance status",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Summary is the day-level headline block.
type Summary struct {
	Date    string `json:"date"`
	Total   int    `json:"total"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Others  int    `json:"others"`
	Percent int    `json:"percent"`
}

// SupervisorSummary is the per-leader slice of a day's attendance.
type SupervisorSummary struct {
	LeaderID   string `json:"leader_id"`
	LeaderName string `json:"leader_name"`
	Present    int    `json:"present"`
	Total      int    `json:"total"`
}

// RosterRow joins an employee with their record for the requested date.
// Status is "absent" when no record exists; the same default the summary
// counts with, so the two surfaces never disagree.
type RosterRow struct {
	EmployeeID     string  `json:"employee_id"`
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	Role           *string `json:"role,omitempty"`
	SupervisorID   *string `json:"supervisor_id,omitempty"`
	SupervisorName string  `json:"supervisor_name"`
	Status         Status  `json:"status"`
	AttachmentURL  *string `json:"attachment_url,omitempty"`
	HasRecord      bool    `json:"has_record"`
}

// RosterFilter filters and orders the day roster.
type RosterFilter struct {
	Date         string
	Search       string  // matches name substring (case-insensitive) or id substring
	SupervisorID *string // nil means all supervisors
	SortBy       string  // id | name | status
	SortOrder    string  // asc | desc
}

func (f *RosterFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(f.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"id", "name", "status"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of id, name, status",
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
