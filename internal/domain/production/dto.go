package production

import (
	"fmt"

	"github.com/protrack-ops/floor-backend-go/internal/pkg/validator"
)

// CreateEntryRequest is the payload for saving one line's shift report.
// Totals are never taken from the client; they are recomputed server-side.
type CreateEntryRequest struct {
	Shift           Shift         `json:"shift"`
	Date            string        `json:"date"` // YYYY-MM-DD, defaults to today
	LineID          Line          `json:"line_id"`
	LeaderID        string        `json:"leader_id"`
	HourlyData      []HourlyEntry `json:"hourly_data"`
	DowntimeMinutes *int          `json:"downtime_minutes,omitempty"`
	DowntimeReason  *string       `json:"downtime_reason,omitempty"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Shift.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of Morning, Evening, Night",
		})
	}

	if !r.LineID.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "line_id",
			Message: "line_id must be one of Line 1, Line 2, Line 3",
		})
	}

	if validator.IsEmpty(r.LeaderID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leader_id",
			Message: "leader_id is required",
		})
	}

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(r.HourlyData) != HoursPerShift {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_data",
			Message: fmt.Sprintf("hourly_data must contain exactly %d entries", HoursPerShift),
		})
	} else {
		for i, h := range r.HourlyData {
			if h.Hour != i+1 {
				errs = append(errs, validator.ValidationError{
					Field:   fmt.Sprintf("hourly_data[%d].hour", i),
					Message: fmt.Sprintf("hour must be %d", i+1),
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EntryResponse is the API shape of a saved entry.
type EntryResponse struct {
	ID              string        `json:"id"`
	Shift           Shift         `json:"shift"`
	Date            string        `json:"date"`
	LineID          Line          `json:"line_id"`
	LeaderID        string        `json:"leader_id"`
	LeaderName      string        `json:"leader_name"`
	HourlyData      []HourlyEntry `json:"hourly_data"`
	TotalOutput     int           `json:"total_output"`
	TotalTarget     int           `json:"total_target"`
	TotalRejects    int           `json:"total_rejects"`
	Efficiency      int           `json:"efficiency"`
	DowntimeMinutes *int          `json:"downtime_minutes,omitempty"`
	DowntimeReason  *string       `json:"downtime_reason,omitempty"`
}
