package schedule

import (
	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/validator"
)

type AssignRequest struct {
	Date     string `json:"date"`
	Shift    string `json:"shift"`
	LeaderID string `json:"leader_id"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !production.Shift(r.Shift).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of Morning, Evening, Night",
		})
	}

	if validator.IsEmpty(r.LeaderID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leader_id",
			Message: "leader_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MoveRequest relocates the entry at the source cell to the target cell.
// The source entry is deleted and any entry at the target is replaced.
type MoveRequest struct {
	SrcDate  string `json:"src_date"`
	SrcShift string `json:"src_shift"`
	DstDate  string `json:"dst_date"`
	DstShift string `json:"dst_shift"`
}

func (r *MoveRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.SrcDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "src_date",
			Message: "src_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.DstDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "dst_date",
			Message: "dst_date must be in YYYY-MM-DD format",
		})
	}

	if !production.Shift(r.SrcShift).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "src_shift",
			Message: "src_shift must be one of Morning, Evening, Night",
		})
	}
	if !production.Shift(r.DstShift).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "dst_shift",
			Message: "dst_shift must be one of Morning, Evening, Night",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WeekResponse is the rolling planning window.
type WeekResponse struct {
	Dates   []string `json:"dates"`
	Entries []Entry  `json:"entries"`
}

// Reminder is a ready-to-send shift notification for one leader.
type Reminder struct {
	LeaderID     string `json:"leaderId"`
	LeaderName   string `json:"leaderName"`
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsappLink,omitempty"`
	MailtoLink   string `json:"mailtoLink,omitempty"`
}

// Broadcast is a day's full roster message for the leaders' group chat.
type Broadcast struct {
	Date         string `json:"date"`
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsappLink"`
}
