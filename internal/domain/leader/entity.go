package leader

// Status is a team leader's availability state. Transitions are
// active -> on_leave -> active and active -> stopped -> active; reactivation
// happens by explicit action or automatically once ReturnDate passes.
type Status string

const (
	StatusActive  Status = "active"
	StatusOnLeave Status = "on_leave"
	StatusStopped Status = "stopped"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusStopped:
		return true
	}
	return false
}

// TeamLeader is a shift supervisor. SerialNumber is the sole login
// credential and is unique across the roster.
type TeamLeader struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Email          string  `json:"email"`
	SerialNumber   string  `json:"serialNumber"`
	WhatsApp       *string `json:"whatsapp,omitempty"`
	WhatsAppGroup  *string `json:"whatsappGroup,omitempty"`
	GroupEmail     *string `json:"groupEmail,omitempty"`
	ImageURL       string  `json:"imageUrl"`
	Status         Status  `json:"status"`
	StoppageReason *string `json:"stoppageReason,omitempty"`
	ReturnDate     *string `json:"returnDate,omitempty"` // YYYY-MM-DD
}
