package schedule

import "github.com/protrack-ops/floor-backend-go/internal/domain/production"

// Entry assigns a leader to one shift slot. At most one entry occupies a
// (date, shift) cell; drag-and-drop moves delete the source entry and
// overwrite whatever held the target cell.
type Entry struct {
	ID       string           `json:"id"`
	LeaderID string           `json:"leaderId"`
	Date     string           `json:"date"` // YYYY-MM-DD
	Shift    production.Shift `json:"shift"`
}
