package production

// Shift is one of the three fixed daily work periods.
type Shift string

const (
	ShiftMorning Shift = "Morning"
	ShiftEvening Shift = "Evening"
	ShiftNight   Shift = "Night"
)

// Shifts lists all shifts in chronological order.
var Shifts = []Shift{ShiftMorning, ShiftEvening, ShiftNight}

func (s Shift) Valid() bool {
	switch s {
	case ShiftMorning, ShiftEvening, ShiftNight:
		return true
	}
	return false
}

// ShiftTimes maps each shift to its wall-clock window, used in reminders.
var ShiftTimes = map[Shift]string{
	ShiftMorning: "06:00 - 14:00",
	ShiftEvening: "14:00 - 22:00",
	ShiftNight:   "22:00 - 06:00",
}

// Line is one of the three fixed production lines.
type Line string

const (
	Line1 Line = "Line 1"
	Line2 Line = "Line 2"
	Line3 Line = "Line 3"
)

var Lines = []Line{Line1, Line2, Line3}

func (l Line) Valid() bool {
	switch l {
	case Line1, Line2, Line3:
		return true
	}
	return false
}

// HoursPerShift is the fixed length of the hourly grid.
const HoursPerShift = 8

// HourlyEntry is one row of the hourly grid, owned by its parent Entry.
type HourlyEntry struct {
	Hour      int    `json:"hour"`
	Reference string `json:"reference"`
	Target    int    `json:"target"`
	Actual    int    `json:"actual"`
	Rejects   int    `json:"rejects"`
	Note      string `json:"note"`
}

// Entry is a saved shift/line production report. Entries are immutable once
// created; totals and efficiency are derived from HourlyData at save time.
type Entry struct {
	ID              string        `json:"id"`
	Shift           Shift         `json:"shift"`
	Date            string        `json:"date"`
	LineID          Line          `json:"lineId"`
	LeaderID        string        `json:"leaderId"`
	HourlyData      []HourlyEntry `json:"hourlyData"`
	TotalOutput     int           `json:"totalOutput"`
	TotalTarget     int           `json:"totalTarget"`
	TotalRejects    int           `json:"totalRejects"`
	Efficiency      int           `json:"efficiency"`
	DowntimeMinutes *int          `json:"downtimeMinutes,omitempty"`
	DowntimeReason  *string       `json:"downtimeReason,omitempty"`
}
