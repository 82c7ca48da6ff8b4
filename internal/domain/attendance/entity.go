package attendance

// Status is one of the attendance codes used on the floor. Beyond present and
// absent, the remaining codes are leave and mission categories that the
// summary lumps into a single "others" bucket.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// statuses holds every accepted code. The short codes come from the paper
// forms the dashboard replaced and are kept verbatim, casing included.
var statuses = map[Status]struct{}{
	StatusPresent: {},
	StatusAbsent:  {},
	"ctp":         {},
	"ctn":         {},
	"cr":          {},
	"crn":         {},
	"tl":          {},
	"et":          {},
	"TE":          {},
	"AP":          {},
	"MT":          {},
}

func (s Status) Valid() bool {
	_, ok := statuses[s]
	return ok
}

// Record marks one employee's status for one calendar date. At most one
// record exists per (employeeId, date) pair. A missing record means absent.
type Record struct {
	EmployeeID    string  `json:"employeeId"`
	Date          string  `json:"date"`
	Status        Status  `json:"status"`
	AttachmentURL *string `json:"attachmentUrl,omitempty"`
}
