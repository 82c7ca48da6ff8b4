package attendance

import "context"

// Repository defines data access for attendance records.
type Repository interface {
	// Get retrieves the record for an (employee, date) pair, nil when the
	// employee has no record for that date.
	Get(ctx context.Context, employeeID, date string) (*Record, error)

	ListByDate(ctx context.Context, date string) ([]Record, error)

	// Upsert replaces the record for (record.EmployeeID, record.Date),
	// inserting when none exists. The one-record-per-pair invariant lives
	// here.
	Upsert(ctx context.Context, record Record) error
}
