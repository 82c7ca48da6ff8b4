package attendance

import "context"

// Service defines business logic for daily attendance.
type Service interface {
	// Set upserts the record for (employee, date). A status-only update
	// inherits the previously attached proof image.
	Set(ctx context.Context, req SetRequest) (Record, error)

	// Summarize computes the day's headline counts. Employees without a
	// record count as absent.
	Summarize(ctx context.Context, date string) (Summary, error)

	// SupervisorBreakdown computes present/total per team leader.
	SupervisorBreakdown(ctx context.Context, date string) ([]SupervisorSummary, error)

	// Roster lists employees with their status for the date, filtered and
	// sorted per the filter.
	Roster(ctx context.Context, filter RosterFilter) ([]RosterRow, error)
}
