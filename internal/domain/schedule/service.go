package schedule

import "context"

type Service interface {
	// Week returns the planning window from two days back to five days ahead
	// of the anchor date, with every entry falling inside it.
	Week(ctx context.Context, anchor string) (*WeekResponse, error)
	Assign(ctx context.Context, req *AssignRequest) (*Entry, error)
	// Move implements drag-and-drop: the source cell empties and the target
	// cell takes the moved assignment, replacing any occupant.
	Move(ctx context.Context, req *MoveRequest) (*Entry, error)
	Unassign(ctx context.Context, date, shift string) error
	// CellReminder builds the shift notification for the leader at a cell.
	CellReminder(ctx context.Context, date, shift string) (*Reminder, error)
	// DailyBroadcast builds the whole day's roster message for the group chat.
	DailyBroadcast(ctx context.Context, date string) (*Broadcast, error)
}
