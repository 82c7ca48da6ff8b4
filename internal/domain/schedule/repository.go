package schedule

import "context"

type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	// GetCell returns the entry occupying (date, shift), nil when the slot
	// is free.
	GetCell(ctx context.Context, date, shift string) (*Entry, error)
	// Upsert places the entry in its cell, replacing any occupant. The
	// one-entry-per-cell invariant lives here.
	Upsert(ctx context.Context, e *Entry) error
	DeleteCell(ctx context.Context, date, shift string) error
}
