package production

import "context"

// Service defines business logic for the production archive.
type Service interface {
	// Create saves one line's shift report, computing totals server-side.
	Create(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)

	Get(ctx context.Context, id string) (EntryResponse, error)

	List(ctx context.Context) ([]EntryResponse, error)

	Delete(ctx context.Context, id string) error

	// ClearArchive deletes every saved entry.
	ClearArchive(ctx context.Context) error
}
