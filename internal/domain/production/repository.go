package production

import "context"

// Repository defines data access for production entries. List order is
// most-recent-first: Create prepends.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)

	GetByID(ctx context.Context, id string) (Entry, error)

	// ListByLeader retrieves entries attributed to a leader, used for
	// performance metrics. Dangling leader ids are fine; the result is
	// simply empty.
	ListByLeader(ctx context.Context, leaderID string) ([]Entry, error)

	Create(ctx context.Context, entry Entry) (Entry, error)

	Delete(ctx context.Context, id string) error

	// DeleteAll clears the archive.
	DeleteAll(ctx context.Context) error
}
