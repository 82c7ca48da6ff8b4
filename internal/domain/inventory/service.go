package inventory

import "context"

type Service interface {
	// List returns all items, or only those below threshold when lowOnly.
	List(ctx context.Context, lowOnly bool) ([]ItemResponse, error)
	Get(ctx context.Context, id string) (*ItemResponse, error)
	Create(ctx context.Context, req *UpsertRequest) (*ItemResponse, error)
	Update(ctx context.Context, id string, req *UpsertRequest) (*ItemResponse, error)
	Delete(ctx context.Context, id string) error
}
