package management

import "context"

type Service interface {
	List(ctx context.Context) ([]Member, error)
	Get(ctx context.Context, id string) (*Member, error)
	Update(ctx context.Context, id string, req *UpdateRequest) (*Member, error)
	// Director returns the first member typed director, for the dashboard
	// header. ErrDirectorNotFound when the roster has none.
	Director(ctx context.Context) (*Member, error)
}
