package employee

import "context"

// Repository defines data access for the employee roster. Deleting an
// employee does not cascade to attendance; historical records keep the
// dangling id.
type Repository interface {
	List(ctx context.Context) ([]Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	Create(ctx context.Context, emp Employee) (Employee, error)

	Delete(ctx context.Context, id string) error
}
