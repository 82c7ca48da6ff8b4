package employee

import "context"

// Service defines business logic for the employee roster.
type Service interface {
	List(ctx context.Context) ([]Employee, error)

	Get(ctx context.Context, id string) (Employee, error)

	// Register creates an employee under an externally assigned badge id.
	// A duplicate id is a conflict, never an overwrite.
	Register(ctx context.Context, req RegisterRequest) (Employee, error)

	// Delete removes the employee. Attendance history is kept untouched.
	Delete(ctx context.Context, id string) error
}
