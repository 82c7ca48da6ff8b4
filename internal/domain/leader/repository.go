package leader

import "context"

type Repository interface {
	List(ctx context.Context) ([]TeamLeader, error)
	GetByID(ctx context.Context, id string) (*TeamLeader, error)
	GetBySerialNumber(ctx context.Context, serial string) (*TeamLeader, error)
	Create(ctx context.Context, l *TeamLeader) error
	Update(ctx context.Context, l *TeamLeader) error
	Delete(ctx context.Context, id string) error
}
