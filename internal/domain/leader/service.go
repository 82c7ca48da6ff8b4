package leader

import "context"

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]TeamLeader, error)
	Get(ctx context.Context, id string) (*TeamLeader, error)
	Create(ctx context.Context, req *CreateRequest) (*TeamLeader, error)
	Update(ctx context.Context, id string, req *UpdateRequest) (*TeamLeader, error)
	Delete(ctx context.Context, id string) error

	Suspend(ctx context.Context, id string, req *SuspendRequest) (*TeamLeader, error)
	Activate(ctx context.Context, id string) (*TeamLeader, error)
	// ReconcileStatuses reactivates every suspended leader whose return date
	// has passed. Returns the ids that changed.
	ReconcileStatuses(ctx context.Context) ([]string, error)

	Performance(ctx context.Context, id string) (*PerformanceResponse, error)
	PerformanceAll(ctx context.Context, filter PerformanceFilter) ([]PerformanceResponse, error)

	// EnhancePortrait stores the uploaded portrait immediately and enhances it
	// in the background. Only one enhancement per leader may be in flight.
	EnhancePortrait(ctx context.Context, id string, req *PortraitRequest) (*TeamLeader, error)
	// BadgePNG renders the leader's QR login badge.
	BadgePNG(ctx context.Context, id string) ([]byte, error)
}
