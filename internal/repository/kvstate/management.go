package kvstate

import (
	"context"

	"github.com/protrack-ops/floor-backend-go/internal/domain/management"
)

type managementRepository struct {
	state *Store
}

func NewManagementRepository(state *Store) management.Repository {
	return &managementRepository{state: state}
}

func (r *managementRepository) List(_ context.Context) ([]management.Member, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	out := make([]management.Member, len(r.state.managementTeam))
	copy(out, r.state.managementTeam)
	return out, nil
}

func (r *managementRepository) GetByID(_ context.Context, id string) (*management.Member, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	for _, m := range r.state.managementTeam {
		if m.ID == id {
			found := m
			return &found, nil
		}
	}
	return nil, management.ErrMemberNotFound
}

func (r *managementRepository) Update(ctx context.Context, m *management.Member) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for i, existing := range r.state.managementTeam {
		if existing.ID == m.ID {
			r.state.managementTeam[i] = *m
			return persist(ctx, r.state.kv, keyManagementTeam, r.state.managementTeam)
		}
	}
	return management.ErrMemberNotFound
}
