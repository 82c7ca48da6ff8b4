package kvstate

import (
	"context"

	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
)

type productionRepository struct {
	state *Store
}

func NewProductionRepository(state *Store) production.Repository {
	return &productionRepository{state: state}
}

func (r *productionRepository) List(_ context.Context) ([]production.Entry, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	out := make([]production.Entry, len(r.state.production))
	copy(out, r.state.production)
	return out, nil
}

func (r *productionRepository) GetByID(_ context.Context, id string) (production.Entry, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	for _, e := range r.state.production {
		if e.ID == id {
			return e, nil
		}
	}
	return production.Entry{}, production.ErrEntryNotFound
}

func (r *productionRepository) ListByLeader(_ context.Context, leaderID string) ([]production.Entry, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	var out []production.Entry
	for _, e := range r.state.production {
		if e.LeaderID == leaderID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Create prepends so the archive stays most-recent-first.
func (r *productionRepository) Create(ctx context.Context, entry production.Entry) (production.Entry, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	r.state.production = append([]production.Entry{entry}, r.state.production...)
	if err := persist(ctx, r.state.kv, keyProduction, r.state.production); err != nil {
		return production.Entry{}, err
	}
	return entry, nil
}

func (r *productionRepository) Delete(ctx context.Context, id string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for i, existing := range r.state.production {
		if existing.ID == id {
			r.state.production = append(r.state.production[:i], r.state.production[i+1:]...)
			return persist(ctx, r.state.kv, keyProduction, r.state.production)
		}
	}
	return production.ErrEntryNotFound
}

func (r *productionRepository) DeleteAll(ctx context.Context) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	r.state.production = []production.Entry{}
	return persist(ctx, r.state.kv, keyProduction, r.state.production)
}
