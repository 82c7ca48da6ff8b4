package kvstate

import (
	"context"

	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
)

type leaderRepository struct {
	state *Store
}

func NewLeaderRepository(state *Store) leader.Repository {
	return &leaderRepository{state: state}
}

func (r *leaderRepository) List(_ context.Context) ([]leader.TeamLeader, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	out := make([]leader.TeamLeader, len(r.state.leaders))
	copy(out, r.state.leaders)
	return out, nil
}

func (r *leaderRepository) GetByID(_ context.Context, id string) (*leader.TeamLeader, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	for _, l := range r.state.leaders {
		if l.ID == id {
			found := l
			return &found, nil
		}
	}
	return nil, leader.ErrLeaderNotFound
}

func (r *leaderRepository) GetBySerialNumber(_ context.Context, serial string) (*leader.TeamLeader, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	for _, l := range r.state.leaders {
		if l.SerialNumber == serial {
			found := l
			return &found, nil
		}
	}
	return nil, leader.ErrLeaderNotFound
}

func (r *leaderRepository) Create(ctx context.Context, l *leader.TeamLeader) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for _, existing := range r.state.leaders {
		if existing.SerialNumber == l.SerialNumber {
			return leader.ErrSerialNumberTaken
		}
	}

	r.state.leaders = append(r.state.leaders, *l)
	return persist(ctx, r.state.kv, keyLeaders, r.state.leaders)
}

func (r *leaderRepository) Update(ctx context.Context, l *leader.TeamLeader) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for _, existing := range r.state.leaders {
		if existing.SerialNumber == l.SerialNumber && existing.ID != l.ID {
			return leader.ErrSerialNumberTaken
		}
	}

	for i, existing := range r.state.leaders {
		if existing.ID == l.ID {
			r.state.leaders[i] = *l
			return persist(ctx, r.state.kv, keyLeaders, r.state.leaders)
		}
	}
	return leader.ErrLeaderNotFound
}

func (r *leaderRepository) Delete(ctx context.Context, id string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for i, existing := range r.state.leaders {
		if existing.ID == id {
			r.state.leaders = append(r.state.leaders[:i], r.state.leaders[i+1:]...)
			return persist(ctx, r.state.kv, keyLeaders, r.state.leaders)
		}
	}
	return leader.ErrLeaderNotFound
}
