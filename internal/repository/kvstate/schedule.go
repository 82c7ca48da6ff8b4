package kvstate

import (
	"context"

	"github.com/protrack-ops/floor-backend-go/internal/domain/schedule"
)

type scheduleRepository struct {
	state *Store
}

func NewScheduleRepository(state *Store) schedule.Repository {
	return &scheduleRepository{state: state}
}

func (r *scheduleRepository) List(_ context.Context) ([]schedule.Entry, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	out := make([]schedule.Entry, len(r.state.schedule))
	copy(out, r.state.schedule)
	return out, nil
}

func (r *scheduleRepository) GetCell(_ context.Context, date, shift string) (*schedule.Entry, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	for _, e := range r.state.schedule {
		if e.Date == date && string(e.Shift) == shift {
			found := e
			return &found, nil
		}
	}
	return nil, nil
}

func (r *scheduleRepository) Upsert(ctx context.Context, e *schedule.Entry) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	kept := r.state.schedule[:0]
	for _, existing := range r.state.schedule {
		if existing.ID == e.ID || (existing.Date == e.Date && existing.Shift == e.Shift) {
			continue
		}
		kept = append(kept, existing)
	}
	r.state.schedule = append(kept, *e)
	return persist(ctx, r.state.kv, keySchedule, r.state.schedule)
}

func (r *scheduleRepository) DeleteCell(ctx context.Context, date, shift string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for i, existing := range r.state.schedule {
		if existing.Date == date && string(existing.Shift) == shift {
			r.state.schedule = append(r.state.schedule[:i], r.state.schedule[i+1:]...)
			return persist(ctx, r.state.kv, keySchedule, r.state.schedule)
		}
	}
	return schedule.ErrEntryNotFound
}
