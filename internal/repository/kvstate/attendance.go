package kvstate

import (
	"context"

	"github.com/protrack-ops/floor-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	state *Store
}

func NewAttendanceRepository(state *Store) attendance.Repository {
	return &attendanceRepository{state: state}
}

func (r *attendanceRepository) Get(_ context.Context, employeeID, date string) (*attendance.Record, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	for _, rec := range r.state.attendance {
		if rec.EmployeeID == employeeID && rec.Date == date {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (r *attendanceRepository) ListByDate(_ context.Context, date string) ([]attendance.Record, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	var out []attendance.Record
	for _, rec := range r.state.attendance {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for i, existing := range r.state.attendance {
		if existing.EmployeeID == rec.EmployeeID && existing.Date == rec.Date {
			r.state.attendance[i] = rec
			return persist(ctx, r.state.kv, keyAttendance, r.state.attendance)
		}
	}

	r.state.attendance = append(r.state.attendance, rec)
	return persist(ctx, r.state.kv, keyAttendance, r.state.attendance)
}
