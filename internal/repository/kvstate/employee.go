package kvstate

import (
	"context"

	"github.com/protrack-ops/floor-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	state *Store
}

func NewEmployeeRepository(state *Store) employee.Repository {
	return &employeeRepository{state: state}
}

func (r *employeeRepository) List(_ context.Context) ([]employee.Employee, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	out := make([]employee.Employee, len(r.state.employees))
	copy(out, r.state.employees)
	return out, nil
}

func (r *employeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	for _, e := range r.state.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for _, existing := range r.state.employees {
		if existing.ID == emp.ID {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
	}

	r.state.employees = append(r.state.employees, emp)
	if err := persist(ctx, r.state.kv, keyEmployees, r.state.employees); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for i, existing := range r.state.employees {
		if existing.ID == id {
			r.state.employees = append(r.state.employees[:i], r.state.employees[i+1:]...)
			return persist(ctx, r.state.kv, keyEmployees, r.state.employees)
		}
	}
	return employee.ErrEmployeeNotFound
}
