// Package kvstate keeps the whole application state in memory and mirrors
// every mutation to a kv.Store backend, one JSON blob per collection.
package kvstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/protrack-ops/floor-backend-go/internal/domain/attendance"
	"github.com/protrack-ops/floor-backend-go/internal/domain/employee"
	"github.com/protrack-ops/floor-backend-go/internal/domain/inventory"
	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
	"github.com/protrack-ops/floor-backend-go/internal/domain/management"
	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
	"github.com/protrack-ops/floor-backend-go/internal/domain/schedule"
	"github.com/protrack-ops/floor-backend-go/internal/fixtures"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/kv"
)

const (
	keyManagementTeam = "management_team"
	keyLeaders        = "leaders"
	keyEmployees      = "employees"
	keyAttendance     = "attendance"
	keyProduction     = "production"
	keyInventory      = "inventory"
	keySchedule       = "schedule"
)

// Store is the single source of truth for all collections. Reads come from
// memory; every mutation rewrites the affected collection in the backend.
type Store struct {
	kv kv.Store
	mu sync.RWMutex

	managementTeam []management.Member
	leaders        []leader.TeamLeader
	employees      []employee.Employee
	attendance     []attendance.Record
	production     []production.Entry
	inventory      []inventory.Item
	schedule       []schedule.Entry
}

// NewStore loads every collection from the backend. Missing or unreadable
// collections fall back to the default fixtures, which are written back so
// the next boot finds them.
func NewStore(ctx context.Context, backend kv.Store) (*Store, error) {
	s := &Store{kv: backend}

	var err error
	if s.managementTeam, err = loadCollection(ctx, backend, keyManagementTeam, fixtures.DefaultManagementTeam()); err != nil {
		return nil, err
	}
	if s.leaders, err = loadCollection(ctx, backend, keyLeaders, fixtures.DefaultLeaders()); err != nil {
		return nil, err
	}
	if s.employees, err = loadCollection(ctx, backend, keyEmployees, fixtures.DefaultEmployees()); err != nil {
		return nil, err
	}
	if s.attendance, err = loadCollection(ctx, backend, keyAttendance, fixtures.DefaultAttendance()); err != nil {
		return nil, err
	}
	if s.production, err = loadCollection(ctx, backend, keyProduction, fixtures.DefaultProduction()); err != nil {
		return nil, err
	}
	if s.inventory, err = loadCollection(ctx, backend, keyInventory, fixtures.DefaultInventory()); err != nil {
		return nil, err
	}
	if s.schedule, err = loadCollection(ctx, backend, keySchedule, fixtures.DefaultSchedule()); err != nil {
		return nil, err
	}
	return s, nil
}

func loadCollection[T any](ctx context.Context, backend kv.Store, key string, fallback []T) ([]T, error) {
	data, err := backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			return nil, fmt.Errorf("load %s: %w", key, err)
		}
		return seedCollection(ctx, backend, key, fallback)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		// A corrupt blob must not take the service down.
		slog.Warn("Discarding unreadable collection", "key", key, "error", err)
		return seedCollection(ctx, backend, key, fallback)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func seedCollection[T any](ctx context.Context, backend kv.Store, key string, fallback []T) ([]T, error) {
	data, err := json.Marshal(fallback)
	if err != nil {
		return nil, fmt.Errorf("marshal %s seed: %w", key, err)
	}
	if err := backend.Set(ctx, key, data); err != nil {
		return nil, fmt.Errorf("seed %s: %w", key, err)
	}
	return fallback, nil
}

// persist writes one collection snapshot. Callers must hold the write lock.
func persist[T any](ctx context.Context, backend kv.Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := backend.Set(ctx, key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
