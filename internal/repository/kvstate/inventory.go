package kvstate

import (
	"context"

	"github.com/protrack-ops/floor-backend-go/internal/domain/inventory"
)

type inventoryRepository struct {
	state *Store
}

func NewInventoryRepository(state *Store) inventory.Repository {
	return &inventoryRepository{state: state}
}

func (r *inventoryRepository) List(_ context.Context) ([]inventory.Item, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	out := make([]inventory.Item, len(r.state.inventory))
	copy(out, r.state.inventory)
	return out, nil
}

func (r *inventoryRepository) GetByID(_ context.Context, id string) (*inventory.Item, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	for _, it := range r.state.inventory {
		if it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, inventory.ErrItemNotFound
}

func (r *inventoryRepository) Create(ctx context.Context, it *inventory.Item) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	r.state.inventory = append(r.state.inventory, *it)
	return persist(ctx, r.state.kv, keyInventory, r.state.inventory)
}

func (r *inventoryRepository) Update(ctx context.Context, it *inventory.Item) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for i, existing := range r.state.inventory {
		if existing.ID == it.ID {
			r.state.inventory[i] = *it
			return persist(ctx, r.state.kv, keyInventory, r.state.inventory)
		}
	}
	return inventory.ErrItemNotFound
}

func (r *inventoryRepository) Delete(ctx context.Context, id string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for i, existing := range r.state.inventory {
		if existing.ID == id {
			r.state.inventory = append(r.state.inventory[:i], r.state.inventory[i+1:]...)
			return persist(ctx, r.state.kv, keyInventory, r.state.inventory)
		}
	}
	return inventory.ErrItemNotFound
}
