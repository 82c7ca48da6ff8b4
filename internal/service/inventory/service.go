package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/protrack-ops/floor-backend-go/internal/domain/inventory"
)

type InventoryServiceImpl struct {
	inventoryRepo inventory.Repository
}

func NewInventoryService(inventoryRepo inventory.Repository) inventory.Service {
	return &InventoryServiceImpl{inventoryRepo: inventoryRepo}
}

// List implements inventory.Service.
func (s *InventoryServiceImpl) List(ctx context.Context, lowOnly bool) ([]inventory.ItemResponse, error) {
	items, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]inventory.ItemResponse, 0, len(items))
	for _, it := range items {
		if lowOnly && !it.LowStock() {
			continue
		}
		out = append(out, toResponse(it))
	}
	return out, nil
}

// Get implements inventory.Service.
func (s *InventoryServiceImpl) Get(ctx context.Context, id string) (*inventory.ItemResponse, error) {
	it, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(*it)
	return &resp, nil
}

// Create implements inventory.Service.
func (s *InventoryServiceImpl) Create(ctx context.Context, req *inventory.UpsertRequest) (*inventory.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	it := inventory.Item{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		MinThreshold: req.MinThreshold,
	}
	if err := s.inventoryRepo.Create(ctx, &it); err != nil {
		return nil, err
	}
	resp := toResponse(it)
	return &resp, nil
}

// Update implements inventory.Service.
func (s *InventoryServiceImpl) Update(ctx context.Context, id string, req *inventory.UpsertRequest) (*inventory.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	it, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	it.Name = req.Name
	it.Quantity = req.Quantity
	it.Unit = req.Unit
	it.MinThreshold = req.MinThreshold

	if err := s.inventoryRepo.Update(ctx, it); err != nil {
		return nil, err
	}
	resp := toResponse(*it)
	return &resp, nil
}

// Delete implements inventory.Service.
func (s *InventoryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.inventoryRepo.Delete(ctx, id)
}

func toResponse(it inventory.Item) inventory.ItemResponse {
	return inventory.ItemResponse{Item: it, LowStock: it.LowStock()}
}
