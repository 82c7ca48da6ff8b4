package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protrack-ops/floor-backend-go/internal/domain/inventory"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/kv"
	"github.com/protrack-ops/floor-backend-go/internal/repository/kvstate"
)

func newTestService(t *testing.T) inventory.Service {
	t.Helper()
	state, err := kvstate.NewStore(context.Background(), kv.NewMemoryStore())
	require.NoError(t, err)

	return NewInventoryService(kvstate.NewInventoryRepository(state))
}

func TestInventoryService_List_FlagsLowStock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	items, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, items, 3)

	byID := make(map[string]inventory.ItemResponse, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	// Seeded PVC Insulation sits below its threshold.
	assert.False(t, byID["i1"].LowStock)
	assert.True(t, byID["i2"].LowStock)
	assert.False(t, byID["i3"].LowStock)
}

func TestInventoryService_List_LowOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	items, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "i2", items[0].ID)
}

func TestInventoryService_LowStockThresholdIsStrict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	// Quantity equal to the threshold does not count as low.
	item, err := svc.Create(ctx, &inventory.UpsertRequest{
		Name:         "Solder Paste",
		Quantity:     50,
		Unit:         "tubes",
		MinThreshold: 50,
	})
	require.NoError(t, err)
	assert.False(t, item.LowStock)

	updated, err := svc.Update(ctx, item.ID, &inventory.UpsertRequest{
		Name:         "Solder Paste",
		Quantity:     49,
		Unit:         "tubes",
		MinThreshold: 50,
	})
	require.NoError(t, err)
	assert.True(t, updated.LowStock)
}

func TestInventoryService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.Delete(ctx, "i1"))

	_, err := svc.Get(ctx, "i1")
	assert.ErrorIs(t, err, inventory.ErrItemNotFound)
}

func TestInventoryService_Update_Unknown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Update(ctx, "missing", &inventory.UpsertRequest{
		Name:         "Anything",
		Quantity:     1,
		Unit:         "pcs",
		MinThreshold: 1,
	})

	assert.ErrorIs(t, err, inventory.ErrItemNotFound)
}
