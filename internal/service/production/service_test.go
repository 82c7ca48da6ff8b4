package production

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/kv"
	"github.com/protrack-ops/floor-backend-go/internal/repository/kvstate"
)

func newTestService(t *testing.T) production.Service {
	t.Helper()
	state, err := kvstate.NewStore(context.Background(), kv.NewMemoryStore())
	require.NoError(t, err)

	return NewProductionService(
		kvstate.NewProductionRepository(state),
		kvstate.NewLeaderRepository(state),
	)
}

// fullGrid builds a complete hourly grid with the same target and actual in
// every row.
func fullGrid(target, actual int) []production.HourlyEntry {
	grid := make([]production.HourlyEntry, production.HoursPerShift)
	for i := range grid {
		grid[i] = production.HourlyEntry{
			Hour:   i + 1,
			Target: target,
			Actual: actual,
		}
	}
	return grid
}

func TestProductionService_Create_ComputesTotals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	grid := fullGrid(100, 90)
	grid[0].Rejects = 3
	grid[7].Rejects = 2

	// Act
	entry, err := svc.Create(ctx, production.CreateEntryRequest{
		Shift:      production.ShiftMorning,
		Date:       "2026-03-02",
		LineID:     production.Line1,
		LeaderID:   "l1",
		HourlyData: grid,
	})
	require.NoError(t, err)

	// Assert
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, 720, entry.TotalOutput)
	assert.Equal(t, 800, entry.TotalTarget)
	assert.Equal(t, 5, entry.TotalRejects)
	assert.Equal(t, 90, entry.Efficiency)
	assert.Equal(t, "Ahmed Ali", entry.LeaderName)
}

func TestProductionService_Create_ZeroTargetZeroEfficiency(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	entry, err := svc.Create(ctx, production.CreateEntryRequest{
		Shift:      production.ShiftNight,
		Date:       "2026-03-02",
		LineID:     production.Line2,
		LeaderID:   "l2",
		HourlyData: fullGrid(0, 50),
	})
	require.NoError(t, err)

	assert.Equal(t, 400, entry.TotalOutput)
	assert.Equal(t, 0, entry.TotalTarget)
	assert.Equal(t, 0, entry.Efficiency)
}

func TestProductionService_Create_FullTargetIsHundredPercent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	entry, err := svc.Create(ctx, production.CreateEntryRequest{
		Shift:      production.ShiftEvening,
		Date:       "2026-03-02",
		LineID:     production.Line3,
		LeaderID:   "l3",
		HourlyData: fullGrid(75, 75),
	})
	require.NoError(t, err)

	assert.Equal(t, 100, entry.Efficiency)
}

func TestProductionService_Create_UnknownLeader(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, production.CreateEntryRequest{
		Shift:      production.ShiftMorning,
		Date:       "2026-03-02",
		LineID:     production.Line1,
		LeaderID:   "ghost",
		HourlyData: fullGrid(10, 10),
	})

	assert.Error(t, err)
}

func TestProductionService_Create_RejectsPartialGrid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, production.CreateEntryRequest{
		Shift:      production.ShiftMorning,
		Date:       "2026-03-02",
		LineID:     production.Line1,
		LeaderID:   "l1",
		HourlyData: fullGrid(10, 10)[:5],
	})

	assert.Error(t, err)
}

func TestProductionService_List_MostRecentFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.Create(ctx, production.CreateEntryRequest{
		Shift:      production.ShiftMorning,
		Date:       "2026-03-02",
		LineID:     production.Line1,
		LeaderID:   "l1",
		HourlyData: fullGrid(10, 10),
	})
	require.NoError(t, err)

	second, err := svc.Create(ctx, production.CreateEntryRequest{
		Shift:      production.ShiftEvening,
		Date:       "2026-03-02",
		LineID:     production.Line1,
		LeaderID:   "l1",
		HourlyData: fullGrid(10, 10),
	})
	require.NoError(t, err)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestProductionService_ClearArchive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, production.CreateEntryRequest{
		Shift:      production.ShiftMorning,
		Date:       "2026-03-02",
		LineID:     production.Line1,
		LeaderID:   "l1",
		HourlyData: fullGrid(10, 10),
	})
	require.NoError(t, err)

	require.NoError(t, svc.ClearArchive(ctx))

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
