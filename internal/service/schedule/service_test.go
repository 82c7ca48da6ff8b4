package schedule

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
	"github.com/protrack-ops/floor-backend-go/internal/domain/schedule"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/kv"
	"github.com/protrack-ops/floor-backend-go/internal/repository/kvstate"
)

func newTestService(t *testing.T) schedule.Service {
	t.Helper()
	state, err := kvstate.NewStore(context.Background(), kv.NewMemoryStore())
	require.NoError(t, err)

	return NewScheduleService(
		kvstate.NewScheduleRepository(state),
		kvstate.NewLeaderRepository(state),
	)
}

func TestScheduleService_Assign_ReplacesCellOccupant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Assign(ctx, &schedule.AssignRequest{
		Date:     "2026-03-02",
		Shift:    "Morning",
		LeaderID: "l1",
	})
	require.NoError(t, err)

	// Act: assigning the same cell again swaps the leader.
	_, err = svc.Assign(ctx, &schedule.AssignRequest{
		Date:     "2026-03-02",
		Shift:    "Morning",
		LeaderID: "l2",
	})
	require.NoError(t, err)

	// Assert
	week, err := svc.Week(ctx, "2026-03-02")
	require.NoError(t, err)
	require.Len(t, week.Entries, 1)
	assert.Equal(t, "l2", week.Entries[0].LeaderID)
}

func TestScheduleService_Assign_UnknownLeader(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Assign(ctx, &schedule.AssignRequest{
		Date:     "2026-03-02",
		Shift:    "Morning",
		LeaderID: "ghost",
	})

	assert.Error(t, err)
}

func TestScheduleService_Week_Window(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	// Two days back through five days ahead of the anchor.
	_, err := svc.Assign(ctx, &schedule.AssignRequest{Date: "2026-03-08", Shift: "Morning", LeaderID: "l1"})
	require.NoError(t, err)
	_, err = svc.Assign(ctx, &schedule.AssignRequest{Date: "2026-03-15", Shift: "Morning", LeaderID: "l2"})
	require.NoError(t, err)

	week, err := svc.Week(ctx, "2026-03-10")
	require.NoError(t, err)

	require.Len(t, week.Dates, 8)
	assert.Equal(t, "2026-03-08", week.Dates[0])
	assert.Equal(t, "2026-03-15", week.Dates[7])

	require.Len(t, week.Entries, 2)
}

func TestScheduleService_Week_ExcludesOutsideWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Assign(ctx, &schedule.AssignRequest{Date: "2026-03-01", Shift: "Night", LeaderID: "l1"})
	require.NoError(t, err)

	week, err := svc.Week(ctx, "2026-03-10")
	require.NoError(t, err)

	assert.Empty(t, week.Entries)
}

func TestScheduleService_Move_OverwritesTarget(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	moved, err := svc.Assign(ctx, &schedule.AssignRequest{Date: "2026-03-02", Shift: "Morning", LeaderID: "l1"})
	require.NoError(t, err)
	_, err = svc.Assign(ctx, &schedule.AssignRequest{Date: "2026-03-03", Shift: "Evening", LeaderID: "l2"})
	require.NoError(t, err)

	// Act
	result, err := svc.Move(ctx, &schedule.MoveRequest{
		SrcDate:  "2026-03-02",
		SrcShift: "Morning",
		DstDate:  "2026-03-03",
		DstShift: "Evening",
	})
	require.NoError(t, err)

	// Assert: the source cell empties and the occupant of the target is gone.
	assert.Equal(t, moved.ID, result.ID)
	assert.Equal(t, "2026-03-03", result.Date)
	assert.Equal(t, production.ShiftEvening, result.Shift)

	week, err := svc.Week(ctx, "2026-03-02")
	require.NoError(t, err)
	require.Len(t, week.Entries, 1)
	assert.Equal(t, "l1", week.Entries[0].LeaderID)
}

func TestScheduleService_Move_EmptySource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Move(ctx, &schedule.MoveRequest{
		SrcDate:  "2026-03-02",
		SrcShift: "Morning",
		DstDate:  "2026-03-03",
		DstShift: "Morning",
	})

	assert.ErrorIs(t, err, schedule.ErrEntryNotFound)
}

func TestScheduleService_Unassign(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Assign(ctx, &schedule.AssignRequest{Date: "2026-03-02", Shift: "Night", LeaderID: "l3"})
	require.NoError(t, err)

	require.NoError(t, svc.Unassign(ctx, "2026-03-02", "Night"))

	week, err := svc.Week(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Empty(t, week.Entries)
}

func TestScheduleService_CellReminder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Assign(ctx, &schedule.AssignRequest{Date: "2026-03-02", Shift: "Morning", LeaderID: "l1"})
	require.NoError(t, err)

	reminder, err := svc.CellReminder(ctx, "2026-03-02", "Morning")
	require.NoError(t, err)

	assert.Equal(t, "l1", reminder.LeaderID)
	assert.Equal(t, "Ahmed Ali", reminder.LeaderName)
	assert.Contains(t, reminder.Message, "Morning shift")
	assert.Contains(t, reminder.Message, "2026-03-02")
	assert.Contains(t, reminder.WhatsAppLink, "https://wa.me/")
	assert.Contains(t, reminder.MailtoLink, "mailto:")
}

func TestScheduleService_CellReminder_EmptyCell(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CellReminder(ctx, "2026-03-02", "Morning")

	assert.ErrorIs(t, err, schedule.ErrEntryNotFound)
}

func TestScheduleService_DailyBroadcast(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Assign(ctx, &schedule.AssignRequest{Date: "2026-03-02", Shift: "Morning", LeaderID: "l1"})
	require.NoError(t, err)
	_, err = svc.Assign(ctx, &schedule.AssignRequest{Date: "2026-03-02", Shift: "Night", LeaderID: "l2"})
	require.NoError(t, err)

	broadcast, err := svc.DailyBroadcast(ctx, "2026-03-02")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", broadcast.Date)
	assert.Contains(t, broadcast.Message, "Ahmed Ali")
	assert.Contains(t, broadcast.Message, "Sara Mohamed")
	// The evening slot is open.
	assert.Contains(t, broadcast.Message, "unassigned")
	assert.Contains(t, broadcast.WhatsAppLink, "https://wa.me/")

	// Shift lines stay in chronological order.
	assert.Less(t, strings.Index(broadcast.Message, "Morning"), strings.Index(broadcast.Message, "Night"))
}

func TestScheduleService_Week_DefaultsToToday(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	week, err := svc.Week(ctx, "")
	require.NoError(t, err)

	require.Len(t, week.Dates, 8)
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, week.Dates[2])
}
