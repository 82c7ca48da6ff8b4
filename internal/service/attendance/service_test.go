package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protrack-ops/floor-backend-go/internal/domain/attendance"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/kv"
	"github.com/protrack-ops/floor-backend-go/internal/repository/kvstate"
)

func newTestService(t *testing.T) attendance.Service {
	t.Helper()
	state, err := kvstate.NewStore(context.Background(), kv.NewMemoryStore())
	require.NoError(t, err)

	return NewAttendanceService(
		kvstate.NewAttendanceRepository(state),
		kvstate.NewEmployeeRepository(state),
		kvstate.NewLeaderRepository(state),
	)
}

func strPtr(s string) *string { return &s }

func TestAttendanceService_Set_UpsertsSingleRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	// Act
	_, err := svc.Set(ctx, attendance.SetRequest{
		EmployeeID: "101",
		Date:       "2026-03-02",
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	record, err := svc.Set(ctx, attendance.SetRequest{
		EmployeeID: "101",
		Date:       "2026-03-02",
		Status:     "ctp",
	})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, attendance.Status("ctp"), record.Status)

	summary, err := svc.Summarize(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Present)
	assert.Equal(t, 1, summary.Others)
}

func TestAttendanceService_Set_StatusOnlyUpdateKeepsAttachment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Set(ctx, attendance.SetRequest{
		EmployeeID:    "101",
		Date:          "2026-03-02",
		Status:        "cr",
		AttachmentURL: strPtr("https://files.local/leave-101.jpg"),
	})
	require.NoError(t, err)

	// Act
	record, err := svc.Set(ctx, attendance.SetRequest{
		EmployeeID: "101",
		Date:       "2026-03-02",
		Status:     "crn",
	})
	require.NoError(t, err)

	// Assert
	require.NotNil(t, record.AttachmentURL)
	assert.Equal(t, "https://files.local/leave-101.jpg", *record.AttachmentURL)
}

func TestAttendanceService_Set_NewAttachmentReplacesOld(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Set(ctx, attendance.SetRequest{
		EmployeeID:    "101",
		Date:          "2026-03-02",
		Status:        "cr",
		AttachmentURL: strPtr("https://files.local/old.jpg"),
	})
	require.NoError(t, err)

	record, err := svc.Set(ctx, attendance.SetRequest{
		EmployeeID:    "101",
		Date:          "2026-03-02",
		Status:        "cr",
		AttachmentURL: strPtr("https://files.local/new.jpg"),
	})
	require.NoError(t, err)

	require.NotNil(t, record.AttachmentURL)
	assert.Equal(t, "https://files.local/new.jpg", *record.AttachmentURL)
}

func TestAttendanceService_Set_UnregisteredEmployeeStillInserts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	// Marking is an unconditional upsert, even for an id the roster
	// does not know about yet.
	rec, err := svc.Set(ctx, attendance.SetRequest{
		EmployeeID:    "999",
		Date:          "2026-03-02",
		Status:        attendance.StatusPresent,
		AttachmentURL: strPtr("data:image/png;base64,cHJvb2Y="),
	})
	require.NoError(t, err)
	assert.Equal(t, "999", rec.EmployeeID)

	// The inserted record persists: a status-only follow-up inherits
	// its attachment.
	updated, err := svc.Set(ctx, attendance.SetRequest{
		EmployeeID: "999",
		Date:       "2026-03-02",
		Status:     attendance.StatusAbsent,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.AttachmentURL)
	assert.Equal(t, "data:image/png;base64,cHJvb2Y=", *updated.AttachmentURL)
}

func TestAttendanceService_Summarize_EmptyDayIsAllAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	summary, err := svc.Summarize(ctx, "2026-03-02")
	require.NoError(t, err)

	// The seed roster has four employees and no records for the date.
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 0, summary.Present)
	assert.Equal(t, 4, summary.Absent)
	assert.Equal(t, 0, summary.Others)
	assert.Equal(t, 0, summary.Percent)
}

func TestAttendanceService_Summarize_Counts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Set(ctx, attendance.SetRequest{EmployeeID: "101", Date: "2026-03-02", Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = svc.Set(ctx, attendance.SetRequest{EmployeeID: "102", Date: "2026-03-02", Status: attendance.StatusAbsent})
	require.NoError(t, err)
	_, err = svc.Set(ctx, attendance.SetRequest{EmployeeID: "103", Date: "2026-03-02", Status: "MT"})
	require.NoError(t, err)

	summary, err := svc.Summarize(ctx, "2026-03-02")
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.Present)
	// 102 was marked absent, 104 has no record.
	assert.Equal(t, 2, summary.Absent)
	assert.Equal(t, 1, summary.Others)
	assert.Equal(t, 25, summary.Percent)
}

func TestAttendanceService_Roster_DefaultsToAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Set(ctx, attendance.SetRequest{EmployeeID: "101", Date: "2026-03-02", Status: attendance.StatusPresent})
	require.NoError(t, err)

	rows, err := svc.Roster(ctx, attendance.RosterFilter{Date: "2026-03-02"})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	byID := make(map[string]attendance.RosterRow, len(rows))
	for _, row := range rows {
		byID[row.EmployeeID] = row
	}

	assert.Equal(t, attendance.StatusPresent, byID["101"].Status)
	assert.True(t, byID["101"].HasRecord)
	assert.Equal(t, attendance.StatusAbsent, byID["102"].Status)
	assert.False(t, byID["102"].HasRecord)
}

func TestAttendanceService_Roster_SearchAndSupervisorFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	rows, err := svc.Roster(ctx, attendance.RosterFilter{Date: "2026-03-02", Search: "fatima"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "103", rows[0].EmployeeID)

	supervisor := "l1"
	rows, err = svc.Roster(ctx, attendance.RosterFilter{Date: "2026-03-02", SupervisorID: &supervisor})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.NotNil(t, row.SupervisorID)
		assert.Equal(t, "l1", *row.SupervisorID)
	}
}

func TestAttendanceService_Roster_SortByNameDesc(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	rows, err := svc.Roster(ctx, attendance.RosterFilter{
		Date:      "2026-03-02",
		SortBy:    "name",
		SortOrder: "desc",
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Name, rows[i].Name)
	}
}
