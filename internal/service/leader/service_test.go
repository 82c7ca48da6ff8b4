package leader

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/enhance"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/kv"
	"github.com/protrack-ops/floor-backend-go/internal/repository/kvstate"
)

// blockingEnhancer holds every Enhance call until released, so tests can
// observe the in-flight state deterministically.
type blockingEnhancer struct {
	release chan struct{}
}

func (e *blockingEnhancer) Enhance(ctx context.Context, imageData, mimeType string) (string, error) {
	select {
	case <-e.release:
		return "", enhance.ErrNoImage
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func newTestService(t *testing.T, enhancer enhance.Enhancer) leader.Service {
	t.Helper()
	state, err := kvstate.NewStore(context.Background(), kv.NewMemoryStore())
	require.NoError(t, err)

	if enhancer == nil {
		enhancer = enhance.NopEnhancer{}
	}

	return NewLeaderService(
		kvstate.NewLeaderRepository(state),
		kvstate.NewProductionRepository(state),
		enhancer,
	)
}

func TestLeaderService_Create_DuplicateSerial(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, nil)

	// Serial 1111 belongs to a seeded leader.
	_, err := svc.Create(ctx, &leader.CreateRequest{
		Name:         "Hassan Tarek",
		Role:         "Team Leader",
		Email:        "hassan@factory.local",
		SerialNumber: "1111",
	})

	assert.ErrorIs(t, err, leader.ErrSerialNumberTaken)
}

func TestLeaderService_Update_Partial(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, nil)

	newRole := "Senior Team Leader"
	updated, err := svc.Update(ctx, "l1", &leader.UpdateRequest{Role: &newRole})
	require.NoError(t, err)

	assert.Equal(t, "Senior Team Leader", updated.Role)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Ahmed Ali", updated.Name)
	assert.Equal(t, "1111", updated.SerialNumber)
}

func TestLeaderService_Suspend_ThenActivate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, nil)

	returnDate := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	suspended, err := svc.Suspend(ctx, "l1", &leader.SuspendRequest{
		Status:     string(leader.StatusOnLeave),
		Reason:     "Annual leave",
		ReturnDate: &returnDate,
	})
	require.NoError(t, err)
	assert.Equal(t, leader.StatusOnLeave, suspended.Status)
	require.NotNil(t, suspended.StoppageReason)
	assert.Equal(t, "Annual leave", *suspended.StoppageReason)

	activated, err := svc.Activate(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, leader.StatusActive, activated.Status)
	assert.Nil(t, activated.StoppageReason)
	assert.Nil(t, activated.ReturnDate)
}

func TestLeaderService_ReconcileStatuses_PastReturnDateReactivates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, nil)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	_, err := svc.Suspend(ctx, "l1", &leader.SuspendRequest{
		Status:     string(leader.StatusOnLeave),
		Reason:     "Sick leave",
		ReturnDate: &yesterday,
	})
	require.NoError(t, err)

	// Act
	changed, err := svc.ReconcileStatuses(ctx)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, []string{"l1"}, changed)

	l, err := svc.Get(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, leader.StatusActive, l.Status)
	assert.Nil(t, l.StoppageReason)
	assert.Nil(t, l.ReturnDate)

	// Idempotent: a second pass changes nothing.
	changed, err = svc.ReconcileStatuses(ctx)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestLeaderService_ReconcileStatuses_FutureReturnDateStaysSuspended(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, nil)

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	_, err := svc.Suspend(ctx, "l2", &leader.SuspendRequest{
		Status:     string(leader.StatusOnLeave),
		Reason:     "Training",
		ReturnDate: &tomorrow,
	})
	require.NoError(t, err)

	changed, err := svc.ReconcileStatuses(ctx)
	require.NoError(t, err)
	assert.Empty(t, changed)

	l, err := svc.Get(ctx, "l2")
	require.NoError(t, err)
	assert.Equal(t, leader.StatusOnLeave, l.Status)
}

func TestLeaderService_List_SearchAndSort(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, nil)

	matched, err := svc.List(ctx, leader.ListFilter{Search: "sara"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "l2", matched[0].ID)

	sorted, err := svc.List(ctx, leader.ListFilter{SortBy: "name", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Yassin Mahmoud", sorted[0].Name)
	assert.Equal(t, "Ahmed Ali", sorted[2].Name)

	_, err = svc.List(ctx, leader.ListFilter{SortBy: "serial"})
	assert.Error(t, err)
}

func TestLeaderService_Performance_NoShifts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, nil)

	perf, err := svc.Performance(ctx, "l1")
	require.NoError(t, err)

	assert.Equal(t, 0, perf.Metrics.ShiftsCompleted)
	assert.Equal(t, 0, perf.Metrics.AvgEfficiency)
	assert.Equal(t, 0.0, perf.Metrics.Rating)
}

func TestLeaderService_PerformanceAll_SearchAndSort(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, nil)

	all, err := svc.PerformanceAll(ctx, leader.PerformanceFilter{
		SortBy:    "name",
		SortOrder: "asc",
	})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Leader.Name, all[i].Leader.Name)
	}

	filtered, err := svc.PerformanceAll(ctx, leader.PerformanceFilter{Search: "sara"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "l2", filtered[0].Leader.ID)
}

func TestLeaderService_EnhancePortrait_StoresUploadImmediately(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, nil)

	l, err := svc.EnhancePortrait(ctx, "l1", &leader.PortraitRequest{
		ImageData: "aGVsbG8=",
		MimeType:  "image/png",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(l.ImageURL, "data:image/png;base64,"))
	assert.Contains(t, l.ImageURL, "aGVsbG8=")
}

func TestLeaderService_EnhancePortrait_SecondUploadConflicts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	enhancer := &blockingEnhancer{release: make(chan struct{})}
	svc := newTestService(t, enhancer)

	req := &leader.PortraitRequest{ImageData: "aGVsbG8=", MimeType: "image/jpeg"}

	_, err := svc.EnhancePortrait(ctx, "l1", req)
	require.NoError(t, err)

	_, err = svc.EnhancePortrait(ctx, "l1", req)
	assert.ErrorIs(t, err, leader.ErrEnhancementInProgress)

	close(enhancer.release)
}

func TestLeaderService_EnhancePortrait_FailureKeepsUpload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	enhancer := &blockingEnhancer{release: make(chan struct{})}
	svc := newTestService(t, enhancer)

	uploaded, err := svc.EnhancePortrait(ctx, "l1", &leader.PortraitRequest{
		ImageData: "aGVsbG8=",
		MimeType:  "image/webp",
	})
	require.NoError(t, err)

	close(enhancer.release)

	// The background worker fails and keeps the stored upload untouched.
	assert.Eventually(t, func() bool {
		l, err := svc.Get(ctx, "l1")
		return err == nil && l.ImageURL == uploaded.ImageURL
	}, 2*time.Second, 25*time.Millisecond)
}

func TestLeaderService_BadgePNG(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t, nil)

	png, err := svc.BadgePNG(ctx, "l1")
	require.NoError(t, err)

	// PNG signature.
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestComputeMetrics_RatingBounds(t *testing.T) {
	t.Parallel()

	// A long run of perfect shifts caps the rating at 5.0.
	var entries []production.Entry
	for i := 0; i < 60; i++ {
		entries = append(entries, production.Entry{
			TotalOutput: 100,
			TotalTarget: 100,
			Efficiency:  100,
		})
	}
	m := leader.ComputeMetrics(entries)
	assert.Equal(t, 60, m.ShiftsCompleted)
	assert.Equal(t, 100, m.AvgEfficiency)
	assert.Equal(t, 5.0, m.Rating)

	// No shifts yields all zeroes.
	empty := leader.ComputeMetrics(nil)
	assert.Equal(t, 0, empty.ShiftsCompleted)
	assert.Equal(t, 0.0, empty.Rating)
}
