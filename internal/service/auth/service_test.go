package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protrack-ops/floor-backend-go/internal/domain/auth"
	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/jwt"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/kv"
	"github.com/protrack-ops/floor-backend-go/internal/repository/kvstate"
)

func newTestService(t *testing.T) (auth.Service, leader.Repository) {
	t.Helper()
	state, err := kvstate.NewStore(context.Background(), kv.NewMemoryStore())
	require.NoError(t, err)

	leaderRepo := kvstate.NewLeaderRepository(state)
	jwtService := jwt.NewJWTService("test-secret-key", "15m", "168h")

	return NewAuthService(leaderRepo, jwtService), leaderRepo
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	tokens, err := svc.Login(ctx, &auth.LoginRequest{SerialNumber: "1111"})
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	require.NotNil(t, tokens.Leader)
	assert.Equal(t, "l1", tokens.Leader.ID)
	assert.Greater(t, tokens.ExpiresIn, time.Now().Unix())
}

func TestAuthService_Login_SuspendedLeaderStillLogsIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, leaderRepo := newTestService(t)

	l, err := leaderRepo.GetByID(ctx, "l1")
	require.NoError(t, err)
	l.Status = leader.StatusOnLeave
	reason := "Annual leave"
	l.StoppageReason = &reason
	require.NoError(t, leaderRepo.Update(ctx, l))

	// Suspension gates shift assignment, not kiosk access.
	tokens, err := svc.Login(ctx, &auth.LoginRequest{SerialNumber: "1111"})
	require.NoError(t, err)
	assert.Equal(t, leader.StatusOnLeave, tokens.Leader.Status)
}

func TestAuthService_Login_UnknownSerial(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Login(ctx, &auth.LoginRequest{SerialNumber: "0000"})

	assert.ErrorIs(t, err, auth.ErrInvalidSerial)
}

func TestAuthService_Login_EmptySerial(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Login(ctx, &auth.LoginRequest{SerialNumber: ""})

	assert.Error(t, err)
}

func TestAuthService_Refresh_RotatesTokens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	tokens, err := svc.Login(ctx, &auth.LoginRequest{SerialNumber: "2222"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, &auth.RefreshRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "l2", refreshed.Leader.ID)

	// The used refresh token is revoked and cannot be replayed.
	_, err = svc.Refresh(ctx, &auth.RefreshRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	tokens, err := svc.Login(ctx, &auth.LoginRequest{SerialNumber: "3333"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, &auth.RefreshRequest{RefreshToken: tokens.AccessToken})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	tokens, err := svc.Login(ctx, &auth.LoginRequest{SerialNumber: "1111"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, tokens.AccessToken))

	assert.Error(t, svc.Logout(ctx, ""))
}
