package auth

import (
	"context"
	"errors"

	"github.com/protrack-ops/floor-backend-go/internal/domain/auth"
	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	leaderRepo leader.Repository
	jwtService jwt.Service
}

func NewAuthService(leaderRepo leader.Repository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		leaderRepo: leaderRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.Service. The serial number is the whole credential;
// the kiosk reads it off the badge QR code.
func (s *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.leaderRepo.GetBySerialNumber(ctx, req.SerialNumber)
	if err != nil {
		if errors.Is(err, leader.ErrLeaderNotFound) {
			return nil, auth.ErrInvalidSerial
		}
		return nil, err
	}

	// Suspended leaders keep kiosk access; suspension gates shift
	// assignment, not login.
	return s.issueTokens(l)
}

// Refresh implements auth.Service. The presented refresh token is revoked so
// it cannot be replayed.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req *auth.RefreshRequest) (*auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return nil, auth.ErrInvalidToken
	}

	leaderID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	l, err := s.leaderRepo.GetByID(ctx, leaderID)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	s.jwtService.RevokeToken(req.RefreshToken)
	return s.issueTokens(l)
}

// Logout implements auth.Service.
func (s *AuthServiceImpl) Logout(_ context.Context, accessToken string) error {
	if accessToken == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(accessToken)
	return nil
}

func (s *AuthServiceImpl) issueTokens(l *leader.TeamLeader) (*auth.TokenResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(l.ID, l.Name, l.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, _, err := s.jwtService.GenerateRefreshToken(l.ID)
	if err != nil {
		return nil, err
	}

	return &auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresAt,
		Leader:       l,
	}, nil
}
