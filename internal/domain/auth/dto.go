package auth

import (
	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/validator"
)

// LoginRequest authenticates with the leader's badge serial number.
type LoginRequest struct {
	SerialNumber string `json:"serial_number"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SerialNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "serial_number",
			Message: "serial_number is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
	ExpiresIn    int64              `json:"expires_in"`
	Leader       *leader.TeamLeader `json:"leader,omitempty"`
}
