package response

import (
	"errors"
	"net/http"

	"github.com/protrack-ops/floor-backend-go/internal/domain/auth"
	"github.com/protrack-ops/floor-backend-go/internal/domain/employee"
	"github.com/protrack-ops/floor-backend-go/internal/domain/inventory"
	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
	"github.com/protrack-ops/floor-backend-go/internal/domain/management"
	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
	"github.com/protrack-ops/floor-backend-go/internal/domain/schedule"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidSerial):
		Unauthorized(w, "Invalid serial number")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Leader domain errors
	case errors.Is(err, leader.ErrLeaderNotFound):
		NotFound(w, "Team leader not found")
	case errors.Is(err, leader.ErrSerialNumberTaken):
		Conflict(w, "Serial number already in use")
	case errors.Is(err, leader.ErrEnhancementInProgress):
		Conflict(w, "Portrait enhancement already in progress")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee id already registered")

	// Production domain errors
	case errors.Is(err, production.ErrEntryNotFound):
		NotFound(w, "Production entry not found")

	// Directory and floor errors
	case errors.Is(err, management.ErrMemberNotFound):
		NotFound(w, "Management member not found")
	case errors.Is(err, management.ErrDirectorNotFound):
		NotFound(w, "No director in management roster")
	case errors.Is(err, inventory.ErrItemNotFound):
		NotFound(w, "Inventory item not found")
	case errors.Is(err, schedule.ErrEntryNotFound):
		NotFound(w, "Schedule entry not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
