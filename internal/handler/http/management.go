package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/protrack-ops/floor-backend-go/internal/domain/management"
	"github.com/protrack-ops/floor-backend-go/internal/handler/http/response"
)

type ManagementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Director(w http.ResponseWriter, r *http.Request)
}

type managementHandlerImpl struct {
	managementService management.Service
}

func NewManagementHandler(managementService management.Service) ManagementHandler {
	return &managementHandlerImpl{managementService: managementService}
}

// List implements ManagementHandler.
func (h *managementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.managementService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// Update implements ManagementHandler.
func (h *managementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req management.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	member, err := h.managementService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, member)
}

// Director implements ManagementHandler.
func (h *managementHandlerImpl) Director(w http.ResponseWriter, r *http.Request) {
	director, err := h.managementService.Director(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, director)
}
