package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/protrack-ops/floor-backend-go/internal/domain/inventory"
	"github.com/protrack-ops/floor-backend-go/internal/handler/http/response"
)

type InventoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type inventoryHandlerImpl struct {
	inventoryService inventory.Service
}

func NewInventoryHandler(inventoryService inventory.Service) InventoryHandler {
	return &inventoryHandlerImpl{inventoryService: inventoryService}
}

// List implements InventoryHandler. ?low_stock=true narrows to items below
// their threshold.
func (h *inventoryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	lowOnly := r.URL.Query().Get("low_stock") == "true"

	items, err := h.inventoryService.List(r.Context(), lowOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// Create implements InventoryHandler.
func (h *inventoryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req inventory.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.inventoryService.Create(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Inventory item created", item)
}

// Update implements InventoryHandler.
func (h *inventoryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req inventory.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.inventoryService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

// Delete implements InventoryHandler.
func (h *inventoryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Inventory item deleted", nil)
}
