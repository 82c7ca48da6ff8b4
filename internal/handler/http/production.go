package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
	"github.com/protrack-ops/floor-backend-go/internal/handler/http/response"
)

type ProductionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type productionHandlerImpl struct {
	productionService production.Service
}

func NewProductionHandler(productionService production.Service) ProductionHandler {
	return &productionHandlerImpl{productionService: productionService}
}

// List implements ProductionHandler. Entries come back most recent first.
func (h *productionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.productionService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Get implements ProductionHandler.
func (h *productionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.productionService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// Create implements ProductionHandler.
func (h *productionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req production.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	entry, err := h.productionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Production entry saved", entry)
}

// Delete implements ProductionHandler.
func (h *productionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.productionService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Production entry deleted", nil)
}

// Clear implements ProductionHandler. Wipes the whole archive.
func (h *productionHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.productionService.ClearArchive(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Production archive cleared", nil)
}
