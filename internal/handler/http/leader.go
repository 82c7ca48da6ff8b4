package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
	"github.com/protrack-ops/floor-backend-go/internal/handler/http/response"
)

type LeaderHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Suspend(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
	Metrics(w http.ResponseWriter, r *http.Request)
	Performance(w http.ResponseWriter, r *http.Request)
	UploadPortrait(w http.ResponseWriter, r *http.Request)
	Badge(w http.ResponseWriter, r *http.Request)
}

type leaderHandlerImpl struct {
	leaderService leader.Service
}

func NewLeaderHandler(leaderService leader.Service) LeaderHandler {
	return &leaderHandlerImpl{leaderService: leaderService}
}

// List implements LeaderHandler.
func (h *leaderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := leader.ListFilter{
		Search:    q.Get("search"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	leaders, err := h.leaderService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaders)
}

// Get implements LeaderHandler.
func (h *leaderHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.leaderService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, l)
}

// Create implements LeaderHandler.
func (h *leaderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leader.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	l, err := h.leaderService.Create(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Team leader created", l)
}

// Update implements LeaderHandler.
func (h *leaderHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req leader.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	l, err := h.leaderService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, l)
}

// Delete implements LeaderHandler.
func (h *leaderHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.leaderService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team leader deleted", nil)
}

// Suspend implements LeaderHandler.
func (h *leaderHandlerImpl) Suspend(w http.ResponseWriter, r *http.Request) {
	var req leader.SuspendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	l, err := h.leaderService.Suspend(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, l)
}

// Activate implements LeaderHandler.
func (h *leaderHandlerImpl) Activate(w http.ResponseWriter, r *http.Request) {
	l, err := h.leaderService.Activate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, l)
}

// Metrics implements LeaderHandler.
func (h *leaderHandlerImpl) Metrics(w http.ResponseWriter, r *http.Request) {
	perf, err := h.leaderService.Performance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, perf)
}

// Performance implements LeaderHandler. The leaderboard is searchable and
// sortable from the query string.
func (h *leaderHandlerImpl) Performance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := leader.PerformanceFilter{
		Search:    q.Get("search"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	all, err := h.leaderService.PerformanceAll(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, all)
}

// UploadPortrait implements LeaderHandler. The upload is stored right away;
// enhancement continues in the background, hence 202.
func (h *leaderHandlerImpl) UploadPortrait(w http.ResponseWriter, r *http.Request) {
	var req leader.PortraitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	l, err := h.leaderService.EnhancePortrait(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Accepted(w, "Portrait stored, enhancement in progress", l)
}

// Badge implements LeaderHandler. Serves the QR login badge as a plain PNG.
func (h *leaderHandlerImpl) Badge(w http.ResponseWriter, r *http.Request) {
	png, err := h.leaderService.BadgePNG(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
