package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/protrack-ops/floor-backend-go/internal/domain/schedule"
	"github.com/protrack-ops/floor-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Week(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Move(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
	Reminder(w http.ResponseWriter, r *http.Request)
	Broadcast(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

// Week implements ScheduleHandler. ?anchor=YYYY-MM-DD shifts the window;
// empty means today.
func (h *scheduleHandlerImpl) Week(w http.ResponseWriter, r *http.Request) {
	week, err := h.scheduleService.Week(r.Context(), r.URL.Query().Get("anchor"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// Assign implements ScheduleHandler.
func (h *scheduleHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req schedule.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	entry, err := h.scheduleService.Assign(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// Move implements ScheduleHandler. Drag-and-drop between cells.
func (h *scheduleHandlerImpl) Move(w http.ResponseWriter, r *http.Request) {
	var req schedule.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	entry, err := h.scheduleService.Move(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// Unassign implements ScheduleHandler.
func (h *scheduleHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	shift := chi.URLParam(r, "shift")

	if err := h.scheduleService.Unassign(r.Context(), date, shift); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cell cleared", nil)
}

// Reminder implements ScheduleHandler.
func (h *scheduleHandlerImpl) Reminder(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	shift := chi.URLParam(r, "shift")

	reminder, err := h.scheduleService.CellReminder(r.Context(), date, shift)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reminder)
}

// Broadcast implements ScheduleHandler. Builds the day's roster message for
// the floor group chat.
func (h *scheduleHandlerImpl) Broadcast(w http.ResponseWriter, r *http.Request) {
	broadcast, err := h.scheduleService.DailyBroadcast(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, broadcast)
}
