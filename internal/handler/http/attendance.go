package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/protrack-ops/floor-backend-go/internal/domain/attendance"
	"github.com/protrack-ops/floor-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Set(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Summary implements AttendanceHandler. The payload pairs the day's headline
// counts with the per-supervisor breakdown the dashboard cards show.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	summary, err := h.attendanceService.Summarize(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	breakdown, err := h.attendanceService.SupervisorBreakdown(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"summary":     summary,
		"supervisors": breakdown,
	})
}

// Set implements AttendanceHandler.
func (h *attendanceHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	record, err := h.attendanceService.Set(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}
