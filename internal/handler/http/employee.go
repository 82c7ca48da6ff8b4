package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/protrack-ops/floor-backend-go/internal/domain/attendance"
	"github.com/protrack-ops/floor-backend-go/internal/domain/employee"
	"github.com/protrack-ops/floor-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Roster(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService   employee.Service
	attendanceService attendance.Service
}

func NewEmployeeHandler(employeeService employee.Service, attendanceService attendance.Service) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService:   employeeService,
		attendanceService: attendanceService,
	}
}

// Roster implements EmployeeHandler. Every employee appears with their
// attendance status for the requested date, defaulting to today.
func (h *employeeHandlerImpl) Roster(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	date := q.Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	filter := attendance.RosterFilter{
		Date:      date,
		Search:    q.Get("search"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	if supervisorID := q.Get("supervisor_id"); supervisorID != "" {
		filter.SupervisorID = &supervisorID
	}

	rows, err := h.attendanceService.Roster(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Register implements EmployeeHandler.
func (h *employeeHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req employee.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	emp, err := h.employeeService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee registered", emp)
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}
