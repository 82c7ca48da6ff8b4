package attendance

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/protrack-ops/floor-backend-go/internal/domain/attendance"
	"github.com/protrack-ops/floor-backend-go/internal/domain/employee"
	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	leaderRepo     leader.Repository
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	leaderRepo leader.Repository,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		leaderRepo:     leaderRepo,
	}
}

// Set implements attendance.Service.
func (s *AttendanceServiceImpl) Set(ctx context.Context, req attendance.SetRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	record := attendance.Record{
		EmployeeID:    req.EmployeeID,
		Date:          req.Date,
		Status:        req.Status,
		AttachmentURL: req.AttachmentURL,
	}

	// A status-only update keeps the previously attached proof image.
	if record.AttachmentURL == nil {
		existing, err := s.attendanceRepo.Get(ctx, req.EmployeeID, req.Date)
		if err != nil {
			return attendance.Record{}, fmt.Errorf("load existing record: %w", err)
		}
		if existing != nil {
			record.AttachmentURL = existing.AttachmentURL
		}
	}

	if err := s.attendanceRepo.Upsert(ctx, record); err != nil {
		return attendance.Record{}, fmt.Errorf("save attendance: %w", err)
	}
	return record, nil
}

// Summarize implements attendance.Service.
func (s *AttendanceServiceImpl) Summarize(ctx context.Context, date string) (attendance.Summary, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("list employees: %w", err)
	}
	records, err := s.recordsByEmployee(ctx, date)
	if err != nil {
		return attendance.Summary{}, err
	}

	summary := attendance.Summary{Date: date, Total: len(employees)}
	for _, emp := range employees {
		rec, ok := records[emp.ID]
		switch {
		case !ok || rec.Status == attendance.StatusAbsent:
			summary.Absent++
		case rec.Status == attendance.StatusPresent:
			summary.Present++
		default:
			summary.Others++
		}
	}
	if summary.Total > 0 {
		summary.Percent = int(math.Round(float64(summary.Present) / float64(summary.Total) * 100))
	}
	return summary, nil
}

// SupervisorBreakdown implements attendance.Service.
func (s *AttendanceServiceImpl) SupervisorBreakdown(ctx context.Context, date string) ([]attendance.SupervisorSummary, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	leaders, err := s.leaderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leaders: %w", err)
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	records, err := s.recordsByEmployee(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]attendance.SupervisorSummary, 0, len(leaders))
	for _, l := range leaders {
		summary := attendance.SupervisorSummary{LeaderID: l.ID, LeaderName: l.Name}
		for _, emp := range employees {
			if emp.SupervisorID == nil || *emp.SupervisorID != l.ID {
				continue
			}
			summary.Total++
			if rec, ok := records[emp.ID]; ok && rec.Status == attendance.StatusPresent {
				summary.Present++
			}
		}
		out = append(out, summary)
	}
	return out, nil
}

// Roster implements attendance.Service.
func (s *AttendanceServiceImpl) Roster(ctx context.Context, filter attendance.RosterFilter) ([]attendance.RosterRow, error) {
	if filter.Date == "" {
		filter.Date = time.Now().Format("2006-01-02")
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	leaders, err := s.leaderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leaders: %w", err)
	}
	records, err := s.recordsByEmployee(ctx, filter.Date)
	if err != nil {
		return nil, err
	}

	leaderNames := make(map[string]string, len(leaders))
	for _, l := range leaders {
		leaderNames[l.ID] = l.Name
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	rows := make([]attendance.RosterRow, 0, len(employees))
	for _, emp := range employees {
		if filter.SupervisorID != nil {
			if emp.SupervisorID == nil || *emp.SupervisorID != *filter.SupervisorID {
				continue
			}
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(emp.Name), search) &&
			!strings.Contains(strings.ToLower(emp.ID), search) {
			continue
		}

		row := attendance.RosterRow{
			EmployeeID:   emp.ID,
			Name:         emp.Name,
			Department:   emp.Department,
			Role:         emp.Role,
			SupervisorID: emp.SupervisorID,
			Status:       attendance.StatusAbsent,
		}
		if emp.SupervisorID != nil {
			// Dangling supervisor ids render as an empty name.
			row.SupervisorName = leaderNames[*emp.SupervisorID]
		}
		if rec, ok := records[emp.ID]; ok {
			row.Status = rec.Status
			row.AttachmentURL = rec.AttachmentURL
			row.HasRecord = true
		}
		rows = append(rows, row)
	}

	sortRoster(rows, filter.SortBy, filter.SortOrder)
	return rows, nil
}

func (s *AttendanceServiceImpl) recordsByEmployee(ctx context.Context, date string) (map[string]attendance.Record, error) {
	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list attendance for %s: %w", date, err)
	}
	byEmployee := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec
	}
	return byEmployee, nil
}

func sortRoster(rows []attendance.RosterRow, sortBy, sortOrder string) {
	if sortBy == "" {
		sortBy = "id"
	}
	less := func(a, b attendance.RosterRow) bool {
		switch sortBy {
		case "name":
			return a.Name < b.Name
		case "status":
			return a.Status < b.Status
		default:
			return a.EmployeeID < b.EmployeeID
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if sortOrder == "desc" {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}
