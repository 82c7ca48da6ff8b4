package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
	"github.com/protrack-ops/floor-backend-go/internal/domain/schedule"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/share"
)

// The planning window runs from two days back to five days ahead.
const (
	windowDaysBack  = 2
	windowDaysAhead = 5
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.Repository
	leaderRepo   leader.Repository
}

func NewScheduleService(scheduleRepo schedule.Repository, leaderRepo leader.Repository) schedule.Service {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		leaderRepo:   leaderRepo,
	}
}

// Week implements schedule.Service.
func (s *ScheduleServiceImpl) Week(ctx context.Context, anchor string) (*schedule.WeekResponse, error) {
	anchorDay := time.Now()
	if anchor != "" {
		parsed, err := time.Parse("2006-01-02", anchor)
		if err != nil {
			return nil, fmt.Errorf("parse anchor date: %w", err)
		}
		anchorDay = parsed
	}

	dates := make([]string, 0, windowDaysBack+windowDaysAhead+1)
	inWindow := make(map[string]struct{})
	for offset := -windowDaysBack; offset <= windowDaysAhead; offset++ {
		d := anchorDay.AddDate(0, 0, offset).Format("2006-01-02")
		dates = append(dates, d)
		inWindow[d] = struct{}{}
	}

	all, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}

	entries := make([]schedule.Entry, 0)
	for _, e := range all {
		if _, ok := inWindow[e.Date]; ok {
			entries = append(entries, e)
		}
	}

	return &schedule.WeekResponse{Dates: dates, Entries: entries}, nil
}

// Assign implements schedule.Service.
func (s *ScheduleServiceImpl) Assign(ctx context.Context, req *schedule.AssignRequest) (*schedule.Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.leaderRepo.GetByID(ctx, req.LeaderID); err != nil {
		return nil, err
	}

	entry := &schedule.Entry{
		ID:       uuid.NewString(),
		LeaderID: req.LeaderID,
		Date:     req.Date,
		Shift:    production.Shift(req.Shift),
	}
	if err := s.scheduleRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Move implements schedule.Service.
func (s *ScheduleServiceImpl) Move(ctx context.Context, req *schedule.MoveRequest) (*schedule.Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	src, err := s.scheduleRepo.GetCell(ctx, req.SrcDate, req.SrcShift)
	if err != nil {
		return nil, fmt.Errorf("load source cell: %w", err)
	}
	if src == nil {
		return nil, schedule.ErrEntryNotFound
	}

	if err := s.scheduleRepo.DeleteCell(ctx, req.SrcDate, req.SrcShift); err != nil {
		return nil, err
	}

	src.Date = req.DstDate
	src.Shift = production.Shift(req.DstShift)
	if err := s.scheduleRepo.Upsert(ctx, src); err != nil {
		return nil, err
	}
	return src, nil
}

// Unassign implements schedule.Service.
func (s *ScheduleServiceImpl) Unassign(ctx context.Context, date, shift string) error {
	return s.scheduleRepo.DeleteCell(ctx, date, shift)
}

// CellReminder implements schedule.Service.
func (s *ScheduleServiceImpl) CellReminder(ctx context.Context, date, shift string) (*schedule.Reminder, error) {
	entry, err := s.scheduleRepo.GetCell(ctx, date, shift)
	if err != nil {
		return nil, fmt.Errorf("load cell: %w", err)
	}
	if entry == nil {
		return nil, schedule.ErrEntryNotFound
	}

	l, err := s.leaderRepo.GetByID(ctx, entry.LeaderID)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf(
		"Hi %s, reminder: you are on the %s shift (%s) on %s. Please be at your line 15 minutes early for handover.",
		l.Name, entry.Shift, production.ShiftTimes[entry.Shift], entry.Date,
	)

	reminder := &schedule.Reminder{
		LeaderID:   l.ID,
		LeaderName: l.Name,
		Message:    message,
	}
	if l.WhatsApp != nil {
		reminder.WhatsAppLink = share.WhatsAppLink(*l.WhatsApp, message)
	}
	if l.Email != "" {
		reminder.MailtoLink = share.MailtoLink(l.Email, "Shift Reminder", message)
	}
	return reminder, nil
}

// DailyBroadcast implements schedule.Service.
func (s *ScheduleServiceImpl) DailyBroadcast(ctx context.Context, date string) (*schedule.Broadcast, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	all, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}

	byShift := make(map[production.Shift]string)
	for _, e := range all {
		if e.Date != date {
			continue
		}
		name := e.LeaderID
		if l, err := s.leaderRepo.GetByID(ctx, e.LeaderID); err == nil {
			name = l.Name
		}
		byShift[e.Shift] = name
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Shift roster for %s:", date))
	for _, shift := range production.Shifts {
		name, ok := byShift[shift]
		if !ok {
			name = "unassigned"
		}
		lines = append(lines, fmt.Sprintf("%s (%s): %s", shift, production.ShiftTimes[shift], name))
	}
	lines = append(lines, "Please be at your line 15 minutes early for handover.")
	message := strings.Join(lines, "\n")

	return &schedule.Broadcast{
		Date:         date,
		Message:      message,
		WhatsAppLink: share.WhatsAppLink("", message),
	}, nil
}
