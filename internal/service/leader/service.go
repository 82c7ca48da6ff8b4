package leader

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/enhance"
)

const badgeSize = 256

type LeaderServiceImpl struct {
	leaderRepo     leader.Repository
	productionRepo production.Repository
	enhancer       enhance.Enhancer

	// inFlight tracks leaders with a portrait enhancement running.
	inFlightMu sync.Mutex
	inFlight   map[string]struct{}
}

func NewLeaderService(
	leaderRepo leader.Repository,
	productionRepo production.Repository,
	enhancer enhance.Enhancer,
) leader.Service {
	return &LeaderServiceImpl{
		leaderRepo:     leaderRepo,
		productionRepo: productionRepo,
		enhancer:       enhancer,
		inFlight:       make(map[string]struct{}),
	}
}

// List implements leader.Service. Reads reconcile statuses first so a
// leader whose return date passed overnight never shows as suspended.
func (s *LeaderServiceImpl) List(ctx context.Context, filter leader.ListFilter) ([]leader.TeamLeader, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.ReconcileStatuses(ctx); err != nil {
		return nil, err
	}

	leaders, err := s.leaderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		filtered := leaders[:0]
		for _, l := range leaders {
			if strings.Contains(strings.ToLower(l.Name), search) {
				filtered = append(filtered, l)
			}
		}
		leaders = filtered
	}

	if filter.SortBy != "" {
		less := func(a, b leader.TeamLeader) bool {
			if filter.SortBy == "status" {
				return a.Status < b.Status
			}
			return a.Name < b.Name
		}
		sort.SliceStable(leaders, func(i, j int) bool {
			if filter.SortOrder == "desc" {
				return less(leaders[j], leaders[i])
			}
			return less(leaders[i], leaders[j])
		})
	}
	return leaders, nil
}

// Get implements leader.Service.
func (s *LeaderServiceImpl) Get(ctx context.Context, id string) (*leader.TeamLeader, error) {
	if _, err := s.ReconcileStatuses(ctx); err != nil {
		return nil, err
	}
	return s.leaderRepo.GetByID(ctx, id)
}

// Create implements leader.Service.
func (s *LeaderServiceImpl) Create(ctx context.Context, req *leader.CreateRequest) (*leader.TeamLeader, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l := &leader.TeamLeader{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Role:          req.Role,
		Email:         req.Email,
		SerialNumber:  req.SerialNumber,
		WhatsApp:      req.WhatsApp,
		WhatsAppGroup: req.WhatsAppGroup,
		GroupEmail:    req.GroupEmail,
		ImageURL:      req.ImageURL,
		Status:        leader.StatusActive,
	}
	if err := s.leaderRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Update implements leader.Service.
func (s *LeaderServiceImpl) Update(ctx context.Context, id string, req *leader.UpdateRequest) (*leader.TeamLeader, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.leaderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.Role != nil {
		l.Role = *req.Role
	}
	if req.Email != nil {
		l.Email = *req.Email
	}
	if req.SerialNumber != nil {
		l.SerialNumber = *req.SerialNumber
	}
	if req.WhatsApp != nil {
		l.WhatsApp = req.WhatsApp
	}
	if req.WhatsAppGroup != nil {
		l.WhatsAppGroup = req.WhatsAppGroup
	}
	if req.GroupEmail != nil {
		l.GroupEmail = req.GroupEmail
	}
	if req.ImageURL != nil {
		l.ImageURL = *req.ImageURL
	}

	if err := s.leaderRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete implements leader.Service.
func (s *LeaderServiceImpl) Delete(ctx context.Context, id string) error {
	return s.leaderRepo.Delete(ctx, id)
}

// Suspend implements leader.Service.
func (s *LeaderServiceImpl) Suspend(ctx context.Context, id string, req *leader.SuspendRequest) (*leader.TeamLeader, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.leaderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	l.Status = leader.Status(req.Status)
	reason := req.Reason
	l.StoppageReason = &reason
	l.ReturnDate = req.ReturnDate

	if err := s.leaderRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Activate implements leader.Service.
func (s *LeaderServiceImpl) Activate(ctx context.Context, id string) (*leader.TeamLeader, error) {
	l, err := s.leaderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	l.Status = leader.StatusActive
	l.StoppageReason = nil
	l.ReturnDate = nil

	if err := s.leaderRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// ReconcileStatuses implements leader.Service. A suspended leader whose
// return date is today or earlier goes back to active, reason and return
// date cleared.
func (s *LeaderServiceImpl) ReconcileStatuses(ctx context.Context) ([]string, error) {
	leaders, err := s.leaderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leaders: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	var changed []string
	for _, l := range leaders {
		if l.Status == leader.StatusActive || l.ReturnDate == nil {
			continue
		}
		if *l.ReturnDate > today {
			continue
		}
		l.Status = leader.StatusActive
		l.StoppageReason = nil
		l.ReturnDate = nil
		update := l
		if err := s.leaderRepo.Update(ctx, &update); err != nil {
			return changed, fmt.Errorf("reactivate leader %s: %w", l.ID, err)
		}
		changed = append(changed, l.ID)
	}
	return changed, nil
}

// Performance implements leader.Service.
func (s *LeaderServiceImpl) Performance(ctx context.Context, id string) (*leader.PerformanceResponse, error) {
	l, err := s.leaderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.productionRepo.ListByLeader(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list production for leader %s: %w", id, err)
	}

	return &leader.PerformanceResponse{
		Leader:  *l,
		Metrics: leader.ComputeMetrics(entries),
	}, nil
}

// PerformanceAll implements leader.Service.
func (s *LeaderServiceImpl) PerformanceAll(ctx context.Context, filter leader.PerformanceFilter) ([]leader.PerformanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	leaders, err := s.List(ctx, leader.ListFilter{})
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]leader.PerformanceResponse, 0, len(leaders))
	for _, l := range leaders {
		if search != "" && !strings.Contains(strings.ToLower(l.Name), search) {
			continue
		}
		entries, err := s.productionRepo.ListByLeader(ctx, l.ID)
		if err != nil {
			return nil, fmt.Errorf("list production for leader %s: %w", l.ID, err)
		}
		out = append(out, leader.PerformanceResponse{
			Leader:  l,
			Metrics: leader.ComputeMetrics(entries),
		})
	}

	sortPerformance(out, filter.SortBy, filter.SortOrder)
	return out, nil
}

func sortPerformance(rows []leader.PerformanceResponse, sortBy, sortOrder string) {
	if sortBy == "" {
		return
	}
	less := func(a, b leader.PerformanceResponse) bool {
		switch sortBy {
		case "shifts":
			return a.Metrics.ShiftsCompleted < b.Metrics.ShiftsCompleted
		case "efficiency":
			return a.Metrics.AvgEfficiency < b.Metrics.AvgEfficiency
		case "rating":
			return a.Metrics.Rating < b.Metrics.Rating
		default:
			return a.Leader.Name < b.Leader.Name
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if sortOrder == "desc" {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

// EnhancePortrait implements leader.Service. The raw upload is stored right
// away so the roster never shows a stale photo; the enhanced version lands
// whenever the model finishes. A failed enhancement keeps the upload.
func (s *LeaderServiceImpl) EnhancePortrait(ctx context.Context, id string, req *leader.PortraitRequest) (*leader.TeamLeader, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.leaderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.inFlightMu.Lock()
	if _, busy := s.inFlight[id]; busy {
		s.inFlightMu.Unlock()
		return nil, leader.ErrEnhancementInProgress
	}
	s.inFlight[id] = struct{}{}
	s.inFlightMu.Unlock()

	l.ImageURL = dataURI(req.MimeType, req.ImageData)
	if err := s.leaderRepo.Update(ctx, l); err != nil {
		s.clearInFlight(id)
		return nil, err
	}

	go s.runEnhancement(id, req.ImageData, req.MimeType)

	return l, nil
}

func (s *LeaderServiceImpl) runEnhancement(id, imageData, mimeType string) {
	defer s.clearInFlight(id)

	// Detached from the request; the upload already succeeded.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	enhanced, err := s.enhancer.Enhance(ctx, imageData, mimeType)
	if err != nil {
		slog.Warn("Portrait enhancement failed, keeping original", "leader_id", id, "error", err)
		return
	}

	l, err := s.leaderRepo.GetByID(ctx, id)
	if err != nil {
		// Leader removed mid-enhancement.
		return
	}
	l.ImageURL = dataURI("image/png", enhanced)
	if err := s.leaderRepo.Update(ctx, l); err != nil {
		slog.Error("Failed to store enhanced portrait", "leader_id", id, "error", err)
	}
}

func (s *LeaderServiceImpl) clearInFlight(id string) {
	s.inFlightMu.Lock()
	delete(s.inFlight, id)
	s.inFlightMu.Unlock()
}

// BadgePNG implements leader.Service. The QR payload is the serial number;
// scanning it at the kiosk logs the leader in.
func (s *LeaderServiceImpl) BadgePNG(ctx context.Context, id string) ([]byte, error) {
	l, err := s.leaderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(l.SerialNumber, qrcode.Medium, badgeSize)
	if err != nil {
		return nil, fmt.Errorf("encode badge qr: %w", err)
	}
	return png, nil
}

func dataURI(mimeType, base64Data string) string {
	return "data:" + mimeType + ";base64," + base64Data
}
