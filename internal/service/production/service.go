package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
)

type ProductionServiceImpl struct {
	productionRepo production.Repository
	leaderRepo     leader.Repository
}

func NewProductionService(productionRepo production.Repository, leaderRepo leader.Repository) production.Service {
	return &ProductionServiceImpl{
		productionRepo: productionRepo,
		leaderRepo:     leaderRepo,
	}
}

// Create implements production.Service.
func (s *ProductionServiceImpl) Create(ctx context.Context, req production.CreateEntryRequest) (production.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return production.EntryResponse{}, err
	}

	if _, err := s.leaderRepo.GetByID(ctx, req.LeaderID); err != nil {
		return production.EntryResponse{}, err
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	totals := production.Aggregate(req.HourlyData)
	entry := production.Entry{
		ID:              uuid.NewString(),
		Shift:           req.Shift,
		Date:            date,
		LineID:          req.LineID,
		LeaderID:        req.LeaderID,
		HourlyData:      req.HourlyData,
		TotalOutput:     totals.Actual,
		TotalTarget:     totals.Target,
		TotalRejects:    totals.Rejects,
		Efficiency:      totals.Efficiency,
		DowntimeMinutes: req.DowntimeMinutes,
		DowntimeReason:  req.DowntimeReason,
	}

	saved, err := s.productionRepo.Create(ctx, entry)
	if err != nil {
		return production.EntryResponse{}, fmt.Errorf("save production entry: %w", err)
	}
	return s.toResponse(ctx, saved), nil
}

// Get implements production.Service.
func (s *ProductionServiceImpl) Get(ctx context.Context, id string) (production.EntryResponse, error) {
	entry, err := s.productionRepo.GetByID(ctx, id)
	if err != nil {
		return production.EntryResponse{}, err
	}
	return s.toResponse(ctx, entry), nil
}

// List implements production.Service.
func (s *ProductionServiceImpl) List(ctx context.Context) ([]production.EntryResponse, error) {
	entries, err := s.productionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list production entries: %w", err)
	}

	names, err := s.leaderNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]production.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toResponseWithName(entry, names[entry.LeaderID]))
	}
	return out, nil
}

// Delete implements production.Service.
func (s *ProductionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.productionRepo.Delete(ctx, id)
}

// ClearArchive implements production.Service.
func (s *ProductionServiceImpl) ClearArchive(ctx context.Context) error {
	return s.productionRepo.DeleteAll(ctx)
}

func (s *ProductionServiceImpl) toResponse(ctx context.Context, entry production.Entry) production.EntryResponse {
	var name string
	if l, err := s.leaderRepo.GetByID(ctx, entry.LeaderID); err == nil {
		name = l.Name
	}
	return toResponseWithName(entry, name)
}

func (s *ProductionServiceImpl) leaderNames(ctx context.Context) (map[string]string, error) {
	leaders, err := s.leaderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leaders: %w", err)
	}
	names := make(map[string]string, len(leaders))
	for _, l := range leaders {
		names[l.ID] = l.Name
	}
	return names, nil
}

func toResponseWithName(entry production.Entry, leaderName string) production.EntryResponse {
	return production.EntryResponse{
		ID:              entry.ID,
		Shift:           entry.Shift,
		Date:            entry.Date,
		LineID:          entry.LineID,
		LeaderID:        entry.LeaderID,
		LeaderName:      leaderName,
		HourlyData:      entry.HourlyData,
		TotalOutput:     entry.TotalOutput,
		TotalTarget:     entry.TotalTarget,
		TotalRejects:    entry.TotalRejects,
		Efficiency:      entry.Efficiency,
		DowntimeMinutes: entry.DowntimeMinutes,
		DowntimeReason:  entry.DowntimeReason,
	}
}
