package management

import (
	"context"

	"github.com/protrack-ops/floor-backend-go/internal/domain/management"
)

type ManagementServiceImpl struct {
	managementRepo management.Repository
}

func NewManagementService(managementRepo management.Repository) management.Service {
	return &ManagementServiceImpl{managementRepo: managementRepo}
}

// List implements management.Service.
func (s *ManagementServiceImpl) List(ctx context.Context) ([]management.Member, error) {
	return s.managementRepo.List(ctx)
}

// Get implements management.Service.
func (s *ManagementServiceImpl) Get(ctx context.Context, id string) (*management.Member, error) {
	return s.managementRepo.GetByID(ctx, id)
}

// Update implements management.Service.
func (s *ManagementServiceImpl) Update(ctx context.Context, id string, req *management.UpdateRequest) (*management.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m, err := s.managementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Name = req.Name
	m.Role = req.Role
	m.Motto = req.Motto
	m.ImageURL = req.ImageURL
	m.Type = management.Type(req.Type)

	if err := s.managementRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Director implements management.Service.
func (s *ManagementServiceImpl) Director(ctx context.Context) (*management.Member, error) {
	members, err := s.managementRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.Type == management.TypeDirector {
			found := m
			return &found, nil
		}
	}
	return nil, management.ErrDirectorNotFound
}
