package targeting

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service provides targeting catalog lookups and geo zone administration
type Service struct {
	repo Repository
}

// NewService creates targeting service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListGeoZones returns all geo zones
func (s *Service) ListGeoZones(ctx context.Context) ([]*GeoZone, error) {
	return s.repo.ListGeoZones(ctx)
}

// GetGeoZone returns a geo zone by id
func (s *Service) GetGeoZone(ctx context.Context, id uuid.UUID) (*GeoZone, error) {
	return s.repo.GetGeoZone(ctx, id)
}

// CreateGeoZone creates a new geo zone
func (s *Service) CreateGeoZone(ctx context.Context, req *CreateGeoZoneRequest) (*GeoZone, error) {
	now := time.Now()
	zone := &GeoZone{
		ID:        uuid.New(),
		Name:      req.Name,
		Boundary:  req.Boundary,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateGeoZone(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

// UpdateGeoZone replaces a geo zone's name and boundary
func (s *Service) UpdateGeoZone(ctx context.Context, id uuid.UUID, req *UpdateGeoZoneRequest) (*GeoZone, error) {
	zone, err := s.repo.GetGeoZone(ctx, id)
	if err != nil {
		return nil, err
	}

	zone.Name = req.Name
	zone.Boundary = req.Boundary
	zone.UpdatedAt = time.Now()

	if err := s.repo.UpdateGeoZone(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

// DeleteGeoZone removes a geo zone. Campaigns referencing it fall back to
// untargeted delivery (the FK nulls out).
func (s *Service) DeleteGeoZone(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteGeoZone(ctx, id)
}

// ListSkillCategories returns the skill category tag set
func (s *Service) ListSkillCategories(ctx context.Context) ([]*SkillCategory, error) {
	return s.repo.ListSkillCategories(ctx)
}

// GetSkillCategory returns a skill category by id
func (s *Service) GetSkillCategory(ctx context.Context, id uuid.UUID) (*SkillCategory, error) {
	return s.repo.GetSkillCategory(ctx, id)
}
