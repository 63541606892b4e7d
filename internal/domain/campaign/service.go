package campaign

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mwork/mwork-ads/internal/domain/targeting"
	"github.com/mwork/mwork-ads/internal/pkg/apperror"
	"github.com/mwork/mwork-ads/internal/pkg/storage"
)

const dateLayout = "2006-01-02"

// Service handles campaign lifecycle business logic
type Service struct {
	repo          Repository
	targetingRepo targeting.Repository
	media         storage.Storage
}

// NewService creates campaign service
func NewService(repo Repository, targetingRepo targeting.Repository, media storage.Storage) *Service {
	return &Service{
		repo:          repo,
		targetingRepo: targetingRepo,
		media:         media,
	}
}

// Create validates the definition and persists a new campaign in draft
func (s *Service) Create(ctx context.Context, req *CreateCampaignRequest) (*Campaign, error) {
	start, end, err := s.validateDefinition(req.Title, req.Budget, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if err := s.checkTargeting(ctx, req.GeoZoneID, req.SkillCategoryIDs); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &Campaign{
		ID:               uuid.New(),
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		Budget:           req.Budget,
		StartDate:        start,
		EndDate:          end,
		Status:           StatusDraft,
		AdvertiserID:     req.AdvertiserID,
		GeoZoneID:        req.GeoZoneID,
		SkillCategoryIDs: req.SkillCategoryIDs,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the campaign's mutable fields, re-validating as in Create.
// Status is untouched: it only moves through Transition.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateCampaignRequest) (*Campaign, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	start, end, err := s.validateDefinition(req.Title, req.Budget, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if err := s.checkTargeting(ctx, req.GeoZoneID, req.SkillCategoryIDs); err != nil {
		return nil, err
	}

	c.Title = strings.TrimSpace(req.Title)
	c.Description = req.Description
	c.Budget = req.Budget
	c.StartDate = start
	c.EndDate = end
	c.GeoZoneID = req.GeoZoneID
	c.SkillCategoryIDs = req.SkillCategoryIDs
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Transition moves the campaign to target status, enforcing the transition
// table. Terminal states reject every target.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, target Status) (*Campaign, error) {
	if !target.Valid() {
		return nil, apperror.Validation("campaign", "status", "unknown status "+string(target))
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !c.Status.CanTransitionTo(target) {
		return nil, apperror.InvalidTransition("campaign", id.String(), string(c.Status), string(target))
	}

	c.Status = target
	c.UpdatedAt = time.Now()
	if err := s.repo.UpdateStatus(ctx, id, target, c.UpdatedAt); err != nil {
		return nil, err
	}

	return c, nil
}

// Delete removes the campaign, cascading to its advertisements and
// performance rows. Media blobs are released afterwards; a CDN failure is
// logged but does not undo the delete.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	mediaKeys, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	for _, key := range mediaKeys {
		if err := s.media.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("media_key", key).Msg("Failed to release advertisement media")
		}
	}
	return nil
}

// Get returns a campaign by id
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Campaign, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns campaigns matching the filter. A nil filter returns all.
func (s *Service) List(ctx context.Context, filter *ListFilter) ([]*Campaign, error) {
	if filter != nil && filter.Status != "" && !filter.Status.Valid() {
		return nil, apperror.Validation("campaign", "status", "unknown status "+string(filter.Status))
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) validateDefinition(title string, budget float64, startDate, endDate string) (time.Time, time.Time, error) {
	var zero time.Time

	if strings.TrimSpace(title) == "" {
		return zero, zero, apperror.Validation("campaign", "title", "must not be empty")
	}
	if budget < 0 {
		return zero, zero, apperror.Validation("campaign", "budget", "must not be negative")
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return zero, zero, apperror.Validation("campaign", "start_date", "must be a date in YYYY-MM-DD format")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return zero, zero, apperror.Validation("campaign", "end_date", "must be a date in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return zero, zero, apperror.Validation("campaign", "end_date", "must not precede start_date")
	}

	return start, end, nil
}

func (s *Service) checkTargeting(ctx context.Context, geoZoneID *uuid.UUID, skillCategoryIDs []uuid.UUID) error {
	if geoZoneID != nil {
		if _, err := s.targetingRepo.GetGeoZone(ctx, *geoZoneID); err != nil {
			return err
		}
	}

	if len(skillCategoryIDs) > 0 {
		count, err := s.targetingRepo.CountSkillCategories(ctx, skillCategoryIDs)
		if err != nil {
			return err
		}
		if count != len(skillCategoryIDs) {
			return apperror.Validation("campaign", "skill_category_ids", "contains unknown skill categories")
		}
	}
	return nil
}
