package advertisement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mwork/mwork-ads/internal/domain/campaign"
	"github.com/mwork/mwork-ads/internal/pkg/apperror"
	"github.com/mwork/mwork-ads/internal/pkg/storage"
)

// CampaignReader is the slice of the campaign domain this service needs
type CampaignReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error)
}

// Service handles advertisement business logic
type Service struct {
	repo      Repository
	campaigns CampaignReader
	media     storage.Storage
}

// NewService creates advertisement service
func NewService(repo Repository, campaigns CampaignReader, media storage.Storage) *Service {
	return &Service{
		repo:      repo,
		campaigns: campaigns,
		media:     media,
	}
}

// Create attaches a new creative to a campaign. Creatives may be attached
// while the campaign is draft, active or paused; completed and cancelled
// campaigns reject new creatives.
func (s *Service) Create(ctx context.Context, req *CreateAdvertisementRequest) (*Advertisement, error) {
	c, err := s.campaigns.GetByID(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}

	if c.Status.Terminal() {
		return nil, apperror.InvalidState("campaign", c.ID.String(), string(c.Status), "attach advertisement")
	}

	mediaType := MediaType(req.MediaType)
	if !mediaType.Valid() {
		return nil, apperror.Validation("advertisement", "media_type", "must be image or video")
	}
	if req.MediaKey == "" {
		return nil, apperror.Validation("advertisement", "media_key", "media reference is required")
	}

	now := time.Now()
	ad := &Advertisement{
		ID:         uuid.New(),
		CampaignID: req.CampaignID,
		MediaType:  mediaType,
		MediaKey:   req.MediaKey,
		Caption:    req.Caption,
		LinkURL:    req.LinkURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, ad); err != nil {
		return nil, err
	}

	ad.MediaURL = s.media.GetURL(ad.MediaKey)
	return ad, nil
}

// Update partially updates caption, link and media reference. A replaced
// media blob is released after the row is saved.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateAdvertisementRequest) (*Advertisement, error) {
	ad, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldMediaKey := ""
	if req.Caption != nil {
		ad.Caption = *req.Caption
	}
	if req.LinkURL != nil {
		ad.LinkURL = *req.LinkURL
	}
	if req.MediaKey != nil {
		if *req.MediaKey == "" {
			return nil, apperror.Validation("advertisement", "media_key", "media reference must not be empty")
		}
		if *req.MediaKey != ad.MediaKey {
			oldMediaKey = ad.MediaKey
			ad.MediaKey = *req.MediaKey
		}
	}
	ad.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, ad); err != nil {
		return nil, err
	}

	if oldMediaKey != "" {
		s.releaseMedia(ctx, oldMediaKey)
	}

	ad.MediaURL = s.media.GetURL(ad.MediaKey)
	return ad, nil
}

// Delete removes a creative and releases its media blob. The owning
// campaign is unaffected.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ad, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.releaseMedia(ctx, ad.MediaKey)
	return nil
}

// Get returns one creative
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Advertisement, error) {
	ad, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ad.MediaURL = s.media.GetURL(ad.MediaKey)
	return ad, nil
}

// ListByCampaign returns a campaign's creatives, newest first. A campaign
// with zero creatives yields an empty list, not an error.
func (s *Service) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*Advertisement, error) {
	ads, err := s.repo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	for _, ad := range ads {
		ad.MediaURL = s.media.GetURL(ad.MediaKey)
	}
	return ads, nil
}

func (s *Service) releaseMedia(ctx context.Context, key string) {
	if err := s.media.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("media_key", key).Msg("Failed to release advertisement media")
	}
}
