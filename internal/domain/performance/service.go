package performance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mwork/mwork-ads/internal/pkg/apperror"
)

// IngestRequest represents one externally ingested daily counter row
type IngestRequest struct {
	CampaignID uuid.UUID `json:"campaign_id" validate:"required"`
	Date       string    `json:"date" validate:"required,datestr"`
	Views      int64     `json:"views" validate:"gte=0"`
	Clicks     int64     `json:"clicks" validate:"gte=0"`
}

// Service provides performance reads and the append-only ingest path.
// Derived metrics live in metrics.go as pure functions.
type Service struct {
	repo Repository
}

// NewService creates performance service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RecordsForCampaign returns the campaign's rows ordered by date, optionally
// restricted to an inclusive date range. An empty result is valid.
func (s *Service) RecordsForCampaign(ctx context.Context, campaignID uuid.UUID, rng *DateRange) ([]Record, error) {
	if rng != nil && rng.To.Before(rng.From) {
		return nil, apperror.Validation("performance", "date_range", "to must not precede from")
	}
	return s.repo.ListByCampaign(ctx, campaignID, rng)
}

// Ingest appends one daily counter row. Counters are accumulated onto an
// existing row for the same day when one exists. Note clicks > views is
// accepted: ingestion data is upstream noise we report, not police.
func (s *Service) Ingest(ctx context.Context, req *IngestRequest) error {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return apperror.Validation("performance", "date", "must be a date in YYYY-MM-DD format")
	}
	if req.Views < 0 {
		return apperror.Validation("performance", "views", "must not be negative")
	}
	if req.Clicks < 0 {
		return apperror.Validation("performance", "clicks", "must not be negative")
	}

	return s.repo.AddCounters(ctx, req.CampaignID, date, req.Views, req.Clicks)
}
