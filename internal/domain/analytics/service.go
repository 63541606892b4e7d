package analytics

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mwork/mwork-ads/internal/domain/advertisement"
	"github.com/mwork/mwork-ads/internal/domain/campaign"
	"github.com/mwork/mwork-ads/internal/domain/performance"
)

// CampaignReader is the slice of the campaign domain this facade needs
type CampaignReader interface {
	Get(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error)
	List(ctx context.Context, filter *campaign.ListFilter) ([]*campaign.Campaign, error)
}

// AdvertisementReader lists a campaign's creatives
type AdvertisementReader interface {
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*advertisement.Advertisement, error)
}

// PerformanceReader reads a campaign's daily counter rows
type PerformanceReader interface {
	RecordsForCampaign(ctx context.Context, campaignID uuid.UUID, rng *performance.DateRange) ([]performance.Record, error)
}

// Service assembles cross-domain read views for the admin console. It
// never writes; all mutation stays in the owning domains.
type Service struct {
	campaigns      CampaignReader
	advertisements AdvertisementReader
	performances   PerformanceReader
}

// NewService creates analytics service
func NewService(campaigns CampaignReader, advertisements AdvertisementReader, performances PerformanceReader) *Service {
	return &Service{
		campaigns:      campaigns,
		advertisements: advertisements,
		performances:   performances,
	}
}

// CampaignDetail assembles the single-campaign view. The campaign itself
// is the primary fetch: a missing campaign fails the whole view. The
// creative list and performance history are fetched concurrently and
// degrade to empty collections with a warning, so one unavailable
// collaborator does not blank the page. Context cancellation aborts
// everything.
func (s *Service) CampaignDetail(ctx context.Context, id uuid.UUID) (*CampaignDetail, error) {
	c, err := s.campaigns.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &CampaignDetail{
		Campaign:       c,
		Advertisements: []*advertisement.Advertisement{},
		Performance:    []performance.Point{},
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		warnings []string
	)

	warn := func(msg string, err error) {
		log.Warn().Err(err).Str("campaign_id", id.String()).Msg(msg)
		mu.Lock()
		warnings = append(warnings, msg)
		mu.Unlock()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		ads, err := s.advertisements.ListByCampaign(ctx, id)
		if err != nil {
			warn("advertisements unavailable", err)
			return
		}
		mu.Lock()
		detail.Advertisements = ads
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		records, err := s.performances.RecordsForCampaign(ctx, id, nil)
		if err != nil {
			warn("performance data unavailable", err)
			return
		}
		mu.Lock()
		detail.Performance = performance.TimeSeries(records)
		detail.Totals = performance.Sum(records)
		mu.Unlock()
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	detail.Warnings = warnings
	return detail, nil
}

// FleetSummary assembles the dashboard rollup over the given campaigns.
// A nil filter means every non-cancelled campaign. Per-campaign totals
// are fetched concurrently; a campaign whose history is unavailable
// contributes zero totals and a warning. The rollup is computed from the
// summed totals, not averaged over campaigns.
func (s *Service) FleetSummary(ctx context.Context, filter *campaign.ListFilter) (*FleetSummary, error) {
	campaigns, err := s.campaigns.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		kept := campaigns[:0]
		for _, c := range campaigns {
			if c.Status != campaign.StatusCancelled {
				kept = append(kept, c)
			}
		}
		campaigns = kept
	}

	summary := &FleetSummary{
		Campaigns: make([]CampaignSummary, len(campaigns)),
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		warnings []string
	)

	for i, c := range campaigns {
		summary.Campaigns[i] = CampaignSummary{
			CampaignID: c.ID.String(),
			Title:      c.Title,
			Status:     c.Status,
		}

		wg.Add(1)
		go func(i int, id uuid.UUID, title string) {
			defer wg.Done()
			records, err := s.performances.RecordsForCampaign(ctx, id, nil)
			if err != nil {
				log.Warn().Err(err).Str("campaign_id", id.String()).Msg("Performance data unavailable for summary")
				mu.Lock()
				warnings = append(warnings, "performance data unavailable for campaign "+title)
				mu.Unlock()
				return
			}
			mu.Lock()
			summary.Campaigns[i].Totals = performance.Sum(records)
			mu.Unlock()
		}(i, c.ID, c.Title)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, cs := range summary.Campaigns {
		summary.Rollup.TotalViews += cs.Totals.TotalViews
		summary.Rollup.TotalClicks += cs.Totals.TotalClicks
	}
	summary.Rollup.AverageClickRate = performance.ClickRate(summary.Rollup.TotalViews, summary.Rollup.TotalClicks)
	summary.Warnings = warnings
	return summary, nil
}

// Export lists campaigns matching the filter and flattens them into
// export rows
func (s *Service) Export(ctx context.Context, filter *campaign.ListFilter) ([]ExportRow, error) {
	campaigns, err := s.campaigns.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ExportRows(campaigns), nil
}

// ExportRows projects campaigns into flat export rows. Pure.
func ExportRows(campaigns []*campaign.Campaign) []ExportRow {
	rows := make([]ExportRow, len(campaigns))
	for i, c := range campaigns {
		rows[i] = ExportRow{
			Title:           c.Title,
			AdvertiserEmail: c.AdvertiserEmail,
			Budget:          strconv.FormatFloat(c.Budget, 'f', 2, 64),
			Status:          string(c.Status),
			StartDate:       c.StartDate.Format("2006-01-02"),
			EndDate:         c.EndDate.Format("2006-01-02"),
		}
	}
	return rows
}
