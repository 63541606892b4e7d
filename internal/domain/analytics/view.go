package analytics

import (
	"github.com/mwork/mwork-ads/internal/domain/advertisement"
	"github.com/mwork/mwork-ads/internal/domain/campaign"
	"github.com/mwork/mwork-ads/internal/domain/performance"
)

// CampaignDetail is the single-campaign view consumed by the detail page.
// Warnings records secondary fetches that degraded to empty collections;
// the page stays usable with partial data.
type CampaignDetail struct {
	Campaign       *campaign.Campaign             `json:"campaign"`
	Advertisements []*advertisement.Advertisement `json:"advertisements"`
	Performance    []performance.Point            `json:"performance"`
	Totals         performance.Totals             `json:"totals"`
	Warnings       []string                       `json:"warnings,omitempty"`
}

// CampaignSummary is one campaign's line in the fleet dashboard
type CampaignSummary struct {
	CampaignID string             `json:"campaign_id"`
	Title      string             `json:"title"`
	Status     campaign.Status    `json:"status"`
	Totals     performance.Totals `json:"totals"`
}

// FleetSummary is the operator dashboard rollup
type FleetSummary struct {
	Campaigns []CampaignSummary  `json:"campaigns"`
	Rollup    performance.Totals `json:"rollup"`
	Warnings  []string           `json:"warnings,omitempty"`
}

// ExportRow is one flattened campaign line for CSV/spreadsheet export
type ExportRow struct {
	Title           string `json:"title"`
	AdvertiserEmail string `json:"advertiser_email"`
	Budget          string `json:"budget"`
	Status          string `json:"status"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}
