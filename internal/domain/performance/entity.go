package performance

import (
	"time"

	"github.com/google/uuid"
)

// Record is one per-day views/clicks counter row for a campaign. Rows are
// appended by external ingestion and never validated here: clicks may
// exceed views, and a (campaign, date) pair may appear more than once.
type Record struct {
	ID         uuid.UUID `db:"id" json:"id"`
	CampaignID uuid.UUID `db:"campaign_id" json:"campaign_id"`
	Date       time.Time `db:"date" json:"date"`
	Views      int64     `db:"views" json:"views"`
	Clicks     int64     `db:"clicks" json:"clicks"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// RatedRecord is a Record with its derived click-through rate
type RatedRecord struct {
	Record
	ClickRate float64 `json:"click_rate"`
}

// Totals is the aggregate over a record set. AverageClickRate is computed
// from the totals, not as a mean of per-day rates, so low-traffic days do
// not skew it.
type Totals struct {
	TotalViews       int64   `json:"total_views"`
	TotalClicks      int64   `json:"total_clicks"`
	AverageClickRate float64 `json:"average_click_rate"`
}

// Point is one charting point: a calendar day with its summed counters and
// derived rate.
type Point struct {
	Date      string  `json:"date"`
	Views     int64   `json:"views"`
	Clicks    int64   `json:"clicks"`
	ClickRate float64 `json:"click_rate"`
}

// DateRange is an inclusive calendar-day interval
type DateRange struct {
	From time.Time
	To   time.Time
}
