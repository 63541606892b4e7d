package performance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mwork/mwork-ads/internal/pkg/apperror"
)

// Repository defines performance data access. Rows are append-only from
// this subsystem's perspective; there is no update or delete path.
type Repository interface {
	ListByCampaign(ctx context.Context, campaignID uuid.UUID, rng *DateRange) ([]Record, error)
	Insert(ctx context.Context, record *Record) error
	// AddCounters accumulates views/clicks onto the campaign's row for the
	// given day, appending a fresh row when none exists yet.
	AddCounters(ctx context.Context, campaignID uuid.UUID, date time.Time, views, clicks int64) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates performance repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByCampaign(ctx context.Context, campaignID uuid.UUID, rng *DateRange) ([]Record, error) {
	query := `SELECT id, campaign_id, date, views, clicks, created_at
		 FROM campaign_performances WHERE campaign_id = $1`
	args := []interface{}{campaignID}

	if rng != nil {
		args = append(args, rng.From)
		query += ` AND date >= $2`
		args = append(args, rng.To)
		query += ` AND date <= $3`
	}

	query += ` ORDER BY date ASC, created_at ASC`

	records := []Record{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, apperror.Transport("list performance records", err)
	}
	return records, nil
}

func (r *repository) Insert(ctx context.Context, record *Record) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO campaign_performances (id, campaign_id, date, views, clicks, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		record.ID, record.CampaignID, record.Date, record.Views, record.Clicks, record.CreatedAt)
	return apperror.Transport("insert performance record", err)
}

func (r *repository) AddCounters(ctx context.Context, campaignID uuid.UUID, date time.Time, views, clicks int64) error {
	// Target a single row even when external ingestion already duplicated
	// the day, otherwise the counters would be added to every duplicate.
	result, err := r.db.ExecContext(ctx,
		`UPDATE campaign_performances SET views = views + $3, clicks = clicks + $4
		 WHERE id = (
		     SELECT id FROM campaign_performances
		     WHERE campaign_id = $1 AND date = $2
		     ORDER BY created_at ASC LIMIT 1
		 )`,
		campaignID, date, views, clicks)
	if err != nil {
		return apperror.Transport("add performance counters", err)
	}
	if rows, _ := result.RowsAffected(); rows > 0 {
		return nil
	}

	return r.Insert(ctx, &Record{
		ID:         uuid.New(),
		CampaignID: campaignID,
		Date:       date,
		Views:      views,
		Clicks:     clicks,
		CreatedAt:  time.Now(),
	})
}
