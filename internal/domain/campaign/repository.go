package campaign

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mwork/mwork-ads/internal/pkg/apperror"
)

const campaignColumns = `id, title, description, budget, start_date, end_date, status,
	advertiser_id, advertiser_email, geo_zone_id, created_at, updated_at`

// Repository defines campaign data access
type Repository interface {
	Create(ctx context.Context, c *Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*Campaign, error)
	Update(ctx context.Context, c *Campaign) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, updatedAt time.Time) error
	// Delete removes the campaign together with its advertisements and
	// performance rows in one transaction. It returns the media keys of the
	// deleted advertisements so the caller can release the blobs.
	Delete(ctx context.Context, id uuid.UUID) ([]string, error)
	List(ctx context.Context, filter *ListFilter) ([]*Campaign, error)
	SkillCategoryIDs(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates campaign repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Campaign) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperror.Transport("create campaign", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO campaigns (`+campaignColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.Title, c.Description, c.Budget, c.StartDate, c.EndDate, c.Status,
		c.AdvertiserID, c.AdvertiserEmail, c.GeoZoneID, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return apperror.Transport("create campaign", err)
	}

	if err := replaceSkillCategories(ctx, tx, c.ID, c.SkillCategoryIDs); err != nil {
		return err
	}

	return apperror.Transport("create campaign", tx.Commit())
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Campaign, error) {
	var c Campaign
	err := r.db.GetContext(ctx, &c,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("campaign", id.String())
		}
		return nil, apperror.Transport("get campaign", err)
	}

	c.SkillCategoryIDs, err = r.SkillCategoryIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Campaign) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperror.Transport("update campaign", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE campaigns
		 SET title = $2, description = $3, budget = $4, start_date = $5, end_date = $6,
		     geo_zone_id = $7, updated_at = $8
		 WHERE id = $1`,
		c.ID, c.Title, c.Description, c.Budget, c.StartDate, c.EndDate,
		c.GeoZoneID, c.UpdatedAt)
	if err != nil {
		return apperror.Transport("update campaign", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperror.NotFound("campaign", c.ID.String())
	}

	if err := replaceSkillCategories(ctx, tx, c.ID, c.SkillCategoryIDs); err != nil {
		return err
	}

	return apperror.Transport("update campaign", tx.Commit())
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, updatedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE campaigns SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, updatedAt)
	if err != nil {
		return apperror.Transport("update campaign status", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperror.NotFound("campaign", id.String())
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) ([]string, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperror.Transport("delete campaign", err)
	}
	defer tx.Rollback()

	mediaKeys := []string{}
	if err := tx.SelectContext(ctx, &mediaKeys,
		`SELECT media_key FROM advertisements WHERE campaign_id = $1`, id); err != nil {
		return nil, apperror.Transport("delete campaign", err)
	}

	for _, q := range []string{
		`DELETE FROM campaign_performances WHERE campaign_id = $1`,
		`DELETE FROM advertisements WHERE campaign_id = $1`,
		`DELETE FROM campaign_skill_categories WHERE campaign_id = $1`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return nil, apperror.Transport("delete campaign", err)
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, apperror.Transport("delete campaign", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, apperror.NotFound("campaign", id.String())
	}

	if err := tx.Commit(); err != nil {
		return nil, apperror.Transport("delete campaign", err)
	}
	return mediaKeys, nil
}

func (r *repository) List(ctx context.Context, filter *ListFilter) ([]*Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE 1=1`
	args := []interface{}{}

	if filter != nil {
		if filter.Status != "" {
			args = append(args, filter.Status)
			query += fmt.Sprintf(" AND status = $%d", len(args))
		}
		if filter.AdvertiserID != nil {
			args = append(args, *filter.AdvertiserID)
			query += fmt.Sprintf(" AND advertiser_id = $%d", len(args))
		}
		if filter.Title != "" {
			args = append(args, "%"+filter.Title+"%")
			query += fmt.Sprintf(" AND title ILIKE $%d", len(args))
		}
	}

	query += ` ORDER BY created_at DESC`

	campaigns := []*Campaign{}
	if err := r.db.SelectContext(ctx, &campaigns, query, args...); err != nil {
		return nil, apperror.Transport("list campaigns", err)
	}
	return campaigns, nil
}

func (r *repository) SkillCategoryIDs(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.SelectContext(ctx, &ids,
		`SELECT skill_category_id FROM campaign_skill_categories WHERE campaign_id = $1`,
		campaignID)
	if err != nil {
		return nil, apperror.Transport("get campaign skill categories", err)
	}
	return ids, nil
}

func replaceSkillCategories(ctx context.Context, tx *sqlx.Tx, campaignID uuid.UUID, ids []uuid.UUID) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM campaign_skill_categories WHERE campaign_id = $1`, campaignID); err != nil {
		return apperror.Transport("replace campaign skill categories", err)
	}
	for _, categoryID := range ids {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO campaign_skill_categories (campaign_id, skill_category_id)
			 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			campaignID, categoryID); err != nil {
			return apperror.Transport("replace campaign skill categories", err)
		}
	}
	return nil
}
