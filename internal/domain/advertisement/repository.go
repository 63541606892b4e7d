package advertisement

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mwork/mwork-ads/internal/pkg/apperror"
)

// Repository defines advertisement data access
type Repository interface {
	Create(ctx context.Context, ad *Advertisement) error
	GetByID(ctx context.Context, id uuid.UUID) (*Advertisement, error)
	Update(ctx context.Context, ad *Advertisement) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*Advertisement, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates advertisement repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ad *Advertisement) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO advertisements (id, campaign_id, media_type, media_key, caption, link_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ad.ID, ad.CampaignID, ad.MediaType, ad.MediaKey, ad.Caption, ad.LinkURL,
		ad.CreatedAt, ad.UpdatedAt)
	return apperror.Transport("create advertisement", err)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Advertisement, error) {
	var ad Advertisement
	err := r.db.GetContext(ctx, &ad,
		`SELECT id, campaign_id, media_type, media_key, caption, link_url, created_at, updated_at
		 FROM advertisements WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("advertisement", id.String())
		}
		return nil, apperror.Transport("get advertisement", err)
	}
	return &ad, nil
}

func (r *repository) Update(ctx context.Context, ad *Advertisement) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE advertisements SET caption = $2, link_url = $3, media_key = $4, updated_at = $5
		 WHERE id = $1`,
		ad.ID, ad.Caption, ad.LinkURL, ad.MediaKey, time.Now())
	if err != nil {
		return apperror.Transport("update advertisement", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperror.NotFound("advertisement", ad.ID.String())
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return apperror.Transport("delete advertisement", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperror.NotFound("advertisement", id.String())
	}
	return nil
}

func (r *repository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*Advertisement, error) {
	ads := []*Advertisement{}
	err := r.db.SelectContext(ctx, &ads,
		`SELECT id, campaign_id, media_type, media_key, caption, link_url, created_at, updated_at
		 FROM advertisements WHERE campaign_id = $1 ORDER BY created_at DESC`, campaignID)
	if err != nil {
		return nil, apperror.Transport("list advertisements", err)
	}
	return ads, nil
}
