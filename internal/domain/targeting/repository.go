package targeting

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mwork/mwork-ads/internal/pkg/apperror"
)

// Repository defines targeting catalog data access
type Repository interface {
	ListGeoZones(ctx context.Context) ([]*GeoZone, error)
	GetGeoZone(ctx context.Context, id uuid.UUID) (*GeoZone, error)
	CreateGeoZone(ctx context.Context, zone *GeoZone) error
	UpdateGeoZone(ctx context.Context, zone *GeoZone) error
	DeleteGeoZone(ctx context.Context, id uuid.UUID) error

	ListSkillCategories(ctx context.Context) ([]*SkillCategory, error)
	GetSkillCategory(ctx context.Context, id uuid.UUID) (*SkillCategory, error)
	CountSkillCategories(ctx context.Context, ids []uuid.UUID) (int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates targeting repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListGeoZones(ctx context.Context) ([]*GeoZone, error) {
	zones := []*GeoZone{}
	err := r.db.SelectContext(ctx, &zones,
		`SELECT id, name, boundary, created_at, updated_at FROM geo_zones ORDER BY name`)
	if err != nil {
		return nil, apperror.Transport("list geo zones", err)
	}
	return zones, nil
}

func (r *repository) GetGeoZone(ctx context.Context, id uuid.UUID) (*GeoZone, error) {
	var zone GeoZone
	err := r.db.GetContext(ctx, &zone,
		`SELECT id, name, boundary, created_at, updated_at FROM geo_zones WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("geo_zone", id.String())
		}
		return nil, apperror.Transport("get geo zone", err)
	}
	return &zone, nil
}

func (r *repository) CreateGeoZone(ctx context.Context, zone *GeoZone) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO geo_zones (id, name, boundary, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		zone.ID, zone.Name, zone.Boundary, zone.CreatedAt, zone.UpdatedAt)
	return apperror.Transport("create geo zone", err)
}

func (r *repository) UpdateGeoZone(ctx context.Context, zone *GeoZone) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE geo_zones SET name = $2, boundary = $3, updated_at = $4 WHERE id = $1`,
		zone.ID, zone.Name, zone.Boundary, time.Now())
	if err != nil {
		return apperror.Transport("update geo zone", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperror.NotFound("geo_zone", zone.ID.String())
	}
	return nil
}

func (r *repository) DeleteGeoZone(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM geo_zones WHERE id = $1`, id)
	if err != nil {
		return apperror.Transport("delete geo zone", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperror.NotFound("geo_zone", id.String())
	}
	return nil
}

func (r *repository) ListSkillCategories(ctx context.Context) ([]*SkillCategory, error) {
	categories := []*SkillCategory{}
	err := r.db.SelectContext(ctx, &categories,
		`SELECT id, name, created_at FROM skill_categories ORDER BY name`)
	if err != nil {
		return nil, apperror.Transport("list skill categories", err)
	}
	return categories, nil
}

func (r *repository) GetSkillCategory(ctx context.Context, id uuid.UUID) (*SkillCategory, error) {
	var category SkillCategory
	err := r.db.GetContext(ctx, &category,
		`SELECT id, name, created_at FROM skill_categories WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("skill_category", id.String())
		}
		return nil, apperror.Transport("get skill category", err)
	}
	return &category, nil
}

func (r *repository) CountSkillCategories(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`SELECT COUNT(*) FROM skill_categories WHERE id IN (?)`, ids)
	if err != nil {
		return 0, apperror.Transport("count skill categories", err)
	}
	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		return 0, apperror.Transport("count skill categories", err)
	}
	return count, nil
}
