package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// BusinessRepository implements port.BusinessRepository using pgxpool.
type BusinessRepository struct {
	pool *pgxpool.Pool
}

// NewBusinessRepository returns a new repository instance.
func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

// GetByID returns a business by id, or nil when unknown.
func (r *BusinessRepository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	var b domain.Business
	err := r.pool.QueryRow(ctx, `SELECT id, owner_user_id, name, meta_page_id, meta_pixel_id,
    meta_ad_account_id, meta_access_token, latitude, longitude, country, created_at
FROM businesses WHERE id = $1`, id).Scan(
		&b.ID,
		&b.OwnerUserID,
		&b.Name,
		&b.MetaPageID,
		&b.MetaPixelID,
		&b.MetaAdAccountID,
		&b.MetaAccessToken,
		&b.Latitude,
		&b.Longitude,
		&b.Country,
		&b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

var _ port.BusinessRepository = (*BusinessRepository)(nil)
