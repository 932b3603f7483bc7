package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// LeadRepository implements port.LeadRepository using pgxpool.
type LeadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository returns a new repository instance.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

// GetByID returns a lead by id, or nil when unknown.
func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	var (
		l       domain.Lead
		quality string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, business_id, campaign_id, meta_lead_id, email, phone,
    full_name, quality, created_at
FROM leads WHERE id = $1`, id).Scan(
		&l.ID,
		&l.BusinessID,
		&l.CampaignID,
		&l.MetaLeadID,
		&l.Email,
		&l.Phone,
		&l.FullName,
		&quality,
		&l.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	l.Quality = domain.LeadQuality(quality)
	return &l, nil
}

// SetQuality updates the lead's quality classification, its only mutable
// field.
func (r *LeadRepository) SetQuality(ctx context.Context, id int64, q domain.LeadQuality) error {
	tag, err := r.pool.Exec(ctx, `UPDATE leads SET quality = $1 WHERE id = $2`, string(q), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrLeadNotFound
	}
	return nil
}

var _ port.LeadRepository = (*LeadRepository)(nil)
