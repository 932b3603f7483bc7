package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
// It is the only writer of campaign state.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Upsert inserts or updates one campaign row. External identifier columns
// are write-once: COALESCE keeps the first recorded id and the ad id list
// only ever grows. Each provisioning step calls this, so partial progress
// is durable even when a run is truncated.
func (r *CampaignRepository) Upsert(ctx context.Context, c *domain.Campaign) error {
	targeting, err := json.Marshal(c.Targeting)
	if err != nil {
		return err
	}
	variants, err := json.Marshal(c.Variants)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, business_id, name, status, daily_budget_cents, targeting, variants,
     meta_campaign_id, meta_adset_id, meta_ad_ids, failed_step, launched_at, last_synced_at,
     created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,now(),now())
ON CONFLICT (id) DO UPDATE SET
    status             = EXCLUDED.status,
    daily_budget_cents = EXCLUDED.daily_budget_cents,
    targeting          = EXCLUDED.targeting,
    meta_campaign_id   = COALESCE(campaigns.meta_campaign_id, EXCLUDED.meta_campaign_id),
    meta_adset_id      = COALESCE(campaigns.meta_adset_id, EXCLUDED.meta_adset_id),
    meta_ad_ids        = CASE WHEN cardinality(EXCLUDED.meta_ad_ids) > cardinality(campaigns.meta_ad_ids)
                              THEN EXCLUDED.meta_ad_ids ELSE campaigns.meta_ad_ids END,
    failed_step        = EXCLUDED.failed_step,
    launched_at        = COALESCE(campaigns.launched_at, EXCLUDED.launched_at),
    last_synced_at     = EXCLUDED.last_synced_at,
    updated_at         = now()`,
		c.ID, c.BusinessID, c.Name, string(c.Status), c.DailyBudgetCents, targeting, variants,
		nullStr(c.MetaCampaignID), nullStr(c.MetaAdSetID), c.MetaAdIDs, c.FailedStep,
		c.LaunchedAt, c.LastSyncedAt)
	return err
}

// GetByID returns a campaign by id, or nil when unknown.
func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, business_id, name, status, daily_budget_cents,
    targeting, variants, meta_campaign_id, meta_adset_id, meta_ad_ids, failed_step,
    launched_at, last_synced_at, created_at, updated_at
FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CountActiveByBusiness counts campaigns in an active-like state.
func (r *CampaignRepository) CountActiveByBusiness(ctx context.Context, businessID int64) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM campaigns WHERE business_id = $1 AND status IN ('active','paused')`,
		businessID).Scan(&n)
	return n, err
}

// ListStale returns campaigns stuck in provisioning or error whose last
// update is older than cutoff.
func (r *CampaignRepository) ListStale(ctx context.Context, cutoff time.Time) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, business_id, name, status, daily_budget_cents,
    targeting, variants, meta_campaign_id, meta_adset_id, meta_ad_ids, failed_step,
    launched_at, last_synced_at, created_at, updated_at
FROM campaigns WHERE status IN ('provisioning','error') AND updated_at < $1
ORDER BY updated_at`, cutoff)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// scanCampaign reads one campaign row in column order.
func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c              domain.Campaign
		status         string
		targetingRaw   []byte
		variantsRaw    []byte
		metaCampaignID *string
		metaAdSetID    *string
	)
	err := row.Scan(
		&c.ID,
		&c.BusinessID,
		&c.Name,
		&status,
		&c.DailyBudgetCents,
		&targetingRaw,
		&variantsRaw,
		&metaCampaignID,
		&metaAdSetID,
		&c.MetaAdIDs,
		&c.FailedStep,
		&c.LaunchedAt,
		&c.LastSyncedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = domain.CampaignStatus(status)
	if err = json.Unmarshal(targetingRaw, &c.Targeting); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(variantsRaw, &c.Variants); err != nil {
		return nil, err
	}
	if metaCampaignID != nil {
		c.MetaCampaignID = *metaCampaignID
	}
	if metaAdSetID != nil {
		c.MetaAdSetID = *metaAdSetID
	}
	return &c, nil
}

// nullStr maps the empty string onto SQL NULL.
func nullStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)
