package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data into the adpilot database: two businesses with
// automation enabled, one launched campaign and a handful of leads.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `INSERT INTO businesses
    (id, owner_user_id, name, meta_page_id, meta_pixel_id, meta_ad_account_id, meta_access_token,
     latitude, longitude, country, created_at)
VALUES
    (1, 1, 'Riverside Bakery', 'page-1001', 'pixel-1001', 'acct-1001', 'token-1001',
     40.7128, -74.0060, 'US', now()),
    (2, 2, 'Hilltop Plumbing', 'page-1002', '', '', '',
     34.0522, -118.2437, 'US', now())
ON CONFLICT DO NOTHING`)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `INSERT INTO automation_configs (business_id, user_id, enabled, overrides)
VALUES
    (1, 1, true, '{"performance_monitor": 2}'),
    (2, 2, true, '{}')
ON CONFLICT DO NOTHING`)
	if err != nil {
		return err
	}

	campaignID := uuid.NewString()
	launched := time.Now().UTC().Add(-48 * time.Hour)
	_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, business_id, name, status, daily_budget_cents, targeting, variants,
     meta_campaign_id, meta_adset_id, meta_ad_ids, failed_step, launched_at, last_synced_at,
     created_at, updated_at)
VALUES ($1, 1, 'Riverside Bakery Campaign', 'active', 1500,
    '{"radius_km":25,"latitude":40.7128,"longitude":-74.0060,"age_min":18,"age_max":65}',
    '[{"headline":"Fresh Bread Daily","body":"Order before 10am for same-day pickup.","cta":"LEARN_MORE","link_url":"https://riverside.example.com"}]',
    'meta-c-1', 'meta-as-1', '{meta-ad-1}', '', $2, $2, now(), now())
ON CONFLICT DO NOTHING`, campaignID, launched)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `INSERT INTO leads
    (business_id, campaign_id, meta_lead_id, email, phone, full_name, quality, created_at)
VALUES
    (1, $1, 'fb-lead-1', 'anna@example.com', '+1 555 0100', 'Anna Ruiz', '', now()),
    (1, $1, '', 'ben@example.com', '+1 555 0101', 'Ben Okafor', 'good', now())
ON CONFLICT DO NOTHING`, campaignID)
	return err
}
