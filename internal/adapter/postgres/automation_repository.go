package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// AutomationRepository implements port.AutomationRepository using
// pgxpool. Frequency overrides are stored as a JSON object of hours per
// agent type.
type AutomationRepository struct {
	pool *pgxpool.Pool
}

// NewAutomationRepository returns a new repository instance.
func NewAutomationRepository(pool *pgxpool.Pool) *AutomationRepository {
	return &AutomationRepository{pool: pool}
}

// ListEnabledConfigs returns the automation configuration of every
// business with automation switched on.
func (r *AutomationRepository) ListEnabledConfigs(ctx context.Context) ([]domain.AutomationConfig, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT business_id, user_id, enabled, overrides FROM automation_configs WHERE enabled ORDER BY business_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AutomationConfig, error) {
		var (
			cfg          domain.AutomationConfig
			overridesRaw []byte
		)
		if err := row.Scan(&cfg.BusinessID, &cfg.UserID, &cfg.Enabled, &overridesRaw); err != nil {
			return domain.AutomationConfig{}, err
		}
		if len(overridesRaw) > 0 {
			hours := map[domain.AgentType]float64{}
			if err := json.Unmarshal(overridesRaw, &hours); err != nil {
				return domain.AutomationConfig{}, err
			}
			if len(hours) > 0 {
				cfg.Overrides = make(map[domain.AgentType]time.Duration, len(hours))
				for agent, h := range hours {
					cfg.Overrides[agent] = time.Duration(h * float64(time.Hour))
				}
			}
		}
		return cfg, nil
	})
}

// GetRuns returns the last run per agent type for one business.
func (r *AutomationRepository) GetRuns(ctx context.Context, businessID int64) (map[domain.AgentType]domain.AgentRun, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT business_id, agent, last_run_at, last_outcome FROM agent_runs WHERE business_id = $1`,
		businessID)
	if err != nil {
		return nil, err
	}
	runs := make(map[domain.AgentType]domain.AgentRun)
	var run domain.AgentRun
	_, err = pgx.ForEachRow(rows, []any{&run.BusinessID, &run.Agent, &run.LastRunAt, &run.LastOutcome}, func() error {
		runs[run.Agent] = run
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// RecordRun upserts the current run record by its natural key. There is
// at most one row per (business, agent type) pair.
func (r *AutomationRepository) RecordRun(ctx context.Context, run domain.AgentRun) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO agent_runs (business_id, agent, last_run_at, last_outcome)
VALUES ($1,$2,$3,$4)
ON CONFLICT (business_id, agent) DO UPDATE SET
    last_run_at  = EXCLUDED.last_run_at,
    last_outcome = EXCLUDED.last_outcome`,
		run.BusinessID, string(run.Agent), run.LastRunAt, run.LastOutcome)
	return err
}

var _ port.AutomationRepository = (*AutomationRepository)(nil)
