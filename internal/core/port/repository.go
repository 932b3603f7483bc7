package port

import (
	"context"
	"time"

	"adpilot/internal/core/domain"
)

// CampaignRepository is the only writer of campaign state. Upsert uses
// natural-key semantics: external identifier columns are write-once and a
// later upsert never clears or replaces an already recorded identifier.
type CampaignRepository interface {
	Upsert(ctx context.Context, c *domain.Campaign) error
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	// CountActiveByBusiness returns the number of campaigns in an
	// active-like state (active or paused) for the business.
	CountActiveByBusiness(ctx context.Context, businessID int64) (int64, error)
	// ListStale returns campaigns stuck in provisioning or error whose
	// last update is older than the cutoff.
	ListStale(ctx context.Context, cutoff time.Time) ([]domain.Campaign, error)
}

// BusinessRepository reads business records and their platform
// credentials. Returns nil without error when the business is unknown.
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

// AutomationRepository stores per-business automation settings and the
// last run per (business, agent type) pair. RecordRun upserts by that
// natural key.
type AutomationRepository interface {
	ListEnabledConfigs(ctx context.Context) ([]domain.AutomationConfig, error)
	GetRuns(ctx context.Context, businessID int64) (map[domain.AgentType]domain.AgentRun, error)
	RecordRun(ctx context.Context, run domain.AgentRun) error
}

// LeadRepository reads captured leads and updates their quality
// classification, the lead's only mutable field.
type LeadRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	SetQuality(ctx context.Context, id int64, q domain.LeadQuality) error
}
