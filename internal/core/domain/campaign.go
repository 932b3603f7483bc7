package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign. Campaigns are never
// deleted; they only move between these states.
type CampaignStatus string

const (
	StatusDraft        CampaignStatus = "draft"
	StatusProvisioning CampaignStatus = "provisioning"
	StatusActive       CampaignStatus = "active"
	StatusPaused       CampaignStatus = "paused"
	StatusError        CampaignStatus = "error"
	StatusCompleted    CampaignStatus = "completed"
)

// Campaign represents one advertising campaign owned by one business.
// Budgets are stored in integer minor currency units (cents), per day.
// The Meta* fields hold identifiers of objects created on the advertising
// platform; once set they are never overwritten by a later provisioning
// attempt. Status active implies MetaCampaignID, MetaAdSetID and at least
// one entry in MetaAdIDs are present. Status error implies FailedStep
// names the provisioning step that failed.
type Campaign struct {
	ID               string
	BusinessID       int64
	Name             string
	Status           CampaignStatus
	DailyBudgetCents int64
	Targeting        Targeting
	Variants         []AdVariant
	MetaCampaignID   string
	MetaAdSetID      string
	MetaAdIDs        []string
	FailedStep       string
	LaunchedAt       *time.Time
	LastSyncedAt     *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
