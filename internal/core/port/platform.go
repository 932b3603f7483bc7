package port

import (
	"context"
	"fmt"

	"adpilot/internal/core/domain"
)

// CampaignParams are the fields sent when creating a platform campaign.
// New campaigns are always created paused.
type CampaignParams struct {
	AccountID string
	Name      string
	Objective string
}

// AdSetParams are the fields sent when creating an ad set under an
// existing platform campaign.
type AdSetParams struct {
	AccountID        string
	Name             string
	CampaignID       string
	DailyBudgetCents int64
	BillingEvent     string
	OptimizationGoal string
	Targeting        domain.Targeting
}

// CreativeParams describe one ad creative: page identity plus the link
// story rendered to viewers.
type CreativeParams struct {
	AccountID    string
	Name         string
	PageID       string
	Message      string
	Headline     string
	LinkURL      string
	ImageURL     string
	CallToAction string
}

// AdParams describe one ad referencing an existing creative.
type AdParams struct {
	AccountID  string
	Name       string
	AdSetID    string
	CreativeID string
}

// ConversionEvent is one server-side conversion signal. UserData values
// must already be hashed by the caller; this layer never hashes.
type ConversionEvent struct {
	EventName  string
	EventTime  int64
	EventID    string
	UserData   map[string]string
	CustomData map[string]any
}

// PlatformGateway is the outbound port to the advertising platform. Every
// method issues exactly one remote call. A request the platform rejects
// with a structured error surfaces as *PlatformError; any other error is
// a transport failure. No retries happen at this layer.
type PlatformGateway interface {
	CreateCampaign(ctx context.Context, token string, p CampaignParams) (string, error)
	CreateAdSet(ctx context.Context, token string, p AdSetParams) (string, error)
	CreateCreative(ctx context.Context, token string, p CreativeParams) (string, error)
	CreateAd(ctx context.Context, token string, p AdParams) (string, error)
	SetStatus(ctx context.Context, token, objectID, status string) error
	UpdateBudget(ctx context.Context, token, adSetID string, dailyBudgetCents int64) error
	SendEvents(ctx context.Context, token, pixelID string, events []ConversionEvent) error
}

// PlatformError is a structured rejection returned by the platform for an
// otherwise well-delivered request.
type PlatformError struct {
	Code    string
	Message string
}

func (e *PlatformError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("platform error %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("platform error: %s", e.Message)
}
