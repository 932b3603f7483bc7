package port

import (
	"context"
	"time"

	"adpilot/internal/core/domain"
)

// LaunchUseCase is the primary port for campaign provisioning. Mock
// implementations can be generated from this interface for testing.
type LaunchUseCase interface {
	// Launch drives the full provisioning pipeline for a new campaign:
	// platform campaign, ad set, one creative and ad per variant, then
	// activation children-first, then persistence. It returns the
	// persisted Campaign with status active, or a typed error naming the
	// failing step. Individual variant failures do not abort the launch
	// as long as at least one ad is created.
	Launch(ctx context.Context, userID int64, spec domain.LaunchSpec) (*domain.Campaign, error)

	// OptimizeBudget updates the daily budget of a live campaign's ad
	// set on the platform and re-persists the local record. Called back
	// into by the budget optimizer agent.
	OptimizeBudget(ctx context.Context, campaignID string, dailyBudgetCents int64) (*domain.Campaign, error)

	// ListStale returns campaigns stuck in provisioning or error longer
	// than olderThan, for operator reconciliation. No automatic cleanup
	// is attempted.
	ListStale(ctx context.Context, olderThan time.Duration) ([]domain.Campaign, error)
}
