package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// AgentInvoker is the outbound port to agent endpoints. Invoke issues one
// request for the (business, agent type) pair and returns once the
// dispatch is accepted or refused; it never awaits agent completion.
type AgentInvoker interface {
	Invoke(ctx context.Context, businessID, userID int64, agent domain.AgentType) error
}

// AutomationUseCase runs one scheduler tick over all enabled businesses.
type AutomationUseCase interface {
	// RunBatch computes eligible agent types per business and dispatches
	// them fire-and-forget. The returned report reflects dispatch
	// acceptance only, never agent completion. One pair's failure never
	// interrupts the rest of the batch.
	RunBatch(ctx context.Context) (*DispatchReport, error)
}

// DispatchResult is the per-item outcome of one (business, agent) pair.
// Status is "dispatched", "skipped" or "error"; Reason explains skips and
// errors.
type DispatchResult struct {
	BusinessID int64            `json:"business_id"`
	Agent      domain.AgentType `json:"agent"`
	Status     string           `json:"status"`
	Reason     string           `json:"reason,omitempty"`
}

// DispatchReport aggregates one scheduler tick.
type DispatchReport struct {
	Message    string           `json:"message"`
	Dispatched int              `json:"dispatched"`
	Skipped    int              `json:"skipped"`
	Errors     int              `json:"errors"`
	Results    []DispatchResult `json:"results"`
}
