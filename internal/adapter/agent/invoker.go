package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// HTTPInvoker dispatches agent jobs by POSTing to {base}/{agentType}.
// The client timeout only bounds connection establishment and the agent
// endpoint's immediate acknowledgment; agents run far longer than that on
// their own. Implements port.AgentInvoker.
type HTTPInvoker struct {
	base string
	http *http.Client
}

// NewHTTPInvoker builds an invoker from the automation configuration.
func NewHTTPInvoker(cfg configs.Automation) *HTTPInvoker {
	return &HTTPInvoker{
		base: strings.TrimRight(cfg.AgentBaseURL.String(), "/"),
		http: &http.Client{Timeout: cfg.DispatchTimeout},
	}
}

type invokeRequest struct {
	BusinessID int64 `json:"business_id"`
	UserID     int64 `json:"user_id"`
}

// Invoke posts one job. A non-2xx acknowledgment counts as a refused
// dispatch and is returned as an error for the scheduler to report.
func (i *HTTPInvoker) Invoke(ctx context.Context, businessID, userID int64, agent domain.AgentType) error {
	body, err := json.Marshal(invokeRequest{BusinessID: businessID, UserID: userID})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.base+"/"+string(agent), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("agent %s refused dispatch: %s", agent, resp.Status)
	}
	return nil
}

var _ port.AgentInvoker = (*HTTPInvoker)(nil)
