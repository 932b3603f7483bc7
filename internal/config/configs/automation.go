package configs

import (
	"net/url"
	"time"
)

// Automation configures the scheduler trigger endpoint and outbound agent
// dispatch. Secret authenticates the external timer that triggers a
// scheduler run; requests without it receive 401.
type Automation struct {
	// Secret is the bearer token the scheduler trigger must present.
	Secret string `env:"SECRET"`
	// AgentBaseURL is the root under which agent endpoints live; the
	// agent type is appended as the final path segment.
	AgentBaseURL url.URL `env:"AGENT_BASE_URL" envDefault:"http://localhost:3000/api/agents"`
	// DispatchTimeout bounds the acknowledgment of one agent dispatch,
	// not the agent's own runtime.
	DispatchTimeout time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"10s"`
	// StaleAfter is how long a campaign may sit in provisioning or
	// error before it appears in the operator reconciliation view.
	StaleAfter time.Duration `env:"STALE_AFTER" envDefault:"1h"`
}
