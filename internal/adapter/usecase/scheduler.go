package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Scheduler computes, for every enabled business, which automated agent
// types are due and dispatches them fire-and-forget. It implements
// port.AutomationUseCase. Businesses are processed sequentially; each
// eligible pair is dispatched in its own goroutine reporting into a
// bounded collection channel, so one slow or failing endpoint never
// blocks the rest of the batch. The report reflects dispatch acceptance
// only; agent completion is never awaited.
type Scheduler struct {
	automations port.AutomationRepository
	campaigns   port.CampaignRepository
	invoker     port.AgentInvoker
	windows     map[domain.AgentType]time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// NewScheduler constructs a scheduler. The windows table maps each agent
// type to its default frequency window; it is injected rather than read
// from a package global so tests can substitute arbitrary windows.
func NewScheduler(automations port.AutomationRepository, campaigns port.CampaignRepository, invoker port.AgentInvoker, windows map[domain.AgentType]time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		automations: automations,
		campaigns:   campaigns,
		invoker:     invoker,
		windows:     windows,
		logger:      logger,
		now:         time.Now,
	}
}

// decision is the eligibility verdict for one candidate agent type.
type decision struct {
	agent    domain.AgentType
	eligible bool
	reason   string
}

// evaluate applies the eligibility rules for one business: research-class
// types are always candidates, performance-class types only while at
// least one campaign is running; a candidate is eligible iff it has never
// run or its last run is older than the effective window. Ordering among
// eligible types is not significant.
func (s *Scheduler) evaluate(cfg domain.AutomationConfig, runs map[domain.AgentType]domain.AgentRun, hasActiveCampaigns bool) []decision {
	if !cfg.Enabled {
		return nil
	}

	candidates := domain.ResearchAgents()
	if hasActiveCampaigns {
		candidates = append(candidates, domain.PerformanceAgents()...)
	}

	decisions := make([]decision, 0, len(candidates))
	for _, agent := range candidates {
		window := s.windows[agent]
		if o, ok := cfg.Overrides[agent]; ok {
			window = o
		}
		// Eligible iff never run or the last run is strictly older than
		// the window; a run exactly one window old is still inside it.
		run, ran := runs[agent]
		if ran && s.now().Sub(run.LastRunAt) <= window {
			decisions = append(decisions, decision{
				agent:  agent,
				reason: fmt.Sprintf("skipped: last run within %dh window", int(window.Hours())),
			})
			continue
		}
		decisions = append(decisions, decision{agent: agent, eligible: true})
	}
	return decisions
}

// EligibleWork returns the agent types due to run for one business.
func (s *Scheduler) EligibleWork(cfg domain.AutomationConfig, runs map[domain.AgentType]domain.AgentRun, hasActiveCampaigns bool) []domain.AgentType {
	var eligible []domain.AgentType
	for _, d := range s.evaluate(cfg, runs, hasActiveCampaigns) {
		if d.eligible {
			eligible = append(eligible, d.agent)
		}
	}
	return eligible
}

// RunBatch performs one scheduler tick. Per-business repository errors
// are isolated the same way dispatch errors are: counted, reported,
// and never allowed to interrupt the remaining businesses. Partial
// progress is durable; a truncated run resumes on the next tick.
func (s *Scheduler) RunBatch(ctx context.Context) (*port.DispatchReport, error) {
	configs, err := s.automations.ListEnabledConfigs(ctx)
	if err != nil {
		return nil, err
	}

	results := make(chan port.DispatchResult, len(configs)*5)
	var wg sync.WaitGroup

	for _, cfg := range configs {
		runs, err := s.automations.GetRuns(ctx, cfg.BusinessID)
		if err != nil {
			s.logger.Error("loading run history", slog.Int64("business", cfg.BusinessID), slog.Any("error", err))
			results <- port.DispatchResult{BusinessID: cfg.BusinessID, Status: "error", Reason: err.Error()}
			continue
		}
		active, err := s.campaigns.CountActiveByBusiness(ctx, cfg.BusinessID)
		if err != nil {
			s.logger.Error("counting active campaigns", slog.Int64("business", cfg.BusinessID), slog.Any("error", err))
			results <- port.DispatchResult{BusinessID: cfg.BusinessID, Status: "error", Reason: err.Error()}
			continue
		}

		for _, d := range s.evaluate(cfg, runs, active > 0) {
			if !d.eligible {
				results <- port.DispatchResult{BusinessID: cfg.BusinessID, Agent: d.agent, Status: "skipped", Reason: d.reason}
				continue
			}

			wg.Add(1)
			go func(cfg domain.AutomationConfig, agent domain.AgentType) {
				defer wg.Done()
				s.dispatch(ctx, cfg, agent, results)
			}(cfg, d.agent)
		}
	}

	wg.Wait()
	close(results)

	report := &port.DispatchReport{Message: "automation run complete"}
	for r := range results {
		report.Results = append(report.Results, r)
		switch r.Status {
		case "dispatched":
			report.Dispatched++
		case "skipped":
			report.Skipped++
		default:
			report.Errors++
		}
	}
	return report, nil
}

// dispatch fires one agent invocation and records the run. Invocation
// failures are caught here, logged and reported; they never propagate.
func (s *Scheduler) dispatch(ctx context.Context, cfg domain.AutomationConfig, agent domain.AgentType, results chan<- port.DispatchResult) {
	if err := s.invoker.Invoke(ctx, cfg.BusinessID, cfg.UserID, agent); err != nil {
		s.logger.Warn("agent dispatch failed",
			slog.Int64("business", cfg.BusinessID),
			slog.String("agent", string(agent)),
			slog.Any("error", err))
		results <- port.DispatchResult{BusinessID: cfg.BusinessID, Agent: agent, Status: "error", Reason: err.Error()}
		return
	}

	run := domain.AgentRun{
		BusinessID:  cfg.BusinessID,
		Agent:       agent,
		LastRunAt:   s.now().UTC(),
		LastOutcome: "dispatched",
	}
	if err := s.automations.RecordRun(ctx, run); err != nil {
		s.logger.Error("recording agent run",
			slog.Int64("business", cfg.BusinessID),
			slog.String("agent", string(agent)),
			slog.Any("error", err))
	}
	results <- port.DispatchResult{BusinessID: cfg.BusinessID, Agent: agent, Status: "dispatched"}
}
