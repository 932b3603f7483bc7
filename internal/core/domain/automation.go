package domain

import "time"

// AgentType identifies one kind of automated maintenance task.
type AgentType string

const (
	AgentCompetitorAnalysis AgentType = "competitor_analysis"
	AgentReviewScout        AgentType = "review_scout"
	AgentCreativeRefresh    AgentType = "creative_refresh"
	AgentPerformanceMonitor AgentType = "performance_monitor"
	AgentBudgetOptimizer    AgentType = "budget_optimizer"
)

// ResearchAgents are always candidates for dispatch.
func ResearchAgents() []AgentType {
	return []AgentType{AgentCompetitorAnalysis, AgentReviewScout, AgentCreativeRefresh}
}

// PerformanceAgents are candidates only while the business has at least
// one active campaign; there is nothing to analyze otherwise.
func PerformanceAgents() []AgentType {
	return []AgentType{AgentPerformanceMonitor, AgentBudgetOptimizer}
}

// DefaultFrequencies returns a fresh copy of the default frequency window
// per agent type. The scheduler takes this table by injection so tests can
// substitute arbitrary windows.
func DefaultFrequencies() map[AgentType]time.Duration {
	return map[AgentType]time.Duration{
		AgentCompetitorAnalysis: 168 * time.Hour,
		AgentReviewScout:        168 * time.Hour,
		AgentCreativeRefresh:    336 * time.Hour,
		AgentPerformanceMonitor: 4 * time.Hour,
		AgentBudgetOptimizer:    24 * time.Hour,
	}
}

// AutomationConfig is one business's automation settings. Overrides, when
// present for an agent type, take precedence over the default window.
type AutomationConfig struct {
	BusinessID int64
	UserID     int64
	Enabled    bool
	Overrides  map[AgentType]time.Duration
}

// AgentRun records the last execution of one agent type for one business.
// There is at most one current row per (business, agent type) pair.
type AgentRun struct {
	BusinessID  int64
	Agent       AgentType
	LastRunAt   time.Time
	LastOutcome string
}
