package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

func newTestScheduler(t *testing.T, windows map[domain.AgentType]time.Duration) (*Scheduler, *mocks.MockAutomationRepository, *mocks.MockCampaignRepository, *mocks.MockAgentInvoker) {
	automations := mocks.NewMockAutomationRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	invoker := mocks.NewMockAgentInvoker(t)
	if windows == nil {
		windows = domain.DefaultFrequencies()
	}
	return NewScheduler(automations, campaigns, invoker, windows, testLogger()), automations, campaigns, invoker
}

// TestEligibleWorkDisabled: a disabled config yields nothing regardless
// of run history.
func TestEligibleWorkDisabled(t *testing.T) {
	s, _, _, _ := newTestScheduler(t, nil)

	cfg := domain.AutomationConfig{BusinessID: 1, Enabled: false}
	if got := s.EligibleWork(cfg, nil, true); len(got) != 0 {
		t.Fatalf("eligible %v, want none", got)
	}
}

// TestEligibleWorkWindowBoundary: with a 4 hour window a run 3 hours ago
// excludes the type, 5 hours ago includes it.
func TestEligibleWorkWindowBoundary(t *testing.T) {
	s, _, _, _ := newTestScheduler(t, nil)
	cfg := domain.AutomationConfig{BusinessID: 1, Enabled: true}

	recent := map[domain.AgentType]domain.AgentRun{
		domain.AgentPerformanceMonitor: {LastRunAt: time.Now().Add(-3 * time.Hour)},
	}
	if contains(s.EligibleWork(cfg, recent, true), domain.AgentPerformanceMonitor) {
		t.Fatal("performance monitor eligible 3h after last run in a 4h window")
	}

	old := map[domain.AgentType]domain.AgentRun{
		domain.AgentPerformanceMonitor: {LastRunAt: time.Now().Add(-5 * time.Hour)},
	}
	if !contains(s.EligibleWork(cfg, old, true), domain.AgentPerformanceMonitor) {
		t.Fatal("performance monitor not eligible 5h after last run in a 4h window")
	}
}

// TestEligibleWorkWindowExactBoundary: a run exactly one window old is
// still inside the window; one instant past it is eligible.
func TestEligibleWorkWindowExactBoundary(t *testing.T) {
	s, _, _, _ := newTestScheduler(t, nil)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	cfg := domain.AutomationConfig{BusinessID: 1, Enabled: true}

	atWindow := map[domain.AgentType]domain.AgentRun{
		domain.AgentPerformanceMonitor: {LastRunAt: fixed.Add(-4 * time.Hour)},
	}
	if contains(s.EligibleWork(cfg, atWindow, true), domain.AgentPerformanceMonitor) {
		t.Fatal("run exactly 4h old eligible within a 4h window")
	}

	pastWindow := map[domain.AgentType]domain.AgentRun{
		domain.AgentPerformanceMonitor: {LastRunAt: fixed.Add(-4*time.Hour - time.Nanosecond)},
	}
	if !contains(s.EligibleWork(cfg, pastWindow, true), domain.AgentPerformanceMonitor) {
		t.Fatal("run older than the 4h window not eligible")
	}
}

// TestEligibleWorkOverride: a per-business override takes precedence
// over the default window.
func TestEligibleWorkOverride(t *testing.T) {
	s, _, _, _ := newTestScheduler(t, nil)
	cfg := domain.AutomationConfig{
		BusinessID: 1,
		Enabled:    true,
		Overrides:  map[domain.AgentType]time.Duration{domain.AgentPerformanceMonitor: 2 * time.Hour},
	}

	runs := map[domain.AgentType]domain.AgentRun{
		domain.AgentPerformanceMonitor: {LastRunAt: time.Now().Add(-3 * time.Hour)},
	}
	if !contains(s.EligibleWork(cfg, runs, true), domain.AgentPerformanceMonitor) {
		t.Fatal("override window of 2h should make a 3h-old run eligible")
	}
}

// TestEligibleWorkPerformanceGating: performance-class types are excluded
// entirely without active campaigns, even if never run.
func TestEligibleWorkPerformanceGating(t *testing.T) {
	s, _, _, _ := newTestScheduler(t, nil)
	cfg := domain.AutomationConfig{BusinessID: 1, Enabled: true}

	got := s.EligibleWork(cfg, nil, false)
	for _, agent := range domain.PerformanceAgents() {
		if contains(got, agent) {
			t.Fatalf("%s eligible with zero active campaigns", agent)
		}
	}
	for _, agent := range domain.ResearchAgents() {
		if !contains(got, agent) {
			t.Fatalf("%s missing from never-run business", agent)
		}
	}
}

// TestRunBatchIsolatesFailures: a failing dispatch for business A does
// not prevent business B's dispatch, and the report counts exactly one
// error for A.
func TestRunBatchIsolatesFailures(t *testing.T) {
	s, automations, campaigns, invoker := newTestScheduler(t, nil)

	// Only competitor analysis is due for either business.
	ranRecently := map[domain.AgentType]domain.AgentRun{
		domain.AgentReviewScout:     {LastRunAt: time.Now().Add(-time.Hour)},
		domain.AgentCreativeRefresh: {LastRunAt: time.Now().Add(-time.Hour)},
	}

	automations.EXPECT().ListEnabledConfigs(mock.Anything).Return([]domain.AutomationConfig{
		{BusinessID: 1, UserID: 10, Enabled: true},
		{BusinessID: 2, UserID: 20, Enabled: true},
	}, nil)
	automations.EXPECT().GetRuns(mock.Anything, int64(1)).Return(ranRecently, nil)
	automations.EXPECT().GetRuns(mock.Anything, int64(2)).Return(ranRecently, nil)
	campaigns.EXPECT().CountActiveByBusiness(mock.Anything, int64(1)).Return(0, nil)
	campaigns.EXPECT().CountActiveByBusiness(mock.Anything, int64(2)).Return(0, nil)

	invoker.EXPECT().
		Invoke(mock.Anything, int64(1), int64(10), domain.AgentCompetitorAnalysis).
		Return(errors.New("connection refused"))
	invoker.EXPECT().
		Invoke(mock.Anything, int64(2), int64(20), domain.AgentCompetitorAnalysis).
		Return(nil)
	automations.EXPECT().
		RecordRun(mock.Anything, mock.AnythingOfType("domain.AgentRun")).
		Return(nil)

	report, err := s.RunBatch(context.Background())
	if err != nil {
		t.Fatalf("RunBatch error: %v", err)
	}
	if report.Errors != 1 {
		t.Fatalf("errors %d, want 1", report.Errors)
	}
	if report.Dispatched != 1 {
		t.Fatalf("dispatched %d, want 1", report.Dispatched)
	}
	var sawB bool
	for _, r := range report.Results {
		if r.BusinessID == 2 && r.Status == "dispatched" {
			sawB = true
		}
		if r.BusinessID == 1 && r.Status == "error" && r.Reason == "" {
			t.Fatal("error result carries no reason")
		}
	}
	if !sawB {
		t.Fatal("business B not dispatched after business A failed")
	}
}

// TestRunBatchSkipReasons: skipped items carry the window that excluded
// them.
func TestRunBatchSkipReasons(t *testing.T) {
	s, automations, campaigns, invoker := newTestScheduler(t, nil)

	automations.EXPECT().ListEnabledConfigs(mock.Anything).Return([]domain.AutomationConfig{
		{BusinessID: 1, UserID: 10, Enabled: true},
	}, nil)
	automations.EXPECT().GetRuns(mock.Anything, int64(1)).Return(map[domain.AgentType]domain.AgentRun{
		domain.AgentPerformanceMonitor: {LastRunAt: time.Now().Add(-time.Hour)},
	}, nil)
	campaigns.EXPECT().CountActiveByBusiness(mock.Anything, int64(1)).Return(1, nil)

	invoker.EXPECT().
		Invoke(mock.Anything, int64(1), int64(10), mock.AnythingOfType("domain.AgentType")).
		Return(nil)
	automations.EXPECT().
		RecordRun(mock.Anything, mock.AnythingOfType("domain.AgentRun")).
		Return(nil)

	report, err := s.RunBatch(context.Background())
	if err != nil {
		t.Fatalf("RunBatch error: %v", err)
	}
	if report.Skipped != 1 {
		t.Fatalf("skipped %d, want 1", report.Skipped)
	}
	var reason string
	for _, r := range report.Results {
		if r.Status == "skipped" {
			reason = r.Reason
		}
	}
	if !strings.Contains(reason, "within 4h window") {
		t.Fatalf("skip reason %q does not name the window", reason)
	}
}

func contains(agents []domain.AgentType, want domain.AgentType) bool {
	for _, a := range agents {
		if a == want {
			return true
		}
	}
	return false
}
