package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/pkg/agent"
	"github.com/finovant/macaw/pkg/approval"
	"github.com/finovant/macaw/pkg/config"
	"github.com/finovant/macaw/pkg/events"
	"github.com/finovant/macaw/pkg/faults"
	"github.com/finovant/macaw/pkg/graph"
	"github.com/finovant/macaw/pkg/llm"
	"github.com/finovant/macaw/pkg/mcp"
	"github.com/finovant/macaw/pkg/models"
	"github.com/finovant/macaw/pkg/monitor"
	"github.com/finovant/macaw/pkg/planner"
	"github.com/finovant/macaw/pkg/services"
	"github.com/finovant/macaw/pkg/workflow"
)

// harness wires a full engine against in-memory stores, the mock LLM and the
// mock tool gateway — the same construction main does in mock mode, minus
// PostgreSQL and WebSockets.
type harness struct {
	engine      *Engine
	approvals   *approval.Manager
	plans       *memPlans
	messages    *memMessages
	extractions *memExtractions
	sink        *recordingSink
	llm         *llm.MockClient
	tools       *mcp.MockToolClient
	registry    *workflow.Registry
	contexts    *services.ContextService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := &config.WorkflowConfig{
		PoolSize:         4,
		MaxSteps:         10,
		CacheMaxEntries:  16,
		AgentTimeout:     5 * time.Second,
		AgentGracePeriod: 100 * time.Millisecond,
		WorkflowTimeout:  30 * time.Second,
	}

	registry := workflow.NewRegistry()
	mockLLM := llm.NewMockClient()
	tools := mcp.NewMockToolClient()
	require.NoError(t, agent.RegisterDefaults(agent.Deps{
		Registry: registry,
		Tools:    tools,
		LLM:      mockLLM,
	}))

	mon := monitor.New()
	approvals := approval.NewManager()
	h := &harness{
		approvals:   approvals,
		plans:       newMemPlans(),
		messages:    newMemMessages(),
		extractions: newMemExtractions(),
		sink:        newRecordingSink(),
		llm:         mockLLM,
		tools:       tools,
		registry:    registry,
		contexts:    services.NewContextService(),
	}
	h.engine = New(cfg, Deps{
		Registry:    registry,
		Planner:     planner.New(mockLLM, registry, cfg.MaxSteps),
		Compiler:    graph.NewCompiler(registry, cfg.CacheMaxEntries, mon),
		Approvals:   approvals,
		Plans:       h.plans,
		Messages:    h.messages,
		Extractions: h.extractions,
		Events:      h.sink,
		Contexts:    h.contexts,
		Metrics:     mon,
		Faults:      faults.NewHandler(true),
	})
	// Keep terminal state inspectable for the whole test.
	h.engine.cleanupDelay = time.Hour

	t.Cleanup(h.engine.Stop)
	return h
}

func (h *harness) submit(t *testing.T, task string, requireApproval bool) string {
	t.Helper()
	p, err := h.engine.Submit(context.Background(), models.CreatePlanRequest{
		SessionID:       "session-1",
		TaskDescription: task,
		RequireApproval: requireApproval,
	})
	require.NoError(t, err)
	return p.ID
}

func (h *harness) waitState(t *testing.T, planID string, want approval.State) {
	t.Helper()
	require.Eventually(t, func() bool {
		st, ok := h.approvals.Current(planID)
		return ok && st == want
	}, 10*time.Second, 10*time.Millisecond, "plan %s never reached %s", planID, want)
}

func TestAutonomousWorkflowRunsToCompletion(t *testing.T) {
	h := newHarness(t)

	planID := h.submit(t, "Verify the invoice backlog for acme", false)
	h.waitState(t, planID, approval.StateCompleted)

	assert.Equal(t, plan.StatusCompleted, h.plans.status(planID))
	assert.NotEmpty(t, h.plans.finalResult(planID))

	// The unscripted mock LLM forces the keyword template: planner first,
	// then invoice, then analysis.
	p, err := h.plans.GetPlan(context.Background(), planID)
	require.NoError(t, err)
	assert.Equal(t, []string{"planner", "invoice", "analysis"}, p.AgentSequence)
	assert.Equal(t, string(planner.SourceTemplate), p.PlanSource)
	assert.Equal(t, string(graph.TypeDefault), p.GraphType)

	assert.Equal(t, []string{"completed", "completed", "completed"}, h.plans.stepStatuses(planID))
	// Plan proposal message plus one message per step.
	assert.GreaterOrEqual(t, h.messages.count(planID), 2)

	assert.True(t, h.sink.has(events.EventTypePlanCreated))
	assert.Len(t, h.sink.all(events.EventTypeAgentStarted), 3)
	assert.True(t, h.sink.has(events.EventTypeFinalResult))
	assert.False(t, h.sink.has(events.EventTypePlanApprovalRequest),
		"autonomous runs must not raise approval requests")
}

func TestApprovalWorkflowWalksAllCheckpoints(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	planID := h.submit(t, "Verify the invoice backlog for acme", true)

	// Plan checkpoint.
	h.waitState(t, planID, approval.StateAwaitingPlanApproval)
	assert.Equal(t, plan.StatusPendingApproval, h.plans.status(planID))
	reqs := h.sink.all(events.EventTypePlanApprovalRequest)
	require.NotEmpty(t, reqs)
	assert.Equal(t, "plan", reqs[0].Data.(events.PlanApprovalRequestData).Kind)

	require.NoError(t, h.engine.SubmitPlanApproval(ctx, planID, true, nil, ""))

	// The invoice step collects extraction fields on a HITL graph, so the
	// workflow parks before the next agent.
	require.Eventually(t, func() bool {
		cp, _ := h.approvals.PendingCheckpoint(planID)
		return cp == approval.CheckpointExtraction
	}, 10*time.Second, 10*time.Millisecond)
	assert.True(t, h.sink.has(events.EventTypeExtractionApprovalRequest))

	restarted, err := h.engine.SubmitExtractionApproval(ctx, planID, true,
		map[string]any{"amount": 1234.56}, "corrected amount")
	require.NoError(t, err)
	assert.Nil(t, restarted)

	// Result checkpoint (require_approval forces the result gate).
	h.waitState(t, planID, approval.StateAwaitingResultApproval)
	snap, ok := h.engine.Snapshot(planID)
	require.True(t, ok)
	fields, ok := snap.Collected["invoice"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 1234.56, fields["amount"], 0.001,
		"the operator's field correction must reach the workflow state")

	restarted, err = h.engine.SubmitResultApproval(ctx, planID, true, "looks right")
	require.NoError(t, err)
	assert.Nil(t, restarted)

	h.waitState(t, planID, approval.StateCompleted)
	assert.Equal(t, plan.StatusCompleted, h.plans.status(planID))
}

func TestPlanRejectionStopsBeforeExecution(t *testing.T) {
	h := newHarness(t)

	planID := h.submit(t, "Verify the invoice backlog", true)
	h.waitState(t, planID, approval.StateAwaitingPlanApproval)

	require.NoError(t, h.engine.SubmitPlanApproval(context.Background(), planID, false, nil, "wrong approach"))

	h.waitState(t, planID, approval.StatePlanRejected)
	assert.Equal(t, plan.StatusRejected, h.plans.status(planID))
	assert.True(t, h.sink.has(events.EventTypePlanRejected))
	assert.Empty(t, h.sink.all(events.EventTypeAgentStarted),
		"no agent may run after a plan rejection")

	p, err := h.plans.GetPlan(context.Background(), planID)
	require.NoError(t, err)
	assert.Equal(t, "wrong approach", p.HumanFeedback)
}

func TestModifiedSequenceRecompilesBeforeExecution(t *testing.T) {
	h := newHarness(t)

	planID := h.submit(t, "Verify the invoice backlog", true)
	h.waitState(t, planID, approval.StateAwaitingPlanApproval)

	err := h.engine.SubmitPlanApproval(context.Background(), planID, true,
		[]string{"invoice", "gmail", "analysis"}, "")
	require.NoError(t, err)

	approved := h.sink.all(events.EventTypePlanApproved)
	require.NotEmpty(t, approved)
	data := approved[0].Data.(events.PlanApprovedData)
	assert.True(t, data.Modified)
	assert.Equal(t, []string{"planner", "invoice", "gmail", "analysis"}, data.Sequence,
		"sanitization must keep the planner first")

	p, err := h.plans.GetPlan(context.Background(), planID)
	require.NoError(t, err)
	assert.Equal(t, string(planner.SourceUser), p.PlanSource)
}

func TestResultRejectionRestartsWorkflow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	planID := h.submit(t, "Verify the invoice backlog", true)
	h.waitState(t, planID, approval.StateAwaitingPlanApproval)
	require.NoError(t, h.engine.SubmitPlanApproval(ctx, planID, true, nil, ""))

	require.Eventually(t, func() bool {
		cp, _ := h.approvals.PendingCheckpoint(planID)
		return cp == approval.CheckpointExtraction
	}, 10*time.Second, 10*time.Millisecond)
	_, err := h.engine.SubmitExtractionApproval(ctx, planID, true, nil, "")
	require.NoError(t, err)

	h.waitState(t, planID, approval.StateAwaitingResultApproval)
	fresh, err := h.engine.SubmitResultApproval(ctx, planID, false, "numbers look off")
	require.NoError(t, err)
	require.NotNil(t, fresh)

	h.waitState(t, planID, approval.StateRestarted)
	assert.Equal(t, plan.StatusRestarted, h.plans.status(planID))

	assert.Equal(t, planID, fresh.RestartedFrom)
	assert.True(t, fresh.RequireApproval, "the clone keeps the approval requirement")
	h.waitState(t, fresh.ID, approval.StateAwaitingPlanApproval)
}

func TestExtractionRejectionRestartsWorkflow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	planID := h.submit(t, "Verify the invoice backlog", true)
	h.waitState(t, planID, approval.StateAwaitingPlanApproval)
	require.NoError(t, h.engine.SubmitPlanApproval(ctx, planID, true, nil, ""))

	require.Eventually(t, func() bool {
		cp, _ := h.approvals.PendingCheckpoint(planID)
		return cp == approval.CheckpointExtraction
	}, 10*time.Second, 10*time.Millisecond)

	fresh, err := h.engine.SubmitExtractionApproval(ctx, planID, false, nil, "fields are wrong")
	require.NoError(t, err)
	require.NotNil(t, fresh)

	h.waitState(t, planID, approval.StateRestarted)
	assert.Equal(t, planID, fresh.RestartedFrom)
}

func TestStepFailureDegradesWhenRemainderTolerates(t *testing.T) {
	h := newHarness(t)
	h.tools.FailWith("invoice.list_invoices", errors.New("invoice store rejected the request"))

	// Template: planner -> invoice -> analysis. Analysis tolerates upstream
	// gaps, so the invoice failure degrades instead of failing the plan.
	planID := h.submit(t, "Verify the invoice backlog", false)
	h.waitState(t, planID, approval.StateCompleted)

	statuses := h.plans.stepStatuses(planID)
	assert.Equal(t, []string{"completed", "failed", "completed"}, statuses)
	assert.Contains(t, h.plans.finalResult(planID), "Partial results")
}

func TestStepFailureFailsFastWhenRemainderDoesNot(t *testing.T) {
	h := newHarness(t)
	h.tools.FailWith("invoice.list_invoices", errors.New("invoice store rejected the request"))

	// Template: planner -> invoice -> gmail -> analysis. Gmail does not
	// tolerate gaps, so the invoice failure fails the plan and skips the
	// rest.
	planID := h.submit(t, "Track overdue payments", false)
	h.waitState(t, planID, approval.StateFailed)

	assert.Equal(t, plan.StatusFailed, h.plans.status(planID))
	assert.Contains(t, h.plans.errorMessage(planID), "invoice failed")
	assert.Equal(t, []string{"completed", "failed", "skipped", "skipped"}, h.plans.stepStatuses(planID))
	assert.True(t, h.sink.has(events.EventTypeError))
}

func TestCancelMidExecution(t *testing.T) {
	h := newHarness(t)
	// Hold the analysis completion open until the workflow is cancelled.
	h.llm.SetScript(llm.ScriptEntry{Match: "Upstream step results", BlockUntilCancelled: true})

	planID := h.submit(t, "Verify the invoice backlog", false)

	require.Eventually(t, func() bool {
		for _, e := range h.sink.all(events.EventTypeAgentStarted) {
			if e.Data.(events.AgentStartedData).AgentName == "analysis" {
				return true
			}
		}
		return false
	}, 10*time.Second, 10*time.Millisecond, "analysis never started")

	require.NoError(t, h.engine.Cancel(planID))
	h.waitState(t, planID, approval.StateFailed)
	assert.Equal(t, "cancelled", h.plans.errorMessage(planID))
}

func TestCancelAtCheckpoint(t *testing.T) {
	h := newHarness(t)

	planID := h.submit(t, "Verify the invoice backlog", true)
	h.waitState(t, planID, approval.StateAwaitingPlanApproval)

	require.NoError(t, h.engine.Cancel(planID))
	h.waitState(t, planID, approval.StateFailed)

	// A terminal plan cannot be cancelled again.
	err := h.engine.Cancel(planID)
	require.ErrorIs(t, err, services.ErrNotCancellable)
}

func TestClarificationRoutesToPendingCheckpoint(t *testing.T) {
	h := newHarness(t)

	planID := h.submit(t, "Verify the invoice backlog", true)
	h.waitState(t, planID, approval.StateAwaitingPlanApproval)

	res, err := h.engine.Clarify(context.Background(), planID, "no, start over with a different plan")
	require.NoError(t, err)
	assert.Equal(t, approval.VerdictRestart, res.Verdict)
	assert.Equal(t, string(approval.CheckpointPlan), res.Checkpoint)

	h.waitState(t, planID, approval.StatePlanRejected)
}

func TestClarificationWithoutCheckpointFails(t *testing.T) {
	h := newHarness(t)

	planID := h.submit(t, "Verify the invoice backlog", false)
	h.waitState(t, planID, approval.StateCompleted)

	_, err := h.engine.Clarify(context.Background(), planID, "yes")
	require.ErrorIs(t, err, approval.ErrNoPendingCheckpoint)
}

func TestMessageWriteFailureFailsWorkflow(t *testing.T) {
	h := newHarness(t)
	// The plan proposal message succeeds; the first step message does not.
	h.messages.failFrom = 1

	planID := h.submit(t, "Verify the invoice backlog", false)
	h.waitState(t, planID, approval.StateFailed)
	assert.Contains(t, h.plans.errorMessage(planID), "failed to persist")
}

func TestSweepStalledTimesOutParkedPlans(t *testing.T) {
	h := newHarness(t)

	planID := h.submit(t, "Verify the invoice backlog", true)
	h.waitState(t, planID, approval.StateAwaitingPlanApproval)

	// Nothing has stalled yet.
	assert.Zero(t, h.engine.SweepStalled())

	// Shrink the timeout so the parked plan is already past it.
	h.engine.cfg.WorkflowTimeout = time.Nanosecond
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 1, h.engine.SweepStalled())

	h.waitState(t, planID, approval.StateTimeout)
	assert.Equal(t, plan.StatusFailed, h.plans.status(planID))
	assert.Equal(t, "workflow timeout", h.plans.errorMessage(planID))
}

func TestDurableStatusMapping(t *testing.T) {
	cases := []struct {
		state   approval.State
		status  plan.Status
		message string
	}{
		{approval.StatePlanning, plan.StatusPending, ""},
		{approval.StateAwaitingPlanApproval, plan.StatusPendingApproval, ""},
		{approval.StatePlanApproved, plan.StatusInProgress, ""},
		{approval.StateExecuting, plan.StatusInProgress, ""},
		{approval.StateAwaitingResultApproval, plan.StatusPendingApproval, ""},
		{approval.StateCompleted, plan.StatusCompleted, ""},
		{approval.StatePlanRejected, plan.StatusRejected, ""},
		{approval.StateRestarted, plan.StatusRestarted, ""},
		{approval.StateFailed, plan.StatusFailed, "boom"},
		{approval.StateTimeout, plan.StatusFailed, "workflow timeout"},
	}
	for _, tc := range cases {
		status, message := durableStatus(tc.state, "boom")
		assert.Equal(t, tc.status, status, "state %s", tc.state)
		assert.Equal(t, tc.message, message, "state %s", tc.state)
	}
}
