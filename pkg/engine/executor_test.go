package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/config"
	"github.com/finovant/macaw/pkg/faults"
	"github.com/finovant/macaw/pkg/graph"
	"github.com/finovant/macaw/pkg/workflow"
)

// stubAgent is a scriptable workflow.Agent for executor-level tests.
type stubAgent struct {
	name     string
	tolerate bool
	execute  func(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error)
}

func (a *stubAgent) Name() string { return a.name }

func (a *stubAgent) Describe() workflow.Metadata {
	return workflow.Metadata{Name: a.name, TolerateUpstreamGaps: a.tolerate}
}

func (a *stubAgent) Execute(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
	return a.execute(ctx, st)
}

func testEngineFor(cfg *config.WorkflowConfig) *Engine {
	return &Engine{cfg: cfg}
}

func testRun() *run {
	return &run{state: workflow.NewState("plan-1", "session-1", "task", []string{"a"}, false)}
}

func TestInvokeOnceReturnsOutcome(t *testing.T) {
	e := testEngineFor(&config.WorkflowConfig{AgentTimeout: time.Second, AgentGracePeriod: 50 * time.Millisecond})
	a := &stubAgent{name: "a", execute: func(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
		return &workflow.StepOutcome{Status: workflow.StepCompleted, Summary: "done"}, nil
	}}

	out, err := e.invokeOnce(context.Background(), a, testRun())
	require.NoError(t, err)
	assert.Equal(t, "done", out.Summary)
}

func TestInvokeOnceRejectsNilOutcome(t *testing.T) {
	e := testEngineFor(&config.WorkflowConfig{AgentTimeout: time.Second, AgentGracePeriod: 50 * time.Millisecond})
	a := &stubAgent{name: "a", execute: func(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
		return nil, nil
	}}

	_, err := e.invokeOnce(context.Background(), a, testRun())
	require.Error(t, err)
	assert.Equal(t, faults.KindFatal, faults.Classify(err))
}

func TestInvokeOnceAbandonsUnresponsiveAgent(t *testing.T) {
	e := testEngineFor(&config.WorkflowConfig{AgentTimeout: 30 * time.Millisecond, AgentGracePeriod: 20 * time.Millisecond})
	a := &stubAgent{name: "slow", execute: func(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
		// Ignores cancellation entirely.
		time.Sleep(5 * time.Second)
		return &workflow.StepOutcome{Status: workflow.StepCompleted}, nil
	}}

	start := time.Now()
	_, err := e.invokeOnce(context.Background(), a, testRun())
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second, "abandonment must not wait for the agent")
	assert.Equal(t, faults.KindTransient, faults.Classify(err),
		"a step timeout follows the transient retry path")
	assert.Contains(t, err.Error(), "step timeout")
}

func TestInvokeOnceDiscardsLateOutcome(t *testing.T) {
	e := testEngineFor(&config.WorkflowConfig{AgentTimeout: 20 * time.Millisecond, AgentGracePeriod: 200 * time.Millisecond})
	a := &stubAgent{name: "late", execute: func(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
		<-ctx.Done()
		// Returns "success" after the deadline; the executor must not
		// trust it.
		return &workflow.StepOutcome{Status: workflow.StepCompleted, Summary: "too late"}, nil
	}}

	out, err := e.invokeOnce(context.Background(), a, testRun())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, faults.KindTransient, faults.Classify(err))
}

func TestInvokeOnceSurfacesWorkflowCancellation(t *testing.T) {
	e := testEngineFor(&config.WorkflowConfig{AgentTimeout: 10 * time.Second, AgentGracePeriod: 20 * time.Millisecond})
	a := &stubAgent{name: "blocked", execute: func(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := e.invokeOnce(ctx, a, testRun())
	require.Error(t, err)
	assert.Equal(t, faults.KindCancellation, faults.Classify(err))
}

func TestInvokeOnceKeepsAgentErrors(t *testing.T) {
	e := testEngineFor(&config.WorkflowConfig{AgentTimeout: time.Second, AgentGracePeriod: 50 * time.Millisecond})
	boom := faults.Authoritative(errors.New("ledger rejected the entry"))
	a := &stubAgent{name: "a", execute: func(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
		return nil, boom
	}}

	_, err := e.invokeOnce(context.Background(), a, testRun())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, faults.KindAuthoritative, faults.Classify(err))
}

func TestRemainingTolerant(t *testing.T) {
	registry := workflow.NewRegistry()
	ok := func(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
		return &workflow.StepOutcome{Status: workflow.StepCompleted}, nil
	}
	require.NoError(t, registry.Register(&stubAgent{name: "strict", execute: ok}))
	require.NoError(t, registry.Register(&stubAgent{name: "soft", tolerate: true, execute: ok}))

	e := &Engine{registry: registry}
	g := &graph.Graph{Nodes: []graph.Node{{Agent: "strict"}, {Agent: "soft"}, {Agent: "soft"}}}

	assert.False(t, e.remainingTolerant(g, 0), "strict agent in the remainder")
	assert.True(t, e.remainingTolerant(g, 1))
	assert.True(t, e.remainingTolerant(g, 3), "empty remainder tolerates anything")

	unknown := &graph.Graph{Nodes: []graph.Node{{Agent: "ghost"}}}
	assert.False(t, e.remainingTolerant(unknown, 0), "unknown agents are never tolerant")
}

func TestComposeFinalResultPrefersAnalysisNarrative(t *testing.T) {
	st := workflow.NewState("p", "s", "task", []string{"invoice", "analysis"}, false)
	st.Merge("invoice", workflow.StepResult{Status: workflow.StepCompleted, Summary: "verified 3 invoices"}, nil)
	st.Merge("analysis", workflow.StepResult{
		Status: workflow.StepCompleted,
		Output: map[string]any{"narrative": "All invoices check out."},
	}, nil)

	text, partial := composeFinalResult(st)
	assert.False(t, partial)
	assert.Equal(t, "All invoices check out.", text)
}

func TestComposeFinalResultMarksPartialRuns(t *testing.T) {
	st := workflow.NewState("p", "s", "task", []string{"invoice", "analysis"}, false)
	st.Merge("invoice", workflow.StepResult{Status: workflow.StepFailed, Error: "store unreachable"}, nil)
	st.Merge("analysis", workflow.StepResult{
		Status: workflow.StepCompleted,
		Output: map[string]any{"narrative": "Invoice data was unavailable."},
	}, nil)

	text, partial := composeFinalResult(st)
	assert.True(t, partial)
	assert.Contains(t, text, "Partial results")
	assert.Contains(t, text, "Invoice data was unavailable.")
}

func TestComposeFinalResultAggregatesWithoutAnalysis(t *testing.T) {
	st := workflow.NewState("p", "s", "task", []string{"planner", "invoice"}, false)
	st.Merge("planner", workflow.StepResult{Status: workflow.StepCompleted, Summary: "plan narrated"}, nil)
	st.Merge("invoice", workflow.StepResult{Status: workflow.StepCompleted, Summary: "verified 3 invoices"}, nil)

	text, partial := composeFinalResult(st)
	assert.False(t, partial)
	assert.Contains(t, text, "planner: plan narrated")
	assert.Contains(t, text, "invoice: verified 3 invoices")
}

func TestComposeFinalResultEmptyState(t *testing.T) {
	st := workflow.NewState("p", "s", "task", nil, false)
	text, partial := composeFinalResult(st)
	assert.False(t, partial)
	assert.Equal(t, "No agent produced results.", text)
}
