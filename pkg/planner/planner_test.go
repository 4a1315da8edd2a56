package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/ent"
	"github.com/finovant/macaw/pkg/llm"
	"github.com/finovant/macaw/pkg/workflow"
)

type stubAgent struct{ name string }

func (a stubAgent) Name() string { return a.name }
func (a stubAgent) Describe() workflow.Metadata {
	return workflow.Metadata{Name: a.name, Type: "test", Description: a.name + " agent"}
}
func (a stubAgent) Execute(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
	return &workflow.StepOutcome{Status: workflow.StepCompleted}, nil
}

func financeRegistry(t *testing.T) *workflow.Registry {
	t.Helper()
	reg := workflow.NewRegistry()
	for _, name := range []string{"planner", "invoice", "gmail", "salesforce", "analysis"} {
		require.NoError(t, reg.Register(stubAgent{name: name}))
	}
	return reg
}

func TestBuildPlanFromLLM(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{
		Response: `{"agents": ["planner", "invoice", "analysis"], "reasoning": {"invoice": "pulls the records"}, "summary": "Verify Acme invoices", "complexity": 0.45}`,
	})
	p := New(mock, financeRegistry(t), 10)

	result, err := p.BuildPlan(context.Background(), "plan-1", "verify the Acme invoices")
	require.NoError(t, err)

	assert.Equal(t, []string{"planner", "invoice", "analysis"}, result.Sequence)
	assert.Equal(t, SourceLLM, result.Source)
	assert.Equal(t, "Verify Acme invoices", result.Summary)
	assert.InDelta(t, 0.45, result.Complexity, 0.001)
	assert.Equal(t, "pulls the records", result.Reasoning["invoice"])
	assert.Equal(t, 55*time.Second, result.EstimatedDuration)
}

func TestBuildPlanParsesFencedJSON(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{
		Response: "```json\n{\"agents\": [\"planner\", \"gmail\", \"analysis\"], \"summary\": \"Inbox sweep\", \"complexity\": 0.3}\n```",
	})
	p := New(mock, financeRegistry(t), 10)

	result, err := p.BuildPlan(context.Background(), "plan-1", "check the shared mailbox")
	require.NoError(t, err)
	assert.Equal(t, []string{"planner", "gmail", "analysis"}, result.Sequence)
	assert.Equal(t, SourceLLM, result.Source)
}

func TestBuildPlanFallsBackToTemplateOnLLMError(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{Err: errors.New("connection refused")})
	p := New(mock, financeRegistry(t), 10)

	result, err := p.BuildPlan(context.Background(), "plan-1", "verify last month's invoices")
	require.NoError(t, err)

	assert.Equal(t, SourceTemplate, result.Source)
	assert.Equal(t, []string{"planner", "invoice", "analysis"}, result.Sequence)
	assert.Equal(t, "Invoice verification", result.Summary)
}

func TestBuildPlanFallsBackToTemplateOnGarbageOutput(t *testing.T) {
	// The unscripted mock returns prose, not plan JSON.
	p := New(llm.NewMockClient(), financeRegistry(t), 10)

	result, err := p.BuildPlan(context.Background(), "plan-1", "track overdue payments for Q2")
	require.NoError(t, err)

	assert.Equal(t, SourceTemplate, result.Source)
	assert.Equal(t, []string{"planner", "invoice", "gmail", "analysis"}, result.Sequence)
}

func TestBuildPlanDefaultSequence(t *testing.T) {
	p := New(llm.NewMockClient(), financeRegistry(t), 10)

	result, err := p.BuildPlan(context.Background(), "plan-1", "do something unclassifiable")
	require.NoError(t, err)

	assert.Equal(t, SourceDefault, result.Source)
	assert.Equal(t, []string{"planner", "analysis"}, result.Sequence)
	assert.Equal(t, "General task review", result.Summary)
}

func TestBuildPlanTemplateTable(t *testing.T) {
	tests := []struct {
		task string
		want []string
	}{
		{task: "reconcile billing records", want: []string{"planner", "invoice", "analysis"}},
		{task: "payment status tracking", want: []string{"planner", "invoice", "gmail", "analysis"}},
		{task: "build a customer 360 view", want: []string{"planner", "salesforce", "gmail", "analysis"}},
		{task: "summarize the inbox", want: []string{"planner", "gmail", "analysis"}},
	}

	for _, tt := range tests {
		t.Run(tt.task, func(t *testing.T) {
			p := New(llm.NewMockClient(), financeRegistry(t), 10)
			result, err := p.BuildPlan(context.Background(), "plan-1", tt.task)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Sequence)
			assert.Equal(t, SourceTemplate, result.Source)
		})
	}
}

func TestSanitizeDropsUnknownAgents(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{
		Response: `{"agents": ["planner", "payroll", "invoice", "analysis"], "complexity": 0.5}`,
	})
	p := New(mock, financeRegistry(t), 10)

	result, err := p.BuildPlan(context.Background(), "plan-1", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"planner", "invoice", "analysis"}, result.Sequence)
}

func TestSanitizeDeduplicatesKeepingFirst(t *testing.T) {
	seq, err := New(llm.NewMockClient(), financeRegistry(t), 10).
		SanitizeSequence([]string{"planner", "invoice", "gmail", "invoice", "analysis", "gmail"})
	require.NoError(t, err)
	assert.Equal(t, []string{"planner", "invoice", "gmail", "analysis"}, seq)
}

func TestSanitizeInsertsPlannerFirst(t *testing.T) {
	p := New(llm.NewMockClient(), financeRegistry(t), 10)

	seq, err := p.SanitizeSequence([]string{"invoice", "analysis"})
	require.NoError(t, err)
	assert.Equal(t, []string{"planner", "invoice", "analysis"}, seq)

	// Planner not first is moved, not duplicated.
	seq, err = p.SanitizeSequence([]string{"invoice", "planner", "analysis"})
	require.NoError(t, err)
	assert.Equal(t, []string{"planner", "invoice", "analysis"}, seq)
}

func TestSanitizeClampsToMaxSteps(t *testing.T) {
	p := New(llm.NewMockClient(), financeRegistry(t), 3)

	seq, err := p.SanitizeSequence([]string{"planner", "invoice", "gmail", "salesforce", "analysis"})
	require.NoError(t, err)
	assert.Equal(t, []string{"planner", "invoice", "gmail"}, seq)
}

func TestSanitizeRejectsPlannerOnly(t *testing.T) {
	p := New(llm.NewMockClient(), financeRegistry(t), 10)

	_, err := p.SanitizeSequence([]string{"planner"})
	assert.ErrorIs(t, err, ErrNotActionable)

	_, err = p.SanitizeSequence([]string{"payroll", "ledger"})
	assert.ErrorIs(t, err, ErrNotActionable)
}

func TestBuildPlanNotActionableWithEmptyRegistry(t *testing.T) {
	p := New(llm.NewMockClient(), workflow.NewRegistry(), 10)

	_, err := p.BuildPlan(context.Background(), "plan-1", "anything")
	assert.ErrorIs(t, err, ErrNotActionable)
}

func TestComplexityClamped(t *testing.T) {
	mock := llm.NewMockClient(
		llm.ScriptEntry{Response: `{"agents": ["planner", "analysis"], "complexity": 7.5}`},
		llm.ScriptEntry{Response: `{"agents": ["planner", "analysis"], "complexity": -2}`},
	)
	p := New(mock, financeRegistry(t), 10)

	result, err := p.BuildPlan(context.Background(), "plan-1", "x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Complexity)

	result, err = p.BuildPlan(context.Background(), "plan-2", "x")
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Complexity)
}

func TestPlannerPromptListsAgents(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{
		Response: `{"agents": ["planner", "analysis"], "complexity": 0.2}`,
	})
	p := New(mock, financeRegistry(t), 10)

	_, err := p.BuildPlan(context.Background(), "plan-1", "review the quarter")
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	prompt := llm.LastUserMessage(&calls[0])
	assert.Contains(t, prompt, "Plan the following task: review the quarter")
	assert.Contains(t, prompt, "- invoice: invoice agent")
	assert.Contains(t, prompt, "- salesforce: salesforce agent")
	assert.Equal(t, "plan-1", calls[0].PlanID)
}

type stubTeamSource struct {
	teams []*ent.Team
	err   error
}

func (s stubTeamSource) ListTeams(ctx context.Context) ([]*ent.Team, error) {
	return s.teams, s.err
}

func TestPlannerPromptIncludesTeamHints(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{
		Response: `{"agents": ["planner", "invoice", "analysis"], "complexity": 0.4}`,
	})
	p := New(mock, financeRegistry(t), 10)
	p.SetTeamSource(stubTeamSource{teams: []*ent.Team{{
		Name:        "billing-crew",
		Description: "Invoice review",
		Agents: []map[string]interface{}{
			{"name": "invoice"},
			{"name": "analysis"},
		},
	}}})

	_, err := p.BuildPlan(context.Background(), "plan-1", "verify the Acme invoices")
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	prompt := llm.LastUserMessage(&calls[0])
	assert.Contains(t, prompt, "- billing-crew: Invoice review (agents: invoice, analysis)")
}

func TestPlannerTeamHintsFailureIsNonFatal(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{
		Response: `{"agents": ["planner", "analysis"], "complexity": 0.2}`,
	})
	p := New(mock, financeRegistry(t), 10)
	p.SetTeamSource(stubTeamSource{err: errors.New("store offline")})

	result, err := p.BuildPlan(context.Background(), "plan-1", "review the quarter")
	require.NoError(t, err)
	assert.Equal(t, SourceLLM, result.Source)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.NotContains(t, llm.LastUserMessage(&calls[0]), "Operator-configured teams")
}
