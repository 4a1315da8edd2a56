package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/llm"
	"github.com/finovant/macaw/pkg/mcp"
	"github.com/finovant/macaw/pkg/workflow"
)

func TestPlannerAgent_Execute(t *testing.T) {
	registry := workflow.NewRegistry()
	require.NoError(t, RegisterDefaults(Deps{
		Registry: registry,
		Tools:    mcp.NewMockToolClient(),
		LLM:      llm.NewMockClient(),
	}))
	planner, ok := registry.Get("planner")
	require.True(t, ok)

	st := newTestState("Check invoice payment status", "planner", "invoice", "analysis")

	outcome, err := planner.Execute(context.Background(), st)
	require.NoError(t, err)

	assert.Equal(t, workflow.StepCompleted, outcome.Status)
	assert.Equal(t, "plan", outcome.Kind)
	assert.Equal(t, "Planned 2 steps", outcome.Summary)
	assert.Equal(t, 2, outcome.Output["steps"])

	// The narrative lists the downstream agents with their registry
	// descriptions, but not the planner itself.
	assert.Contains(t, outcome.Content, "Check invoice payment status")
	assert.Contains(t, outcome.Content, "1. invoice — Verifies invoice records")
	assert.Contains(t, outcome.Content, "2. analysis — Aggregates upstream results")
	assert.NotContains(t, outcome.Content, "planner —")
}

func TestPlannerAgent_UnknownAgentInSequence(t *testing.T) {
	planner := NewPlannerAgent(workflow.NewRegistry())
	st := newTestState("task", "planner", "mystery")

	outcome, err := planner.Execute(context.Background(), st)
	require.NoError(t, err)
	assert.Contains(t, outcome.Content, "1. mystery — specialized step")
}

func TestPlannerAgent_EmptySequence(t *testing.T) {
	planner := NewPlannerAgent(workflow.NewRegistry())
	st := newTestState("task")

	_, err := planner.Execute(context.Background(), st)
	require.Error(t, err)
}

func TestPlannerAgent_CancelledContext(t *testing.T) {
	planner := NewPlannerAgent(workflow.NewRegistry())
	st := newTestState("task", "planner", "analysis")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := planner.Execute(ctx, st)
	assert.ErrorIs(t, err, context.Canceled)
}
