package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/mcp"
	"github.com/finovant/macaw/pkg/workflow"
)

func TestGmailAgent_Execute(t *testing.T) {
	tools := mcp.NewMockToolClient()
	agent := NewGmailAgent(tools)
	st := newTestState("Track overdue payments", "planner", "gmail", "analysis")

	outcome, err := agent.Execute(context.Background(), st)
	require.NoError(t, err)

	assert.Equal(t, workflow.StepCompleted, outcome.Status)
	assert.Equal(t, "Found 2 messages", outcome.Summary)
	assert.Contains(t, outcome.Content, "billing@acme.example")
	assert.Contains(t, outcome.Content, "Payment schedule")

	// Without upstream invoice data the raw task is the query.
	assert.Equal(t, "Track overdue payments", outcome.Output["query"])

	calls := tools.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "gmail.search_messages", calls[0].Name)
	assert.Equal(t, "Track overdue payments", calls[0].Args["query"])
}

func TestGmailAgent_ScopesQueryToCollectedInvoice(t *testing.T) {
	tools := mcp.NewMockToolClient()
	agent := NewGmailAgent(tools)

	st := newTestState("Track overdue payments", "planner", "invoice", "gmail")
	st.Merge("invoice", workflow.StepResult{Status: workflow.StepCompleted}, map[string]any{
		"invoice_id": "INV-2026-0042",
	})

	outcome, err := agent.Execute(context.Background(), st)
	require.NoError(t, err)

	assert.Equal(t, "invoice INV-2026-0042", outcome.Output["query"])
	calls := tools.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "invoice INV-2026-0042", calls[0].Args["query"])
}

func TestGmailAgent_SearchFailure(t *testing.T) {
	tools := mcp.NewMockToolClient()
	tools.FailWith("gmail.search_messages", fmt.Errorf("gateway unreachable"))
	agent := NewGmailAgent(tools)

	_, err := agent.Execute(context.Background(), newTestState("task", "gmail"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mailbox search failed")
}

func TestGmailAgent_Describe(t *testing.T) {
	agent := NewGmailAgent(mcp.NewMockToolClient())

	assert.Equal(t, "gmail", agent.Name())
	meta := agent.Describe()
	assert.Equal(t, "tooling", meta.Type)
	assert.Contains(t, meta.Capabilities, "email_search")
	assert.False(t, meta.TolerateUpstreamGaps)
}
