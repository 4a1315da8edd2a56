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

func TestSalesforceAgent_Execute(t *testing.T) {
	tools := mcp.NewMockToolClient()
	agent := NewSalesforceAgent(tools)
	st := newTestState("Customer 360 for our accounts", "planner", "salesforce", "analysis")

	outcome, err := agent.Execute(context.Background(), st)
	require.NoError(t, err)

	assert.Equal(t, workflow.StepCompleted, outcome.Status)
	assert.Equal(t, "Found 2 CRM records", outcome.Summary)
	assert.Contains(t, outcome.Content, "Opportunity Acme renewal FY27")
	assert.Contains(t, outcome.Content, "Contact Pat Chen")

	// No upstream customer: search only, no account lookup.
	_, hasAccount := outcome.Output["account"]
	assert.False(t, hasAccount)

	calls := tools.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "salesforce.search_records", calls[0].Name)
	assert.Equal(t, "Customer 360 for our accounts", calls[0].Args["query"])
}

func TestSalesforceAgent_FetchesAccountForCollectedCustomer(t *testing.T) {
	tools := mcp.NewMockToolClient()
	agent := NewSalesforceAgent(tools)

	st := newTestState("Check invoice payment status", "planner", "invoice", "salesforce")
	st.Merge("invoice", workflow.StepResult{Status: workflow.StepCompleted}, map[string]any{
		"invoice_id": "INV-2026-0042",
		"customer":   "Acme Corp",
	})

	outcome, err := agent.Execute(context.Background(), st)
	require.NoError(t, err)

	account, ok := outcome.Output["account"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", account["name"])
	assert.Equal(t, "enterprise", account["tier"])
	assert.Contains(t, outcome.Content, "tier enterprise, owner jordan.lee")

	calls := tools.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "salesforce.search_records", calls[0].Name)
	assert.Equal(t, "Acme Corp", calls[0].Args["query"])
	assert.Equal(t, "salesforce.get_account", calls[1].Name)
	assert.Equal(t, "Acme Corp", calls[1].Args["name"])
}

func TestSalesforceAgent_SearchFailure(t *testing.T) {
	tools := mcp.NewMockToolClient()
	tools.FailWith("salesforce.search_records", fmt.Errorf("gateway unreachable"))
	agent := NewSalesforceAgent(tools)

	_, err := agent.Execute(context.Background(), newTestState("task", "salesforce"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CRM search failed")
}

func TestSalesforceAgent_AccountFailure(t *testing.T) {
	tools := mcp.NewMockToolClient()
	tools.FailWith("salesforce.get_account", fmt.Errorf("record locked"))
	agent := NewSalesforceAgent(tools)

	st := newTestState("task", "invoice", "salesforce")
	st.Merge("invoice", workflow.StepResult{Status: workflow.StepCompleted}, map[string]any{
		"customer": "Acme Corp",
	})

	_, err := agent.Execute(context.Background(), st)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account lookup failed for Acme Corp")
}

func TestSalesforceAgent_Describe(t *testing.T) {
	agent := NewSalesforceAgent(mcp.NewMockToolClient())

	assert.Equal(t, "salesforce", agent.Name())
	meta := agent.Describe()
	assert.Equal(t, "tooling", meta.Type)
	assert.Contains(t, meta.Capabilities, "crm_lookup")
}
