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

func TestInvoiceAgent_Execute(t *testing.T) {
	tools := mcp.NewMockToolClient()
	agent := NewInvoiceAgent(tools)
	st := newTestState("Check invoice payment status", "planner", "invoice", "analysis")

	outcome, err := agent.Execute(context.Background(), st)
	require.NoError(t, err)

	assert.Equal(t, workflow.StepCompleted, outcome.Status)
	assert.Equal(t, "Verified 3 invoices, focus INV-2026-0042", outcome.Summary)
	assert.Contains(t, outcome.Content, "Reviewed 3 invoices (1 overdue, 1 open, 1 paid)")
	assert.Contains(t, outcome.Content, "Line item sum matches the stated total")

	// The overdue invoice is the focus.
	assert.Equal(t, "INV-2026-0042", outcome.Output["focus_invoice"])
	assert.Equal(t, true, outcome.Output["totals_match"])

	// Extraction fields for human review.
	require.NotNil(t, outcome.Collected)
	assert.Equal(t, "INV-2026-0042", outcome.Collected["invoice_id"])
	assert.Equal(t, "Acme Corp", outcome.Collected["customer"])
	assert.Equal(t, "USD", outcome.Collected["currency"])
	assert.Equal(t, "overdue", outcome.Collected["status"])
	assert.Equal(t, true, outcome.Collected["totals_match"])

	// List first, then verify the focus invoice.
	calls := tools.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "invoice.list_invoices", calls[0].Name)
	assert.Equal(t, "invoice.verify_totals", calls[1].Name)
	assert.Equal(t, "INV-2026-0042", calls[1].Args["invoice_id"])
}

func TestInvoiceAgent_ListFailure(t *testing.T) {
	tools := mcp.NewMockToolClient()
	tools.FailWith("invoice.list_invoices", fmt.Errorf("gateway unreachable"))
	agent := NewInvoiceAgent(tools)

	_, err := agent.Execute(context.Background(), newTestState("task", "invoice"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoice listing failed")
}

func TestInvoiceAgent_VerifyFailure(t *testing.T) {
	tools := mcp.NewMockToolClient()
	tools.FailWith("invoice.verify_totals", fmt.Errorf("timeout"))
	agent := NewInvoiceAgent(tools)

	_, err := agent.Execute(context.Background(), newTestState("task", "invoice"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "totals verification failed for INV-2026-0042")
}

func TestInvoiceAgent_Describe(t *testing.T) {
	agent := NewInvoiceAgent(mcp.NewMockToolClient())

	assert.Equal(t, "invoice", agent.Name())
	meta := agent.Describe()
	assert.Equal(t, "invoice", meta.Name)
	assert.Equal(t, "tooling", meta.Type)
	assert.Contains(t, meta.Capabilities, "field_extraction")
}

func TestInvoiceAgent_HealthCheck(t *testing.T) {
	tools := mcp.NewMockToolClient()
	agent := NewInvoiceAgent(tools)
	assert.NoError(t, agent.HealthCheck(context.Background()))

	require.NoError(t, tools.Close())
	assert.Error(t, agent.HealthCheck(context.Background()))
}

func TestPickFocusInvoice(t *testing.T) {
	tests := []struct {
		name     string
		invoices []map[string]any
		want     string
	}{
		{
			name: "overdue wins",
			invoices: []map[string]any{
				{"invoice_id": "A", "status": "open"},
				{"invoice_id": "B", "status": "overdue"},
			},
			want: "B",
		},
		{
			name: "open beats paid",
			invoices: []map[string]any{
				{"invoice_id": "A", "status": "paid"},
				{"invoice_id": "B", "status": "open"},
			},
			want: "B",
		},
		{
			name: "first as fallback",
			invoices: []map[string]any{
				{"invoice_id": "A", "status": "paid"},
				{"invoice_id": "B", "status": "paid"},
			},
			want: "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			focus := pickFocusInvoice(tt.invoices)
			assert.Equal(t, tt.want, focus["invoice_id"])
		})
	}
}
