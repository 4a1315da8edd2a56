package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockCallToolReturnsJSONFixtures(t *testing.T) {
	m := NewMockToolClient()
	ctx := context.Background()

	tests := []struct {
		tool string
		args map[string]any
	}{
		{tool: "invoice.list_invoices"},
		{tool: "invoice.get_invoice", args: map[string]any{"invoice_id": "INV-2026-0099"}},
		{tool: "invoice.verify_totals", args: map[string]any{"invoice_id": "INV-2026-0042"}},
		{tool: "gmail.search_messages", args: map[string]any{"query": "overdue invoice"}},
		{tool: "gmail.get_message", args: map[string]any{"message_id": "msg-8801"}},
		{tool: "salesforce.get_account", args: map[string]any{"name": "Globex"}},
		{tool: "salesforce.search_records", args: map[string]any{"query": "Acme"}},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			content, err := m.CallTool(ctx, tt.tool, tt.args)
			require.NoError(t, err)

			var parsed any
			require.NoError(t, json.Unmarshal([]byte(content), &parsed),
				"fixture for %s must be valid JSON", tt.tool)
		})
	}
}

func TestMockFixturesEchoArguments(t *testing.T) {
	m := NewMockToolClient()
	ctx := context.Background()

	content, err := m.CallTool(ctx, "invoice.get_invoice", map[string]any{"invoice_id": "INV-2026-0061"})
	require.NoError(t, err)
	assert.Contains(t, content, "INV-2026-0061")

	content, err = m.CallTool(ctx, "salesforce.get_account", map[string]any{"name": "Initech"})
	require.NoError(t, err)
	assert.Contains(t, content, "Initech")
}

func TestMockDeterministicAcrossCalls(t *testing.T) {
	m := NewMockToolClient()
	ctx := context.Background()

	first, err := m.CallTool(ctx, "invoice.list_invoices", nil)
	require.NoError(t, err)
	second, err := m.CallTool(ctx, "invoice.list_invoices", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMockUnknownTool(t *testing.T) {
	m := NewMockToolClient()

	_, err := m.CallTool(context.Background(), "payroll.run", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available on the mock gateway")
}

func TestMockInvalidToolName(t *testing.T) {
	m := NewMockToolClient()

	_, err := m.CallTool(context.Background(), "no-namespace", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tool name")
	assert.Empty(t, m.Calls(), "invalid names are rejected before recording")
}

func TestMockFailureInjection(t *testing.T) {
	m := NewMockToolClient()
	ctx := context.Background()
	injected := errors.New("read tcp: connection reset by peer")

	m.FailWith("gmail.search_messages", injected)

	_, err := m.CallTool(ctx, "gmail.search_messages", nil)
	assert.ErrorIs(t, err, injected)

	// The queue is consumed; the next call succeeds.
	_, err = m.CallTool(ctx, "gmail.search_messages", nil)
	assert.NoError(t, err)
}

func TestMockRecordsCalls(t *testing.T) {
	m := NewMockToolClient()
	ctx := context.Background()

	_, err := m.CallTool(ctx, "invoice.list_invoices", map[string]any{"status": "overdue"})
	require.NoError(t, err)
	_, err = m.CallTool(ctx, "gmail.search_messages", map[string]any{"query": "INV-2026-0042"})
	require.NoError(t, err)

	calls := m.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "invoice.list_invoices", calls[0].Name)
	assert.Equal(t, "overdue", calls[0].Args["status"])
	assert.Equal(t, "gmail.search_messages", calls[1].Name)
}

func TestMockListTools(t *testing.T) {
	m := NewMockToolClient()

	defs, err := m.ListTools(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, defs)

	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	assert.Contains(t, names, "invoice.list_invoices")
	assert.Contains(t, names, "gmail.search_messages")
	assert.Contains(t, names, "salesforce.get_account")
}

func TestMockClosedClient(t *testing.T) {
	m := NewMockToolClient()
	require.NoError(t, m.HealthCheck(context.Background()))

	require.NoError(t, m.Close())

	_, err := m.CallTool(context.Background(), "invoice.list_invoices", nil)
	assert.Error(t, err)
	assert.Error(t, m.HealthCheck(context.Background()))
}

func TestMockRespectsContextCancellation(t *testing.T) {
	m := NewMockToolClient()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.CallTool(ctx, "invoice.list_invoices", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
