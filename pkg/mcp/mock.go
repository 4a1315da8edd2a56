package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// ToolCall records one invocation against the mock.
type ToolCall struct {
	Name string
	Args map[string]any
}

// MockToolClient is a deterministic ToolClient for mock mode and tests.
// Fixtures cover the finance tool surface (invoice store, mailbox, CRM) so
// the full pipeline runs with zero external calls. Safe for concurrent use.
type MockToolClient struct {
	mu       sync.Mutex
	calls    []ToolCall
	failures map[string][]error
	closed   bool
}

// NewMockToolClient creates an empty mock.
func NewMockToolClient() *MockToolClient {
	return &MockToolClient{
		failures: make(map[string][]error),
	}
}

// FailWith queues an error for the next call of the named tool. Multiple
// queued errors are consumed in order; later calls succeed again.
func (m *MockToolClient) FailWith(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[name] = append(m.failures[name], err)
}

// Calls returns a copy of every recorded invocation.
func (m *MockToolClient) Calls() []ToolCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ToolCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallTool returns the canned fixture for the named tool.
func (m *MockToolClient) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, _, err := SplitToolName(name); err != nil {
		return "", err
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return "", fmt.Errorf("mock tool client is closed")
	}
	m.calls = append(m.calls, ToolCall{Name: name, Args: args})
	if queued := m.failures[name]; len(queued) > 0 {
		err := queued[0]
		m.failures[name] = queued[1:]
		m.mu.Unlock()
		return "", err
	}
	m.mu.Unlock()

	return m.fixture(name, args)
}

// ListTools returns the mock tool inventory.
func (m *MockToolClient) ListTools(ctx context.Context) ([]ToolDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []ToolDefinition{
		{Name: "invoice.list_invoices", Description: "List invoices, optionally filtered by status"},
		{Name: "invoice.get_invoice", Description: "Fetch one invoice with line items"},
		{Name: "invoice.verify_totals", Description: "Cross-check an invoice's line item sum against its stated total"},
		{Name: "gmail.search_messages", Description: "Search mailbox messages"},
		{Name: "gmail.get_message", Description: "Fetch one message body"},
		{Name: "salesforce.get_account", Description: "Fetch a CRM account record"},
		{Name: "salesforce.search_records", Description: "Search CRM records"},
	}, nil
}

// HealthCheck reports healthy unless the mock is closed.
func (m *MockToolClient) HealthCheck(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("mock tool client is closed")
	}
	return nil
}

// Close marks the mock closed; subsequent calls fail.
func (m *MockToolClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// fixture routes a tool name to its canned response.
func (m *MockToolClient) fixture(name string, args map[string]any) (string, error) {
	switch name {
	case "invoice.list_invoices":
		return `[
  {"invoice_id": "INV-2026-0042", "customer": "Acme Corp", "amount": 1250.00, "currency": "USD", "status": "overdue", "due_date": "2026-07-15"},
  {"invoice_id": "INV-2026-0057", "customer": "Globex", "amount": 980.50, "currency": "USD", "status": "open", "due_date": "2026-09-01"},
  {"invoice_id": "INV-2026-0061", "customer": "Initech", "amount": 3420.00, "currency": "USD", "status": "paid", "due_date": "2026-06-30"}
]`, nil

	case "invoice.get_invoice":
		id := stringArg(args, "invoice_id", "INV-2026-0042")
		return fmt.Sprintf(`{
  "invoice_id": %q,
  "customer": "Acme Corp",
  "amount": 1250.00,
  "currency": "USD",
  "status": "overdue",
  "due_date": "2026-07-15",
  "line_items": [
    {"description": "Consulting hours (June)", "quantity": 10, "unit_price": 100.00},
    {"description": "License renewal", "quantity": 1, "unit_price": 250.00}
  ]
}`, id), nil

	case "invoice.verify_totals":
		id := stringArg(args, "invoice_id", "INV-2026-0042")
		return fmt.Sprintf(`{"invoice_id": %q, "line_item_sum": 1250.00, "stated_total": 1250.00, "match": true}`, id), nil

	case "gmail.search_messages":
		query := stringArg(args, "query", "")
		return fmt.Sprintf(`[
  {"message_id": "msg-8801", "from": "billing@acme.example", "subject": "Re: Invoice INV-2026-0042", "snippet": "We are processing the payment this week.", "query": %q},
  {"message_id": "msg-8764", "from": "ap@globex.example", "subject": "Payment schedule", "snippet": "Expect settlement by the due date.", "query": %q}
]`, query, query), nil

	case "gmail.get_message":
		id := stringArg(args, "message_id", "msg-8801")
		return fmt.Sprintf(`{
  "message_id": %q,
  "from": "billing@acme.example",
  "to": "finance@finovant.example",
  "subject": "Re: Invoice INV-2026-0042",
  "body": "Hello, we received the reminder and are processing the payment this week. Regards, Acme AP."
}`, id), nil

	case "salesforce.get_account":
		accountName := stringArg(args, "name", "Acme Corp")
		return fmt.Sprintf(`{
  "account_id": "001A0000014xQZa",
  "name": %q,
  "tier": "enterprise",
  "owner": "jordan.lee",
  "open_opportunities": 2,
  "annual_revenue": 1200000
}`, accountName), nil

	case "salesforce.search_records":
		query := stringArg(args, "query", "")
		return fmt.Sprintf(`[
  {"record_id": "006A0000011pXYZ", "type": "Opportunity", "name": "Acme renewal FY27", "stage": "Negotiation", "query": %q},
  {"record_id": "003A0000027aBCD", "type": "Contact", "name": "Pat Chen", "title": "AP Manager", "query": %q}
]`, query, query), nil

	default:
		return "", fmt.Errorf(
			"tool %q is not available on the mock gateway. "+
				"Available tools: %s", name, strings.Join(m.toolNames(), ", "))
	}
}

func (m *MockToolClient) toolNames() []string {
	defs, _ := m.ListTools(context.Background())
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names
}

func stringArg(args map[string]any, key, fallback string) string {
	if args == nil {
		return fallback
	}
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
