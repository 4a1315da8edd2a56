package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/finovant/macaw/pkg/mcp"
	"github.com/finovant/macaw/pkg/workflow"
)

// InvoiceAgent verifies invoices through the gateway's invoice tools: it
// lists the relevant invoices, cross-checks the focus invoice's line item sum
// against its stated total, and collects the extraction fields that go
// through human review before downstream agents may rely on them.
type InvoiceAgent struct {
	tools mcp.ToolClient
}

// NewInvoiceAgent creates the invoice verification agent. Panics if tools is
// nil (programming error in wiring).
func NewInvoiceAgent(tools mcp.ToolClient) *InvoiceAgent {
	if tools == nil {
		panic("NewInvoiceAgent: tools must not be nil")
	}
	return &InvoiceAgent{tools: tools}
}

func (a *InvoiceAgent) Name() string { return "invoice" }

func (a *InvoiceAgent) Describe() workflow.Metadata {
	return workflow.Metadata{
		Name:        "invoice",
		Type:        "tooling",
		Description: "Verifies invoice records and totals via the invoice store",
		Capabilities: []string{
			"invoice_lookup",
			"totals_verification",
			"field_extraction",
		},
	}
}

// HealthCheck probes the tool gateway.
func (a *InvoiceAgent) HealthCheck(ctx context.Context) error {
	return a.tools.HealthCheck(ctx)
}

// Execute lists invoices, verifies the focus invoice's totals and returns the
// extracted fields in Collected for human review.
func (a *InvoiceAgent) Execute(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
	raw, err := a.tools.CallTool(ctx, "invoice.list_invoices", map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("invoice listing failed: %w", err)
	}
	invoices, err := decodeRecords("invoice.list_invoices", raw)
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return &workflow.StepOutcome{
			Status:  workflow.StepCompleted,
			Summary: "No invoices found",
			Content: "The invoice store returned no records for this task.",
			Output:  map[string]any{"invoices": invoices},
		}, nil
	}

	focus := pickFocusInvoice(invoices)
	focusID := stringField(focus, "invoice_id")

	verifyRaw, err := a.tools.CallTool(ctx, "invoice.verify_totals", map[string]any{
		"invoice_id": focusID,
	})
	if err != nil {
		return nil, fmt.Errorf("totals verification failed for %s: %w", focusID, err)
	}
	verification, err := decodeRecord("invoice.verify_totals", verifyRaw)
	if err != nil {
		return nil, err
	}
	totalsMatch, _ := verification["match"].(bool)

	byStatus := make(map[string]int)
	for _, inv := range invoices {
		byStatus[stringField(inv, "status")]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Reviewed %d invoices (", len(invoices))
	b.WriteString(formatStatusCounts(byStatus))
	b.WriteString(").\n")
	fmt.Fprintf(&b, "Focus invoice %s from %s: amount %v %s, due %s, status %s.\n",
		focusID,
		stringField(focus, "customer"),
		focus["amount"],
		stringField(focus, "currency"),
		stringField(focus, "due_date"),
		stringField(focus, "status"))
	if totalsMatch {
		b.WriteString("Line item sum matches the stated total.")
	} else {
		fmt.Fprintf(&b, "MISMATCH: line item sum %v differs from stated total %v.",
			verification["line_item_sum"], verification["stated_total"])
	}

	summary := fmt.Sprintf("Verified %d invoices, focus %s", len(invoices), focusID)
	if !totalsMatch {
		summary = fmt.Sprintf("Totals mismatch on %s", focusID)
	}

	return &workflow.StepOutcome{
		Status:  workflow.StepCompleted,
		Summary: summary,
		Content: b.String(),
		Output: map[string]any{
			"invoices":      invoices,
			"focus_invoice": focusID,
			"totals_match":  totalsMatch,
		},
		// Extraction fields subject to human review before the workflow's
		// result is considered trustworthy.
		Collected: map[string]any{
			"invoice_id":   focusID,
			"customer":     stringField(focus, "customer"),
			"amount":       focus["amount"],
			"currency":     stringField(focus, "currency"),
			"due_date":     stringField(focus, "due_date"),
			"status":       stringField(focus, "status"),
			"totals_match": totalsMatch,
		},
	}, nil
}

// pickFocusInvoice chooses the invoice most worth attention: the first
// overdue one, else the first open one, else the first.
func pickFocusInvoice(invoices []map[string]any) map[string]any {
	for _, inv := range invoices {
		if stringField(inv, "status") == "overdue" {
			return inv
		}
	}
	for _, inv := range invoices {
		if stringField(inv, "status") == "open" {
			return inv
		}
	}
	return invoices[0]
}

func formatStatusCounts(byStatus map[string]int) string {
	// Fixed presentation order; statuses outside it are appended.
	order := []string{"overdue", "open", "paid"}
	var parts []string
	seen := make(map[string]bool)
	for _, status := range order {
		if n := byStatus[status]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, status))
			seen[status] = true
		}
	}
	for status, n := range byStatus {
		if !seen[status] && status != "" {
			parts = append(parts, fmt.Sprintf("%d %s", n, status))
		}
	}
	return strings.Join(parts, ", ")
}
