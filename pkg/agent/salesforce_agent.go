package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/finovant/macaw/pkg/mcp"
	"github.com/finovant/macaw/pkg/workflow"
)

// SalesforceAgent looks up CRM context for the task: matching records, plus
// the full account when a prior invoice step identified the customer.
type SalesforceAgent struct {
	tools mcp.ToolClient
}

// NewSalesforceAgent creates the CRM agent. Panics if tools is nil
// (programming error in wiring).
func NewSalesforceAgent(tools mcp.ToolClient) *SalesforceAgent {
	if tools == nil {
		panic("NewSalesforceAgent: tools must not be nil")
	}
	return &SalesforceAgent{tools: tools}
}

func (a *SalesforceAgent) Name() string { return "salesforce" }

func (a *SalesforceAgent) Describe() workflow.Metadata {
	return workflow.Metadata{
		Name:        "salesforce",
		Type:        "tooling",
		Description: "Looks up CRM accounts and records for customer context",
		Capabilities: []string{
			"crm_lookup",
			"account_context",
		},
	}
}

// HealthCheck probes the tool gateway.
func (a *SalesforceAgent) HealthCheck(ctx context.Context) error {
	return a.tools.HealthCheck(ctx)
}

// Execute searches CRM records and, when the customer is known from a prior
// invoice step, fetches the account record.
func (a *SalesforceAgent) Execute(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
	query := st.TaskDescription
	customer := collectedCustomer(st)
	if customer != "" {
		query = customer
	}

	raw, err := a.tools.CallTool(ctx, "salesforce.search_records", map[string]any{
		"query": query,
	})
	if err != nil {
		return nil, fmt.Errorf("CRM search failed: %w", err)
	}
	records, err := decodeRecords("salesforce.search_records", raw)
	if err != nil {
		return nil, err
	}

	output := map[string]any{
		"records": records,
		"query":   query,
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d CRM records for %q.\n", len(records), query)
	for _, rec := range records {
		fmt.Fprintf(&b, "- %s %s (%s)\n",
			stringField(rec, "type"),
			stringField(rec, "name"),
			stringField(rec, "record_id"))
	}

	if customer != "" {
		accountRaw, err := a.tools.CallTool(ctx, "salesforce.get_account", map[string]any{
			"name": customer,
		})
		if err != nil {
			return nil, fmt.Errorf("account lookup failed for %s: %w", customer, err)
		}
		account, err := decodeRecord("salesforce.get_account", accountRaw)
		if err != nil {
			return nil, err
		}
		output["account"] = account
		fmt.Fprintf(&b, "Account %s: tier %s, owner %s, %v open opportunities.\n",
			stringField(account, "name"),
			stringField(account, "tier"),
			stringField(account, "owner"),
			account["open_opportunities"])
	}

	return &workflow.StepOutcome{
		Status:  workflow.StepCompleted,
		Summary: fmt.Sprintf("Found %d CRM records", len(records)),
		Content: b.String(),
		Output:  output,
	}, nil
}

// collectedCustomer returns the customer name a prior invoice step collected.
func collectedCustomer(st *workflow.State) string {
	fields, ok := st.Collected["invoice"]
	if !ok {
		return ""
	}
	customer, _ := fields["customer"].(string)
	return customer
}
