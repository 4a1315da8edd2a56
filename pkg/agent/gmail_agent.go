package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/finovant/macaw/pkg/mcp"
	"github.com/finovant/macaw/pkg/workflow"
)

// GmailAgent retrieves and summarizes mailbox correspondence relevant to the
// task. When a prior invoice step collected an invoice id, the search is
// scoped to that invoice instead of the raw task text.
type GmailAgent struct {
	tools mcp.ToolClient
}

// NewGmailAgent creates the mailbox agent. Panics if tools is nil
// (programming error in wiring).
func NewGmailAgent(tools mcp.ToolClient) *GmailAgent {
	if tools == nil {
		panic("NewGmailAgent: tools must not be nil")
	}
	return &GmailAgent{tools: tools}
}

func (a *GmailAgent) Name() string { return "gmail" }

func (a *GmailAgent) Describe() workflow.Metadata {
	return workflow.Metadata{
		Name:        "gmail",
		Type:        "tooling",
		Description: "Searches and summarizes mailbox correspondence",
		Capabilities: []string{
			"email_search",
			"email_summarization",
		},
	}
}

// HealthCheck probes the tool gateway.
func (a *GmailAgent) HealthCheck(ctx context.Context) error {
	return a.tools.HealthCheck(ctx)
}

// Execute searches the mailbox and summarizes the matches.
func (a *GmailAgent) Execute(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
	query := st.TaskDescription
	if invoiceID := collectedInvoiceID(st); invoiceID != "" {
		query = "invoice " + invoiceID
	}

	raw, err := a.tools.CallTool(ctx, "gmail.search_messages", map[string]any{
		"query": query,
	})
	if err != nil {
		return nil, fmt.Errorf("mailbox search failed: %w", err)
	}
	messages, err := decodeRecords("gmail.search_messages", raw)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d messages for %q.\n", len(messages), query)
	for _, msg := range messages {
		fmt.Fprintf(&b, "- %s — %s: %s\n",
			stringField(msg, "from"),
			stringField(msg, "subject"),
			stringField(msg, "snippet"))
	}

	return &workflow.StepOutcome{
		Status:  workflow.StepCompleted,
		Summary: fmt.Sprintf("Found %d messages", len(messages)),
		Content: b.String(),
		Output: map[string]any{
			"messages": messages,
			"query":    query,
		},
	}, nil
}
