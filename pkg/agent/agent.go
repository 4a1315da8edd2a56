// Package agent provides the built-in finance agents. Each agent implements
// workflow.Agent: it receives a cloned workflow state, does one unit of work
// (MCP tool calls or an LLM completion), and returns a StepOutcome for the
// executor to merge.
//
// Agents are shared across concurrently running workflows, so they hold no
// per-run state — everything run-scoped lives in the State they are handed.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/finovant/macaw/pkg/events"
	"github.com/finovant/macaw/pkg/llm"
	"github.com/finovant/macaw/pkg/mcp"
	"github.com/finovant/macaw/pkg/workflow"
)

// Streamer publishes the transient stream envelopes emitted while an agent's
// LLM output is being generated. Implemented by events.Publisher.
type Streamer interface {
	PublishStreamStart(ctx context.Context, data events.StreamData) error
	PublishStreamDelta(ctx context.Context, data events.StreamData) error
	PublishStreamEnd(ctx context.Context, data events.StreamData) error
}

// Deps carries the shared clients the built-in agents are constructed with.
// In mock mode the caller passes the mock clients; the agents are identical
// either way.
type Deps struct {
	Registry *workflow.Registry
	Tools    mcp.ToolClient
	LLM      llm.Client
	Streamer Streamer
}

// RegisterDefaults constructs the built-in finance agents and registers them.
func RegisterDefaults(d Deps) error {
	agents := []workflow.Agent{
		NewPlannerAgent(d.Registry),
		NewInvoiceAgent(d.Tools),
		NewGmailAgent(d.Tools),
		NewSalesforceAgent(d.Tools),
		NewAnalysisAgent(d.LLM, d.Streamer),
	}
	for _, a := range agents {
		if err := d.Registry.Register(a); err != nil {
			return fmt.Errorf("failed to register agent %s: %w", a.Name(), err)
		}
	}
	return nil
}

// decodeRecords parses a tool's JSON array response into a slice of maps.
// Agents report a parse failure as a step error — a tool that returns
// malformed JSON is as broken as one that is unreachable.
func decodeRecords(tool, raw string) ([]map[string]any, error) {
	var records []map[string]any
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", tool, err)
	}
	return records, nil
}

// decodeRecord parses a tool's JSON object response into a map.
func decodeRecord(tool, raw string) (map[string]any, error) {
	var record map[string]any
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", tool, err)
	}
	return record, nil
}

// stringField returns a record's field as a string, empty when absent or not
// a string.
func stringField(record map[string]any, key string) string {
	v, _ := record[key].(string)
	return v
}

// collectedInvoiceID returns the invoice id a prior invoice step collected,
// so downstream agents can scope their queries to the same invoice.
func collectedInvoiceID(st *workflow.State) string {
	fields, ok := st.Collected["invoice"]
	if !ok {
		return ""
	}
	id, _ := fields["invoice_id"].(string)
	return id
}

// firstLine returns the first non-empty line of text, for use as a step
// summary.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
