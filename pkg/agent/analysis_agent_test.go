package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/llm"
	"github.com/finovant/macaw/pkg/workflow"
)

func TestAnalysisAgent_Execute(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{
		Chunks: []string{"Invoice INV-2026-0042 is overdue. ", "Acme confirmed payment is in flight."},
	})
	streamer := &recordingStreamer{}
	agent := NewAnalysisAgent(mock, streamer)

	st := newTestState("Check invoice payment status", "planner", "invoice", "analysis")
	st.Merge("planner", workflow.StepResult{Status: workflow.StepCompleted, Summary: "Planned 2 steps"}, nil)
	st.Merge("invoice", workflow.StepResult{Status: workflow.StepCompleted, Summary: "Verified 3 invoices"}, map[string]any{
		"invoice_id": "INV-2026-0042",
	})

	outcome, err := agent.Execute(context.Background(), st)
	require.NoError(t, err)

	assert.Equal(t, workflow.StepCompleted, outcome.Status)
	assert.Equal(t, "result", outcome.Kind)
	full := "Invoice INV-2026-0042 is overdue. Acme confirmed payment is in flight."
	assert.Equal(t, full, outcome.Content)
	assert.Equal(t, full, outcome.Output["narrative"])
	assert.Equal(t, full, outcome.Summary, "single-line narrative is its own summary")

	// One start, one delta per chunk, one end — all for the same stream.
	require.Len(t, streamer.starts, 1)
	require.Len(t, streamer.deltas, 2)
	require.Len(t, streamer.ends, 1)
	streamID := streamer.starts[0].StreamID
	assert.NotEmpty(t, streamID)
	assert.Equal(t, streamID, streamer.deltas[0].StreamID)
	assert.Equal(t, streamID, streamer.ends[0].StreamID)
	assert.Equal(t, "plan-1", streamer.starts[0].PlanID)
	assert.Equal(t, "Invoice INV-2026-0042 is overdue. ", streamer.deltas[0].Delta)
}

func TestAnalysisAgent_PromptIncludesUpstreamGaps(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{Response: "Partial report."})
	agent := NewAnalysisAgent(mock, nil)

	st := newTestState("Track payments", "planner", "invoice", "gmail", "analysis")
	st.Merge("planner", workflow.StepResult{Status: workflow.StepCompleted, Summary: "Planned 3 steps"}, nil)
	st.Merge("invoice", workflow.StepResult{Status: workflow.StepFailed, Error: "gateway unreachable"}, nil)
	st.Merge("gmail", workflow.StepResult{Status: workflow.StepSkipped}, nil)

	_, err := agent.Execute(context.Background(), st)
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	prompt := llm.LastUserMessage(&calls[0])
	assert.Contains(t, prompt, "Task: Track payments")
	assert.Contains(t, prompt, "[planner] completed: Planned 3 steps")
	assert.Contains(t, prompt, "[invoice] failed (gateway unreachable)")
	assert.Contains(t, prompt, "[gmail] skipped")
}

func TestAnalysisAgent_PromptIncludesReviewedExtraction(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{Response: "Report."})
	agent := NewAnalysisAgent(mock, nil)

	st := newTestState("Check invoice", "invoice", "analysis")
	st.Merge("invoice", workflow.StepResult{Status: workflow.StepCompleted, Summary: "Verified"}, map[string]any{
		"invoice_id": "INV-2026-0042",
		"amount":     1250.00,
	})

	_, err := agent.Execute(context.Background(), st)
	require.NoError(t, err)

	prompt := llm.LastUserMessage(&mock.Calls()[0])
	assert.Contains(t, prompt, "Reviewed invoice extraction")
	assert.Contains(t, prompt, "INV-2026-0042")
}

func TestAnalysisAgent_CompletionError(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{Err: fmt.Errorf("model overloaded")})
	streamer := &recordingStreamer{}
	agent := NewAnalysisAgent(mock, streamer)

	_, err := agent.Execute(context.Background(), newTestState("task", "analysis"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis completion failed")

	// The end marker still goes out on failure.
	assert.Len(t, streamer.ends, 1)
}

func TestAnalysisAgent_EmptyNarrative(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{Response: "   \n "})
	agent := NewAnalysisAgent(mock, nil)

	_, err := agent.Execute(context.Background(), newTestState("task", "analysis"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestAnalysisAgent_NilStreamer(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{Response: "Report."})
	agent := NewAnalysisAgent(mock, nil)

	outcome, err := agent.Execute(context.Background(), newTestState("task", "analysis"))
	require.NoError(t, err)
	assert.Equal(t, "Report.", outcome.Content)
}

func TestAnalysisAgent_MultilineSummary(t *testing.T) {
	mock := llm.NewMockClient(llm.ScriptEntry{Response: "Headline finding.\nDetail paragraph one.\nDetail two."})
	agent := NewAnalysisAgent(mock, nil)

	outcome, err := agent.Execute(context.Background(), newTestState("task", "analysis"))
	require.NoError(t, err)
	assert.Equal(t, "Headline finding.", outcome.Summary)
	assert.Contains(t, outcome.Content, "Detail paragraph one.")
}
