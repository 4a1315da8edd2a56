package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/finovant/macaw/pkg/events"
	"github.com/finovant/macaw/pkg/llm"
	"github.com/finovant/macaw/pkg/workflow"
)

// AnalysisAgent aggregates the upstream step results into a final narrative
// via the LLM client, streaming tokens to live subscribers as they arrive.
// It tolerates upstream gaps: failed steps are reported to the model as
// missing data rather than aborting the analysis.
type AnalysisAgent struct {
	llm      llm.Client
	streamer Streamer
}

// NewAnalysisAgent creates the analysis agent. Panics if llmClient is nil;
// streamer may be nil (streaming disabled, e.g. in unit tests).
func NewAnalysisAgent(llmClient llm.Client, streamer Streamer) *AnalysisAgent {
	if llmClient == nil {
		panic("NewAnalysisAgent: llm client must not be nil")
	}
	return &AnalysisAgent{llm: llmClient, streamer: streamer}
}

func (a *AnalysisAgent) Name() string { return "analysis" }

func (a *AnalysisAgent) Describe() workflow.Metadata {
	return workflow.Metadata{
		Name:        "analysis",
		Type:        "llm",
		Description: "Aggregates upstream results into the final narrative",
		Capabilities: []string{
			"result_aggregation",
			"narrative_generation",
		},
		TolerateUpstreamGaps: true,
	}
}

// Execute streams the aggregation completion and returns the full narrative.
func (a *AnalysisAgent) Execute(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
	req := &llm.Request{
		PlanID: st.PlanID,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: analysisSystemPrompt},
			{Role: llm.RoleUser, Content: buildAnalysisPrompt(st)},
		},
	}

	streamID := uuid.New().String()
	a.publishStreamStart(ctx, st.PlanID, streamID)
	defer a.publishStreamEnd(st.PlanID, streamID)

	chunks, errs := a.llm.CompleteStream(ctx, req)

	var narrative strings.Builder
	for chunk := range chunks {
		if chunk.Error != "" {
			return nil, fmt.Errorf("analysis completion reported an error: %s", chunk.Error)
		}
		if chunk.Content == "" {
			continue
		}
		narrative.WriteString(chunk.Content)
		a.publishStreamDelta(ctx, st.PlanID, streamID, chunk.Content)
	}
	if err := <-errs; err != nil {
		return nil, fmt.Errorf("analysis completion failed: %w", err)
	}

	text := strings.TrimSpace(narrative.String())
	if text == "" {
		return nil, fmt.Errorf("analysis completion returned no content")
	}

	return &workflow.StepOutcome{
		Status:  workflow.StepCompleted,
		Kind:    "result",
		Summary: firstLine(text),
		Content: text,
		Output: map[string]any{
			"narrative": text,
		},
	}, nil
}

const analysisSystemPrompt = "You are the analysis step of a finance back-office workflow. " +
	"Write a concise final report for the operator: what was found, what needs action, " +
	"and what data was unavailable. Plain text, no markdown headers."

// buildAnalysisPrompt renders the task and every upstream step result, in
// sequence order, including failures — the model is told what is missing
// instead of the step aborting.
func buildAnalysisPrompt(st *workflow.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\n\nUpstream step results:\n", st.TaskDescription)

	reported := 0
	for _, name := range st.AgentSequence {
		res, ok := st.Results[name]
		if !ok {
			continue
		}
		reported++
		switch res.Status {
		case workflow.StepCompleted:
			fmt.Fprintf(&b, "\n[%s] completed: %s\n", name, res.Summary)
		case workflow.StepSkipped:
			fmt.Fprintf(&b, "\n[%s] skipped — no data available from this step\n", name)
		default:
			fmt.Fprintf(&b, "\n[%s] failed (%s) — treat its data as unavailable\n", name, res.Error)
		}
	}
	if reported == 0 {
		b.WriteString("\n(no upstream steps produced results)\n")
	}

	if fields, ok := st.Collected["invoice"]; ok {
		fmt.Fprintf(&b, "\nReviewed invoice extraction: %v\n", fields)
	}

	b.WriteString("\nWrite the final report.")
	return b.String()
}

// Stream publishes are best-effort: a lost delta only degrades the live
// view, the durable agent_message still carries the full narrative.

func (a *AnalysisAgent) publishStreamStart(ctx context.Context, planID, streamID string) {
	if a.streamer == nil {
		return
	}
	err := a.streamer.PublishStreamStart(ctx, events.StreamData{
		PlanID:    planID,
		AgentName: a.Name(),
		StreamID:  streamID,
	})
	if err != nil {
		slog.Warn("Failed to publish stream start", "plan_id", planID, "error", err)
	}
}

func (a *AnalysisAgent) publishStreamDelta(ctx context.Context, planID, streamID, delta string) {
	if a.streamer == nil {
		return
	}
	err := a.streamer.PublishStreamDelta(ctx, events.StreamData{
		PlanID:    planID,
		AgentName: a.Name(),
		StreamID:  streamID,
		Delta:     delta,
	})
	if err != nil {
		slog.Warn("Failed to publish stream delta", "plan_id", planID, "error", err)
	}
}

func (a *AnalysisAgent) publishStreamEnd(planID, streamID string) {
	if a.streamer == nil {
		return
	}
	// Background context: the end marker still goes out when the step
	// context is already cancelled or timed out.
	err := a.streamer.PublishStreamEnd(context.Background(), events.StreamData{
		PlanID:    planID,
		AgentName: a.Name(),
		StreamID:  streamID,
	})
	if err != nil {
		slog.Warn("Failed to publish stream end", "plan_id", planID, "error", err)
	}
}
