package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finovant/macaw/pkg/approval"
	"github.com/finovant/macaw/pkg/events"
	"github.com/finovant/macaw/pkg/faults"
	"github.com/finovant/macaw/pkg/graph"
	"github.com/finovant/macaw/pkg/workflow"
)

// execute runs one pass over a plan's graph, from the current cursor until
// completion, suspension, or failure. Exactly one pass per plan runs at a
// time: the execution token is the exclusivity guarantee, and losing it
// (a terminal transition from another goroutine) aborts the pass before the
// next step starts.
func (e *Engine) execute(ctx context.Context, r *run) *RunOutcome {
	planID := r.state.PlanID

	token, err := e.approvals.AcquireExecution(planID)
	if err != nil {
		if errors.Is(err, approval.ErrExecutionHeld) {
			slog.Warn("Execution already held, skipping pass", "plan_id", planID)
			return &RunOutcome{Status: RunSuspended}
		}
		slog.Error("Cannot acquire execution", "plan_id", planID, "error", err)
		return &RunOutcome{Status: RunFailed, Err: err}
	}
	defer e.approvals.Release(token)

	if err := ctx.Err(); err != nil {
		return e.abort(ctx, r, r.cursor(), err)
	}

	if st, _ := e.approvals.Current(planID); st == approval.StatePlanApproved {
		if err := e.approvals.Transition(planID, approval.StateExecuting); err != nil {
			e.failPlan(planID, fmt.Sprintf("failed to enter execution: %v", err))
			return &RunOutcome{Status: RunFailed, Err: err}
		}
	}

	g := r.graphRef()
	total := g.Len()
	for i := r.cursor(); i < total; i++ {
		if err := ctx.Err(); err != nil {
			return e.abort(ctx, r, i, err)
		}
		if g.Nodes[i].InterruptBefore {
			if cp, _ := e.approvals.PendingCheckpoint(planID); cp == approval.CheckpointExtraction {
				// The previous step's extraction has not been reviewed yet.
				// The cursor is already durable; Resume picks up from here.
				return &RunOutcome{Status: RunSuspended}
			}
		}
		if !e.approvals.Holds(token) {
			slog.Warn("Execution token lost, aborting pass", "plan_id", planID, "step", i)
			return &RunOutcome{Status: RunFailed, Err: fmt.Errorf("execution token lost for plan %s", planID)}
		}

		if outcome := e.runStep(ctx, r, token, i); outcome != nil {
			return outcome
		}
	}

	return e.finish(ctx, r)
}

// runStep executes one graph node. A nil return means the pass continues
// with the next node; non-nil ends the pass.
func (e *Engine) runStep(ctx context.Context, r *run, token approval.Token, i int) *RunOutcome {
	planID := r.state.PlanID
	g := r.graphRef()
	name := g.Nodes[i].Agent
	total := g.Len()

	agent, ok := e.registry.Get(name)
	if !ok {
		// The registry was validated at compile time, so this is a wiring
		// regression, not an operational fault.
		reason := fmt.Sprintf("agent %q is not registered", name)
		if err := e.plans.FailStep(ctx, planID, i, reason); err != nil {
			slog.Error("Failed to record step failure", "plan_id", planID, "step", i, "error", err)
		}
		e.failStepAndWorkflow(ctx, r, i, reason)
		return &RunOutcome{Status: RunFailed, Err: errors.New(reason)}
	}

	if err := e.plans.StartStep(ctx, planID, i); err != nil {
		slog.Error("Failed to mark step running", "plan_id", planID, "step", i, "error", err)
	}
	if err := e.sink.PublishAgentStarted(ctx, events.AgentStartedData{
		PlanID:     planID,
		AgentName:  name,
		StepIndex:  i + 1,
		TotalSteps: total,
	}); err != nil {
		slog.Warn("Failed to publish agent_started", "plan_id", planID, "error", err)
	}

	start := time.Now()
	var outcome *workflow.StepOutcome
	err := e.retrier.Retry(ctx, name, func() error {
		out, err := e.invokeOnce(ctx, agent, r)
		if err != nil {
			return err
		}
		outcome = out
		return nil
	})
	if err == nil && outcome != nil && outcome.Status == workflow.StepFailed {
		// The agent reported a domain-level failure in-band.
		err = faults.Authoritative(errors.New(firstNonEmpty(outcome.Summary, "agent reported failure")))
	}
	elapsed := time.Since(start)
	e.metrics.ObserveAgentExecution(name, elapsed, err == nil)
	e.contexts.RecordAgentDuration(planID, name, elapsed)

	if err != nil {
		kind := faults.Classify(err)
		if kind == faults.KindCancellation && ctx.Err() != nil {
			return e.abort(ctx, r, i, err)
		}
		return e.handleStepFailure(ctx, r, i, name, kind, err, elapsed)
	}

	return e.completeStep(ctx, r, i, name, outcome, elapsed)
}

// invokeOnce runs one agent attempt under the step timeout. Agents that do
// not honor cancellation are abandoned after the grace period; an outcome
// arriving after the deadline is discarded.
func (e *Engine) invokeOnce(ctx context.Context, agent workflow.Agent, r *run) (*workflow.StepOutcome, error) {
	stepCtx, cancel := context.WithTimeout(ctx, e.cfg.AgentTimeout)
	defer cancel()

	type stepReturn struct {
		outcome *workflow.StepOutcome
		err     error
	}
	done := make(chan stepReturn, 1)
	go func() {
		r.mu.Lock()
		snapshot := r.state.Clone()
		r.mu.Unlock()
		out, err := agent.Execute(stepCtx, snapshot)
		done <- stepReturn{out, err}
	}()

	select {
	case ret := <-done:
		if ret.err != nil {
			return nil, ret.err
		}
		if ret.outcome == nil {
			return nil, faults.Fatal(fmt.Errorf("agent %s returned no outcome", agent.Name()))
		}
		return ret.outcome, nil
	case <-stepCtx.Done():
	}

	// Deadline or upstream cancellation fired mid-step. Give the agent one
	// grace period to observe it and return before abandoning the goroutine.
	grace := time.NewTimer(e.cfg.AgentGracePeriod)
	defer grace.Stop()
	select {
	case ret := <-done:
		if ret.err != nil && !errors.Is(ret.err, context.DeadlineExceeded) && !errors.Is(ret.err, context.Canceled) {
			return nil, ret.err
		}
	case <-grace.C:
		slog.Warn("Abandoning unresponsive agent",
			"agent", agent.Name(), "grace", e.cfg.AgentGracePeriod)
	}

	if ctx.Err() != nil {
		// The workflow itself was cancelled or timed out, not just the step.
		return nil, ctx.Err()
	}
	return nil, faults.Transient(fmt.Errorf("agent %s exceeded the %s step timeout", agent.Name(), e.cfg.AgentTimeout))
}

// handleStepFailure records a failed step and decides between degrading and
// failing fast: the pass continues only when every remaining agent tolerates
// upstream gaps and the fault is not fatal.
func (e *Engine) handleStepFailure(ctx context.Context, r *run, i int, name string, kind faults.Kind, stepErr error, elapsed time.Duration) *RunOutcome {
	planID := r.state.PlanID
	g := r.graphRef()

	label := kind.String()
	if kind == faults.KindTransient {
		label = "transient_exhausted"
	}
	reason := fmt.Sprintf("%s failed (%s): %v", name, label, stepErr)

	if err := e.plans.FailStep(ctx, planID, i, reason); err != nil {
		slog.Error("Failed to record step failure", "plan_id", planID, "step", i, "error", err)
	}
	if err := e.recordMessage(ctx, planID, name, "error", reason); err != nil {
		slog.Error("Failed to persist failure message", "plan_id", planID, "error", err)
	}
	if err := e.sink.PublishStepProgress(ctx, events.StepProgressData{
		PlanID:     planID,
		AgentName:  name,
		StepIndex:  i + 1,
		TotalSteps: g.Len(),
		Status:     string(workflow.StepFailed),
		Summary:    reason,
	}); err != nil {
		slog.Warn("Failed to publish step_progress", "plan_id", planID, "error", err)
	}

	if kind != faults.KindFatal && e.remainingTolerant(g, i+1) {
		r.mu.Lock()
		r.state.Merge(name, workflow.StepResult{
			Status:   workflow.StepFailed,
			Error:    stepErr.Error(),
			Duration: elapsed,
		}, nil)
		r.state.Advance(i)
		cursor := r.state.CurrentStep
		r.mu.Unlock()
		if err := e.plans.SetCursor(ctx, planID, cursor); err != nil {
			slog.Error("Failed to persist cursor", "plan_id", planID, "error", err)
		}
		slog.Warn("Step failed, continuing degraded",
			"plan_id", planID, "agent", name, "kind", label)
		return nil
	}

	e.failStepAndWorkflow(ctx, r, i+1, reason)
	return &RunOutcome{Status: RunFailed, Err: stepErr}
}

// completeStep merges a successful outcome, persists the durable message and
// step row, and opens an extraction checkpoint when the outcome collected
// reviewable fields.
func (e *Engine) completeStep(ctx context.Context, r *run, i int, name string, outcome *workflow.StepOutcome, elapsed time.Duration) *RunOutcome {
	planID := r.state.PlanID
	g := r.graphRef()

	r.mu.Lock()
	r.state.Merge(name, workflow.StepResult{
		Status:   workflow.StepCompleted,
		Summary:  outcome.Summary,
		Output:   outcome.Output,
		Duration: elapsed,
	}, outcome.Collected)
	r.state.Advance(i)
	cursor := r.state.CurrentStep
	r.mu.Unlock()
	if err := e.plans.SetCursor(ctx, planID, cursor); err != nil {
		slog.Error("Failed to persist cursor", "plan_id", planID, "error", err)
	}

	// Durable-first: the agent message row must exist before subscribers
	// hear about the step. A failed write fails the step.
	kind := outcome.Kind
	if kind == "" {
		kind = "progress"
	}
	content := firstNonEmpty(outcome.Content, outcome.Summary)
	if err := e.recordMessage(ctx, planID, name, kind, content); err != nil {
		reason := fmt.Sprintf("failed to persist %s message: %v", name, err)
		if ferr := e.plans.FailStep(ctx, planID, i, reason); ferr != nil {
			slog.Error("Failed to record step failure", "plan_id", planID, "step", i, "error", ferr)
		}
		e.failStepAndWorkflow(ctx, r, i+1, reason)
		return &RunOutcome{Status: RunFailed, Err: err}
	}

	if err := e.plans.CompleteStep(ctx, planID, i, outcome.Summary, outcome.Output); err != nil {
		slog.Error("Failed to mark step completed", "plan_id", planID, "step", i, "error", err)
	}
	if err := e.sink.PublishStepProgress(ctx, events.StepProgressData{
		PlanID:     planID,
		AgentName:  name,
		StepIndex:  i + 1,
		TotalSteps: g.Len(),
		Status:     string(workflow.StepCompleted),
		Summary:    outcome.Summary,
	}); err != nil {
		slog.Warn("Failed to publish step_progress", "plan_id", planID, "error", err)
	}

	if len(outcome.Collected) > 0 && g.HITL && i < g.Len()-1 {
		if _, err := e.extractions.CreateExtraction(ctx, planID, name, outcome.Collected); err != nil {
			slog.Error("Failed to persist extraction", "plan_id", planID, "agent", name, "error", err)
		} else if err := e.approvals.MarkExtractionPending(planID); err != nil {
			slog.Error("Failed to open extraction checkpoint", "plan_id", planID, "error", err)
		} else {
			if err := e.sink.PublishExtractionApprovalRequest(ctx, events.ExtractionApprovalRequestData{
				PlanID:    planID,
				AgentName: name,
				Fields:    outcome.Collected,
			}); err != nil {
				slog.Warn("Failed to publish extraction_approval_request", "plan_id", planID, "error", err)
			}
			e.contexts.Append(planID, "checkpoint", "extraction pending review from "+name)
		}
	}
	return nil
}

// finish composes and persists the final result, then either parks the
// workflow at the result checkpoint or completes it.
func (e *Engine) finish(ctx context.Context, r *run) *RunOutcome {
	planID := r.state.PlanID

	r.mu.Lock()
	final, partial := composeFinalResult(r.state)
	r.state.FinalResult = final
	r.state.AwaitingInput = r.resultGate
	r.mu.Unlock()

	if err := e.plans.SetFinalResult(ctx, planID, final); err != nil {
		e.failStepAndWorkflow(ctx, r, r.graphRef().Len(), fmt.Sprintf("failed to persist final result: %v", err))
		return &RunOutcome{Status: RunFailed, Err: err}
	}
	if err := e.sink.PublishFinalResult(ctx, events.FinalResultData{PlanID: planID, Result: final}); err != nil {
		slog.Warn("Failed to publish final_result", "plan_id", planID, "error", err)
	}
	if partial {
		e.contexts.Append(planID, "workflow", "finished with partial results")
	}

	if r.resultGate {
		if err := e.approvals.Transition(planID, approval.StateAwaitingResultApproval); err != nil {
			e.failPlan(planID, fmt.Sprintf("failed to reach result checkpoint: %v", err))
			return &RunOutcome{Status: RunFailed, Err: err}
		}
		r.mu.Lock()
		sequence := r.graph.Sequence()
		r.mu.Unlock()
		e.publishApprovalRequest(ctx, planID, "result", sequence, firstLine(final), 0, 0)
		return &RunOutcome{Status: RunAwaitingResultApproval, FinalResult: final}
	}

	if err := e.approvals.Transition(planID, approval.StateCompleted); err != nil {
		e.failPlan(planID, fmt.Sprintf("failed to complete workflow: %v", err))
		return &RunOutcome{Status: RunFailed, Err: err}
	}
	return &RunOutcome{Status: RunCompleted, FinalResult: final}
}

// abort ends a pass whose context died: deadline expiry times the workflow
// out, anything else is an operator cancellation.
func (e *Engine) abort(ctx context.Context, r *run, fromStep int, cause error) *RunOutcome {
	planID := r.state.PlanID

	timedOut := errors.Is(ctx.Err(), context.DeadlineExceeded)
	reason := "cancelled"
	status := RunCancelled
	if timedOut {
		reason = "workflow timeout"
		status = RunTimedOut
	}

	if _, err := e.plans.SkipRemainingSteps(ctx, planID, fromStep); err != nil {
		slog.Error("Failed to skip remaining steps", "plan_id", planID, "error", err)
	}

	if timedOut {
		if err := e.approvals.Timeout(planID); err != nil {
			// Timeout is only legal from a subset of states; fall back to a
			// plain failure carrying the same reason.
			_ = e.approvals.Fail(planID, reason)
		}
	} else {
		_ = e.approvals.Fail(planID, reason)
	}

	publishCtx, cancel := context.WithTimeout(context.Background(), hookWriteTimeout)
	defer cancel()
	if err := e.sink.PublishError(publishCtx, events.ErrorData{PlanID: planID, Message: reason}); err != nil {
		slog.Warn("Failed to publish error event", "plan_id", planID, "error", err)
	}
	slog.Info("Workflow aborted", "plan_id", planID, "reason", reason, "step", fromStep)
	return &RunOutcome{Status: status, Err: cause}
}

// failStepAndWorkflow skips everything from fromStep on and fails the plan.
func (e *Engine) failStepAndWorkflow(ctx context.Context, r *run, fromStep int, reason string) {
	planID := r.state.PlanID
	if _, err := e.plans.SkipRemainingSteps(ctx, planID, fromStep); err != nil {
		slog.Error("Failed to skip remaining steps", "plan_id", planID, "error", err)
	}
	e.failPlan(planID, reason)
}

// remainingTolerant reports whether every node from index `from` on belongs
// to an agent that tolerates upstream gaps.
func (e *Engine) remainingTolerant(g *graph.Graph, from int) bool {
	for i := from; i < g.Len(); i++ {
		agent, ok := e.registry.Get(g.Nodes[i].Agent)
		if !ok || !agent.Describe().TolerateUpstreamGaps {
			return false
		}
	}
	return true
}

// composeFinalResult builds the workflow's final text. The analysis
// narrative wins when present; otherwise the step summaries are aggregated.
// partial is true when any step failed or was skipped.
func composeFinalResult(st *workflow.State) (string, bool) {
	partial := false
	for _, res := range st.Results {
		if res.Status != workflow.StepCompleted {
			partial = true
			break
		}
	}

	if res, ok := st.Results["analysis"]; ok && res.Status == workflow.StepCompleted {
		if narrative, ok := res.Output["narrative"].(string); ok && narrative != "" {
			if partial {
				return "Partial results — some steps failed.\n\n" + narrative, true
			}
			return narrative, false
		}
	}

	var b strings.Builder
	if partial {
		b.WriteString("Partial results — some steps failed.\n")
	}
	for _, name := range st.AgentSequence {
		res, ok := st.Results[name]
		if !ok {
			continue
		}
		switch res.Status {
		case workflow.StepCompleted:
			fmt.Fprintf(&b, "%s: %s\n", name, res.Summary)
		case workflow.StepSkipped:
			fmt.Fprintf(&b, "%s: skipped\n", name)
		default:
			fmt.Fprintf(&b, "%s: failed (%s)\n", name, res.Error)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		text = "No agent produced results."
	}
	return text, partial
}

func (r *run) cursor() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.CurrentStep
}

// graphRef returns the run's current graph. The graph pointer only changes
// while the plan is suspended at its plan checkpoint, never mid-pass.
func (r *run) graphRef() *graph.Graph {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.graph
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
