// Package engine orchestrates workflow execution: it plans a submitted task,
// compiles the plan into a graph, runs the graph's agents on a bounded
// scheduler, and drives the approval state machine through its checkpoints.
//
// The engine owns the dual persistence contract. The approval manager holds
// the live in-memory state; every accepted transition is mirrored to the
// durable plan row and broadcast as a progress_update envelope through the
// transition hook installed here.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/finovant/macaw/ent"
	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/pkg/approval"
	"github.com/finovant/macaw/pkg/config"
	"github.com/finovant/macaw/pkg/events"
	"github.com/finovant/macaw/pkg/faults"
	"github.com/finovant/macaw/pkg/graph"
	"github.com/finovant/macaw/pkg/models"
	"github.com/finovant/macaw/pkg/planner"
	"github.com/finovant/macaw/pkg/services"
	"github.com/finovant/macaw/pkg/workflow"
)

// aiDrivenThreshold is the planner complexity at which a non-HITL workflow
// gets the ai_driven graph type, which forces result sign-off.
const aiDrivenThreshold = 0.7

// defaultCleanupDelay is how long terminal plans keep their in-memory state
// (approval record, run, event backlog) so late subscribers still see the
// ending.
const defaultCleanupDelay = time.Minute

// hookWriteTimeout bounds the durable mirror write done in the transition
// hook.
const hookWriteTimeout = 10 * time.Second

// BacklogDropper releases a channel's event backlog after terminal cleanup.
// Implemented by events.ConnectionManager.
type BacklogDropper interface {
	DropBacklog(channel string)
}

// run is the live in-memory execution state of one plan.
type run struct {
	mu         sync.Mutex
	state      *workflow.State
	graph      *graph.Graph
	resultGate bool
	deadline   time.Time
}

// Deps carries the collaborators the engine is wired with. Backlogs is
// optional; everything else must be set.
type Deps struct {
	Registry    *workflow.Registry
	Planner     *planner.Planner
	Compiler    *graph.Compiler
	Approvals   *approval.Manager
	Plans       PlanStore
	Messages    MessageStore
	Extractions ExtractionStore
	Events      EventSink
	Contexts    ContextLog
	Metrics     Metrics
	Faults      *faults.Handler
	Backlogs    BacklogDropper
}

// Engine is the workflow orchestrator.
type Engine struct {
	cfg         *config.WorkflowConfig
	registry    *workflow.Registry
	planner     *planner.Planner
	compiler    *graph.Compiler
	approvals   *approval.Manager
	scheduler   *Scheduler
	plans       PlanStore
	messages    MessageStore
	extractions ExtractionStore
	sink        EventSink
	contexts    ContextLog
	metrics     Metrics
	retrier     *faults.Handler
	backlogs    BacklogDropper

	cleanupDelay time.Duration

	mu   sync.Mutex
	runs map[string]*run
}

// New creates the engine and installs its transition hook on the approval
// manager. Call before any plan is tracked.
func New(cfg *config.WorkflowConfig, d Deps) *Engine {
	e := &Engine{
		cfg:          cfg,
		registry:     d.Registry,
		planner:      d.Planner,
		compiler:     d.Compiler,
		approvals:    d.Approvals,
		scheduler:    NewScheduler(cfg.PoolSize),
		plans:        d.Plans,
		messages:     d.Messages,
		extractions:  d.Extractions,
		sink:         d.Events,
		contexts:     d.Contexts,
		metrics:      d.Metrics,
		retrier:      d.Faults,
		backlogs:     d.Backlogs,
		cleanupDelay: defaultCleanupDelay,
		runs:         make(map[string]*run),
	}
	d.Approvals.SetTransitionHook(e.onTransition)
	return e
}

// Stop rejects new work and waits for in-flight workflow passes to finish.
func (e *Engine) Stop() {
	e.scheduler.Stop()
}

// ActiveCount returns the number of queued or executing workflows.
func (e *Engine) ActiveCount() int {
	return e.scheduler.ActiveCount()
}

// Submit creates the plan row, starts tracking its approval state and hands
// it to the scheduler for planning. Returns the created plan immediately;
// planning and execution happen asynchronously.
func (e *Engine) Submit(ctx context.Context, req models.CreatePlanRequest) (*ent.Plan, error) {
	p, err := e.plans.CreatePlan(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := e.approvals.Track(p.ID, approval.StatePlanning); err != nil {
		return nil, fmt.Errorf("failed to track plan %s: %w", p.ID, err)
	}
	e.metrics.RecordPlanStarted()
	e.contexts.Append(p.ID, "workflow", "plan created: "+req.TaskDescription)

	if err := e.sink.PublishPlanCreated(ctx, events.PlanCreatedData{
		PlanID:          p.ID,
		SessionID:       p.SessionID,
		TaskDescription: p.TaskDescription,
		Status:          string(p.Status),
	}); err != nil {
		slog.Warn("Failed to publish plan_created", "plan_id", p.ID, "error", err)
	}

	deadline := time.Now().Add(e.cfg.WorkflowTimeout)
	err = e.scheduler.Launch(p.ID, deadline, func(ctx context.Context) {
		e.runPlanning(ctx, p, deadline)
	})
	if err != nil {
		_ = e.approvals.Fail(p.ID, "failed to schedule workflow")
		return nil, err
	}
	return p, nil
}

// runPlanning builds and compiles the plan for one submitted task, then
// either parks it at the plan checkpoint or executes it in place.
func (e *Engine) runPlanning(ctx context.Context, p *ent.Plan, deadline time.Time) {
	planID := p.ID

	result, err := e.planner.BuildPlan(ctx, planID, p.TaskDescription)
	if err != nil {
		e.failPlan(planID, fmt.Sprintf("planning failed: %v", err))
		return
	}

	typ := graphTypeFor(result.Complexity, p.RequireApproval)
	compileStart := time.Now()
	g, err := e.compiler.Compile(ctx, result.Sequence, typ, p.RequireApproval)
	e.metrics.ObserveCompile(time.Since(compileStart))
	if err != nil {
		e.failPlan(planID, fmt.Sprintf("graph compilation failed: %v", err))
		return
	}

	if err := e.plans.SetPlanned(ctx, planID, models.PlannedUpdate{
		Sequence:   g.Sequence(),
		GraphType:  string(g.Type),
		GraphID:    g.ID,
		Summary:    result.Summary,
		Complexity: result.Complexity,
		Source:     string(result.Source),
	}); err != nil {
		e.failPlan(planID, fmt.Sprintf("failed to persist plan: %v", err))
		return
	}
	if _, err := e.plans.SeedSteps(ctx, planID, seedsFor(g)); err != nil {
		e.failPlan(planID, fmt.Sprintf("failed to seed steps: %v", err))
		return
	}

	r := &run{
		state:      workflow.NewState(planID, p.SessionID, p.TaskDescription, g.Sequence(), p.RequireApproval),
		graph:      g,
		resultGate: p.RequireApproval || g.Type == graph.TypeAIDriven,
		deadline:   deadline,
	}
	e.setRun(planID, r)
	e.contexts.Append(planID, "planning",
		fmt.Sprintf("sequence %s (source %s, complexity %.2f)",
			strings.Join(g.Sequence(), " -> "), result.Source, result.Complexity))

	if err := e.recordMessage(ctx, planID, planner.PlannerAgent, "plan", planProposalText(result, g)); err != nil {
		e.failPlan(planID, fmt.Sprintf("failed to persist plan message: %v", err))
		return
	}

	if p.RequireApproval {
		if err := e.approvals.Transition(planID, approval.StateAwaitingPlanApproval); err != nil {
			e.failPlan(planID, fmt.Sprintf("failed to reach plan checkpoint: %v", err))
			return
		}
		e.publishApprovalRequest(ctx, planID, "plan", g.Sequence(), result.Summary, result.Complexity,
			e.planner.EstimateDuration(g.Sequence()))
		return
	}

	// HITL disabled: the state machine shortcut stands in for the human.
	if err := e.approvals.Transition(planID, approval.StatePlanApproved); err != nil {
		e.failPlan(planID, fmt.Sprintf("failed to start execution: %v", err))
		return
	}
	e.execute(ctx, r)
}

// SubmitPlanApproval applies an operator's verdict on a plan checkpoint.
// A modified sequence forces a recompile and reseed before execution resumes.
func (e *Engine) SubmitPlanApproval(ctx context.Context, planID string, approved bool, modifiedSequence []string, feedback string) error {
	var sanitized []string
	if approved && len(modifiedSequence) > 0 {
		s, err := e.planner.SanitizeSequence(modifiedSequence)
		if err != nil {
			return services.NewValidationError("modified_sequence", err.Error())
		}
		sanitized = s
	}

	decision, err := e.approvals.SubmitPlanApproval(planID, approved, sanitized, feedback)
	if err != nil {
		return err
	}
	if feedback != "" {
		if err := e.plans.SetFeedback(ctx, planID, feedback); err != nil {
			slog.Warn("Failed to persist approval feedback", "plan_id", planID, "error", err)
		}
	}

	if !approved {
		e.contexts.Append(planID, "approval", "plan rejected")
		if err := e.sink.PublishPlanRejected(ctx, events.PlanRejectedData{PlanID: planID, Feedback: feedback}); err != nil {
			slog.Warn("Failed to publish plan_rejected", "plan_id", planID, "error", err)
		}
		return nil
	}

	r := e.runFor(planID)
	if r == nil {
		return fmt.Errorf("%w: %s", ErrUnknownRun, planID)
	}

	if decision.SequenceModified {
		// Plan checkpoints only exist on HITL workflows, so the recompile
		// keeps the hitl_enabled graph type.
		g, err := e.compiler.Compile(ctx, decision.Sequence, graph.TypeHITLEnabled, true)
		if err != nil {
			return services.NewValidationError("modified_sequence", err.Error())
		}
		r.mu.Lock()
		r.graph = g
		r.state.AgentSequence = g.Sequence()
		r.mu.Unlock()

		if err := e.plans.SetPlanned(ctx, planID, models.PlannedUpdate{
			Sequence:  g.Sequence(),
			GraphType: string(g.Type),
			GraphID:   g.ID,
			Source:    string(planner.SourceUser),
		}); err != nil {
			slog.Error("Failed to persist modified sequence", "plan_id", planID, "error", err)
		}
		if _, err := e.plans.SeedSteps(ctx, planID, seedsFor(g)); err != nil {
			slog.Error("Failed to reseed steps for modified sequence", "plan_id", planID, "error", err)
		}
		e.contexts.Append(planID, "approval", "plan approved with modified sequence: "+strings.Join(g.Sequence(), " -> "))
	} else {
		e.contexts.Append(planID, "approval", "plan approved")
	}

	r.mu.Lock()
	sequence := r.graph.Sequence()
	r.mu.Unlock()
	if err := e.sink.PublishPlanApproved(ctx, events.PlanApprovedData{
		PlanID:   planID,
		Sequence: sequence,
		Modified: decision.SequenceModified,
	}); err != nil {
		slog.Warn("Failed to publish plan_approved", "plan_id", planID, "error", err)
	}
	return e.Resume(planID)
}

// SubmitResultApproval applies an operator's verdict on a result checkpoint.
// Rejection restarts the workflow: the returned plan is the fresh clone, nil
// on approval.
func (e *Engine) SubmitResultApproval(ctx context.Context, planID string, approved bool, feedback string) (*ent.Plan, error) {
	if _, err := e.approvals.SubmitResultApproval(planID, approved, feedback); err != nil {
		return nil, err
	}
	if feedback != "" {
		if err := e.plans.SetFeedback(ctx, planID, feedback); err != nil {
			slog.Warn("Failed to persist approval feedback", "plan_id", planID, "error", err)
		}
	}
	if approved {
		e.contexts.Append(planID, "approval", "result approved")
		return nil, nil
	}
	e.contexts.Append(planID, "approval", "result rejected, restarting")
	return e.restart(ctx, planID, feedback)
}

// SubmitExtractionApproval applies an operator's verdict on an extraction
// checkpoint. Approval (with optional field corrections) resumes execution;
// rejection restarts the workflow and returns the clone.
func (e *Engine) SubmitExtractionApproval(ctx context.Context, planID string, approved bool, edited map[string]any, feedback string) (*ent.Plan, error) {
	if cp, ok := e.approvals.PendingCheckpoint(planID); !ok || cp != approval.CheckpointExtraction {
		return nil, fmt.Errorf("%w: plan %s has no pending extraction", approval.ErrNoPendingCheckpoint, planID)
	}

	ext, err := e.extractions.Review(ctx, planID, approved, edited, feedback)
	if err != nil {
		return nil, err
	}
	decision, err := e.approvals.SubmitExtractionApproval(planID, approved, edited, feedback)
	if err != nil {
		return nil, err
	}

	if !approved {
		e.contexts.Append(planID, "approval", "extraction rejected, restarting")
		return e.restart(ctx, planID, feedback)
	}

	if r := e.runFor(planID); r != nil && len(decision.Edited) > 0 {
		r.mu.Lock()
		r.state.ApplyCollectedEdits(ext.AgentName, decision.Edited)
		r.mu.Unlock()
	}
	e.contexts.Append(planID, "approval", "extraction approved")
	return nil, e.Resume(planID)
}

// ClarificationResult is the interpreted effect of a free-text answer.
type ClarificationResult struct {
	Verdict    approval.Verdict `json:"verdict"`
	Checkpoint string           `json:"checkpoint"`
	Restarted  *ent.Plan        `json:"restarted,omitempty"`
}

// Clarify interprets a free-text operator answer against whatever checkpoint
// the plan is parked at and routes the resulting verdict to it.
func (e *Engine) Clarify(ctx context.Context, planID, answer string) (*ClarificationResult, error) {
	cp, ok := e.approvals.PendingCheckpoint(planID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", approval.ErrUnknownPlan, planID)
	}
	if cp == approval.CheckpointNone {
		return nil, fmt.Errorf("%w: plan %s is not waiting on input", approval.ErrNoPendingCheckpoint, planID)
	}

	verdict := approval.InterpretClarification(answer)
	_ = e.approvals.SetClarificationAsked(planID, true)
	approved := verdict == approval.VerdictApprove
	res := &ClarificationResult{Verdict: verdict, Checkpoint: string(cp)}

	switch cp {
	case approval.CheckpointPlan:
		return res, e.SubmitPlanApproval(ctx, planID, approved, nil, answer)
	case approval.CheckpointResult:
		p, err := e.SubmitResultApproval(ctx, planID, approved, answer)
		res.Restarted = p
		return res, err
	default: // extraction
		p, err := e.SubmitExtractionApproval(ctx, planID, approved, nil, answer)
		res.Restarted = p
		return res, err
	}
}

// Resume relaunches a suspended plan from its in-memory cursor.
func (e *Engine) Resume(planID string) error {
	r := e.runFor(planID)
	if r == nil {
		return fmt.Errorf("%w: %s", ErrUnknownRun, planID)
	}
	return e.scheduler.Launch(planID, r.deadline, func(ctx context.Context) {
		e.execute(ctx, r)
	})
}

// Cancel stops a workflow. Live runs are cancelled through their context;
// plans parked at a checkpoint are failed directly. Terminal plans are not
// cancellable.
func (e *Engine) Cancel(planID string) error {
	if e.scheduler.Cancel(planID) {
		e.contexts.Append(planID, "workflow", "cancellation requested")
		return nil
	}
	st, ok := e.approvals.Current(planID)
	if !ok || approval.IsTerminal(st) {
		return fmt.Errorf("%w: %s", services.ErrNotCancellable, planID)
	}
	if err := e.approvals.Fail(planID, "cancelled"); err != nil {
		return fmt.Errorf("%w: %s", services.ErrNotCancellable, planID)
	}
	e.contexts.Append(planID, "workflow", "cancelled at checkpoint")
	return nil
}

// Snapshot returns the live workflow state of a plan, or false when the plan
// has no in-memory run (never planned here, or already cleaned up).
func (e *Engine) Snapshot(planID string) (*models.WorkflowSnapshot, bool) {
	r := e.runFor(planID)
	if r == nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := r.state.Snapshot()
	return &snap, true
}

// SweepStalled times out plans that have sat at an approval checkpoint
// longer than the workflow timeout. Returns how many were timed out.
func (e *Engine) SweepStalled() int {
	n := 0
	for _, planID := range e.approvals.Stalled(e.cfg.WorkflowTimeout) {
		if err := e.approvals.Timeout(planID); err != nil {
			if err := e.approvals.Fail(planID, "workflow timeout"); err != nil {
				continue
			}
		}
		slog.Warn("Timed out stalled workflow", "plan_id", planID)
		n++
	}
	return n
}

// restart clones a rejected plan into a fresh submission linked by
// restarted_from.
func (e *Engine) restart(ctx context.Context, planID, feedback string) (*ent.Plan, error) {
	old, err := e.plans.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	req := models.CreatePlanRequest{
		SessionID:       old.SessionID,
		TaskDescription: old.TaskDescription,
		RequireApproval: old.RequireApproval,
		RestartedFrom:   old.ID,
	}
	if feedback != "" {
		req.PlanMetadata = map[string]any{"restart_feedback": feedback}
	}
	fresh, err := e.Submit(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to restart plan %s: %w", planID, err)
	}
	e.contexts.Append(planID, "workflow", "restarted as "+fresh.ID)
	return fresh, nil
}

// onTransition is the approval manager's hook: it mirrors every accepted
// state change to the durable plan row, broadcasts it, and runs terminal
// bookkeeping. The manager calls it without holding the record lock.
func (e *Engine) onTransition(planID string, from, to approval.State, reason string) {
	e.contexts.RecordTransition(planID, string(from), string(to))

	ctx, cancel := context.WithTimeout(context.Background(), hookWriteTimeout)
	defer cancel()

	status, errorMessage := durableStatus(to, reason)
	if err := e.plans.SetStatus(ctx, planID, status, errorMessage); err != nil {
		slog.Error("Failed to mirror approval state to durable status",
			"plan_id", planID, "state", to, "error", err)
	}
	if err := e.sink.PublishProgressUpdate(ctx, events.ProgressUpdateData{
		PlanID: planID,
		State:  string(to),
		Status: string(status),
		Detail: reason,
	}); err != nil {
		slog.Warn("Failed to publish progress_update", "plan_id", planID, "error", err)
	}

	if approval.IsTerminal(to) {
		e.finishTerminal(planID, to)
	}
}

// durableStatus maps an approval state to the durable plan status it mirrors
// to, plus the error_message for failure states.
func durableStatus(to approval.State, reason string) (plan.Status, string) {
	switch to {
	case approval.StatePlanning:
		return plan.StatusPending, ""
	case approval.StateAwaitingPlanApproval, approval.StateAwaitingResultApproval:
		return plan.StatusPendingApproval, ""
	case approval.StatePlanApproved, approval.StateExecuting:
		return plan.StatusInProgress, ""
	case approval.StateCompleted:
		return plan.StatusCompleted, ""
	case approval.StatePlanRejected:
		return plan.StatusRejected, ""
	case approval.StateRestarted:
		return plan.StatusRestarted, ""
	case approval.StateTimeout:
		return plan.StatusFailed, "workflow timeout"
	default: // FAILED
		return plan.StatusFailed, reason
	}
}

// finishTerminal runs the bookkeeping for a plan that just reached a
// terminal state, then schedules the delayed in-memory cleanup.
func (e *Engine) finishTerminal(planID string, to approval.State) {
	switch to {
	case approval.StateCompleted:
		e.metrics.RecordPlanCompleted()
	case approval.StateFailed, approval.StateTimeout:
		e.metrics.RecordPlanFailed()
	}
	if r := e.runFor(planID); r != nil {
		r.mu.Lock()
		started := r.state.StartedAt
		r.mu.Unlock()
		e.metrics.ObserveWorkflow(time.Since(started))
	}
	e.contexts.MarkTerminal(planID)
	e.messages.Forget(planID)

	time.AfterFunc(e.cleanupDelay, func() {
		e.approvals.Remove(planID)
		e.dropRun(planID)
		if e.backlogs != nil {
			e.backlogs.DropBacklog(events.PlanChannel(planID))
		}
	})
}

// failPlan moves a plan to FAILED and broadcasts the reason. Safe to call
// from any non-terminal state; an already-terminal plan logs and moves on.
func (e *Engine) failPlan(planID, reason string) {
	if err := e.approvals.Fail(planID, reason); err != nil {
		slog.Error("Failed to fail plan", "plan_id", planID, "reason", reason, "error", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), hookWriteTimeout)
	defer cancel()
	if err := e.sink.PublishError(ctx, events.ErrorData{PlanID: planID, Message: reason}); err != nil {
		slog.Warn("Failed to publish error event", "plan_id", planID, "error", err)
	}
}

// recordMessage writes the durable agent message and, only after the row
// exists, broadcasts the agent_message envelope carrying its sequence
// number.
func (e *Engine) recordMessage(ctx context.Context, planID, agentName, kind, content string) error {
	msg, err := e.messages.Append(ctx, models.CreateMessageRequest{
		PlanID:    planID,
		AgentName: agentName,
		Kind:      kind,
		Content:   content,
	})
	if err != nil {
		return err
	}
	e.metrics.RecordMessagePersisted()
	if err := e.sink.PublishAgentMessage(ctx, events.AgentMessageData{
		PlanID:    planID,
		AgentName: agentName,
		Kind:      kind,
		Content:   content,
		Sequence:  msg.SequenceNumber,
	}); err != nil {
		slog.Warn("Failed to publish agent_message", "plan_id", planID, "error", err)
	}
	return nil
}

func (e *Engine) publishApprovalRequest(ctx context.Context, planID, kind string, sequence []string, summary string, complexity float64, estimated time.Duration) {
	data := events.PlanApprovalRequestData{
		PlanID:     planID,
		Kind:       kind,
		Sequence:   sequence,
		Summary:    summary,
		Complexity: complexity,
	}
	if estimated > 0 {
		data.EstimatedDuration = estimated.Round(time.Second).String()
	}
	if err := e.sink.PublishPlanApprovalRequest(ctx, data); err != nil {
		slog.Warn("Failed to publish approval request", "plan_id", planID, "kind", kind, "error", err)
	}
}

// graphTypeFor picks the graph type for a planned workflow: hitl_enabled
// when the request carries the approval requirement, ai_driven for complex
// autonomous plans, default otherwise.
func graphTypeFor(complexity float64, hitl bool) graph.GraphType {
	if hitl {
		return graph.TypeHITLEnabled
	}
	if complexity >= aiDrivenThreshold {
		return graph.TypeAIDriven
	}
	return graph.TypeDefault
}

// seedsFor maps compiled graph nodes to durable step seeds.
func seedsFor(g *graph.Graph) []models.StepSeed {
	seeds := make([]models.StepSeed, len(g.Nodes))
	for i, n := range g.Nodes {
		seeds[i] = models.StepSeed{Index: i, AgentName: n.Agent, InterruptBefore: n.InterruptBefore}
	}
	return seeds
}

// planProposalText renders the durable plan message for the proposed
// sequence.
func planProposalText(result *planner.PlanResult, g *graph.Graph) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Proposed plan: %s.", strings.Join(g.Sequence(), " -> "))
	if result.Summary != "" {
		b.WriteString("\n")
		b.WriteString(result.Summary)
	}
	for _, name := range g.Sequence() {
		if why, ok := result.Reasoning[name]; ok && why != "" {
			fmt.Fprintf(&b, "\n- %s: %s", name, why)
		}
	}
	return b.String()
}

func (e *Engine) setRun(planID string, r *run) {
	e.mu.Lock()
	e.runs[planID] = r
	e.mu.Unlock()
}

func (e *Engine) runFor(planID string) *run {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runs[planID]
}

func (e *Engine) dropRun(planID string) {
	e.mu.Lock()
	delete(e.runs, planID)
	e.mu.Unlock()
}
