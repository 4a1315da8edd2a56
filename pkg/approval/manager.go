package approval

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/finovant/macaw/pkg/models"
)

// historyLimit bounds the per-plan transition history ring.
const historyLimit = 32

// record is the in-memory approval state for one plan. Each record carries
// its own mutex so plans never contend with each other.
type record struct {
	mu         sync.Mutex
	current    State
	previous   State
	changedAt  time.Time
	checkpoint Checkpoint

	planFeedback   string
	resultFeedback string
	failReason     string

	approvedSequence   []string
	clarificationAsked bool

	history []Change

	execHeld  bool
	execToken uint64
}

// apply commits a validated transition. Caller holds r.mu.
func (r *record) apply(to State) Change {
	change := Change{From: r.current, To: to, At: time.Now()}
	r.previous = r.current
	r.current = to
	r.changedAt = change.At

	switch to {
	case StateAwaitingPlanApproval:
		r.checkpoint = CheckpointPlan
	case StateAwaitingResultApproval:
		r.checkpoint = CheckpointResult
	default:
		r.checkpoint = CheckpointNone
	}
	if IsTerminal(to) {
		// Invalidates any live execution token so in-flight executors
		// observe the loss and abort instead of writing further steps.
		r.execHeld = false
	}

	r.history = append(r.history, change)
	if len(r.history) > historyLimit {
		r.history = r.history[len(r.history)-historyLimit:]
	}
	return change
}

// Manager tracks the approval lifecycle of every live plan in memory.
// Durable status is the engine's job; the manager only answers "what is this
// plan waiting on, and is this change legal".
type Manager struct {
	mu      sync.RWMutex
	records map[string]*record
	tokens  atomic.Uint64
	hook    TransitionHook
}

// NewManager creates an empty approval manager.
func NewManager() *Manager {
	return &Manager{
		records: make(map[string]*record),
	}
}

// SetTransitionHook installs the observer called after every accepted
// transition. Set once during wiring, before any plan is tracked.
func (m *Manager) SetTransitionHook(hook TransitionHook) {
	m.hook = hook
}

func (m *Manager) notify(planID string, changes []Change, reason string) {
	if m.hook == nil {
		return
	}
	for _, c := range changes {
		m.hook(planID, c.From, c.To, reason)
	}
}

func (m *Manager) record(planID string) (*record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[planID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlan, planID)
	}
	return r, nil
}

// Track registers a plan in its initial state, normally PLANNING.
func (m *Manager) Track(planID string, initial State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[planID]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyTracked, planID)
	}
	m.records[planID] = &record{
		current:   initial,
		changedAt: time.Now(),
	}
	return nil
}

// Transition moves a plan to a new state if the transition table allows it.
// Illegal transitions are rejected with InvalidTransitionError and leave the
// state unchanged.
func (m *Manager) Transition(planID string, to State) error {
	r, err := m.record(planID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if !CanTransition(r.current, to) {
		defer r.mu.Unlock()
		return &InvalidTransitionError{From: r.current, To: to}
	}
	change := r.apply(to)
	r.mu.Unlock()

	m.notify(planID, []Change{change}, "")
	return nil
}

// Current returns a plan's state, or false if the plan is not tracked.
func (m *Manager) Current(planID string) (State, bool) {
	r, err := m.record(planID)
	if err != nil {
		return "", false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, true
}

// PendingCheckpoint returns the checkpoint kind a plan is waiting on, or
// false if the plan is not tracked.
func (m *Manager) PendingCheckpoint(planID string) (Checkpoint, bool) {
	r, err := m.record(planID)
	if err != nil {
		return CheckpointNone, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.checkpoint, true
}

// History returns a copy of a plan's recorded transitions, oldest first.
func (m *Manager) History(planID string) []Change {
	r, err := m.record(planID)
	if err != nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.history)
}

// AcquireExecution claims the right to run agents for a plan. It succeeds
// only in PLAN_APPROVED, or in EXECUTING when resuming a suspended run with
// no live holder. A second concurrent acquire fails with ErrExecutionHeld.
func (m *Manager) AcquireExecution(planID string) (Token, error) {
	r, err := m.record(planID)
	if err != nil {
		return Token{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.current {
	case StatePlanApproved, StateExecuting:
	default:
		return Token{}, fmt.Errorf("%w: plan %s is %s", ErrNotExecutable, planID, r.current)
	}
	if r.execHeld {
		return Token{}, fmt.Errorf("%w: %s", ErrExecutionHeld, planID)
	}

	r.execHeld = true
	r.execToken = m.tokens.Add(1)
	return Token{planID: planID, id: r.execToken}, nil
}

// Release gives up the execution token. Releasing a stale or already-invalid
// token is a no-op.
func (m *Manager) Release(token Token) {
	r, err := m.record(token.planID)
	if err != nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.execHeld && r.execToken == token.id {
		r.execHeld = false
	}
}

// Holds reports whether the token is still the live execution holder for its
// plan. Executors check this between steps; a lost token means the plan was
// failed, timed out, or cancelled underneath them.
func (m *Manager) Holds(token Token) bool {
	r, err := m.record(token.planID)
	if err != nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.execHeld && r.execToken == token.id
}

// SubmitPlanApproval records the operator's verdict on a proposed plan. Legal
// only in AWAITING_PLAN_APPROVAL. Approval moves the plan to PLAN_APPROVED
// and captures the (possibly operator-modified) sequence; rejection moves it
// to the terminal PLAN_REJECTED.
func (m *Manager) SubmitPlanApproval(planID string, approved bool, modifiedSequence []string, feedback string) (Decision, error) {
	r, err := m.record(planID)
	if err != nil {
		return Decision{}, err
	}

	target := StatePlanApproved
	if !approved {
		target = StatePlanRejected
	}

	r.mu.Lock()
	if r.current != StateAwaitingPlanApproval {
		defer r.mu.Unlock()
		return Decision{}, &InvalidTransitionError{From: r.current, To: target}
	}

	r.planFeedback = feedback
	if approved && len(modifiedSequence) > 0 {
		r.approvedSequence = slices.Clone(modifiedSequence)
	}
	change := r.apply(target)

	decision := Decision{
		State:            target,
		Approved:         approved,
		Feedback:         feedback,
		Sequence:         slices.Clone(r.approvedSequence),
		SequenceModified: approved && len(modifiedSequence) > 0,
	}
	r.mu.Unlock()

	m.notify(planID, []Change{change}, "")
	return decision, nil
}

// SubmitResultApproval records the operator's verdict on a finished run.
// Legal only in AWAITING_RESULT_APPROVAL. Approval completes the plan;
// rejection moves it to RESTARTED, after which the caller clones the task
// into a fresh workflow.
func (m *Manager) SubmitResultApproval(planID string, approved bool, feedback string) (Decision, error) {
	r, err := m.record(planID)
	if err != nil {
		return Decision{}, err
	}

	target := StateCompleted
	if !approved {
		target = StateRestarted
	}

	r.mu.Lock()
	if r.current != StateAwaitingResultApproval {
		defer r.mu.Unlock()
		return Decision{}, &InvalidTransitionError{From: r.current, To: target}
	}

	r.resultFeedback = feedback
	r.clarificationAsked = false
	change := r.apply(target)
	r.mu.Unlock()

	m.notify(planID, []Change{change}, "")
	return Decision{State: target, Approved: approved, Feedback: feedback}, nil
}

// MarkExtractionPending flags a mid-run extraction checkpoint. The plan stays
// in EXECUTING; the pending checkpoint tells the executor to suspend until
// SubmitExtractionApproval arrives.
func (m *Manager) MarkExtractionPending(planID string) error {
	r, err := m.record(planID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != StateExecuting {
		return &InvalidTransitionError{From: r.current, To: StateExecuting}
	}
	r.checkpoint = CheckpointExtraction
	r.clarificationAsked = true
	return nil
}

// SubmitExtractionApproval resolves a pending extraction checkpoint. Approval
// keeps the plan in EXECUTING and hands the operator's field corrections back
// for merging before resume. Rejection abandons the run: the plan passes
// through AWAITING_RESULT_APPROVAL into RESTARTED.
func (m *Manager) SubmitExtractionApproval(planID string, approved bool, edited map[string]any, feedback string) (Decision, error) {
	r, err := m.record(planID)
	if err != nil {
		return Decision{}, err
	}

	r.mu.Lock()
	if r.current != StateExecuting || r.checkpoint != CheckpointExtraction {
		defer r.mu.Unlock()
		return Decision{}, fmt.Errorf("%w: plan %s is %s with checkpoint %q", ErrNoPendingCheckpoint, planID, r.current, r.checkpoint)
	}

	if approved {
		r.checkpoint = CheckpointNone
		r.clarificationAsked = false
		r.mu.Unlock()
		return Decision{
			State:    StateExecuting,
			Approved: true,
			Feedback: feedback,
			Edited:   maps.Clone(edited),
		}, nil
	}

	r.resultFeedback = feedback
	r.clarificationAsked = false
	changes := []Change{
		r.apply(StateAwaitingResultApproval),
		r.apply(StateRestarted),
	}
	r.mu.Unlock()

	m.notify(planID, changes, "")
	return Decision{State: StateRestarted, Approved: false, Feedback: feedback}, nil
}

// SetClarificationAsked records whether a free-text clarification question is
// outstanding for the plan.
func (m *Manager) SetClarificationAsked(planID string, asked bool) error {
	r, err := m.record(planID)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clarificationAsked = asked
	return nil
}

// Fail moves a plan to FAILED from any non-terminal state. The reason reaches
// the transition hook so it can land on the durable plan record.
func (m *Manager) Fail(planID, reason string) error {
	r, err := m.record(planID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if !CanTransition(r.current, StateFailed) {
		defer r.mu.Unlock()
		return &InvalidTransitionError{From: r.current, To: StateFailed}
	}
	r.failReason = reason
	change := r.apply(StateFailed)
	r.mu.Unlock()

	m.notify(planID, []Change{change}, reason)
	return nil
}

// Timeout moves a plan to TIMEOUT. Legal only from the states that can stall
// on an operator or a running agent.
func (m *Manager) Timeout(planID string) error {
	r, err := m.record(planID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if !CanTransition(r.current, StateTimeout) {
		defer r.mu.Unlock()
		return &InvalidTransitionError{From: r.current, To: StateTimeout}
	}
	r.failReason = "workflow timeout"
	change := r.apply(StateTimeout)
	r.mu.Unlock()

	m.notify(planID, []Change{change}, "workflow timeout")
	return nil
}

// Stalled returns the plans that have been parked at an approval checkpoint
// (or stuck mid-state) longer than maxAge. The cleanup sweep times these out
// so an operator who never answers does not pin a plan forever.
func (m *Manager) Stalled(maxAge time.Duration) []string {
	cutoff := time.Now().Add(-maxAge)

	m.mu.RLock()
	records := make(map[string]*record, len(m.records))
	maps.Copy(records, m.records)
	m.mu.RUnlock()

	var stalled []string
	for planID, r := range records {
		r.mu.Lock()
		waiting := r.checkpoint != CheckpointNone
		old := r.changedAt.Before(cutoff)
		r.mu.Unlock()
		if waiting && old {
			stalled = append(stalled, planID)
		}
	}
	slices.Sort(stalled)
	return stalled
}

// View returns the plan's approval record in API shape, or false if the plan
// is not tracked.
func (m *Manager) View(planID string) (*models.ApprovalView, bool) {
	r, err := m.record(planID)
	if err != nil {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	history := make([]models.ApprovalChange, len(r.history))
	for i, c := range r.history {
		history[i] = models.ApprovalChange{
			From:      string(c.From),
			To:        string(c.To),
			ChangedAt: c.At,
		}
	}
	return &models.ApprovalView{
		Current:            string(r.current),
		Previous:           string(r.previous),
		ChangedAt:          r.changedAt,
		PendingCheckpoint:  string(r.checkpoint),
		ExecutionHeld:      r.execHeld,
		History:            history,
		ClarificationAsked: r.clarificationAsked,
	}, true
}

// Remove forgets a plan. Called after terminal cleanup.
func (m *Manager) Remove(planID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, planID)
}

// Reset drops every tracked plan. Test helper.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string]*record)
}

// Len returns the number of tracked plans.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
