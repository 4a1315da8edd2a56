// Package approval tracks the human-in-the-loop state machine for each
// workflow plan: which approval checkpoint is pending, which transitions are
// legal, and which goroutine currently holds the right to execute the plan.
package approval

import (
	"errors"
	"fmt"
	"time"
)

// State is a workflow plan's position in the approval lifecycle.
type State string

const (
	StatePlanning               State = "PLANNING"
	StateAwaitingPlanApproval   State = "AWAITING_PLAN_APPROVAL"
	StatePlanApproved           State = "PLAN_APPROVED"
	StatePlanRejected           State = "PLAN_REJECTED"
	StateExecuting              State = "EXECUTING"
	StateAwaitingResultApproval State = "AWAITING_RESULT_APPROVAL"
	StateCompleted              State = "COMPLETED"
	StateRestarted              State = "RESTARTED"
	StateFailed                 State = "FAILED"
	StateTimeout                State = "TIMEOUT"
)

// transitions lists the legal targets from each state. States absent from the
// map are terminal. PLANNING may jump straight to PLAN_APPROVED and EXECUTING
// straight to COMPLETED when human approval is disabled for the plan.
var transitions = map[State][]State{
	StatePlanning:               {StateAwaitingPlanApproval, StatePlanApproved, StateFailed},
	StateAwaitingPlanApproval:   {StatePlanApproved, StatePlanRejected, StateTimeout, StateFailed},
	StatePlanApproved:           {StateExecuting, StateFailed},
	StateExecuting:              {StateAwaitingResultApproval, StateCompleted, StateFailed, StateTimeout},
	StateAwaitingResultApproval: {StateCompleted, StateRestarted, StateTimeout, StateFailed},
}

// CanTransition reports whether moving from one state to another is legal.
func CanTransition(from, to State) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a state has no outgoing transitions.
func IsTerminal(s State) bool {
	return len(transitions[s]) == 0
}

// Checkpoint identifies which kind of operator input a plan is waiting on.
type Checkpoint string

const (
	CheckpointNone       Checkpoint = ""
	CheckpointPlan       Checkpoint = "plan"
	CheckpointResult     Checkpoint = "result"
	CheckpointExtraction Checkpoint = "extraction"
)

// InvalidTransitionError reports an attempted state change that the
// transition table does not allow. The plan's state is left unchanged.
type InvalidTransitionError struct {
	From State
	To   State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid approval transition from %s to %s", e.From, e.To)
}

var (
	// ErrUnknownPlan is returned when the plan was never tracked or has
	// already been removed.
	ErrUnknownPlan = errors.New("plan is not tracked by the approval manager")

	// ErrAlreadyTracked is returned when Track is called twice for a plan.
	ErrAlreadyTracked = errors.New("plan is already tracked")

	// ErrExecutionHeld is returned when a second caller tries to acquire
	// the execution token while another holder is still active.
	ErrExecutionHeld = errors.New("execution is already held for this plan")

	// ErrNotExecutable is returned when the execution token is requested
	// in a state that does not permit running agents.
	ErrNotExecutable = errors.New("plan is not in an executable state")

	// ErrNoPendingCheckpoint is returned when an approval is submitted but
	// the plan is not waiting on a checkpoint of that kind.
	ErrNoPendingCheckpoint = errors.New("no matching checkpoint is pending")
)

// Change is one recorded state transition.
type Change struct {
	From State
	To   State
	At   time.Time
}

// Decision is the outcome of a submitted approval: the state the plan landed
// in plus whatever the operator attached to the verdict.
type Decision struct {
	State    State
	Approved bool
	Feedback string

	// Sequence is the agent sequence the execution should use after a plan
	// approval. It is the operator-modified sequence when one was supplied.
	Sequence []string

	// SequenceModified is true when the operator edited the proposed
	// sequence, which forces a recompile before execution.
	SequenceModified bool

	// Edited carries operator corrections to extracted fields. Only set by
	// extraction approvals.
	Edited map[string]any
}

// Token is the capability to run agents for one plan. At most one token per
// plan is live at a time; the zero Token is never valid.
type Token struct {
	planID string
	id     uint64
}

// PlanID returns the plan the token belongs to.
func (t Token) PlanID() string { return t.planID }

// TransitionHook observes every accepted state change. The reason is empty
// except for failures and timeouts, where it carries the error message that
// should reach the durable plan record.
type TransitionHook func(planID string, from, to State, reason string)
