package approval

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackedManager(t *testing.T, planID string, initial State) *Manager {
	t.Helper()
	m := NewManager()
	require.NoError(t, m.Track(planID, initial))
	return m
}

// advance walks a plan through legal transitions without checking errors at
// the call site.
func advance(t *testing.T, m *Manager, planID string, states ...State) {
	t.Helper()
	for _, s := range states {
		require.NoError(t, m.Transition(planID, s))
	}
}

func TestTrackAndCurrent(t *testing.T) {
	m := trackedManager(t, "plan-1", StatePlanning)

	state, ok := m.Current("plan-1")
	assert.True(t, ok)
	assert.Equal(t, StatePlanning, state)

	_, ok = m.Current("plan-unknown")
	assert.False(t, ok)
}

func TestTrackTwiceFails(t *testing.T) {
	m := trackedManager(t, "plan-1", StatePlanning)

	err := m.Track("plan-1", StatePlanning)
	assert.ErrorIs(t, err, ErrAlreadyTracked)
}

func TestFullApprovalPath(t *testing.T) {
	m := trackedManager(t, "plan-1", StatePlanning)

	advance(t, m, "plan-1",
		StateAwaitingPlanApproval,
		StatePlanApproved,
		StateExecuting,
		StateAwaitingResultApproval,
		StateCompleted,
	)

	state, _ := m.Current("plan-1")
	assert.Equal(t, StateCompleted, state)

	history := m.History("plan-1")
	require.Len(t, history, 5)
	assert.Equal(t, StatePlanning, history[0].From)
	assert.Equal(t, StateAwaitingPlanApproval, history[0].To)
	assert.Equal(t, StateAwaitingResultApproval, history[4].From)
	assert.Equal(t, StateCompleted, history[4].To)
}

func TestApprovalDisabledShortcuts(t *testing.T) {
	m := trackedManager(t, "plan-1", StatePlanning)

	// With operator approval disabled the planner result is accepted
	// directly and execution completes without a result review.
	advance(t, m, "plan-1", StatePlanApproved, StateExecuting, StateCompleted)

	state, _ := m.Current("plan-1")
	assert.Equal(t, StateCompleted, state)
}

func TestIllegalTransitionsRejected(t *testing.T) {
	tests := []struct {
		name string
		from State
		to   State
	}{
		{"planning to executing", StatePlanning, StateExecuting},
		{"planning to completed", StatePlanning, StateCompleted},
		{"planning to timeout", StatePlanning, StateTimeout},
		{"awaiting plan approval to executing", StateAwaitingPlanApproval, StateExecuting},
		{"plan approved to completed", StatePlanApproved, StateCompleted},
		{"executing back to plan approved", StateExecuting, StatePlanApproved},
		{"rejected is terminal", StatePlanRejected, StatePlanning},
		{"completed is terminal", StateCompleted, StateExecuting},
		{"restarted is terminal", StateRestarted, StateExecuting},
		{"failed is terminal", StateFailed, StatePlanning},
		{"timeout is terminal", StateTimeout, StateExecuting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := trackedManager(t, "plan-1", tt.from)

			err := m.Transition("plan-1", tt.to)

			var invalid *InvalidTransitionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.from, invalid.From)
			assert.Equal(t, tt.to, invalid.To)

			state, _ := m.Current("plan-1")
			assert.Equal(t, tt.from, state, "state must not change on a rejected transition")
		})
	}
}

func TestTransitionUnknownPlan(t *testing.T) {
	m := NewManager()
	err := m.Transition("plan-unknown", StateFailed)
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

func TestCheckpointFollowsState(t *testing.T) {
	m := trackedManager(t, "plan-1", StatePlanning)

	advance(t, m, "plan-1", StateAwaitingPlanApproval)
	cp, _ := m.PendingCheckpoint("plan-1")
	assert.Equal(t, CheckpointPlan, cp)

	advance(t, m, "plan-1", StatePlanApproved)
	cp, _ = m.PendingCheckpoint("plan-1")
	assert.Equal(t, CheckpointNone, cp)

	advance(t, m, "plan-1", StateExecuting, StateAwaitingResultApproval)
	cp, _ = m.PendingCheckpoint("plan-1")
	assert.Equal(t, CheckpointResult, cp)
}

func TestSubmitPlanApproval(t *testing.T) {
	m := trackedManager(t, "plan-1", StateAwaitingPlanApproval)

	decision, err := m.SubmitPlanApproval("plan-1", true, nil, "looks right")
	require.NoError(t, err)
	assert.Equal(t, StatePlanApproved, decision.State)
	assert.True(t, decision.Approved)
	assert.False(t, decision.SequenceModified)
	assert.Equal(t, "looks right", decision.Feedback)

	state, _ := m.Current("plan-1")
	assert.Equal(t, StatePlanApproved, state)
}

func TestSubmitPlanApprovalModifiedSequence(t *testing.T) {
	m := trackedManager(t, "plan-1", StateAwaitingPlanApproval)

	modified := []string{"planner", "invoice", "analysis"}
	decision, err := m.SubmitPlanApproval("plan-1", true, modified, "")
	require.NoError(t, err)
	assert.True(t, decision.SequenceModified)
	assert.Equal(t, modified, decision.Sequence)

	// The decision owns its copy.
	modified[1] = "gmail"
	assert.Equal(t, "invoice", decision.Sequence[1])
}

func TestSubmitPlanApprovalRejected(t *testing.T) {
	m := trackedManager(t, "plan-1", StateAwaitingPlanApproval)

	decision, err := m.SubmitPlanApproval("plan-1", false, nil, "wrong agents")
	require.NoError(t, err)
	assert.Equal(t, StatePlanRejected, decision.State)
	assert.False(t, decision.Approved)

	// PLAN_REJECTED is terminal.
	err = m.Transition("plan-1", StateExecuting)
	var invalid *InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
}

func TestSubmitPlanApprovalWrongState(t *testing.T) {
	m := trackedManager(t, "plan-1", StateExecuting)

	_, err := m.SubmitPlanApproval("plan-1", true, nil, "")
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, StateExecuting, invalid.From)
}

func TestSubmitResultApproval(t *testing.T) {
	m := trackedManager(t, "plan-1", StateAwaitingResultApproval)

	decision, err := m.SubmitResultApproval("plan-1", true, "")
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, decision.State)
}

func TestSubmitResultApprovalRejected(t *testing.T) {
	m := trackedManager(t, "plan-1", StateAwaitingResultApproval)

	decision, err := m.SubmitResultApproval("plan-1", false, "totals do not add up")
	require.NoError(t, err)
	assert.Equal(t, StateRestarted, decision.State)
	assert.Equal(t, "totals do not add up", decision.Feedback)
}

func TestAcquireExecutionStates(t *testing.T) {
	m := trackedManager(t, "plan-1", StatePlanning)

	_, err := m.AcquireExecution("plan-1")
	assert.ErrorIs(t, err, ErrNotExecutable)

	advance(t, m, "plan-1", StatePlanApproved)
	token, err := m.AcquireExecution("plan-1")
	require.NoError(t, err)
	assert.Equal(t, "plan-1", token.PlanID())
	assert.True(t, m.Holds(token))
}

func TestAcquireExecutionHeld(t *testing.T) {
	m := trackedManager(t, "plan-1", StatePlanApproved)

	token, err := m.AcquireExecution("plan-1")
	require.NoError(t, err)

	_, err = m.AcquireExecution("plan-1")
	assert.ErrorIs(t, err, ErrExecutionHeld)

	// Releasing lets a resumed run claim a fresh token.
	m.Release(token)
	assert.False(t, m.Holds(token))

	advance(t, m, "plan-1", StateExecuting)
	resumed, err := m.AcquireExecution("plan-1")
	require.NoError(t, err)
	assert.True(t, m.Holds(resumed))
	assert.False(t, m.Holds(token), "old token must stay invalid")
}

func TestTerminalTransitionInvalidatesToken(t *testing.T) {
	m := trackedManager(t, "plan-1", StatePlanApproved)

	token, err := m.AcquireExecution("plan-1")
	require.NoError(t, err)

	advance(t, m, "plan-1", StateExecuting)
	require.NoError(t, m.Fail("plan-1", "agent crashed"))

	assert.False(t, m.Holds(token))
}

func TestReleaseStaleTokenIsNoop(t *testing.T) {
	m := trackedManager(t, "plan-1", StatePlanApproved)

	first, err := m.AcquireExecution("plan-1")
	require.NoError(t, err)
	m.Release(first)

	second, err := m.AcquireExecution("plan-1")
	require.NoError(t, err)

	m.Release(first)
	assert.True(t, m.Holds(second), "stale release must not drop the live holder")
}

func TestConcurrentAcquireSingleWinner(t *testing.T) {
	m := trackedManager(t, "plan-1", StatePlanApproved)

	const goroutines = 16
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.AcquireExecution("plan-1"); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins, "exactly one goroutine may hold execution")
}

func TestExtractionCheckpoint(t *testing.T) {
	m := trackedManager(t, "plan-1", StateExecuting)

	require.NoError(t, m.MarkExtractionPending("plan-1"))
	cp, _ := m.PendingCheckpoint("plan-1")
	assert.Equal(t, CheckpointExtraction, cp)

	edited := map[string]any{"total": "1250.00"}
	decision, err := m.SubmitExtractionApproval("plan-1", true, edited, "")
	require.NoError(t, err)
	assert.Equal(t, StateExecuting, decision.State)
	assert.Equal(t, edited, decision.Edited)

	cp, _ = m.PendingCheckpoint("plan-1")
	assert.Equal(t, CheckpointNone, cp)

	state, _ := m.Current("plan-1")
	assert.Equal(t, StateExecuting, state, "approval resumes the run in place")
}

func TestExtractionRejectionRestarts(t *testing.T) {
	m := trackedManager(t, "plan-1", StateExecuting)
	require.NoError(t, m.MarkExtractionPending("plan-1"))

	decision, err := m.SubmitExtractionApproval("plan-1", false, nil, "amounts are off")
	require.NoError(t, err)
	assert.Equal(t, StateRestarted, decision.State)

	history := m.History("plan-1")
	require.Len(t, history, 2)
	assert.Equal(t, StateAwaitingResultApproval, history[0].To)
	assert.Equal(t, StateRestarted, history[1].To)
}

func TestExtractionApprovalWithoutCheckpoint(t *testing.T) {
	m := trackedManager(t, "plan-1", StateExecuting)

	_, err := m.SubmitExtractionApproval("plan-1", true, nil, "")
	assert.ErrorIs(t, err, ErrNoPendingCheckpoint)
}

func TestMarkExtractionPendingOutsideExecution(t *testing.T) {
	m := trackedManager(t, "plan-1", StateAwaitingPlanApproval)

	err := m.MarkExtractionPending("plan-1")
	var invalid *InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
}

func TestFailFromEveryActiveState(t *testing.T) {
	for _, from := range []State{
		StatePlanning,
		StateAwaitingPlanApproval,
		StatePlanApproved,
		StateExecuting,
		StateAwaitingResultApproval,
	} {
		t.Run(string(from), func(t *testing.T) {
			m := trackedManager(t, "plan-1", from)
			require.NoError(t, m.Fail("plan-1", "boom"))
			state, _ := m.Current("plan-1")
			assert.Equal(t, StateFailed, state)
		})
	}
}

func TestFailTerminalRejected(t *testing.T) {
	m := trackedManager(t, "plan-1", StateCompleted)

	err := m.Fail("plan-1", "late failure")
	var invalid *InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
}

func TestTimeoutStates(t *testing.T) {
	for _, from := range []State{StateAwaitingPlanApproval, StateExecuting, StateAwaitingResultApproval} {
		t.Run(string(from), func(t *testing.T) {
			m := trackedManager(t, "plan-1", from)
			require.NoError(t, m.Timeout("plan-1"))
			state, _ := m.Current("plan-1")
			assert.Equal(t, StateTimeout, state)
		})
	}

	t.Run("PLANNING cannot time out", func(t *testing.T) {
		m := trackedManager(t, "plan-1", StatePlanning)
		err := m.Timeout("plan-1")
		var invalid *InvalidTransitionError
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestTransitionHook(t *testing.T) {
	type observed struct {
		planID string
		from   State
		to     State
		reason string
	}

	var (
		mu   sync.Mutex
		seen []observed
	)
	m := NewManager()
	m.SetTransitionHook(func(planID string, from, to State, reason string) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, observed{planID, from, to, reason})
	})

	require.NoError(t, m.Track("plan-1", StatePlanning))
	advance(t, m, "plan-1", StateAwaitingPlanApproval)
	_, err := m.SubmitPlanApproval("plan-1", true, nil, "")
	require.NoError(t, err)
	advance(t, m, "plan-1", StateExecuting)
	require.NoError(t, m.Fail("plan-1", "gateway unreachable"))

	require.Len(t, seen, 4)
	assert.Equal(t, observed{"plan-1", StatePlanning, StateAwaitingPlanApproval, ""}, seen[0])
	assert.Equal(t, observed{"plan-1", StateAwaitingPlanApproval, StatePlanApproved, ""}, seen[1])
	assert.Equal(t, observed{"plan-1", StatePlanApproved, StateExecuting, ""}, seen[2])
	assert.Equal(t, observed{"plan-1", StateExecuting, StateFailed, "gateway unreachable"}, seen[3])
}

func TestExtractionRejectionNotifiesBothHops(t *testing.T) {
	var transitions []State
	m := NewManager()
	m.SetTransitionHook(func(_ string, _, to State, _ string) {
		transitions = append(transitions, to)
	})

	require.NoError(t, m.Track("plan-1", StateExecuting))
	require.NoError(t, m.MarkExtractionPending("plan-1"))
	_, err := m.SubmitExtractionApproval("plan-1", false, nil, "")
	require.NoError(t, err)

	assert.Equal(t, []State{StateAwaitingResultApproval, StateRestarted}, transitions)
}

func TestView(t *testing.T) {
	m := trackedManager(t, "plan-1", StatePlanning)
	advance(t, m, "plan-1", StateAwaitingPlanApproval)

	view, ok := m.View("plan-1")
	require.True(t, ok)
	assert.Equal(t, "AWAITING_PLAN_APPROVAL", view.Current)
	assert.Equal(t, "PLANNING", view.Previous)
	assert.Equal(t, "plan", view.PendingCheckpoint)
	assert.False(t, view.ExecutionHeld)
	require.Len(t, view.History, 1)
	assert.Equal(t, "PLANNING", view.History[0].From)
	assert.Equal(t, "AWAITING_PLAN_APPROVAL", view.History[0].To)

	_, ok = m.View("plan-unknown")
	assert.False(t, ok)
}

func TestRemoveAndReset(t *testing.T) {
	m := trackedManager(t, "plan-1", StatePlanning)
	require.NoError(t, m.Track("plan-2", StatePlanning))
	assert.Equal(t, 2, m.Len())

	m.Remove("plan-1")
	_, ok := m.Current("plan-1")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	m.Reset()
	assert.Equal(t, 0, m.Len())
}

func TestHistoryCopyIsolated(t *testing.T) {
	m := trackedManager(t, "plan-1", StatePlanning)
	advance(t, m, "plan-1", StateAwaitingPlanApproval)

	history := m.History("plan-1")
	require.Len(t, history, 1)
	history[0].To = StateFailed

	fresh := m.History("plan-1")
	assert.Equal(t, StateAwaitingPlanApproval, fresh[0].To)
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []State{StatePlanRejected, StateCompleted, StateRestarted, StateFailed, StateTimeout} {
		assert.True(t, IsTerminal(s), "%s must be terminal", s)
	}
	for _, s := range []State{StatePlanning, StateAwaitingPlanApproval, StatePlanApproved, StateExecuting, StateAwaitingResultApproval} {
		assert.False(t, IsTerminal(s), "%s must not be terminal", s)
	}
}

func TestUnknownPlanErrors(t *testing.T) {
	m := NewManager()

	_, err := m.AcquireExecution("plan-unknown")
	assert.ErrorIs(t, err, ErrUnknownPlan)

	_, err = m.SubmitPlanApproval("plan-unknown", true, nil, "")
	assert.ErrorIs(t, err, ErrUnknownPlan)

	_, err = m.SubmitResultApproval("plan-unknown", true, "")
	assert.ErrorIs(t, err, ErrUnknownPlan)

	assert.ErrorIs(t, m.Fail("plan-unknown", "x"), ErrUnknownPlan)
	assert.ErrorIs(t, m.Timeout("plan-unknown"), ErrUnknownPlan)

	assert.False(t, m.Holds(Token{}))
	m.Release(Token{})
}

func TestInvalidTransitionErrorMessage(t *testing.T) {
	err := &InvalidTransitionError{From: StateExecuting, To: StatePlanApproved}
	assert.Equal(t, "invalid approval transition from EXECUTING to PLAN_APPROVED", err.Error())
	assert.True(t, errors.As(error(err), new(*InvalidTransitionError)))
}
