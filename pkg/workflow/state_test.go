package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	seq := []string{"planner", "invoice", "analysis"}
	st := NewState("plan-1", "sess-1", "verify invoices", seq, true)

	assert.Equal(t, "plan-1", st.PlanID)
	assert.Equal(t, 0, st.CurrentStep)
	assert.True(t, st.RequireApproval)
	assert.Empty(t, st.Results)

	// The state owns its own copy of the sequence.
	seq[0] = "mutated"
	assert.Equal(t, "planner", st.AgentSequence[0])
}

func TestStateCloneIsDeep(t *testing.T) {
	st := NewState("plan-1", "sess-1", "task", []string{"planner", "invoice"}, false)
	st.Merge("invoice", StepResult{
		Status:  StepCompleted,
		Summary: "3 invoices checked",
		Output:  map[string]any{"count": 3},
	}, map[string]any{"total": "120.50"})

	c := st.Clone()
	c.AgentSequence[0] = "other"
	c.Results["invoice"].Output["count"] = 99
	c.Collected["invoice"]["total"] = "0"
	c.Merge("planner", StepResult{Status: StepCompleted}, nil)

	assert.Equal(t, "planner", st.AgentSequence[0])
	assert.Equal(t, 3, st.Results["invoice"].Output["count"])
	assert.Equal(t, "120.50", st.Collected["invoice"]["total"])
	assert.NotContains(t, st.Results, "planner")
}

func TestStateMergeRecordsOutcome(t *testing.T) {
	st := NewState("plan-1", "sess-1", "task", []string{"gmail"}, false)

	st.Merge("gmail", StepResult{
		Status:   StepCompleted,
		Summary:  "12 emails summarized",
		Duration: 80 * time.Millisecond,
	}, nil)

	res, ok := st.Results["gmail"]
	require.True(t, ok)
	assert.Equal(t, "gmail", res.Agent)
	assert.Equal(t, StepCompleted, res.Status)
}

func TestStateAdvanceIsMonotonic(t *testing.T) {
	st := NewState("plan-1", "sess-1", "task", []string{"a", "b", "c"}, false)

	st.Advance(0)
	assert.Equal(t, 1, st.CurrentStep)

	st.Advance(1)
	assert.Equal(t, 2, st.CurrentStep)

	// Replaying an earlier index never moves the cursor backwards.
	st.Advance(0)
	assert.Equal(t, 2, st.CurrentStep)
}

func TestApplyCollectedEdits(t *testing.T) {
	st := NewState("plan-1", "sess-1", "task", []string{"invoice"}, true)
	st.Merge("invoice", StepResult{Status: StepCompleted},
		map[string]any{"total": "100.00", "vendor": "Acme"})

	st.ApplyCollectedEdits("invoice", map[string]any{"total": "101.25"})

	assert.Equal(t, "101.25", st.Collected["invoice"]["total"])
	assert.Equal(t, "Acme", st.Collected["invoice"]["vendor"])

	// Edits for an agent with no prior collection create the entry.
	st.ApplyCollectedEdits("gmail", map[string]any{"thread": "t-1"})
	assert.Equal(t, "t-1", st.Collected["gmail"]["thread"])
}

func TestSnapshotOrdersResultsBySequence(t *testing.T) {
	st := NewState("plan-1", "sess-1", "task", []string{"planner", "invoice", "analysis"}, true)
	st.Merge("analysis", StepResult{Status: StepCompleted, Summary: "done"}, nil)
	st.Merge("planner", StepResult{Status: StepCompleted, Summary: "planned"}, nil)

	snap := st.Snapshot()
	require.Len(t, snap.Results, 2)
	assert.Equal(t, "planner", snap.Results[0].Agent)
	assert.Equal(t, "analysis", snap.Results[1].Agent)
}
