package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/config"
	"github.com/finovant/macaw/pkg/events"
	"github.com/finovant/macaw/pkg/llm"
)

// Cancelling a live run interrupts the blocked agent, skips the remaining
// steps and fails the plan with the cancellation reason.
func TestCancelMidExecution(t *testing.T) {
	app := NewTestApp(t,
		// Hold the analysis completion open until its context dies.
		WithScript(llm.ScriptEntry{Match: "Upstream step results", BlockUntilCancelled: true}),
	)

	planID := app.SubmitPlan(t, "Verify the invoice backlog", false)

	ws, err := WSConnect(context.Background(), app.PlanSocketURL(planID))
	require.NoError(t, err)
	defer ws.Close()

	// Wait until the workflow is parked inside the analysis step.
	_, err = ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == events.EventTypeAgentStarted && e.Data["agent_name"] == "analysis"
	}, 20*time.Second)
	require.NoError(t, err)

	status, body := app.CancelPlan(t, planID)
	require.Equal(t, http.StatusOK, status, "cancel response: %v", body)

	detail := app.WaitForPlanStatus(t, planID, "failed", 15*time.Second)
	assert.Equal(t, "cancelled", planField(detail, "error_message"))
	assert.Equal(t, []string{"completed", "completed", "skipped"}, stepStatuses(detail))

	errEvt, err := ws.WaitForEventType(events.EventTypeError, 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", errEvt.Data["message"])
}

// A plan parked at an approval checkpoint has no live pass to interrupt; it
// is failed directly. A terminal plan cannot be cancelled again.
func TestCancelAtCheckpointAndDoubleCancel(t *testing.T) {
	app := NewTestApp(t)

	planID := app.SubmitPlan(t, "Verify the invoice backlog", true)
	app.WaitForPlanStatus(t, planID, "pending_approval", 15*time.Second)

	status, body := app.CancelPlan(t, planID)
	require.Equal(t, http.StatusOK, status, "cancel response: %v", body)

	detail := app.WaitForPlanStatus(t, planID, "failed", 15*time.Second)
	assert.Equal(t, "cancelled", planField(detail, "error_message"))

	status, body = app.CancelPlan(t, planID)
	assert.Equal(t, http.StatusConflict, status, "second cancel response: %v", body)
}

// A run that outlives the workflow deadline is timed out: remaining steps
// are skipped and the failure reason names the timeout.
func TestWorkflowTimeout(t *testing.T) {
	app := NewTestApp(t,
		WithWorkflow(func(wf *config.WorkflowConfig) {
			wf.WorkflowTimeout = 3 * time.Second
		}),
		WithScript(llm.ScriptEntry{Match: "Upstream step results", BlockUntilCancelled: true}),
	)

	planID := app.SubmitPlan(t, "Verify the invoice backlog", false)

	detail := app.WaitForPlanStatus(t, planID, "failed", 20*time.Second)
	assert.Equal(t, "workflow timeout", planField(detail, "error_message"))
	assert.Contains(t, stepStatuses(detail), "skipped")
}
