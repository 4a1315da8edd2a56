package e2e

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/events"
)

// A failed step degrades the run instead of killing it when every remaining
// agent tolerates upstream gaps: the analysis still produces a final report,
// flagged as partial.
func TestToolFailureDegradesRun(t *testing.T) {
	app := NewTestApp(t)
	app.Tools.FailWith("invoice.list_invoices", errors.New("invoice store rejected the request"))

	planID := app.SubmitPlan(t, "Verify the invoice backlog", false)
	ws, err := WSConnect(context.Background(), app.PlanSocketURL(planID))
	require.NoError(t, err)
	defer ws.Close()

	detail := app.WaitForPlanStatus(t, planID, "completed", 30*time.Second)
	assert.Equal(t, []string{"completed", "failed", "completed"}, stepStatuses(detail))
	assert.Contains(t, planField(detail, "final_result"), "Partial results")

	// The failed step was announced with its failure reason.
	failed, err := ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == events.EventTypeStepProgress && e.Data["status"] == "failed"
	}, 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "invoice", failed.Data["agent_name"])
}

// When a downstream agent cannot work around the gap, the failure fails the
// whole run and the untouched steps are skipped.
func TestToolFailureFailsFastWhenDownstreamNeedsData(t *testing.T) {
	app := NewTestApp(t)
	app.Tools.FailWith("invoice.list_invoices", errors.New("invoice store rejected the request"))

	// Template: planner -> invoice -> gmail -> analysis. Gmail scopes its
	// search to the collected invoice, so it cannot run without one.
	planID := app.SubmitPlan(t, "Track overdue payments to collect", false)

	detail := app.WaitForPlanStatus(t, planID, "failed", 30*time.Second)
	assert.Equal(t, []string{"completed", "failed", "skipped", "skipped"}, stepStatuses(detail))
	assert.Contains(t, planField(detail, "error_message"), "invoice failed")
}

// The one-shot tool failure queue only poisons the first call: a later plan
// in the same app sees a healthy tool gateway again.
func TestToolFailureIsScopedToOneCall(t *testing.T) {
	app := NewTestApp(t)
	app.Tools.FailWith("invoice.list_invoices", errors.New("gateway hiccup"))

	first := app.SubmitPlan(t, "Verify the invoice backlog", false)
	detail := app.WaitForPlanStatus(t, first, "completed", 30*time.Second)
	assert.Contains(t, stepStatuses(detail), "failed")

	second := app.SubmitPlan(t, "Verify the invoice backlog", false)
	detail = app.WaitForPlanStatus(t, second, "completed", 30*time.Second)
	assert.Equal(t, []string{"completed", "completed", "completed"}, stepStatuses(detail))
}
