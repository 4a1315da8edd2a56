package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/events"
)

// The full human-in-the-loop walk: plan checkpoint, extraction checkpoint
// with field corrections, result checkpoint, completed.
func TestHumanCheckpointWalk(t *testing.T) {
	app := NewTestApp(t)

	planID := app.SubmitPlan(t, "Verify the invoice backlog", true)

	ws, err := WSConnect(context.Background(), app.PlanSocketURL(planID))
	require.NoError(t, err)
	defer ws.Close()

	// Plan checkpoint.
	app.WaitForPlanStatus(t, planID, "pending_approval", 15*time.Second)
	planReq, err := ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == events.EventTypePlanApprovalRequest && e.Data["kind"] == "plan"
	}, 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, planID, planReq.Data["plan_id"])
	assert.NotEmpty(t, planReq.Data["sequence"])

	status, body := app.SubmitPlanApproval(t, planID, true, nil, "")
	require.Equal(t, http.StatusOK, status, "plan approval response: %v", body)
	assert.Equal(t, false, body["modified"])

	// Extraction checkpoint: the invoice agent collects reviewable fields on
	// HITL workflows.
	app.WaitForCheckpoint(t, planID, "extraction", 15*time.Second)
	extReq, err := ws.WaitForEventType(events.EventTypeExtractionApprovalRequest, 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "invoice", extReq.Data["agent_name"])
	fields, _ := extReq.Data["fields"].(map[string]any)
	require.NotEmpty(t, fields)
	assert.Contains(t, fields, "customer")

	status, body = app.SubmitExtractionApproval(t, planID, true,
		map[string]any{"customer": "Acme Corporation"}, "fixed the customer name")
	require.Equal(t, http.StatusOK, status, "extraction approval response: %v", body)

	// Result checkpoint.
	app.WaitForCheckpoint(t, planID, "result", 15*time.Second)
	resultReq, err := ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == events.EventTypePlanApprovalRequest && e.Data["kind"] == "result"
	}, 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, planID, resultReq.Data["plan_id"])

	status, body = app.SubmitPlanApproval(t, planID, true, nil, "")
	require.Equal(t, http.StatusOK, status, "result approval response: %v", body)
	assert.NotContains(t, body, "restarted_plan_id")

	detail := app.WaitForPlanStatus(t, planID, "completed", 15*time.Second)
	assert.Equal(t, []string{"completed", "completed", "completed"}, stepStatuses(detail))

	// The human edit flowed into the live workflow state.
	wfState, _ := detail["workflow_state"].(map[string]any)
	require.NotNil(t, wfState)
	collected, _ := wfState["collected"].(map[string]any)
	invoice, _ := collected["invoice"].(map[string]any)
	assert.Equal(t, "Acme Corporation", invoice["customer"])
}

// Approving with an edited agent sequence recompiles the graph and reseeds
// the durable steps before execution starts.
func TestModifiedSequenceReplacesPlan(t *testing.T) {
	app := NewTestApp(t)

	planID := app.SubmitPlan(t, "Verify the invoice backlog", true)
	app.WaitForPlanStatus(t, planID, "pending_approval", 15*time.Second)

	status, body := app.SubmitPlanApproval(t, planID, true,
		[]string{"planner", "invoice", "gmail", "analysis"}, "add the mailbox sweep")
	require.Equal(t, http.StatusOK, status, "plan approval response: %v", body)
	assert.Equal(t, true, body["modified"])

	// The modified plan still walks its checkpoints.
	app.WaitForCheckpoint(t, planID, "extraction", 15*time.Second)
	status, _ = app.SubmitExtractionApproval(t, planID, true, nil, "")
	require.Equal(t, http.StatusOK, status)
	app.WaitForCheckpoint(t, planID, "result", 15*time.Second)
	status, _ = app.SubmitPlanApproval(t, planID, true, nil, "")
	require.Equal(t, http.StatusOK, status)

	detail := app.WaitForPlanStatus(t, planID, "completed", 15*time.Second)
	assert.Equal(t, []string{"planner", "invoice", "gmail", "analysis"}, stepAgents(detail))
	assert.Equal(t, "user", planField(detail, "plan_source"))
}

// Rejecting the proposed plan terminates the workflow without running any
// agents, keeping the operator's feedback on the durable row.
func TestPlanRejection(t *testing.T) {
	app := NewTestApp(t)

	planID := app.SubmitPlan(t, "Verify the invoice backlog", true)

	ws, err := WSConnect(context.Background(), app.PlanSocketURL(planID))
	require.NoError(t, err)
	defer ws.Close()

	app.WaitForPlanStatus(t, planID, "pending_approval", 15*time.Second)
	status, body := app.SubmitPlanApproval(t, planID, false, nil, "wrong agents for this task")
	require.Equal(t, http.StatusOK, status, "rejection response: %v", body)

	detail := app.WaitForPlanStatus(t, planID, "rejected", 15*time.Second)
	assert.Equal(t, "wrong agents for this task", planField(detail, "human_feedback"))
	assert.Empty(t, planField(detail, "final_result"))

	rejected, err := ws.WaitForEventType(events.EventTypePlanRejected, 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "wrong agents for this task", rejected.Data["feedback"])

	// No agent ever ran.
	for _, s := range stepStatuses(detail) {
		assert.Equal(t, "pending", s)
	}
}

// Rejecting the final result restarts the workflow as a fresh linked plan;
// the original is marked restarted, the clone keeps the approval requirement.
func TestResultRejectionRestartsWorkflow(t *testing.T) {
	app := NewTestApp(t)

	planID := app.SubmitPlan(t, "Verify the invoice backlog", true)
	app.WaitForPlanStatus(t, planID, "pending_approval", 15*time.Second)
	status, _ := app.SubmitPlanApproval(t, planID, true, nil, "")
	require.Equal(t, http.StatusOK, status)

	app.WaitForCheckpoint(t, planID, "extraction", 15*time.Second)
	status, _ = app.SubmitExtractionApproval(t, planID, true, nil, "")
	require.Equal(t, http.StatusOK, status)

	app.WaitForCheckpoint(t, planID, "result", 15*time.Second)
	status, body := app.SubmitPlanApproval(t, planID, false, nil, "numbers look off, run it again")
	require.Equal(t, http.StatusOK, status, "result rejection response: %v", body)

	freshID, _ := body["restarted_plan_id"].(string)
	require.NotEmpty(t, freshID, "result rejection must return the restarted plan id")
	require.NotEqual(t, planID, freshID)

	original := app.WaitForPlanStatus(t, planID, "restarted", 15*time.Second)
	assert.Equal(t, "numbers look off, run it again", planField(original, "human_feedback"))

	// The clone keeps the approval requirement, so it parks at its own plan
	// checkpoint.
	fresh := app.WaitForPlanStatus(t, freshID, "pending_approval", 15*time.Second)
	assert.Equal(t, planID, planField(fresh, "restarted_from"))
	assert.Equal(t, planField(original, "session_id"), planField(fresh, "session_id"))
}

// Free-text clarification answers drive a workflow through every checkpoint
// without a single structured verdict.
func TestClarificationDrivesAllCheckpoints(t *testing.T) {
	app := NewTestApp(t)

	planID := app.SubmitPlan(t, "Verify the invoice backlog", true)
	app.WaitForPlanStatus(t, planID, "pending_approval", 15*time.Second)

	status, body := app.Clarify(t, planID, "looks fine, please go ahead")
	require.Equal(t, http.StatusOK, status, "clarification response: %v", body)
	assert.Equal(t, "approve", body["verdict"])
	assert.Equal(t, "plan", body["checkpoint"])

	app.WaitForCheckpoint(t, planID, "extraction", 15*time.Second)
	status, body = app.Clarify(t, planID, "the extracted fields are correct")
	require.Equal(t, http.StatusOK, status, "clarification response: %v", body)
	assert.Equal(t, "approve", body["verdict"])
	assert.Equal(t, "extraction", body["checkpoint"])

	app.WaitForCheckpoint(t, planID, "result", 15*time.Second)
	status, body = app.Clarify(t, planID, "good, ship it")
	require.Equal(t, http.StatusOK, status, "clarification response: %v", body)
	assert.Equal(t, "approve", body["verdict"])
	assert.Equal(t, "result", body["checkpoint"])

	app.WaitForPlanStatus(t, planID, "completed", 15*time.Second)
}

// An ambiguous clarification at the plan checkpoint is a restart request,
// which at that checkpoint means rejection.
func TestClarificationRejectsAmbiguousAnswer(t *testing.T) {
	app := NewTestApp(t)

	planID := app.SubmitPlan(t, "Verify the invoice backlog", true)
	app.WaitForPlanStatus(t, planID, "pending_approval", 15*time.Second)

	status, body := app.Clarify(t, planID, "no, start over with a different plan")
	require.Equal(t, http.StatusOK, status, "clarification response: %v", body)
	assert.Equal(t, "restart", body["verdict"])

	app.WaitForPlanStatus(t, planID, "rejected", 15*time.Second)
}

// A clarification for a plan that is not waiting on input is a conflict.
func TestClarificationWithoutCheckpointConflicts(t *testing.T) {
	app := NewTestApp(t)

	planID := app.SubmitPlan(t, "Review outstanding invoices", false)
	app.WaitForPlanStatus(t, planID, "completed", 30*time.Second)

	status, body := app.Clarify(t, planID, "yes")
	assert.Equal(t, http.StatusConflict, status, "clarification response: %v", body)
}
