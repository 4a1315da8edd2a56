package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// postJSON posts a JSON body and decodes the JSON response. Returns the HTTP
// status code and the decoded body.
func (app *TestApp) postJSON(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(app.BaseURL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// getJSON fetches a path and decodes the JSON response.
func (app *TestApp) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(app.BaseURL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// SubmitPlan submits a workflow request and returns the new plan id.
func (app *TestApp) SubmitPlan(t *testing.T, description string, requireApproval bool) string {
	t.Helper()
	status, body := app.postJSON(t, "/api/process_request", map[string]any{
		"description":           description,
		"require_plan_approval": requireApproval,
	})
	require.Equal(t, http.StatusAccepted, status, "process_request response: %v", body)
	planID, _ := body["plan_id"].(string)
	require.NotEmpty(t, planID)
	return planID
}

// GetPlan fetches the full plan detail document.
func (app *TestApp) GetPlan(t *testing.T, planID string) map[string]any {
	t.Helper()
	status, body := app.getJSON(t, "/api/plan?plan_id="+planID)
	require.Equal(t, http.StatusOK, status, "plan detail response: %v", body)
	return body
}

// PlanStatus returns the durable status from the plan detail document.
func planStatus(detail map[string]any) string {
	plan, _ := detail["plan"].(map[string]any)
	s, _ := plan["status"].(string)
	return s
}

// planField returns a string field from the durable plan row.
func planField(detail map[string]any, field string) string {
	plan, _ := detail["plan"].(map[string]any)
	s, _ := plan[field].(string)
	return s
}

// stepStatuses returns the ordered durable step statuses.
func stepStatuses(detail map[string]any) []string {
	steps, _ := detail["steps"].([]any)
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		step, _ := s.(map[string]any)
		status, _ := step["status"].(string)
		out = append(out, status)
	}
	return out
}

// stepAgents returns the ordered agent names of the durable steps.
func stepAgents(detail map[string]any) []string {
	steps, _ := detail["steps"].([]any)
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		step, _ := s.(map[string]any)
		name, _ := step["agent_name"].(string)
		out = append(out, name)
	}
	return out
}

// WaitForPlanStatus polls the plan detail endpoint until the durable status
// matches.
func (app *TestApp) WaitForPlanStatus(t *testing.T, planID, want string, timeout time.Duration) map[string]any {
	t.Helper()
	var last map[string]any
	require.Eventually(t, func() bool {
		last = app.GetPlan(t, planID)
		return planStatus(last) == want
	}, timeout, 25*time.Millisecond,
		"plan %s never reached durable status %q (last: %q)", planID, want, planStatus(last))
	return last
}

// WaitForCheckpoint polls the live approval view until the plan is parked at
// the named checkpoint.
func (app *TestApp) WaitForCheckpoint(t *testing.T, planID, checkpoint string, timeout time.Duration) {
	t.Helper()
	require.Eventually(t, func() bool {
		view, ok := app.Approvals.View(planID)
		return ok && view.PendingCheckpoint == checkpoint
	}, timeout, 25*time.Millisecond, "plan %s never reached the %s checkpoint", planID, checkpoint)
}

// SubmitPlanApproval posts a plan (or result) checkpoint verdict.
func (app *TestApp) SubmitPlanApproval(t *testing.T, planID string, approved bool, modified []string, feedback string) (int, map[string]any) {
	t.Helper()
	return app.postJSON(t, "/api/plan_approval", map[string]any{
		"plan_id":           planID,
		"approved":          approved,
		"modified_sequence": modified,
		"feedback":          feedback,
	})
}

// SubmitExtractionApproval posts an extraction checkpoint verdict.
func (app *TestApp) SubmitExtractionApproval(t *testing.T, planID string, approved bool, edited map[string]any, feedback string) (int, map[string]any) {
	t.Helper()
	return app.postJSON(t, "/api/extraction_approval", map[string]any{
		"plan_id":     planID,
		"approved":    approved,
		"edited_data": edited,
		"feedback":    feedback,
	})
}

// Clarify posts a free-text clarification answer.
func (app *TestApp) Clarify(t *testing.T, planID, answer string) (int, map[string]any) {
	t.Helper()
	return app.postJSON(t, "/api/user_clarification", map[string]any{
		"plan_id": planID,
		"answer":  answer,
	})
}

// CancelPlan posts a cancellation request.
func (app *TestApp) CancelPlan(t *testing.T, planID string) (int, map[string]any) {
	t.Helper()
	return app.postJSON(t, "/api/plan_cancel", map[string]any{"plan_id": planID})
}

// PlanSocketURL returns the WebSocket URL for a plan's event channel.
func (app *TestApp) PlanSocketURL(planID string) string {
	return fmt.Sprintf("%s/socket/%s", app.WSBase, planID)
}
