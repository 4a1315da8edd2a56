package e2e

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/events"
)

// Several workflows run side by side on the bounded scheduler, and each
// plan's socket only carries its own events.
func TestConcurrentWorkflowsStayIsolated(t *testing.T) {
	app := NewTestApp(t)

	const n = 4
	planIDs := make([]string, n)
	for i := range planIDs {
		planIDs[i] = app.SubmitPlan(t, "Verify the invoice backlog", false)
	}

	clients := make([]*WSClient, n)
	for i, id := range planIDs {
		ws, err := WSConnect(context.Background(), app.PlanSocketURL(id))
		require.NoError(t, err)
		defer ws.Close()
		clients[i] = ws
	}

	for _, id := range planIDs {
		app.WaitForPlanStatus(t, id, "completed", 45*time.Second)
	}

	for i, ws := range clients {
		_, err := ws.WaitForEventType(events.EventTypeFinalResult, 10*time.Second)
		require.NoError(t, err)
		for _, evt := range ws.Events() {
			if evt.Data == nil {
				continue
			}
			if got, ok := evt.Data["plan_id"].(string); ok {
				assert.Equal(t, planIDs[i], got,
					"socket for plan %s received an event for plan %s", planIDs[i], got)
			}
		}
	}

	// The durable event log is partitioned per plan channel as well.
	ctx := context.Background()
	for _, id := range planIDs {
		rows, err := app.Events.GetEventsSince(ctx, events.PlanChannel(id), 0, 0)
		require.NoError(t, err)
		require.NotEmpty(t, rows)
		for _, row := range rows {
			assert.Equal(t, id, row.PlanID)
		}
	}
}

// Plan listing filters by session and caps the page size.
func TestPlanListingFiltersBySession(t *testing.T) {
	app := NewTestApp(t)

	sessionA := "session-billing-a"
	sessionB := "session-billing-b"

	submit := func(session string) string {
		status, body := app.postJSON(t, "/api/process_request", map[string]any{
			"description":           "Review outstanding invoices",
			"session_id":            session,
			"require_plan_approval": false,
		})
		require.Equal(t, http.StatusAccepted, status, "process_request response: %v", body)
		id, _ := body["plan_id"].(string)
		require.NotEmpty(t, id)
		return id
	}

	idsA := []string{submit(sessionA), submit(sessionA)}
	idB := submit(sessionB)

	for _, id := range append(idsA, idB) {
		app.WaitForPlanStatus(t, id, "completed", 45*time.Second)
	}

	status, body := app.getJSON(t, "/api/plans?session_id="+sessionA)
	require.Equal(t, http.StatusOK, status, "plans response: %v", body)
	plans, _ := body["plans"].([]any)
	require.Len(t, plans, 2)
	for _, raw := range plans {
		p, _ := raw.(map[string]any)
		assert.Equal(t, sessionA, p["session_id"])
	}

	status, body = app.getJSON(t, fmt.Sprintf("/api/plans?session_id=%s&limit=1", sessionA))
	require.Equal(t, http.StatusOK, status)
	plans, _ = body["plans"].([]any)
	assert.Len(t, plans, 1)

	status, body = app.getJSON(t, "/api/plans?status=completed&session_id="+sessionB)
	require.Equal(t, http.StatusOK, status)
	plans, _ = body["plans"].([]any)
	require.Len(t, plans, 1)
	p, _ := plans[0].(map[string]any)
	assert.Equal(t, idB, p["id"])
}
