package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/events"
)

// The default pipeline: no approval gates, three agents, straight to
// completed, with the full event stream visible over the plan socket.
func TestAutonomousPipelineCompletes(t *testing.T) {
	app := NewTestApp(t)

	planID := app.SubmitPlan(t, "Review outstanding invoices for overdue balances", false)

	ws, err := WSConnect(context.Background(), app.PlanSocketURL(planID))
	require.NoError(t, err)
	defer ws.Close()

	detail := app.WaitForPlanStatus(t, planID, "completed", 30*time.Second)

	assert.Equal(t, []string{"planner", "invoice", "analysis"}, stepAgents(detail))
	assert.Equal(t, []string{"completed", "completed", "completed"}, stepStatuses(detail))
	assert.NotEmpty(t, planField(detail, "final_result"))
	assert.Equal(t, "template", planField(detail, "plan_source"))

	// The socket replays the plan channel backlog on subscribe, so envelopes
	// published before the dial still arrive.
	_, err = ws.WaitForEventType(events.EventTypeFinalResult, 10*time.Second)
	require.NoError(t, err)
	_, err = ws.WaitForPlanState("COMPLETED", 10*time.Second)
	require.NoError(t, err)

	started := ws.EventsByType(events.EventTypeAgentStarted)
	require.Len(t, started, 3)
	assert.Equal(t, "planner", started[0].Data["agent_name"])
	assert.Equal(t, "analysis", started[2].Data["agent_name"])

	// No approval requests on an ungated run.
	assert.Empty(t, ws.EventsByType(events.EventTypePlanApprovalRequest))
	assert.Empty(t, ws.EventsByType(events.EventTypeExtractionApprovalRequest))
}

// Durable agent messages carry a gap-free per-plan sequence, and the events
// table holds the envelopes a reconnecting client would catch up from.
func TestDurableRecordsSurviveCompletion(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	planID := app.SubmitPlan(t, "Summarize recent email messages from the billing inbox", false)
	app.WaitForPlanStatus(t, planID, "completed", 30*time.Second)

	messages, err := app.Messages.ListByPlan(ctx, planID)
	require.NoError(t, err)
	require.NotEmpty(t, messages)
	for i, msg := range messages {
		assert.Equal(t, i+1, msg.SequenceNumber, "message sequence must be gap-free from 1")
	}

	rows, err := app.Events.GetEventsSince(ctx, events.PlanChannel(planID), 0, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, rows, "durable envelopes should be persisted for catchup")
}

// A client that reconnects after the workflow finished recovers the full
// history through the catchup protocol.
func TestWebSocketCatchupAfterReconnect(t *testing.T) {
	app := NewTestApp(t)

	planID := app.SubmitPlan(t, "Review outstanding invoices", false)
	app.WaitForPlanStatus(t, planID, "completed", 30*time.Second)

	// Fresh connection, after the fact.
	ws, err := WSConnect(context.Background(), app.PlanSocketURL(planID))
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.WaitForEventType(events.EventTypeConnectionEstablished, 5*time.Second)
	require.NoError(t, err)

	require.NoError(t, ws.Catchup(events.PlanChannel(planID), 0))
	batch, err := ws.WaitForEventType(events.EventTypeCatchupBatch, 10*time.Second)
	require.NoError(t, err)

	rawEvents, _ := batch.Data["events"].([]any)
	require.NotEmpty(t, rawEvents)

	var types []string
	for _, raw := range rawEvents {
		env, _ := raw.(map[string]any)
		typ, _ := env["type"].(string)
		types = append(types, typ)
	}
	assert.Contains(t, types, events.EventTypePlanCreated)
	assert.Contains(t, types, events.EventTypeFinalResult)
}
