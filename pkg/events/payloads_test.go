package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	env := NewEnvelope(EventTypePlanCreated, PlanCreatedData{PlanID: "p-1"})

	assert.Equal(t, EventTypePlanCreated, env.Type)
	assert.Zero(t, env.EventID)

	ts, err := time.Parse(time.RFC3339, env.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, 5*time.Second)
}

func TestEnvelope_JSON(t *testing.T) {
	t.Run("durable envelope carries event_id", func(t *testing.T) {
		env := NewEnvelope(EventTypeAgentMessage, AgentMessageData{
			PlanID:    "p-1",
			AgentName: "invoice",
			Kind:      "result",
			Content:   "Invoice INV-2031 matched to PO-118",
			Sequence:  3,
		})
		env.EventID = 77

		data, err := json.Marshal(env)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "agent_message", decoded["type"])
		assert.Equal(t, float64(77), decoded["event_id"])

		inner, ok := decoded["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "p-1", inner["plan_id"])
		assert.Equal(t, "invoice", inner["agent_name"])
		assert.Equal(t, float64(3), inner["sequence"])
	})

	t.Run("transient envelope omits event_id", func(t *testing.T) {
		env := NewEnvelope(EventTypeStreaming, StreamData{
			PlanID:   "p-1",
			StreamID: "st-1",
			Delta:    "The aging report shows",
		})

		data, err := json.Marshal(env)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "event_id")
	})
}

func TestPlanApprovalRequestData_JSON(t *testing.T) {
	env := NewEnvelope(EventTypePlanApprovalRequest, PlanApprovalRequestData{
		PlanID:            "p-9",
		Sequence:          []string{"planner", "invoice", "analysis"},
		Summary:           "Reconcile March invoices",
		Complexity:        0.6,
		EstimatedDuration: "2m30s",
	})

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded Envelope
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, EventTypePlanApprovalRequest, decoded.Type)

	inner, ok := decoded.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "p-9", inner["plan_id"])
	assert.Len(t, inner["sequence"], 3)
	assert.Equal(t, 0.6, inner["complexity"])
}

func TestProgressUpdateData_JSON(t *testing.T) {
	t.Run("detail carried for failures", func(t *testing.T) {
		data, err := json.Marshal(ProgressUpdateData{
			PlanID: "p-2",
			State:  "TIMEOUT",
			Status: "failed",
			Detail: "workflow timeout",
		})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"detail":"workflow timeout"`)
	})

	t.Run("detail omitted when empty", func(t *testing.T) {
		data, err := json.Marshal(ProgressUpdateData{
			PlanID: "p-2",
			State:  "EXECUTING",
			Status: "in_progress",
		})
		require.NoError(t, err)
		assert.NotContains(t, string(data), "detail")
	})
}

func TestStreamData_JSON(t *testing.T) {
	// Delta is only present on agent_streaming envelopes.
	start, err := json.Marshal(StreamData{PlanID: "p-1", AgentName: "analysis", StreamID: "st-7"})
	require.NoError(t, err)
	assert.NotContains(t, string(start), "delta")

	delta, err := json.Marshal(StreamData{PlanID: "p-1", StreamID: "st-7", Delta: "partial"})
	require.NoError(t, err)
	assert.Contains(t, string(delta), `"delta":"partial"`)
}

func TestExtractionApprovalRequestData_JSON(t *testing.T) {
	env := NewEnvelope(EventTypeExtractionApprovalRequest, ExtractionApprovalRequestData{
		PlanID:    "p-3",
		AgentName: "invoice",
		Fields: map[string]any{
			"invoice_number": "INV-2031",
			"amount":         1249.50,
		},
	})

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded Envelope
	require.NoError(t, json.Unmarshal(data, &decoded))
	inner, ok := decoded.Data.(map[string]any)
	require.True(t, ok)
	fields, ok := inner["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INV-2031", fields["invoice_number"])
	assert.Equal(t, 1249.50, fields["amount"])
}
