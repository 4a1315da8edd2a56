package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanChannel(t *testing.T) {
	tests := []struct {
		name   string
		planID string
		want   string
	}{
		{
			name:   "formats plan channel correctly",
			planID: "abc-123",
			want:   "plan:abc-123",
		},
		{
			name:   "handles UUID format",
			planID: "550e8400-e29b-41d4-a716-446655440000",
			want:   "plan:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:   "handles empty string",
			planID: "",
			want:   "plan:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlanChannel(tt.planID))
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypePlanCreated,
		EventTypePlanApprovalRequest,
		EventTypePlanApproved,
		EventTypePlanRejected,
		EventTypeAgentStarted,
		EventTypeAgentMessage,
		EventTypeStepProgress,
		EventTypeProgressUpdate,
		EventTypeFinalResult,
		EventTypeExtractionApprovalRequest,
		EventTypeError,
		EventTypeStreamStart,
		EventTypeStreaming,
		EventTypeStreamEnd,
		EventTypeConnectionEstablished,
		EventTypeSubscriptionConfirmed,
		EventTypeCatchupBatch,
		EventTypeCatchupOverflow,
		EventTypePong,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestGlobalPlansChannel(t *testing.T) {
	assert.Equal(t, "plans", GlobalPlansChannel)
}

func TestClientMessage_JSON(t *testing.T) {
	t.Run("catchup message round trip", func(t *testing.T) {
		lastEventID := 42
		msg := ClientMessage{Action: "catchup", Channel: "plan:p-1", LastEventID: &lastEventID}

		data, err := json.Marshal(msg)
		require.NoError(t, err)

		var decoded ClientMessage
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "catchup", decoded.Action)
		assert.Equal(t, "plan:p-1", decoded.Channel)
		require.NotNil(t, decoded.LastEventID)
		assert.Equal(t, 42, *decoded.LastEventID)
	})

	t.Run("ping omits optional fields", func(t *testing.T) {
		data, err := json.Marshal(ClientMessage{Action: "ping"})
		require.NoError(t, err)
		assert.NotContains(t, string(data), "channel")
		assert.NotContains(t, string(data), "last_event_id")
	})
}
