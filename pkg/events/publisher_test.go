package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(NewEnvelope(EventTypeAgentMessage, AgentMessageData{
			PlanID:  "p-1",
			Content: "short message",
		}))

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeAgentMessage)
		assert.Contains(t, result, "p-1")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(NewEnvelope(EventTypeAgentMessage, AgentMessageData{
			PlanID:  "p-1",
			Content: strings.Repeat("a", 8000),
		}))

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
		assert.NotContains(t, result, "aaaa")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		env := NewEnvelope(EventTypeFinalResult, FinalResultData{
			PlanID: "p-789",
			Result: strings.Repeat("x", 8000),
		})
		env.EventID = 456
		payload, _ := json.Marshal(env)

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeFinalResult)
		assert.Contains(t, result, `"event_id":456`)
		assert.Contains(t, result, "p-789")
		assert.Contains(t, result, `"truncated":true`)
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Measure the envelope overhead first, then size the content so the
		// whole marshaled payload lands just under the NOTIFY limit. The
		// 20-byte margin absorbs JSON encoding variability.
		base, _ := json.Marshal(NewEnvelope(EventTypeAgentMessage, AgentMessageData{PlanID: "p"}))
		contentSize := notifyLimit - len(base) - 20
		payload, _ := json.Marshal(NewEnvelope(EventTypeAgentMessage, AgentMessageData{
			PlanID:  "p",
			Content: strings.Repeat("b", contentSize),
		}))
		require.LessOrEqual(t, len(payload), notifyLimit, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectEventIDAndTruncate(t *testing.T) {
	t.Run("injects event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(NewEnvelope(EventTypePlanCreated, PlanCreatedData{
			PlanID:    "p-1",
			SessionID: "s-1",
		}))

		result, err := injectEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"event_id":42`)
		assert.Contains(t, result, "p-1")
	})

	t.Run("truncated payload preserves event_id and plan_id", func(t *testing.T) {
		payload, _ := json.Marshal(NewEnvelope(EventTypeAgentMessage, AgentMessageData{
			PlanID:  "p-55",
			Content: strings.Repeat("x", 8000),
		}))

		result, err := injectEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"event_id":42`)
		assert.Contains(t, result, `"plan_id":"p-55"`)
	})

	t.Run("truncated payload without plan_id omits it", func(t *testing.T) {
		payload, _ := json.Marshal(NewEnvelope(EventTypeError, ErrorData{
			Message: strings.Repeat("x", 8000),
		}))

		result, err := injectEventIDAndTruncate(payload, 99)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"event_id":99`)
		assert.NotContains(t, result, "plan_id")
	})

	t.Run("rejects non-JSON payload", func(t *testing.T) {
		_, err := injectEventIDAndTruncate([]byte("not json"), 1)
		assert.Error(t, err)
	})
}

func TestNewPublisher(t *testing.T) {
	publisher := NewPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}
