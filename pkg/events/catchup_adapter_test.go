package events

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/ent"
)

// mockEventQuerier records the forwarded query arguments and returns canned
// rows.
type mockEventQuerier struct {
	events  []*ent.Event
	err     error
	channel string
	sinceID int
	limit   int
}

func (m *mockEventQuerier) GetEventsSince(_ context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	m.channel = channel
	m.sinceID = sinceID
	m.limit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func TestEventServiceAdapter_GetCatchupEvents(t *testing.T) {
	querier := &mockEventQuerier{
		events: []*ent.Event{
			{ID: 10, Payload: `{"type":"plan_created","data":{"plan_id":"p-1"}}`},
			{ID: 11, Payload: `{"type":"agent_started","data":{"agent_name":"invoice"}}`},
		},
	}
	adapter := NewEventServiceAdapter(querier)

	events, err := adapter.GetCatchupEvents(context.Background(), "plan:p-1", 9, 50)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, 10, events[0].ID)
	assert.Equal(t, "plan_created", events[0].Payload["type"])
	data, ok := events[0].Payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "p-1", data["plan_id"])

	assert.Equal(t, 11, events[1].ID)
	assert.Equal(t, "agent_started", events[1].Payload["type"])
}

func TestEventServiceAdapter_ForwardsQueryArguments(t *testing.T) {
	querier := &mockEventQuerier{}
	adapter := NewEventServiceAdapter(querier)

	_, err := adapter.GetCatchupEvents(context.Background(), "plan:p-42", 100, 200)
	require.NoError(t, err)

	assert.Equal(t, "plan:p-42", querier.channel)
	assert.Equal(t, 100, querier.sinceID)
	assert.Equal(t, 200, querier.limit)
}

func TestEventServiceAdapter_QueryError(t *testing.T) {
	querier := &mockEventQuerier{err: fmt.Errorf("connection refused")}
	adapter := NewEventServiceAdapter(querier)

	events, err := adapter.GetCatchupEvents(context.Background(), "plan:p-1", 0, 50)
	require.Error(t, err)
	assert.Nil(t, events)
}

func TestEventServiceAdapter_EmptyResult(t *testing.T) {
	adapter := NewEventServiceAdapter(&mockEventQuerier{})

	events, err := adapter.GetCatchupEvents(context.Background(), "plan:p-1", 0, 50)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventServiceAdapter_SkipsUnparseablePayload(t *testing.T) {
	querier := &mockEventQuerier{
		events: []*ent.Event{
			{ID: 10, Payload: `{"type":"plan_created"}`},
			{ID: 11, Payload: `not-json`},
			{ID: 12, Payload: `{"type":"final_result_message"}`},
		},
	}
	adapter := NewEventServiceAdapter(querier)

	events, err := adapter.GetCatchupEvents(context.Background(), "plan:p-1", 0, 50)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 10, events[0].ID)
	assert.Equal(t, 12, events[1].ID)
}
