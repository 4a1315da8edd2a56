package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/database"
	"github.com/finovant/macaw/pkg/models"
	"github.com/finovant/macaw/pkg/services"
	testdb "github.com/finovant/macaw/test/database"
	"github.com/finovant/macaw/test/util"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient     *database.Client
	publisher    *Publisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	planID       string // Pre-created Plan (satisfies FK on events)
	channel      string // plan:<planID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create the Plan required by the FK on the events table.
	planService := services.NewPlanService(dbClient.Client)
	plan, err := planService.CreatePlan(ctx, models.CreatePlanRequest{
		SessionID:       uuid.New().String(),
		TaskDescription: "reconcile Q3 invoices against the ledger",
		RequireApproval: true,
	})
	require.NoError(t, err)

	channel := PlanChannel(plan.ID)

	// Real components
	publisher := NewPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 200, 1000, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		planID:       plan.ID,
		channel:      channel,
	}
}

func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// subscribeTo connects a WebSocket, reads connection.established, subscribes
// to the given channel and reads subscription.confirmed. LISTEN is issued
// synchronously before the confirmation, so once confirmed the PG channel is
// live.
func (env *streamingTestEnv) subscribeTo(t *testing.T, channel string) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	msg := readEnvelope(t, conn)
	require.Equal(t, EventTypeConnectionEstablished, msg.Type)

	sendClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	msg = readEnvelope(t, conn)
	require.Equal(t, EventTypeSubscriptionConfirmed, msg.Type)
	require.True(t, env.listener.isListening(channel), "LISTEN should be active once confirmed")

	return conn
}

// parsePayload unmarshals the durable payload column into a map.
func parsePayload(t *testing.T, payload string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	return m
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	err := env.publisher.PublishPlanApprovalRequest(ctx, PlanApprovalRequestData{
		PlanID:   env.planID,
		Sequence: []string{"invoice", "analysis"},
		Summary:  "extract invoice totals, then reconcile",
	})
	require.NoError(t, err)

	err = env.publisher.PublishStepProgress(ctx, StepProgressData{
		PlanID:     env.planID,
		AgentName:  "invoice",
		StepIndex:  0,
		TotalSteps: 2,
		Status:     "completed",
	})
	require.NoError(t, err)

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, env.planID, events[0].PlanID)
	assert.Equal(t, env.channel, events[0].Channel)

	first := parsePayload(t, events[0].Payload)
	assert.Equal(t, EventTypePlanApprovalRequest, first["type"])
	firstData, ok := first["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "extract invoice totals, then reconcile", firstData["summary"])
	_, hasEventID := first["event_id"]
	assert.False(t, hasEventID, "stored payload must not carry event_id; catchup injects it from the row")

	second := parsePayload(t, events[1].Payload)
	assert.Equal(t, EventTypeStepProgress, second["type"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	err := env.publisher.PublishStreamDelta(ctx, StreamData{
		PlanID:    env.planID,
		AgentName: "analysis",
		StreamID:  uuid.New().String(),
		Delta:     "token data",
	})
	require.NoError(t, err)

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "stream deltas should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeTo(t, env.channel)

	err := env.publisher.PublishAgentMessage(ctx, AgentMessageData{
		PlanID:    env.planID,
		AgentName: "invoice",
		Kind:      "observation",
		Content:   "hello from publisher",
		Sequence:  1,
	})
	require.NoError(t, err)

	// The event arrives via pg_notify → listener → manager.
	msg := readEnvelope(t, conn)
	assert.Equal(t, EventTypeAgentMessage, msg.Type)
	assert.Equal(t, "hello from publisher", msg.Data["content"])
	assert.Equal(t, env.planID, msg.Data["plan_id"])
	// event_id is injected by persistAndNotify after the INSERT.
	assert.Greater(t, msg.EventID, int64(0))
}

func TestIntegration_StreamDeltaProtocol(t *testing.T) {
	// Verifies the full streaming protocol:
	// 1. agent_stream_start (transient)
	// 2. agent_streaming deltas (transient, small payloads)
	// 3. agent_stream_end (transient)
	// 4. agent_message (durable, full content)
	// Clients concatenate deltas for live display; the durable agent_message
	// is the authoritative copy after a reconnect.
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeTo(t, env.channel)
	streamID := uuid.New().String()

	require.NoError(t, env.publisher.PublishStreamStart(ctx, StreamData{
		PlanID:    env.planID,
		AgentName: "analysis",
		StreamID:  streamID,
	}))

	msg := readEnvelope(t, conn)
	assert.Equal(t, EventTypeStreamStart, msg.Type)
	assert.Equal(t, streamID, msg.Data["stream_id"])
	assert.Zero(t, msg.EventID, "transient envelopes carry no event_id")

	deltas := []string{"Vendor totals ", "match the ledger ", "except invoice #1042."}
	for _, delta := range deltas {
		require.NoError(t, env.publisher.PublishStreamDelta(ctx, StreamData{
			PlanID:    env.planID,
			AgentName: "analysis",
			StreamID:  streamID,
			Delta:     delta,
		}))

		msg := readEnvelope(t, conn)
		assert.Equal(t, EventTypeStreaming, msg.Type)
		assert.Equal(t, streamID, msg.Data["stream_id"])
		assert.Equal(t, delta, msg.Data["delta"], "each chunk should carry only the new delta")
	}

	require.NoError(t, env.publisher.PublishStreamEnd(ctx, StreamData{
		PlanID:    env.planID,
		AgentName: "analysis",
		StreamID:  streamID,
	}))
	msg = readEnvelope(t, conn)
	assert.Equal(t, EventTypeStreamEnd, msg.Type)

	fullContent := strings.Join(deltas, "")
	require.NoError(t, env.publisher.PublishAgentMessage(ctx, AgentMessageData{
		PlanID:    env.planID,
		AgentName: "analysis",
		Kind:      "final_summary",
		Content:   fullContent,
		Sequence:  1,
	}))

	msg = readEnvelope(t, conn)
	assert.Equal(t, EventTypeAgentMessage, msg.Type)
	assert.Equal(t, fullContent, msg.Data["content"])

	// Only the durable agent_message is in DB; the stream envelopes are not.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1, "only the durable envelope should be in DB")
	assert.Equal(t, EventTypeAgentMessage, parsePayload(t, events[0].Payload)["type"])
}

func TestIntegration_GlobalChannelReceivesTransientCopy(t *testing.T) {
	// plan_created is dual-published: durable on the plan channel, transient
	// copy on the global plans channel for dashboards.
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeTo(t, GlobalPlansChannel)

	err := env.publisher.PublishPlanCreated(ctx, PlanCreatedData{
		PlanID:          env.planID,
		SessionID:       uuid.New().String(),
		TaskDescription: "reconcile Q3 invoices against the ledger",
		Status:          "PLANNING",
	})
	require.NoError(t, err)

	msg := readEnvelope(t, conn)
	assert.Equal(t, EventTypePlanCreated, msg.Type)
	assert.Equal(t, env.planID, msg.Data["plan_id"])

	// Durable copy lives on the plan channel only.
	planEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, planEvents, 1)

	globalEvents, err := env.eventService.GetEventsSince(ctx, GlobalPlansChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, globalEvents, "the global copy is transient")
}

func TestIntegration_OversizedNotifyTruncated(t *testing.T) {
	// An envelope over the NOTIFY limit is delivered as a routing-only
	// truncation marker; the durable row keeps the full payload and catchup
	// returns it intact.
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeTo(t, env.channel)

	bigContent := strings.Repeat("x", 10_000)
	err := env.publisher.PublishAgentMessage(ctx, AgentMessageData{
		PlanID:    env.planID,
		AgentName: "analysis",
		Kind:      "final_summary",
		Content:   bigContent,
		Sequence:  1,
	})
	require.NoError(t, err)

	msg := readEnvelope(t, conn)
	assert.Equal(t, EventTypeAgentMessage, msg.Type)
	assert.Nil(t, msg.Data, "truncated marker carries no data")
	assert.Greater(t, msg.EventID, int64(0), "marker keeps event_id so the client can fetch the row")

	// The durable row holds the full content.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	payload := parsePayload(t, events[0].Payload)
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, bigContent, data["content"])

	// Catchup returns the full envelope, not the marker.
	lastEventID := 0
	sendClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: env.channel, LastEventID: &lastEventID})
	batch := readEnvelope(t, conn)
	require.Equal(t, EventTypeCatchupBatch, batch.Type)
	batchEvents, ok := batch.Data["events"].([]any)
	require.True(t, ok)
	require.Len(t, batchEvents, 1)
	full, ok := batchEvents[0].(map[string]any)
	require.True(t, ok)
	fullData, ok := full["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, bigContent, fullData["content"])
}

func TestIntegration_BacklogReplayAfterReconnect(t *testing.T) {
	// Events observed by the pod (via NOTIFY) are retained in the plan's
	// backlog ring and replayed to later subscribers.
	env := setupStreamingTest(t)
	ctx := context.Background()

	// First subscriber activates LISTEN, so broadcasts reach this pod.
	first := env.subscribeTo(t, env.channel)

	for i := 1; i <= 3; i++ {
		require.NoError(t, env.publisher.PublishStepProgress(ctx, StepProgressData{
			PlanID:     env.planID,
			AgentName:  "invoice",
			StepIndex:  i - 1,
			TotalSteps: 3,
			Status:     "completed",
		}))
		msg := readEnvelope(t, first)
		require.Equal(t, EventTypeStepProgress, msg.Type)
	}

	// A second subscriber gets the 3 retained envelopes replayed in order.
	second := env.subscribeTo(t, env.channel)
	for i := 1; i <= 3; i++ {
		msg := readEnvelope(t, second)
		assert.Equal(t, EventTypeStepProgress, msg.Type)
		assert.Equal(t, float64(i-1), msg.Data["step_index"])
	}
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish 3 durable events before anyone subscribes. No LISTEN is active
	// yet, so the NOTIFY copies go nowhere — the DB rows are the only record.
	for i := 1; i <= 3; i++ {
		require.NoError(t, env.publisher.PublishStepProgress(ctx, StepProgressData{
			PlanID:     env.planID,
			AgentName:  "invoice",
			StepIndex:  i - 1,
			TotalSteps: 3,
			Status:     "completed",
		}))
	}

	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	conn := env.subscribeTo(t, env.channel)

	// Nothing to replay: this pod never saw the notifications.
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	_, _, err = conn.Read(readCtx)
	readCancel()
	require.Error(t, err, "no backlog replay expected")

	// Explicit catchup from zero returns all 3 in one batch, oldest first,
	// each carrying its row id as event_id.
	lastEventID := 0
	sendClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: env.channel, LastEventID: &lastEventID})

	batch := readEnvelope(t, conn)
	require.Equal(t, EventTypeCatchupBatch, batch.Type)
	assert.Equal(t, float64(3), batch.Data["count"])
	batchEvents, ok := batch.Data["events"].([]any)
	require.True(t, ok)
	require.Len(t, batchEvents, 3)
	for i, raw := range batchEvents {
		evt, ok := raw.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, EventTypeStepProgress, evt["type"])
		assert.Equal(t, float64(allEvents[i].ID), evt["event_id"])
	}

	// Catchup from the first event's id returns only events 2 and 3.
	sendClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: env.channel, LastEventID: &firstEventID})
	batch = readEnvelope(t, conn)
	require.Equal(t, EventTypeCatchupBatch, batch.Type)
	assert.Equal(t, float64(2), batch.Data["count"])

	// No more messages — verify with short timeout.
	readCtx2, readCancel2 := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel2()
	_, _, err = conn.Read(readCtx2)
	assert.Error(t, err, "should not receive more messages after catchup")
}
