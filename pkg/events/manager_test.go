package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, _ int, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

// testEnvelope builds an envelope-shaped broadcast payload.
func testEnvelope(t *testing.T, eventType string, data map[string]any) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]any{"type": eventType, "data": data, "timestamp": "2026-03-02T10:00:00Z"})
	require.NoError(t, err)
	return payload
}

func newTestServer(t *testing.T, manager *ConnectionManager, initialChannels ...string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn, initialChannels...)
	}))
	t.Cleanup(func() { server.Close() })
	return server
}

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	manager := NewConnectionManager(&mockCatchupQuerier{}, 200, 1000, 5*time.Second)
	return manager, newTestServer(t, manager)
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// wireEnvelope mirrors the server → client envelope shape for assertions.
type wireEnvelope struct {
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp string         `json:"timestamp"`
	EventID   int64          `json:"event_id"`
}

func readEnvelope(t *testing.T, conn *websocket.Conn) wireEnvelope {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var env wireEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func sendClientMessage(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	env := readEnvelope(t, conn)
	assert.Equal(t, EventTypeConnectionEstablished, env.Type)
	assert.NotEmpty(t, env.Data["connection_id"])
	assert.NotEmpty(t, env.Timestamp)
}

func TestConnectionManager_SubscribeUnsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readEnvelope(t, conn) // connection.established

	sendClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "plan:test-123"})

	env := readEnvelope(t, conn)
	assert.Equal(t, EventTypeSubscriptionConfirmed, env.Type)
	assert.Equal(t, "plan:test-123", env.Data["channel"])

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, manager.ActiveConnections())
	assert.Equal(t, 1, manager.subscriberCount("plan:test-123"))
}

func TestConnectionManager_AutoSubscribeInitialChannel(t *testing.T) {
	// The plan socket endpoint subscribes the plan channel before the read
	// loop starts, so clients get confirmed without sending anything.
	manager := NewConnectionManager(&mockCatchupQuerier{}, 200, 1000, 5*time.Second)
	server := newTestServer(t, manager, "plan:auto-1")

	conn := connectWS(t, server)
	readEnvelope(t, conn) // connection.established

	env := readEnvelope(t, conn)
	assert.Equal(t, EventTypeSubscriptionConfirmed, env.Type)
	assert.Equal(t, "plan:auto-1", env.Data["channel"])

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, manager.subscriberCount("plan:auto-1"))
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readEnvelope(t, conn1)
	readEnvelope(t, conn2)

	channel := "plan:broadcast-test"
	sendClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: channel})
	sendClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: channel})
	readEnvelope(t, conn1) // subscription.confirmed
	readEnvelope(t, conn2)

	time.Sleep(100 * time.Millisecond)

	manager.Broadcast(channel, testEnvelope(t, "agent_message", map[string]any{"content": "hello"}))

	env1 := readEnvelope(t, conn1)
	env2 := readEnvelope(t, conn2)
	assert.Equal(t, "agent_message", env1.Type)
	assert.Equal(t, "hello", env1.Data["content"])
	assert.Equal(t, "agent_message", env2.Type)
	assert.Equal(t, "hello", env2.Data["content"])
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readEnvelope(t, conn) // connection.established

	sendClientMessage(t, conn, ClientMessage{Action: "ping"})

	env := readEnvelope(t, conn)
	assert.Equal(t, EventTypePong, env.Type)
}

func TestConnectionManager_BacklogReplayOnSubscribe(t *testing.T) {
	// Envelopes broadcast before any subscriber exists are retained and
	// replayed on subscribe, oldest first.
	manager := NewConnectionManager(&mockCatchupQuerier{}, 200, 1000, 5*time.Second)
	server := newTestServer(t, manager)

	channel := "plan:replay-test"
	for i := 1; i <= 5; i++ {
		manager.Broadcast(channel, testEnvelope(t, "step_progress", map[string]any{"seq": i}))
	}

	conn := connectWS(t, server)
	readEnvelope(t, conn) // connection.established

	sendClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	env := readEnvelope(t, conn)
	require.Equal(t, EventTypeSubscriptionConfirmed, env.Type)

	for i := 1; i <= 5; i++ {
		replayed := readEnvelope(t, conn)
		assert.Equal(t, "step_progress", replayed.Type)
		assert.Equal(t, float64(i), replayed.Data["seq"])
	}

	// Live events continue after the replay.
	manager.Broadcast(channel, testEnvelope(t, "step_progress", map[string]any{"seq": 6}))
	live := readEnvelope(t, conn)
	assert.Equal(t, float64(6), live.Data["seq"])
}

func TestConnectionManager_BacklogRingCapacity(t *testing.T) {
	// Only the most recent backlogSize envelopes are retained.
	manager := NewConnectionManager(&mockCatchupQuerier{}, 3, 1000, 5*time.Second)
	server := newTestServer(t, manager)

	channel := "plan:ring-test"
	for i := 1; i <= 7; i++ {
		manager.Broadcast(channel, testEnvelope(t, "step_progress", map[string]any{"seq": i}))
	}

	conn := connectWS(t, server)
	readEnvelope(t, conn) // connection.established

	sendClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readEnvelope(t, conn) // subscription.confirmed

	for _, want := range []float64{5, 6, 7} {
		replayed := readEnvelope(t, conn)
		assert.Equal(t, want, replayed.Data["seq"])
	}
}

func TestConnectionManager_GlobalChannelHasNoBacklog(t *testing.T) {
	// The global plans channel is live-only; only plan channels retain a
	// replay ring.
	manager := NewConnectionManager(&mockCatchupQuerier{}, 200, 1000, 5*time.Second)
	server := newTestServer(t, manager)

	manager.Broadcast(GlobalPlansChannel, testEnvelope(t, "plan_created", map[string]any{"plan_id": "p-1"}))

	conn := connectWS(t, server)
	readEnvelope(t, conn) // connection.established

	sendClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: GlobalPlansChannel})
	readEnvelope(t, conn) // subscription.confirmed

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "no replay expected on the global channel")
}

func TestConnectionManager_DropBacklog(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 200, 1000, 5*time.Second)
	server := newTestServer(t, manager)

	channel := "plan:drop-test"
	manager.Broadcast(channel, testEnvelope(t, "step_progress", map[string]any{"seq": 1}))
	manager.DropBacklog(channel)

	conn := connectWS(t, server)
	readEnvelope(t, conn) // connection.established

	sendClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readEnvelope(t, conn) // subscription.confirmed

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "dropped backlog must not replay")
}

func TestConnectionManager_SlowSubscriberDisconnect(t *testing.T) {
	// White-box: connections are built by hand so the slow one has no writer
	// draining its queue. The broadcaster must disconnect it and stay
	// unblocked, and the healthy subscriber must receive everything.
	manager := NewConnectionManager(nil, 10, 3, time.Second)

	slowCtx, slowCancel := context.WithCancel(context.Background())
	slow := &Connection{
		ID:            "slow",
		subscriptions: make(map[string]bool),
		sendCh:        make(chan []byte, 3),
		ctx:           slowCtx,
		cancel:        slowCancel,
	}
	manager.registerConnection(slow)
	require.NoError(t, manager.subscribe(slow, "plan:slow-test"))

	healthyCtx, healthyCancel := context.WithCancel(context.Background())
	healthy := &Connection{
		ID:            "healthy",
		subscriptions: make(map[string]bool),
		sendCh:        make(chan []byte, 64),
		ctx:           healthyCtx,
		cancel:        healthyCancel,
	}
	defer healthyCancel()
	manager.registerConnection(healthy)
	require.NoError(t, manager.subscribe(healthy, "plan:slow-test"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			manager.Broadcast("plan:slow-test", testEnvelope(t, "step_progress", map[string]any{"seq": i}))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on a slow subscriber")
	}

	assert.Error(t, slow.ctx.Err(), "slow subscriber should be disconnected")
	assert.NoError(t, healthy.ctx.Err(), "healthy subscriber should stay connected")

	// The healthy queue holds every envelope, in broadcast order.
	received := 0
	for {
		select {
		case data := <-healthy.sendCh:
			var env wireEnvelope
			require.NoError(t, json.Unmarshal(data, &env))
			assert.Equal(t, float64(received), env.Data["seq"])
			received++
		default:
			assert.Equal(t, 50, received, "healthy subscriber should receive all envelopes")
			return
		}
	}
}

func TestConnectionManager_CatchupBatch(t *testing.T) {
	events := []CatchupEvent{
		{ID: 10, Payload: map[string]any{"type": "plan_created", "data": map[string]any{"seq": float64(1)}}},
		{ID: 11, Payload: map[string]any{"type": "agent_started", "data": map[string]any{"seq": float64(2)}}},
		{ID: 12, Payload: map[string]any{"type": "agent_message", "data": map[string]any{"seq": float64(3)}}},
	}
	manager := NewConnectionManager(&mockCatchupQuerier{events: events}, 200, 1000, 5*time.Second)
	server := newTestServer(t, manager)

	conn := connectWS(t, server)
	readEnvelope(t, conn) // connection.established

	sendClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "plan:catchup-test"})
	readEnvelope(t, conn) // subscription.confirmed

	lastEventID := 9
	sendClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: "plan:catchup-test", LastEventID: &lastEventID})

	env := readEnvelope(t, conn)
	require.Equal(t, EventTypeCatchupBatch, env.Type)
	assert.Equal(t, "plan:catchup-test", env.Data["channel"])
	assert.Equal(t, float64(3), env.Data["count"])

	batch, ok := env.Data["events"].([]any)
	require.True(t, ok)
	require.Len(t, batch, 3)

	// Events arrive oldest first, with the row id injected as event_id.
	first, ok := batch[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "plan_created", first["type"])
	assert.Equal(t, float64(10), first["event_id"])

	// No overflow for a batch under the limit.
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive overflow for a small catchup")
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	manyEvents := make([]CatchupEvent, catchupLimit+5)
	for i := range manyEvents {
		manyEvents[i] = CatchupEvent{
			ID:      i + 1,
			Payload: map[string]any{"type": "agent_message", "data": map[string]any{"seq": i}},
		}
	}
	manager := NewConnectionManager(&mockCatchupQuerier{events: manyEvents}, 200, 1000, 5*time.Second)
	server := newTestServer(t, manager)

	conn := connectWS(t, server)
	readEnvelope(t, conn) // connection.established

	sendClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "plan:overflow-test"})
	readEnvelope(t, conn) // subscription.confirmed

	lastEventID := 0
	sendClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: "plan:overflow-test", LastEventID: &lastEventID})

	batch := readEnvelope(t, conn)
	require.Equal(t, EventTypeCatchupBatch, batch.Type)
	assert.Equal(t, float64(catchupLimit), batch.Data["count"], "batch is capped at the limit")

	overflow := readEnvelope(t, conn)
	assert.Equal(t, EventTypeCatchupOverflow, overflow.Type)
	assert.Equal(t, true, overflow.Data["has_more"])
}

func TestConnectionManager_CatchupError(t *testing.T) {
	// A failed catchup query is logged, not fatal: the connection stays
	// usable.
	manager := NewConnectionManager(&mockCatchupQuerier{err: fmt.Errorf("database unreachable")}, 200, 1000, 5*time.Second)
	server := newTestServer(t, manager)

	conn := connectWS(t, server)
	readEnvelope(t, conn) // connection.established

	sendClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "plan:err-test"})
	readEnvelope(t, conn) // subscription.confirmed

	lastEventID := 0
	sendClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: "plan:err-test", LastEventID: &lastEventID})

	time.Sleep(100 * time.Millisecond)

	sendClientMessage(t, conn, ClientMessage{Action: "ping"})
	env := readEnvelope(t, conn)
	assert.Equal(t, EventTypePong, env.Type)
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readEnvelope(t, conn) // connection.established

	channel := "plan:concurrent-test"
	sendClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readEnvelope(t, conn) // subscription.confirmed

	time.Sleep(100 * time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			manager.Broadcast(channel, testEnvelope(t, "agent_message", map[string]any{"idx": idx}))
		}(i)
	}
	wg.Wait()

	received := 0
	var firstErr error
	for i := 0; i < 20; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, 20, received, "should receive all 20 broadcast messages; first error: %v", firstErr)
}

func TestConnectionManager_BroadcastToNonExistentChannel(t *testing.T) {
	manager, _ := setupTestManager(t)

	assert.NotPanics(t, func() {
		manager.Broadcast("nonexistent-channel", testEnvelope(t, "agent_message", nil))
	})
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	// A subscriber of one plan channel must not see another plan's events.
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readEnvelope(t, conn1)
	readEnvelope(t, conn2)

	sendClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: "plan:ch1"})
	readEnvelope(t, conn1) // subscription.confirmed
	sendClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: "plan:ch2"})
	readEnvelope(t, conn2) // subscription.confirmed

	time.Sleep(100 * time.Millisecond)

	manager.Broadcast("plan:ch1", testEnvelope(t, "agent_message", map[string]any{"target": "ch1"}))

	env := readEnvelope(t, conn1)
	assert.Equal(t, "ch1", env.Data["target"])

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "conn2 should not receive ch1 broadcast")
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readEnvelope(t, conn) // connection.established

	channel := "plan:unsub-test"
	sendClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readEnvelope(t, conn) // subscription.confirmed

	sendClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: channel})
	time.Sleep(100 * time.Millisecond)

	manager.Broadcast(channel, testEnvelope(t, "agent_message", map[string]any{"late": true}))

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive message after unsubscribe")
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readEnvelope(t, conn) // connection.established

	for _, action := range []string{"subscribe", "unsubscribe", "catchup"} {
		sendClientMessage(t, conn, ClientMessage{Action: action, Channel: ""})
		env := readEnvelope(t, conn)
		assert.Equal(t, EventTypeError, env.Type, "action %s", action)
		assert.Contains(t, env.Data["message"], "channel is required")
	}

	// Connection still alive after validation errors.
	sendClientMessage(t, conn, ClientMessage{Action: "ping"})
	env := readEnvelope(t, conn)
	assert.Equal(t, EventTypePong, env.Type)
}

func TestConnectionManager_SetListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 200, 1000, 5*time.Second)
	assert.Nil(t, manager.listener)

	listener := NewNotifyListener("host=localhost", manager)
	manager.SetListener(listener)

	manager.listenerMu.RLock()
	assert.Equal(t, listener, manager.listener)
	manager.listenerMu.RUnlock()
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t)

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	_, _, err = conn.Read(ctx) // connection.established
	require.NoError(t, err)

	sendClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: "plan:cleanup-test"})
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, 0, manager.ActiveConnections())
	assert.Equal(t, 0, manager.subscriberCount("plan:cleanup-test"))

	assert.NotPanics(t, func() {
		manager.Broadcast("plan:cleanup-test", testEnvelope(t, "agent_message", nil))
	})
}
