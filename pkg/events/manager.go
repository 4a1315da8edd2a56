package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup batch.
// If more events were missed, a catchup.overflow notice tells the client to
// do a full REST reload instead of paginating.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when subscribing
// to a new PG channel. Without this, a stalled connection would block the
// subscribing goroutine (and thus the client's read loop) indefinitely.
const listenTimeout = 10 * time.Second

// CatchupEvent holds one row returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]any
}

// CatchupQuerier queries durable events for catchup. Implemented by
// EventServiceAdapter.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// backlog is a fixed-capacity ring of the most recent envelopes broadcast on
// one plan channel. New subscribers get the retained envelopes replayed
// (oldest first) so a client that connects after the first events still sees
// the recent narrative without a durable query.
type backlog struct {
	mu   sync.Mutex
	buf  [][]byte
	next int
	full bool
}

func newBacklog(capacity int) *backlog {
	return &backlog{buf: make([][]byte, capacity)}
}

func (b *backlog) add(payload []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf[b.next] = payload
	b.next = (b.next + 1) % len(b.buf)
	if b.next == 0 {
		b.full = true
	}
}

// snapshot returns the retained envelopes, oldest first.
func (b *backlog) snapshot() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([][]byte, 0, len(b.buf))
	if b.full {
		out = append(out, b.buf[b.next:]...)
	}
	out = append(out, b.buf[:b.next]...)
	return out
}

// ConnectionManager manages WebSocket connections, channel subscriptions and
// per-plan backlogs. Each Go process (pod) has one ConnectionManager.
type ConnectionManager struct {
	// Active connections: connection_id → *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Channel subscriptions: channel → set of connection_ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	// Per-plan-channel replay rings
	backlogs    map[string]*backlog
	backlogMu   sync.Mutex
	backlogSize int

	catchup CatchupQuerier

	// NotifyListener for dynamic LISTEN/UNLISTEN (set after construction)
	listener   *NotifyListener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
	highWater    int
}

// Connection represents a single WebSocket client.
//
// All server → client traffic goes through sendCh and is written by the
// connection's writer goroutine, so the websocket never sees concurrent
// writes. subscriptions is accessed only on the read-loop goroutine
// (HandleConnection and its deferred cleanup).
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool
	sendCh        chan []byte
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a new ConnectionManager. backlogSize is the
// per-plan replay ring capacity; highWater is the per-connection send queue
// depth at which a subscriber is considered too slow and disconnected.
func NewConnectionManager(catchup CatchupQuerier, backlogSize, highWater int, writeTimeout time.Duration) *ConnectionManager {
	if backlogSize < 1 {
		backlogSize = 1
	}
	if highWater < 1 {
		highWater = 1
	}
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		channels:     make(map[string]map[string]bool),
		backlogs:     make(map[string]*backlog),
		backlogSize:  backlogSize,
		catchup:      catchup,
		writeTimeout: writeTimeout,
		highWater:    highWater,
	}
}

// SetListener sets the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both sides are created.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade; blocks until the
// connection closes. Any initialChannels are subscribed before the read loop
// starts (the plan socket endpoint auto-subscribes its plan channel).
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, initialChannels ...string) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		sendCh:        make(chan []byte, m.highWater),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	go m.writeLoop(c)

	m.sendEnvelope(c, NewEnvelope(EventTypeConnectionEstablished, map[string]string{
		"connection_id": connID,
	}))

	for _, channel := range initialChannels {
		m.handleSubscribe(ctx, c, channel)
	}

	// Read loop — process client messages until the connection closes.
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// writeLoop drains the connection's send queue. A write failure or context
// cancellation ends the loop; the read loop then unblocks and the deferred
// cleanup in HandleConnection tears the connection down.
func (m *ConnectionManager) writeLoop(c *Connection) {
	for {
		select {
		case <-c.ctx.Done():
			return
		case data := <-c.sendCh:
			writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
			err := c.Conn.Write(writeCtx, websocket.MessageText, data)
			cancel()
			if err != nil {
				slog.Warn("WebSocket write failed",
					"connection_id", c.ID, "error", err)
				c.cancel()
				return
			}
		}
	}
}

// enqueue hands an envelope to the connection's writer without blocking. A
// queue already at the high-water mark means the subscriber cannot keep up;
// it is disconnected rather than allowed to stall the broadcaster.
func (m *ConnectionManager) enqueue(c *Connection, data []byte) bool {
	select {
	case c.sendCh <- data:
		return true
	default:
		slog.Warn("Disconnecting slow WebSocket subscriber",
			"connection_id", c.ID, "queued", len(c.sendCh))
		c.cancel()
		return false
	}
}

// Broadcast appends an envelope to the channel's backlog and fans it out to
// every subscribed connection's send queue. Never blocks on a client.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	if strings.HasPrefix(channel, planChannelPrefix) {
		m.channelBacklog(channel).add(event)
	}

	m.channelMu.RLock()
	connIDs, exists := m.channels[channel]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		m.enqueue(conn, event)
	}
}

// channelBacklog returns the backlog ring for a channel, creating it on
// first use.
func (m *ConnectionManager) channelBacklog(channel string) *backlog {
	m.backlogMu.Lock()
	defer m.backlogMu.Unlock()

	b, ok := m.backlogs[channel]
	if !ok {
		b = newBacklog(m.backlogSize)
		m.backlogs[channel] = b
	}
	return b
}

// DropBacklog discards a channel's replay ring. Called by cleanup once a
// plan has been terminal long enough that replay no longer matters.
func (m *ConnectionManager) DropBacklog(channel string) {
	m.backlogMu.Lock()
	defer m.backlogMu.Unlock()
	delete(m.backlogs, channel)
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported — used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channel])
}

// handleClientMessage dispatches a client message to the appropriate handler.
func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendEnvelope(c, NewEnvelope(EventTypeError, ErrorData{Message: "channel is required for subscribe"}))
			return
		}
		m.handleSubscribe(ctx, c, msg.Channel)

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendEnvelope(c, NewEnvelope(EventTypeError, ErrorData{Message: "channel is required for unsubscribe"}))
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.sendEnvelope(c, NewEnvelope(EventTypeError, ErrorData{Message: "channel is required for catchup"}))
			return
		}
		if msg.LastEventID != nil {
			m.handleCatchup(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.sendEnvelope(c, NewEnvelope(EventTypePong, map[string]any{}))
	}
}

// handleSubscribe joins a channel, confirms, then replays the channel's
// backlog. Replay happens after the channel join so no live event is missed;
// an event broadcast during the replay window may therefore arrive twice,
// and clients dedupe by event_id.
func (m *ConnectionManager) handleSubscribe(ctx context.Context, c *Connection, channel string) {
	if err := m.subscribe(c, channel); err != nil {
		m.sendEnvelope(c, NewEnvelope("subscription.error", map[string]string{
			"channel": channel,
			"message": "failed to subscribe to channel",
		}))
		return
	}
	m.sendEnvelope(c, NewEnvelope(EventTypeSubscriptionConfirmed, map[string]string{
		"channel": channel,
	}))
	m.replayBacklog(c, channel)
}

// subscribe registers a connection for a channel and starts LISTEN if it is
// the first subscriber. LISTEN is synchronous so it completes before
// subscribe returns — the backlog replay then runs with LISTEN already
// active and no gap where a published event could be lost.
func (m *ConnectionManager) subscribe(c *Connection, channel string) error {
	m.channelMu.Lock()
	needsListen := false
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
		needsListen = true
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, listenCancel := context.WithTimeout(context.Background(), listenTimeout)
			defer listenCancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				m.cleanupFailedChannel(c, channel)
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	c.subscriptions[channel] = true
	return nil
}

// cleanupFailedChannel removes ALL subscribers from a channel after a LISTEN
// failure and notifies every affected connection (except the triggering one,
// which is notified by the caller via the returned error).
//
// Between unlocking channelMu and l.Subscribe completing, other goroutines
// may have subscribed to the same channel; they saw the channel entry exist,
// skipped LISTEN and returned success. Those connections received
// subscription.confirmed but the underlying PG LISTEN never happened. Clients
// must treat subscription.error as authoritative: discard prior events for
// that channel and re-subscribe or fall back to REST polling.
func (m *ConnectionManager) cleanupFailedChannel(triggering *Connection, channel string) {
	m.channelMu.Lock()
	affectedIDs := make([]string, 0, len(m.channels[channel]))
	for connID := range m.channels[channel] {
		if connID != triggering.ID {
			affectedIDs = append(affectedIDs, connID)
		}
	}
	delete(m.channels, channel)
	m.channelMu.Unlock()

	if len(affectedIDs) == 0 {
		return
	}

	m.mu.RLock()
	conns := make([]*Connection, 0, len(affectedIDs))
	for _, id := range affectedIDs {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", conn.ID, "channel", channel)
		m.sendEnvelope(conn, NewEnvelope("subscription.error", map[string]string{
			"channel": channel,
			"message": "channel listen failed; subscription removed",
		}))
	}
}

// unsubscribe removes a connection from a channel and stops LISTEN if it was
// the last subscriber. The backlog is kept — reconnecting clients replay it.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
			// Last subscriber left. The goroutine re-checks m.channels before
			// issuing UNLISTEN so a rapid unsubscribe/resubscribe cycle does
			// not drop an active LISTEN.
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.channelMu.RLock()
					_, resubscribed := m.channels[channel]
					m.channelMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	m.channelMu.Unlock()

	delete(c.subscriptions, channel)
}

// replayBacklog enqueues a channel's retained envelopes, oldest first.
func (m *ConnectionManager) replayBacklog(c *Connection, channel string) {
	if !strings.HasPrefix(channel, planChannelPrefix) {
		return
	}

	m.backlogMu.Lock()
	b, ok := m.backlogs[channel]
	m.backlogMu.Unlock()
	if !ok {
		return
	}

	for _, event := range b.snapshot() {
		if !m.enqueue(c, event) {
			return
		}
	}
}

// handleCatchup sends events missed since lastEventID as one catchup.batch
// envelope, followed by a catchup.overflow notice when more than
// catchupLimit events were missed.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, channel string, lastEventID int) {
	if m.catchup == nil {
		return
	}

	// Query one past the limit to detect overflow.
	events, err := m.catchup.GetCatchupEvents(ctx, channel, lastEventID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	hasMore := len(events) > catchupLimit
	if hasMore {
		events = events[:catchupLimit]
	}

	// The stored payload has no event_id (it is only added to the NOTIFY
	// copy at publish time), so inject it here from the row id.
	batch := make([]map[string]any, 0, len(events))
	for _, evt := range events {
		evt.Payload["event_id"] = evt.ID
		batch = append(batch, evt.Payload)
	}

	m.sendEnvelope(c, NewEnvelope(EventTypeCatchupBatch, map[string]any{
		"channel": channel,
		"events":  batch,
		"count":   len(batch),
	}))

	if hasMore {
		m.sendEnvelope(c, NewEnvelope(EventTypeCatchupOverflow, map[string]any{
			"channel":  channel,
			"has_more": true,
		}))
	}
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection removes a connection and all its subscriptions.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendEnvelope marshals an envelope and hands it to the connection's writer.
func (m *ConnectionManager) sendEnvelope(c *Connection, env Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket envelope",
			"connection_id", c.ID, "type", env.Type, "error", err)
		return
	}
	m.enqueue(c, data)
}
