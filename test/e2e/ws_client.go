package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// WSEvent is one received server envelope.
type WSEvent struct {
	Type     string
	Data     map[string]any
	EventID  int64
	Raw      json.RawMessage
	Received time.Time
}

// WSClient connects to a macaw WebSocket endpoint and collects envelopes in
// the background.
type WSClient struct {
	conn   *websocket.Conn
	events []WSEvent
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	doneCh chan struct{}
}

// WSConnect dials the endpoint and starts the background reader.
func WSConnect(ctx context.Context, wsURL string) (*WSClient, error) {
	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{})
	if err != nil {
		return nil, fmt.Errorf("WebSocket dial: %w", err)
	}

	clientCtx, cancel := context.WithCancel(ctx)
	c := &WSClient{
		conn:   conn,
		ctx:    clientCtx,
		cancel: cancel,
		doneCh: make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// Subscribe sends a subscribe action for the given channel.
func (c *WSClient) Subscribe(channel string) error {
	return c.send(map[string]any{"action": "subscribe", "channel": channel})
}

// Catchup requests all events on a channel after lastEventID.
func (c *WSClient) Catchup(channel string, lastEventID int) error {
	return c.send(map[string]any{
		"action":        "catchup",
		"channel":       channel,
		"last_event_id": lastEventID,
	})
}

func (c *WSClient) send(msg map[string]any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return c.conn.Write(c.ctx, websocket.MessageText, data)
}

// WaitForEvent waits until an envelope matching the predicate arrives.
func (c *WSClient) WaitForEvent(predicate func(WSEvent) bool, timeout time.Duration) (*WSEvent, error) {
	deadline := time.After(timeout)
	tick := time.NewTicker(25 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-deadline:
			return nil, fmt.Errorf("timeout waiting for event (collected %d events)", len(c.Events()))
		case <-tick.C:
			c.mu.Lock()
			for i := range c.events {
				if predicate(c.events[i]) {
					evt := c.events[i]
					c.mu.Unlock()
					return &evt, nil
				}
			}
			c.mu.Unlock()
		}
	}
}

// WaitForEventType waits for an envelope with the given type.
func (c *WSClient) WaitForEventType(eventType string, timeout time.Duration) (*WSEvent, error) {
	return c.WaitForEvent(func(e WSEvent) bool {
		return e.Type == eventType
	}, timeout)
}

// WaitForPlanState waits for a progress_update envelope carrying the given
// approval state.
func (c *WSClient) WaitForPlanState(state string, timeout time.Duration) (*WSEvent, error) {
	return c.WaitForEvent(func(e WSEvent) bool {
		return e.Type == "progress_update" && e.Data["state"] == state
	}, timeout)
}

// Events returns a snapshot of all collected envelopes.
func (c *WSClient) Events() []WSEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]WSEvent, len(c.events))
	copy(out, c.events)
	return out
}

// EventsByType returns collected envelopes of one type.
func (c *WSClient) EventsByType(eventType string) []WSEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []WSEvent
	for _, e := range c.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// Close closes the connection and waits for the reader to exit.
func (c *WSClient) Close() error {
	c.cancel()
	_ = c.conn.CloseNow()
	<-c.doneCh
	return nil
}

func (c *WSClient) readLoop() {
	defer close(c.doneCh)
	for {
		_, data, err := c.conn.Read(c.ctx)
		if err != nil {
			return
		}

		var envelope struct {
			Type    string         `json:"type"`
			Data    map[string]any `json:"data"`
			EventID int64          `json:"event_id"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			continue
		}

		evt := WSEvent{
			Type:     envelope.Type,
			Data:     envelope.Data,
			EventID:  envelope.EventID,
			Raw:      json.RawMessage(data),
			Received: time.Now(),
		}
		c.mu.Lock()
		c.events = append(c.events, evt)
		c.mu.Unlock()
	}
}
