package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 200, 1000, 5*time.Second)
	listener := NewNotifyListener("host=localhost dbname=test", manager)

	require.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=test", listener.connString)
	assert.Equal(t, manager, listener.manager)
	assert.NotNil(t, listener.channels)
	assert.NotNil(t, listener.cmdCh)
	assert.Nil(t, listener.conn)
	assert.False(t, listener.running.Load())
}

func TestNotifyListener_SubscribeWithoutStart(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 200, 1000, 5*time.Second)
	listener := NewNotifyListener("host=localhost", manager)

	err := listener.Subscribe(context.Background(), "plan:test-123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not established")
}

func TestNotifyListener_UnsubscribeWithoutStart(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 200, 1000, 5*time.Second)
	listener := NewNotifyListener("host=localhost", manager)

	// Unsubscribe for a channel that was never subscribed is a no-op.
	err := listener.Unsubscribe(context.Background(), "plan:test-123")
	assert.NoError(t, err)
}

func TestNotifyListener_ExecCancelledContext(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 200, 1000, 5*time.Second)
	listener := NewNotifyListener("host=localhost", manager)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// No receive loop is draining commands, so the cancelled context is the
	// only way out.
	err := listener.exec(ctx, "LISTEN test")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNotifyListener_StopWithoutStart(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 200, 1000, 5*time.Second)
	listener := NewNotifyListener("host=localhost", manager)

	assert.NotPanics(t, func() {
		listener.Stop(context.Background())
	})
}
