package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRequest(content string) *Request {
	return &Request{
		PlanID: "plan-1",
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a helpful assistant."},
			{Role: RoleUser, Content: content},
		},
	}
}

func TestMockDefaultCompletion(t *testing.T) {
	m := NewMockClient()

	got, err := m.Complete(context.Background(), userRequest("anything"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMockCompletion, got)
	assert.Equal(t, 1, m.CallCount())
}

func TestMockScriptConsumedInOrder(t *testing.T) {
	m := NewMockClient(
		ScriptEntry{Response: "first"},
		ScriptEntry{Response: "second"},
	)

	got, err := m.Complete(context.Background(), userRequest("a"))
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = m.Complete(context.Background(), userRequest("b"))
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	// Script exhausted, default applies.
	got, err = m.Complete(context.Background(), userRequest("c"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMockCompletion, got)
}

func TestMockScriptMatchRouting(t *testing.T) {
	m := NewMockClient(
		ScriptEntry{Match: "plan the following task", Response: `{"agents":["planner","invoice","analysis"]}`},
		ScriptEntry{Match: "summarize", Response: "routed summary"},
	)

	got, err := m.Complete(context.Background(), userRequest("please summarize these results"))
	require.NoError(t, err)
	assert.Equal(t, "routed summary", got)

	got, err = m.Complete(context.Background(), userRequest("plan the following task: verify invoices"))
	require.NoError(t, err)
	assert.Contains(t, got, "invoice")
}

func TestMockScriptError(t *testing.T) {
	scripted := errors.New("model overloaded")
	m := NewMockClient(ScriptEntry{Err: scripted})

	_, err := m.Complete(context.Background(), userRequest("x"))
	assert.ErrorIs(t, err, scripted)
}

func TestMockBlockUntilCancelled(t *testing.T) {
	m := NewMockClient(ScriptEntry{BlockUntilCancelled: true})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := m.Complete(ctx, userRequest("x"))
		done <- err
	}()

	select {
	case <-done:
		t.Fatal("Complete returned before cancellation")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Complete did not return after cancellation")
	}
}

func TestMockStreamChunks(t *testing.T) {
	m := NewMockClient(ScriptEntry{Chunks: []string{"The ", "invoice ", "checks out."}})

	chunks, errs := m.CompleteStream(context.Background(), userRequest("analyze"))

	var parts []string
	var final int
	for c := range chunks {
		parts = append(parts, c.Content)
		if c.IsFinal {
			final++
		}
	}
	require.NoError(t, <-errs)

	assert.Equal(t, []string{"The ", "invoice ", "checks out."}, parts)
	assert.Equal(t, 1, final, "only the last chunk is final")
}

func TestMockStreamSingleChunkFromResponse(t *testing.T) {
	m := NewMockClient(ScriptEntry{Response: "whole thing"})

	chunks, errs := m.CompleteStream(context.Background(), userRequest("analyze"))

	first := <-chunks
	assert.Equal(t, "whole thing", first.Content)
	assert.True(t, first.IsFinal)

	_, open := <-chunks
	assert.False(t, open)
	require.NoError(t, <-errs)
}

func TestMockStreamCancellation(t *testing.T) {
	m := NewMockClient(ScriptEntry{BlockUntilCancelled: true})

	ctx, cancel := context.WithCancel(context.Background())
	chunks, errs := m.CompleteStream(ctx, userRequest("x"))

	cancel()

	for range chunks {
	}
	assert.ErrorIs(t, <-errs, context.Canceled)
}

func TestLastUserMessage(t *testing.T) {
	req := &Request{Messages: []Message{
		{Role: RoleSystem, Content: "sys"},
		{Role: RoleUser, Content: "older"},
		{Role: RoleAssistant, Content: "reply"},
		{Role: RoleUser, Content: "newest"},
	}}
	assert.Equal(t, "newest", LastUserMessage(req))

	assert.Empty(t, LastUserMessage(&Request{Messages: []Message{{Role: RoleSystem, Content: "sys"}}}))
}
