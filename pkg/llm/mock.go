package llm

import (
	"context"
	"strings"
	"sync"
)

// DefaultMockCompletion is returned by an unscripted MockClient. It is
// deliberately not valid plan JSON so the planner falls back to its
// deterministic keyword templates in mock mode.
const DefaultMockCompletion = "Mock completion. No model was consulted."

// ScriptEntry is one scripted mock response.
type ScriptEntry struct {
	// Match, when non-empty, restricts this entry to requests whose last user
	// message contains it. Empty matches any request. Entries are consumed in
	// script order, first match wins.
	Match string

	// Response is returned by Complete. CompleteStream sends it as a single
	// chunk unless Chunks is set.
	Response string

	// Chunks, when set, are streamed one per StreamChunk.
	Chunks []string

	// Err, when set, is returned instead of any content.
	Err error

	// BlockUntilCancelled parks the call until the caller's context is
	// cancelled, then returns ctx.Err(). Cancellation tests use it to hold a
	// step mid-flight.
	BlockUntilCancelled bool
}

// MockClient is a deterministic, scriptable Client. With an empty script every
// call returns DefaultMockCompletion. Safe for concurrent use.
type MockClient struct {
	mu       sync.Mutex
	script   []ScriptEntry
	consumed []bool
	calls    []Request
}

// NewMockClient creates a mock with an optional script.
func NewMockClient(script ...ScriptEntry) *MockClient {
	m := &MockClient{}
	m.SetScript(script...)
	return m
}

// SetScript replaces the script and resets consumption state. Recorded calls
// are kept.
func (m *MockClient) SetScript(script ...ScriptEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = script
	m.consumed = make([]bool, len(script))
}

// Calls returns a copy of every request seen so far.
func (m *MockClient) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of requests seen so far.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Close implements Client. It is a no-op.
func (m *MockClient) Close() error {
	return nil
}

// Complete returns the next applicable scripted response, or the default.
func (m *MockClient) Complete(ctx context.Context, req *Request) (string, error) {
	entry := m.take(req)

	if entry.BlockUntilCancelled {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if entry.Err != nil {
		return "", entry.Err
	}
	return entry.Response, nil
}

// CompleteStream streams the next applicable scripted response.
func (m *MockClient) CompleteStream(ctx context.Context, req *Request) (<-chan StreamChunk, <-chan error) {
	chunks := make(chan StreamChunk, 100)
	errs := make(chan error, 1)

	entry := m.take(req)

	go func() {
		defer close(chunks)
		defer close(errs)

		if entry.BlockUntilCancelled {
			<-ctx.Done()
			errs <- ctx.Err()
			return
		}
		if entry.Err != nil {
			errs <- entry.Err
			return
		}

		parts := entry.Chunks
		if len(parts) == 0 {
			parts = []string{entry.Response}
		}
		for i, part := range parts {
			select {
			case chunks <- StreamChunk{Content: part, IsFinal: i == len(parts)-1}:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()

	return chunks, errs
}

// take records the request and consumes the first unconsumed entry whose
// Match applies, falling back to the default entry.
func (m *MockClient) take(req *Request) ScriptEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, *req)

	prompt := LastUserMessage(req)
	for i, entry := range m.script {
		if m.consumed[i] {
			continue
		}
		if entry.Match != "" && !strings.Contains(prompt, entry.Match) {
			continue
		}
		m.consumed[i] = true
		return entry
	}
	return ScriptEntry{Response: DefaultMockCompletion}
}
