package agent

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/events"
	"github.com/finovant/macaw/pkg/llm"
	"github.com/finovant/macaw/pkg/mcp"
	"github.com/finovant/macaw/pkg/workflow"
)

// recordingStreamer captures stream publishes for assertions.
type recordingStreamer struct {
	mu     sync.Mutex
	starts []events.StreamData
	deltas []events.StreamData
	ends   []events.StreamData
	err    error
}

func (s *recordingStreamer) PublishStreamStart(_ context.Context, data events.StreamData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.starts = append(s.starts, data)
	return s.err
}

func (s *recordingStreamer) PublishStreamDelta(_ context.Context, data events.StreamData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deltas = append(s.deltas, data)
	return s.err
}

func (s *recordingStreamer) PublishStreamEnd(_ context.Context, data events.StreamData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ends = append(s.ends, data)
	return s.err
}

func newTestState(task string, sequence ...string) *workflow.State {
	return workflow.NewState("plan-1", "session-1", task, sequence, true)
}

func TestRegisterDefaults(t *testing.T) {
	registry := workflow.NewRegistry()
	deps := Deps{
		Registry: registry,
		Tools:    mcp.NewMockToolClient(),
		LLM:      llm.NewMockClient(),
		Streamer: &recordingStreamer{},
	}

	require.NoError(t, RegisterDefaults(deps))
	assert.Equal(t, []string{"analysis", "gmail", "invoice", "planner", "salesforce"}, registry.Names())

	// Registering twice collides on every name.
	err := RegisterDefaults(deps)
	require.Error(t, err)
	assert.ErrorIs(t, err, workflow.ErrAgentExists)
}

func TestRegisterDefaults_AnalysisToleratesGaps(t *testing.T) {
	registry := workflow.NewRegistry()
	require.NoError(t, RegisterDefaults(Deps{
		Registry: registry,
		Tools:    mcp.NewMockToolClient(),
		LLM:      llm.NewMockClient(),
	}))

	analysis, ok := registry.Get("analysis")
	require.True(t, ok)
	assert.True(t, analysis.Describe().TolerateUpstreamGaps)

	invoice, ok := registry.Get("invoice")
	require.True(t, ok)
	assert.False(t, invoice.Describe().TolerateUpstreamGaps)
}

func TestDecodeRecords(t *testing.T) {
	records, err := decodeRecords("test.tool", `[{"a": 1}, {"a": 2}]`)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = decodeRecords("test.tool", `not-json`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.tool")
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "first", firstLine("first\nsecond"))
	assert.Equal(t, "indented", firstLine("\n\n  indented  \nmore"))
	assert.Equal(t, "", firstLine("\n \n"))
}
