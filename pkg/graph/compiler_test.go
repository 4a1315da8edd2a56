package graph

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/pkg/workflow"
)

type stubAgent struct{ name string }

func (a stubAgent) Name() string { return a.name }
func (a stubAgent) Describe() workflow.Metadata {
	return workflow.Metadata{Name: a.name, Type: "test"}
}
func (a stubAgent) Execute(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
	return &workflow.StepOutcome{Status: workflow.StepCompleted}, nil
}

type countingMetrics struct {
	mu     sync.Mutex
	hits   int
	misses int
}

func (m *countingMetrics) RecordCacheHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits++
}

func (m *countingMetrics) RecordCacheMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
}

func testRegistry(t *testing.T, names ...string) *workflow.Registry {
	t.Helper()
	reg := workflow.NewRegistry()
	for _, name := range names {
		require.NoError(t, reg.Register(stubAgent{name: name}))
	}
	return reg
}

func TestCompileLinearChain(t *testing.T) {
	reg := testRegistry(t, "planner", "invoice", "analysis")
	c := NewCompiler(reg, 16, nil)

	g, err := c.Compile(context.Background(), []string{"planner", "invoice", "analysis"}, TypeDefault, false)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"planner", "invoice", "analysis"}, g.Sequence())
	assert.False(t, g.HITL)
	for _, n := range g.Nodes {
		assert.False(t, n.InterruptBefore)
	}

	agent, ok := g.AgentAt(1)
	require.True(t, ok)
	assert.Equal(t, "invoice", agent)

	_, ok = g.AgentAt(3)
	assert.False(t, ok)
}

func TestCompileEmptySequence(t *testing.T) {
	c := NewCompiler(testRegistry(t, "planner"), 16, nil)

	_, err := c.Compile(context.Background(), nil, TypeDefault, false)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestCompileUnknownAgent(t *testing.T) {
	c := NewCompiler(testRegistry(t, "planner", "analysis"), 16, nil)

	_, err := c.Compile(context.Background(), []string{"planner", "payroll"}, TypeDefault, false)
	require.Error(t, err)

	var unknownErr *UnknownAgentError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "payroll", unknownErr.Agent)
}

func TestCompileDuplicateAgent(t *testing.T) {
	reg := testRegistry(t, "planner", "invoice", "analysis")

	c := NewCompiler(reg, 16, nil)
	_, err := c.Compile(context.Background(), []string{"planner", "invoice", "invoice"}, TypeDefault, false)
	assert.ErrorIs(t, err, ErrDuplicateAgent)

	relaxed := NewCompiler(reg, 16, nil, WithDuplicatesAllowed())
	g, err := relaxed.Compile(context.Background(), []string{"planner", "invoice", "invoice"}, TypeDefault, false)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
}

func TestCompileHITLInterrupts(t *testing.T) {
	reg := testRegistry(t, "planner", "invoice", "gmail", "analysis")
	c := NewCompiler(reg, 16, nil)

	g, err := c.Compile(context.Background(), []string{"planner", "invoice", "gmail", "analysis"}, TypeDefault, true)
	require.NoError(t, err)

	assert.True(t, g.HITL)
	assert.False(t, g.Nodes[0].InterruptBefore, "the first node never interrupts")
	for _, n := range g.Nodes[1:] {
		assert.True(t, n.InterruptBefore, "node %s should interrupt", n.Agent)
	}
}

func TestCompileHITLEnabledType(t *testing.T) {
	reg := testRegistry(t, "planner", "analysis")
	c := NewCompiler(reg, 16, nil)

	g, err := c.Compile(context.Background(), []string{"planner", "analysis"}, TypeHITLEnabled, false)
	require.NoError(t, err)

	assert.True(t, g.HITL, "hitl_enabled type forces interrupts")
	assert.True(t, g.Nodes[1].InterruptBefore)
}

func TestGraphIDDeterministic(t *testing.T) {
	seq := []string{"planner", "invoice", "analysis"}

	id1 := ID(seq, TypeDefault, false)
	id2 := ID(seq, TypeDefault, false)
	assert.Equal(t, id1, id2)
	assert.Len(t, id1, 64, "hex SHA-256")

	assert.NotEqual(t, id1, ID(seq, TypeAIDriven, false), "type changes identity")
	assert.NotEqual(t, id1, ID(seq, TypeDefault, true), "hitl changes identity")
	assert.NotEqual(t, id1, ID([]string{"planner", "analysis"}, TypeDefault, false))
}

func TestCompileCacheHit(t *testing.T) {
	reg := testRegistry(t, "planner", "invoice", "analysis")
	metrics := &countingMetrics{}
	c := NewCompiler(reg, 16, metrics)

	seq := []string{"planner", "invoice", "analysis"}
	first, err := c.Compile(context.Background(), seq, TypeDefault, false)
	require.NoError(t, err)
	second, err := c.Compile(context.Background(), seq, TypeDefault, false)
	require.NoError(t, err)

	assert.Same(t, first, second, "cache returns the shared graph")
	assert.Equal(t, 1, metrics.misses)
	assert.Equal(t, 1, metrics.hits)

	// A different hitl flag is a different graph.
	third, err := c.Compile(context.Background(), seq, TypeDefault, true)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, metrics.misses)
}

func TestCompileCacheBounded(t *testing.T) {
	names := []string{"planner", "a", "b", "c", "d", "analysis"}
	reg := testRegistry(t, names...)
	metrics := &countingMetrics{}
	c := NewCompiler(reg, 2, metrics)

	ctx := context.Background()
	seqs := [][]string{
		{"planner", "a"},
		{"planner", "b"},
		{"planner", "c"},
	}
	for _, seq := range seqs {
		_, err := c.Compile(ctx, seq, TypeDefault, false)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, c.CacheLen(), "cache never exceeds its bound")

	// The oldest entry was evicted; recompiling it is a miss.
	_, err := c.Compile(ctx, seqs[0], TypeDefault, false)
	require.NoError(t, err)
	assert.Equal(t, 4, metrics.misses)

	// The most recent entries are still cached.
	_, err = c.Compile(ctx, seqs[2], TypeDefault, false)
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.hits)
}

func TestCompileConcurrent(t *testing.T) {
	reg := testRegistry(t, "planner", "invoice", "gmail", "salesforce", "analysis")
	c := NewCompiler(reg, 8, &countingMetrics{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			seqs := [][]string{
				{"planner", "invoice", "analysis"},
				{"planner", "gmail", "analysis"},
				{"planner", "salesforce", "gmail", "analysis"},
			}
			for j := 0; j < 50; j++ {
				_, err := c.Compile(context.Background(), seqs[(n+j)%len(seqs)], TypeDefault, j%2 == 0)
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()
}

func TestUnknownAgentErrorMessage(t *testing.T) {
	err := &UnknownAgentError{Agent: "payroll"}
	assert.Contains(t, err.Error(), `"payroll"`)
	assert.True(t, errors.As(error(err), new(*UnknownAgentError)))
}
