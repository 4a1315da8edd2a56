package monitor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingOverwritesOldest(t *testing.T) {
	r := newRing(3)
	r.add(1 * time.Millisecond)
	r.add(2 * time.Millisecond)

	snap := r.snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, 1*time.Millisecond, snap[0])
	assert.Equal(t, 2*time.Millisecond, snap[1])

	r.add(3 * time.Millisecond)
	r.add(4 * time.Millisecond)

	snap = r.snapshot()
	require.Len(t, snap, 3)
	// Oldest sample (1ms) was overwritten; order is oldest-first.
	assert.Equal(t, []time.Duration{2 * time.Millisecond, 3 * time.Millisecond, 4 * time.Millisecond}, snap)
}

func TestObserveAgentExecution(t *testing.T) {
	m := New()

	m.ObserveAgentExecution("invoice", 100*time.Millisecond, true)
	m.ObserveAgentExecution("invoice", 200*time.Millisecond, true)
	m.ObserveAgentExecution("invoice", 300*time.Millisecond, false)
	m.ObserveAgentExecution("gmail", 50*time.Millisecond, true)

	snap := m.Stats()
	require.Contains(t, snap.Agents, "invoice")
	require.Contains(t, snap.Agents, "gmail")

	inv := snap.Agents["invoice"]
	assert.Equal(t, 3, inv.Count)
	assert.Equal(t, 2, inv.Successes)
	assert.Equal(t, 1, inv.Failures)
	assert.Equal(t, 100*time.Millisecond, inv.Min)
	assert.Equal(t, 300*time.Millisecond, inv.Max)
	assert.Equal(t, 200*time.Millisecond, inv.Mean)

	gm := snap.Agents["gmail"]
	assert.Equal(t, 1, gm.Count)
	assert.Equal(t, 1, gm.Successes)
	assert.Equal(t, 0, gm.Failures)
}

func TestStatsEmpty(t *testing.T) {
	m := New()
	snap := m.Stats()

	assert.Empty(t, snap.Agents)
	assert.Equal(t, 0, snap.Compile.Count)
	assert.Equal(t, 0, snap.Workflow.Count)
	assert.Zero(t, snap.CacheHitRate)
}

func TestP95(t *testing.T) {
	m := NewWithCapacity(200)
	for i := 1; i <= 100; i++ {
		m.ObserveCompile(time.Duration(i) * time.Millisecond)
	}

	snap := m.Stats()
	assert.Equal(t, 100, snap.Compile.Count)
	assert.Equal(t, 1*time.Millisecond, snap.Compile.Min)
	assert.Equal(t, 100*time.Millisecond, snap.Compile.Max)
	assert.Equal(t, 95*time.Millisecond, snap.Compile.P95)
}

func TestP95SingleSample(t *testing.T) {
	m := New()
	m.ObserveWorkflow(42 * time.Millisecond)

	snap := m.Stats()
	assert.Equal(t, 42*time.Millisecond, snap.Workflow.P95)
	assert.Equal(t, 42*time.Millisecond, snap.Workflow.Mean)
}

func TestSampleCapacityBounds(t *testing.T) {
	m := NewWithCapacity(10)
	for i := 0; i < 1000; i++ {
		m.ObserveWorkflow(time.Duration(i) * time.Millisecond)
	}

	snap := m.Stats()
	assert.Equal(t, 10, snap.Workflow.Count)
	// Only the most recent 10 samples survive.
	assert.Equal(t, 990*time.Millisecond, snap.Workflow.Min)
	assert.Equal(t, 999*time.Millisecond, snap.Workflow.Max)
}

func TestCacheHitRate(t *testing.T) {
	m := New()
	m.RecordCacheHit()
	m.RecordCacheHit()
	m.RecordCacheHit()
	m.RecordCacheMiss()

	snap := m.Stats()
	assert.Equal(t, int64(3), snap.CacheHits)
	assert.Equal(t, int64(1), snap.CacheMiss)
	assert.InDelta(t, 0.75, snap.CacheHitRate, 0.001)
}

func TestCounters(t *testing.T) {
	m := New()
	m.RecordPlanStarted()
	m.RecordPlanStarted()
	m.RecordPlanCompleted()
	m.RecordPlanFailed()
	m.RecordMessagePersisted()
	m.RecordMessagePersisted()
	m.RecordMessagePersisted()

	snap := m.Stats()
	assert.Equal(t, int64(2), snap.PlansStarted)
	assert.Equal(t, int64(1), snap.PlansCompleted)
	assert.Equal(t, int64(1), snap.PlansFailed)
	assert.Equal(t, int64(3), snap.MessagesPersisted)
}

func TestReset(t *testing.T) {
	m := New()
	m.ObserveAgentExecution("invoice", time.Second, true)
	m.RecordCacheHit()
	m.RecordPlanStarted()

	m.Reset()

	snap := m.Stats()
	assert.Empty(t, snap.Agents)
	assert.Zero(t, snap.CacheHits)
	assert.Zero(t, snap.PlansStarted)
}

func TestConcurrentAccess(t *testing.T) {
	m := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.ObserveAgentExecution("analysis", time.Millisecond, true)
				m.RecordCacheHit()
				m.RecordMessagePersisted()
				_ = m.Stats()
			}
		}()
	}
	wg.Wait()

	snap := m.Stats()
	assert.Equal(t, int64(800), snap.CacheHits)
	assert.Equal(t, int64(800), snap.MessagesPersisted)
	assert.Equal(t, 800, snap.Agents["analysis"].Successes)
}

func TestStartStop(t *testing.T) {
	m := New()
	m.ObserveWorkflow(time.Second)

	m.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	m.Stop()
	m.Stop() // second call returns immediately

	snap := m.Stats()
	assert.Equal(t, 1, snap.Workflow.Count)
}
