// Package monitor collects lightweight in-process performance metrics:
// bounded duration samples per metric family plus counters, with a periodic
// summary logged for operators. No external metrics backend is involved.
package monitor

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// DefaultSampleCapacity is the per-family ring buffer size. Old samples are
// overwritten; memory stays flat regardless of uptime.
const DefaultSampleCapacity = 256

// ring is a fixed-capacity overwrite-oldest sample buffer.
type ring struct {
	samples []time.Duration
	next    int
	filled  bool
}

func newRing(capacity int) *ring {
	return &ring{samples: make([]time.Duration, capacity)}
}

func (r *ring) add(d time.Duration) {
	r.samples[r.next] = d
	r.next++
	if r.next == len(r.samples) {
		r.next = 0
		r.filled = true
	}
}

func (r *ring) snapshot() []time.Duration {
	n := r.next
	if r.filled {
		n = len(r.samples)
	}
	out := make([]time.Duration, n)
	if r.filled {
		copy(out, r.samples[r.next:])
		copy(out[len(r.samples)-r.next:], r.samples[:r.next])
	} else {
		copy(out, r.samples[:n])
	}
	return out
}

// FamilyStats summarizes one metric family's recent samples.
type FamilyStats struct {
	Count int           `json:"count"`
	Min   time.Duration `json:"min"`
	Max   time.Duration `json:"max"`
	Mean  time.Duration `json:"mean"`
	P95   time.Duration `json:"p95"`
}

// AgentStats extends FamilyStats with success/failure counts.
type AgentStats struct {
	FamilyStats
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

// Snapshot is a point-in-time view of all collected metrics.
type Snapshot struct {
	Agents    map[string]AgentStats `json:"agents"`
	Compile   FamilyStats           `json:"compile"`
	Workflow  FamilyStats           `json:"workflow"`
	CacheHits int64                 `json:"cache_hits"`
	CacheMiss int64                 `json:"cache_misses"`
	// CacheHitRate is hits/(hits+misses), 0 when the cache is untouched.
	CacheHitRate      float64 `json:"cache_hit_rate"`
	PlansStarted      int64   `json:"plans_started"`
	PlansCompleted    int64   `json:"plans_completed"`
	PlansFailed       int64   `json:"plans_failed"`
	MessagesPersisted int64   `json:"messages_persisted"`
}

// agentRecord is one agent's sample buffer plus outcome counters.
type agentRecord struct {
	durations *ring
	successes int
	failures  int
}

// Monitor collects metrics. All methods are safe for concurrent use.
type Monitor struct {
	mu       sync.Mutex
	capacity int
	agents   map[string]*agentRecord
	compile  *ring
	workflow *ring

	cacheHits         int64
	cacheMiss         int64
	plansStarted      int64
	plansCompleted    int64
	plansFailed       int64
	messagesPersisted int64

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a Monitor with the default sample capacity.
func New() *Monitor {
	return NewWithCapacity(DefaultSampleCapacity)
}

// NewWithCapacity creates a Monitor with a custom per-family sample capacity.
func NewWithCapacity(capacity int) *Monitor {
	if capacity < 1 {
		capacity = 1
	}
	return &Monitor{
		capacity: capacity,
		agents:   make(map[string]*agentRecord),
		compile:  newRing(capacity),
		workflow: newRing(capacity),
	}
}

// ObserveAgentExecution records one agent step's duration and outcome.
func (m *Monitor) ObserveAgentExecution(agent string, d time.Duration, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.agents[agent]
	if !ok {
		rec = &agentRecord{durations: newRing(m.capacity)}
		m.agents[agent] = rec
	}
	rec.durations.add(d)
	if success {
		rec.successes++
	} else {
		rec.failures++
	}
}

// ObserveCompile records one graph compilation duration.
func (m *Monitor) ObserveCompile(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.compile.add(d)
}

// ObserveWorkflow records one workflow's end-to-end duration.
func (m *Monitor) ObserveWorkflow(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workflow.add(d)
}

// RecordCacheHit increments the compile cache hit counter.
func (m *Monitor) RecordCacheHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

// RecordCacheMiss increments the compile cache miss counter.
func (m *Monitor) RecordCacheMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMiss++
}

// RecordPlanStarted increments the started-plans counter.
func (m *Monitor) RecordPlanStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plansStarted++
}

// RecordPlanCompleted increments the completed-plans counter.
func (m *Monitor) RecordPlanCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plansCompleted++
}

// RecordPlanFailed increments the failed-plans counter.
func (m *Monitor) RecordPlanFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plansFailed++
}

// RecordMessagePersisted increments the persisted-messages counter.
func (m *Monitor) RecordMessagePersisted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messagesPersisted++
}

// Stats returns a point-in-time snapshot of all metrics.
func (m *Monitor) Stats() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Agents:            make(map[string]AgentStats, len(m.agents)),
		Compile:           summarize(m.compile.snapshot()),
		Workflow:          summarize(m.workflow.snapshot()),
		CacheHits:         m.cacheHits,
		CacheMiss:         m.cacheMiss,
		PlansStarted:      m.plansStarted,
		PlansCompleted:    m.plansCompleted,
		PlansFailed:       m.plansFailed,
		MessagesPersisted: m.messagesPersisted,
	}
	if total := m.cacheHits + m.cacheMiss; total > 0 {
		snap.CacheHitRate = float64(m.cacheHits) / float64(total)
	}
	for agent, rec := range m.agents {
		snap.Agents[agent] = AgentStats{
			FamilyStats: summarize(rec.durations.snapshot()),
			Successes:   rec.successes,
			Failures:    rec.failures,
		}
	}
	return snap
}

// Reset clears all samples and counters.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.agents = make(map[string]*agentRecord)
	m.compile = newRing(m.capacity)
	m.workflow = newRing(m.capacity)
	m.cacheHits = 0
	m.cacheMiss = 0
	m.plansStarted = 0
	m.plansCompleted = 0
	m.plansFailed = 0
	m.messagesPersisted = 0
}

// Start launches the periodic summary log loop.
func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go m.run(ctx, interval)

	slog.Info("Performance monitor started", "summary_interval", interval)
}

// Stop signals the summary loop to exit and waits for it to finish.
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	slog.Info("Performance monitor stopped")
}

func (m *Monitor) run(ctx context.Context, interval time.Duration) {
	defer close(m.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.logSummary()
		}
	}
}

func (m *Monitor) logSummary() {
	snap := m.Stats()
	slog.Info("Performance summary",
		"plans_started", snap.PlansStarted,
		"plans_completed", snap.PlansCompleted,
		"plans_failed", snap.PlansFailed,
		"messages_persisted", snap.MessagesPersisted,
		"cache_hit_rate", snap.CacheHitRate,
		"workflow_p95", snap.Workflow.P95,
		"compile_p95", snap.Compile.P95,
		"agents_tracked", len(snap.Agents))
}

func summarize(samples []time.Duration) FamilyStats {
	stats := FamilyStats{Count: len(samples)}
	if len(samples) == 0 {
		return stats
	}

	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}

	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.Mean = sum / time.Duration(len(sorted))
	idx := (len(sorted)*95 + 99) / 100
	if idx > 0 {
		idx--
	}
	stats.P95 = sorted[idx]
	return stats
}
