package services

import (
	"fmt"
	"sync"
	"time"
)

// maxContextEvents bounds each plan's in-memory log; the oldest entries are
// dropped first.
const maxContextEvents = 512

// ContextEvent is one entry of a workflow's diagnostic narrative.
type ContextEvent struct {
	Kind   string    `json:"kind"`
	Detail string    `json:"detail"`
	At     time.Time `json:"at"`
}

// ContextSummary condenses one workflow's context log.
type ContextSummary struct {
	PlanID         string                   `json:"plan_id"`
	EventCounts    map[string]int           `json:"event_counts"`
	AgentDurations map[string]time.Duration `json:"agent_durations"`
	WallClock      time.Duration            `json:"wall_clock"`
	CurrentState   string                   `json:"current_state,omitempty"`
	Terminal       bool                     `json:"terminal"`
}

// contextLog is the per-plan event buffer.
type contextLog struct {
	mu         sync.Mutex
	events     []ContextEvent
	durations  map[string]time.Duration
	startedAt  time.Time
	lastState  string
	terminalAt time.Time // zero while the workflow is live
}

func (l *contextLog) append(kind, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, ContextEvent{Kind: kind, Detail: detail, At: time.Now()})
	if len(l.events) > maxContextEvents {
		l.events = l.events[len(l.events)-maxContextEvents:]
	}
}

// ContextService keeps an in-memory, append-only diagnostic log per workflow.
// It is a debugging narrative beside the durable conversation, never a source
// of truth; logs for long-terminal workflows are swept to keep memory flat.
type ContextService struct {
	mu   sync.RWMutex
	logs map[string]*contextLog
}

// NewContextService creates an empty context service
func NewContextService() *ContextService {
	return &ContextService{logs: make(map[string]*contextLog)}
}

func (s *ContextService) log(planID string, create bool) *contextLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.logs[planID]
	if !ok && create {
		l = &contextLog{
			durations: make(map[string]time.Duration),
			startedAt: time.Now(),
		}
		s.logs[planID] = l
	}
	return l
}

// Append records one diagnostic event for a plan
func (s *ContextService) Append(planID, kind, detail string) {
	s.log(planID, true).append(kind, detail)
}

// RecordTransition records an approval state change
func (s *ContextService) RecordTransition(planID, from, to string) {
	l := s.log(planID, true)
	l.append("transition", fmt.Sprintf("%s -> %s", from, to))
	l.mu.Lock()
	l.lastState = to
	l.mu.Unlock()
}

// RecordAgentDuration accumulates execution time per agent
func (s *ContextService) RecordAgentDuration(planID, agent string, d time.Duration) {
	l := s.log(planID, true)
	l.append("agent", fmt.Sprintf("%s ran for %s", agent, d.Round(time.Millisecond)))
	l.mu.Lock()
	l.durations[agent] += d
	l.mu.Unlock()
}

// MarkTerminal flags a plan's log as finished, starting its sweep clock
func (s *ContextService) MarkTerminal(planID string) {
	l := s.log(planID, false)
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.terminalAt.IsZero() {
		l.terminalAt = time.Now()
	}
}

// Summary condenses a plan's log, or nil if the plan has no log
func (s *ContextService) Summary(planID string) *ContextSummary {
	l := s.log(planID, false)
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	counts := make(map[string]int, 4)
	for _, e := range l.events {
		counts[e.Kind]++
	}
	durations := make(map[string]time.Duration, len(l.durations))
	for agent, d := range l.durations {
		durations[agent] = d
	}

	wall := time.Since(l.startedAt)
	if !l.terminalAt.IsZero() {
		wall = l.terminalAt.Sub(l.startedAt)
	}

	return &ContextSummary{
		PlanID:         planID,
		EventCounts:    counts,
		AgentDurations: durations,
		WallClock:      wall,
		CurrentState:   l.lastState,
		Terminal:       !l.terminalAt.IsZero(),
	}
}

// Recent returns the newest n events for a plan, oldest first
func (s *ContextService) Recent(planID string, n int) []ContextEvent {
	l := s.log(planID, false)
	if l == nil || n <= 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	start := len(l.events) - n
	if start < 0 {
		start = 0
	}
	out := make([]ContextEvent, len(l.events)-start)
	copy(out, l.events[start:])
	return out
}

// Sweep removes logs for workflows that have been terminal longer than
// maxAge. Returns the number of logs removed.
func (s *ContextService) Sweep(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for planID, l := range s.logs {
		l.mu.Lock()
		expired := !l.terminalAt.IsZero() && l.terminalAt.Before(cutoff)
		l.mu.Unlock()
		if expired {
			delete(s.logs, planID)
			removed++
		}
	}
	return removed
}

// Len returns the number of plans with live logs
func (s *ContextService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs)
}

// Reset drops every log. Test helper.
func (s *ContextService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = make(map[string]*contextLog)
}
