package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextService_AppendAndSummary(t *testing.T) {
	svc := NewContextService()

	svc.Append("plan-1", "note", "submitted")
	svc.Append("plan-1", "note", "planning started")
	svc.RecordTransition("plan-1", "PLANNING", "AWAITING_PLAN_APPROVAL")

	summary := svc.Summary("plan-1")
	require.NotNil(t, summary)
	assert.Equal(t, "plan-1", summary.PlanID)
	assert.Equal(t, 2, summary.EventCounts["note"])
	assert.Equal(t, 1, summary.EventCounts["transition"])
	assert.Equal(t, "AWAITING_PLAN_APPROVAL", summary.CurrentState)
	assert.False(t, summary.Terminal)
	assert.GreaterOrEqual(t, summary.WallClock, time.Duration(0))

	assert.Nil(t, svc.Summary("never-seen"), "unknown plans have no summary")
}

func TestContextService_RecordAgentDuration(t *testing.T) {
	svc := NewContextService()

	svc.RecordAgentDuration("plan-1", "invoice", 120*time.Millisecond)
	svc.RecordAgentDuration("plan-1", "invoice", 80*time.Millisecond)
	svc.RecordAgentDuration("plan-1", "gmail", 40*time.Millisecond)

	summary := svc.Summary("plan-1")
	require.NotNil(t, summary)
	assert.Equal(t, 200*time.Millisecond, summary.AgentDurations["invoice"])
	assert.Equal(t, 40*time.Millisecond, summary.AgentDurations["gmail"])
	assert.Equal(t, 3, summary.EventCounts["agent"])
}

func TestContextService_Recent(t *testing.T) {
	svc := NewContextService()

	for i := 1; i <= 5; i++ {
		svc.Append("plan-1", "note", fmt.Sprintf("event %d", i))
	}

	recent := svc.Recent("plan-1", 3)
	require.Len(t, recent, 3)
	assert.Equal(t, "event 3", recent[0].Detail)
	assert.Equal(t, "event 5", recent[2].Detail)

	all := svc.Recent("plan-1", 100)
	assert.Len(t, all, 5)

	assert.Nil(t, svc.Recent("plan-1", 0))
	assert.Nil(t, svc.Recent("never-seen", 3))
}

func TestContextService_BoundedLog(t *testing.T) {
	svc := NewContextService()

	for i := 0; i < maxContextEvents+10; i++ {
		svc.Append("plan-1", "note", fmt.Sprintf("event %d", i))
	}

	all := svc.Recent("plan-1", maxContextEvents*2)
	require.Len(t, all, maxContextEvents)
	assert.Equal(t, "event 10", all[0].Detail, "oldest entries dropped first")
}

func TestContextService_MarkTerminal(t *testing.T) {
	svc := NewContextService()

	svc.Append("plan-1", "note", "running")
	svc.MarkTerminal("plan-1")

	first := svc.Summary("plan-1")
	require.NotNil(t, first)
	assert.True(t, first.Terminal)

	time.Sleep(10 * time.Millisecond)
	second := svc.Summary("plan-1")
	assert.Equal(t, first.WallClock, second.WallClock, "wall clock freezes at terminal")

	// Marking again keeps the original terminal time.
	svc.MarkTerminal("plan-1")
	third := svc.Summary("plan-1")
	assert.Equal(t, first.WallClock, third.WallClock)

	// Marking a plan that never logged anything is a no-op.
	svc.MarkTerminal("never-seen")
	assert.Nil(t, svc.Summary("never-seen"))
}

func TestContextService_Sweep(t *testing.T) {
	svc := NewContextService()

	svc.Append("done", "note", "finished long ago")
	svc.MarkTerminal("done")
	svc.Append("live", "note", "still running")
	svc.Append("fresh", "note", "just finished")
	svc.MarkTerminal("fresh")

	// Only logs terminal for longer than maxAge are removed; a zero maxAge
	// expires every terminal log immediately.
	time.Sleep(5 * time.Millisecond)
	removed := svc.Sweep(time.Hour)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 3, svc.Len())

	removed = svc.Sweep(0)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, svc.Len())
	assert.NotNil(t, svc.Summary("live"), "live workflows survive the sweep")
	assert.Nil(t, svc.Summary("done"))
}

func TestContextService_Reset(t *testing.T) {
	svc := NewContextService()

	svc.Append("plan-1", "note", "one")
	svc.Append("plan-2", "note", "two")
	require.Equal(t, 2, svc.Len())

	svc.Reset()
	assert.Equal(t, 0, svc.Len())
	assert.Nil(t, svc.Summary("plan-1"))
}
