package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerBoundsConcurrency(t *testing.T) {
	s := NewScheduler(2)
	defer s.Stop()

	var running, peak atomic.Int32
	release := make(chan struct{})
	var wg sync.WaitGroup

	deadline := time.Now().Add(time.Minute)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		wg.Add(1)
		err := s.Launch(id, deadline, func(ctx context.Context) {
			defer wg.Done()
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			<-release
			running.Add(-1)
		})
		require.NoError(t, err)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(2), "pool must never exceed its size")
}

func TestSchedulerRejectsDuplicatePlan(t *testing.T) {
	s := NewScheduler(1)
	defer s.Stop()

	block := make(chan struct{})
	deadline := time.Now().Add(time.Minute)
	require.NoError(t, s.Launch("plan-1", deadline, func(ctx context.Context) { <-block }))

	err := s.Launch("plan-1", deadline, func(ctx context.Context) {})
	require.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Equal(t, 1, s.ActiveCount())

	close(block)
}

func TestSchedulerCancelStopsRunningPlan(t *testing.T) {
	s := NewScheduler(1)
	defer s.Stop()

	observed := make(chan error, 1)
	require.NoError(t, s.Launch("plan-1", time.Now().Add(time.Minute), func(ctx context.Context) {
		<-ctx.Done()
		observed <- ctx.Err()
	}))

	require.True(t, s.Cancel("plan-1"))
	select {
	case err := <-observed:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled plan never observed its context")
	}

	assert.False(t, s.Cancel("unknown"))
}

func TestSchedulerCancelWhileQueuedStillRuns(t *testing.T) {
	s := NewScheduler(1)
	defer s.Stop()

	block := make(chan struct{})
	deadline := time.Now().Add(time.Minute)
	require.NoError(t, s.Launch("occupier", deadline, func(ctx context.Context) { <-block }))

	ran := make(chan error, 1)
	require.NoError(t, s.Launch("queued", deadline, func(ctx context.Context) {
		ran <- ctx.Err()
	}))

	// The queued plan is cancellable before it ever gets a slot, and its fn
	// still runs (on a dead context) so terminal bookkeeping happens.
	require.True(t, s.Cancel("queued"))
	select {
	case err := <-ran:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("queued plan never ran after cancellation")
	}

	close(block)
}

func TestSchedulerDeadlineExpiresContext(t *testing.T) {
	s := NewScheduler(1)
	defer s.Stop()

	observed := make(chan error, 1)
	require.NoError(t, s.Launch("plan-1", time.Now().Add(20*time.Millisecond), func(ctx context.Context) {
		<-ctx.Done()
		observed <- ctx.Err()
	}))

	select {
	case err := <-observed:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("workflow deadline never fired")
	}
}

func TestSchedulerStopRejectsAndWaits(t *testing.T) {
	s := NewScheduler(2)

	finished := make(chan struct{})
	require.NoError(t, s.Launch("plan-1", time.Now().Add(time.Minute), func(ctx context.Context) {
		time.Sleep(50 * time.Millisecond)
		close(finished)
	}))

	s.Stop()
	select {
	case <-finished:
	default:
		t.Fatal("Stop returned before the in-flight plan finished")
	}

	err := s.Launch("plan-2", time.Now().Add(time.Minute), func(ctx context.Context) {})
	require.ErrorIs(t, err, ErrSchedulerStopped)
	assert.Zero(t, s.ActiveCount())
}
