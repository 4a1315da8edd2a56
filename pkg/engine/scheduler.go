package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Scheduler runs workflow passes on a bounded pool of slots. Each plan gets
// at most one live slot at a time; its context carries the workflow
// wall-clock deadline and is cancelled by Cancel, so a queued plan can be
// cancelled before it ever acquires a slot.
type Scheduler struct {
	slots chan struct{}

	mu      sync.Mutex
	active  map[string]context.CancelFunc
	stopped bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler with poolSize concurrent slots.
func NewScheduler(poolSize int) *Scheduler {
	if poolSize <= 0 {
		poolSize = 1
	}
	return &Scheduler{
		slots:  make(chan struct{}, poolSize),
		active: make(map[string]context.CancelFunc),
		stopCh: make(chan struct{}),
	}
}

// Launch registers the plan and runs fn on the next free slot. The context
// passed to fn expires at deadline. The plan is registered before the slot
// wait so Cancel works on queued plans; when the context dies while still
// queued, fn runs anyway on an expired context so it can record the
// cancellation and release its approval state.
func (s *Scheduler) Launch(planID string, deadline time.Time, fn func(ctx context.Context)) error {
	ctx, cancel := context.WithDeadline(context.Background(), deadline)

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		cancel()
		return ErrSchedulerStopped
	}
	if _, ok := s.active[planID]; ok {
		s.mu.Unlock()
		cancel()
		return fmt.Errorf("%w: %s", ErrAlreadyRunning, planID)
	}
	s.active[planID] = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer cancel()
		defer s.unregister(planID)

		acquired := false
		select {
		case s.slots <- struct{}{}:
			acquired = true
		case <-ctx.Done():
			// Cancelled or timed out while queued; fn still runs so the
			// workflow lands in a terminal state.
		case <-s.stopCh:
			slog.Warn("Dropping queued workflow on shutdown", "plan_id", planID)
			return
		}
		if acquired {
			defer func() { <-s.slots }()
		}

		fn(ctx)
	}()
	return nil
}

// Cancel cancels a queued or executing plan. Returns false when the plan has
// no live slot.
func (s *Scheduler) Cancel(planID string) bool {
	s.mu.Lock()
	cancel, ok := s.active[planID]
	s.mu.Unlock()
	if !ok {
		return false
	}
	cancel()
	return true
}

// ActiveCount returns the number of registered plans (queued or executing).
func (s *Scheduler) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Stop rejects new launches and waits for in-flight workflow passes to
// finish. Queued plans that have not started yet are dropped; orphan
// recovery picks them up on the next boot.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
		close(s.stopCh)
	})
	s.wg.Wait()
}

func (s *Scheduler) unregister(planID string) {
	s.mu.Lock()
	delete(s.active, planID)
	s.mu.Unlock()
}
