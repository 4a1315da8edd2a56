// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/finovant/macaw/pkg/config"
)

// PlanRetirer soft-deletes terminal plans past the retention window.
// Satisfied by services.PlanService.
type PlanRetirer interface {
	SoftDeleteOldPlans(ctx context.Context, retentionDays int) (int, error)
}

// EventPruner removes durable event rows past their TTL. Satisfied by
// services.EventService.
type EventPruner interface {
	DeleteOlderThan(ctx context.Context, ttl time.Duration) (int, error)
}

// ContextSweeper drops stale in-memory context logs. Satisfied by
// services.ContextService.
type ContextSweeper interface {
	Sweep(maxAge time.Duration) int
}

// StallSweeper times out approval records stuck at a checkpoint. Satisfied by
// engine.Engine.
type StallSweeper interface {
	SweepStalled() int
}

// Service periodically enforces retention policies:
//   - Soft-deletes terminal plans past the retention window
//   - Removes durable Event rows past their TTL
//   - Drops stale in-memory context logs
//   - Times out workflows abandoned at an approval checkpoint
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config   *config.RetentionConfig
	plans    PlanRetirer
	events   EventPruner
	contexts ContextSweeper
	stalls   StallSweeper

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. Contexts and stalls may be nil;
// the matching sweeps are skipped.
func NewService(cfg *config.RetentionConfig, plans PlanRetirer, events EventPruner, contexts ContextSweeper, stalls StallSweeper) *Service {
	return &Service{
		config:   cfg,
		plans:    plans,
		events:   events,
		contexts: contexts,
		stalls:   stalls,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"plan_retention_days", s.config.PlanRetentionDays,
		"event_ttl", s.config.EventTTL,
		"context_gc", s.config.ContextGC,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.retireOldPlans(ctx)
	s.pruneOldEvents(ctx)
	s.sweepContexts()
	s.sweepStalled()
}

func (s *Service) retireOldPlans(_ context.Context) {
	count, err := s.plans.SoftDeleteOldPlans(context.Background(), s.config.PlanRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete plans failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old plans", "count", count)
	}
}

func (s *Service) pruneOldEvents(_ context.Context) {
	count, err := s.events.DeleteOlderThan(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up old events", "count", count)
	}
}

func (s *Service) sweepContexts() {
	if s.contexts == nil {
		return
	}
	if count := s.contexts.Sweep(s.config.ContextGC); count > 0 {
		slog.Info("Retention: dropped stale context logs", "count", count)
	}
}

func (s *Service) sweepStalled() {
	if s.stalls == nil {
		return
	}
	if count := s.stalls.SweepStalled(); count > 0 {
		slog.Info("Retention: timed out stalled workflows", "count", count)
	}
}
