package cleanup

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/pkg/config"
	"github.com/finovant/macaw/pkg/models"
	"github.com/finovant/macaw/pkg/services"
	testdb "github.com/finovant/macaw/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		PlanRetentionDays: 365,
		EventTTL:          1 * time.Hour,
		ContextGC:         24 * time.Hour,
		CleanupInterval:   1 * time.Hour,
	}
}

func TestService_SoftDeletesOldTerminalPlans(t *testing.T) {
	client := testdb.NewTestClient(t)
	planService := services.NewPlanService(client.Client)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	p, err := planService.CreatePlan(ctx, models.CreatePlanRequest{
		SessionID:       uuid.New().String(),
		TaskDescription: "review aged receivables",
	})
	require.NoError(t, err)

	err = client.Plan.UpdateOneID(p.ID).
		SetStatus(plan.StatusCompleted).
		SetCompletedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), planService, eventService, nil, nil)
	svc.runAll(ctx)

	updated, err := planService.GetPlan(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, updated.DeletedAt)
}

func TestService_PreservesRecentPlans(t *testing.T) {
	client := testdb.NewTestClient(t)
	planService := services.NewPlanService(client.Client)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	p, err := planService.CreatePlan(ctx, models.CreatePlanRequest{
		SessionID:       uuid.New().String(),
		TaskDescription: "summarize the shared inbox",
	})
	require.NoError(t, err)

	err = client.Plan.UpdateOneID(p.ID).
		SetStatus(plan.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), planService, eventService, nil, nil)
	svc.runAll(ctx)

	updated, err := planService.GetPlan(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.DeletedAt)
}

func TestService_PrunesOldEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	planService := services.NewPlanService(client.Client)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	p, err := planService.CreatePlan(ctx, models.CreatePlanRequest{
		SessionID:       uuid.New().String(),
		TaskDescription: "track overdue payments",
	})
	require.NoError(t, err)

	_, err = client.Event.Create().
		SetPlanID(p.ID).
		SetChannel("plan:" + p.ID).
		SetPayload("{}").
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Event.Create().
		SetPlanID(p.ID).
		SetChannel("plan:" + p.ID).
		SetPayload("{}").
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), planService, eventService, nil, nil)
	svc.runAll(ctx)

	events, err := eventService.GetEventsSince(ctx, "plan:"+p.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "old event should be deleted, recent event preserved")
}

type countingSweeper struct {
	contexts atomic.Int64
	stalls   atomic.Int64
}

func (c *countingSweeper) Sweep(time.Duration) int {
	c.contexts.Add(1)
	return 0
}

func (c *countingSweeper) SweepStalled() int {
	c.stalls.Add(1)
	return 0
}

type noopRetirer struct{}

func (noopRetirer) SoftDeleteOldPlans(context.Context, int) (int, error) { return 0, nil }

type noopPruner struct{}

func (noopPruner) DeleteOlderThan(context.Context, time.Duration) (int, error) { return 0, nil }

func TestService_LoopRunsAllSweeps(t *testing.T) {
	sweeper := &countingSweeper{}
	cfg := retentionConfig()
	cfg.CleanupInterval = 10 * time.Millisecond

	svc := NewService(cfg, noopRetirer{}, noopPruner{}, sweeper, sweeper)
	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return sweeper.contexts.Load() >= 2 && sweeper.stalls.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond, "cleanup should run immediately and again on the ticker")
}

func TestService_StopIsIdempotent(t *testing.T) {
	svc := NewService(retentionConfig(), noopRetirer{}, noopPruner{}, nil, nil)
	svc.Stop() // never started

	svc.Start(context.Background())
	svc.Start(context.Background()) // second start is a no-op
	svc.Stop()
}
