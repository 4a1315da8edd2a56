package services

import (
	"context"
	"testing"
	"time"

	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/ent/planstep"
	"github.com/finovant/macaw/pkg/models"
	testdb "github.com/finovant/macaw/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanService_CreatePlan(t *testing.T) {
	client := testdb.NewTestClient(t)
	planService := NewPlanService(client.Client)
	ctx := context.Background()

	t.Run("creates plan with defaults", func(t *testing.T) {
		p, err := planService.CreatePlan(ctx, models.CreatePlanRequest{
			SessionID:       "session-1",
			TaskDescription: "Check invoice payment status",
			RequireApproval: true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "session-1", p.SessionID)
		assert.Equal(t, plan.StatusPending, p.Status)
		assert.True(t, p.RequireApproval)
		assert.Nil(t, p.StartedAt)
	})

	t.Run("generates session id when missing", func(t *testing.T) {
		p, err := planService.CreatePlan(ctx, models.CreatePlanRequest{
			TaskDescription: "Review overdue payments",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, p.SessionID)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := planService.CreatePlan(ctx, models.CreatePlanRequest{SessionID: "session-1"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("records restart lineage", func(t *testing.T) {
		p, err := planService.CreatePlan(ctx, models.CreatePlanRequest{
			TaskDescription: "Check invoice payment status",
			RestartedFrom:   "plan-original",
		})
		require.NoError(t, err)
		require.NotNil(t, p.RestartedFrom)
		assert.Equal(t, "plan-original", *p.RestartedFrom)
	})
}

func TestPlanService_GetPlan(t *testing.T) {
	client := testdb.NewTestClient(t)
	planService := NewPlanService(client.Client)
	ctx := context.Background()

	created := createTestPlan(t, client, "Check invoice payment status")

	t.Run("gets existing plan", func(t *testing.T) {
		p, err := planService.GetPlan(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, p.ID)
	})

	t.Run("returns ErrNotFound for unknown plan", func(t *testing.T) {
		_, err := planService.GetPlan(ctx, "plan-missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPlanService_ListPlans(t *testing.T) {
	client := testdb.NewTestClient(t)
	planService := NewPlanService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := planService.CreatePlan(ctx, models.CreatePlanRequest{
			SessionID:       "session-list",
			TaskDescription: "Review customer account",
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond) // distinct created_at for ordering
	}
	_, err := planService.CreatePlan(ctx, models.CreatePlanRequest{
		SessionID:       "session-other",
		TaskDescription: "Review mailbox",
	})
	require.NoError(t, err)

	t.Run("filters by session", func(t *testing.T) {
		resp, err := planService.ListPlans(ctx, models.PlanFilters{SessionID: "session-list"})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Plans, 3)
	})

	t.Run("orders newest first", func(t *testing.T) {
		resp, err := planService.ListPlans(ctx, models.PlanFilters{SessionID: "session-list"})
		require.NoError(t, err)
		require.Len(t, resp.Plans, 3)
		assert.True(t, !resp.Plans[0].CreatedAt.Before(resp.Plans[1].CreatedAt))
	})

	t.Run("paginates", func(t *testing.T) {
		resp, err := planService.ListPlans(ctx, models.PlanFilters{SessionID: "session-list", Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Plans, 2)

		resp, err = planService.ListPlans(ctx, models.PlanFilters{SessionID: "session-list", Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, resp.Plans, 1)
	})
}

func TestPlanService_SetStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	planService := NewPlanService(client.Client)
	ctx := context.Background()

	t.Run("stamps started_at once", func(t *testing.T) {
		p := createTestPlan(t, client, "Check invoice payment status")

		require.NoError(t, planService.SetStatus(ctx, p.ID, plan.StatusInProgress, ""))
		first, err := planService.GetPlan(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, first.StartedAt)

		time.Sleep(10 * time.Millisecond)
		require.NoError(t, planService.SetStatus(ctx, p.ID, plan.StatusInProgress, ""))
		second, err := planService.GetPlan(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, first.StartedAt.Equal(*second.StartedAt), "resume must keep the original start")
	})

	t.Run("stamps completed_at on terminal status", func(t *testing.T) {
		p := createTestPlan(t, client, "Check invoice payment status")

		require.NoError(t, planService.SetStatus(ctx, p.ID, plan.StatusFailed, "gateway unreachable"))
		failed, err := planService.GetPlan(ctx, p.ID)
		require.NoError(t, err)
		assert.NotNil(t, failed.CompletedAt)
		require.NotNil(t, failed.ErrorMessage)
		assert.Equal(t, "gateway unreachable", *failed.ErrorMessage)
	})

	t.Run("returns ErrNotFound for unknown plan", func(t *testing.T) {
		err := planService.SetStatus(ctx, "plan-missing", plan.StatusCompleted, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPlanService_SetPlanned(t *testing.T) {
	client := testdb.NewTestClient(t)
	planService := NewPlanService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Check invoice payment status")

	err := planService.SetPlanned(ctx, p.ID, models.PlannedUpdate{
		Sequence:   []string{"planner", "invoice", "analysis"},
		GraphType:  "default",
		GraphID:    "abc123",
		Summary:    "Invoice verification",
		Complexity: 0.4,
		Source:     "template",
	})
	require.NoError(t, err)

	updated, err := planService.GetPlan(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"planner", "invoice", "analysis"}, updated.AgentSequence)
	assert.Equal(t, "default", updated.GraphType)
	require.NotNil(t, updated.GraphID)
	assert.Equal(t, "abc123", *updated.GraphID)
	require.NotNil(t, updated.PlanSummary)
	assert.Equal(t, "Invoice verification", *updated.PlanSummary)
	assert.InDelta(t, 0.4, updated.Complexity, 0.001)
	assert.Equal(t, "template", updated.PlanSource)
}

func TestPlanService_Steps(t *testing.T) {
	client := testdb.NewTestClient(t)
	planService := NewPlanService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Check invoice payment status")

	seeds := []models.StepSeed{
		{Index: 0, AgentName: "planner"},
		{Index: 1, AgentName: "invoice", InterruptBefore: true},
		{Index: 2, AgentName: "analysis", InterruptBefore: true},
	}
	steps, err := planService.SeedSteps(ctx, p.ID, seeds)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	t.Run("lists steps in graph order", func(t *testing.T) {
		listed, err := planService.ListSteps(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, "planner", listed[0].AgentName)
		assert.False(t, listed[0].InterruptBefore)
		assert.Equal(t, "invoice", listed[1].AgentName)
		assert.True(t, listed[1].InterruptBefore)
	})

	t.Run("start and complete update one step", func(t *testing.T) {
		require.NoError(t, planService.StartStep(ctx, p.ID, 0))
		require.NoError(t, planService.CompleteStep(ctx, p.ID, 0, "planned 3 agents", map[string]any{"agents": 3}))

		listed, err := planService.ListSteps(ctx, p.ID)
		require.NoError(t, err)
		step := listed[0]
		assert.Equal(t, planstep.StatusCompleted, step.Status)
		require.NotNil(t, step.Summary)
		assert.Equal(t, "planned 3 agents", *step.Summary)
		assert.NotNil(t, step.StartedAt)
		assert.NotNil(t, step.CompletedAt)
		assert.GreaterOrEqual(t, step.DurationMs, int64(0))
	})

	t.Run("fail step records error", func(t *testing.T) {
		require.NoError(t, planService.StartStep(ctx, p.ID, 1))
		require.NoError(t, planService.FailStep(ctx, p.ID, 1, "tool call failed"))

		listed, err := planService.ListSteps(ctx, p.ID)
		require.NoError(t, err)
		step := listed[1]
		assert.Equal(t, planstep.StatusFailed, step.Status)
		require.NotNil(t, step.ErrorMessage)
		assert.Equal(t, "tool call failed", *step.ErrorMessage)
	})

	t.Run("skip remaining pending steps", func(t *testing.T) {
		n, err := planService.SkipRemainingSteps(ctx, p.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "only the still-pending analysis step is skipped")

		listed, err := planService.ListSteps(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, planstep.StatusSkipped, listed[2].Status)
	})

	t.Run("reseed replaces steps", func(t *testing.T) {
		steps, err := planService.SeedSteps(ctx, p.ID, []models.StepSeed{
			{Index: 0, AgentName: "planner"},
			{Index: 1, AgentName: "gmail"},
		})
		require.NoError(t, err)
		assert.Len(t, steps, 2)

		listed, err := planService.ListSteps(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, "gmail", listed[1].AgentName)
	})

	t.Run("start unknown step fails", func(t *testing.T) {
		err := planService.StartStep(ctx, p.ID, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPlanService_GetDetail(t *testing.T) {
	client := testdb.NewTestClient(t)
	planService := NewPlanService(client.Client)
	messageService := NewMessageService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Check invoice payment status")
	_, err := planService.SeedSteps(ctx, p.ID, []models.StepSeed{{Index: 0, AgentName: "planner"}})
	require.NoError(t, err)
	_, err = messageService.Append(ctx, models.CreateMessageRequest{
		PlanID:    p.ID,
		AgentName: "planner",
		Kind:      "plan",
		Content:   "Proposed sequence: planner, invoice, analysis",
	})
	require.NoError(t, err)

	detail, err := planService.GetDetail(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, detail.Plan.ID)
	assert.Len(t, detail.Steps, 1)
	assert.Len(t, detail.Messages, 1)
}

func TestPlanService_RecoverOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	planService := NewPlanService(client.Client)
	ctx := context.Background()

	inProgress := createTestPlan(t, client, "Check invoice payment status")
	require.NoError(t, planService.SetStatus(ctx, inProgress.ID, plan.StatusInProgress, ""))
	pendingApproval := createTestPlan(t, client, "Review customer account")
	require.NoError(t, planService.SetStatus(ctx, pendingApproval.ID, plan.StatusPendingApproval, ""))
	done := createTestPlan(t, client, "Review mailbox")
	require.NoError(t, planService.SetStatus(ctx, done.ID, plan.StatusCompleted, ""))

	n, err := planService.RecoverOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	recovered, err := planService.GetPlan(ctx, inProgress.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.StatusFailed, recovered.Status)
	require.NotNil(t, recovered.ErrorMessage)
	assert.Equal(t, "orchestrator restarted during execution", *recovered.ErrorMessage)

	untouched, err := planService.GetPlan(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.StatusCompleted, untouched.Status)
}

func TestPlanService_SoftDeleteOldPlans(t *testing.T) {
	client := testdb.NewTestClient(t)
	planService := NewPlanService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Check invoice payment status")
	// Backdate completion past the retention window.
	old := time.Now().Add(-40 * 24 * time.Hour)
	err := client.Plan.UpdateOneID(p.ID).
		SetStatus(plan.StatusCompleted).
		SetCompletedAt(old).
		Exec(ctx)
	require.NoError(t, err)

	n, err := planService.SoftDeleteOldPlans(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	resp, err := planService.ListPlans(ctx, models.PlanFilters{SessionID: p.SessionID})
	require.NoError(t, err)
	assert.Len(t, resp.Plans, 0, "soft-deleted plans are hidden by default")

	resp, err = planService.ListPlans(ctx, models.PlanFilters{SessionID: p.SessionID, IncludeDeleted: true})
	require.NoError(t, err)
	assert.Len(t, resp.Plans, 1)

	t.Run("rejects non-positive retention", func(t *testing.T) {
		_, err := planService.SoftDeleteOldPlans(ctx, 0)
		assert.Error(t, err)
	})
}

func TestPlanService_SearchPlans(t *testing.T) {
	client := testdb.NewTestClient(t)
	planService := NewPlanService(client.Client)
	ctx := context.Background()

	_, err := planService.CreatePlan(ctx, models.CreatePlanRequest{
		TaskDescription: "Verify overdue invoice totals for Acme Corp",
	})
	require.NoError(t, err)
	_, err = planService.CreatePlan(ctx, models.CreatePlanRequest{
		TaskDescription: "Summarize the support mailbox",
	})
	require.NoError(t, err)

	found, err := planService.SearchPlans(ctx, "invoice", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Contains(t, found[0].TaskDescription, "invoice")
}
