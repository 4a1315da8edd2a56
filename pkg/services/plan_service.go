package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/finovant/macaw/ent"
	"github.com/finovant/macaw/ent/agentmessage"
	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/ent/planstep"
	"github.com/finovant/macaw/pkg/models"
	"github.com/google/uuid"
)

// PlanService manages the durable workflow plan lifecycle
type PlanService struct {
	client *ent.Client
}

// NewPlanService creates a new PlanService
func NewPlanService(client *ent.Client) *PlanService {
	return &PlanService{client: client}
}

// CreatePlan creates a new plan row in status pending. A missing session id
// gets a fresh one so every response can carry it back to the caller.
func (s *PlanService) CreatePlan(httpCtx context.Context, req models.CreatePlanRequest) (*ent.Plan, error) {
	if req.TaskDescription == "" {
		return nil, NewValidationError("task_description", "required")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Plan.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetTaskDescription(req.TaskDescription).
		SetStatus(plan.StatusPending).
		SetRequireApproval(req.RequireApproval).
		SetCreatedAt(time.Now())

	if req.RestartedFrom != "" {
		builder.SetRestartedFrom(req.RestartedFrom)
	}
	if req.PlanMetadata != nil {
		builder.SetPlanMetadata(req.PlanMetadata)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	return p, nil
}

// GetPlan retrieves a plan by ID
func (s *PlanService) GetPlan(ctx context.Context, planID string) (*ent.Plan, error) {
	p, err := s.client.Plan.Query().
		Where(plan.IDEQ(planID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return p, nil
}

// GetDetail returns the full durable picture of one plan: the row, its steps
// in graph order, and its conversation in sequence order.
func (s *PlanService) GetDetail(ctx context.Context, planID string) (*models.PlanDetail, error) {
	p, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	steps, err := s.ListSteps(ctx, planID)
	if err != nil {
		return nil, err
	}

	messages, err := s.client.AgentMessage.Query().
		Where(agentmessage.PlanIDEQ(planID)).
		Order(ent.Asc(agentmessage.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan messages: %w", err)
	}

	return &models.PlanDetail{
		Plan:     p,
		Steps:    steps,
		Messages: messages,
	}, nil
}

// ListPlans lists plans with filtering and pagination, newest first
func (s *PlanService) ListPlans(ctx context.Context, filters models.PlanFilters) (*models.PlanListResponse, error) {
	query := s.client.Plan.Query()

	if filters.SessionID != "" {
		query = query.Where(plan.SessionIDEQ(filters.SessionID))
	}
	if filters.Status != "" {
		query = query.Where(plan.StatusEQ(plan.Status(filters.Status)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(plan.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(plan.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(plan.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count plans: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	plans, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(plan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return &models.PlanListResponse{
		Plans:      plans,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// SetStatus updates a plan's durable status. started_at is stamped on the
// first move to in_progress only, so resumed runs keep their original start;
// terminal statuses stamp completed_at.
func (s *PlanService) SetStatus(ctx context.Context, planID string, status plan.Status, errorMessage string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Plan.UpdateOneID(planID).SetStatus(status)
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}

	switch status {
	case plan.StatusInProgress:
		p, err := s.client.Plan.Get(writeCtx, planID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load plan for status update: %w", err)
		}
		if p.StartedAt == nil {
			update.SetStartedAt(time.Now())
		}
	case plan.StatusCompleted, plan.StatusFailed, plan.StatusRejected, plan.StatusRestarted:
		update.SetCompletedAt(time.Now())
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update plan status: %w", err)
	}
	return nil
}

// SetPlanned records the planner's output on the plan row
func (s *PlanService) SetPlanned(ctx context.Context, planID string, planned models.PlannedUpdate) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Plan.UpdateOneID(planID).
		SetAgentSequence(planned.Sequence).
		SetGraphType(planned.GraphType).
		SetComplexity(planned.Complexity).
		SetPlanSource(planned.Source)

	if planned.GraphID != "" {
		update.SetGraphID(planned.GraphID)
	}
	if planned.Summary != "" {
		update.SetPlanSummary(planned.Summary)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record planned sequence: %w", err)
	}
	return nil
}

// SetCursor persists the execution resume point
func (s *PlanService) SetCursor(ctx context.Context, planID string, step int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Plan.UpdateOneID(planID).
		SetCurrentStep(step).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to persist cursor: %w", err)
	}
	return nil
}

// SetFinalResult records the workflow's composed outcome
func (s *PlanService) SetFinalResult(ctx context.Context, planID, result string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Plan.UpdateOneID(planID).
		SetFinalResult(result).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record final result: %w", err)
	}
	return nil
}

// SetFeedback records the latest operator feedback on the plan
func (s *PlanService) SetFeedback(ctx context.Context, planID, feedback string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Plan.UpdateOneID(planID).
		SetHumanFeedback(feedback).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record feedback: %w", err)
	}
	return nil
}

// SeedSteps replaces a plan's durable step rows with one row per compiled
// graph node. Called when execution begins; a re-approved modified sequence
// reseeds from scratch.
func (s *PlanService) SeedSteps(ctx context.Context, planID string, seeds []models.StepSeed) ([]*ent.PlanStep, error) {
	if len(seeds) == 0 {
		return nil, NewValidationError("steps", "at least one step required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.PlanStep.Delete().
		Where(planstep.PlanIDEQ(planID)).
		Exec(writeCtx); err != nil {
		return nil, fmt.Errorf("failed to clear previous steps: %w", err)
	}

	builders := make([]*ent.PlanStepCreate, len(seeds))
	for i, seed := range seeds {
		builders[i] = tx.PlanStep.Create().
			SetID(uuid.New().String()).
			SetPlanID(planID).
			SetStepIndex(seed.Index).
			SetAgentName(seed.AgentName).
			SetInterruptBefore(seed.InterruptBefore).
			SetStatus(planstep.StatusPending)
	}
	steps, err := tx.PlanStep.CreateBulk(builders...).Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: plan %s", ErrNotFound, planID)
		}
		return nil, fmt.Errorf("failed to create steps: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit steps: %w", err)
	}
	return steps, nil
}

// ListSteps returns a plan's steps in graph order
func (s *PlanService) ListSteps(ctx context.Context, planID string) ([]*ent.PlanStep, error) {
	steps, err := s.client.PlanStep.Query().
		Where(planstep.PlanIDEQ(planID)).
		Order(ent.Asc(planstep.FieldStepIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	return steps, nil
}

// StartStep marks one step running
func (s *PlanService) StartStep(ctx context.Context, planID string, index int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.PlanStep.Update().
		Where(planstep.PlanIDEQ(planID), planstep.StepIndexEQ(index)).
		SetStatus(planstep.StatusRunning).
		SetStartedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start step: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: plan %s step %d", ErrNotFound, planID, index)
	}
	return nil
}

// CompleteStep marks one step completed with the agent's outcome
func (s *PlanService) CompleteStep(ctx context.Context, planID string, index int, summary string, output map[string]any) error {
	return s.finishStep(ctx, planID, index, planstep.StatusCompleted, summary, "", output)
}

// FailStep marks one step failed
func (s *PlanService) FailStep(ctx context.Context, planID string, index int, errorMessage string) error {
	return s.finishStep(ctx, planID, index, planstep.StatusFailed, "", errorMessage, nil)
}

func (s *PlanService) finishStep(_ context.Context, planID string, index int, status planstep.Status, summary, errorMessage string, output map[string]any) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	step, err := s.client.PlanStep.Query().
		Where(planstep.PlanIDEQ(planID), planstep.StepIndexEQ(index)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: plan %s step %d", ErrNotFound, planID, index)
		}
		return fmt.Errorf("failed to load step: %w", err)
	}

	now := time.Now()
	update := step.Update().
		SetStatus(status).
		SetCompletedAt(now)
	if step.StartedAt != nil {
		update.SetDurationMs(now.Sub(*step.StartedAt).Milliseconds())
	}
	if summary != "" {
		update.SetSummary(summary)
	}
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}
	if output != nil {
		update.SetOutput(output)
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to finish step: %w", err)
	}
	return nil
}

// SkipRemainingSteps marks every still-pending step at or after the given
// index skipped. Used on fail-fast and cancellation so the step list reads
// truthfully afterwards.
func (s *PlanService) SkipRemainingSteps(ctx context.Context, planID string, fromIndex int) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.PlanStep.Update().
		Where(
			planstep.PlanIDEQ(planID),
			planstep.StepIndexGTE(fromIndex),
			planstep.StatusEQ(planstep.StatusPending),
		).
		SetStatus(planstep.StatusSkipped).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to skip steps: %w", err)
	}
	return n, nil
}

// RecoverOrphans marks plans left non-terminal by a previous process failed.
// Called once at startup; live workflows never survive a restart.
func (s *PlanService) RecoverOrphans(ctx context.Context) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.Plan.Update().
		Where(plan.StatusIn(plan.StatusPending, plan.StatusPendingApproval, plan.StatusInProgress)).
		SetStatus(plan.StatusFailed).
		SetErrorMessage("orchestrator restarted during execution").
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover orphaned plans: %w", err)
	}
	return n, nil
}

// SoftDeleteOldPlans soft deletes terminal plans older than the retention period
func (s *PlanService) SoftDeleteOldPlans(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.Plan.Update().
		Where(
			plan.CompletedAtLT(cutoff),
			plan.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete plans: %w", err)
	}
	return n, nil
}

// SearchPlans performs full-text search on task descriptions and final results
func (s *PlanService) SearchPlans(ctx context.Context, query string, limit int) ([]*ent.Plan, error) {
	if limit <= 0 {
		limit = 20
	}

	plans, err := s.client.Plan.Query().
		Where(plan.DeletedAtIsNil()).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', task_description) @@ plainto_tsquery($1)", query),
				sql.ExprP("to_tsvector('english', COALESCE(final_result, '')) @@ plainto_tsquery($2)", query),
			))
		}).
		Limit(limit).
		Order(ent.Desc(plan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search plans: %w", err)
	}
	return plans, nil
}
