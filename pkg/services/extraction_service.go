package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finovant/macaw/ent"
	"github.com/finovant/macaw/ent/extraction"
	"github.com/google/uuid"
)

// ExtractionService manages structured document extractions held for review
type ExtractionService struct {
	client *ent.Client
}

// NewExtractionService creates a new ExtractionService
func NewExtractionService(client *ent.Client) *ExtractionService {
	return &ExtractionService{client: client}
}

// CreateExtraction records a pending extraction produced by an agent
func (s *ExtractionService) CreateExtraction(httpCtx context.Context, planID, agentName string, fields map[string]any) (*ent.Extraction, error) {
	if planID == "" {
		return nil, NewValidationError("plan_id", "required")
	}
	if agentName == "" {
		return nil, NewValidationError("agent_name", "required")
	}
	if len(fields) == 0 {
		return nil, NewValidationError("fields", "at least one extracted field required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ext, err := s.client.Extraction.Create().
		SetID(uuid.New().String()).
		SetPlanID(planID).
		SetAgentName(agentName).
		SetFields(fields).
		SetStatus(extraction.StatusPending).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: plan %s", ErrNotFound, planID)
		}
		return nil, fmt.Errorf("failed to create extraction: %w", err)
	}
	return ext, nil
}

// Review records the approval outcome on the latest pending extraction for a
// plan, including any human field corrections.
func (s *ExtractionService) Review(httpCtx context.Context, planID string, approved bool, edited map[string]any, feedback string) (*ent.Extraction, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pending, err := s.client.Extraction.Query().
		Where(
			extraction.PlanIDEQ(planID),
			extraction.StatusEQ(extraction.StatusPending),
		).
		Order(ent.Desc(extraction.FieldCreatedAt)).
		First(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no pending extraction for plan %s", ErrNotFound, planID)
		}
		return nil, fmt.Errorf("failed to find pending extraction: %w", err)
	}

	status := extraction.StatusApproved
	if !approved {
		status = extraction.StatusRejected
	}

	update := pending.Update().
		SetStatus(status).
		SetReviewedAt(time.Now())
	if feedback != "" {
		update.SetFeedback(feedback)
	}
	if approved && len(edited) > 0 {
		update.SetEditedFields(edited)
	}

	reviewed, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record extraction review: %w", err)
	}
	return reviewed, nil
}

// GetPending returns the latest unreviewed extraction for a plan
func (s *ExtractionService) GetPending(ctx context.Context, planID string) (*ent.Extraction, error) {
	ext, err := s.client.Extraction.Query().
		Where(
			extraction.PlanIDEQ(planID),
			extraction.StatusEQ(extraction.StatusPending),
		).
		Order(ent.Desc(extraction.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending extraction: %w", err)
	}
	return ext, nil
}

// ListByPlan returns all extractions for a plan, oldest first
func (s *ExtractionService) ListByPlan(ctx context.Context, planID string) ([]*ent.Extraction, error) {
	exts, err := s.client.Extraction.Query().
		Where(extraction.PlanIDEQ(planID)).
		Order(ent.Asc(extraction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list extractions: %w", err)
	}
	return exts, nil
}
