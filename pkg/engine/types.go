package engine

import (
	"context"
	"errors"
	"time"

	"github.com/finovant/macaw/ent"
	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/pkg/events"
	"github.com/finovant/macaw/pkg/models"
)

// PlanStore is the durable plan surface the engine writes through.
// Implemented by services.PlanService.
type PlanStore interface {
	CreatePlan(ctx context.Context, req models.CreatePlanRequest) (*ent.Plan, error)
	GetPlan(ctx context.Context, planID string) (*ent.Plan, error)
	SetStatus(ctx context.Context, planID string, status plan.Status, errorMessage string) error
	SetPlanned(ctx context.Context, planID string, planned models.PlannedUpdate) error
	SetCursor(ctx context.Context, planID string, step int) error
	SetFinalResult(ctx context.Context, planID, result string) error
	SetFeedback(ctx context.Context, planID, feedback string) error
	SeedSteps(ctx context.Context, planID string, seeds []models.StepSeed) ([]*ent.PlanStep, error)
	StartStep(ctx context.Context, planID string, index int) error
	CompleteStep(ctx context.Context, planID string, index int, summary string, output map[string]any) error
	FailStep(ctx context.Context, planID string, index int, errorMessage string) error
	SkipRemainingSteps(ctx context.Context, planID string, fromIndex int) (int, error)
}

// MessageStore appends the durable agent messages. Implemented by
// services.MessageService.
type MessageStore interface {
	Append(ctx context.Context, req models.CreateMessageRequest) (*ent.AgentMessage, error)
	Forget(planID string)
}

// ExtractionStore persists extraction checkpoints. Implemented by
// services.ExtractionService.
type ExtractionStore interface {
	CreateExtraction(ctx context.Context, planID, agentName string, fields map[string]any) (*ent.Extraction, error)
	Review(ctx context.Context, planID string, approved bool, edited map[string]any, feedback string) (*ent.Extraction, error)
}

// EventSink publishes workflow envelopes. Implemented by events.Publisher.
type EventSink interface {
	PublishPlanCreated(ctx context.Context, data events.PlanCreatedData) error
	PublishPlanApprovalRequest(ctx context.Context, data events.PlanApprovalRequestData) error
	PublishPlanApproved(ctx context.Context, data events.PlanApprovedData) error
	PublishPlanRejected(ctx context.Context, data events.PlanRejectedData) error
	PublishAgentStarted(ctx context.Context, data events.AgentStartedData) error
	PublishAgentMessage(ctx context.Context, data events.AgentMessageData) error
	PublishStepProgress(ctx context.Context, data events.StepProgressData) error
	PublishProgressUpdate(ctx context.Context, data events.ProgressUpdateData) error
	PublishFinalResult(ctx context.Context, data events.FinalResultData) error
	PublishExtractionApprovalRequest(ctx context.Context, data events.ExtractionApprovalRequestData) error
	PublishError(ctx context.Context, data events.ErrorData) error
}

// ContextLog records per-plan execution history for debugging views.
// Implemented by services.ContextService.
type ContextLog interface {
	Append(planID, kind, detail string)
	RecordTransition(planID, from, to string)
	RecordAgentDuration(planID, agent string, d time.Duration)
	MarkTerminal(planID string)
}

// Metrics is the performance counter surface. Implemented by monitor.Monitor.
type Metrics interface {
	ObserveAgentExecution(agent string, d time.Duration, success bool)
	ObserveCompile(d time.Duration)
	ObserveWorkflow(d time.Duration)
	RecordPlanStarted()
	RecordPlanCompleted()
	RecordPlanFailed()
	RecordMessagePersisted()
}

// RunStatus is how one executor pass over a workflow ended.
type RunStatus string

const (
	// RunCompleted: every step ran and the workflow reached COMPLETED.
	RunCompleted RunStatus = "completed"

	// RunAwaitingResultApproval: every step ran; the final result is parked
	// at the result checkpoint.
	RunAwaitingResultApproval RunStatus = "awaiting_result_approval"

	// RunSuspended: execution stopped before an interrupt node with an
	// extraction review pending. Resume relaunches from the cursor.
	RunSuspended RunStatus = "suspended"

	// RunFailed: a step failure (or lost execution token) ended the
	// workflow in FAILED.
	RunFailed RunStatus = "failed"

	// RunCancelled: the workflow context was cancelled by an operator.
	RunCancelled RunStatus = "cancelled"

	// RunTimedOut: the workflow wall-clock deadline expired.
	RunTimedOut RunStatus = "timed_out"
)

// RunOutcome describes how an executor pass ended. Err is set only for
// failed, cancelled and timed out runs.
type RunOutcome struct {
	Status      RunStatus
	FinalResult string
	Err         error
}

var (
	// ErrSchedulerStopped is returned by Launch after Stop.
	ErrSchedulerStopped = errors.New("scheduler is stopped")

	// ErrAlreadyRunning is returned by Launch when the plan already has a
	// live slot (queued or executing).
	ErrAlreadyRunning = errors.New("plan is already running")

	// ErrUnknownRun is returned when an operation references a plan the
	// engine has no live run for.
	ErrUnknownRun = errors.New("no live run for plan")
)
