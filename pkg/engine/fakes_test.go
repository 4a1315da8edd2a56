package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/finovant/macaw/ent"
	"github.com/finovant/macaw/ent/plan"
	"github.com/finovant/macaw/ent/planstep"
	"github.com/finovant/macaw/pkg/events"
	"github.com/finovant/macaw/pkg/models"
)

// memPlans is an in-memory PlanStore recording everything the engine writes.
type memPlans struct {
	mu      sync.Mutex
	nextID  int
	plans   map[string]*ent.Plan
	steps   map[string][]*ent.PlanStep
	cursors map[string]int
	finals  map[string]string
	errMsgs map[string]string
}

func newMemPlans() *memPlans {
	return &memPlans{
		plans:   make(map[string]*ent.Plan),
		steps:   make(map[string][]*ent.PlanStep),
		cursors: make(map[string]int),
		finals:  make(map[string]string),
		errMsgs: make(map[string]string),
	}
}

func (m *memPlans) CreatePlan(_ context.Context, req models.CreatePlanRequest) (*ent.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p := &ent.Plan{
		ID:              fmt.Sprintf("plan-%04d", m.nextID),
		SessionID:       req.SessionID,
		TaskDescription: req.TaskDescription,
		Status:          plan.StatusPending,
		RequireApproval: req.RequireApproval,
		RestartedFrom:   req.RestartedFrom,
	}
	m.plans[p.ID] = p
	return p, nil
}

func (m *memPlans) GetPlan(_ context.Context, planID string) (*ent.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.plans[planID]
	if !ok {
		return nil, fmt.Errorf("plan %s not found", planID)
	}
	cp := *p
	return &cp, nil
}

func (m *memPlans) SetStatus(_ context.Context, planID string, status plan.Status, errorMessage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.plans[planID]
	if !ok {
		return fmt.Errorf("plan %s not found", planID)
	}
	p.Status = status
	if errorMessage != "" {
		m.errMsgs[planID] = errorMessage
	}
	return nil
}

func (m *memPlans) SetPlanned(_ context.Context, planID string, planned models.PlannedUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.plans[planID]
	if !ok {
		return fmt.Errorf("plan %s not found", planID)
	}
	p.AgentSequence = planned.Sequence
	p.GraphType = planned.GraphType
	p.GraphID = planned.GraphID
	p.PlanSource = planned.Source
	return nil
}

func (m *memPlans) SetCursor(_ context.Context, planID string, step int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursors[planID] = step
	return nil
}

func (m *memPlans) SetFinalResult(_ context.Context, planID, result string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finals[planID] = result
	return nil
}

func (m *memPlans) SetFeedback(_ context.Context, planID, feedback string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.plans[planID]; ok {
		p.HumanFeedback = feedback
	}
	return nil
}

func (m *memPlans) SeedSteps(_ context.Context, planID string, seeds []models.StepSeed) ([]*ent.PlanStep, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	steps := make([]*ent.PlanStep, len(seeds))
	for i, seed := range seeds {
		steps[i] = &ent.PlanStep{
			PlanID:          planID,
			StepIndex:       seed.Index,
			AgentName:       seed.AgentName,
			InterruptBefore: seed.InterruptBefore,
			Status:          "pending",
		}
	}
	m.steps[planID] = steps
	return steps, nil
}

func (m *memPlans) StartStep(_ context.Context, planID string, index int) error {
	return m.setStepStatus(planID, index, "running", "")
}

func (m *memPlans) CompleteStep(_ context.Context, planID string, index int, summary string, _ map[string]any) error {
	return m.setStepStatus(planID, index, "completed", summary)
}

func (m *memPlans) FailStep(_ context.Context, planID string, index int, errorMessage string) error {
	return m.setStepStatus(planID, index, "failed", errorMessage)
}

func (m *memPlans) SkipRemainingSteps(_ context.Context, planID string, fromIndex int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, step := range m.steps[planID] {
		if step.StepIndex >= fromIndex && step.Status == "pending" {
			step.Status = "skipped"
			n++
		}
	}
	return n, nil
}

func (m *memPlans) setStepStatus(planID string, index int, status planstep.Status, detail string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, step := range m.steps[planID] {
		if step.StepIndex == index {
			step.Status = status
			if status == planstep.StatusFailed {
				step.ErrorMessage = detail
			} else if detail != "" {
				step.Summary = detail
			}
			return nil
		}
	}
	return fmt.Errorf("step %d of plan %s not found", index, planID)
}

func (m *memPlans) stepStatuses(planID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.steps[planID]))
	for i, step := range m.steps[planID] {
		out[i] = string(step.Status)
	}
	return out
}

func (m *memPlans) status(planID string) plan.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.plans[planID]; ok {
		return p.Status
	}
	return ""
}

func (m *memPlans) errorMessage(planID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsgs[planID]
}

func (m *memPlans) finalResult(planID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.finals[planID]
}

// memMessages is an in-memory MessageStore with optional write-failure
// injection for dual-write tests.
type memMessages struct {
	mu       sync.Mutex
	byPlan   map[string][]*ent.AgentMessage
	failFrom int // fail every Append once this many rows exist per plan, 0 = never
}

func newMemMessages() *memMessages {
	return &memMessages{byPlan: make(map[string][]*ent.AgentMessage)}
}

func (m *memMessages) Append(_ context.Context, req models.CreateMessageRequest) (*ent.AgentMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing := m.byPlan[req.PlanID]
	if m.failFrom > 0 && len(existing) >= m.failFrom {
		return nil, fmt.Errorf("message store unavailable")
	}
	msg := &ent.AgentMessage{
		PlanID:         req.PlanID,
		AgentName:      req.AgentName,
		SequenceNumber: len(existing) + 1,
		Content:        req.Content,
	}
	m.byPlan[req.PlanID] = append(existing, msg)
	return msg, nil
}

func (m *memMessages) Forget(string) {}

func (m *memMessages) count(planID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byPlan[planID])
}

// memExtractions is an in-memory ExtractionStore.
type memExtractions struct {
	mu      sync.Mutex
	pending map[string]*ent.Extraction
}

func newMemExtractions() *memExtractions {
	return &memExtractions{pending: make(map[string]*ent.Extraction)}
}

func (m *memExtractions) CreateExtraction(_ context.Context, planID, agentName string, fields map[string]any) (*ent.Extraction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ext := &ent.Extraction{PlanID: planID, AgentName: agentName, Fields: fields, Status: "pending"}
	m.pending[planID] = ext
	return ext, nil
}

func (m *memExtractions) Review(_ context.Context, planID string, approved bool, edited map[string]any, feedback string) (*ent.Extraction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ext, ok := m.pending[planID]
	if !ok {
		return nil, fmt.Errorf("no pending extraction for plan %s", planID)
	}
	delete(m.pending, planID)
	if approved {
		ext.Status = "approved"
	} else {
		ext.Status = "rejected"
	}
	ext.EditedFields = edited
	ext.Feedback = feedback
	return ext, nil
}

// recordedEvent is one envelope the recordingSink saw.
type recordedEvent struct {
	Type string
	Data any
}

// recordingSink is an EventSink capturing every published envelope.
type recordingSink struct {
	mu     sync.Mutex
	events []recordedEvent
}

func newRecordingSink() *recordingSink {
	return &recordingSink{}
}

func (s *recordingSink) record(typ string, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, recordedEvent{Type: typ, Data: data})
	return nil
}

func (s *recordingSink) PublishPlanCreated(_ context.Context, d events.PlanCreatedData) error {
	return s.record(events.EventTypePlanCreated, d)
}

func (s *recordingSink) PublishPlanApprovalRequest(_ context.Context, d events.PlanApprovalRequestData) error {
	return s.record(events.EventTypePlanApprovalRequest, d)
}

func (s *recordingSink) PublishPlanApproved(_ context.Context, d events.PlanApprovedData) error {
	return s.record(events.EventTypePlanApproved, d)
}

func (s *recordingSink) PublishPlanRejected(_ context.Context, d events.PlanRejectedData) error {
	return s.record(events.EventTypePlanRejected, d)
}

func (s *recordingSink) PublishAgentStarted(_ context.Context, d events.AgentStartedData) error {
	return s.record(events.EventTypeAgentStarted, d)
}

func (s *recordingSink) PublishAgentMessage(_ context.Context, d events.AgentMessageData) error {
	return s.record(events.EventTypeAgentMessage, d)
}

func (s *recordingSink) PublishStepProgress(_ context.Context, d events.StepProgressData) error {
	return s.record(events.EventTypeStepProgress, d)
}

func (s *recordingSink) PublishProgressUpdate(_ context.Context, d events.ProgressUpdateData) error {
	return s.record(events.EventTypeProgressUpdate, d)
}

func (s *recordingSink) PublishFinalResult(_ context.Context, d events.FinalResultData) error {
	return s.record(events.EventTypeFinalResult, d)
}

func (s *recordingSink) PublishExtractionApprovalRequest(_ context.Context, d events.ExtractionApprovalRequestData) error {
	return s.record(events.EventTypeExtractionApprovalRequest, d)
}

func (s *recordingSink) PublishError(_ context.Context, d events.ErrorData) error {
	return s.record(events.EventTypeError, d)
}

// all returns every recorded envelope of the given type.
func (s *recordingSink) all(typ string) []recordedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []recordedEvent
	for _, e := range s.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func (s *recordingSink) has(typ string) bool {
	return len(s.all(typ)) > 0
}
