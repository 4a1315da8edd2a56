package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/finovant/macaw/ent"
	"github.com/finovant/macaw/ent/agentmessage"
	"github.com/finovant/macaw/pkg/models"
	"github.com/google/uuid"
)

// planSequence serializes message appends for one plan. The lock is held
// across the durable insert so numbers are handed out strictly increasing
// with no gaps, even under concurrent agents.
type planSequence struct {
	mu   sync.Mutex
	next int // 0 until initialized from the durable maximum
}

// MessageService manages the durable agent conversation of each plan
type MessageService struct {
	client *ent.Client

	mu   sync.Mutex
	seqs map[string]*planSequence
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{
		client: client,
		seqs:   make(map[string]*planSequence),
	}
}

func (s *MessageService) sequence(planID string) *planSequence {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq, ok := s.seqs[planID]
	if !ok {
		seq = &planSequence{}
		s.seqs[planID] = seq
	}
	return seq
}

// Append persists one agent message with the next sequence number for the
// plan. The number is assigned here, never by callers; a failed insert does
// not burn a number.
func (s *MessageService) Append(httpCtx context.Context, req models.CreateMessageRequest) (*ent.AgentMessage, error) {
	if req.PlanID == "" {
		return nil, NewValidationError("plan_id", "required")
	}
	if req.AgentName == "" {
		return nil, NewValidationError("agent_name", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	kind := req.Kind
	if kind == "" {
		kind = string(agentmessage.KindProgress)
	}

	seq := s.sequence(req.PlanID)
	seq.mu.Lock()
	defer seq.mu.Unlock()

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if seq.next == 0 {
		next, err := s.nextFromDurable(ctx, req.PlanID)
		if err != nil {
			return nil, err
		}
		seq.next = next
	}

	builder := s.client.AgentMessage.Create().
		SetID(uuid.New().String()).
		SetPlanID(req.PlanID).
		SetAgentName(req.AgentName).
		SetSequenceNumber(seq.next).
		SetKind(agentmessage.Kind(kind)).
		SetContent(req.Content).
		SetCreatedAt(time.Now())
	if req.MessageMetadata != nil {
		builder.SetMessageMetadata(req.MessageMetadata)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: plan %s", ErrNotFound, req.PlanID)
		}
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}

	seq.next++
	return msg, nil
}

// nextFromDurable reads the highest persisted sequence number for a plan so
// the in-memory counter survives restarts without gaps.
func (s *MessageService) nextFromDurable(ctx context.Context, planID string) (int, error) {
	last, err := s.client.AgentMessage.Query().
		Where(agentmessage.PlanIDEQ(planID)).
		Order(ent.Desc(agentmessage.FieldSequenceNumber)).
		First(ctx)
	switch {
	case err == nil:
		return last.SequenceNumber + 1, nil
	case ent.IsNotFound(err):
		return 1, nil
	default:
		return 0, fmt.Errorf("failed to read last sequence number: %w", err)
	}
}

// ListByPlan returns a plan's messages in sequence order
func (s *MessageService) ListByPlan(ctx context.Context, planID string) ([]*ent.AgentMessage, error) {
	messages, err := s.client.AgentMessage.Query().
		Where(agentmessage.PlanIDEQ(planID)).
		Order(ent.Asc(agentmessage.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// ListUpToSequence returns a plan's messages up to and including a sequence number
func (s *MessageService) ListUpToSequence(ctx context.Context, planID string, sequenceNumber int) ([]*ent.AgentMessage, error) {
	messages, err := s.client.AgentMessage.Query().
		Where(
			agentmessage.PlanIDEQ(planID),
			agentmessage.SequenceNumberLTE(sequenceNumber),
		).
		Order(ent.Asc(agentmessage.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// CountByPlan returns the number of persisted messages for a plan
func (s *MessageService) CountByPlan(ctx context.Context, planID string) (int, error) {
	n, err := s.client.AgentMessage.Query().
		Where(agentmessage.PlanIDEQ(planID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return n, nil
}

// Forget drops the in-memory sequence counter for a terminal plan. The next
// append (there should be none) would re-read the durable maximum.
func (s *MessageService) Forget(planID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.seqs, planID)
}
