package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finovant/macaw/ent"
	"github.com/finovant/macaw/ent/event"
	"github.com/finovant/macaw/pkg/models"
)

// EventService manages the durable copy of WebSocket envelopes
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CreateEvent persists one envelope. The publisher normally inserts events
// inside its own NOTIFY transaction; this path exists for callers without one.
func (s *EventService) CreateEvent(httpCtx context.Context, req models.CreateEventRequest) (*ent.Event, error) {
	if req.PlanID == "" {
		return nil, NewValidationError("plan_id", "required")
	}
	if req.Channel == "" {
		return nil, NewValidationError("channel", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	evt, err := s.client.Event.Create().
		SetPlanID(req.PlanID).
		SetChannel(req.Channel).
		SetPayload(req.Payload).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: plan %s", ErrNotFound, req.PlanID)
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return evt, nil
}

// GetEventsSince retrieves up to limit events on a channel after a given ID,
// oldest first. The row ID doubles as the client's last_event_id cursor.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	if limit <= 0 {
		limit = 200
	}

	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// CleanupPlanEvents removes all events for a plan
func (s *EventService) CleanupPlanEvents(ctx context.Context, planID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.client.Event.Delete().
		Where(event.PlanIDEQ(planID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup plan events: %w", err)
	}
	return n, nil
}

// DeleteOlderThan removes events past the retention TTL
func (s *EventService) DeleteOlderThan(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired events: %w", err)
	}
	return n, nil
}
