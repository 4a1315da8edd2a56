package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// notifyLimit is the NOTIFY payload size we stay under. PostgreSQL rejects
// payloads of 8000 bytes or more; oversized envelopes are replaced with a
// routing-only truncation marker and the durable row keeps the full payload.
const notifyLimit = 7900

// Publisher publishes envelopes for WebSocket delivery.
// Durable envelopes are stored in the events table then broadcast via NOTIFY
// in the same transaction. Transient envelopes (stream deltas, global copies)
// are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed data struct — see payloads.go.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a new Publisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// --- Typed public methods ---

// PublishPlanCreated persists a plan_created envelope to the plan channel and
// broadcasts a transient copy to the global plans channel. Both publishes are
// best-effort: if the durable one fails, the transient one is still
// attempted. Returns the first error encountered.
func (p *Publisher) PublishPlanCreated(ctx context.Context, data PlanCreatedData) error {
	env := NewEnvelope(EventTypePlanCreated, data)

	var firstErr error
	if err := p.persistAndNotify(ctx, data.PlanID, PlanChannel(data.PlanID), env); err != nil {
		slog.Warn("Failed to publish plan_created to plan channel",
			"plan_id", data.PlanID, "error", err)
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalPlansChannel, env); err != nil {
		slog.Warn("Failed to publish plan_created to global channel",
			"plan_id", data.PlanID, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishPlanApprovalRequest persists and broadcasts a plan_approval_request
// envelope. Published when a compiled plan suspends at the plan gate.
func (p *Publisher) PublishPlanApprovalRequest(ctx context.Context, data PlanApprovalRequestData) error {
	return p.persistAndNotify(ctx, data.PlanID, PlanChannel(data.PlanID), NewEnvelope(EventTypePlanApprovalRequest, data))
}

// PublishPlanApproved persists and broadcasts a plan_approved envelope.
func (p *Publisher) PublishPlanApproved(ctx context.Context, data PlanApprovedData) error {
	return p.persistAndNotify(ctx, data.PlanID, PlanChannel(data.PlanID), NewEnvelope(EventTypePlanApproved, data))
}

// PublishPlanRejected persists and broadcasts a plan_rejected envelope.
func (p *Publisher) PublishPlanRejected(ctx context.Context, data PlanRejectedData) error {
	return p.persistAndNotify(ctx, data.PlanID, PlanChannel(data.PlanID), NewEnvelope(EventTypePlanRejected, data))
}

// PublishAgentStarted persists and broadcasts an agent_started envelope.
func (p *Publisher) PublishAgentStarted(ctx context.Context, data AgentStartedData) error {
	return p.persistAndNotify(ctx, data.PlanID, PlanChannel(data.PlanID), NewEnvelope(EventTypeAgentStarted, data))
}

// PublishAgentMessage persists and broadcasts an agent_message envelope.
// Callers must write the durable agent_messages row first; the Sequence field
// carries its sequence number.
func (p *Publisher) PublishAgentMessage(ctx context.Context, data AgentMessageData) error {
	return p.persistAndNotify(ctx, data.PlanID, PlanChannel(data.PlanID), NewEnvelope(EventTypeAgentMessage, data))
}

// PublishStepProgress persists and broadcasts a step_progress envelope.
func (p *Publisher) PublishStepProgress(ctx context.Context, data StepProgressData) error {
	return p.persistAndNotify(ctx, data.PlanID, PlanChannel(data.PlanID), NewEnvelope(EventTypeStepProgress, data))
}

// PublishProgressUpdate persists a progress_update envelope to the plan
// channel and broadcasts a transient copy to the global plans channel so
// dashboards see lifecycle changes without a per-plan subscription.
func (p *Publisher) PublishProgressUpdate(ctx context.Context, data ProgressUpdateData) error {
	env := NewEnvelope(EventTypeProgressUpdate, data)

	var firstErr error
	if err := p.persistAndNotify(ctx, data.PlanID, PlanChannel(data.PlanID), env); err != nil {
		slog.Warn("Failed to publish progress_update to plan channel",
			"plan_id", data.PlanID, "state", data.State, "error", err)
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalPlansChannel, env); err != nil {
		slog.Warn("Failed to publish progress_update to global channel",
			"plan_id", data.PlanID, "state", data.State, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishFinalResult persists and broadcasts a final_result_message envelope.
func (p *Publisher) PublishFinalResult(ctx context.Context, data FinalResultData) error {
	return p.persistAndNotify(ctx, data.PlanID, PlanChannel(data.PlanID), NewEnvelope(EventTypeFinalResult, data))
}

// PublishExtractionApprovalRequest persists and broadcasts an
// extraction_approval_request envelope.
func (p *Publisher) PublishExtractionApprovalRequest(ctx context.Context, data ExtractionApprovalRequestData) error {
	return p.persistAndNotify(ctx, data.PlanID, PlanChannel(data.PlanID), NewEnvelope(EventTypeExtractionApprovalRequest, data))
}

// PublishError persists and broadcasts an error envelope.
func (p *Publisher) PublishError(ctx context.Context, data ErrorData) error {
	return p.persistAndNotify(ctx, data.PlanID, PlanChannel(data.PlanID), NewEnvelope(EventTypeError, data))
}

// PublishStreamStart broadcasts an agent_stream_start transient envelope.
func (p *Publisher) PublishStreamStart(ctx context.Context, data StreamData) error {
	return p.notifyOnly(ctx, PlanChannel(data.PlanID), NewEnvelope(EventTypeStreamStart, data))
}

// PublishStreamDelta broadcasts an agent_streaming transient envelope.
// High-frequency, ephemeral — lost on disconnect, with the final content
// delivered by the subsequent durable agent_message.
func (p *Publisher) PublishStreamDelta(ctx context.Context, data StreamData) error {
	return p.notifyOnly(ctx, PlanChannel(data.PlanID), NewEnvelope(EventTypeStreaming, data))
}

// PublishStreamEnd broadcasts an agent_stream_end transient envelope.
func (p *Publisher) PublishStreamEnd(ctx context.Context, data StreamData) error {
	return p.notifyOnly(ctx, PlanChannel(data.PlanID), NewEnvelope(EventTypeStreamEnd, data))
}

// --- Internal core methods ---

// persistAndNotify persists an envelope to the events table and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until
// COMMIT, so a listener never sees an event whose row does not exist).
func (p *Publisher) persistAndNotify(ctx context.Context, planID, channel string, env Envelope) error {
	payloadJSON, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal %s envelope: %w", env.Type, err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (plan_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		planID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// The NOTIFY copy carries the row id as event_id for client-side
	// last_event_id tracking; the stored payload does not (the id is not
	// known until after the insert — catchup re-injects it from the row).
	notifyPayload, err := injectEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts an envelope via NOTIFY without persisting it.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, env Envelope) error {
	payloadJSON, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal %s envelope: %w", env.Type, err)
	}
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectEventIDAndTruncate adds event_id to the envelope JSON for NOTIFY
// delivery and applies truncation if the result exceeds the NOTIFY limit.
func injectEventIDAndTruncate(payloadJSON []byte, eventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for event_id injection: %w", err)
	}
	m["event_id"] = eventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload string as-is if it fits within the
// NOTIFY limit, otherwise a minimal truncation envelope with only the fields
// a client needs to fetch the full event from the database.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= notifyLimit {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates the routing-only truncation envelope from the
// full envelope bytes. The plan id is lifted out of data so clients can route
// the marker without parsing a payload that is no longer there.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var full struct {
		Type      string         `json:"type"`
		Timestamp string         `json:"timestamp"`
		EventID   *int64         `json:"event_id"`
		Data      map[string]any `json:"data"`
	}
	if err := json.Unmarshal(payloadBytes, &full); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      full.Type,
		"timestamp": full.Timestamp,
		"truncated": true,
	}
	if full.EventID != nil {
		truncated["event_id"] = *full.EventID
	}
	if planID, ok := full.Data["plan_id"].(string); ok && planID != "" {
		truncated["plan_id"] = planID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
